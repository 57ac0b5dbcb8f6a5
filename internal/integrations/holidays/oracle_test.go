package holidays

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkplaceService/pkg/types"
)

func TestOracle_IsWorkingDay(t *testing.T) {
	oracle := NewOracle()

	tests := []struct {
		name    string
		region  string
		day     types.Date
		working bool
	}{
		{name: "regular friday", region: "ES-AN", day: types.NewDate(2023, time.April, 21), working: true},
		{name: "sunday", region: "ES-AN", day: types.NewDate(2023, time.April, 23), working: false},
		{name: "saturday", region: "ES-AN", day: types.NewDate(2023, time.April, 22), working: false},
		{name: "holy thursday in andalusia", region: "ES-AN", day: types.NewDate(2023, time.April, 6), working: false},
		{name: "good friday nationwide", region: "ES", day: types.NewDate(2023, time.April, 7), working: false},
		{name: "andalusia day", region: "ES-AN", day: types.NewDate(2023, time.February, 28), working: false},
		{name: "andalusia day is a workday in madrid", region: "ES-MD", day: types.NewDate(2023, time.February, 28), working: true},
		{name: "labour day", region: "ES-CT", day: types.NewDate(2023, time.May, 1), working: false},
		{name: "lowercase code", region: "es-an", day: types.NewDate(2023, time.April, 20), working: true},
		{name: "unity day", region: "DE", day: types.NewDate(2023, time.October, 3), working: false},
		{name: "corpus christi in bavaria", region: "DE-BY", day: types.NewDate(2023, time.June, 8), working: false},
		{name: "corpus christi outside bavaria", region: "DE", day: types.NewDate(2023, time.June, 8), working: true},
		{name: "bastille day", region: "FR", day: types.NewDate(2023, time.July, 14), working: false},
		{name: "independence day", region: "US", day: types.NewDate(2024, time.July, 4), working: false},
		{name: "epiphany nationwide", region: "ES", day: types.NewDate(2025, time.January, 6), working: false},
		{name: "epiphany in madrid", region: "ES-MD", day: types.NewDate(2025, time.January, 6), working: false},
		{name: "sant esteve in catalonia", region: "ES-CT", day: types.NewDate(2023, time.December, 26), working: false},
		{name: "sant esteve is a workday in andalusia", region: "ES-AN", day: types.NewDate(2023, time.December, 26), working: true},
		{name: "easter monday in valencia", region: "ES-VC", day: types.NewDate(2023, time.April, 10), working: false},
		{name: "epiphany in bavaria", region: "DE-BY", day: types.NewDate(2025, time.January, 6), working: false},
		{name: "easter monday in england", region: "GB", day: types.NewDate(2023, time.April, 10), working: false},
		{name: "boxing day observed on monday", region: "GB", day: types.NewDate(2021, time.December, 28), working: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := oracle.IsWorkingDay(tt.region, tt.day)
			require.NoError(t, err)
			assert.Equal(t, tt.working, got)
		})
	}
}

func TestOracle_UnknownRegion(t *testing.T) {
	oracle := NewOracle()

	_, err := oracle.IsWorkingDay("XX-YY", types.NewDate(2023, time.April, 21))
	assert.ErrorIs(t, err, ErrUnknownRegion)

	_, err = oracle.WorkingDaysBetween("", types.NewDate(2023, time.April, 1), types.NewDate(2023, time.April, 30))
	assert.ErrorIs(t, err, ErrUnknownRegion)

	assert.False(t, oracle.Supports("XX"))
	assert.True(t, oracle.Supports(" es-md "))
}

func TestOracle_WorkingDaysBetween(t *testing.T) {
	oracle := NewOracle()

	// 20 будних дней минус Jueves Santo (6.04) и Viernes Santo (7.04)
	got, err := oracle.WorkingDaysBetween("ES-AN", types.NewDate(2023, time.April, 1), types.NewDate(2023, time.April, 30))
	require.NoError(t, err)
	assert.Equal(t, 18, got)

	// 23 будних дня минус Año Nuevo (1.01) и Reyes (6.01)
	got, err = oracle.WorkingDaysBetween("ES-AN", types.NewDate(2025, time.January, 1), types.NewDate(2025, time.January, 31))
	require.NoError(t, err)
	assert.Equal(t, 21, got)

	got, err = oracle.WorkingDaysBetween("ES-AN", types.NewDate(2023, time.April, 21), types.NewDate(2023, time.April, 21))
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = oracle.WorkingDaysBetween("ES-AN", types.NewDate(2023, time.April, 30), types.NewDate(2023, time.April, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestOracle_Regions(t *testing.T) {
	regions := NewOracle().Regions()
	assert.Contains(t, regions, "ES-AN")
	assert.Contains(t, regions, "US")
	assert.IsIncreasing(t, regions)
}
