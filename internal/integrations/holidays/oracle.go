package holidays

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	cal "github.com/rickar/cal/v2"

	"github.com/m04kA/SMC-WorkplaceService/pkg/types"
)

// Oracle определяет рабочие дни по календарю региона
type Oracle struct {
	mu        sync.Mutex
	calendars map[string]*cal.BusinessCalendar
}

// NewOracle создает оракул со всеми поддерживаемыми регионами
func NewOracle() *Oracle {
	calendars := make(map[string]*cal.BusinessCalendar, len(regionHolidays))
	for region, holidays := range regionHolidays {
		calendars[region] = newCalendar(holidays)
	}
	return &Oracle{calendars: calendars}
}

// Supports сообщает, известен ли код региона
func (o *Oracle) Supports(region string) bool {
	_, ok := o.calendars[normalize(region)]
	return ok
}

// Regions возвращает отсортированный список поддерживаемых кодов
func (o *Oracle) Regions() []string {
	regions := make([]string, 0, len(o.calendars))
	for region := range o.calendars {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}

// IsWorkingDay сообщает, что день не выходной и не праздник региона
func (o *Oracle) IsWorkingDay(region string, day types.Date) (bool, error) {
	c, err := o.calendar(region)
	if err != nil {
		return false, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return isWorkingDay(c, day), nil
}

// WorkingDaysBetween считает рабочие дни в интервале [start, end] включительно
// Возвращает 0, если end раньше start
func (o *Oracle) WorkingDaysBetween(region string, start, end types.Date) (int, error) {
	c, err := o.calendar(region)
	if err != nil {
		return 0, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	count := 0
	for day := start; !day.After(end); day = day.AddDays(1) {
		if isWorkingDay(c, day) {
			count++
		}
	}
	return count, nil
}

func (o *Oracle) calendar(region string) (*cal.BusinessCalendar, error) {
	c, ok := o.calendars[normalize(region)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
	return c, nil
}

func isWorkingDay(c *cal.BusinessCalendar, day types.Date) bool {
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	actual, observed, _ := c.IsHoliday(day.Time())
	return !actual && !observed
}

func normalize(region string) string {
	return strings.ToUpper(strings.TrimSpace(region))
}
