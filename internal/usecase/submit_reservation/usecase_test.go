package submit_reservation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/employee"
	reservationRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/reservation"
	workplaceRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/workplace"
	"github.com/m04kA/SMC-WorkplaceService/internal/integrations/holidays"
	"github.com/m04kA/SMC-WorkplaceService/pkg/logger"
	"github.com/m04kA/SMC-WorkplaceService/pkg/txmanager"
	"github.com/m04kA/SMC-WorkplaceService/pkg/types"
)

type reservationRepoMock struct{ mock.Mock }

func (m *reservationRepoMock) LockWorkplaceDay(ctx context.Context, day types.Date, workplaceID int64) error {
	return m.Called(day, workplaceID).Error(0)
}

func (m *reservationRepoMock) LockEmployeeDay(ctx context.Context, day types.Date, employeeID string) error {
	return m.Called(day, employeeID).Error(0)
}

func (m *reservationRepoMock) GetByDayAndWorkplace(ctx context.Context, day types.Date, workplaceID int64) ([]*domain.Reservation, error) {
	args := m.Called(day, workplaceID)
	res, _ := args.Get(0).([]*domain.Reservation)
	return res, args.Error(1)
}

func (m *reservationRepoMock) GetByDayAndEmployee(ctx context.Context, day types.Date, employeeID string) (*domain.Reservation, error) {
	args := m.Called(day, employeeID)
	res, _ := args.Get(0).(*domain.Reservation)
	return res, args.Error(1)
}

func (m *reservationRepoMock) Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(r)
	res, _ := args.Get(0).(*domain.Reservation)
	return res, args.Error(1)
}

func (m *reservationRepoMock) UpdateWorkplace(ctx context.Context, id int64, workplaceID int64) (*domain.Reservation, error) {
	args := m.Called(id, workplaceID)
	res, _ := args.Get(0).(*domain.Reservation)
	return res, args.Error(1)
}

type employeeRepoStub map[string]*domain.Employee

func (s employeeRepoStub) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	if e, ok := s[id]; ok {
		return e, nil
	}
	return nil, employeeRepo.ErrEmployeeNotFound
}

type workplaceRepoStub map[int64]*domain.WorkplaceInfo

func (s workplaceRepoStub) GetByID(ctx context.Context, id int64) (*domain.WorkplaceInfo, error) {
	if w, ok := s[id]; ok {
		return w, nil
	}
	return nil, workplaceRepo.ErrWorkplaceNotFound
}

type settingsStub struct{ settings *domain.Settings }

func (s settingsStub) Load(ctx context.Context) (*domain.Settings, error) { return s.settings, nil }

type cacheSpy struct{ invalidated []string }

func (c *cacheSpy) Invalidate(ctx context.Context, year int, month time.Month) error {
	c.invalidated = append(c.invalidated, time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01"))
	return nil
}

type metricsSpy struct{ outcomes []string }

func (m *metricsSpy) ObserveAdmission(outcome string) { m.outcomes = append(m.outcomes, outcome) }

// inlineTx выполняет функцию без БД
type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

const (
	officeDesk = int64(1)
	homeDesk   = int64(2)
)

var (
	// Четверг
	today    = time.Date(2023, time.April, 20, 9, 30, 0, 0, time.UTC)
	tomorrow = types.NewDate(2023, time.April, 21)
)

type fixture struct {
	uc      *UseCase
	repo    *reservationRepoMock
	cache   *cacheSpy
	metrics *metricsSpy
}

func newFixture(t *testing.T, tx TransactionManager) *fixture {
	t.Helper()
	repo := &reservationRepoMock{}
	cache := &cacheSpy{}
	metrics := &metricsSpy{}

	employees := employeeRepoStub{
		"E1":  {ID: "E1", FirstName: "Ada", LastName: "Lovelace", IsActive: true},
		"E2":  {ID: "E2", FirstName: "Alan", LastName: "Turing", IsActive: true},
		"OLD": {ID: "OLD", FirstName: "Old", LastName: "Timer", IsActive: false},
	}
	workplaces := workplaceRepoStub{
		officeDesk: {Workplace: domain.Workplace{ID: officeDesk, Name: "A-1"}, LocationName: "HQ", IsOffice: true},
		homeDesk:   {Workplace: domain.Workplace{ID: homeDesk, Name: "Home"}, LocationName: "Home office", IsOffice: false},
	}

	uc := NewUseCase(
		repo,
		employees,
		workplaces,
		settingsStub{settings: domain.DefaultSettings()},
		holidays.NewOracle(),
		cache,
		metrics,
		tx,
		logger.NewNop(),
		Options{HorizonDays: 28, Location: time.UTC},
	).WithTimeProvider(fixedClock{now: today})

	t.Cleanup(func() { repo.AssertExpectations(t) })

	return &fixture{uc: uc, repo: repo, cache: cache, metrics: metrics}
}

func TestExecute_DayRules(t *testing.T) {
	tests := []struct {
		name string
		day  types.Date
		err  error
	}{
		{name: "past", day: types.NewDate(2023, time.April, 19), err: ErrDayInPast},
		{name: "beyond horizon", day: types.NewDate(2023, time.May, 25), err: ErrDayBeyondHorizon},
		{name: "sunday", day: types.NewDate(2023, time.April, 23), err: ErrNonWorkingDay},
		{name: "holiday", day: types.NewDate(2023, time.May, 1), err: ErrNonWorkingDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, inlineTx{})

			_, err := f.uc.Execute(context.Background(), &Request{EmployeeID: "E1", Day: tt.day, WorkplaceID: officeDesk})

			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, []string{outcomeRejected}, f.metrics.outcomes)
			assert.Empty(t, f.cache.invalidated)
		})
	}
}

func TestExecute_HorizonIsInclusive(t *testing.T) {
	f := newFixture(t, inlineTx{})
	day := types.NewDate(2023, time.May, 18) // today + 28, четверг

	f.repo.On("LockWorkplaceDay", day, homeDesk).Return(nil)
	f.repo.On("LockEmployeeDay", day, "E1").Return(nil)
	f.repo.On("GetByDayAndEmployee", day, "E1").Return(nil, reservationRepo.ErrReservationNotFound)
	f.repo.On("Create", mock.Anything).Return(&domain.Reservation{ID: 1, Day: day, EmployeeID: "E1", WorkplaceID: homeDesk}, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{EmployeeID: "E1", Day: day, WorkplaceID: homeDesk})
	require.NoError(t, err)
	assert.True(t, resp.Created)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(t, inlineTx{})

	_, err := f.uc.Execute(context.Background(), &Request{EmployeeID: " ", Day: tomorrow, WorkplaceID: officeDesk})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{EmployeeID: "E1", Day: tomorrow})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{EmployeeID: "E1", WorkplaceID: officeDesk})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_UnknownEntities(t *testing.T) {
	f := newFixture(t, inlineTx{})

	_, err := f.uc.Execute(context.Background(), &Request{EmployeeID: "nobody", Day: tomorrow, WorkplaceID: officeDesk})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	_, err = f.uc.Execute(context.Background(), &Request{EmployeeID: "OLD", Day: tomorrow, WorkplaceID: officeDesk})
	assert.ErrorIs(t, err, ErrEmployeeInactive)

	_, err = f.uc.Execute(context.Background(), &Request{EmployeeID: "E1", Day: tomorrow, WorkplaceID: 99})
	assert.ErrorIs(t, err, ErrWorkplaceNotFound)
}

func TestExecute_CreatesReservation(t *testing.T) {
	f := newFixture(t, inlineTx{})

	f.repo.On("LockWorkplaceDay", tomorrow, officeDesk).Return(nil).Once()
	f.repo.On("LockEmployeeDay", tomorrow, "E1").Return(nil).Once()
	f.repo.On("GetByDayAndWorkplace", tomorrow, officeDesk).Return([]*domain.Reservation{}, nil).Once()
	f.repo.On("GetByDayAndEmployee", tomorrow, "E1").Return(nil, reservationRepo.ErrReservationNotFound).Once()
	f.repo.On("Create", mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.Day == tomorrow && r.EmployeeID == "E1" && r.WorkplaceID == officeDesk
	})).Return(&domain.Reservation{ID: 10, Day: tomorrow, EmployeeID: "E1", WorkplaceID: officeDesk}, nil).Once()

	resp, err := f.uc.Execute(context.Background(), &Request{EmployeeID: "E1", Day: tomorrow, WorkplaceID: officeDesk})

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.True(t, resp.Created)
	assert.Equal(t, "A-1", resp.WorkplaceName)
	assert.Equal(t, []string{"2023-04"}, f.cache.invalidated)
	assert.Equal(t, []string{outcomeCreated}, f.metrics.outcomes)
}

func TestExecute_OfficeDeskTakenByAnotherEmployee(t *testing.T) {
	f := newFixture(t, inlineTx{})

	f.repo.On("LockWorkplaceDay", tomorrow, officeDesk).Return(nil)
	f.repo.On("LockEmployeeDay", tomorrow, "E2").Return(nil)
	f.repo.On("GetByDayAndWorkplace", tomorrow, officeDesk).
		Return([]*domain.Reservation{{ID: 10, Day: tomorrow, EmployeeID: "E1", WorkplaceID: officeDesk}}, nil)

	_, err := f.uc.Execute(context.Background(), &Request{EmployeeID: "E2", Day: tomorrow, WorkplaceID: officeDesk})

	assert.ErrorIs(t, err, ErrWorkplaceTaken)
	f.repo.AssertNotCalled(t, "Create", mock.Anything)
	f.repo.AssertNotCalled(t, "UpdateWorkplace", mock.Anything, mock.Anything)
	assert.Equal(t, []string{outcomeTaken}, f.metrics.outcomes)
	assert.Empty(t, f.cache.invalidated)
}

func TestExecute_ChangesDeskForSameDay(t *testing.T) {
	f := newFixture(t, inlineTx{})

	f.repo.On("LockWorkplaceDay", tomorrow, officeDesk).Return(nil)
	f.repo.On("LockEmployeeDay", tomorrow, "E1").Return(nil)
	f.repo.On("GetByDayAndWorkplace", tomorrow, officeDesk).Return([]*domain.Reservation{}, nil)
	f.repo.On("GetByDayAndEmployee", tomorrow, "E1").
		Return(&domain.Reservation{ID: 10, Day: tomorrow, EmployeeID: "E1", WorkplaceID: homeDesk}, nil)
	f.repo.On("UpdateWorkplace", int64(10), officeDesk).
		Return(&domain.Reservation{ID: 10, Day: tomorrow, EmployeeID: "E1", WorkplaceID: officeDesk}, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{EmployeeID: "E1", Day: tomorrow, WorkplaceID: officeDesk})

	require.NoError(t, err)
	assert.False(t, resp.Created)
	assert.Equal(t, officeDesk, resp.WorkplaceID)
	f.repo.AssertNotCalled(t, "Create", mock.Anything)
	assert.Equal(t, []string{outcomeUpdated}, f.metrics.outcomes)
}

func TestExecute_SameDeskIsIdempotent(t *testing.T) {
	f := newFixture(t, inlineTx{})
	existing := &domain.Reservation{ID: 10, Day: tomorrow, EmployeeID: "E1", WorkplaceID: officeDesk}

	f.repo.On("LockWorkplaceDay", tomorrow, officeDesk).Return(nil)
	f.repo.On("LockEmployeeDay", tomorrow, "E1").Return(nil)
	f.repo.On("GetByDayAndWorkplace", tomorrow, officeDesk).Return([]*domain.Reservation{existing}, nil)
	f.repo.On("GetByDayAndEmployee", tomorrow, "E1").Return(existing, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{EmployeeID: "E1", Day: tomorrow, WorkplaceID: officeDesk})

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.False(t, resp.Created)
}

func TestExecute_NonOfficeDeskIsShared(t *testing.T) {
	f := newFixture(t, inlineTx{})

	f.repo.On("LockWorkplaceDay", tomorrow, homeDesk).Return(nil)
	f.repo.On("LockEmployeeDay", tomorrow, "E2").Return(nil)
	f.repo.On("GetByDayAndEmployee", tomorrow, "E2").Return(nil, reservationRepo.ErrReservationNotFound)
	f.repo.On("Create", mock.Anything).
		Return(&domain.Reservation{ID: 11, Day: tomorrow, EmployeeID: "E2", WorkplaceID: homeDesk}, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{EmployeeID: "E2", Day: tomorrow, WorkplaceID: homeDesk})

	require.NoError(t, err)
	assert.True(t, resp.Created)
	f.repo.AssertNotCalled(t, "GetByDayAndWorkplace", mock.Anything, mock.Anything)
}

type exhaustedTx struct{}

func (exhaustedTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fmt.Errorf("%w: %w", txmanager.ErrRetriesExhausted, &pq.Error{Code: "55P03"})
}

func TestExecute_ConflictRetry(t *testing.T) {
	f := newFixture(t, exhaustedTx{})

	_, err := f.uc.Execute(context.Background(), &Request{EmployeeID: "E1", Day: tomorrow, WorkplaceID: officeDesk})

	assert.ErrorIs(t, err, ErrConflictRetry)
	assert.Equal(t, []string{outcomeConflict}, f.metrics.outcomes)
}

func TestExecute_StoreFailureIsInternal(t *testing.T) {
	f := newFixture(t, inlineTx{})

	f.repo.On("LockWorkplaceDay", tomorrow, officeDesk).Return(errors.New("connection refused"))

	_, err := f.uc.Execute(context.Background(), &Request{EmployeeID: "E1", Day: tomorrow, WorkplaceID: officeDesk})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, []string{outcomeError}, f.metrics.outcomes)
}

func TestExecute_UnknownRegionIsConfigurationError(t *testing.T) {
	f := newFixture(t, inlineTx{})
	f.uc.settings = settingsStub{settings: &domain.Settings{ISORegion: "XX", MinOfficePercent: 20}}

	_, err := f.uc.Execute(context.Background(), &Request{EmployeeID: "E1", Day: tomorrow, WorkplaceID: officeDesk})

	assert.ErrorIs(t, err, ErrConfiguration)
}
