package submit_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/employee"
	reservationRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/reservation"
	workplaceRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/workplace"
	"github.com/m04kA/SMC-WorkplaceService/internal/integrations/holidays"
	"github.com/m04kA/SMC-WorkplaceService/pkg/txmanager"
	"github.com/m04kA/SMC-WorkplaceService/pkg/types"
)

// UseCase use case допуска бронирования рабочего места
type UseCase struct {
	reservationRepo ReservationRepository
	employeeRepo    EmployeeRepository
	workplaceRepo   WorkplaceRepository
	settings        SettingsProvider
	oracle          HolidayOracle
	cache           SummaryCache
	metrics         MetricsRecorder
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
	opts            Options
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	employeeRepo EmployeeRepository,
	workplaceRepo WorkplaceRepository,
	settings SettingsProvider,
	oracle HolidayOracle,
	cache SummaryCache,
	metrics MetricsRecorder,
	txManager TransactionManager,
	logger Logger,
	opts Options,
) *UseCase {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		employeeRepo:    employeeRepo,
		workplaceRepo:   workplaceRepo,
		settings:        settings,
		oracle:          oracle,
		cache:           cache,
		metrics:         metrics,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		opts:            opts,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case бронирования
// Проверка занятости и запись выполняются в сериализуемой транзакции под advisory lock
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	uc.metrics.ObserveAdmission(outcomeOf(resp, err))
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitReservation: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("SubmitReservation: employee=%s, day=%s, workplace=%d", req.EmployeeID, req.Day, req.WorkplaceID)

	// 2. Проверяем окно бронирования относительно сегодняшнего дня
	today := types.DateOf(uc.timeProvider.Now().In(uc.opts.Location))
	if err := validateDay(req.Day, today, uc.opts.HorizonDays); err != nil {
		uc.logger.Warn("SubmitReservation: day validation failed: %v", err)
		return nil, err
	}

	if uc.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.opts.Timeout)
		defer cancel()
	}

	// 3. Проверяем, что день рабочий в регионе из настроек
	settings, err := uc.settings.Load(ctx)
	if err != nil {
		uc.logger.Error("SubmitReservation: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
	}

	working, err := uc.oracle.IsWorkingDay(settings.ISORegion, req.Day)
	if err != nil {
		if errors.Is(err, holidays.ErrUnknownRegion) {
			uc.logger.Error("SubmitReservation: settings region %q is not supported", settings.ISORegion)
			return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
		return nil, fmt.Errorf("%w: failed to check working day: %v", ErrInternal, err)
	}
	if !working {
		uc.logger.Warn("SubmitReservation: day=%s is not a working day in %s", req.Day, settings.ISORegion)
		return nil, ErrNonWorkingDay
	}

	// 4. Проверяем сотрудника
	employee, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("SubmitReservation: employee id=%s not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("SubmitReservation: failed to get employee id=%s: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}
	if !employee.IsActive {
		uc.logger.Warn("SubmitReservation: employee id=%s is inactive", req.EmployeeID)
		return nil, ErrEmployeeInactive
	}

	// 5. Проверяем рабочее место
	workplace, err := uc.workplaceRepo.GetByID(ctx, req.WorkplaceID)
	if err != nil {
		if errors.Is(err, workplaceRepo.ErrWorkplaceNotFound) {
			uc.logger.Warn("SubmitReservation: workplace id=%d not found", req.WorkplaceID)
			return nil, ErrWorkplaceNotFound
		}
		uc.logger.Error("SubmitReservation: failed to get workplace id=%d: %v", req.WorkplaceID, err)
		return nil, fmt.Errorf("%w: failed to get workplace: %v", ErrInternal, err)
	}

	var (
		result  *domain.Reservation
		created bool
	)

	// 6. Проверка занятости и upsert в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		result, created = nil, false

		// 6.1. Блокировки всегда в одном порядке: (день, место), затем (день, сотрудник)
		if err := uc.reservationRepo.LockWorkplaceDay(txCtx, req.Day, workplace.ID); err != nil {
			return fmt.Errorf("%w: failed to lock workplace: %w", ErrInternal, err)
		}
		if err := uc.reservationRepo.LockEmployeeDay(txCtx, req.Day, employee.ID); err != nil {
			return fmt.Errorf("%w: failed to lock employee: %w", ErrInternal, err)
		}

		// 6.2. Офисное место может занимать только один сотрудник в день
		if workplace.IsExclusive() {
			holders, err := uc.reservationRepo.GetByDayAndWorkplace(txCtx, req.Day, workplace.ID)
			if err != nil {
				return fmt.Errorf("%w: failed to get workplace reservations: %w", ErrInternal, err)
			}
			for _, holder := range holders {
				if holder.EmployeeID != employee.ID {
					uc.logger.Warn("SubmitReservation: workplace id=%d on %s is taken by employee=%s",
						workplace.ID, req.Day, holder.EmployeeID)
					return ErrWorkplaceTaken
				}
			}
		}

		// 6.3. Одно бронирование на сотрудника в день: обновляем место или создаем запись
		existing, err := uc.reservationRepo.GetByDayAndEmployee(txCtx, req.Day, employee.ID)
		if err != nil && !errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return fmt.Errorf("%w: failed to get employee reservation: %w", ErrInternal, err)
		}

		if existing != nil {
			if existing.WorkplaceID == workplace.ID {
				result = existing
				return nil
			}
			updated, err := uc.reservationRepo.UpdateWorkplace(txCtx, existing.ID, workplace.ID)
			if err != nil {
				return fmt.Errorf("%w: failed to update reservation: %w", ErrInternal, err)
			}
			result = updated
			return nil
		}

		inserted, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			Day:         req.Day,
			EmployeeID:  employee.ID,
			WorkplaceID: workplace.ID,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}
		result, created = inserted, true
		return nil
	})

	if err != nil {
		return nil, uc.mapTxError(ctx, err)
	}

	// 7. Сбрасываем кэш сводки за месяц
	if err := uc.cache.Invalidate(ctx, req.Day.Year(), req.Day.Month()); err != nil {
		uc.logger.Warn("SubmitReservation: failed to invalidate summary cache for %d-%02d: %v",
			req.Day.Year(), req.Day.Month(), err)
	}

	uc.logger.Info("SubmitReservation: reservation id=%d saved (created=%t) for employee=%s, day=%s, workplace=%d",
		result.ID, created, employee.ID, req.Day, workplace.ID)

	return &Response{
		ID:            result.ID,
		Day:           result.Day,
		EmployeeID:    result.EmployeeID,
		WorkplaceID:   result.WorkplaceID,
		WorkplaceName: workplace.Name,
		LocationName:  workplace.LocationName,
		Created:       created,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// mapTxError сводит ошибки транзакции к ошибкам use case
func (uc *UseCase) mapTxError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, ErrWorkplaceTaken):
		return ErrWorkplaceTaken
	case errors.Is(err, txmanager.ErrRetriesExhausted),
		txmanager.IsRetryable(err),
		errors.Is(err, reservationRepo.ErrDuplicateReservation),
		errors.Is(err, context.DeadlineExceeded),
		ctx.Err() != nil:
		uc.logger.Warn("SubmitReservation: concurrent conflict: %v", err)
		return fmt.Errorf("%w: %v", ErrConflictRetry, err)
	default:
		uc.logger.Error("SubmitReservation: transaction failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func outcomeOf(resp *Response, err error) string {
	switch {
	case err == nil && resp.Created:
		return outcomeCreated
	case err == nil:
		return outcomeUpdated
	case errors.Is(err, ErrWorkplaceTaken):
		return outcomeTaken
	case errors.Is(err, ErrConflictRetry):
		return outcomeConflict
	case errors.Is(err, ErrInternal), errors.Is(err, ErrConfiguration):
		return outcomeError
	default:
		return outcomeRejected
	}
}
