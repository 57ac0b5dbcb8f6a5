package get_available_workplaces

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	"github.com/m04kA/SMC-WorkplaceService/pkg/ptr"
)

// UseCase use case получения мест, доступных сотруднику на день
type UseCase struct {
	reservationRepo ReservationRepository
	workplaceRepo   WorkplaceRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	workplaceRepo WorkplaceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		workplaceRepo:   workplaceRepo,
		logger:          logger,
	}
}

// Execute возвращает все места, кроме офисных, занятых в этот день другими сотрудниками
// Места вне офиса доступны всегда, свое место сотрудник видит тоже
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Недостаточно данных - пустой результат без ошибки
	if req == nil || req.EmployeeID == nil || strings.TrimSpace(*req.EmployeeID) == "" ||
		req.Day == nil || req.Day.IsZero() {
		return &Response{Workplaces: []Workplace{}}, nil
	}

	employeeID := strings.TrimSpace(*req.EmployeeID)
	day := *req.Day

	uc.logger.Info("GetAvailableWorkplaces: employee=%s, day=%s", employeeID, day)

	// 2. Получаем бронирования на день
	reservations, err := uc.reservationRepo.GetByDay(ctx, day)
	if err != nil {
		uc.logger.Error("GetAvailableWorkplaces: failed to get reservations for day=%s: %v", day, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 3. Получаем все рабочие места
	workplaces, err := uc.workplaceRepo.GetAll(ctx, false)
	if err != nil {
		uc.logger.Error("GetAvailableWorkplaces: failed to get workplaces: %v", err)
		return nil, fmt.Errorf("%w: failed to get workplaces: %v", ErrInternal, err)
	}

	// 4. Места, занятые другими сотрудниками, и место самого сотрудника
	takenByOthers := make(map[int64]struct{}, len(reservations))
	var reserved *int64
	for _, r := range reservations {
		if r.EmployeeID == employeeID {
			reserved = ptr.Ptr(r.WorkplaceID)
			continue
		}
		takenByOthers[r.WorkplaceID] = struct{}{}
	}

	// 5. Фильтруем офисные места, занятые другими
	available := make([]*domain.WorkplaceInfo, 0, len(workplaces))
	for _, w := range workplaces {
		if _, taken := takenByOthers[w.ID]; taken && w.IsExclusive() {
			continue
		}
		available = append(available, w)
	}

	sort.SliceStable(available, func(i, j int) bool {
		return domain.WorkplaceLess(available[i], available[j])
	})

	result := make([]Workplace, 0, len(available))
	for _, w := range available {
		result = append(result, Workplace{
			ID:           w.ID,
			Name:         w.Name,
			FloorName:    w.FloorName,
			LocationName: w.LocationName,
			IsOffice:     w.IsOffice,
		})
	}

	uc.logger.Info("GetAvailableWorkplaces: %d of %d workplaces available for employee=%s on %s",
		len(result), len(workplaces), employeeID, day)

	return &Response{
		Workplaces:          result,
		ReservedWorkplaceID: reserved,
	}, nil
}
