package directory

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-WorkplaceService/internal/service/directory/models"
)

// Service сервис справочных данных: сотрудники, этажи, справка
type Service struct {
	employeeRepo  EmployeeRepository
	workplaceRepo WorkplaceRepository
	infoRepo      InfoRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(
	employeeRepo EmployeeRepository,
	workplaceRepo WorkplaceRepository,
	infoRepo InfoRepository,
	logger Logger,
) *Service {
	return &Service{
		employeeRepo:  employeeRepo,
		workplaceRepo: workplaceRepo,
		infoRepo:      infoRepo,
		logger:        logger,
	}
}

// ListEmployees возвращает сотрудников, упорядоченных по фамилии и имени
// По умолчанию только активные: неактивных нельзя выбрать для нового бронирования
func (s *Service) ListEmployees(ctx context.Context, activeOnly bool) ([]*models.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetAll(ctx, activeOnly)
	if err != nil {
		s.logger.Error("ListEmployees: failed to get employees (activeOnly=%t): %v", activeOnly, err)
		return nil, fmt.Errorf("%w: failed to get employees: %v", ErrInternal, err)
	}

	result := make([]*models.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, &models.EmployeeResponse{
			ID:        e.ID,
			FirstName: e.FirstName,
			LastName:  e.LastName,
			FullName:  e.FullName(),
			IsStudent: e.IsStudent,
			IsActive:  e.IsActive,
		})
	}

	s.logger.Info("ListEmployees: found %d employees (activeOnly=%t)", len(result), activeOnly)
	return result, nil
}

// ListFloors возвращает этажи офисных локаций с планами
func (s *Service) ListFloors(ctx context.Context) ([]*models.FloorResponse, error) {
	floors, err := s.workplaceRepo.GetFloors(ctx, true)
	if err != nil {
		s.logger.Error("ListFloors: failed to get floors: %v", err)
		return nil, fmt.Errorf("%w: failed to get floors: %v", ErrInternal, err)
	}

	result := make([]*models.FloorResponse, 0, len(floors))
	for _, f := range floors {
		result = append(result, &models.FloorResponse{
			ID:           f.ID,
			Name:         f.Name,
			LocationID:   f.LocationID,
			LocationName: f.LocationName,
			IsOffice:     f.IsOffice,
			FloorMap:     f.FloorMap,
		})
	}

	return result, nil
}

// ListInfo возвращает блоки справочной страницы в порядке отображения
func (s *Service) ListInfo(ctx context.Context) ([]*models.InfoEntryResponse, error) {
	entries, err := s.infoRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ListInfo: failed to get info entries: %v", err)
		return nil, fmt.Errorf("%w: failed to get info entries: %v", ErrInternal, err)
	}

	result := make([]*models.InfoEntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, &models.InfoEntryResponse{
			ID:      e.ID,
			Title:   e.Title,
			Content: e.Content,
			Order:   e.Order,
		})
	}

	return result, nil
}
