package occupancy

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/occupancy/models"
	"github.com/m04kA/SMC-WorkplaceService/pkg/ptr"
	"github.com/m04kA/SMC-WorkplaceService/pkg/types"
)

// workweekDays число дней в недельной таблице (понедельник..пятница)
const workweekDays = 5

// Service сервис отчетов о занятости рабочих мест
// Только читает хранилище, блокировки не берет
type Service struct {
	reservationRepo ReservationRepository
	workplaceRepo   WorkplaceRepository
	settings        SettingsProvider
	oracle          HolidayOracle
	cache           SummaryCache
	timeProvider    TimeProvider
	location        *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(
	reservationRepo ReservationRepository,
	workplaceRepo WorkplaceRepository,
	settings SettingsProvider,
	oracle HolidayOracle,
	cache SummaryCache,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.Local
	}
	return &Service{
		reservationRepo: reservationRepo,
		workplaceRepo:   workplaceRepo,
		settings:        settings,
		oracle:          oracle,
		cache:           cache,
		timeProvider:    realTimeProvider{},
		location:        location,
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Today возвращает текущую дату в часовом поясе офиса
func (s *Service) Today() types.Date {
	return types.DateOf(s.timeProvider.Now().In(s.location))
}

// CurrentWeek возвращает текущую ISO-неделю
func (s *Service) CurrentWeek() models.WeekRef {
	year, week := s.Today().ISOWeek()
	return models.WeekRef{Year: year, Week: week}
}

// CurrentMonth возвращает текущий месяц
func (s *Service) CurrentMonth() models.MonthRef {
	today := s.Today()
	return models.MonthRef{Year: today.Year(), Month: today.Month()}
}

// DailyStatus возвращает занятость офисных мест за день по этажам
func (s *Service) DailyStatus(ctx context.Context, day types.Date) (*models.DailyStatusResponse, error) {
	s.logger.Info("DailyStatus: day=%s", day)

	floors, err := s.workplaceRepo.GetFloors(ctx, true)
	if err != nil {
		s.logger.Error("DailyStatus: failed to get floors: %v", err)
		return nil, fmt.Errorf("%w: failed to get floors: %v", ErrInternal, err)
	}

	workplaces, err := s.workplaceRepo.GetAll(ctx, true)
	if err != nil {
		s.logger.Error("DailyStatus: failed to get workplaces: %v", err)
		return nil, fmt.Errorf("%w: failed to get workplaces: %v", ErrInternal, err)
	}

	occupants, err := s.occupantsBetween(ctx, day, day)
	if err != nil {
		s.logger.Error("DailyStatus: failed to get reservations for day=%s: %v", day, err)
		return nil, err
	}

	// Места уже упорядочены по имени, группируем по этажу
	byFloor := make(map[int64][]*domain.WorkplaceInfo, len(floors))
	for _, w := range workplaces {
		byFloor[w.FloorID] = append(byFloor[w.FloorID], w)
	}

	result := make([]models.FloorStatus, 0, len(floors))
	for _, f := range floors {
		statuses := make([]models.WorkplaceStatus, 0, len(byFloor[f.ID]))
		for _, w := range byFloor[f.ID] {
			occupant := occupants[occupancyKey{day: day, workplaceID: w.ID}]
			statuses = append(statuses, models.WorkplaceStatus{
				WorkplaceID: w.ID,
				Name:        w.Name,
				Occupant:    occupant,
				Label:       label(occupant),
			})
		}
		result = append(result, models.FloorStatus{
			FloorID:      f.ID,
			FloorName:    f.Name,
			LocationID:   f.LocationID,
			LocationName: f.LocationName,
			Workplaces:   statuses,
		})
	}

	return &models.DailyStatusResponse{Day: day, Floors: result}, nil
}

// WeekGrid возвращает таблицу занятости офисных мест за рабочую неделю ISO (year, week)
func (s *Service) WeekGrid(ctx context.Context, year, week int) (*models.WeekGridResponse, error) {
	monday, err := types.FromISOWeek(year, week, time.Monday)
	if err != nil {
		s.logger.Warn("WeekGrid: invalid week %d/%d: %v", year, week, err)
		return nil, fmt.Errorf("%w: %d/%d", ErrWeekNotFound, year, week)
	}
	friday := monday.AddDays(workweekDays - 1)

	s.logger.Info("WeekGrid: year=%d, week=%d (%s..%s)", year, week, monday, friday)

	days := make([]types.Date, 0, workweekDays)
	for i := 0; i < workweekDays; i++ {
		days = append(days, monday.AddDays(i))
	}

	workplaces, err := s.workplaceRepo.GetAll(ctx, true)
	if err != nil {
		s.logger.Error("WeekGrid: failed to get workplaces: %v", err)
		return nil, fmt.Errorf("%w: failed to get workplaces: %v", ErrInternal, err)
	}

	occupants, err := s.occupantsBetween(ctx, monday, friday)
	if err != nil {
		s.logger.Error("WeekGrid: failed to get reservations for %s..%s: %v", monday, friday, err)
		return nil, err
	}

	rows := make([]models.WeekRow, 0, len(workplaces))
	for _, w := range workplaces {
		cells := make([]models.Cell, 0, workweekDays)
		for _, d := range days {
			occupant := occupants[occupancyKey{day: d, workplaceID: w.ID}]
			cells = append(cells, models.Cell{Day: d, Occupant: occupant, Label: label(occupant)})
		}
		rows = append(rows, models.WeekRow{WorkplaceID: w.ID, WorkplaceName: w.Name, Cells: cells})
	}

	header := make([]string, len(domain.WeekGridHeader))
	copy(header, domain.WeekGridHeader)

	prevYear, prevWeek := monday.AddDays(-7).ISOWeek()
	nextYear, nextWeek := monday.AddDays(7).ISOWeek()

	return &models.WeekGridResponse{
		Year:     year,
		Week:     week,
		Monday:   monday,
		Friday:   friday,
		Days:     days,
		Header:   header,
		Rows:     rows,
		Previous: models.WeekRef{Year: prevYear, Week: prevWeek},
		Next:     models.WeekRef{Year: nextYear, Week: nextWeek},
	}, nil
}

type occupancyKey struct {
	day         types.Date
	workplaceID int64
}

// occupantsBetween возвращает занятых офисных мест по (день, место) за период
func (s *Service) occupantsBetween(ctx context.Context, from, to types.Date) (map[occupancyKey]*models.Occupant, error) {
	reservations, err := s.reservationRepo.GetDetails(ctx, domain.ReservationFilter{
		From:       ptr.Ptr(from),
		To:         ptr.Ptr(to),
		OfficeOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	result := make(map[occupancyKey]*models.Occupant, len(reservations))
	for _, r := range reservations {
		key := occupancyKey{day: r.Day, workplaceID: r.WorkplaceID}
		if _, ok := result[key]; ok {
			continue
		}
		result[key] = &models.Occupant{
			EmployeeID: r.Employee.ID,
			FullName:   r.Employee.FullName(),
			IsStudent:  r.Employee.IsStudent,
		}
	}

	return result, nil
}

func label(o *models.Occupant) string {
	if o == nil {
		return domain.FreeMarker
	}
	return o.FullName
}
