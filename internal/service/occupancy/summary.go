package occupancy

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	"github.com/m04kA/SMC-WorkplaceService/internal/integrations/holidays"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/occupancy/models"
	"github.com/m04kA/SMC-WorkplaceService/pkg/ptr"
	"github.com/m04kA/SMC-WorkplaceService/pkg/types"
)

var hundred = decimal.NewFromInt(100)

// MonthlySummary возвращает месячную сводку посещаемости по сотрудникам и офисным локациям
// Знаменатель долей - число рабочих дней месяца в регионе из настроек
func (s *Service) MonthlySummary(ctx context.Context, year int, month time.Month) (*models.MonthlySummaryResponse, error) {
	first, last, err := types.MonthRange(year, month)
	if err != nil {
		s.logger.Warn("MonthlySummary: invalid month %d/%d: %v", year, int(month), err)
		return nil, fmt.Errorf("%w: %d/%d", ErrMonthNotFound, year, int(month))
	}

	// 1. Версию кэша читаем до загрузки данных, иначе сводка может пережить сброс
	version, err := s.cache.Version(ctx, year, month)
	cacheable := err == nil
	if err != nil {
		s.logger.Warn("MonthlySummary: cache version read failed for %d-%02d: %v", year, int(month), err)
	}

	if cacheable {
		var cached models.MonthlySummaryResponse
		hit, err := s.cache.Get(ctx, year, month, version, &cached)
		if err != nil {
			s.logger.Warn("MonthlySummary: cache read failed for %d-%02d: %v", year, int(month), err)
		}
		if hit {
			s.logger.Info("MonthlySummary: cache hit for %d-%02d", year, int(month))
			return &cached, nil
		}
	}

	s.logger.Info("MonthlySummary: computing %d-%02d (%s..%s)", year, int(month), first, last)

	// 2. Параллельно читаем настройки, бронирования и вместимость локаций
	var (
		settings     *domain.Settings
		reservations []*domain.ReservationDetails
		capacities   []*domain.LocationCapacity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		settings, err = s.settings.Load(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		reservations, err = s.reservationRepo.GetDetails(gctx, domain.ReservationFilter{
			From: ptr.Ptr(first),
			To:   ptr.Ptr(last),
		})
		return err
	})
	g.Go(func() error {
		var err error
		capacities, err = s.workplaceRepo.GetLocationCapacities(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("MonthlySummary: failed to load data for %d-%02d: %v", year, int(month), err)
		return nil, fmt.Errorf("%w: failed to load data: %v", ErrInternal, err)
	}

	// 3. Число рабочих дней
	workdays, err := s.oracle.WorkingDaysBetween(settings.ISORegion, first, last)
	if err != nil {
		if errors.Is(err, holidays.ErrUnknownRegion) {
			s.logger.Error("MonthlySummary: settings region %q is not supported", settings.ISORegion)
			return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
		return nil, fmt.Errorf("%w: failed to count working days: %v", ErrInternal, err)
	}

	result := &models.MonthlySummaryResponse{
		Year:             year,
		Month:            month,
		First:            first,
		Last:             last,
		Region:           settings.ISORegion,
		Workdays:         workdays,
		RatesAvailable:   workdays > 0,
		MinOfficePercent: settings.MinOfficePercent,
		Persons:          summarizePersons(reservations, workdays, settings.MinOfficePercent),
		Locations:        summarizeLocations(reservations, capacities, workdays, first, last),
		Previous:         monthRef(first.AddDays(-1)),
		Next:             monthRef(last.AddDays(1)),
	}

	// 4. Сохраняем в кэш под прочитанной версией; ошибка кэша не ломает отчет
	if cacheable {
		if err := s.cache.Set(ctx, year, month, version, result); err != nil {
			s.logger.Warn("MonthlySummary: cache write failed for %d-%02d: %v", year, int(month), err)
		}
	}

	return result, nil
}

// summarizePersons считает посещаемость каждого сотрудника, у которого есть бронирования
// Порядок: фамилия, имя, ID
func summarizePersons(reservations []*domain.ReservationDetails, workdays, minOfficePercent int) []models.PersonSummary {
	type counts struct {
		employee domain.EmployeeRef
		total    int
		office   int
	}

	byEmployee := make(map[string]*counts)
	for _, r := range reservations {
		c, ok := byEmployee[r.Employee.ID]
		if !ok {
			c = &counts{employee: r.Employee}
			byEmployee[r.Employee.ID] = c
		}
		c.total++
		if r.IsOffice {
			c.office++
		}
	}

	persons := make([]*counts, 0, len(byEmployee))
	for _, c := range byEmployee {
		persons = append(persons, c)
	}
	sort.Slice(persons, func(i, j int) bool {
		a, b := persons[i].employee, persons[j].employee
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		if a.FirstName != b.FirstName {
			return a.FirstName < b.FirstName
		}
		return a.ID < b.ID
	})

	threshold := decimal.NewFromInt(int64(minOfficePercent))
	result := make([]models.PersonSummary, 0, len(persons))
	for _, c := range persons {
		officeRate := percent(c.office, workdays)
		result = append(result, models.PersonSummary{
			EmployeeID:     c.employee.ID,
			FullName:       c.employee.FullName(),
			IsStudent:      c.employee.IsStudent,
			TotalCount:     c.total,
			OfficeCount:    c.office,
			TotalRate:      percent(c.total, workdays).InexactFloat64(),
			OfficeRate:     officeRate.InexactFloat64(),
			BelowThreshold: workdays > 0 && officeRate.LessThan(threshold),
		})
	}

	return result
}

// summarizeLocations считает загрузку офисных локаций по дням и за месяц
func summarizeLocations(
	reservations []*domain.ReservationDetails,
	capacities []*domain.LocationCapacity,
	workdays int,
	first, last types.Date,
) []models.LocationSummary {
	type dayKey struct {
		locationID int64
		day        types.Date
	}

	perDay := make(map[dayKey]int)
	total := make(map[int64]int)
	nonStudent := make(map[int64]int)
	for _, r := range reservations {
		if !r.IsOffice {
			continue
		}
		perDay[dayKey{locationID: r.LocationID, day: r.Day}]++
		total[r.LocationID]++
		if !r.Employee.IsStudent {
			nonStudent[r.LocationID]++
		}
	}

	result := make([]models.LocationSummary, 0, len(capacities))
	for _, c := range capacities {
		if !c.IsOffice {
			continue
		}

		daily := make([]models.DayCount, 0, last.Day())
		for d := first; !d.After(last); d = d.AddDays(1) {
			daily = append(daily, models.DayCount{Day: d, Count: perDay[dayKey{locationID: c.ID, day: d}]})
		}

		seatDays := workdays * c.WorkplaceCount
		result = append(result, models.LocationSummary{
			LocationID:          c.ID,
			LocationName:        c.Name,
			WorkplaceCount:      c.WorkplaceCount,
			Daily:               daily,
			Total:               total[c.ID],
			TotalNonStudent:     nonStudent[c.ID],
			TotalRate:           percent(total[c.ID], seatDays).InexactFloat64(),
			TotalNonStudentRate: percent(nonStudent[c.ID], seatDays).InexactFloat64(),
			RatesAvailable:      seatDays > 0,
		})
	}

	return result
}

// percent возвращает count/denominator*100 с точностью 0.1; 0 при нулевом знаменателе
func percent(count, denominator int) decimal.Decimal {
	if denominator <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(count)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(denominator))).
		Round(1)
}

func monthRef(d types.Date) models.MonthRef {
	return models.MonthRef{Year: d.Year(), Month: d.Month()}
}
