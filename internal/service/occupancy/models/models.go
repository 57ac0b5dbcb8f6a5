package models

import (
	"time"

	"github.com/m04kA/SMC-WorkplaceService/pkg/types"
)

// Occupant сотрудник, занимающий место
type Occupant struct {
	EmployeeID string `json:"employeeId"`
	FullName   string `json:"fullName"`
	IsStudent  bool   `json:"isStudent"`
}

// Cell занятость места в конкретный день
// Label содержит имя сотрудника или маркер "free"
type Cell struct {
	Day      types.Date `json:"day"`
	Occupant *Occupant  `json:"occupant,omitempty"`
	Label    string     `json:"label"`
}

// WorkplaceStatus занятость рабочего места за день
type WorkplaceStatus struct {
	WorkplaceID int64     `json:"workplaceId"`
	Name        string    `json:"name"`
	Occupant    *Occupant `json:"occupant,omitempty"`
	Label       string    `json:"label"`
}

// FloorStatus этаж офисной локации со списком мест
type FloorStatus struct {
	FloorID      int64             `json:"floorId"`
	FloorName    string            `json:"floorName"`
	LocationID   int64             `json:"locationId"`
	LocationName string            `json:"locationName"`
	Workplaces   []WorkplaceStatus `json:"workplaces"`
}

// DailyStatusResponse снимок занятости офисных мест за день
type DailyStatusResponse struct {
	Day    types.Date    `json:"day"`
	Floors []FloorStatus `json:"floors"`
}

// WeekRef координаты ISO-недели
type WeekRef struct {
	Year int `json:"year"`
	Week int `json:"week"`
}

// WeekRow строка недельной таблицы: одно офисное место
type WeekRow struct {
	WorkplaceID   int64  `json:"workplaceId"`
	WorkplaceName string `json:"workplaceName"`
	Cells         []Cell `json:"cells"` // Понедельник..пятница
}

// WeekGridResponse недельная таблица занятости
type WeekGridResponse struct {
	Year     int          `json:"year"`
	Week     int          `json:"week"`
	Monday   types.Date   `json:"monday"`
	Friday   types.Date   `json:"friday"`
	Days     []types.Date `json:"days"`
	Header   []string     `json:"header"`
	Rows     []WeekRow    `json:"rows"`
	Previous WeekRef      `json:"previous"`
	Next     WeekRef      `json:"next"`
}

// MonthRef координаты месяца
type MonthRef struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// PersonSummary посещаемость одного сотрудника за месяц
// Доли в процентах от числа рабочих дней, округлены до 0.1
type PersonSummary struct {
	EmployeeID     string  `json:"employeeId"`
	FullName       string  `json:"fullName"`
	IsStudent      bool    `json:"isStudent"`
	TotalCount     int     `json:"totalCount"`
	OfficeCount    int     `json:"officeCount"`
	TotalRate      float64 `json:"totalRate"`
	OfficeRate     float64 `json:"officeRate"`
	BelowThreshold bool    `json:"belowThreshold"`
}

// DayCount число бронирований за день
type DayCount struct {
	Day   types.Date `json:"day"`
	Count int        `json:"count"`
}

// LocationSummary загрузка офисной локации за месяц
// Доли в процентах от (рабочие дни x число мест), округлены до 0.1
type LocationSummary struct {
	LocationID          int64      `json:"locationId"`
	LocationName        string     `json:"locationName"`
	WorkplaceCount      int        `json:"workplaceCount"`
	Daily               []DayCount `json:"daily"`
	Total               int        `json:"total"`
	TotalNonStudent     int        `json:"totalNonStudent"`
	TotalRate           float64    `json:"totalRate"`
	TotalNonStudentRate float64    `json:"totalNonStudentRate"`
	RatesAvailable      bool       `json:"ratesAvailable"`
}

// MonthlySummaryResponse месячная сводка посещаемости
type MonthlySummaryResponse struct {
	Year             int               `json:"year"`
	Month            time.Month        `json:"month"`
	First            types.Date        `json:"first"`
	Last             types.Date        `json:"last"`
	Region           string            `json:"region"`
	Workdays         int               `json:"workdays"`
	RatesAvailable   bool              `json:"ratesAvailable"` // false, если в месяце нет рабочих дней
	MinOfficePercent int               `json:"minOfficePercent"`
	Persons          []PersonSummary   `json:"persons"`
	Locations        []LocationSummary `json:"locations"`
	Previous         MonthRef          `json:"previous"`
	Next             MonthRef          `json:"next"`
}
