package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateLayout формат календарной даты (YYYY-MM-DD)
const DateLayout = "2006-01-02"

var (
	// ErrInvalidDate возвращается при некорректной строке даты
	ErrInvalidDate = errors.New("types: invalid date")

	// ErrInvalidISOWeek возвращается при несуществующей ISO-неделе
	ErrInvalidISOWeek = errors.New("types: invalid ISO week")

	// ErrInvalidMonth возвращается при некорректном месяце или годе
	ErrInvalidMonth = errors.New("types: invalid month")
)

// Минимальный и максимальный поддерживаемые годы
const (
	MinYear = 1
	MaxYear = 9999
)

// Date календарная дата без времени суток
// Сравнима через ==, поэтому может использоваться как ключ map
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate создает дату, нормализуя переполнение (например, 32 января -> 1 февраля)
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf возвращает календарную дату момента t в его собственной временной зоне
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate парсит дату в формате YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// Year возвращает год
func (d Date) Year() int { return d.year }

// Month возвращает месяц
func (d Date) Month() time.Month { return d.month }

// Day возвращает день месяца
func (d Date) Day() int { return d.day }

// IsZero сообщает, что дата не задана
func (d Date) IsZero() bool { return d.year == 0 && d.month == 0 && d.day == 0 }

// Time возвращает полночь даты в UTC
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Weekday возвращает день недели
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// ISOWeek возвращает ISO год и номер недели
func (d Date) ISOWeek() (year, week int) { return d.Time().ISOWeek() }

// AddDays сдвигает дату на n дней
func (d Date) AddDays(n int) Date { return DateOf(d.Time().AddDate(0, 0, n)) }

// Before сообщает, что d раньше other
func (d Date) Before(other Date) bool { return d.Time().Before(other.Time()) }

// After сообщает, что d позже other
func (d Date) After(other Date) bool { return d.Time().After(other.Time()) }

// Equal сообщает, что даты совпадают
func (d Date) Equal(other Date) bool { return d == other }

// String возвращает дату в формате YYYY-MM-DD
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateLayout)
}

// Format форматирует дату по layout из пакета time
func (d Date) Format(layout string) string { return d.Time().Format(layout) }

// MarshalJSON сериализует дату в строку YYYY-MM-DD
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON парсит дату из строки YYYY-MM-DD
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value реализует driver.Valuer (колонка типа DATE)
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan реализует sql.Scanner
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidDate, src)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ISOWeeksInYear возвращает количество ISO-недель в году (52 или 53)
// 28 декабря всегда попадает в последнюю неделю года
func ISOWeeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// FromISOWeek возвращает дату для ISO года, недели и дня недели
func FromISOWeek(year, week int, weekday time.Weekday) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: year %d out of range", ErrInvalidISOWeek, year)
	}
	if week < 1 || week > ISOWeeksInYear(year) {
		return Date{}, fmt.Errorf("%w: week %d does not exist in %d", ErrInvalidISOWeek, week, year)
	}

	// 4 января всегда в первой ISO-неделе
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7
	monday := jan4.AddDate(0, 0, -offset+(week-1)*7)

	dayOffset := (int(weekday) + 6) % 7
	return DateOf(monday.AddDate(0, 0, dayOffset)), nil
}

// MonthRange возвращает первый и последний день месяца
func MonthRange(year int, month time.Month) (first, last Date, err error) {
	if year < MinYear || year > MaxYear {
		return Date{}, Date{}, fmt.Errorf("%w: year %d out of range", ErrInvalidMonth, year)
	}
	if month < time.January || month > time.December {
		return Date{}, Date{}, fmt.Errorf("%w: month %d out of range", ErrInvalidMonth, month)
	}
	first = NewDate(year, month, 1)
	last = NewDate(year, month+1, 0)
	return first, last, nil
}
