package holidays

import (
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/aa"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/es"
	"github.com/rickar/cal/v2/fr"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/us"
)

// fixed фиксированный праздник (день месяца)
func fixed(name string, month time.Month, day int) *cal.Holiday {
	return &cal.Holiday{Name: name, Type: cal.ObservancePublic, Month: month, Day: day, Func: cal.CalcDayOfMonth}
}

// Региональные праздники автономных сообществ Испании, в пакете es есть только общенациональные
var (
	esHolyThursday = aa.MaundyThursday.Clone(&cal.Holiday{Name: "Jueves Santo", Type: cal.ObservancePublic})
	esEasterMonday = aa.EasterMonday.Clone(&cal.Holiday{Name: "Lunes de Pascua", Type: cal.ObservancePublic})
	esStStephen    = aa.ChristmasDay2.Clone(&cal.Holiday{Name: "Sant Esteve", Type: cal.ObservancePublic})
	esAndalusiaDay = fixed("Día de Andalucía", time.February, 28)
	esMadridDay    = fixed("Fiesta de la Comunidad de Madrid", time.May, 2)
	esStJohn       = fixed("Sant Joan", time.June, 24)
	esCataloniaDay = fixed("Diada Nacional de Catalunya", time.September, 11)
	esStJoseph     = fixed("San José", time.March, 19)
	esValenciaDay  = fixed("Día de la Comunitat Valenciana", time.October, 9)
)

// usHolidays федеральные праздники США
var usHolidays = []*cal.Holiday{
	us.NewYear,
	us.MlkDay,
	us.PresidentsDay,
	us.MemorialDay,
	us.Juneteenth,
	us.IndependenceDay,
	us.LaborDay,
	us.ThanksgivingDay,
	us.ChristmasDay,
}

// regionHolidays праздники по кодам ISO 3166-1 / ISO 3166-2
var regionHolidays = map[string][]*cal.Holiday{
	"ES":    es.Holidays,
	"ES-AN": withExtra(es.Holidays, esAndalusiaDay, esHolyThursday),
	"ES-MD": withExtra(es.Holidays, esMadridDay, esHolyThursday),
	"ES-CT": withExtra(es.Holidays, esEasterMonday, esStJohn, esCataloniaDay, esStStephen),
	"ES-VC": withExtra(es.Holidays, esStJoseph, esEasterMonday, esValenciaDay),
	"DE":    de.Holidays,
	"DE-BY": de.HolidaysBY,
	"FR":    fr.Holidays,
	"GB":    gb.Holidays,
	"US":    usHolidays,
}

func withExtra(base []*cal.Holiday, extra ...*cal.Holiday) []*cal.Holiday {
	out := make([]*cal.Holiday, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}

func newCalendar(holidays []*cal.Holiday) *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(holidays...)
	return c
}
