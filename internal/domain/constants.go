package domain

// Default settings values
const (
	DefaultISORegion        = "ES-AN"
	DefaultMinOfficePercent = 20
)

// DefaultHorizonDays how far ahead a workplace can be reserved
const DefaultHorizonDays = 28 // 4 weeks

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// FreeMarker is reported for a workplace nobody occupies on a day
const FreeMarker = "free"

// WeekGridHeader is the header row of the week view
var WeekGridHeader = []string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
