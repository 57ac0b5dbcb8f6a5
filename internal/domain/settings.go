package domain

import "time"

// Settings is the singleton policy record
type Settings struct {
	ISORegion        string // ISO 3166-1/3166-2 code used by the holiday calendar
	MinOfficePercent int    // office attendance below this rate is flagged in the monthly summary

	UpdatedAt time.Time
}

// DefaultSettings returns the settings used when none are stored
func DefaultSettings() *Settings {
	return &Settings{
		ISORegion:        DefaultISORegion,
		MinOfficePercent: DefaultMinOfficePercent,
	}
}
