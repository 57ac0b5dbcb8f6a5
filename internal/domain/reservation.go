package domain

import (
	"time"

	"github.com/m04kA/SMC-WorkplaceService/pkg/types"
)

// Reservation assigns a workplace to an employee for one day
type Reservation struct {
	ID          int64
	Day         types.Date
	EmployeeID  string
	WorkplaceID int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReservationDetails is a reservation joined with employee, workplace and location data
// Used by read-only reports
type ReservationDetails struct {
	Reservation
	Employee      EmployeeRef
	WorkplaceName string
	FloorID       int64
	LocationID    int64
	LocationName  string
	IsOffice      bool
}

// ReservationFilter narrows reservation queries; nil fields are ignored
type ReservationFilter struct {
	From        *types.Date // inclusive
	To          *types.Date // inclusive
	EmployeeID  *string
	WorkplaceID *int64
	OfficeOnly  bool
}
