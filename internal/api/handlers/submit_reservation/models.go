package submit_reservation

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	submitReservation "github.com/m04kA/SMC-WorkplaceService/internal/usecase/submit_reservation"
	"github.com/m04kA/SMC-WorkplaceService/pkg/types"
)

// SubmitReservationRequest HTTP request model
type SubmitReservationRequest struct {
	EmployeeID  string `json:"employeeId" validate:"required"`
	Day         string `json:"day" validate:"required,datetime=2006-01-02"` // "2023-04-21"
	WorkplaceID int64  `json:"workplaceId" validate:"gt=0"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            int64  `json:"id"`
	Day           string `json:"day"`
	EmployeeID    string `json:"employeeId"`
	WorkplaceID   int64  `json:"workplaceId"`
	WorkplaceName string `json:"workplaceName"`
	LocationName  string `json:"locationName"`
	Created       bool   `json:"created"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitReservationRequest) ToUseCaseRequest() (*submitReservation.Request, error) {
	day, err := types.ParseDate(r.Day)
	if err != nil {
		return nil, err
	}

	return &submitReservation.Request{
		EmployeeID:  strings.TrimSpace(r.EmployeeID),
		Day:         day,
		WorkplaceID: r.WorkplaceID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:            resp.ID,
		Day:           resp.Day.Format(domain.DateFormat),
		EmployeeID:    resp.EmployeeID,
		WorkplaceID:   resp.WorkplaceID,
		WorkplaceName: resp.WorkplaceName,
		LocationName:  resp.LocationName,
		Created:       resp.Created,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
