package get_available_workplaces

import (
	"strings"

	getAvailableWorkplaces "github.com/m04kA/SMC-WorkplaceService/internal/usecase/get_available_workplaces"
	"github.com/m04kA/SMC-WorkplaceService/pkg/types"
)

// WorkplaceResponse HTTP response model
type WorkplaceResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	FloorName    string `json:"floorName"`
	LocationName string `json:"locationName"`
	IsOffice     bool   `json:"isOffice"`
}

// AvailableWorkplacesResponse HTTP response model
type AvailableWorkplacesResponse struct {
	Workplaces          []WorkplaceResponse `json:"workplaces"`
	ReservedWorkplaceID *int64              `json:"reservedWorkplaceId"`
}

// ToUseCaseRequest формирует запрос use case из query параметров
// Пустые и некорректные значения передаются как nil
func ToUseCaseRequest(employee, day string) *getAvailableWorkplaces.Request {
	req := &getAvailableWorkplaces.Request{}

	if employee = strings.TrimSpace(employee); employee != "" {
		req.EmployeeID = &employee
	}

	if parsed, err := types.ParseDate(strings.TrimSpace(day)); err == nil {
		req.Day = &parsed
	}

	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableWorkplaces.Response) *AvailableWorkplacesResponse {
	workplaces := make([]WorkplaceResponse, 0, len(resp.Workplaces))
	for _, w := range resp.Workplaces {
		workplaces = append(workplaces, WorkplaceResponse{
			ID:           w.ID,
			Name:         w.Name,
			FloorName:    w.FloorName,
			LocationName: w.LocationName,
			IsOffice:     w.IsOffice,
		})
	}

	return &AvailableWorkplacesResponse{
		Workplaces:          workplaces,
		ReservedWorkplaceID: resp.ReservedWorkplaceID,
	}
}
