package list_employees

import (
	"context"

	"github.com/m04kA/SMC-WorkplaceService/internal/service/directory/models"
)

type DirectoryService interface {
	ListEmployees(ctx context.Context, activeOnly bool) ([]*models.EmployeeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
