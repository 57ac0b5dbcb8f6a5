package list_floors

import (
	"context"

	"github.com/m04kA/SMC-WorkplaceService/internal/service/directory/models"
)

type DirectoryService interface {
	ListFloors(ctx context.Context) ([]*models.FloorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
