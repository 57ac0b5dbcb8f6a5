package list_info

import (
	"context"

	"github.com/m04kA/SMC-WorkplaceService/internal/service/directory/models"
)

type DirectoryService interface {
	ListInfo(ctx context.Context) ([]*models.InfoEntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
