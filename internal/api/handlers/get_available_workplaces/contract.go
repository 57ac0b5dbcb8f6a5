package get_available_workplaces

import (
	"context"

	getAvailableWorkplaces "github.com/m04kA/SMC-WorkplaceService/internal/usecase/get_available_workplaces"
)

type GetAvailableWorkplacesUseCase interface {
	Execute(ctx context.Context, req *getAvailableWorkplaces.Request) (*getAvailableWorkplaces.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
