package get_available_workplaces

import (
	"net/http"

	"github.com/m04kA/SMC-WorkplaceService/internal/api/handlers"
)

type Handler struct {
	useCase GetAvailableWorkplacesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableWorkplacesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/workplaces/available
// Query params: employee, day (YYYY-MM-DD); при неполных данных возвращается пустой список
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	useCaseReq := ToUseCaseRequest(query.Get("employee"), query.Get("day"))

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("GET /workplaces/available - Failed to get workplaces: employee=%q, day=%q, error=%v",
			query.Get("employee"), query.Get("day"), err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /workplaces/available - Workplaces retrieved: employee=%q, day=%q, count=%d",
		query.Get("employee"), query.Get("day"), len(result.Workplaces))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
