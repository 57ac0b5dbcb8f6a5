package submit_reservation

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-WorkplaceService/internal/api/handlers"
	submitReservation "github.com/m04kA/SMC-WorkplaceService/internal/usecase/submit_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFields      = "требуются employeeId, day (YYYY-MM-DD) и положительный workplaceId"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDayInPast          = "нельзя бронировать прошедшие дни"
	msgDayBeyondHorizon   = "бронировать можно не более чем на %d дн. вперед"
	msgNonWorkingDay      = "выбранный день выходной или праздничный"
	msgEmployeeNotFound   = "сотрудник не найден"
	msgEmployeeInactive   = "сотрудник неактивен"
	msgWorkplaceNotFound  = "рабочее место не найдено"
	msgWorkplaceTaken     = "рабочее место на этот день уже занято"
	msgConflictRetry      = "место сейчас бронирует кто-то еще, повторите попытку"
	msgConfiguration      = "регион в настройках не поддерживается календарем праздников"
)

// conflictRetryAfter значение заголовка Retry-After для конкурентных конфликтов
const conflictRetryAfter = time.Second

type Handler struct {
	useCase     SubmitReservationUseCase
	validate    *validator.Validate
	horizonDays int
	logger      Logger
}

// NewHandler horizonDays берется из reservations.horizon_days и попадает в текст ошибки
func NewHandler(useCase SubmitReservationUseCase, horizonDays int, logger Logger) *Handler {
	return &Handler{
		useCase:     useCase,
		validate:    validator.New(),
		horizonDays: horizonDays,
		logger:      logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("POST /reservations - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		case errors.Is(err, submitReservation.ErrDayInPast):
			h.logger.Warn("POST /reservations - Day in past: employee_id=%s, day=%s", req.EmployeeID, req.Day)
			handlers.RespondBadRequest(w, msgDayInPast)

		case errors.Is(err, submitReservation.ErrDayBeyondHorizon):
			h.logger.Warn("POST /reservations - Day beyond horizon: employee_id=%s, day=%s", req.EmployeeID, req.Day)
			handlers.RespondBadRequest(w, fmt.Sprintf(msgDayBeyondHorizon, h.horizonDays))

		case errors.Is(err, submitReservation.ErrNonWorkingDay):
			h.logger.Warn("POST /reservations - Non-working day: employee_id=%s, day=%s", req.EmployeeID, req.Day)
			handlers.RespondBadRequest(w, msgNonWorkingDay)

		case errors.Is(err, submitReservation.ErrEmployeeNotFound):
			h.logger.Warn("POST /reservations - Employee not found: employee_id=%s", req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, submitReservation.ErrEmployeeInactive):
			h.logger.Warn("POST /reservations - Employee inactive: employee_id=%s", req.EmployeeID)
			handlers.RespondBadRequest(w, msgEmployeeInactive)

		case errors.Is(err, submitReservation.ErrWorkplaceNotFound):
			h.logger.Warn("POST /reservations - Workplace not found: workplace_id=%d", req.WorkplaceID)
			handlers.RespondNotFound(w, msgWorkplaceNotFound)

		case errors.Is(err, submitReservation.ErrWorkplaceTaken):
			h.logger.Warn("POST /reservations - Workplace taken: workplace_id=%d, day=%s", req.WorkplaceID, req.Day)
			handlers.RespondConflict(w, msgWorkplaceTaken, 0)

		case errors.Is(err, submitReservation.ErrConflictRetry):
			h.logger.Warn("POST /reservations - Concurrent conflict: workplace_id=%d, day=%s, error=%v",
				req.WorkplaceID, req.Day, err)
			handlers.RespondConflict(w, msgConflictRetry, conflictRetryAfter)

		case errors.Is(err, submitReservation.ErrConfiguration):
			h.logger.Error("POST /reservations - Configuration error: %v", err)
			handlers.RespondUnprocessable(w, msgConfiguration)

		default:
			h.logger.Error("POST /reservations - Failed to submit reservation: employee_id=%s, day=%s, workplace_id=%d, error=%v",
				req.EmployeeID, req.Day, req.WorkplaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	h.logger.Info("POST /reservations - Reservation saved: reservation_id=%d, employee_id=%s, day=%s, workplace_id=%d, created=%t",
		result.ID, result.EmployeeID, response.Day, result.WorkplaceID, result.Created)
	handlers.RespondJSON(w, status, response)
}
