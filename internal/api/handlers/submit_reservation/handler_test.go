package submit_reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	submitReservation "github.com/m04kA/SMC-WorkplaceService/internal/usecase/submit_reservation"
	"github.com/m04kA/SMC-WorkplaceService/pkg/logger"
	"github.com/m04kA/SMC-WorkplaceService/pkg/types"
)

type useCaseStub struct {
	resp *submitReservation.Response
	err  error
	got  *submitReservation.Request
}

func (s *useCaseStub) Execute(ctx context.Context, req *submitReservation.Request) (*submitReservation.Response, error) {
	s.got = req
	return s.resp, s.err
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

const testHorizonDays = 28

const validBody = `{"employeeId":"E-1","day":"2023-04-21","workplaceId":3}`

func TestHandle_Created(t *testing.T) {
	now := time.Date(2023, 4, 20, 9, 0, 0, 0, time.UTC)
	uc := &useCaseStub{resp: &submitReservation.Response{
		ID: 42, Day: types.NewDate(2023, time.April, 21), EmployeeID: "E-1", WorkplaceID: 3,
		WorkplaceName: "A-1", LocationName: "HQ", Created: true, CreatedAt: now, UpdatedAt: now,
	}}
	w := post(NewHandler(uc, testHorizonDays, logger.NewNop()), validBody)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, types.NewDate(2023, time.April, 21), uc.got.Day)
	assert.Equal(t, int64(3), uc.got.WorkplaceID)

	var body ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body.ID)
	assert.Equal(t, "2023-04-21", body.Day)
	assert.Equal(t, "2023-04-20T09:00:00Z", body.CreatedAt)
	assert.True(t, body.Created)
}

func TestHandle_UpdatedReturnsOK(t *testing.T) {
	uc := &useCaseStub{resp: &submitReservation.Response{ID: 42, Day: types.NewDate(2023, time.April, 21)}}
	w := post(NewHandler(uc, testHorizonDays, logger.NewNop()), validBody)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandle_BadRequests(t *testing.T) {
	bodies := []string{
		`not json`,
		`{"employeeId":"E-1","day":"2023-04-21","workplaceId":3,"extra":true}`,
		`{"day":"2023-04-21","workplaceId":3}`,
		`{"employeeId":"E-1","day":"21.04.2023","workplaceId":3}`,
		`{"employeeId":"E-1","day":"2023-04-21","workplaceId":0}`,
	}

	for _, body := range bodies {
		uc := &useCaseStub{}
		w := post(NewHandler(uc, testHorizonDays, logger.NewNop()), body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Nil(t, uc.got, body)
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err        error
		status     int
		message    string
		retryAfter string
	}{
		{submitReservation.ErrDayInPast, http.StatusBadRequest, msgDayInPast, ""},
		{submitReservation.ErrNonWorkingDay, http.StatusBadRequest, msgNonWorkingDay, ""},
		{submitReservation.ErrEmployeeInactive, http.StatusBadRequest, msgEmployeeInactive, ""},
		{submitReservation.ErrEmployeeNotFound, http.StatusNotFound, msgEmployeeNotFound, ""},
		{submitReservation.ErrWorkplaceNotFound, http.StatusNotFound, msgWorkplaceNotFound, ""},
		{submitReservation.ErrWorkplaceTaken, http.StatusConflict, msgWorkplaceTaken, ""},
		{fmt.Errorf("%w: lock timeout", submitReservation.ErrConflictRetry), http.StatusConflict, msgConflictRetry, "1"},
		{submitReservation.ErrConfiguration, http.StatusUnprocessableEntity, msgConfiguration, ""},
		{submitReservation.ErrInternal, http.StatusInternalServerError, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := post(NewHandler(&useCaseStub{err: tt.err}, testHorizonDays, logger.NewNop()), validBody)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.retryAfter, w.Header().Get("Retry-After"))
			if tt.message != "" {
				assert.Contains(t, w.Body.String(), tt.message)
			}
		})
	}
}

func TestHandle_BeyondHorizonUsesConfiguredDays(t *testing.T) {
	for _, days := range []int{7, 28, 60} {
		w := post(NewHandler(&useCaseStub{err: submitReservation.ErrDayBeyondHorizon}, days, logger.NewNop()), validBody)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), fmt.Sprintf("на %d дн. вперед", days))
		assert.NotContains(t, w.Body.String(), "недели")
	}
}
