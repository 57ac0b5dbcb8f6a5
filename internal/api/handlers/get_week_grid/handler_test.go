package get_week_grid

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-WorkplaceService/internal/service/occupancy"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/occupancy/models"
	"github.com/m04kA/SMC-WorkplaceService/pkg/logger"
)

type serviceStub struct {
	err error
}

func (s serviceStub) WeekGrid(ctx context.Context, year, week int) (*models.WeekGridResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.WeekGridResponse{Year: year, Week: week}, nil
}

func (s serviceStub) CurrentWeek() models.WeekRef {
	return models.WeekRef{Year: 2023, Week: 16}
}

func handle(h *Handler, year, week string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/occupancy/week/"+year+"/"+week, nil)
	r = mux.SetURLVars(r, map[string]string{"year": year, "week": week})
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	w := handle(NewHandler(serviceStub{}, logger.NewNop()), "2023", "15")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"week":15`)
}

func TestHandle_NotFound(t *testing.T) {
	h := NewHandler(serviceStub{err: fmt.Errorf("%w: 2023/54", occupancy.ErrWeekNotFound)}, logger.NewNop())

	assert.Equal(t, http.StatusNotFound, handle(h, "2023", "54").Code)
	assert.Equal(t, http.StatusNotFound, handle(h, "99999999999999999999", "1").Code)
}

func TestHandle_InternalError(t *testing.T) {
	w := handle(NewHandler(serviceStub{err: errors.New("boom")}, logger.NewNop()), "2023", "15")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRedirect(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(serviceStub{}, logger.NewNop()).Redirect(w, httptest.NewRequest(http.MethodGet, "/api/v1/occupancy/week", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/api/v1/occupancy/week/2023/16", w.Header().Get("Location"))
}
