package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shiptrack/handlers"
	"shiptrack/models"
)

type stubEventRepo struct{}

func (stubEventRepo) IngestEvent(ev *models.TrackingEvent) error { return nil }

func (stubEventRepo) GetEvents(shipmentID int64) ([]*models.TrackingEvent, error) {
	return nil, nil
}

func (stubEventRepo) GetContainerEvents(containerNo string) ([]*models.TrackingEvent, error) {
	return []*models.TrackingEvent{}, nil
}

func TestContainerEventsRoute(t *testing.T) {
	// Routes register on the default mux, so set up once for the test.
	SetupRoutes(zap.NewNop(),
		&handlers.UserHandler{},
		&handlers.CatalogHandler{},
		&handlers.ShipmentHandler{},
		&handlers.EventHandler{Repo: stubEventRepo{}},
		&handlers.RiskHandler{},
		&handlers.ExceptionHandler{},
		&handlers.ReportHandler{},
	)

	serve := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		w := httptest.NewRecorder()
		http.DefaultServeMux.ServeHTTP(w, req)
		return w
	}

	require.Equal(t, http.StatusOK, serve(http.MethodGet, "/containers/MSCU1234567/events").Code)

	// Wrong method on a real resource is 405, not 404.
	require.Equal(t, http.StatusMethodNotAllowed, serve(http.MethodPost, "/containers/MSCU1234567/events").Code)
	require.Equal(t, http.StatusMethodNotAllowed, serve(http.MethodDelete, "/containers/MSCU1234567/events").Code)

	require.Equal(t, http.StatusNotFound, serve(http.MethodGet, "/containers/MSCU1234567/legs").Code)
}
