package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shiptrack/models"
	"shiptrack/repository"
)

type fakeEventRepo struct {
	ingestErr error
	ingested  []*models.TrackingEvent
	events    []*models.TrackingEvent
}

func (f *fakeEventRepo) IngestEvent(ev *models.TrackingEvent) error {
	if f.ingestErr != nil {
		return f.ingestErr
	}
	ev.ID = int64(len(f.ingested) + 1)
	ev.RecordedAt = time.Date(2026, time.March, 2, 9, 31, 0, 0, time.UTC)
	f.ingested = append(f.ingested, ev)
	return nil
}

func (f *fakeEventRepo) GetEvents(shipmentID int64) ([]*models.TrackingEvent, error) {
	return f.events, nil
}

func (f *fakeEventRepo) GetContainerEvents(containerNo string) ([]*models.TrackingEvent, error) {
	return f.events, nil
}

type fakeArchive struct {
	messages []*repository.RawFeedMessage
	err      error
}

func (f *fakeArchive) ArchiveRaw(msg *repository.RawFeedMessage) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeArchive) GetRawByShipment(shipmentID int64) ([]*repository.RawFeedMessage, error) {
	return f.messages, nil
}

func postEvent(t *testing.T, h *EventHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.IngestEvent(w, req)
	return w
}

func TestIngestEventHandler(t *testing.T) {
	repo := &fakeEventRepo{}
	archive := &fakeArchive{}
	h := &EventHandler{Repo: repo, Archive: archive}

	w := postEvent(t, h, `{
		"shipment_id": 1,
		"event": "DEPARTED_PORT",
		"occurred_at": "2026-03-02T09:30:00Z",
		"status_hint": "IN_TRANSIT",
		"details": {"vessel": "MSC Anna"}
	}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Len(t, repo.ingested, 1)
	require.Equal(t, models.EventDepartedPort, repo.ingested[0].Event)
	require.Len(t, archive.messages, 1)
	require.Equal(t, "DEPARTED_PORT", archive.messages[0].Event)
}

func TestIngestEventHandlerDuplicate(t *testing.T) {
	h := &EventHandler{Repo: &fakeEventRepo{ingestErr: repository.ErrDuplicateEvent}}

	w := postEvent(t, h, `{
		"shipment_id": 1,
		"event": "DEPARTED_PORT",
		"occurred_at": "2026-03-02T09:30:00Z"
	}`)

	// A replay is a success from the feeder's point of view.
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool            `json:"success"`
		Data    map[string]bool `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.True(t, resp.Data["duplicate"])
}

func TestIngestEventHandlerErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unknown shipment", repository.ErrReference, http.StatusUnprocessableEntity},
		{"invalid enum", &models.ErrInvalidEnum{Field: "event", Value: "TELEPORTED"}, http.StatusBadRequest},
		{"bad payload value", fmt.Errorf("%w: eta_final in event details", repository.ErrInvalidValue), http.StatusBadRequest},
		{"missing record", repository.ErrNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &EventHandler{Repo: &fakeEventRepo{ingestErr: tc.err}}
			w := postEvent(t, h, `{
				"shipment_id": 1,
				"event": "DELAY",
				"occurred_at": "2026-03-02T09:30:00Z"
			}`)
			require.Equal(t, tc.want, w.Code)
			var resp ApiResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.False(t, resp.Success)
		})
	}
}

func TestIngestEventHandlerBadRequest(t *testing.T) {
	h := &EventHandler{Repo: &fakeEventRepo{}}

	w := postEvent(t, h, `{not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = postEvent(t, h, `{"event": "DELAY", "occurred_at": "2026-03-02T09:30:00Z"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIngestEventHandlerArchiveFailureIsAdvisory(t *testing.T) {
	repo := &fakeEventRepo{}
	h := &EventHandler{
		Repo:    repo,
		Archive: &fakeArchive{err: repository.ErrNotFound},
	}

	w := postEvent(t, h, `{
		"shipment_id": 1,
		"event": "GATE_IN",
		"occurred_at": "2026-03-02T09:30:00Z"
	}`)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.ingested, 1)
}

func TestGetContainerEventsHandler(t *testing.T) {
	h := &EventHandler{Repo: &fakeEventRepo{}}

	req := httptest.NewRequest(http.MethodGet, "/containers/MSCU1234567/events", nil)
	w := httptest.NewRecorder()
	h.GetContainerEvents(w, req, "MSCU1234567")

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool                    `json:"success"`
		Data    []*models.TrackingEvent `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	require.Empty(t, resp.Data)
}
