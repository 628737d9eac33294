package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"shiptrack/models"
	"shiptrack/repository"
)

type EventHandler struct {
	Repo    repository.EventRepository
	Archive repository.ArchiveRepository // optional
	Logger  *zap.Logger
}

// IngestEvent handles POST /events. Replays of the same upstream fact
// are reported as success with duplicate=true, not as failures.
func (h *EventHandler) IngestEvent(w http.ResponseWriter, r *http.Request) {
	var ev models.TrackingEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}
	if ev.ShipmentID == 0 {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "shipment_id is required",
		})
		return
	}

	err := h.Repo.IngestEvent(&ev)
	duplicate := errors.Is(err, repository.ErrDuplicateEvent)
	if err != nil && !duplicate {
		writeError(w, err)
		return
	}

	// Archive the verbatim message; advisory only, never fails the write.
	if h.Archive != nil {
		msg := &repository.RawFeedMessage{
			ShipmentID: ev.ShipmentID,
			Event:      string(ev.Event),
			OccurredAt: ev.OccurredAt,
			Body:       ev.Details,
		}
		if archErr := h.Archive.ArchiveRaw(msg); archErr != nil && h.Logger != nil {
			h.Logger.Warn("raw feed archive failed",
				zap.Int64("shipment_id", ev.ShipmentID),
				zap.Error(archErr),
			)
		}
	}

	if duplicate {
		writeJSON(w, http.StatusOK, ApiResponse{
			Success: true,
			Message: "event already recorded",
			Data:    map[string]bool{"duplicate": true},
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: ev})
}

// GetContainerEvents handles GET /containers/{containerNo}/events.
func (h *EventHandler) GetContainerEvents(w http.ResponseWriter, r *http.Request, containerNo string) {
	events, err := h.Repo.GetContainerEvents(containerNo)
	if err != nil {
		writeError(w, err)
		return
	}
	if events == nil {
		events = []*models.TrackingEvent{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: events})
}
