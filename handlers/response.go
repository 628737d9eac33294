package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shiptrack/models"
	"shiptrack/repository"
)

type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusForError maps the repository error taxonomy onto HTTP statuses.
func statusForError(err error) int {
	var enumErr *models.ErrInvalidEnum
	switch {
	case errors.As(err, &enumErr):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrInvalidValue):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrReference):
		return http.StatusUnprocessableEntity
	case errors.Is(err, repository.ErrDuplicate):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), ApiResponse{
		Success: false,
		Message: err.Error(),
	})
}
