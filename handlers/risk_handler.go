package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"shiptrack/models"
	"shiptrack/repository"
)

type RiskHandler struct {
	Repo   repository.DerivedRepository
	Logger *zap.Logger
}

// GetRiskList handles GET /risk?status=AT_RISK. Results come from the
// materialized classification and may lag writes by one refresh cycle.
func (h *RiskHandler) GetRiskList(w http.ResponseWriter, r *http.Request) {
	status := models.RiskStatus(r.URL.Query().Get("status"))

	list, err := h.Repo.GetRiskList(status)
	if err != nil {
		writeError(w, err)
		return
	}
	if list == nil {
		list = []*models.RiskEntry{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
}

// RefreshRisk handles POST /risk/refresh. Idempotent; safe to run
// concurrently with ingestion.
func (h *RiskHandler) RefreshRisk(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.RefreshRisk(); err != nil {
		if h.Logger != nil {
			h.Logger.Error("risk refresh failed", zap.Error(err))
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "risk view refreshed"})
}
