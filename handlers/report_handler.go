package handlers

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"shiptrack/repository"
	"shiptrack/utils"
)

type ReportHandler struct {
	Repo      *repository.ReportRepository
	Shipments repository.ShipmentRepository
	Logger    *zap.Logger
}

// BuildReport handles POST /shipments/{ref}/report: renders the status
// report PDF, uploads it and stores the URL on the shipment.
func (h *ReportHandler) BuildReport(w http.ResponseWriter, r *http.Request, ref string) {
	pdf, err := utils.GenerateStatusReportPDF(h.Repo, ref)
	if err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("status_%s_%s.pdf", ref, time.Now().UTC().Format("20060102150405"))
	url, err := utils.UploadReport(pdf, filename)
	if err != nil {
		writeError(w, err)
		return
	}

	s, err := h.Repo.ShipmentRepo.GetShipmentByReference(ref)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Shipments.UpdateReportURL(s.ID, url); err != nil {
		writeError(w, err)
		return
	}

	if h.Logger != nil {
		h.Logger.Info("status report generated",
			zap.String("reference_no", ref),
			zap.String("url", url),
		)
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data:    map[string]string{"report_url": url},
	})
}
