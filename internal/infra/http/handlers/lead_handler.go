package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/atobones/google-sheets-automation/internal/entity"
	"github.com/atobones/google-sheets-automation/internal/infra/http/middleware"
	"github.com/atobones/google-sheets-automation/internal/usecase"
)

// The programmatic entry points for external integrations (a webhook
// bridge, a form backend). Each call maps 1:1 onto a workflow use case.

type LeadCreator interface {
	Execute(ctx context.Context, input usecase.AddLeadInput) (*usecase.AddLeadOutput, error)
}

type StatusUpdater interface {
	Execute(ctx context.Context, input usecase.UpdateStatusInput) error
}

type LeadFinder interface {
	Execute(ctx context.Context, id string) (*entity.Lead, error)
}

type LeadHandler struct {
	Creator LeadCreator
	Updater StatusUpdater
	Finder  LeadFinder
}

func NewLeadHandler(creator LeadCreator, updater StatusUpdater, finder LeadFinder) *LeadHandler {
	return &LeadHandler{Creator: creator, Updater: updater, Finder: finder}
}

type errorResponse struct {
	Error string `json:"error"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// CaptureLead handles POST /leads.
func (h *LeadHandler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var input usecase.AddLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	out, err := h.Creator.Execute(r.Context(), input)
	if err != nil {
		logrus.WithError(err).WithField("request_id", requestID).Error("capture lead failed")
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	middleware.RecordLeadCreated()
	logrus.WithFields(logrus.Fields{
		"request_id": requestID,
		"lead_id":    out.ID,
	}).Info("lead captured")
	writeJSON(w, http.StatusCreated, out)
}

// UpdateStatus handles PUT /leads/{id}/status.
func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	id := chi.URLParam(r, "id")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	input := usecase.UpdateStatusInput{ID: id, Status: req.Status}
	if err := h.Updater.Execute(r.Context(), input); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"request_id": requestID,
			"lead_id":    id,
		}).Warn("status update rejected")
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	middleware.RecordStatusUpdate(req.Status)
	logrus.WithFields(logrus.Fields{
		"request_id": requestID,
		"lead_id":    id,
		"status":     req.Status,
	}).Info("lead status updated")
	writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": req.Status})
}

// GetLead handles GET /leads/{id}.
func (h *LeadHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	lead, err := h.Finder.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// statusFor maps workflow errors onto HTTP statuses. SchemaError means
// the sheets were never set up (or were tampered with), which is a
// conflict with the request rather than a bad argument.
func statusFor(err error) int {
	switch {
	case usecase.IsValidationError(err):
		return http.StatusBadRequest
	case usecase.IsNotFoundError(err):
		return http.StatusNotFound
	case usecase.IsSchemaError(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
