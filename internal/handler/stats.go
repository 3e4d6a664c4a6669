package handler

import (
	"net/http"

	"github.com/fittrack/fittrack-go/internal/model"
	"github.com/fittrack/fittrack-go/internal/service"
)

// StatsHandler serves the caller's health stats.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{service: svc}
}

// HandleGet handles GET /health-stats/ requests.
func (h *StatsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.GetStats(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /health-stats/ requests.
func (h *StatsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req model.UpdateStatsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.UpdateStats(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
