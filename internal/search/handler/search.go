package handler

import (
	"encoding/json"
	"net/http"

	"suntravels/internal/search/service"
	"suntravels/pkg/config"
	httputil "suntravels/pkg/http"
	"suntravels/pkg/logger"
	"suntravels/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type SearchHandler struct {
	service service.SearchService
	cfg     *config.Config
	log     *logger.Logger
}

func NewSearchHandler(service service.SearchService, cfg *config.Config, log *logger.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		cfg:     cfg,
		log:     log,
	}
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Search", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	limit, offset, err := httputil.ExtractLimitOffset(r, h.cfg)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Search", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	results, total, err := h.service.Search(r.Context(), &req, limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Search", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, results, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "Search", "operation", "WritePaginated", "error", err)
	}
}

func (h *SearchHandler) AvailabilityReport(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	from, err := httputil.ExtractDateParam(r, "from_date")
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "AvailabilityReport", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	to, err := httputil.ExtractDateParam(r, "to_date")
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "AvailabilityReport", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	rows, err := h.service.AvailabilityReport(r.Context(), model.Date{Time: from}, model.Date{Time: to})
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "AvailabilityReport", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, rows); err != nil {
		h.log.Error("failed to write success response", "handler", "AvailabilityReport", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SearchHandler) ExpiringContracts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	from, err := httputil.ExtractDateParam(r, "from_date")
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ExpiringContracts", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	to, err := httputil.ExtractDateParam(r, "to_date")
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ExpiringContracts", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	rows, err := h.service.ExpiringContracts(r.Context(), model.Date{Time: from}, model.Date{Time: to})
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ExpiringContracts", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, rows); err != nil {
		h.log.Error("failed to write success response", "handler", "ExpiringContracts", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SearchHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/search", h.Search)
	router.GET("/api/v1/reports/availability", h.AvailabilityReport)
	router.GET("/api/v1/reports/contracts/expiring", h.ExpiringContracts)
}
