package handler

import (
	"encoding/json"
	"net/http"

	"suntravels/internal/inventory/service"
	"suntravels/pkg/config"
	httputil "suntravels/pkg/http"
	"suntravels/pkg/logger"
	"suntravels/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type ContractHandler struct {
	service service.ContractService
	cfg     *config.Config
	log     *logger.Logger
}

func NewContractHandler(service service.ContractService, cfg *config.Config, log *logger.Logger) *ContractHandler {
	return &ContractHandler{
		service: service,
		cfg:     cfg,
		log:     log,
	}
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var contract model.Contract
	if err := json.NewDecoder(r.Body).Decode(&contract); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), &contract); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, contract); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *ContractHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	contract, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, contract); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

// GetAll lists contracts, optionally narrowed to one hotel via ?hotel_id=.
func (h *ContractHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if hotelID := r.URL.Query().Get("hotel_id"); hotelID != "" {
		contracts, err := h.service.GetByHotel(r.Context(), hotelID)
		if err != nil {
			if writeErr := httputil.WriteError(w, err); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
			}
			return
		}
		if err := httputil.WriteSuccess(w, contracts); err != nil {
			h.log.Error("failed to write success response", "handler", "GetAll", "operation", "WriteSuccess", "error", err)
		}
		return
	}

	limit, offset, err := httputil.ExtractLimitOffset(r, h.cfg)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	contracts, total, err := h.service.GetAll(r.Context(), limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, contracts, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetAll", "operation", "WritePaginated", "error", err)
	}
}

func (h *ContractHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updates model.ContractUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Update", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.Update(r.Context(), ps.ByName("id"), &updates); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *ContractHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *ContractHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/contracts", h.Create)
	router.GET("/api/v1/contracts", h.GetAll)
	router.GET("/api/v1/contracts/:id", h.GetByID)
	router.PUT("/api/v1/contracts/:id", h.Update)
	router.DELETE("/api/v1/contracts/:id", h.Delete)
}
