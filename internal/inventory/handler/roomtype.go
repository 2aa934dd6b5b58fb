package handler

import (
	"encoding/json"
	"net/http"

	"suntravels/internal/inventory/service"
	apperrors "suntravels/pkg/errors"
	httputil "suntravels/pkg/http"
	"suntravels/pkg/logger"
	"suntravels/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type RoomTypeHandler struct {
	service service.RoomTypeService
	log     *logger.Logger
}

func NewRoomTypeHandler(service service.RoomTypeService, log *logger.Logger) *RoomTypeHandler {
	return &RoomTypeHandler{
		service: service,
		log:     log,
	}
}

func (h *RoomTypeHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var roomType model.RoomType
	if err := json.NewDecoder(r.Body).Decode(&roomType); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), &roomType); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, roomType); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *RoomTypeHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	roomType, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, roomType); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

// GetAll lists room types of one contract; ?contract_id= is required.
func (h *RoomTypeHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	contractID := r.URL.Query().Get("contract_id")
	if contractID == "" {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("contract_id query parameter is required")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	roomTypes, err := h.service.GetByContract(r.Context(), contractID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, roomTypes); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "operation", "WriteSuccess", "error", err)
	}
}

func (h *RoomTypeHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updates model.RoomTypeUpdate
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

func (h *RoomTypeHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *RoomTypeHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/roomtypes", h.Create)
	router.GET("/api/v1/roomtypes", h.GetAll)
	router.GET("/api/v1/roomtypes/:id", h.GetByID)
	router.PUT("/api/v1/roomtypes/:id", h.Update)
	router.DELETE("/api/v1/roomtypes/:id", h.Delete)
}
