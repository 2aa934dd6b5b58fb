package handler

import (
	"github.com/julienschmidt/httprouter"
)

// InventoryHandler groups the per-entity handlers behind a single
// route registration point.
type InventoryHandler struct {
	hotels    *HotelHandler
	contracts *ContractHandler
	roomTypes *RoomTypeHandler
}

func NewInventoryHandler(hotels *HotelHandler, contracts *ContractHandler, roomTypes *RoomTypeHandler) *InventoryHandler {
	return &InventoryHandler{
		hotels:    hotels,
		contracts: contracts,
		roomTypes: roomTypes,
	}
}

func (h *InventoryHandler) RegisterRoutes(router *httprouter.Router) {
	h.hotels.RegisterRoutes(router)
	h.contracts.RegisterRoutes(router)
	h.roomTypes.RegisterRoutes(router)
}
