package service

import (
	"time"

	"suntravels/internal/search/ledger"
	"suntravels/pkg/model"
)

// withinValidity reports whether both stay endpoints fall inside the
// contract's validity window, endpoints inclusive.
func withinValidity(c *model.Contract, checkIn, checkOut time.Time) bool {
	if checkIn.Before(c.StartDate) || checkIn.After(c.EndDate) {
		return false
	}
	if checkOut.Before(c.StartDate) || checkOut.After(c.EndDate) {
		return false
	}
	return true
}

// fitsCapacity reports whether the room type can host every requested party.
// One line too large disqualifies the room type for the whole request.
func fitsCapacity(rt *model.RoomType, requests []model.RoomRequest) bool {
	for _, rr := range requests {
		if rr.NumberOfAdults > rt.MaxAdults {
			return false
		}
	}
	return true
}

// hasInventory reports whether enough rooms remain once allocations are
// subtracted.
func hasInventory(rt *model.RoomType, l ledger.Ledger, roomsNeeded int) bool {
	return l.EffectiveAvailable(rt.ID, rt.NumberOfRooms) >= roomsNeeded
}
