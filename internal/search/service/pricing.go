package service

import (
	"math"

	"suntravels/pkg/model"
)

// price computes the marked-up total for the whole request against one room
// type. Each line contributes pricePerPerson * markup * nights * adults *
// rooms; the sum is rounded half-up to cents once at the end.
func price(rt *model.RoomType, markupPercentage float64, nights int, requests []model.RoomRequest) float64 {
	markup := 1 + markupPercentage/100

	total := 0.0
	for _, rr := range requests {
		total += rt.PricePerPerson * markup * float64(nights) * float64(rr.NumberOfAdults) * float64(rr.Rooms())
	}

	return roundToCents(total)
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
