package service

import (
	"math"
	"testing"

	"suntravels/pkg/model"
)

func TestPrice_SingleLine(t *testing.T) {
	rt := &model.RoomType{PricePerPerson: 100, NumberOfRooms: 5, MaxAdults: 3}
	requests := []model.RoomRequest{{NumberOfAdults: 2, NumberOfRooms: 1}}

	// 100 * 1.10 * 3 nights * 2 adults * 1 room
	if got := price(rt, 10, 3, requests); got != 660.00 {
		t.Errorf("got %v, want 660.00", got)
	}
}

func TestPrice_MultipleLines(t *testing.T) {
	rt := &model.RoomType{PricePerPerson: 50, NumberOfRooms: 10, MaxAdults: 4}
	requests := []model.RoomRequest{
		{NumberOfAdults: 2, NumberOfRooms: 2},
		{NumberOfAdults: 1},
	}

	// 50*1.2*2*2*2 + 50*1.2*2*1*1 = 480 + 120
	if got := price(rt, 20, 2, requests); got != 600.00 {
		t.Errorf("got %v, want 600.00", got)
	}
}

func TestPrice_RoomsDefaultToOne(t *testing.T) {
	rt := &model.RoomType{PricePerPerson: 100}
	withDefault := price(rt, 10, 1, []model.RoomRequest{{NumberOfAdults: 2}})
	withExplicit := price(rt, 10, 1, []model.RoomRequest{{NumberOfAdults: 2, NumberOfRooms: 1}})

	if withDefault != withExplicit {
		t.Errorf("default rooms priced %v, explicit 1 room priced %v", withDefault, withExplicit)
	}
}

func TestPrice_RoundsOnceAtEnd(t *testing.T) {
	// Each line alone rounds to a different total than the summed amount.
	rt := &model.RoomType{PricePerPerson: 33.335}
	requests := []model.RoomRequest{
		{NumberOfAdults: 1, NumberOfRooms: 1},
		{NumberOfAdults: 1, NumberOfRooms: 1},
	}

	got := price(rt, 0, 1, requests)
	want := roundToCents(33.335 + 33.335)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPrice_TwoDecimalPlaces(t *testing.T) {
	rt := &model.RoomType{PricePerPerson: 99.99}
	requests := []model.RoomRequest{{NumberOfAdults: 3, NumberOfRooms: 2}}

	for nights := 1; nights <= 14; nights++ {
		got := price(rt, 7.5, nights, requests)
		scaled := got * 100
		if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
			t.Errorf("nights=%d: price %v has more than 2 decimal places", nights, got)
		}
	}
}

func TestPrice_MonotonicInAdults(t *testing.T) {
	rt := &model.RoomType{PricePerPerson: 80}
	prev := 0.0
	for adults := 1; adults <= 6; adults++ {
		got := price(rt, 15, 3, []model.RoomRequest{{NumberOfAdults: adults, NumberOfRooms: 1}})
		if got <= prev {
			t.Errorf("price not increasing: adults=%d price=%v prev=%v", adults, got, prev)
		}
		prev = got
	}
}

func TestPrice_MonotonicInNights(t *testing.T) {
	rt := &model.RoomType{PricePerPerson: 80}
	requests := []model.RoomRequest{{NumberOfAdults: 2, NumberOfRooms: 1}}
	prev := 0.0
	for nights := 1; nights <= 10; nights++ {
		got := price(rt, 15, nights, requests)
		if got <= prev {
			t.Errorf("price not increasing: nights=%d price=%v prev=%v", nights, got, prev)
		}
		prev = got
	}
}

func TestPrice_MonotonicInMarkup(t *testing.T) {
	rt := &model.RoomType{PricePerPerson: 80}
	requests := []model.RoomRequest{{NumberOfAdults: 2, NumberOfRooms: 1}}
	prev := 0.0
	for _, markup := range []float64{1, 5, 10, 17.5, 25, 50} {
		got := price(rt, markup, 3, requests)
		if got <= prev {
			t.Errorf("price not increasing: markup=%v price=%v prev=%v", markup, got, prev)
		}
		prev = got
	}
}

func TestPrice_ZeroPerPersonPrice(t *testing.T) {
	rt := &model.RoomType{PricePerPerson: 0, NumberOfRooms: 5, MaxAdults: 2}
	requests := []model.RoomRequest{{NumberOfAdults: 2, NumberOfRooms: 1}}

	if got := price(rt, 10, 3, requests); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}
