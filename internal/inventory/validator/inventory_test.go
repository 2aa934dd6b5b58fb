package validator

import (
	"testing"
	"time"

	"suntravels/pkg/logger"
	"suntravels/pkg/model"
)

func newValidator(t *testing.T) *InventoryValidator {
	t.Helper()
	return NewInventoryValidator(logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT}))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateContract(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name        string
		contract    *model.Contract
		expectValid bool
	}{
		{
			name: "valid contract",
			contract: &model.Contract{
				HotelID:          "64b0f0a1c2d3e4f5a6b7c8d9",
				StartDate:        date(2026, time.June, 1),
				EndDate:          date(2026, time.June, 30),
				MarkupPercentage: 10,
			},
			expectValid: true,
		},
		{
			name: "single day window allowed",
			contract: &model.Contract{
				HotelID:          "64b0f0a1c2d3e4f5a6b7c8d9",
				StartDate:        date(2026, time.June, 1),
				EndDate:          date(2026, time.June, 1),
				MarkupPercentage: 5,
			},
			expectValid: true,
		},
		{
			name: "end before start",
			contract: &model.Contract{
				HotelID:          "64b0f0a1c2d3e4f5a6b7c8d9",
				StartDate:        date(2026, time.June, 30),
				EndDate:          date(2026, time.June, 1),
				MarkupPercentage: 10,
			},
			expectValid: false,
		},
		{
			name: "zero markup",
			contract: &model.Contract{
				HotelID:   "64b0f0a1c2d3e4f5a6b7c8d9",
				StartDate: date(2026, time.June, 1),
				EndDate:   date(2026, time.June, 30),
			},
			expectValid: false,
		},
		{
			name: "missing hotel",
			contract: &model.Contract{
				StartDate:        date(2026, time.June, 1),
				EndDate:          date(2026, time.June, 30),
				MarkupPercentage: 10,
			},
			expectValid: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateContract(tc.contract)
			if tc.expectValid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.expectValid && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateRoomType(t *testing.T) {
	v := newValidator(t)

	valid := &model.RoomType{
		ContractID:     "64b0f0a1c2d3e4f5a6b7c8d9",
		Name:           "Standard",
		PricePerPerson: 100,
		NumberOfRooms:  5,
		MaxAdults:      2,
	}
	if err := v.ValidateRoomType(valid); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(rt *model.RoomType)
	}{
		{"zero price", func(rt *model.RoomType) { rt.PricePerPerson = 0 }},
		{"negative price", func(rt *model.RoomType) { rt.PricePerPerson = -10 }},
		{"zero rooms", func(rt *model.RoomType) { rt.NumberOfRooms = 0 }},
		{"zero adults", func(rt *model.RoomType) { rt.MaxAdults = 0 }},
		{"missing name", func(rt *model.RoomType) { rt.Name = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rt := *valid
			tc.mutate(&rt)
			if err := v.ValidateRoomType(&rt); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateContractUpdate_CrossField(t *testing.T) {
	v := newValidator(t)

	start := date(2026, time.June, 30)
	end := date(2026, time.June, 1)

	err := v.ValidateContractUpdate(&model.ContractUpdate{StartDate: &start, EndDate: &end})
	if err == nil {
		t.Error("expected error for inverted update window")
	}
}

func TestValidateHotel(t *testing.T) {
	v := newValidator(t)

	if err := v.ValidateHotel(&model.Hotel{Name: "Amari Galle"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := v.ValidateHotel(&model.Hotel{}); err == nil {
		t.Error("expected error for missing name")
	}
	if err := v.ValidateHotel(&model.Hotel{Name: "A"}); err == nil {
		t.Error("expected error for too-short name")
	}
}
