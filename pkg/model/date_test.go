package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2026-09-10"`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Errorf("got %v, want %v", d.Time, want)
	}
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"10/09/2026"`), &d); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestDate_UnmarshalJSON_Null(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`null`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.IsZero() {
		t.Errorf("expected zero date, got %v", d.Time)
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewDate(2026, time.September, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"2026-09-10"` {
		t.Errorf("got %s, want %q", data, "2026-09-10")
	}
}

func TestSearchRequest_CheckOutDate(t *testing.T) {
	req := SearchRequest{
		CheckInDate:    NewDate(2026, time.September, 10),
		NumberOfNights: 3,
	}

	want := NewDate(2026, time.September, 13)
	if got := req.CheckOutDate(); !got.Equal(want.Time) {
		t.Errorf("got %v, want %v", got.Time, want.Time)
	}
}

func TestRoomRequest_Rooms_DefaultsToOne(t *testing.T) {
	if got := (RoomRequest{NumberOfAdults: 2}).Rooms(); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
	if got := (RoomRequest{NumberOfAdults: 2, NumberOfRooms: 3}).Rooms(); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}

func TestSearchRequest_TotalRooms(t *testing.T) {
	req := SearchRequest{
		RoomRequests: []RoomRequest{
			{NumberOfAdults: 2, NumberOfRooms: 2},
			{NumberOfAdults: 1},
		},
	}
	if got := req.TotalRooms(); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}
