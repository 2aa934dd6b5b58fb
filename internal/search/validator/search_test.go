package validator

import (
	"testing"
	"time"

	"suntravels/pkg/logger"
	"suntravels/pkg/model"
)

func newValidator(t *testing.T) *SearchValidator {
	t.Helper()
	log := logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT})
	return NewSearchValidator(log, 5)
}

func futureDate(days int) model.Date {
	return model.Date{Time: time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, days)}
}

func TestIsSearchable(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name string
		req  *model.SearchRequest
		want bool
	}{
		{"nil request", nil, false},
		{"missing check-in", &model.SearchRequest{NumberOfNights: 2, RoomRequests: []model.RoomRequest{{NumberOfAdults: 1}}}, false},
		{"zero nights", &model.SearchRequest{CheckInDate: futureDate(5), RoomRequests: []model.RoomRequest{{NumberOfAdults: 1}}}, false},
		{"no rooms", &model.SearchRequest{CheckInDate: futureDate(5), NumberOfNights: 2}, false},
		{"complete", &model.SearchRequest{CheckInDate: futureDate(5), NumberOfNights: 2, RoomRequests: []model.RoomRequest{{NumberOfAdults: 1}}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.IsSearchable(tc.req); got != tc.want {
				t.Errorf("IsSearchable() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidateSearch_PastCheckIn(t *testing.T) {
	v := newValidator(t)

	req := &model.SearchRequest{
		CheckInDate:    model.Date{Time: time.Now().UTC().AddDate(0, 0, -1)},
		NumberOfNights: 2,
		RoomRequests:   []model.RoomRequest{{NumberOfAdults: 2}},
	}

	if err := v.ValidateSearch(req); err == nil {
		t.Error("expected error for past check-in")
	}
}

func TestValidateSearch_TodayAccepted(t *testing.T) {
	v := newValidator(t)

	req := &model.SearchRequest{
		CheckInDate:    futureDate(0),
		NumberOfNights: 1,
		RoomRequests:   []model.RoomRequest{{NumberOfAdults: 1}},
	}

	if err := v.ValidateSearch(req); err != nil {
		t.Errorf("unexpected error for same-day check-in: %v", err)
	}
}

func TestValidateSearch_NonPositiveAdults(t *testing.T) {
	v := newValidator(t)

	req := &model.SearchRequest{
		CheckInDate:    futureDate(5),
		NumberOfNights: 2,
		RoomRequests:   []model.RoomRequest{{NumberOfAdults: 0}},
	}

	if err := v.ValidateSearch(req); err == nil {
		t.Error("expected error for zero adults")
	}
}

func TestValidateSearch_TooManyLines(t *testing.T) {
	v := newValidator(t)

	lines := make([]model.RoomRequest, 6)
	for i := range lines {
		lines[i] = model.RoomRequest{NumberOfAdults: 1}
	}

	req := &model.SearchRequest{
		CheckInDate:    futureDate(5),
		NumberOfNights: 2,
		RoomRequests:   lines,
	}

	if err := v.ValidateSearch(req); err == nil {
		t.Error("expected error past the room request cap")
	}
}

func TestValidateReportRange(t *testing.T) {
	v := newValidator(t)
	from := time.Now().UTC()

	if err := v.ValidateReportRange(from, from.AddDate(0, 0, 30), 366); err != nil {
		t.Errorf("unexpected error for in-bounds range: %v", err)
	}

	if err := v.ValidateReportRange(from, from.AddDate(2, 0, 0), 366); err == nil {
		t.Error("expected error for range past the cap")
	}

	if err := v.ValidateReportRange(time.Time{}, from, 366); err == nil {
		t.Error("expected error for missing from date")
	}
}
