package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	"suntravels/internal/search/ledger"
	"suntravels/internal/search/validator"
	"suntravels/pkg/config"
	apperrors "suntravels/pkg/errors"
	"suntravels/pkg/logger"
	"suntravels/pkg/model"
)

type mockContractStore struct {
	findValidForStay    func(ctx context.Context, checkIn, checkOut time.Time, limit int, offset int64) ([]*model.ContractSnapshot, error)
	countValidForStay   func(ctx context.Context, checkIn, checkOut time.Time) (int64, error)
	findValidForRange   func(ctx context.Context, from, to time.Time) ([]*model.ContractSnapshot, error)
	findExpiringBetween func(ctx context.Context, from, to time.Time) ([]*model.ContractSnapshot, error)
}

func (m *mockContractStore) FindValidForStay(ctx context.Context, checkIn, checkOut time.Time, limit int, offset int64) ([]*model.ContractSnapshot, error) {
	return m.findValidForStay(ctx, checkIn, checkOut, limit, offset)
}

func (m *mockContractStore) CountValidForStay(ctx context.Context, checkIn, checkOut time.Time) (int64, error) {
	return m.countValidForStay(ctx, checkIn, checkOut)
}

func (m *mockContractStore) FindValidForRange(ctx context.Context, from, to time.Time) ([]*model.ContractSnapshot, error) {
	return m.findValidForRange(ctx, from, to)
}

func (m *mockContractStore) FindExpiringBetween(ctx context.Context, from, to time.Time) ([]*model.ContractSnapshot, error) {
	return m.findExpiringBetween(ctx, from, to)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Log:                logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT}),
		MaxRoomRequests:    20,
		ReportMaxRangeDays: 366,
	}
}

func newTestService(t *testing.T, store *mockContractStore, l ledger.Ledger) SearchService {
	t.Helper()
	cfg := testConfig(t)
	if l == nil {
		l = ledger.NewMemoryLedger()
	}
	v := validator.NewSearchValidator(cfg.Log, cfg.MaxRoomRequests)
	return NewSearchService(store, l, v, cfg)
}

// futureDate keeps test stays safely past "today" so past-check-in
// validation never interferes.
func futureDate(daysFromNow int) model.Date {
	return model.Date{Time: time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, daysFromNow)}
}

func snapshotWindow(checkIn model.Date, nights int) (time.Time, time.Time) {
	return checkIn.AddDate(0, 0, -10), checkIn.AddDate(0, 0, nights+10)
}

func singleContractStore(snap *model.ContractSnapshot) *mockContractStore {
	return &mockContractStore{
		findValidForStay: func(_ context.Context, _, _ time.Time, _ int, _ int64) ([]*model.ContractSnapshot, error) {
			return []*model.ContractSnapshot{snap}, nil
		},
		countValidForStay: func(_ context.Context, _, _ time.Time) (int64, error) {
			return 1, nil
		},
	}
}

func TestSearch_PricesAvailableRoomType(t *testing.T) {
	checkIn := futureDate(30)
	start, end := snapshotWindow(checkIn, 3)

	snap := &model.ContractSnapshot{
		Contract: model.Contract{
			ID:               "c1",
			HotelID:          "h1",
			StartDate:        start,
			EndDate:          end,
			MarkupPercentage: 10,
		},
		HotelName: "Amari Galle",
		RoomTypes: []model.RoomType{
			{ID: "rt1", ContractID: "c1", Name: "Standard", PricePerPerson: 100, NumberOfRooms: 5, MaxAdults: 3},
		},
	}

	svc := newTestService(t, singleContractStore(snap), nil)

	req := &model.SearchRequest{
		CheckInDate:    checkIn,
		NumberOfNights: 3,
		RoomRequests:   []model.RoomRequest{{NumberOfAdults: 2, NumberOfRooms: 1}},
	}

	results, total, err := svc.Search(context.Background(), req, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(results) != 1 {
		t.Fatalf("got %d results, total %d", len(results), total)
	}

	rt := results[0].RoomTypes[0]
	if !rt.Available {
		t.Error("expected room type to be available")
	}
	if rt.TotalPrice != 660.00 {
		t.Errorf("got price %v, want 660.00", rt.TotalPrice)
	}
	if results[0].HotelName != "Amari Galle" {
		t.Errorf("got hotel %q", results[0].HotelName)
	}
}

// A zero per-person price on an otherwise available room type keeps
// Available true with TotalPrice 0; the flag, not the price, says whether
// the room type can host the stay.
func TestSearch_ZeroPriceRoomTypeStaysAvailable(t *testing.T) {
	checkIn := futureDate(30)
	start, end := snapshotWindow(checkIn, 3)

	snap := &model.ContractSnapshot{
		Contract: model.Contract{
			ID:               "c1",
			HotelID:          "h1",
			StartDate:        start,
			EndDate:          end,
			MarkupPercentage: 10,
		},
		HotelName: "Jetwing Lighthouse",
		RoomTypes: []model.RoomType{
			{ID: "rt1", ContractID: "c1", Name: "Promo Single", PricePerPerson: 0, NumberOfRooms: 5, MaxAdults: 2},
		},
	}

	svc := newTestService(t, singleContractStore(snap), nil)

	req := &model.SearchRequest{
		CheckInDate:    checkIn,
		NumberOfNights: 3,
		RoomRequests:   []model.RoomRequest{{NumberOfAdults: 2, NumberOfRooms: 1}},
	}

	results, _, err := svc.Search(context.Background(), req, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || len(results[0].RoomTypes) != 1 {
		t.Fatalf("got %d results", len(results))
	}

	rt := results[0].RoomTypes[0]
	if !rt.Available {
		t.Error("expected zero-price room type to stay available")
	}
	if rt.TotalPrice != 0 {
		t.Errorf("got price %v, want 0", rt.TotalPrice)
	}
}

func TestSearch_InsufficientRoomsFlaggedUnavailable(t *testing.T) {
	checkIn := futureDate(30)
	start, end := snapshotWindow(checkIn, 2)

	snap := &model.ContractSnapshot{
		Contract:  model.Contract{ID: "c1", StartDate: start, EndDate: end, MarkupPercentage: 5},
		HotelName: "Hilton Colombo",
		RoomTypes: []model.RoomType{
			{ID: "rt1", Name: "Deluxe", PricePerPerson: 120, NumberOfRooms: 5, MaxAdults: 2},
		},
	}

	svc := newTestService(t, singleContractStore(snap), nil)

	// Six single-room lines against five rooms.
	lines := make([]model.RoomRequest, 6)
	for i := range lines {
		lines[i] = model.RoomRequest{NumberOfAdults: 1, NumberOfRooms: 1}
	}

	results, _, err := svc.Search(context.Background(), &model.SearchRequest{
		CheckInDate:    checkIn,
		NumberOfNights: 2,
		RoomRequests:   lines,
	}, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rt := results[0].RoomTypes[0]
	if rt.Available {
		t.Error("expected unavailable when request needs more rooms than the contract has")
	}
	if rt.TotalPrice != 0 {
		t.Errorf("unavailable room type priced %v, want 0", rt.TotalPrice)
	}
}

func TestSearch_OversizedPartyFlaggedUnavailable(t *testing.T) {
	checkIn := futureDate(15)
	start, end := snapshotWindow(checkIn, 1)

	snap := &model.ContractSnapshot{
		Contract:  model.Contract{ID: "c1", StartDate: start, EndDate: end, MarkupPercentage: 5},
		HotelName: "Galle Face",
		RoomTypes: []model.RoomType{
			{ID: "rt1", Name: "Single", PricePerPerson: 60, NumberOfRooms: 10, MaxAdults: 1},
		},
	}

	svc := newTestService(t, singleContractStore(snap), nil)

	results, _, err := svc.Search(context.Background(), &model.SearchRequest{
		CheckInDate:    checkIn,
		NumberOfNights: 1,
		RoomRequests: []model.RoomRequest{
			{NumberOfAdults: 1},
			{NumberOfAdults: 2},
		},
	}, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if results[0].RoomTypes[0].Available {
		t.Error("expected unavailable when any party exceeds max adults")
	}
}

func TestSearch_StayOutsideValidityFlaggedUnavailable(t *testing.T) {
	checkIn := futureDate(30)

	// Contract window ends before check-out.
	snap := &model.ContractSnapshot{
		Contract: model.Contract{
			ID:               "c1",
			StartDate:        checkIn.AddDate(0, 0, -5),
			EndDate:          checkIn.AddDate(0, 0, 1),
			MarkupPercentage: 10,
		},
		HotelName: "Kandy City",
		RoomTypes: []model.RoomType{
			{ID: "rt1", Name: "Standard", PricePerPerson: 90, NumberOfRooms: 4, MaxAdults: 2},
		},
	}

	svc := newTestService(t, singleContractStore(snap), nil)

	results, _, err := svc.Search(context.Background(), &model.SearchRequest{
		CheckInDate:    checkIn,
		NumberOfNights: 3,
		RoomRequests:   []model.RoomRequest{{NumberOfAdults: 2}},
	}, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if results[0].RoomTypes[0].Available {
		t.Error("expected unavailable when the stay leaves the validity window")
	}
}

func TestSearch_AllocationsReduceAvailability(t *testing.T) {
	checkIn := futureDate(20)
	start, end := snapshotWindow(checkIn, 2)

	snap := &model.ContractSnapshot{
		Contract:  model.Contract{ID: "c1", StartDate: start, EndDate: end, MarkupPercentage: 10},
		HotelName: "Bentota Beach",
		RoomTypes: []model.RoomType{
			{ID: "rt1", Name: "Standard", PricePerPerson: 100, NumberOfRooms: 3, MaxAdults: 2},
		},
	}

	l := ledger.NewMemoryLedger()
	l.Set("rt1", 2)
	svc := newTestService(t, singleContractStore(snap), l)

	results, _, err := svc.Search(context.Background(), &model.SearchRequest{
		CheckInDate:    checkIn,
		NumberOfNights: 2,
		RoomRequests:   []model.RoomRequest{{NumberOfAdults: 2, NumberOfRooms: 2}},
	}, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rt := results[0].RoomTypes[0]
	if rt.Available {
		t.Error("expected unavailable with only one effective room left")
	}
	if rt.AvailableRooms != 1 {
		t.Errorf("got %d available rooms, want 1", rt.AvailableRooms)
	}
}

func TestSearch_EmptyShapesReturnEmptyPage(t *testing.T) {
	store := &mockContractStore{
		findValidForStay: func(_ context.Context, _, _ time.Time, _ int, _ int64) ([]*model.ContractSnapshot, error) {
			t.Fatal("store must not be queried for unsearchable requests")
			return nil, nil
		},
		countValidForStay: func(_ context.Context, _, _ time.Time) (int64, error) {
			t.Fatal("store must not be queried for unsearchable requests")
			return 0, nil
		},
	}
	svc := newTestService(t, store, nil)

	tests := []struct {
		name string
		req  *model.SearchRequest
	}{
		{"missing check-in", &model.SearchRequest{NumberOfNights: 2, RoomRequests: []model.RoomRequest{{NumberOfAdults: 1}}}},
		{"zero nights", &model.SearchRequest{CheckInDate: futureDate(5), RoomRequests: []model.RoomRequest{{NumberOfAdults: 1}}}},
		{"negative nights", &model.SearchRequest{CheckInDate: futureDate(5), NumberOfNights: -1, RoomRequests: []model.RoomRequest{{NumberOfAdults: 1}}}},
		{"no room requests", &model.SearchRequest{CheckInDate: futureDate(5), NumberOfNights: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			results, total, err := svc.Search(context.Background(), tc.req, 10, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(results) != 0 || total != 0 {
				t.Errorf("got %d results, total %d; want empty page", len(results), total)
			}
		})
	}
}

func TestSearch_PastCheckInRejected(t *testing.T) {
	svc := newTestService(t, &mockContractStore{}, nil)

	req := &model.SearchRequest{
		CheckInDate:    model.Date{Time: time.Now().UTC().AddDate(0, 0, -2)},
		NumberOfNights: 2,
		RoomRequests:   []model.RoomRequest{{NumberOfAdults: 2}},
	}

	_, _, err := svc.Search(context.Background(), req, 10, 0)
	if err == nil {
		t.Fatal("expected validation error for past check-in")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Errorf("got code %s, want %s", appErr.Code, apperrors.CodeValidation)
	}
}

func TestSearch_ZeroRoomTypeContractsSkippedButCounted(t *testing.T) {
	checkIn := futureDate(30)
	start, end := snapshotWindow(checkIn, 2)

	empty := &model.ContractSnapshot{
		Contract:  model.Contract{ID: "c-empty", StartDate: start, EndDate: end, MarkupPercentage: 10},
		HotelName: "Empty Hotel",
	}
	full := &model.ContractSnapshot{
		Contract:  model.Contract{ID: "c-full", StartDate: start, EndDate: end, MarkupPercentage: 10},
		HotelName: "Full Hotel",
		RoomTypes: []model.RoomType{
			{ID: "rt1", Name: "Standard", PricePerPerson: 100, NumberOfRooms: 2, MaxAdults: 2},
		},
	}

	store := &mockContractStore{
		findValidForStay: func(_ context.Context, _, _ time.Time, _ int, _ int64) ([]*model.ContractSnapshot, error) {
			return []*model.ContractSnapshot{empty, full}, nil
		},
		countValidForStay: func(_ context.Context, _, _ time.Time) (int64, error) {
			return 2, nil
		},
	}
	svc := newTestService(t, store, nil)

	results, total, err := svc.Search(context.Background(), &model.SearchRequest{
		CheckInDate:    checkIn,
		NumberOfNights: 2,
		RoomRequests:   []model.RoomRequest{{NumberOfAdults: 2}},
	}, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 1 {
		t.Errorf("got %d results, want 1 (zero-room-type contract skipped)", len(results))
	}
	if total != 2 {
		t.Errorf("got total %d, want 2 (skipped contract still counted)", total)
	}
}

func TestSearch_Idempotent(t *testing.T) {
	checkIn := futureDate(30)
	start, end := snapshotWindow(checkIn, 3)

	snap := &model.ContractSnapshot{
		Contract:  model.Contract{ID: "c1", StartDate: start, EndDate: end, MarkupPercentage: 12.5},
		HotelName: "Mount Lavinia",
		RoomTypes: []model.RoomType{
			{ID: "rt1", Name: "Standard", PricePerPerson: 85, NumberOfRooms: 6, MaxAdults: 3},
			{ID: "rt2", Name: "Suite", PricePerPerson: 150, NumberOfRooms: 2, MaxAdults: 4},
		},
	}
	svc := newTestService(t, singleContractStore(snap), nil)

	req := &model.SearchRequest{
		CheckInDate:    checkIn,
		NumberOfNights: 3,
		RoomRequests:   []model.RoomRequest{{NumberOfAdults: 2, NumberOfRooms: 2}},
	}

	first, _, err := svc.Search(context.Background(), req, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := svc.Search(context.Background(), req, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical searches returned different results")
	}
}

func TestAvailabilityReport_LedgerAwareRows(t *testing.T) {
	from := futureDate(10)
	to := futureDate(17)

	snap := &model.ContractSnapshot{
		Contract:  model.Contract{ID: "c1", StartDate: from.AddDate(0, 0, -30), EndDate: to.AddDate(0, 0, 30), MarkupPercentage: 10},
		HotelName: "Amari Galle",
		RoomTypes: []model.RoomType{
			{ID: "rt1", Name: "Standard", PricePerPerson: 100, NumberOfRooms: 8, MaxAdults: 2},
		},
	}

	store := &mockContractStore{
		findValidForRange: func(_ context.Context, _, _ time.Time) ([]*model.ContractSnapshot, error) {
			return []*model.ContractSnapshot{snap}, nil
		},
	}
	l := ledger.NewMemoryLedger()
	l.Set("rt1", 3)

	svc := newTestService(t, store, l)

	rows, err := svc.AvailabilityReport(context.Background(), from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	row := rows[0]
	if row.TotalRooms != 8 || row.AvailableRooms != 5 {
		t.Errorf("got total=%d available=%d, want 8/5", row.TotalRooms, row.AvailableRooms)
	}
	if !row.Date.Equal(from.Time) {
		t.Errorf("row date %v, want %v (pinned to from_date)", row.Date.Time, from.Time)
	}
}

func TestAvailabilityReport_InvertedRangeEmpty(t *testing.T) {
	store := &mockContractStore{
		findValidForRange: func(_ context.Context, _, _ time.Time) ([]*model.ContractSnapshot, error) {
			t.Fatal("store must not be queried for inverted ranges")
			return nil, nil
		},
	}
	svc := newTestService(t, store, nil)

	rows, err := svc.AvailabilityReport(context.Background(), futureDate(20), futureDate(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestExpiringContracts_DaysToExpiry(t *testing.T) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	endDate := today.AddDate(0, 0, 14)

	snap := &model.ContractSnapshot{
		Contract: model.Contract{
			ID:        "c1",
			StartDate: today.AddDate(0, 0, -90),
			EndDate:   endDate,
		},
		HotelName: "Hilton Colombo",
	}

	store := &mockContractStore{
		findExpiringBetween: func(_ context.Context, _, _ time.Time) ([]*model.ContractSnapshot, error) {
			return []*model.ContractSnapshot{snap}, nil
		},
	}
	svc := newTestService(t, store, nil)

	rows, err := svc.ExpiringContracts(context.Background(), model.Date{Time: today}, model.Date{Time: today.AddDate(0, 0, 30)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	if rows[0].DaysToExpiry != 14 {
		t.Errorf("got %d days to expiry, want 14", rows[0].DaysToExpiry)
	}
	if rows[0].HotelName != "Hilton Colombo" || rows[0].ContractID != "c1" {
		t.Errorf("unexpected row: %+v", rows[0])
	}
}
