package search

import (
	"net/http"
	"testing"
	"time"

	"suntravels/pkg/model"
	"suntravels/test/integration/testutil"
)

// The suite expects a running search service and a reachable MongoDB.
// Contracts are seeded through the database directly so the test does not
// depend on the inventory service.
func TestSearchLifecycle(t *testing.T) {
	testutil.RequireIntegration(t)

	env := testutil.NewTestEnv()
	mongo, client := env.Setup(t)
	defer env.Cleanup(t, mongo)

	hotelID := mongo.InsertDocument(t, testutil.HotelsCollection,
		testutil.NewHotelBuilder().WithName("Seaside Palace").Build())

	checkIn := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 1, 0)
	contractID := mongo.InsertDocument(t, testutil.ContractsCollection,
		testutil.NewContractBuilder(hotelID).
			WithValidity(checkIn.AddDate(0, 0, -10), checkIn.AddDate(0, 2, 0)).
			WithMarkup(10).
			Build())
	mongo.InsertDocument(t, testutil.RoomTypesCollection,
		testutil.NewRoomTypeBuilder(contractID).
			WithName("Standard Double").
			WithPricePerPerson(100).
			WithRooms(5).
			WithMaxAdults(2).
			Build())

	testSearchMatches(t, client, contractID, checkIn)
	testSearchOutsideValidity(t, client, checkIn)
	testSearchPastCheckInRejected(t, client)
	testAvailabilityReport(t, client, checkIn)
}

type searchPage struct {
	Data       []model.SearchResult `json:"data"`
	TotalCount int64                `json:"total_count"`
}

func runSearch(t *testing.T, client *testutil.Client, checkIn time.Time, nights int, requests []model.RoomRequest) *testutil.Response {
	t.Helper()
	return client.POST(t, "/api/v1/search", model.SearchRequest{
		CheckInDate:    model.Date{Time: checkIn},
		NumberOfNights: nights,
		RoomRequests:   requests,
	})
}

func testSearchMatches(t *testing.T, client *testutil.Client, contractID string, checkIn time.Time) {
	resp := runSearch(t, client, checkIn, 3, []model.RoomRequest{
		{NumberOfAdults: 2, NumberOfRooms: 2},
	})
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var page searchPage
	if err := resp.UnmarshalJSON(&page); err != nil {
		t.Fatalf("failed to decode search page: %v", err)
	}
	if page.TotalCount != 1 || len(page.Data) != 1 {
		t.Fatalf("expected exactly one matching contract, got total %d, page %d", page.TotalCount, len(page.Data))
	}

	result := page.Data[0]
	if result.ContractID != contractID {
		t.Errorf("expected contract %s, got %s", contractID, result.ContractID)
	}
	if result.HotelName != "Seaside Palace" {
		t.Errorf("expected hotel name Seaside Palace, got %q", result.HotelName)
	}
	if len(result.RoomTypes) != 1 {
		t.Fatalf("expected one room type, got %d", len(result.RoomTypes))
	}

	rt := result.RoomTypes[0]
	if !rt.Available {
		t.Error("expected room type to be available")
	}
	// 100 * 1.10 markup * 3 nights * 2 adults * 2 rooms
	if rt.TotalPrice != 1320.00 {
		t.Errorf("expected total price 1320.00, got %.2f", rt.TotalPrice)
	}
}

func testSearchOutsideValidity(t *testing.T, client *testutil.Client, checkIn time.Time) {
	resp := runSearch(t, client, checkIn.AddDate(1, 0, 0), 3, []model.RoomRequest{
		{NumberOfAdults: 2},
	})
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var page searchPage
	if err := resp.UnmarshalJSON(&page); err != nil {
		t.Fatalf("failed to decode search page: %v", err)
	}
	if page.TotalCount != 0 || len(page.Data) != 0 {
		t.Errorf("expected empty result outside validity, got total %d, page %d", page.TotalCount, len(page.Data))
	}
}

func testSearchPastCheckInRejected(t *testing.T, client *testutil.Client) {
	past := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -7)
	resp := runSearch(t, client, past, 2, []model.RoomRequest{
		{NumberOfAdults: 2},
	})
	testutil.AssertStatusCode(t, resp, http.StatusUnprocessableEntity)
	testutil.AssertContains(t, resp, "check_in_date")
}

func testAvailabilityReport(t *testing.T, client *testutil.Client, checkIn time.Time) {
	from := checkIn.Format("2006-01-02")
	to := checkIn.AddDate(0, 0, 7).Format("2006-01-02")

	resp := client.GET(t, "/api/v1/reports/availability?from_date="+from+"&to_date="+to)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var report struct {
		Data []model.AvailabilityReportRow `json:"data"`
	}
	if err := resp.UnmarshalJSON(&report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	if len(report.Data) != 1 {
		t.Fatalf("expected one report row, got %d", len(report.Data))
	}
	row := report.Data[0]
	if row.TotalRooms != 5 || row.AvailableRooms != 5 {
		t.Errorf("expected 5/5 rooms with no allocations, got %d/%d", row.AvailableRooms, row.TotalRooms)
	}
}
