package service

import (
	"context"
	"sync"
	"time"

	"suntravels/internal/search/ledger"
	"suntravels/internal/search/repository"
	"suntravels/internal/search/validator"
	"suntravels/pkg/config"
	apperrors "suntravels/pkg/errors"
	"suntravels/pkg/model"
)

type SearchService interface {
	Search(ctx context.Context, req *model.SearchRequest, limit int, offset int64) ([]*model.SearchResult, int64, error)
	AvailabilityReport(ctx context.Context, from, to model.Date) ([]*model.AvailabilityReportRow, error)
	ExpiringContracts(ctx context.Context, from, to model.Date) ([]*model.ContractExpiryRow, error)
}

type searchService struct {
	store     repository.ContractStore
	ledger    ledger.Ledger
	validator *validator.SearchValidator
	cfg       *config.Config
}

func NewSearchService(
	store repository.ContractStore,
	l ledger.Ledger,
	v *validator.SearchValidator,
	cfg *config.Config,
) SearchService {
	return &searchService{
		store:     store,
		ledger:    l,
		validator: v,
		cfg:       cfg,
	}
}

// Search prices every contract valid for the stay against the requested
// rooms. Contracts that cannot host the request stay in the page with their
// room types flagged unavailable; only contracts without room types are
// dropped, though they still count toward the total.
func (s *searchService) Search(ctx context.Context, req *model.SearchRequest, limit int, offset int64) ([]*model.SearchResult, int64, error) {
	if !s.validator.IsSearchable(req) {
		s.cfg.Log.Debug("Search request not searchable, returning empty page")
		return []*model.SearchResult{}, 0, nil
	}

	if err := s.validator.ValidateSearch(req); err != nil {
		s.cfg.Log.Warn("Search validation failed", "error", err)
		return nil, 0, apperrors.Validation("Invalid search request", map[string]any{"error": err.Error()})
	}

	checkIn := req.CheckInDate.Time
	checkOut := req.CheckOutDate().Time

	var count int64
	var snapshots []*model.ContractSnapshot
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.store.CountValidForStay(ctx, checkIn, checkOut)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count contracts for stay", "error", errCount)
			errCount = apperrors.Internal("Failed to count contracts", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		snapshots, errFind = s.store.FindValidForStay(ctx, checkIn, checkOut, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to find contracts for stay",
				"check_in", checkIn,
				"check_out", checkOut,
				"limit", limit,
				"offset", offset,
				"error", errFind,
			)
			errFind = apperrors.Internal("Failed to search contracts", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	results := make([]*model.SearchResult, 0, len(snapshots))
	for _, snap := range snapshots {
		if len(snap.RoomTypes) == 0 {
			continue
		}
		results = append(results, s.matchContract(snap, req, checkIn, checkOut))
	}

	s.cfg.Log.Debug("Search completed",
		"check_in", checkIn,
		"nights", req.NumberOfNights,
		"results", len(results),
		"total_count", count,
	)
	return results, count, nil
}

// matchContract prices one contract's room types against the request.
// Unavailable room types are kept with a zero price so callers can tell
// "sold out" apart from "not offered".
func (s *searchService) matchContract(snap *model.ContractSnapshot, req *model.SearchRequest, checkIn, checkOut time.Time) *model.SearchResult {
	valid := withinValidity(&snap.Contract, checkIn, checkOut)
	roomsNeeded := req.TotalRooms()

	roomTypeResults := make([]model.RoomTypeResult, 0, len(snap.RoomTypes))
	for i := range snap.RoomTypes {
		rt := &snap.RoomTypes[i]

		availableRooms := s.ledger.EffectiveAvailable(rt.ID, rt.NumberOfRooms)
		available := valid &&
			fitsCapacity(rt, req.RoomRequests) &&
			hasInventory(rt, s.ledger, roomsNeeded)

		result := model.RoomTypeResult{
			RoomTypeID:     rt.ID,
			Name:           rt.Name,
			MaxAdults:      rt.MaxAdults,
			AvailableRooms: availableRooms,
			Available:      available,
		}
		if available {
			result.TotalPrice = price(rt, snap.Contract.MarkupPercentage, req.NumberOfNights, req.RoomRequests)
		}

		roomTypeResults = append(roomTypeResults, result)
	}

	return &model.SearchResult{
		ContractID: snap.Contract.ID,
		HotelName:  snap.HotelName,
		RoomTypes:  roomTypeResults,
	}
}
