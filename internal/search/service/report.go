package service

import (
	"context"
	"time"

	apperrors "suntravels/pkg/errors"
	"suntravels/pkg/model"
)

// AvailabilityReport lists every room type of contracts valid across the
// whole window, with allocations subtracted. The row date is pinned to the
// start of the window. An inverted range yields an empty report.
func (s *searchService) AvailabilityReport(ctx context.Context, from, to model.Date) ([]*model.AvailabilityReportRow, error) {
	if err := s.validator.ValidateReportRange(from.Time, to.Time, s.cfg.ReportMaxRangeDays); err != nil {
		s.cfg.Log.Warn("Availability report validation failed", "error", err)
		return nil, apperrors.Validation("Invalid report range", map[string]any{"error": err.Error()})
	}

	if to.Before(from.Time) {
		return []*model.AvailabilityReportRow{}, nil
	}

	snapshots, err := s.store.FindValidForRange(ctx, from.Time, to.Time)
	if err != nil {
		s.cfg.Log.Error("Failed to load contracts for availability report",
			"from", from.Time,
			"to", to.Time,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to build availability report", err)
	}

	rows := make([]*model.AvailabilityReportRow, 0)
	for _, snap := range snapshots {
		for i := range snap.RoomTypes {
			rt := &snap.RoomTypes[i]
			rows = append(rows, &model.AvailabilityReportRow{
				HotelName:      snap.HotelName,
				RoomTypeName:   rt.Name,
				TotalRooms:     rt.NumberOfRooms,
				AvailableRooms: s.ledger.EffectiveAvailable(rt.ID, rt.NumberOfRooms),
				Date:           from,
			})
		}
	}

	s.cfg.Log.Debug("Availability report built", "from", from.Time, "to", to.Time, "rows", len(rows))
	return rows, nil
}

// ExpiringContracts lists contracts whose end date falls inside the window,
// soonest first.
func (s *searchService) ExpiringContracts(ctx context.Context, from, to model.Date) ([]*model.ContractExpiryRow, error) {
	if err := s.validator.ValidateReportRange(from.Time, to.Time, s.cfg.ReportMaxRangeDays); err != nil {
		s.cfg.Log.Warn("Expiry report validation failed", "error", err)
		return nil, apperrors.Validation("Invalid report range", map[string]any{"error": err.Error()})
	}

	if to.Before(from.Time) {
		return []*model.ContractExpiryRow{}, nil
	}

	snapshots, err := s.store.FindExpiringBetween(ctx, from.Time, to.Time)
	if err != nil {
		s.cfg.Log.Error("Failed to load expiring contracts",
			"from", from.Time,
			"to", to.Time,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to build expiry report", err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	rows := make([]*model.ContractExpiryRow, 0, len(snapshots))
	for _, snap := range snapshots {
		rows = append(rows, &model.ContractExpiryRow{
			ContractID:   snap.Contract.ID,
			HotelName:    snap.HotelName,
			StartDate:    model.Date{Time: snap.Contract.StartDate},
			EndDate:      model.Date{Time: snap.Contract.EndDate},
			DaysToExpiry: int(snap.Contract.EndDate.Sub(today).Hours() / 24),
		})
	}

	s.cfg.Log.Debug("Expiry report built", "from", from.Time, "to", to.Time, "rows", len(rows))
	return rows, nil
}
