package service

import (
	"context"
	"errors"
	"sync"

	inventoryerrors "suntravels/internal/inventory/errors"
	"suntravels/internal/inventory/repository"
	"suntravels/internal/inventory/validator"
	"suntravels/pkg/config"
	apperrors "suntravels/pkg/errors"
	"suntravels/pkg/model"
	"suntravels/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/mongo"
)

type HotelService interface {
	Create(ctx context.Context, hotel *model.Hotel) error
	GetByID(ctx context.Context, id string) (*model.Hotel, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Hotel, int64, error)
	Update(ctx context.Context, id string, updates *model.HotelUpdate) error
	Delete(ctx context.Context, id string) error
}

type hotelService struct {
	repo         repository.HotelRepository
	contractRepo repository.ContractRepository
	roomTypeRepo repository.RoomTypeRepository
	validator    *validator.InventoryValidator
	cfg          *config.Config
}

func NewHotelService(
	repo repository.HotelRepository,
	contractRepo repository.ContractRepository,
	roomTypeRepo repository.RoomTypeRepository,
	v *validator.InventoryValidator,
	cfg *config.Config,
) HotelService {
	return &hotelService{
		repo:         repo,
		contractRepo: contractRepo,
		roomTypeRepo: roomTypeRepo,
		validator:    v,
		cfg:          cfg,
	}
}

func (s *hotelService) Create(ctx context.Context, hotel *model.Hotel) error {
	s.sanitize(hotel)
	if err := s.validator.ValidateHotel(hotel); err != nil {
		s.cfg.Log.Warn("Hotel validation failed", "error", err)
		return apperrors.Validation("Hotel validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, hotel); err != nil {
		s.cfg.Log.Error("Failed to create hotel", "error", err)
		return apperrors.Internal("Failed to create hotel", err)
	}

	s.cfg.Log.Info("Hotel created successfully", "id", hotel.ID, "name", hotel.Name)
	return nil
}

func (s *hotelService) GetByID(ctx context.Context, id string) (*model.Hotel, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Hotel ID cannot be empty")
	}

	hotel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, inventoryerrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Hotel", id)
		}
		if errors.Is(err, inventoryerrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid hotel ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve hotel", err)
	}

	return hotel, nil
}

func (s *hotelService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Hotel, int64, error) {
	var count int64
	var hotels []*model.Hotel
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count hotels", "error", errCount)
			errCount = apperrors.Internal("Failed to count hotels", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		hotels, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list hotels", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve hotels", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return hotels, count, nil
}

func (s *hotelService) Update(ctx context.Context, id string, updates *model.HotelUpdate) error {
	if id == "" {
		return apperrors.InvalidInput("Hotel ID cannot be empty")
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.validator.ValidateHotelUpdate(updates); err != nil {
		s.cfg.Log.Warn("Hotel update validation failed", "id", id, "error", err)
		return apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	merged := s.mergeHotelUpdates(existing, updates)
	s.sanitize(merged)
	if err := s.validator.ValidateHotel(merged); err != nil {
		return apperrors.Validation("Hotel validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Update(ctx, id, merged); err != nil {
		if errors.Is(err, inventoryerrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Hotel", id)
		}
		s.cfg.Log.Error("Failed to update hotel", "id", id, "error", err)
		return apperrors.Internal("Failed to update hotel", err)
	}

	s.cfg.Log.Info("Hotel updated successfully", "id", id)
	return nil
}

// Delete removes the hotel together with its contracts and their room types
// in one transaction.
func (s *hotelService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Hotel ID cannot be empty")
	}

	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		contracts, err := s.contractRepo.FindByHotel(sessCtx, id)
		if err != nil {
			return apperrors.Internal("Failed to load hotel contracts", err)
		}

		contractIDs := make([]string, 0, len(contracts))
		for _, c := range contracts {
			contractIDs = append(contractIDs, c.ID)
		}

		if _, err := s.roomTypeRepo.DeleteByContracts(sessCtx, contractIDs); err != nil {
			return apperrors.Internal("Failed to delete hotel room types", err)
		}

		if _, err := s.contractRepo.DeleteByHotel(sessCtx, id); err != nil {
			return apperrors.Internal("Failed to delete hotel contracts", err)
		}

		if err := s.repo.Delete(sessCtx, id); err != nil {
			if errors.Is(err, inventoryerrors.ErrNotFound) {
				return apperrors.NotFoundWithID("Hotel", id)
			}
			if errors.Is(err, inventoryerrors.ErrInvalidID) {
				return apperrors.InvalidInput("Invalid hotel ID format")
			}
			return apperrors.Internal("Failed to delete hotel", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.cfg.Log.Info("Hotel deleted successfully", "id", id)
	return nil
}

func (s *hotelService) sanitize(h *model.Hotel) {
	h.Name = sanitizer.NormalizeName(h.Name)
	h.Location = sanitizer.TrimAndNormalize(h.Location)
	h.ContactDetails = sanitizer.TrimAndNormalize(h.ContactDetails)
}

func (s *hotelService) mergeHotelUpdates(existing *model.Hotel, updates *model.HotelUpdate) *model.Hotel {
	merged := *existing

	if updates.Name != "" {
		merged.Name = updates.Name
	}
	if updates.Location != "" {
		merged.Location = updates.Location
	}
	if updates.ContactDetails != "" {
		merged.ContactDetails = updates.ContactDetails
	}

	return &merged
}
