package service

import (
	"context"
	"errors"

	inventoryerrors "suntravels/internal/inventory/errors"
	"suntravels/internal/inventory/repository"
	"suntravels/internal/inventory/validator"
	"suntravels/pkg/config"
	apperrors "suntravels/pkg/errors"
	"suntravels/pkg/model"
	"suntravels/pkg/sanitizer"
)

type RoomTypeService interface {
	Create(ctx context.Context, roomType *model.RoomType) error
	GetByID(ctx context.Context, id string) (*model.RoomType, error)
	GetByContract(ctx context.Context, contractID string) ([]*model.RoomType, error)
	Update(ctx context.Context, id string, updates *model.RoomTypeUpdate) error
	Delete(ctx context.Context, id string) error
}

type roomTypeService struct {
	repo         repository.RoomTypeRepository
	contractRepo repository.ContractRepository
	validator    *validator.InventoryValidator
	cfg          *config.Config
}

func NewRoomTypeService(
	repo repository.RoomTypeRepository,
	contractRepo repository.ContractRepository,
	v *validator.InventoryValidator,
	cfg *config.Config,
) RoomTypeService {
	return &roomTypeService{
		repo:         repo,
		contractRepo: contractRepo,
		validator:    v,
		cfg:          cfg,
	}
}

func (s *roomTypeService) Create(ctx context.Context, roomType *model.RoomType) error {
	roomType.Name = sanitizer.NormalizeName(roomType.Name)
	if err := s.validator.ValidateRoomType(roomType); err != nil {
		s.cfg.Log.Warn("Room type validation failed", "error", err)
		return apperrors.Validation("Room type validation failed", map[string]any{"error": err.Error()})
	}

	// Room types only exist under a contract.
	if _, err := s.contractRepo.FindByID(ctx, roomType.ContractID); err != nil {
		if errors.Is(err, inventoryerrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Contract", roomType.ContractID)
		}
		if errors.Is(err, inventoryerrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid contract ID format")
		}
		return apperrors.Internal("Failed to verify contract", err)
	}

	if err := s.repo.Create(ctx, roomType); err != nil {
		s.cfg.Log.Error("Failed to create room type", "error", err)
		return apperrors.Internal("Failed to create room type", err)
	}

	s.cfg.Log.Info("Room type created successfully",
		"id", roomType.ID,
		"contract_id", roomType.ContractID,
		"name", roomType.Name,
	)
	return nil
}

func (s *roomTypeService) GetByID(ctx context.Context, id string) (*model.RoomType, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Room type ID cannot be empty")
	}

	roomType, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, inventoryerrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Room type", id)
		}
		if errors.Is(err, inventoryerrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid room type ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve room type", err)
	}

	return roomType, nil
}

func (s *roomTypeService) GetByContract(ctx context.Context, contractID string) ([]*model.RoomType, error) {
	if contractID == "" {
		return nil, apperrors.InvalidInput("Contract ID cannot be empty")
	}

	roomTypes, err := s.repo.FindByContract(ctx, contractID)
	if err != nil {
		s.cfg.Log.Error("Failed to list room types by contract", "contract_id", contractID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve room types", err)
	}

	return roomTypes, nil
}

func (s *roomTypeService) Update(ctx context.Context, id string, updates *model.RoomTypeUpdate) error {
	if id == "" {
		return apperrors.InvalidInput("Room type ID cannot be empty")
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.validator.ValidateRoomTypeUpdate(updates); err != nil {
		s.cfg.Log.Warn("Room type update validation failed", "id", id, "error", err)
		return apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	merged := s.mergeRoomTypeUpdates(existing, updates)
	merged.Name = sanitizer.NormalizeName(merged.Name)
	if err := s.validator.ValidateRoomType(merged); err != nil {
		return apperrors.Validation("Room type validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Update(ctx, id, merged); err != nil {
		if errors.Is(err, inventoryerrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Room type", id)
		}
		s.cfg.Log.Error("Failed to update room type", "id", id, "error", err)
		return apperrors.Internal("Failed to update room type", err)
	}

	s.cfg.Log.Info("Room type updated successfully", "id", id)
	return nil
}

func (s *roomTypeService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Room type ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, inventoryerrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Room type", id)
		}
		if errors.Is(err, inventoryerrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid room type ID format")
		}
		return apperrors.Internal("Failed to delete room type", err)
	}

	s.cfg.Log.Info("Room type deleted successfully", "id", id)
	return nil
}

func (s *roomTypeService) mergeRoomTypeUpdates(existing *model.RoomType, updates *model.RoomTypeUpdate) *model.RoomType {
	merged := *existing

	if updates.Name != "" {
		merged.Name = updates.Name
	}
	if updates.PricePerPerson != nil {
		merged.PricePerPerson = *updates.PricePerPerson
	}
	if updates.NumberOfRooms != nil {
		merged.NumberOfRooms = *updates.NumberOfRooms
	}
	if updates.MaxAdults != nil {
		merged.MaxAdults = *updates.MaxAdults
	}

	return &merged
}
