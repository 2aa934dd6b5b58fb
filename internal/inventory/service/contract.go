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

	"go.mongodb.org/mongo-driver/mongo"
)

type ContractService interface {
	Create(ctx context.Context, contract *model.Contract) error
	GetByID(ctx context.Context, id string) (*model.Contract, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Contract, int64, error)
	GetByHotel(ctx context.Context, hotelID string) ([]*model.Contract, error)
	Update(ctx context.Context, id string, updates *model.ContractUpdate) error
	Delete(ctx context.Context, id string) error
}

type contractService struct {
	repo         repository.ContractRepository
	hotelRepo    repository.HotelRepository
	roomTypeRepo repository.RoomTypeRepository
	validator    *validator.InventoryValidator
	cfg          *config.Config
}

func NewContractService(
	repo repository.ContractRepository,
	hotelRepo repository.HotelRepository,
	roomTypeRepo repository.RoomTypeRepository,
	v *validator.InventoryValidator,
	cfg *config.Config,
) ContractService {
	return &contractService{
		repo:         repo,
		hotelRepo:    hotelRepo,
		roomTypeRepo: roomTypeRepo,
		validator:    v,
		cfg:          cfg,
	}
}

func (s *contractService) Create(ctx context.Context, contract *model.Contract) error {
	if err := s.validator.ValidateContract(contract); err != nil {
		s.cfg.Log.Warn("Contract validation failed", "error", err)
		return apperrors.Validation("Contract validation failed", map[string]any{"error": err.Error()})
	}

	// A contract must hang off an existing hotel.
	if _, err := s.hotelRepo.FindByID(ctx, contract.HotelID); err != nil {
		if errors.Is(err, inventoryerrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Hotel", contract.HotelID)
		}
		if errors.Is(err, inventoryerrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid hotel ID format")
		}
		return apperrors.Internal("Failed to verify hotel", err)
	}

	if err := s.repo.Create(ctx, contract); err != nil {
		s.cfg.Log.Error("Failed to create contract", "error", err)
		return apperrors.Internal("Failed to create contract", err)
	}

	s.cfg.Log.Info("Contract created successfully",
		"id", contract.ID,
		"hotel_id", contract.HotelID,
		"start_date", contract.StartDate,
		"end_date", contract.EndDate,
	)
	return nil
}

func (s *contractService) GetByID(ctx context.Context, id string) (*model.Contract, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Contract ID cannot be empty")
	}

	contract, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, inventoryerrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Contract", id)
		}
		if errors.Is(err, inventoryerrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid contract ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve contract", err)
	}

	return contract, nil
}

func (s *contractService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Contract, int64, error) {
	var count int64
	var contracts []*model.Contract
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count contracts", "error", errCount)
			errCount = apperrors.Internal("Failed to count contracts", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		contracts, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list contracts", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve contracts", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return contracts, count, nil
}

func (s *contractService) GetByHotel(ctx context.Context, hotelID string) ([]*model.Contract, error) {
	if hotelID == "" {
		return nil, apperrors.InvalidInput("Hotel ID cannot be empty")
	}

	contracts, err := s.repo.FindByHotel(ctx, hotelID)
	if err != nil {
		s.cfg.Log.Error("Failed to list contracts by hotel", "hotel_id", hotelID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve contracts", err)
	}

	return contracts, nil
}

func (s *contractService) Update(ctx context.Context, id string, updates *model.ContractUpdate) error {
	if id == "" {
		return apperrors.InvalidInput("Contract ID cannot be empty")
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.validator.ValidateContractUpdate(updates); err != nil {
		s.cfg.Log.Warn("Contract update validation failed", "id", id, "error", err)
		return apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	merged := s.mergeContractUpdates(existing, updates)
	if err := s.validator.ValidateContract(merged); err != nil {
		return apperrors.Validation("Contract validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Update(ctx, id, merged); err != nil {
		if errors.Is(err, inventoryerrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Contract", id)
		}
		s.cfg.Log.Error("Failed to update contract", "id", id, "error", err)
		return apperrors.Internal("Failed to update contract", err)
	}

	s.cfg.Log.Info("Contract updated successfully", "id", id)
	return nil
}

// Delete removes the contract and its room types in one transaction, the
// orphan-removal behavior of the inventory model.
func (s *contractService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Contract ID cannot be empty")
	}

	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if _, err := s.roomTypeRepo.DeleteByContracts(sessCtx, []string{id}); err != nil {
			return apperrors.Internal("Failed to delete contract room types", err)
		}

		if err := s.repo.Delete(sessCtx, id); err != nil {
			if errors.Is(err, inventoryerrors.ErrNotFound) {
				return apperrors.NotFoundWithID("Contract", id)
			}
			if errors.Is(err, inventoryerrors.ErrInvalidID) {
				return apperrors.InvalidInput("Invalid contract ID format")
			}
			return apperrors.Internal("Failed to delete contract", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.cfg.Log.Info("Contract deleted successfully", "id", id)
	return nil
}

func (s *contractService) mergeContractUpdates(existing *model.Contract, updates *model.ContractUpdate) *model.Contract {
	merged := *existing

	if updates.StartDate != nil {
		merged.StartDate = *updates.StartDate
	}
	if updates.EndDate != nil {
		merged.EndDate = *updates.EndDate
	}
	if updates.MarkupPercentage != nil {
		merged.MarkupPercentage = *updates.MarkupPercentage
	}

	return &merged
}
