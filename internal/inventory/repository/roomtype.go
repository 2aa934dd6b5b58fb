package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	inventoryerrors "suntravels/internal/inventory/errors"
	"suntravels/pkg/config"
	"suntravels/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const RoomTypesCollection = "room_types"

type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *model.RoomType) error
	FindByID(ctx context.Context, id string) (*model.RoomType, error)
	FindByContract(ctx context.Context, contractID string) ([]*model.RoomType, error)
	Update(ctx context.Context, id string, roomType *model.RoomType) error
	Delete(ctx context.Context, id string) error
	DeleteByContracts(ctx context.Context, contractIDs []string) (int64, error)
}

type mongoRoomTypeRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoRoomTypeRepository(cfg *config.Config) RoomTypeRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoRoomTypeRepository{
		cfg:        cfg,
		collection: db.Collection(RoomTypesCollection),
	}
}

func (r *mongoRoomTypeRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoRoomTypeRepository) Create(ctx context.Context, roomType *model.RoomType) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	roomType.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, roomType)
	if err != nil {
		return fmt.Errorf("failed to create room type: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		roomType.ID = oid.Hex()
	}
	return nil
}

func (r *mongoRoomTypeRepository) FindByID(ctx context.Context, id string) (*model.RoomType, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", inventoryerrors.ErrInvalidID, id)
	}

	var roomType model.RoomType
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&roomType)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, inventoryerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find room type: %w", err)
	}

	return &roomType, nil
}

func (r *mongoRoomTypeRepository) FindByContract(ctx context.Context, contractID string) ([]*model.RoomType, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"contract_id": contractID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find room types by contract: %w", err)
	}
	defer cursor.Close(ctx)

	var roomTypes []*model.RoomType
	if err = cursor.All(ctx, &roomTypes); err != nil {
		return nil, fmt.Errorf("failed to decode room types: %w", err)
	}

	return roomTypes, nil
}

func (r *mongoRoomTypeRepository) Update(ctx context.Context, id string, roomType *model.RoomType) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", inventoryerrors.ErrInvalidID, id)
	}

	update := bson.M{
		"$set": bson.M{
			"name":             roomType.Name,
			"price_per_person": roomType.PricePerPerson,
			"number_of_rooms":  roomType.NumberOfRooms,
			"max_adults":       roomType.MaxAdults,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to update room type: %w", err)
	}

	if result.MatchedCount == 0 {
		return inventoryerrors.ErrNotFound
	}

	return nil
}

func (r *mongoRoomTypeRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", inventoryerrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete room type: %w", err)
	}

	if result.DeletedCount == 0 {
		return inventoryerrors.ErrNotFound
	}

	return nil
}

func (r *mongoRoomTypeRepository) DeleteByContracts(ctx context.Context, contractIDs []string) (int64, error) {
	if len(contractIDs) == 0 {
		return 0, nil
	}

	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.DeleteMany(ctx, bson.M{"contract_id": bson.M{"$in": contractIDs}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete room types by contract: %w", err)
	}

	return result.DeletedCount, nil
}
