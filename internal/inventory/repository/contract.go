package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	inventoryerrors "suntravels/internal/inventory/errors"
	"suntravels/pkg/config"
	mongotx "suntravels/pkg/db/mongo"
	"suntravels/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ContractsCollection = "contracts"

type ContractRepository interface {
	Create(ctx context.Context, contract *model.Contract) error
	FindByID(ctx context.Context, id string) (*model.Contract, error)
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.Contract, error)
	Count(ctx context.Context) (int64, error)
	FindByHotel(ctx context.Context, hotelID string) ([]*model.Contract, error)
	Update(ctx context.Context, id string, contract *model.Contract) error
	Delete(ctx context.Context, id string) error
	DeleteByHotel(ctx context.Context, hotelID string) (int64, error)
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type mongoContractRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

func NewMongoContractRepository(cfg *config.Config) ContractRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoContractRepository{
		cfg:        cfg,
		collection: db.Collection(ContractsCollection),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo, cfg.MongoTxTimeout),
	}
}

func (r *mongoContractRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
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

func (r *mongoContractRepository) Create(ctx context.Context, contract *model.Contract) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	contract.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, contract)
	if err != nil {
		return fmt.Errorf("failed to create contract: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		contract.ID = oid.Hex()
	}
	return nil
}

func (r *mongoContractRepository) FindByID(ctx context.Context, id string) (*model.Contract, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", inventoryerrors.ErrInvalidID, id)
	}

	var contract model.Contract
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&contract)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, inventoryerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contract: %w", err)
	}

	return &contract, nil
}

func (r *mongoContractRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Contract, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "start_date", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find contracts: %w", err)
	}
	defer cursor.Close(ctx)

	var contracts []*model.Contract
	if err = cursor.All(ctx, &contracts); err != nil {
		return nil, fmt.Errorf("failed to decode contracts: %w", err)
	}

	return contracts, nil
}

func (r *mongoContractRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count contracts: %w", err)
	}

	return count, nil
}

func (r *mongoContractRepository) FindByHotel(ctx context.Context, hotelID string) ([]*model.Contract, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"hotel_id": hotelID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find contracts by hotel: %w", err)
	}
	defer cursor.Close(ctx)

	var contracts []*model.Contract
	if err = cursor.All(ctx, &contracts); err != nil {
		return nil, fmt.Errorf("failed to decode contracts: %w", err)
	}

	return contracts, nil
}

func (r *mongoContractRepository) Update(ctx context.Context, id string, contract *model.Contract) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", inventoryerrors.ErrInvalidID, id)
	}

	update := bson.M{
		"$set": bson.M{
			"start_date":        contract.StartDate,
			"end_date":          contract.EndDate,
			"markup_percentage": contract.MarkupPercentage,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to update contract: %w", err)
	}

	if result.MatchedCount == 0 {
		return inventoryerrors.ErrNotFound
	}

	return nil
}

func (r *mongoContractRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", inventoryerrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete contract: %w", err)
	}

	if result.DeletedCount == 0 {
		return inventoryerrors.ErrNotFound
	}

	return nil
}

func (r *mongoContractRepository) DeleteByHotel(ctx context.Context, hotelID string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.DeleteMany(ctx, bson.M{"hotel_id": hotelID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete contracts by hotel: %w", err)
	}

	return result.DeletedCount, nil
}

func (r *mongoContractRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
