package repository

import (
	"context"
	"fmt"
	"time"

	"suntravels/pkg/config"
	"suntravels/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	HotelsCollection    = "hotels"
	ContractsCollection = "contracts"
	RoomTypesCollection = "room_types"
)

// ContractStore is the read side of the search service: contracts joined
// with their hotel name and room types.
type ContractStore interface {
	FindValidForStay(ctx context.Context, checkIn, checkOut time.Time, limit int, offset int64) ([]*model.ContractSnapshot, error)
	CountValidForStay(ctx context.Context, checkIn, checkOut time.Time) (int64, error)
	FindValidForRange(ctx context.Context, from, to time.Time) ([]*model.ContractSnapshot, error)
	FindExpiringBetween(ctx context.Context, from, to time.Time) ([]*model.ContractSnapshot, error)
}

type mongoContractStore struct {
	cfg       *config.Config
	db        *mongo.Database
	contracts *mongo.Collection
	roomTypes *mongo.Collection
	hotels    *mongo.Collection
}

func NewMongoContractStore(cfg *config.Config) ContractStore {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoContractStore{
		cfg:       cfg,
		db:        db,
		contracts: db.Collection(ContractsCollection),
		roomTypes: db.Collection(RoomTypesCollection),
		hotels:    db.Collection(HotelsCollection),
	}
}

func (r *mongoContractStore) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
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

// stayFilter matches contracts whose validity window contains the whole stay.
func stayFilter(checkIn, checkOut time.Time) bson.M {
	return bson.M{
		"start_date": bson.M{"$lte": checkIn},
		"end_date":   bson.M{"$gte": checkOut},
	}
}

func (r *mongoContractStore) FindValidForStay(ctx context.Context, checkIn, checkOut time.Time, limit int, offset int64) ([]*model.ContractSnapshot, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "start_date", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	return r.findSnapshots(ctx, stayFilter(checkIn, checkOut), opts)
}

func (r *mongoContractStore) CountValidForStay(ctx context.Context, checkIn, checkOut time.Time) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.contracts.CountDocuments(ctx, stayFilter(checkIn, checkOut))
	if err != nil {
		return 0, fmt.Errorf("failed to count contracts: %w", err)
	}
	return count, nil
}

func (r *mongoContractStore) FindValidForRange(ctx context.Context, from, to time.Time) ([]*model.ContractSnapshot, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "start_date", Value: 1}, {Key: "_id", Value: 1}})

	return r.findSnapshots(ctx, stayFilter(from, to), opts)
}

func (r *mongoContractStore) FindExpiringBetween(ctx context.Context, from, to time.Time) ([]*model.ContractSnapshot, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{
		"end_date": bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "end_date", Value: 1}, {Key: "_id", Value: 1}})

	return r.findSnapshots(ctx, filter, opts)
}

// findSnapshots loads the matching contracts, then their room types and
// hotel names in two batched lookups.
func (r *mongoContractStore) findSnapshots(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.ContractSnapshot, error) {
	cursor, err := r.contracts.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find contracts: %w", err)
	}
	defer cursor.Close(ctx)

	var contracts []*model.Contract
	if err = cursor.All(ctx, &contracts); err != nil {
		return nil, fmt.Errorf("failed to decode contracts: %w", err)
	}

	if len(contracts) == 0 {
		return []*model.ContractSnapshot{}, nil
	}

	contractIDs := make([]string, 0, len(contracts))
	hotelOIDs := make([]primitive.ObjectID, 0, len(contracts))
	seenHotels := make(map[string]bool)
	for _, c := range contracts {
		contractIDs = append(contractIDs, c.ID)
		if seenHotels[c.HotelID] {
			continue
		}
		seenHotels[c.HotelID] = true
		oid, err := primitive.ObjectIDFromHex(c.HotelID)
		if err != nil {
			return nil, fmt.Errorf("contract %s has malformed hotel ID %q: %w", c.ID, c.HotelID, err)
		}
		hotelOIDs = append(hotelOIDs, oid)
	}

	roomTypesByContract, err := r.roomTypesByContract(ctx, contractIDs)
	if err != nil {
		return nil, err
	}

	hotelNames, err := r.hotelNamesByID(ctx, hotelOIDs)
	if err != nil {
		return nil, err
	}

	snapshots := make([]*model.ContractSnapshot, 0, len(contracts))
	for _, c := range contracts {
		snapshots = append(snapshots, &model.ContractSnapshot{
			Contract:  *c,
			HotelName: hotelNames[c.HotelID],
			RoomTypes: roomTypesByContract[c.ID],
		})
	}

	return snapshots, nil
}

func (r *mongoContractStore) roomTypesByContract(ctx context.Context, contractIDs []string) (map[string][]model.RoomType, error) {
	cursor, err := r.roomTypes.Find(ctx, bson.M{"contract_id": bson.M{"$in": contractIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to find room types: %w", err)
	}
	defer cursor.Close(ctx)

	var roomTypes []model.RoomType
	if err = cursor.All(ctx, &roomTypes); err != nil {
		return nil, fmt.Errorf("failed to decode room types: %w", err)
	}

	byContract := make(map[string][]model.RoomType)
	for _, rt := range roomTypes {
		byContract[rt.ContractID] = append(byContract[rt.ContractID], rt)
	}
	return byContract, nil
}

func (r *mongoContractStore) hotelNamesByID(ctx context.Context, hotelOIDs []primitive.ObjectID) (map[string]string, error) {
	cursor, err := r.hotels.Find(ctx, bson.M{"_id": bson.M{"$in": hotelOIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to find hotels: %w", err)
	}
	defer cursor.Close(ctx)

	var hotels []model.Hotel
	if err = cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("failed to decode hotels: %w", err)
	}

	names := make(map[string]string, len(hotels))
	for _, h := range hotels {
		names[h.ID] = h.Name
	}
	return names, nil
}
