package repository

import (
	"context"
	"errors"
	"time"

	"github.com/structura/backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoJourneyRepository is the MongoDB implementation of JourneyRepository.
type MongoJourneyRepository struct {
	col *mongo.Collection
}

// NewMongoJourneyRepository creates a MongoJourneyRepository backed by the
// given database.
func NewMongoJourneyRepository(db *mongo.Database) *MongoJourneyRepository {
	return &MongoJourneyRepository{col: db.Collection(colJourney)}
}

var _ JourneyRepository = (*MongoJourneyRepository)(nil)

func (r *MongoJourneyRepository) List(ctx context.Context, opts model.JourneyListOptions) ([]*model.JourneyEntry, int64, error) {
	filter := bson.M{}
	if opts.Type != "" {
		filter["type"] = opts.Type
	}
	if opts.Year != 0 {
		filter["year"] = opts.Year
	}
	setBool(filter, "isFeatured", opts.Featured)
	setBool(filter, "isActive", opts.Active)
	if opts.ActiveOnly {
		filter["isActive"] = true
	}
	if opts.Search != "" {
		filter = mergeSearch(filter, searchFilter(opts.Search, "title", "description"))
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "year", Value: -1}, {Key: "order", Value: 1}, {Key: "month", Value: -1}}).
		SetSkip(opts.Page.Offset()).
		SetLimit(int64(opts.Page.Limit))

	cursor, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var entries []*model.JourneyEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *MongoJourneyRepository) ListAllActive(ctx context.Context) ([]*model.JourneyEntry, error) {
	findOpts := options.Find().
		SetSort(bson.D{{Key: "year", Value: -1}, {Key: "order", Value: 1}, {Key: "month", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.M{"isActive": true}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.JourneyEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *MongoJourneyRepository) FindByID(ctx context.Context, id string) (*model.JourneyEntry, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var e model.JourneyEntry
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *MongoJourneyRepository) Create(ctx context.Context, e *model.JourneyEntry) error {
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		return err
	}
	e.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoJourneyRepository) Update(ctx context.Context, e *model.JourneyEntry) error {
	e.UpdatedAt = time.Now().UTC()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": e.ID}, e)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoJourneyRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoJourneyRepository) ToggleFlag(ctx context.Context, id, field string) (*model.JourneyEntry, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	update := mongo.Pipeline{bson.D{{Key: "$set", Value: bson.M{
		field:       bson.M{"$not": "$" + field},
		"updatedAt": "$$NOW",
	}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var e model.JourneyEntry
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
