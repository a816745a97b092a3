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

// MongoServiceRepository is the MongoDB implementation of ServiceRepository.
type MongoServiceRepository struct {
	col *mongo.Collection
}

// NewMongoServiceRepository creates a MongoServiceRepository backed by the
// given database.
func NewMongoServiceRepository(db *mongo.Database) *MongoServiceRepository {
	return &MongoServiceRepository{col: db.Collection(colServices)}
}

var _ ServiceRepository = (*MongoServiceRepository)(nil)

func (r *MongoServiceRepository) List(ctx context.Context, opts model.ServiceListOptions) ([]*model.Service, int64, error) {
	filter := bson.M{}
	if opts.Category != "" {
		filter["category"] = opts.Category
	}
	setBool(filter, "isFeatured", opts.Featured)
	setBool(filter, "isActive", opts.Active)
	if opts.ActiveOnly {
		filter["isActive"] = true
	}
	if opts.Search != "" {
		filter = mergeSearch(filter, searchFilter(opts.Search, "name", "description"))
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	// Catalog order is the domain sort; creation time breaks ties.
	findOpts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}}).
		SetSkip(opts.Page.Offset()).
		SetLimit(int64(opts.Page.Limit))

	cursor, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var services []*model.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, 0, err
	}
	return services, total, nil
}

func (r *MongoServiceRepository) FindByID(ctx context.Context, id string) (*model.Service, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var s model.Service
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *MongoServiceRepository) Create(ctx context.Context, s *model.Service) error {
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		return err
	}
	s.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoServiceRepository) Update(ctx context.Context, s *model.Service) error {
	s.UpdatedAt = time.Now().UTC()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoServiceRepository) Delete(ctx context.Context, id string) error {
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

func (r *MongoServiceRepository) ToggleFlag(ctx context.Context, id, field string) (*model.Service, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	update := mongo.Pipeline{bson.D{{Key: "$set", Value: bson.M{
		field:       bson.M{"$not": "$" + field},
		"updatedAt": "$$NOW",
	}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var s model.Service
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
