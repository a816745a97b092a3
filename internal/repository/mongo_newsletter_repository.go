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

// MongoNewsletterRepository is the MongoDB implementation of
// NewsletterRepository.
type MongoNewsletterRepository struct {
	col *mongo.Collection
}

// NewMongoNewsletterRepository creates a MongoNewsletterRepository backed by
// the given database.
func NewMongoNewsletterRepository(db *mongo.Database) *MongoNewsletterRepository {
	return &MongoNewsletterRepository{col: db.Collection(colSubscribers)}
}

var _ NewsletterRepository = (*MongoNewsletterRepository)(nil)

func (r *MongoNewsletterRepository) FindByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	var s model.Subscriber
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *MongoNewsletterRepository) Create(ctx context.Context, s *model.Subscriber) error {
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now
	if s.SubscribedAt.IsZero() {
		s.SubscribedAt = now
	}

	res, err := r.col.InsertOne(ctx, s)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return err
	}
	s.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoNewsletterRepository) Reactivate(ctx context.Context, id string) (*model.Subscriber, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"isActive":     true,
		"subscribedAt": now,
		"updatedAt":    now,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var s model.Subscriber
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *MongoNewsletterRepository) Deactivate(ctx context.Context, email string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{
		"isActive":  false,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoNewsletterRepository) List(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, int64, error) {
	filter := bson.M{}
	setBool(filter, "isActive", opts.Active)
	if opts.Search != "" {
		filter = mergeSearch(filter, searchFilter(opts.Search, "email"))
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "subscribedAt", Value: -1}}).
		SetSkip(opts.Page.Offset()).
		SetLimit(int64(opts.Page.Limit))

	cursor, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var subs []*model.Subscriber
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (r *MongoNewsletterRepository) Delete(ctx context.Context, id string) error {
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
