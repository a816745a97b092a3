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

// MongoAdminRepository is the MongoDB implementation of AdminRepository.
type MongoAdminRepository struct {
	col *mongo.Collection
}

// NewMongoAdminRepository creates a MongoAdminRepository backed by the given
// database.
func NewMongoAdminRepository(db *mongo.Database) *MongoAdminRepository {
	return &MongoAdminRepository{col: db.Collection(colAdmins)}
}

var _ AdminRepository = (*MongoAdminRepository)(nil)

// excludePassword keeps the bcrypt hash out of every read that does not
// verify credentials.
var excludePassword = options.FindOne().SetProjection(bson.M{"password": 0})

func (r *MongoAdminRepository) FindByID(ctx context.Context, id string) (*model.Admin, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var a model.Admin
	err = r.col.FindOne(ctx, bson.M{"_id": oid}, excludePassword).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *MongoAdminRepository) FindByLogin(ctx context.Context, login string) (*model.Admin, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": login},
		bson.M{"email": login},
	}}
	var a model.Admin
	err := r.col.FindOne(ctx, filter).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *MongoAdminRepository) FindWithPassword(ctx context.Context, id string) (*model.Admin, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var a model.Admin
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *MongoAdminRepository) List(ctx context.Context, opts model.AdminListOptions) ([]*model.Admin, int64, error) {
	filter := bson.M{}
	if opts.Role != "" {
		filter["role"] = opts.Role
	}
	setBool(filter, "isActive", opts.Active)
	if opts.Search != "" {
		filter = mergeSearch(filter, searchFilter(opts.Search, "username", "email"))
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().
		SetProjection(bson.M{"password": 0}).
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(opts.Page.Offset()).
		SetLimit(int64(opts.Page.Limit))

	cursor, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var admins []*model.Admin
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, 0, err
	}
	return admins, total, nil
}

func (r *MongoAdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	now := time.Now().UTC()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, admin)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return err
	}
	admin.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoAdminRepository) Update(ctx context.Context, admin *model.Admin) error {
	admin.UpdatedAt = time.Now().UTC()

	set := bson.M{
		"username":  admin.Username,
		"email":     admin.Email,
		"role":      admin.Role,
		"isActive":  admin.IsActive,
		"updatedAt": admin.UpdatedAt,
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": admin.ID}, bson.M{"$set": set})
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoAdminRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"password":  hash,
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

func (r *MongoAdminRepository) Delete(ctx context.Context, id string) error {
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

// ToggleActive flips isActive server-side in a single atomic update, so two
// concurrent toggles cannot lose a write.
func (r *MongoAdminRepository) ToggleActive(ctx context.Context, id string) (*model.Admin, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	update := mongo.Pipeline{bson.D{{Key: "$set", Value: bson.M{
		"isActive":  bson.M{"$not": "$isActive"},
		"updatedAt": "$$NOW",
	}}}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"password": 0})

	var a model.Admin
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *MongoAdminRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
