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

// MongoProjectRepository is the MongoDB implementation of ProjectRepository.
type MongoProjectRepository struct {
	col *mongo.Collection
}

// NewMongoProjectRepository creates a MongoProjectRepository backed by the
// given database.
func NewMongoProjectRepository(db *mongo.Database) *MongoProjectRepository {
	return &MongoProjectRepository{col: db.Collection(colProjects)}
}

var _ ProjectRepository = (*MongoProjectRepository)(nil)

func projectFilter(opts model.ProjectListOptions) bson.M {
	filter := bson.M{}
	if opts.Category != "" {
		filter["category"] = opts.Category
	}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}
	setBool(filter, "isFeatured", opts.Featured)
	setBool(filter, "isActive", opts.Active)
	if opts.ActiveOnly {
		filter["isActive"] = true
	}
	if opts.Search != "" {
		filter = mergeSearch(filter, searchFilter(opts.Search, "name", "description", "location", "client"))
	}
	return filter
}

func (r *MongoProjectRepository) List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, int64, error) {
	filter := projectFilter(opts)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(opts.Page.Offset()).
		SetLimit(int64(opts.Page.Limit))

	cursor, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var projects []*model.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (r *MongoProjectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var p model.Project
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MongoProjectRepository) Create(ctx context.Context, p *model.Project) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoProjectRepository) Update(ctx context.Context, p *model.Project) error {
	p.UpdatedAt = time.Now().UTC()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoProjectRepository) Delete(ctx context.Context, id string) error {
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

// ToggleFlag flips the named boolean server-side in one atomic pipeline
// update; concurrent toggles serialize at the document instead of racing a
// read-then-write.
func (r *MongoProjectRepository) ToggleFlag(ctx context.Context, id, field string) (*model.Project, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	update := mongo.Pipeline{bson.D{{Key: "$set", Value: bson.M{
		field:       bson.M{"$not": "$" + field},
		"updatedAt": "$$NOW",
	}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p model.Project
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type groupCount struct {
	ID    string `bson:"_id"`
	Count int64  `bson:"count"`
}

type projectTotals struct {
	Total    int64 `bson:"total"`
	Featured int64 `bson:"featured"`
	Active   int64 `bson:"active"`
}

// Stats computes the admin overview in a single aggregation pass.
func (r *MongoProjectRepository) Stats(ctx context.Context) (*model.ProjectStats, error) {
	pipeline := mongo.Pipeline{bson.D{{Key: "$facet", Value: bson.M{
		"byStatus": bson.A{
			bson.M{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
		},
		"byCategory": bson.A{
			bson.M{"$group": bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}},
		},
		"totals": bson.A{
			bson.M{"$group": bson.M{
				"_id":      nil,
				"total":    bson.M{"$sum": 1},
				"featured": bson.M{"$sum": bson.M{"$cond": bson.A{"$isFeatured", 1, 0}}},
				"active":   bson.M{"$sum": bson.M{"$cond": bson.A{"$isActive", 1, 0}}},
			}},
		},
	}}}}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		ByStatus   []groupCount    `bson:"byStatus"`
		ByCategory []groupCount    `bson:"byCategory"`
		Totals     []projectTotals `bson:"totals"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	stats := &model.ProjectStats{
		ByStatus:   map[string]int64{},
		ByCategory: map[string]int64{},
	}
	if len(results) == 0 {
		return stats, nil
	}
	for _, g := range results[0].ByStatus {
		stats.ByStatus[g.ID] = g.Count
	}
	for _, g := range results[0].ByCategory {
		stats.ByCategory[g.ID] = g.Count
	}
	if len(results[0].Totals) > 0 {
		t := results[0].Totals[0]
		stats.Total = t.Total
		stats.Featured = t.Featured
		stats.Active = t.Active
	}
	return stats, nil
}
