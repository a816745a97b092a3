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

// MongoContactRepository is the MongoDB implementation of ContactRepository.
type MongoContactRepository struct {
	col *mongo.Collection
}

// NewMongoContactRepository creates a MongoContactRepository backed by the
// given database.
func NewMongoContactRepository(db *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{col: db.Collection(colContacts)}
}

var _ ContactRepository = (*MongoContactRepository)(nil)

func (r *MongoContactRepository) Create(ctx context.Context, c *model.Contact) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, int64, error) {
	filter := bson.M{}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}
	if opts.Priority != "" {
		filter["priority"] = opts.Priority
	}
	if opts.AssignedTo != "" {
		filter["assignedTo"] = opts.AssignedTo
	}
	if opts.Unread != nil {
		filter["isRead"] = !*opts.Unread
	}
	if opts.Search != "" {
		filter = mergeSearch(filter, searchFilter(opts.Search, "name", "email", "subject", "message"))
	}

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

	var contacts []*model.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

// FindByIDMarkRead performs the read-triggers-write contract for the detail
// view: the flip happens only when isRead is still false, so the write runs
// at most once per submission.
func (r *MongoContactRepository) FindByIDMarkRead(ctx context.Context, id string) (*model.Contact, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c model.Contact
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "isRead": false},
		bson.M{"$set": bson.M{"isRead": true}},
		opts,
	).Decode(&c)
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	// Already read, or missing entirely.
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// patch applies a $set and returns the updated document.
func (r *MongoContactRepository) patch(ctx context.Context, id string, update bson.M) (*model.Contact, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	update["$set"].(bson.M)["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c model.Contact
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MongoContactRepository) SetStatus(ctx context.Context, id, status string) (*model.Contact, error) {
	return r.patch(ctx, id, bson.M{"$set": bson.M{"status": status}})
}

func (r *MongoContactRepository) SetPriority(ctx context.Context, id, priority string) (*model.Contact, error) {
	return r.patch(ctx, id, bson.M{"$set": bson.M{"priority": priority}})
}

func (r *MongoContactRepository) Assign(ctx context.Context, id, adminID string) (*model.Contact, error) {
	return r.patch(ctx, id, bson.M{"$set": bson.M{"assignedTo": adminID}})
}

func (r *MongoContactRepository) SetFollowUp(ctx context.Context, id string, at *time.Time) (*model.Contact, error) {
	return r.patch(ctx, id, bson.M{"$set": bson.M{"followUpDate": at}})
}

func (r *MongoContactRepository) AddNote(ctx context.Context, id string, note model.ContactNote) (*model.Contact, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	update := bson.M{
		"$push": bson.M{"notes": note},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c model.Contact
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MongoContactRepository) Delete(ctx context.Context, id string) error {
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

type contactTotals struct {
	Total  int64 `bson:"total"`
	Unread int64 `bson:"unread"`
}

// Stats computes the admin overview in a single aggregation pass.
func (r *MongoContactRepository) Stats(ctx context.Context) (*model.ContactStats, error) {
	pipeline := mongo.Pipeline{bson.D{{Key: "$facet", Value: bson.M{
		"byStatus": bson.A{
			bson.M{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
		},
		"bySource": bson.A{
			bson.M{"$group": bson.M{"_id": "$source", "count": bson.M{"$sum": 1}}},
		},
		"totals": bson.A{
			bson.M{"$group": bson.M{
				"_id":    nil,
				"total":  bson.M{"$sum": 1},
				"unread": bson.M{"$sum": bson.M{"$cond": bson.A{"$isRead", 0, 1}}},
			}},
		},
	}}}}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		ByStatus []groupCount    `bson:"byStatus"`
		BySource []groupCount    `bson:"bySource"`
		Totals   []contactTotals `bson:"totals"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	stats := &model.ContactStats{
		ByStatus: map[string]int64{},
		BySource: map[string]int64{},
	}
	if len(results) == 0 {
		return stats, nil
	}
	for _, g := range results[0].ByStatus {
		stats.ByStatus[g.ID] = g.Count
	}
	for _, g := range results[0].BySource {
		stats.BySource[g.ID] = g.Count
	}
	if len(results[0].Totals) > 0 {
		stats.Total = results[0].Totals[0].Total
		stats.Unread = results[0].Totals[0].Unread
	}
	return stats, nil
}
