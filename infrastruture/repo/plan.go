package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PlanRepo handles the persistence of plans.
type PlanRepo struct {
	collection *mongo.Collection
}

var _ i.PlanRepo = &PlanRepo{}

// NewPlanRepo creates a new PlanRepo with the given MongoDB client, database name, and collection name.
func NewPlanRepo(client *mongo.Client, dbName, collectionName string) *PlanRepo {
	return &PlanRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// EnsureIndexes creates the index serving history listings.
func (p *PlanRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := p.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

// Save inserts a plan. Plans are never updated.
func (p *PlanRepo) Save(ctx context.Context, plan *dmn.Plan) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if _, err := p.collection.InsertOne(ctx, plan); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("plan %s: %w", plan.ID, i.ErrConflict)
		}
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a plan by its ID.
// Returns i.ErrNotFound if the plan is not found.
func (p *PlanRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var plan dmn.Plan
	if err := p.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("plan %s: %w", id, i.ErrNotFound)
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &plan, nil
}

// ByOwner lists the owner's plans, newest first.
func (p *PlanRepo) ByOwner(ctx context.Context, ownerID uuid.UUID, limit int64) ([]*dmn.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := p.collection.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer cursor.Close(ctx)

	plans := []*dmn.Plan{}
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return plans, nil
}
