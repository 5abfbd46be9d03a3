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

// OperatorRepo handles the persistence of operators.
type OperatorRepo struct {
	collection *mongo.Collection
}

var _ i.OperatorRepo = &OperatorRepo{}

// NewOperatorRepo creates a new OperatorRepo with the given MongoDB client, database name, and collection name.
func NewOperatorRepo(client *mongo.Client, dbName, collectionName string) *OperatorRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &OperatorRepo{
		collection: collection,
	}
}

// EnsureIndexes creates the unique username index.
func (o *OperatorRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := o.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Save inserts or updates an operator in the repository.
// If the operator already exists, it updates the existing record.
// If the operator does not exist, it adds a new record.
func (o *OperatorRepo) Save(ctx context.Context, operator *dmn.Operator) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	filter := bson.M{"_id": operator.ID}
	update := bson.M{
		"$set": bson.M{
			"username":     operator.Username,
			"passwordHash": operator.PasswordHash,
			"updatedAt":    time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := o.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("username %q: %w", operator.Username, i.ErrConflict)
		}
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves an operator by their ID.
// Returns i.ErrNotFound if the operator is not found.
func (o *OperatorRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Operator, error) {
	return o.findOne(ctx, bson.M{"_id": id})
}

// ByUsername retrieves an operator by their username.
// Returns i.ErrNotFound if the operator is not found.
func (o *OperatorRepo) ByUsername(ctx context.Context, username string) (*dmn.Operator, error) {
	return o.findOne(ctx, bson.M{"username": username})
}

func (o *OperatorRepo) findOne(ctx context.Context, filter bson.M) (*dmn.Operator, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var operator dmn.Operator
	if err := o.collection.FindOne(ctx, filter).Decode(&operator); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("operator: %w", i.ErrNotFound)
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &operator, nil
}
