package repo

import (
	"context"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func toDoc(t *testing.T, v interface{}) bson.D {
	t.Helper()
	raw, err := bson.Marshal(v)
	require.NoError(t, err)

	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func samplePlan(owner uuid.UUID, created time.Time) *dmn.Plan {
	return &dmn.Plan{
		ID:        uuid.New(),
		OwnerID:   owner,
		Key:       "4f2c",
		Height:    3,
		Width:     3,
		Answer:    "D D R R ",
		Outcome:   "reached",
		Moves:     []string{"D", "D", "R", "R"},
		Sweeps:    7,
		Converged: true,
		CreatedAt: created,
	}
}

func TestPlanRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	owner := uuid.New()
	created := time.Date(2026, 2, 10, 8, 30, 0, 0, time.UTC)

	mt.Run("save", func(mt *mtest.T) {
		repo := &PlanRepo{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		assert.NoError(mt, repo.Save(ctx, samplePlan(owner, created)))
	})

	mt.Run("save duplicate", func(mt *mtest.T) {
		repo := &PlanRepo{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := repo.Save(ctx, samplePlan(owner, created))
		assert.ErrorIs(mt, err, i.ErrConflict)
	})

	mt.Run("by id", func(mt *mtest.T) {
		repo := &PlanRepo{collection: mt.Coll}
		want := samplePlan(owner, created)
		mt.AddMockResponses(mtest.CreateCursorResponse(1, namespace(mt), mtest.FirstBatch, toDoc(mt.T, want)))

		got, err := repo.ByID(ctx, want.ID)
		require.NoError(mt, err)
		assert.Equal(mt, want.ID, got.ID)
		assert.Equal(mt, want.OwnerID, got.OwnerID)
		assert.Equal(mt, want.Answer, got.Answer)
		assert.Equal(mt, want.Moves, got.Moves)
		assert.True(mt, want.CreatedAt.Equal(got.CreatedAt))
	})

	mt.Run("by id missing", func(mt *mtest.T) {
		repo := &PlanRepo{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		_, err := repo.ByID(ctx, uuid.New())
		assert.ErrorIs(mt, err, i.ErrNotFound)
	})

	mt.Run("by owner", func(mt *mtest.T) {
		repo := &PlanRepo{collection: mt.Coll}
		newer := samplePlan(owner, created.Add(time.Minute))
		older := samplePlan(owner, created)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, namespace(mt), mtest.FirstBatch, toDoc(mt.T, newer), toDoc(mt.T, older)),
			mtest.CreateCursorResponse(0, namespace(mt), mtest.NextBatch),
		)

		plans, err := repo.ByOwner(ctx, owner, 10)
		require.NoError(mt, err)
		require.Len(mt, plans, 2)
		assert.Equal(mt, newer.ID, plans[0].ID)
		assert.Equal(mt, older.ID, plans[1].ID)
	})

	mt.Run("by owner empty", func(mt *mtest.T) {
		repo := &PlanRepo{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		plans, err := repo.ByOwner(ctx, owner, 10)
		require.NoError(mt, err)
		assert.Empty(mt, plans)
	})
}

func TestOperatorRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	operator := &dmn.Operator{ID: uuid.New(), Username: "navigator", PasswordHash: "$2a$12$hash"}

	mt.Run("save", func(mt *mtest.T) {
		repo := &OperatorRepo{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		assert.NoError(mt, repo.Save(ctx, operator))
	})

	mt.Run("save username conflict", func(mt *mtest.T) {
		repo := &OperatorRepo{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		assert.ErrorIs(mt, repo.Save(ctx, operator), i.ErrConflict)
	})

	mt.Run("by username", func(mt *mtest.T) {
		repo := &OperatorRepo{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(1, namespace(mt), mtest.FirstBatch, toDoc(mt.T, operator)))

		got, err := repo.ByUsername(ctx, "navigator")
		require.NoError(mt, err)
		assert.Equal(mt, operator, got)
	})

	mt.Run("by id missing", func(mt *mtest.T) {
		repo := &OperatorRepo{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		_, err := repo.ByID(ctx, operator.ID)
		assert.ErrorIs(mt, err, i.ErrNotFound)
	})
}
