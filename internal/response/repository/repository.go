package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ametova/valentine-api/internal/common/clock"
	"github.com/ametova/valentine-api/internal/common/constants"
	commonerrors "github.com/ametova/valentine-api/internal/common/errors"
	"github.com/ametova/valentine-api/internal/observability/metrics"
	"github.com/ametova/valentine-api/internal/response/domain"
)

const collectionName = "responses"

type Repository interface {
	Create(ctx context.Context, message, user string) (string, error)
}

type MongoRepository struct {
	coll  *mongo.Collection
	clock clock.Clock
}

// NewMongoRepository builds a repository over the responses collection.
// A nil client yields a repository whose writes fail with
// ErrStoreUnavailable until a connection is established.
func NewMongoRepository(client *mongo.Client, database string, clock clock.Clock) *MongoRepository {
	var coll *mongo.Collection
	if client != nil {
		coll = client.Database(database).Collection(collectionName)
	}

	return &MongoRepository{
		coll:  coll,
		clock: clock,
	}
}

// Create persists one response document and returns its generated id.
// created_at is assigned here, at write time, in UTC. Message emptiness
// is the caller's concern.
func (r *MongoRepository) Create(ctx context.Context, message, user string) (string, error) {
	if r.coll == nil {
		return "", commonerrors.ErrStoreUnavailable
	}

	doc := domain.Response{
		Message:   message,
		User:      user,
		CreatedAt: r.clock.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, constants.MongoWriteTimeout)
	defer cancel()

	start := time.Now()
	result, err := r.coll.InsertOne(ctx, doc)
	metrics.StoreInsertDurationSeconds.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("insert").Inc()
		return "", commonerrors.ErrDatabaseError.WithCause(err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		metrics.StoreErrorsTotal.WithLabelValues("insert").Inc()
		return "", commonerrors.ErrDatabaseError
	}

	return oid.Hex(), nil
}
