package repository

import (
	"context"
	"time"

	"farecast-service/internal/domain/entity"
	"farecast-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoQueryLogRepository implements QueryLogRepository
type MongoQueryLogRepository struct {
	collection *mongo.Collection
}

// NewMongoQueryLogRepository creates a new query log repository
func NewMongoQueryLogRepository(db *mongo.Database) repository.QueryLogRepository {
	collection := db.Collection("query_logs")

	// Index on route + travel date for retraining exports
	ctx := context.Background()
	routeIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "source", Value: 1},
			{Key: "destination", Value: 1},
			{Key: "travelDate", Value: 1},
		},
	}
	collection.Indexes().CreateOne(ctx, routeIndex)

	createdIndex := mongo.IndexModel{
		Keys: bson.M{"createdAt": 1},
	}
	collection.Indexes().CreateOne(ctx, createdIndex)

	return &MongoQueryLogRepository{
		collection: collection,
	}
}

// Insert records one completed lookup
func (r *MongoQueryLogRepository) Insert(ctx context.Context, log *entity.QueryLog) error {
	if log.ID == "" {
		log.ID = primitive.NewObjectID().Hex()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, log)
	return err
}
