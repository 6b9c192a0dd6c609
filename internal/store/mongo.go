package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

const ordersCollection = "orders"

// MongoOrderStore persists orders in the "orders" collection.
type MongoOrderStore struct {
	db *mongo.Database
}

func NewMongoOrderStore(db *mongo.Database) *MongoOrderStore {
	return &MongoOrderStore{db: db}
}

func (s *MongoOrderStore) CreateOrder(ctx context.Context, order models.Order) (string, error) {
	res, err := s.db.Collection(ordersCollection).InsertOne(ctx, order)
	if err != nil {
		return "", err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		return id.Hex(), nil
	}
	return "", nil
}

func (s *MongoOrderStore) OrdersByUser(ctx context.Context, userID string, opts ListOptions) ([]models.OrderSummary, error) {
	findOptions := options.Find().
		SetSort(orderSort()).
		SetProjection(orderProjection())

	if opts.Limit > 0 {
		page := opts.Page
		if page < 1 {
			page = 1
		}
		findOptions.
			SetSkip((page - 1) * opts.Limit).
			SetLimit(opts.Limit)
	}

	cursor, err := s.db.Collection(ordersCollection).Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	summaries := make([]models.OrderSummary, 0)
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (s *MongoOrderStore) HasOrderForSession(ctx context.Context, sessionID string) (bool, error) {
	count, err := s.db.Collection(ordersCollection).CountDocuments(ctx, bson.M{"stripeSessionId": sessionID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func orderSort() bson.D {
	return bson.D{{Key: "createdAt", Value: -1}}
}

func orderProjection() bson.D {
	return bson.D{
		{Key: "_id", Value: 1},
		{Key: "orderNumber", Value: 1},
		{Key: "status", Value: 1},
		{Key: "total", Value: 1},
		{Key: "currency", Value: 1},
		{Key: "createdAt", Value: 1},
		{Key: "lineItems", Value: 1},
		{Key: "shippingAddress", Value: 1},
	}
}
