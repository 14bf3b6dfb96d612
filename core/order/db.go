package order

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const Collection = "orders"

// Create persists the order as a single document and fills in its
// store-assigned id.
func Create(ctx context.Context, db *mongo.Database, ord *Order) error {
	res, err := db.Collection(Collection).InsertOne(ctx, ord)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		ord.ID = oid
	}

	return nil
}
