package checkout

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const ordersColl = "orders"

type mongoSink struct{ coll *mongo.Collection }

// NewMongoSink stores orders as documents in the orders collection. The
// server-assigned ObjectID is the sink reference.
func NewMongoSink(client *mongo.Client, database string) Sink {
	return &mongoSink{coll: client.Database(database).Collection(ordersColl)}
}

func (s *mongoSink) Save(ctx context.Context, order *Order) (string, error) {
	res, err := s.coll.InsertOne(ctx, order)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}
