package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoArchiveRepo struct {
	DB *mongo.Client
}

func NewMongoArchiveRepo(db *mongo.Client) *MongoArchiveRepo {
	return &MongoArchiveRepo{DB: db}
}

func (r *MongoArchiveRepo) collection() *mongo.Collection {
	return r.DB.Database("shiptrack").Collection("raw_feed")
}

// ArchiveRaw upserts on the event dedup triple so replays do not pile
// up duplicate archive documents.
func (r *MongoArchiveRepo) ArchiveRaw(msg *RawFeedMessage) error {
	ctx := context.Background()

	if msg.ReceivedAt.IsZero() {
		msg.ReceivedAt = time.Now().UTC()
	}

	filter := bson.M{
		"shipment_id": msg.ShipmentID,
		"event":       msg.Event,
		"occurred_at": msg.OccurredAt,
	}
	_, err := r.collection().ReplaceOne(ctx, filter, msg, options.Replace().SetUpsert(true))
	return err
}

func (r *MongoArchiveRepo) GetRawByShipment(shipmentID int64) ([]*RawFeedMessage, error) {
	ctx := context.Background()

	cur, err := r.collection().Find(ctx, bson.M{"shipment_id": shipmentID},
		options.Find().SetSort(bson.D{{Key: "occurred_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []*RawFeedMessage
	if err := cur.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}
