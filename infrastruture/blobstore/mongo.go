package blobstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore handles the persistence of maze documents in a collection,
// one document per key.
type MongoStore struct {
	collection *mongo.Collection
}

type mazeDocument struct {
	Key       string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// NewMongoStore creates a new MongoStore with the given MongoDB client, database name, and collection name.
func NewMongoStore(client *mongo.Client, dbName, collectionName string) i.BlobStore {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoStore{
		collection: collection,
	}
}

// Put inserts or updates the document for key.
func (m *MongoStore) Put(key string, data []byte) error {
	rel, err := cleanKey(key)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": rel}
	update := bson.M{
		"$set": bson.M{
			"data":      data,
			"updatedAt": time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return unexpectedError(err)
	}
	return nil
}

// Get retrieves the document for key.
func (m *MongoStore) Get(key string) ([]byte, error) {
	rel, err := cleanKey(key)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var doc mazeDocument
	if err := m.collection.FindOne(ctx, bson.M{"_id": rel}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, unexpectedError(err)
	}
	return doc.Data, nil
}

func unexpectedError(err error) error {
	return fmt.Errorf("unexpected error: %w", err)
}
