package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tourvis/pkg/logger"
)

const collectionName = "Entries"

// mongoStore keeps one document per key: {_id: key, value: <raw JSON>,
// updated_at}. Put replaces the whole document (upsert), matching the
// last-write-wins contract.
type mongoStore struct {
	collection *mongo.Collection
	timeout    time.Duration
}

type entry struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func Connect(log *logger.Logger, uri, database string, connTimeout time.Duration) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB", "error", err)
	}

	log.Info("Successfully connected to MongoDB", "database", database)
	return client
}

func NewMongoStore(client *mongo.Client, database string, timeout time.Duration) Store {
	return &mongoStore{
		collection: client.Database(database).Collection(collectionName),
		timeout:    timeout,
	}
}

func (s *mongoStore) Put(ctx context.Context, key string, value any) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %q: %w", key, err)
	}

	doc := entry{
		Key:       key,
		Value:     string(raw),
		UpdatedAt: time.Now().UTC(),
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts); err != nil {
		return fmt.Errorf("failed to put key %q: %w", key, err)
	}
	return nil
}

func (s *mongoStore) Get(ctx context.Context, key string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var doc entry
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrKeyNotFound
		}
		return fmt.Errorf("failed to get key %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(doc.Value), out); err != nil {
		return fmt.Errorf("failed to decode value for key %q: %w", key, err)
	}
	return nil
}

func (s *mongoStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.collection.Database().Client().Ping(ctx, nil)
}
