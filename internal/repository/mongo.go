package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Accelerator586/SunnyWeather/internal/model"
)

const savedPlaceCollection = "savedPlace"

// MongoStore keeps the saved place as a single mongo document.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to mongo and returns a place store backed by it.
func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctxWithTimeout, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	err = client.Ping(ctxWithTimeout, readpref.Primary())
	if err != nil {
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Close closes the mongo connection.
func (s *MongoStore) Close() error {
	if err := s.client.Disconnect(context.TODO()); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}

	return nil
}

// Save upserts the single saved place document, replacing any previous one.
func (s *MongoStore) Save(ctx context.Context, place model.Place) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := s.db.Collection(savedPlaceCollection).ReplaceOne(ctxWithTimeout, bson.M{}, place, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert saved place: %w", err)
	}

	return nil
}

// Get returns the saved place, or ErrNoSavedPlace when none exists.
func (s *MongoStore) Get(ctx context.Context) (model.Place, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var place model.Place
	err := s.db.Collection(savedPlaceCollection).FindOne(ctxWithTimeout, bson.M{}).Decode(&place)
	if err == mongo.ErrNoDocuments {
		return model.Place{}, ErrNoSavedPlace
	}
	if err != nil {
		return model.Place{}, err
	}

	return place, nil
}

// Exists reports whether a place has been saved.
func (s *MongoStore) Exists(ctx context.Context) (bool, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	num, err := s.db.Collection(savedPlaceCollection).CountDocuments(ctxWithTimeout, bson.M{})

	return num > 0, err
}
