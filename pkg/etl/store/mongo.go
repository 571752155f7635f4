package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/DanCas03/IA-Proyecto-Final/pkg/etl/models"
)

// Default MongoDB layout for the project.
const (
	DefaultDatabase   = "textos_clasicos"
	DefaultCollection = "raw_texts"
)

// ErrEmptyURI indicates no MongoDB connection string was provided.
var ErrEmptyURI = errors.New("mongo: connection URI is empty")

// Mongo persists records in a MongoDB collection.
type Mongo struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// ConnectMongo opens a client for uri and verifies connectivity with a
// ping. An empty database selects DefaultDatabase. Close must be called
// when the run finishes.
func ConnectMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	if uri == "" {
		return nil, ErrEmptyURI
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	if database == "" {
		database = DefaultDatabase
	}
	return &Mongo{
		client:     client,
		collection: client.Database(database).Collection(DefaultCollection),
	}, nil
}

// Close releases the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) Clear(ctx context.Context) (int64, error) {
	res, err := m.collection.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *Mongo) Insert(ctx context.Context, records []models.Record) error {
	if len(records) == 0 {
		return nil
	}
	docs := make([]interface{}, len(records))
	for i, r := range records {
		docs[i] = r
	}
	_, err := m.collection.InsertMany(ctx, docs)
	return err
}

func (m *Mongo) CountByCategory(ctx context.Context) (map[string]int64, error) {
	keys, err := m.collection.Distinct(ctx, "categoria", bson.D{})
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(keys))
	for _, k := range keys {
		key, ok := k.(string)
		if !ok {
			continue
		}
		n, err := m.collection.CountDocuments(ctx, bson.D{{Key: "categoria", Value: key}})
		if err != nil {
			return nil, err
		}
		counts[key] = n
	}
	return counts, nil
}
