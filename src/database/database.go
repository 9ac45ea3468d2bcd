package database

import (
	"context"
	"fmt"
	"log"
	"sync"

	"Backend-EaseForm/src/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // ConnectMongoDB must only run once
	connectErr error

	HostCollection     *mongo.Collection
	FormCollection     *mongo.Collection
	ResponseCollection *mongo.Collection
)

// ConnectMongoDB connects to MongoDB once and resolves the collection
// handles used by the stores.
func ConnectMongoDB(cfg config.Config) error {
	if cfg.MongoURI == "" {
		return fmt.Errorf("MONGO_URI environment variable not set")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(cfg.MongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			return
		}

		log.Println("✅ MongoDB connected successfully")

		HostCollection = GetCollection(cfg.MongoDB, "hosts")
		FormCollection = GetCollection(cfg.MongoDB, "forms")
		ResponseCollection = GetCollection(cfg.MongoDB, "responses")
	})

	return connectErr
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
