package database

import (
	"context"

	"Backend-EaseForm/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HostStore issues privileged operations against the hosts collection. A
// freshly-authenticated principal may have no host document yet, so the
// bootstrap check-and-insert must not depend on scoped visibility.
type HostStore struct{}

func NewHostStore() *HostStore {
	return &HostStore{}
}

// HostExists reports whether a host document exists for the id.
func (s *HostStore) HostExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	err := HostCollection.FindOne(ctx,
		bson.M{"_id": id},
		options.FindOne().SetProjection(bson.M{"_id": 1}),
	).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// InsertHost creates the host profile document.
func (s *HostStore) InsertHost(ctx context.Context, host *models.Host) error {
	_, err := HostCollection.InsertOne(ctx, host)
	return err
}
