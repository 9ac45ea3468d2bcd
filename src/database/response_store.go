package database

import (
	"context"

	"Backend-EaseForm/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResponseStore issues operations against the responses collection.
// Responses carry no owner field of their own; ownership flows through the
// parent form, so the responses service resolves the form first and these
// operations stay unscoped.
type ResponseStore struct{}

func NewResponseStore() *ResponseStore {
	return &ResponseStore{}
}

// HasFingerprint reports whether a response with the given device hash
// already exists for the form. This is the dedup existence check.
func (s *ResponseStore) HasFingerprint(ctx context.Context, formID primitive.ObjectID, deviceHash string) (bool, error) {
	err := ResponseCollection.FindOne(ctx,
		bson.M{"formId": formID, "deviceHash": deviceHash},
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

// InsertResponse stores a new response.
func (s *ResponseStore) InsertResponse(ctx context.Context, response *models.Response) error {
	result, err := ResponseCollection.InsertOne(ctx, response)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		response.ID = oid
	}
	return nil
}

// ListByForm returns all responses for a form, newest first.
func (s *ResponseStore) ListByForm(ctx context.Context, formID primitive.ObjectID) ([]models.Response, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := ResponseCollection.Find(ctx, bson.M{"formId": formID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	responses := []models.Response{}
	if err = cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

// FindResponse returns a response by id, or (nil, nil) when absent.
func (s *ResponseStore) FindResponse(ctx context.Context, id primitive.ObjectID) (*models.Response, error) {
	var response models.Response
	err := ResponseCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&response)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &response, nil
}

// DeleteResponse deletes one response by id.
func (s *ResponseStore) DeleteResponse(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := ResponseCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// DistinctFormIDs returns the distinct form ids referenced by stored
// responses. Used by the orphan sweep.
func (s *ResponseStore) DistinctFormIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	raw, err := ResponseCollection.Distinct(ctx, "formId", bson.M{})
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(primitive.ObjectID); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// DeleteByForm removes every response belonging to a form. Used by the
// cascade purge after a form delete.
func (s *ResponseStore) DeleteByForm(ctx context.Context, formID primitive.ObjectID) (int64, error) {
	result, err := ResponseCollection.DeleteMany(ctx, bson.M{"formId": formID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
