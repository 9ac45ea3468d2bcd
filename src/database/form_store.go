package database

import (
	"context"

	"Backend-EaseForm/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FormStore issues operations against the forms collection on three
// channels. Owned* methods are scoped: every filter carries the host id, so
// a caller can never see or touch a foreign form through them. *Privileged
// methods bypass that filter; only the ownership resolver and the
// resolver-gated retries may use them.
type FormStore struct{}

func NewFormStore() *FormStore {
	return &FormStore{}
}

// --- scoped channel ---

// FindOwnedForm returns the form only if hostID owns it. A (nil, nil) result
// means no rows: either the form is absent or it is foreign-owned, which the
// scoped channel cannot distinguish.
func (s *FormStore) FindOwnedForm(ctx context.Context, hostID, id primitive.ObjectID) (*models.Form, error) {
	var form models.Form
	err := FormCollection.FindOne(ctx, bson.M{"_id": id, "hostId": hostID}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &form, nil
}

// ListOwnedForms returns the list projection of the host's forms, newest first.
func (s *FormStore) ListOwnedForms(ctx context.Context, hostID primitive.ObjectID) ([]models.FormListItem, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1, "title": 1, "description": 1, "isActive": 1, "closed": 1, "createdAt": 1}).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := FormCollection.Find(ctx, bson.M{"hostId": hostID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.FormListItem{}
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// InsertForm writes a new form. The caller has already stamped hostId.
func (s *FormStore) InsertForm(ctx context.Context, form *models.Form) error {
	result, err := FormCollection.InsertOne(ctx, form)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		form.ID = oid
	}
	return nil
}

// UpdateOwnedForm applies set to the form if hostID owns it and returns the
// updated document, or (nil, nil) when the scoped filter matched nothing.
func (s *FormStore) UpdateOwnedForm(ctx context.Context, hostID, id primitive.ObjectID, set bson.M) (*models.Form, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var form models.Form
	err := FormCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "hostId": hostID},
		bson.M{"$set": set},
		opts,
	).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &form, nil
}

// DeleteOwnedForm deletes the form if hostID owns it.
func (s *FormStore) DeleteOwnedForm(ctx context.Context, hostID, id primitive.ObjectID) (bool, error) {
	result, err := FormCollection.DeleteOne(ctx, bson.M{"_id": id, "hostId": hostID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// --- anonymous channel ---

// FindForm is the unauthenticated read used by the public endpoints. Public
// rows are world-readable, so no owner filter applies.
func (s *FormStore) FindForm(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	var form models.Form
	err := FormCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &form, nil
}

// --- privileged channel ---

// FormOwner reads only the owner field of a form, bypassing the scoped
// filter. Used by the ownership resolver to disambiguate an empty scoped
// result.
func (s *FormStore) FormOwner(ctx context.Context, id primitive.ObjectID) (primitive.ObjectID, bool, error) {
	var doc struct {
		HostID primitive.ObjectID `bson:"hostId"`
	}
	opts := options.FindOne().SetProjection(bson.M{"hostId": 1})
	err := FormCollection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return primitive.NilObjectID, false, nil
		}
		return primitive.NilObjectID, false, err
	}
	return doc.HostID, true, nil
}

// UpdateFormPrivileged retries an update without the owner filter. Callers
// must hold an Authorized decision from the resolver.
func (s *FormStore) UpdateFormPrivileged(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Form, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var form models.Form
	err := FormCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		opts,
	).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &form, nil
}

// FindFormPrivileged retries a read without the owner filter. Callers must
// hold an Authorized decision from the resolver.
func (s *FormStore) FindFormPrivileged(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	return s.FindForm(ctx, id)
}

// DeleteFormPrivileged retries a delete without the owner filter. Callers
// must hold an Authorized decision from the resolver.
func (s *FormStore) DeleteFormPrivileged(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := FormCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
