package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"Backend-EaseForm/src/database"
	"Backend-EaseForm/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// RegisterHost creates host credentials. Emails are stored lowercased and
// must be unique.
func RegisterHost(email, password, name string) (*models.Host, error) {
	ctx := context.Background()
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}
	if len(password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	err := database.HostCollection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil, errors.New("email already registered")
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if name == "" {
		if at := strings.Index(email, "@"); at > 0 {
			name = email[:at]
		}
	}

	host := &models.Host{
		Email:            email,
		Name:             name,
		Password:         string(hashed),
		ActiveFormsCount: 0,
		CreatedAt:        time.Now(),
	}

	result, err := database.HostCollection.InsertOne(ctx, host)
	if err != nil {
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		host.ID = oid
	}

	host.Password = ""
	return host, nil
}

// AuthenticateHost checks a host's credentials and returns the profile
// without the password hash.
func AuthenticateHost(email, password string) (*models.Host, error) {
	ctx := context.Background()

	var dbHost models.Host
	err := database.HostCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbHost)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbHost.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	dbHost.Password = ""
	return &dbHost, nil
}
