package seeder

import (
	"Backend-EaseForm/src/database"
	"Backend-EaseForm/src/models"
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// SeedSampleData inserts a demo host and two sample forms for local
// development. Running it twice is safe: it keys off the demo email.
func SeedSampleData(ctx context.Context) error {
	var existing models.Host
	err := database.HostCollection.FindOne(ctx, bson.M{"email": "demo@easeform.local"}).Decode(&existing)
	if err == nil {
		log.Println("✅ Sample data already present, skipping seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	host := &models.Host{
		ID:        primitive.NewObjectID(),
		Email:     "demo@easeform.local",
		Name:      "demo",
		Password:  string(hashed),
		CreatedAt: time.Now(),
	}
	if _, err := database.HostCollection.InsertOne(ctx, host); err != nil {
		return err
	}

	now := time.Now()
	forms := []interface{}{
		&models.Form{
			ID:          primitive.NewObjectID(),
			HostID:      host.ID,
			Title:       "Event Feedback",
			Description: "Tell us how the event went",
			Questions: []models.Question{
				{ID: primitive.NewObjectID().Hex(), Question: "How would you rate the event overall?", Type: "linear_scale", Required: true},
				{ID: primitive.NewObjectID().Hex(), Question: "Which sessions did you attend?", Type: "checkboxes", Required: false, Options: []string{"Keynote", "Workshop A", "Workshop B", "Panel"}},
				{ID: primitive.NewObjectID().Hex(), Question: "Anything we should improve?", Type: "paragraph", Required: false},
			},
			IsActive:             true,
			Anonymous:            true,
			OneResponsePerDevice: true,
			CreatedAt:            now,
			UpdatedAt:            now,
		},
		&models.Form{
			ID:          primitive.NewObjectID(),
			HostID:      host.ID,
			Title:       "Lunch Order",
			Description: "Pick your lunch for Friday",
			Questions: []models.Question{
				{ID: primitive.NewObjectID().Hex(), Question: "Your name", Type: "short_answer", Required: true},
				{ID: primitive.NewObjectID().Hex(), Question: "Choose a dish", Type: "dropdown", Required: true, Options: []string{"Pad Thai", "Fried Rice", "Green Curry", "Salad"}},
			},
			IsActive:             false,
			Anonymous:            true,
			OneResponsePerDevice: true,
			CreatedAt:            now,
			UpdatedAt:            now,
		},
	}
	if _, err := database.FormCollection.InsertMany(ctx, forms); err != nil {
		return err
	}

	log.Println("✅ Seeded demo host and sample forms")
	return nil
}
