package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Backend-EaseForm/src/config"
	"Backend-EaseForm/src/database"
	"Backend-EaseForm/src/services/forms/email"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandlePurgeFormResponsesTask removes all responses of a deleted form.
func HandlePurgeFormResponsesTask(ctx context.Context, t *asynq.Task) error {
	var payload PurgeFormResponsesPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	formID, err := primitive.ObjectIDFromHex(payload.FormID)
	if err != nil {
		log.Println("⚠️ Invalid form id in purge task, skipping:", payload.FormID)
		return nil
	}

	result, err := database.ResponseCollection.DeleteMany(ctx, bson.M{"formId": formID})
	if err != nil {
		log.Println("❌ Failed to purge responses:", err)
		return err
	}

	log.Printf("✅ Purged %d responses for form %s", result.DeletedCount, payload.FormID)
	return nil
}

// formExistenceLookup answers "does this form still exist" for the sweep.
// Satisfied by database.FormStore's FormOwner.
type formExistenceLookup interface {
	FormOwner(ctx context.Context, id primitive.ObjectID) (primitive.ObjectID, bool, error)
}

// sweepResponseStore is the slice of the response store the sweep needs.
type sweepResponseStore interface {
	DistinctFormIDs(ctx context.Context) ([]primitive.ObjectID, error)
	DeleteByForm(ctx context.Context, formID primitive.ObjectID) (int64, error)
}

// sweepOrphanResponses deletes responses whose form no longer exists. A
// failed existence lookup aborts the sweep instead of counting as absence:
// a transient storage error must never delete live responses. The task is
// retried by asynq.
func sweepOrphanResponses(ctx context.Context, forms formExistenceLookup, responses sweepResponseStore) (int64, error) {
	formIDs, err := responses.DistinctFormIDs(ctx)
	if err != nil {
		return 0, err
	}

	var swept int64
	for _, formID := range formIDs {
		_, found, err := forms.FormOwner(ctx, formID)
		if err != nil {
			return swept, err
		}
		if found {
			continue // form still exists
		}

		deleted, err := responses.DeleteByForm(ctx, formID)
		if err != nil {
			return swept, err
		}
		swept += deleted
	}
	return swept, nil
}

// HandleSweepOrphanResponsesTask deletes responses whose form no longer
// exists.
func HandleSweepOrphanResponsesTask(ctx context.Context, t *asynq.Task) error {
	swept, err := sweepOrphanResponses(ctx, database.NewFormStore(), database.NewResponseStore())
	if err != nil {
		log.Println("❌ Orphan sweep failed:", err)
		return err
	}
	if swept > 0 {
		log.Printf("✅ Orphan sweep removed %d responses", swept)
	}
	return nil
}

// StartWorker runs the background worker and the periodic orphan sweep.
// Call in a goroutine after InitRedis; it is a no-op without Redis.
func StartWorker(cfg config.Config) {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Background worker will not start.")
		return
	}

	redisOpt := asynq.RedisClientOpt{Addr: database.RedisURI}

	scheduler := asynq.NewScheduler(redisOpt, nil)
	if _, err := scheduler.Register("@every 24h", NewSweepOrphanResponsesTask()); err != nil {
		log.Println("❌ Failed to register orphan sweep:", err)
	} else {
		go func() {
			if err := scheduler.Run(); err != nil {
				log.Println("❌ Scheduler stopped:", err)
			}
		}()
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 5})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePurgeFormResponses, HandlePurgeFormResponsesTask)
	mux.HandleFunc(TypeSweepOrphanResponses, HandleSweepOrphanResponsesTask)

	if sender, err := email.NewSMTPSenderFromEnv(); err != nil {
		log.Println("⚠️ Email disabled:", err)
	} else {
		mux.Handle(email.TypeNotifyFormStopped, email.HandleNotifyFormStopped(sender, cfg.FrontendURL))
	}

	log.Println("✅ Background worker started")
	if err := srv.Run(mux); err != nil {
		log.Println("❌ Background worker stopped:", err)
	}
}
