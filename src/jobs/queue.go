package jobs

import (
	"errors"
	"log"
	"time"

	"Backend-EaseForm/src/database"
	"Backend-EaseForm/src/services/forms/email"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Queue enqueues maintenance tasks for the background worker. Construct
// with NewQueue; it is nil when Asynq is not initialized, and the services
// treat a nil queue as "do the work inline".
type Queue struct{}

// NewQueue returns a Queue backed by the shared Asynq client, or nil when
// Redis/Asynq is not configured.
func NewQueue() *Queue {
	if database.AsynqClient == nil {
		return nil
	}
	return &Queue{}
}

// EnqueueResponsePurge schedules the cascade purge of a deleted form's
// responses.
func (q *Queue) EnqueueResponsePurge(formID primitive.ObjectID) error {
	task, err := NewPurgeFormResponsesTask(formID.Hex())
	if err != nil {
		return err
	}

	_, err = database.AsynqClient.Enqueue(task,
		asynq.TaskID("purge-responses-"+formID.Hex()),
		asynq.MaxRetry(3),
	)
	if err != nil {
		return err
	}

	log.Println("✅ Enqueued response purge for form:", formID.Hex())
	return nil
}

// EnqueueFormStoppedEmail schedules the stopped-form summary mail. The task
// ID plus retention dedupes repeated stops of the same form.
func (q *Queue) EnqueueFormStoppedEmail(formID primitive.ObjectID) error {
	task, err := email.NewNotifyFormStoppedTask(formID.Hex())
	if err != nil {
		return err
	}

	_, err = database.AsynqClient.Enqueue(task,
		asynq.TaskID("notify-stopped-"+formID.Hex()),
		asynq.MaxRetry(3),
		asynq.Retention(24*time.Hour),
	)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil // already notified
		}
		return err
	}

	log.Println("✅ Enqueued stopped-form email for form:", formID.Hex())
	return nil
}
