package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypePurgeFormResponses = "responses:purge"

type PurgeFormResponsesPayload struct {
	FormID string `json:"form_id"`
}

// NewPurgeFormResponsesTask builds the task that removes every response of
// a deleted form.
func NewPurgeFormResponsesTask(formID string) (*asynq.Task, error) {
	payload, err := json.Marshal(PurgeFormResponsesPayload{FormID: formID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePurgeFormResponses, payload), nil
}

const TypeSweepOrphanResponses = "responses:sweep"

// NewSweepOrphanResponsesTask builds the periodic task that deletes
// responses whose form no longer exists (crash window between a form delete
// and its purge).
func NewSweepOrphanResponsesTask() *asynq.Task {
	return asynq.NewTask(TypeSweepOrphanResponses, nil)
}
