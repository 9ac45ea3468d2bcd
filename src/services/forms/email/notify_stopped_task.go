package email

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeNotifyFormStopped = "email:notify-form-stopped"

type NotifyFormStoppedPayload struct {
	FormID string `json:"formId"`
}

func NewNotifyFormStoppedTask(formID string) (*asynq.Task, error) {
	b, err := json.Marshal(NotifyFormStoppedPayload{FormID: formID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotifyFormStopped, b), nil
}
