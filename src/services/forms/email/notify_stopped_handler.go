package email

import (
	DB "Backend-EaseForm/src/database"
	"Backend-EaseForm/src/models"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleNotifyFormStopped mails the owning host a summary after a form is
// stopped. frontendURL comes from the loaded config; empty drops the
// results link. Missing form or host is treated as done, not retried.
func HandleNotifyFormStopped(sender MailSender, frontendURL string) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p NotifyFormStoppedPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}

		formID, err := primitive.ObjectIDFromHex(p.FormID)
		if err != nil {
			return fmt.Errorf("invalid form id: %s", p.FormID)
		}

		var form models.Form
		if err := DB.FormCollection.FindOne(ctx, bson.M{"_id": formID}).Decode(&form); err != nil {
			log.Printf("stopped: form %s gone, skipping notify", p.FormID)
			return nil
		}

		var host models.Host
		if err := DB.HostCollection.FindOne(ctx, bson.M{"_id": form.HostID}).Decode(&host); err != nil || host.Email == "" {
			log.Printf("stopped: no host email for form %s, skipping notify", p.FormID)
			return nil
		}

		count, err := DB.ResponseCollection.CountDocuments(ctx, bson.M{"formId": formID})
		if err != nil {
			return err
		}

		base := strings.TrimRight(frontendURL, "/")
		resultsLink := ""
		if base != "" {
			resultsLink = base + "/dashboard/forms/" + p.FormID + "/responses"
		}

		html, err := RenderFormStoppedHTML(FormStoppedEmailData{
			HostName:      host.Name,
			FormTitle:     form.Title,
			ResponseCount: count,
			StoppedAt:     form.UpdatedAt,
			ResultsLink:   resultsLink,
		})
		if err != nil {
			return err
		}

		subject := "Form stopped: " + form.Title
		if err := sender.Send(host.Email, subject, html); err != nil {
			log.Printf("stopped: send failed to %s: %v", host.Email, err)
			return err
		}

		log.Printf("stopped: notify sent for form=%s", p.FormID)
		return nil
	}
}
