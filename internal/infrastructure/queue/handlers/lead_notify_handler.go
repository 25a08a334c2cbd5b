package handlers

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"compliance-backend/internal/domains/lead/repository"
	"compliance-backend/internal/infrastructure/email"
	"compliance-backend/internal/shared"
)

// LeadNotifyHandler emails the sales inbox about one captured lead.
// The lead is re-read by ID so the email reflects the persisted row,
// not whatever was in the request.
func LeadNotifyHandler(repo repository.LeadRepository, emailSvc email.EmailService, salesEmail string) func(ctx context.Context, t *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var p shared.LeadNotifyPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return asynq.SkipRetry // Sai format payload, skip retry
		}

		id, err := uuid.Parse(p.LeadID)
		if err != nil {
			return asynq.SkipRetry
		}

		lead, err := repo.GetByID(ctx, id)
		if err != nil {
			// Lead đã bị xoá trước khi job chạy thì retry cũng vô ích
			return asynq.SkipRetry
		}

		data := email.LeadNotificationData{
			LeadID: lead.ID.String(),
			Email:  lead.Email,
			Source: lead.Source,
			Extra:  lead.Data,
		}
		if lead.Name != nil {
			data.Name = *lead.Name
		}
		if lead.Phone != nil {
			data.Phone = *lead.Phone
		}

		if err := emailSvc.SendLeadNotification(ctx, salesEmail, data); err != nil {
			return err // Lỗi mạng, SMTP, retry lại
		}
		return nil
	}
}
