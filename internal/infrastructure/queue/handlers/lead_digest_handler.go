package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"compliance-backend/internal/domains/lead/repository"
	"compliance-backend/internal/infrastructure/email"
	"compliance-backend/internal/shared"
	"compliance-backend/pkg/logger"
)

// LeadDigestHandler sends the per-source summary of leads captured on
// one calendar day. An empty date in the payload means yesterday,
// which is what the scheduled morning run uses.
func LeadDigestHandler(repo repository.LeadRepository, emailSvc email.EmailService, salesEmail string) func(ctx context.Context, t *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var p shared.LeadDigestPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return asynq.SkipRetry
		}

		day := time.Now().UTC().AddDate(0, 0, -1)
		if p.Date != "" {
			parsed, err := time.Parse("2006-01-02", p.Date)
			if err != nil {
				return asynq.SkipRetry
			}
			day = parsed
		}

		counts, err := repo.CountBySourceForDay(ctx, day)
		if err != nil {
			return err
		}

		if len(counts) == 0 {
			logger.Info("No leads captured, skipping digest", map[string]interface{}{
				"date": day.Format("2006-01-02"),
			})
			return nil
		}

		data := email.LeadDigestData{
			Date:           day.Format("2006-01-02"),
			CountsBySource: make(map[string]int, len(counts)),
		}
		for source, count := range counts {
			data.CountsBySource[source] = int(count)
			data.Total += int(count)
		}

		if err := emailSvc.SendLeadDigest(ctx, salesEmail, data); err != nil {
			return err
		}
		return nil
	}
}
