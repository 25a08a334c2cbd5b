package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"compliance-backend/internal/shared"
)

// =====================================================
// ASYNQ CLIENT WRAPPER
// =====================================================

// Client wraps asynq enqueueing so domain services don't depend on
// asynq directly.
type Client struct {
	asynqClient *asynq.Client
}

func NewClient(redisAddress, redisPassword string, redisDB int) *Client {
	return &Client{
		asynqClient: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddress,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

// EnqueueLeadNotify queues a sales notification for a stored lead.
func (c *Client) EnqueueLeadNotify(ctx context.Context, leadID uuid.UUID) error {
	payload, err := json.Marshal(shared.LeadNotifyPayload{LeadID: leadID.String()})
	if err != nil {
		return fmt.Errorf("failed to marshal lead notify payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeLeadNotify, payload)

	_, err = c.asynqClient.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueHigh),
		asynq.MaxRetry(3),
		asynq.Timeout(1*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue lead notify: %w", err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.asynqClient.Close()
}
