package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"compliance-backend/internal/shared"
	"compliance-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddress, redisPassword string, redisDB int) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{
			Addr:     redisAddress,
			Password: redisPassword,
			DB:       redisDB,
		},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

func (s *Scheduler) RegisterJobs() error {
	return s.registerLeadDigestJob()
}

// ================================================
// JOB 1: Lead Digest (Daily at 7 AM)
// ================================================
func (s *Scheduler) registerLeadDigestJob() error {
	// Date rỗng = hôm qua
	payload, err := json.Marshal(shared.LeadDigestPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeLeadDigest, payload)

	_, err = s.scheduler.Register(
		"0 7 * * *", // Daily at 7 AM
		task,
		asynq.Queue(shared.QueueLow),
		asynq.MaxRetry(2),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register LeadDigest job", err)
		return err
	}

	logger.Info("✓ Registered LeadDigest: daily at 7 AM", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Run() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
