package main

import (
	"context"

	"github.com/hibiken/asynq"

	"compliance-backend/internal/infrastructure/queue/handlers"
	"compliance-backend/internal/shared"
	"compliance-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	leadNotify func(ctx context.Context, t *asynq.Task) error
	leadDigest func(ctx context.Context, t *asynq.Task) error
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	salesEmail := c.Config.Leads.SalesEmail

	return &HandlerRegistry{
		leadNotify: handlers.LeadNotifyHandler(c.LeadRepo, c.EmailService, salesEmail),
		leadDigest: handlers.LeadDigestHandler(c.LeadRepo, c.EmailService, salesEmail),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeLeadNotify, h.leadNotify)
	mux.HandleFunc(shared.TypeLeadDigest, h.leadDigest)
}
