package service

import (
	"context"

	"github.com/google/uuid"

	"compliance-backend/internal/domains/lead/model"
)

// ServiceInterface defines lead business logic
type ServiceInterface interface {
	CaptureLead(ctx context.Context, payload map[string]interface{}) (*model.Lead, error)
	GetLead(ctx context.Context, id uuid.UUID) (*model.LeadResponse, error)
	ListLeads(ctx context.Context, query model.ListLeadsQuery) ([]*model.LeadResponse, int64, error)
}

// Enqueuer hands captured leads off to the background notifier.
type Enqueuer interface {
	EnqueueLeadNotify(ctx context.Context, leadID uuid.UUID) error
}
