package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"compliance-backend/internal/domains/lead/model"
)

// LeadRepository defines lead data access
type LeadRepository interface {
	Create(ctx context.Context, lead *model.Lead) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Lead, error)
	List(ctx context.Context, query model.ListLeadsQuery) ([]*model.Lead, int64, error)
	CountBySourceForDay(ctx context.Context, day time.Time) (map[string]int64, error)
}
