package service

import (
	"context"

	"github.com/google/uuid"

	"compliance-backend/internal/domains/company/model"
)

// ServiceInterface defines company business logic
type ServiceInterface interface {
	ImportCompanies(ctx context.Context, records []model.UpsertCompanyRequest) (*model.UpsertResult, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*model.Company, error)
	SearchCompanies(ctx context.Context, query model.SearchCompaniesQuery) ([]*model.Company, int64, error)
}
