package repository

import (
	"context"

	"github.com/google/uuid"

	"compliance-backend/internal/domains/company/model"
)

// CompanyRepository defines company data access
type CompanyRepository interface {
	UpsertBatch(ctx context.Context, companies []*model.Company) (*model.UpsertResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	Search(ctx context.Context, query model.SearchCompaniesQuery) ([]*model.Company, int64, error)
}
