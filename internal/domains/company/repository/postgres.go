package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"compliance-backend/internal/domains/company/model"
)

// =====================================================
// POSTGRES COMPANY REPOSITORY
// =====================================================

type postgresCompanyRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCompanyRepository(db *pgxpool.Pool) CompanyRepository {
	return &postgresCompanyRepository{db: db}
}

const companyColumns = `id, source, source_id, name, description, category, categories, phone, email, website, address, suburb, city, province, postal_code, country, latitude, longitude, logo, source_url, created_at, updated_at`

// UpsertBatch inserts or updates companies keyed on (source, source_id).
// Uses one pgx batch round trip per call; callers chunk large imports.
func (r *postgresCompanyRepository) UpsertBatch(ctx context.Context, companies []*model.Company) (*model.UpsertResult, error) {
	result := &model.UpsertResult{}
	if len(companies) == 0 {
		return result, nil
	}

	query := `
		INSERT INTO companies (id, source, source_id, name, description, category, categories, phone, email, website, address, suburb, city, province, postal_code, country, latitude, longitude, logo, source_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		ON CONFLICT (source, source_id) DO UPDATE SET
			name        = EXCLUDED.name,
			description = EXCLUDED.description,
			category    = EXCLUDED.category,
			categories  = EXCLUDED.categories,
			phone       = EXCLUDED.phone,
			email       = EXCLUDED.email,
			website     = EXCLUDED.website,
			address     = EXCLUDED.address,
			suburb      = EXCLUDED.suburb,
			city        = EXCLUDED.city,
			province    = EXCLUDED.province,
			postal_code = EXCLUDED.postal_code,
			country     = EXCLUDED.country,
			latitude    = EXCLUDED.latitude,
			longitude   = EXCLUDED.longitude,
			logo        = EXCLUDED.logo,
			source_url  = EXCLUDED.source_url,
			updated_at  = EXCLUDED.updated_at
		RETURNING (xmax = 0) AS inserted
	`

	batch := &pgx.Batch{}
	for _, company := range companies {
		batch.Queue(query,
			company.ID,
			company.Source,
			company.SourceID,
			company.Name,
			company.Description,
			company.Category,
			pq.Array(company.Categories),
			company.Phone,
			company.Email,
			company.Website,
			company.Address,
			company.Suburb,
			company.City,
			company.Province,
			company.PostalCode,
			company.Country,
			company.Latitude,
			company.Longitude,
			company.Logo,
			company.SourceURL,
			company.CreatedAt,
			company.UpdatedAt,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range companies {
		var inserted bool
		if err := results.QueryRow().Scan(&inserted); err != nil {
			return nil, fmt.Errorf("failed to upsert company: %w", err)
		}
		if inserted {
			result.Inserted++
		} else {
			result.Updated++
		}
	}

	return result, nil
}

// GetByID fetches a single company
func (r *postgresCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	query := fmt.Sprintf(`SELECT %s FROM companies WHERE id = $1`, companyColumns)

	company, err := r.scanCompany(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewCompanyNotFoundError()
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return company, nil
}

// Search filters the directory by free-text name, city and category
func (r *postgresCompanyRepository) Search(ctx context.Context, q model.SearchCompaniesQuery) ([]*model.Company, int64, error) {
	where := "WHERE 1=1"
	args := []interface{}{}

	if q.Query != "" {
		args = append(args, "%"+q.Query+"%")
		where += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	if q.City != "" {
		args = append(args, q.City)
		where += fmt.Sprintf(" AND city ILIKE $%d", len(args))
	}
	if q.Category != "" {
		args = append(args, q.Category)
		where += fmt.Sprintf(" AND $%d = ANY(categories)", len(args))
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM companies %s`, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	offset := (q.Page - 1) * q.Limit
	listQuery := fmt.Sprintf(`
		SELECT %s FROM companies %s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d
	`, companyColumns, where, len(args)+1, len(args)+2)
	args = append(args, q.Limit, offset)

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search companies: %w", err)
	}
	defer rows.Close()

	companies := make([]*model.Company, 0)
	for rows.Next() {
		company, err := r.scanCompany(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate companies: %w", err)
	}

	return companies, total, nil
}

func (r *postgresCompanyRepository) scanCompany(row pgx.Row) (*model.Company, error) {
	var company model.Company

	err := row.Scan(
		&company.ID,
		&company.Source,
		&company.SourceID,
		&company.Name,
		&company.Description,
		&company.Category,
		pq.Array(&company.Categories),
		&company.Phone,
		&company.Email,
		&company.Website,
		&company.Address,
		&company.Suburb,
		&company.City,
		&company.Province,
		&company.PostalCode,
		&company.Country,
		&company.Latitude,
		&company.Longitude,
		&company.Logo,
		&company.SourceURL,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &company, nil
}
