package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"compliance-backend/internal/domains/lead/model"
)

// =====================================================
// POSTGRES LEAD REPOSITORY
// =====================================================

type postgresLeadRepository struct {
	db *pgxpool.Pool
}

func NewPostgresLeadRepository(db *pgxpool.Pool) LeadRepository {
	return &postgresLeadRepository{db: db}
}

const leadColumns = `id, email, source, name, phone, data, created_at`

// Create inserts a new lead
func (r *postgresLeadRepository) Create(ctx context.Context, lead *model.Lead) error {
	data, err := encodeData(lead.Data)
	if err != nil {
		return fmt.Errorf("failed to encode lead data: %w", err)
	}

	query := `
		INSERT INTO leads (id, email, source, name, phone, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.db.Exec(ctx, query,
		lead.ID,
		lead.Email,
		lead.Source,
		lead.Name,
		lead.Phone,
		data,
		lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	return nil
}

// GetByID fetches a single lead
func (r *postgresLeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Lead, error) {
	query := fmt.Sprintf(`SELECT %s FROM leads WHERE id = $1`, leadColumns)

	lead, err := r.scanLead(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewLeadNotFoundError()
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return lead, nil
}

// List returns leads newest first, optionally filtered by source
func (r *postgresLeadRepository) List(ctx context.Context, q model.ListLeadsQuery) ([]*model.Lead, int64, error) {
	where := ""
	args := []interface{}{}
	if q.Source != "" {
		where = "WHERE source = $1"
		args = append(args, q.Source)
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM leads %s`, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leads: %w", err)
	}

	offset := (q.Page - 1) * q.Limit
	listQuery := fmt.Sprintf(`
		SELECT %s FROM leads %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, leadColumns, where, len(args)+1, len(args)+2)
	args = append(args, q.Limit, offset)

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	leads := make([]*model.Lead, 0)
	for rows.Next() {
		lead, err := r.scanLead(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate leads: %w", err)
	}

	return leads, total, nil
}

// CountBySourceForDay counts leads captured on the given calendar day,
// grouped by source. Used by the daily digest job.
func (r *postgresLeadRepository) CountBySourceForDay(ctx context.Context, day time.Time) (map[string]int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	query := `
		SELECT source, COUNT(*)
		FROM leads
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY source
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads by source: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var source string
		var count int64
		if err := rows.Scan(&source, &count); err != nil {
			return nil, fmt.Errorf("failed to scan lead count: %w", err)
		}
		counts[source] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lead counts: %w", err)
	}

	return counts, nil
}

// =====================================================
// HELPERS
// =====================================================

func (r *postgresLeadRepository) scanLead(row pgx.Row) (*model.Lead, error) {
	var lead model.Lead
	var data []byte

	err := row.Scan(
		&lead.ID,
		&lead.Email,
		&lead.Source,
		&lead.Name,
		&lead.Phone,
		&data,
		&lead.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &lead.Data); err != nil {
			return nil, fmt.Errorf("failed to decode lead data: %w", err)
		}
	}

	return &lead, nil
}

func encodeData(data map[string]interface{}) ([]byte, error) {
	if len(data) == 0 {
		return []byte("{}"), nil
	}
	return json.Marshal(data)
}
