package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// =====================================================
// COMPANY ENTITY
// =====================================================

// DefaultCountry is applied when an imported record carries no country.
const DefaultCountry = "South Africa"

// Company is one directory entry. Source plus SourceID identify the
// upstream record so re-imports update in place instead of
// duplicating.
type Company struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	Source      string         `json:"source" db:"source"`
	SourceID    string         `json:"source_id" db:"source_id"`
	Name        string         `json:"name" db:"name"`
	Description *string        `json:"description,omitempty" db:"description"`
	Category    *string        `json:"category,omitempty" db:"category"`
	Categories  pq.StringArray `json:"categories" db:"categories"`
	Phone       *string        `json:"phone,omitempty" db:"phone"`
	Email       *string        `json:"email,omitempty" db:"email"`
	Website     *string        `json:"website,omitempty" db:"website"`
	Address     *string        `json:"address,omitempty" db:"address"`
	Suburb      *string        `json:"suburb,omitempty" db:"suburb"`
	City        *string        `json:"city,omitempty" db:"city"`
	Province    *string        `json:"province,omitempty" db:"province"`
	PostalCode  *string        `json:"postal_code,omitempty" db:"postal_code"`
	Country     string         `json:"country" db:"country"`
	Latitude    *float64       `json:"latitude,omitempty" db:"latitude"`
	Longitude   *float64       `json:"longitude,omitempty" db:"longitude"`
	Logo        *string        `json:"logo,omitempty" db:"logo"`
	SourceURL   *string        `json:"source_url,omitempty" db:"source_url"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}
