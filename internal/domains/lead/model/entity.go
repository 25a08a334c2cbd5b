package model

import (
	"time"

	"github.com/google/uuid"
)

// =====================================================
// LEAD ENTITY
// =====================================================

// Lead is a captured sales contact. Email and Source are the only
// required fields; anything else the form sent lives in Data.
type Lead struct {
	ID        uuid.UUID              `json:"id" db:"id"`
	Email     string                 `json:"email" db:"email"`
	Source    string                 `json:"source" db:"source"`
	Name      *string                `json:"name,omitempty" db:"name"`
	Phone     *string                `json:"phone,omitempty" db:"phone"`
	Data      map[string]interface{} `json:"data,omitempty" db:"data"`
	CreatedAt time.Time              `json:"created_at" db:"created_at"`
}
