package model

import (
	"time"

	"github.com/google/uuid"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// Known top-level payload fields. These are lifted into dedicated
// columns; everything else is kept verbatim in the data column.
const (
	FieldEmail  = "email"
	FieldSource = "source"
	FieldName   = "name"
	FieldPhone  = "phone"
)

// ListLeadsQuery - query params cho admin lead listing
type ListLeadsQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Source string `form:"source"`
}

func (q *ListLeadsQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}
}

// =====================================================
// RESPONSE DTOs
// =====================================================

type LeadResponse struct {
	ID        uuid.UUID              `json:"id"`
	Email     string                 `json:"email"`
	Source    string                 `json:"source"`
	Name      *string                `json:"name,omitempty"`
	Phone     *string                `json:"phone,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

func ToLeadResponse(lead *Lead) *LeadResponse {
	return &LeadResponse{
		ID:        lead.ID,
		Email:     lead.Email,
		Source:    lead.Source,
		Name:      lead.Name,
		Phone:     lead.Phone,
		Data:      lead.Data,
		CreatedAt: lead.CreatedAt,
	}
}
