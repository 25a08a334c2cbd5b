package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// UpsertCompanyRequest is one record in an import batch.
type UpsertCompanyRequest struct {
	Source      string   `json:"source"`
	SourceID    string   `json:"source_id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Categories  []string `json:"categories"`
	Phone       *string  `json:"phone"`
	Email       *string  `json:"email"`
	Website     *string  `json:"website"`
	Address     *string  `json:"address"`
	Suburb      *string  `json:"suburb"`
	City        *string  `json:"city"`
	Province    *string  `json:"province"`
	PostalCode  *string  `json:"postal_code"`
	Country     string   `json:"country"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Logo        *string  `json:"logo"`
	SourceURL   *string  `json:"source_url"`
}

func (r UpsertCompanyRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Source, validation.Required),
		validation.Field(&r.SourceID, validation.Required),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 500)),
	)
}

// SearchCompaniesQuery - query params cho directory search
type SearchCompaniesQuery struct {
	Query    string `form:"q"`
	City     string `form:"city"`
	Category string `form:"category"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

func (q *SearchCompaniesQuery) Normalize() {
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

// UpsertResult summarizes one import batch.
type UpsertResult struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
}
