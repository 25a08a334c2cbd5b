package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"compliance-backend/internal/domains/lead/model"
	"compliance-backend/internal/domains/lead/repository"
	"compliance-backend/pkg/logger"
)

// =====================================================
// LEAD SERVICE
// =====================================================

type leadService struct {
	repo     repository.LeadRepository
	enqueuer Enqueuer
	now      func() time.Time
}

// NewLeadService - enqueuer có thể nil khi chạy không có Redis
// (notification bị bỏ qua, lead vẫn được lưu).
func NewLeadService(repo repository.LeadRepository, enqueuer Enqueuer) ServiceInterface {
	return &leadService{
		repo:     repo,
		enqueuer: enqueuer,
		now:      time.Now,
	}
}

// CaptureLead validates and stores an intake payload.
//
// The payload is whatever JSON object the form submitted. Email and
// source are required; name and phone are lifted into columns when
// present; every remaining key is preserved in the data column so no
// form field is ever silently dropped.
func (s *leadService) CaptureLead(ctx context.Context, payload map[string]interface{}) (*model.Lead, error) {
	email := stringField(payload, model.FieldEmail)
	if email == "" {
		return nil, model.NewValidationError(model.ErrEmailMissing)
	}

	source := stringField(payload, model.FieldSource)
	if source == "" {
		return nil, model.NewValidationError(model.ErrSourceMissing)
	}

	lead := &model.Lead{
		ID:        uuid.New(),
		Email:     email,
		Source:    source,
		CreatedAt: s.now().UTC(),
	}

	if name := stringField(payload, model.FieldName); name != "" {
		lead.Name = &name
	}
	if phone := stringField(payload, model.FieldPhone); phone != "" {
		lead.Phone = &phone
	}

	extra := make(map[string]interface{})
	for key, value := range payload {
		switch key {
		case model.FieldEmail, model.FieldSource, model.FieldName, model.FieldPhone:
			continue
		}
		extra[key] = value
	}
	if len(extra) > 0 {
		lead.Data = extra
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	// Notification là best-effort: lead đã lưu xong, enqueue lỗi
	// thì chỉ log lại.
	if s.enqueuer != nil {
		if err := s.enqueuer.EnqueueLeadNotify(ctx, lead.ID); err != nil {
			logger.Warn("Failed to enqueue lead notification", map[string]interface{}{
				"lead_id": lead.ID.String(),
				"error":   err.Error(),
			})
		}
	}

	return lead, nil
}

// GetLead fetches a lead by id
func (s *leadService) GetLead(ctx context.Context, id uuid.UUID) (*model.LeadResponse, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.ToLeadResponse(lead), nil
}

// ListLeads returns leads for the admin UI, newest first
func (s *leadService) ListLeads(ctx context.Context, query model.ListLeadsQuery) ([]*model.LeadResponse, int64, error) {
	query.Normalize()

	leads, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*model.LeadResponse, 0, len(leads))
	for _, lead := range leads {
		responses = append(responses, model.ToLeadResponse(lead))
	}

	return responses, total, nil
}

// stringField reads a payload key as a trimmed string. Non-string
// values count as absent.
func stringField(payload map[string]interface{}, key string) string {
	value, ok := payload[key]
	if !ok {
		return ""
	}
	str, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(str)
}
