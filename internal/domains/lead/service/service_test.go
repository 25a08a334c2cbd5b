package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compliance-backend/internal/domains/lead/model"
)

type fakeLeadRepo struct {
	created   []*model.Lead
	createErr error
}

func (f *fakeLeadRepo) Create(ctx context.Context, lead *model.Lead) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, lead)
	return nil
}

func (f *fakeLeadRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Lead, error) {
	for _, lead := range f.created {
		if lead.ID == id {
			return lead, nil
		}
	}
	return nil, model.NewLeadNotFoundError()
}

func (f *fakeLeadRepo) List(ctx context.Context, q model.ListLeadsQuery) ([]*model.Lead, int64, error) {
	return f.created, int64(len(f.created)), nil
}

func (f *fakeLeadRepo) CountBySourceForDay(ctx context.Context, day time.Time) (map[string]int64, error) {
	return nil, nil
}

type fakeEnqueuer struct {
	enqueued []uuid.UUID
	err      error
}

func (f *fakeEnqueuer) EnqueueLeadNotify(ctx context.Context, leadID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.enqueued = append(f.enqueued, leadID)
	return nil
}

func newTestLeadService(repo *fakeLeadRepo, enq *fakeEnqueuer) *leadService {
	svc := &leadService{
		repo: repo,
		now:  func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) },
	}
	if enq != nil {
		svc.enqueuer = enq
	}
	return svc
}

func TestCaptureLead_RequiredFields(t *testing.T) {
	repo := &fakeLeadRepo{}
	svc := newTestLeadService(repo, nil)

	// Email checked before source: both missing reports email first
	_, err := svc.CaptureLead(context.Background(), map[string]interface{}{})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrEmailMissing)

	_, err = svc.CaptureLead(context.Background(), map[string]interface{}{
		"email": "jo@example.co.za",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrSourceMissing)

	assert.Empty(t, repo.created)
}

func TestCaptureLead_NonStringRequiredFieldRejected(t *testing.T) {
	svc := newTestLeadService(&fakeLeadRepo{}, nil)

	_, err := svc.CaptureLead(context.Background(), map[string]interface{}{
		"email":  42,
		"source": "contact-form",
	})

	assert.ErrorIs(t, err, model.ErrEmailMissing)
}

func TestCaptureLead_KnownFieldsLifted(t *testing.T) {
	repo := &fakeLeadRepo{}
	svc := newTestLeadService(repo, nil)

	lead, err := svc.CaptureLead(context.Background(), map[string]interface{}{
		"email":  "jo@example.co.za",
		"source": "popia-guide",
		"name":   "Jo",
		"phone":  "+27 82 000 0000",
	})

	require.NoError(t, err)
	assert.Equal(t, "jo@example.co.za", lead.Email)
	assert.Equal(t, "popia-guide", lead.Source)
	require.NotNil(t, lead.Name)
	assert.Equal(t, "Jo", *lead.Name)
	require.NotNil(t, lead.Phone)
	assert.Equal(t, "+27 82 000 0000", *lead.Phone)
	assert.Nil(t, lead.Data)
	assert.NotEqual(t, uuid.Nil, lead.ID)
}

func TestCaptureLead_ExtraFieldsPreserved(t *testing.T) {
	repo := &fakeLeadRepo{}
	svc := newTestLeadService(repo, nil)

	lead, err := svc.CaptureLead(context.Background(), map[string]interface{}{
		"email":        "jo@example.co.za",
		"source":       "pricing-page",
		"company_size": "11-50",
		"interests":    []interface{}{"popia", "bee"},
	})

	require.NoError(t, err)
	require.NotNil(t, lead.Data)
	assert.Equal(t, "11-50", lead.Data["company_size"])
	assert.Equal(t, []interface{}{"popia", "bee"}, lead.Data["interests"])

	// Lifted fields must not be duplicated inside data
	_, hasEmail := lead.Data["email"]
	assert.False(t, hasEmail)
}

func TestCaptureLead_EnqueuesNotification(t *testing.T) {
	repo := &fakeLeadRepo{}
	enq := &fakeEnqueuer{}
	svc := newTestLeadService(repo, enq)

	lead, err := svc.CaptureLead(context.Background(), map[string]interface{}{
		"email":  "jo@example.co.za",
		"source": "contact-form",
	})

	require.NoError(t, err)
	require.Len(t, enq.enqueued, 1)
	assert.Equal(t, lead.ID, enq.enqueued[0])
}

func TestCaptureLead_EnqueueFailureIsNotFatal(t *testing.T) {
	repo := &fakeLeadRepo{}
	enq := &fakeEnqueuer{err: errors.New("redis down")}
	svc := newTestLeadService(repo, enq)

	lead, err := svc.CaptureLead(context.Background(), map[string]interface{}{
		"email":  "jo@example.co.za",
		"source": "contact-form",
	})

	// Lead is stored even though the notification could not be queued
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, lead.ID, repo.created[0].ID)
}

func TestCaptureLead_RepoErrorPropagates(t *testing.T) {
	repo := &fakeLeadRepo{createErr: errors.New("connection refused")}
	svc := newTestLeadService(repo, nil)

	_, err := svc.CaptureLead(context.Background(), map[string]interface{}{
		"email":  "jo@example.co.za",
		"source": "contact-form",
	})

	assert.Error(t, err)
}
