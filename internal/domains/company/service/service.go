package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"compliance-backend/internal/domains/company/model"
	"compliance-backend/internal/domains/company/repository"
	"compliance-backend/pkg/cache"
	"compliance-backend/pkg/logger"
)

// =====================================================
// COMPANY SERVICE
// =====================================================

// Import batches are chunked so one oversized payload cannot hold a
// connection for the whole import.
const importBatchSize = 500

const searchCacheTTL = 5 * time.Minute

type companyService struct {
	repo  repository.CompanyRepository
	cache cache.Cache
}

// NewCompanyService - cache có thể nil, search sẽ đi thẳng xuống DB.
func NewCompanyService(repo repository.CompanyRepository, cache cache.Cache) ServiceInterface {
	return &companyService{
		repo:  repo,
		cache: cache,
	}
}

// ImportCompanies validates and upserts a batch of directory records.
// Invalid records are skipped and counted, not fatal: imports come
// from scraped data and a few bad rows are expected.
func (s *companyService) ImportCompanies(ctx context.Context, records []model.UpsertCompanyRequest) (*model.UpsertResult, error) {
	result := &model.UpsertResult{}
	now := time.Now().UTC()

	valid := make([]*model.Company, 0, len(records))
	for _, record := range records {
		// Clean trước khi validate: scraped name dài hơn 500 thì cắt
		// ngắn chứ không bỏ record.
		record.Name = truncate(strings.TrimSpace(record.Name), 500)
		if record.Country == "" {
			record.Country = model.DefaultCountry
		}
		if err := record.Validate(); err != nil {
			result.Skipped++
			continue
		}
		valid = append(valid, &model.Company{
			ID:          uuid.New(),
			Source:      record.Source,
			SourceID:    record.SourceID,
			Name:        record.Name,
			Description: record.Description,
			Category:    record.Category,
			Categories:  record.Categories,
			Phone:       record.Phone,
			Email:       record.Email,
			Website:     record.Website,
			Address:     record.Address,
			Suburb:      record.Suburb,
			City:        record.City,
			Province:    record.Province,
			PostalCode:  record.PostalCode,
			Country:     record.Country,
			Latitude:    record.Latitude,
			Longitude:   record.Longitude,
			Logo:        record.Logo,
			SourceURL:   record.SourceURL,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	for start := 0; start < len(valid); start += importBatchSize {
		end := start + importBatchSize
		if end > len(valid) {
			end = len(valid)
		}

		batchResult, err := s.repo.UpsertBatch(ctx, valid[start:end])
		if err != nil {
			return nil, err
		}
		result.Inserted += batchResult.Inserted
		result.Updated += batchResult.Updated
	}

	// Directory thay đổi, bỏ hết cache search cũ
	if s.cache != nil && (result.Inserted > 0 || result.Updated > 0) {
		if err := s.cache.DeletePattern(ctx, "companies:search:*"); err != nil {
			logger.Warn("Failed to invalidate company search cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return result, nil
}

// GetCompany fetches a single company by id
func (s *companyService) GetCompany(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	return s.repo.GetByID(ctx, id)
}

// SearchCompanies serves directory searches through a short-lived
// cache. Cache failures degrade to the database silently.
func (s *companyService) SearchCompanies(ctx context.Context, query model.SearchCompaniesQuery) ([]*model.Company, int64, error) {
	query.Normalize()
	key := searchCacheKey(query)

	type cachedSearch struct {
		Companies []*model.Company `json:"companies"`
		Total     int64            `json:"total"`
	}

	if s.cache != nil {
		var cached cachedSearch
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			logger.Warn("Company search cache read failed", map[string]interface{}{
				"error": err.Error(),
			})
		} else if found {
			return cached.Companies, cached.Total, nil
		}
	}

	companies, total, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, cachedSearch{Companies: companies, Total: total}, searchCacheTTL); err != nil {
			logger.Warn("Company search cache write failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return companies, total, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func searchCacheKey(q model.SearchCompaniesQuery) string {
	return fmt.Sprintf("companies:search:%s:%s:%s:%d:%d",
		strings.ToLower(strings.TrimSpace(q.Query)),
		strings.ToLower(strings.TrimSpace(q.City)),
		strings.ToLower(strings.TrimSpace(q.Category)),
		q.Page,
		q.Limit,
	)
}
