package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"compliance-backend/internal/domains/company/model"
	"compliance-backend/internal/domains/company/service"
	"compliance-backend/internal/shared/response"
)

// =====================================================
// COMPANY HANDLER
// =====================================================

type CompanyHandler struct {
	companyService service.ServiceInterface
}

func NewCompanyHandler(companyService service.ServiceInterface) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// SearchCompanies searches the public directory
// GET /api/v1/companies?q=&city=&category=&page=&limit=
func (h *CompanyHandler) SearchCompanies(c *gin.Context) {
	var query model.SearchCompaniesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	query.Normalize()

	companies, total, err := h.companyService.SearchCompanies(c.Request.Context(), query)
	if err != nil {
		response.InternalServerError(c, "failed to search companies")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, companies, &response.Meta{
		Page:  query.Page,
		Limit: query.Limit,
		Total: int(total),
	})
}

// GetCompany fetches one directory entry
// GET /api/v1/companies/:id
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid company id")
		return
	}

	company, err := h.companyService.GetCompany(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrCompanyNotFound) {
			response.NotFound(c, "Company not found")
			return
		}
		response.InternalServerError(c, "failed to get company")
		return
	}

	response.Success(c, http.StatusOK, company)
}

// ImportCompanies upserts a batch of directory records
// POST /api/v1/companies/import (admin)
func (h *CompanyHandler) ImportCompanies(c *gin.Context) {
	var records []model.UpsertCompanyRequest
	if err := c.ShouldBindJSON(&records); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if len(records) == 0 {
		response.BadRequest(c, "empty import batch")
		return
	}

	result, err := h.companyService.ImportCompanies(c.Request.Context(), records)
	if err != nil {
		response.InternalServerError(c, "failed to import companies")
		return
	}

	response.Success(c, http.StatusOK, result)
}
