package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"compliance-backend/internal/domains/lead/model"
	"compliance-backend/internal/domains/lead/service"
	"compliance-backend/internal/shared/response"
)

// =====================================================
// LEAD HANDLER
// =====================================================

type LeadHandler struct {
	leadService service.ServiceInterface
}

func NewLeadHandler(leadService service.ServiceInterface) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// =====================================================
// PUBLIC ENDPOINT
// =====================================================

// CaptureLead accepts a lead form submission
// POST /api/v1/leads
//
// The wire shape here is fixed for the website forms and predates the
// standard envelope: {"success":true,"id":...} on success and
// {"error":"..."} on failure. Keep it stable.
func (h *LeadHandler) CaptureLead(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	lead, err := h.leadService.CaptureLead(c.Request.Context(), payload)
	if err != nil {
		var leadErr *model.LeadError
		if errors.As(err, &leadErr) && leadErr.Code == model.ErrCodeValidation {
			c.JSON(http.StatusBadRequest, gin.H{"error": leadErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save lead"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      lead.ID,
	})
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// ListLeads lists captured leads, newest first
// GET /api/v1/leads
func (h *LeadHandler) ListLeads(c *gin.Context) {
	var query model.ListLeadsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	query.Normalize()

	leads, total, err := h.leadService.ListLeads(c.Request.Context(), query)
	if err != nil {
		response.InternalServerError(c, "failed to list leads")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, leads, &response.Meta{
		Page:  query.Page,
		Limit: query.Limit,
		Total: int(total),
	})
}

// GetLead fetches a single lead
// GET /api/v1/leads/:id
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid lead id")
		return
	}

	lead, err := h.leadService.GetLead(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrLeadNotFound) {
			response.NotFound(c, "Lead not found")
			return
		}
		response.InternalServerError(c, "failed to get lead")
		return
	}

	response.Success(c, http.StatusOK, lead)
}
