package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"compliance-backend/internal/domains/post/model"
	"compliance-backend/internal/domains/post/service"
	"compliance-backend/internal/shared/middleware"
	"compliance-backend/pkg/logger"
)

// =====================================================
// POST HANDLER
// =====================================================

type PostHandler struct {
	postService service.ServiceInterface
	adminSecret string
}

// NewPostHandler - adminSecret chỉ dùng cho visibility decision trên read
// path; write routes đã được chặn bởi AdminAuth middleware.
func NewPostHandler(postService service.ServiceInterface, adminSecret string) *PostHandler {
	return &PostHandler{
		postService: postService,
		adminSecret: adminSecret,
	}
}

// =====================================================
// PUBLIC + ADMIN READ ENDPOINTS
// =====================================================

// ListPosts lists posts, newest first
// GET /api/v1/posts
// Anonymous callers see published posts only; the admin header unlocks drafts.
func (h *PostHandler) ListPosts(c *gin.Context) {
	authorized := middleware.IsAuthorized(c, h.adminSecret)

	items, err := h.postService.ListPosts(c.Request.Context(), authorized)
	if err != nil {
		respondPostError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, items)
}

// GetPost gets a single post by slug
// GET /api/v1/posts/:slug
func (h *PostHandler) GetPost(c *gin.Context) {
	authorized := middleware.IsAuthorized(c, h.adminSecret)
	slug := c.Param("slug")

	post, err := h.postService.GetPost(c.Request.Context(), slug, authorized)
	if err != nil {
		respondPostError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, post)
}

// =====================================================
// ADMIN WRITE ENDPOINTS
// =====================================================

// CreatePost creates a new post
// POST /api/v1/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), req)
	if err != nil {
		respondPostError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, post)
}

// UpdatePost partially updates a post by slug
// PUT /api/v1/posts/:slug
func (h *PostHandler) UpdatePost(c *gin.Context) {
	slug := c.Param("slug")

	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), slug, req)
	if err != nil {
		respondPostError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, post)
}

// DeletePost hard-deletes a post by slug
// DELETE /api/v1/posts/:slug
func (h *PostHandler) DeletePost(c *gin.Context) {
	slug := c.Param("slug")

	if err := h.postService.DeletePost(c.Request.Context(), slug); err != nil {
		respondPostError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"message": "Post deleted successfully",
	})
}

// UploadCover stores a cover image and returns its URLs
// POST /api/v1/uploads/cover (multipart field "file")
func (h *PostHandler) UploadCover(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "missing file field")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "cannot read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "cannot read uploaded file")
		return
	}

	result, err := h.postService.UploadCover(c.Request.Context(), data)
	if err != nil {
		respondPostError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, result)
}

// =====================================================
// HELPERS
// =====================================================

// respondSuccess sends success response
func respondSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondPostError maps a service error onto the envelope. Store
// failures log the real error and send a generic message; everything
// else carries its own safe message.
func respondPostError(c *gin.Context, err error) {
	statusCode, errCode := mapPostError(err)
	if statusCode == http.StatusInternalServerError {
		logger.Error("Post request failed", err)
		respondError(c, statusCode, errCode, "internal server error")
		return
	}
	respondError(c, statusCode, errCode, err.Error())
}

// respondError sends error response
func respondError(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// mapPostError maps post errors to HTTP status codes
func mapPostError(err error) (int, string) {
	var postErr *model.PostError
	if errors.As(err, &postErr) {
		switch postErr.Code {
		case model.ErrCodePostNotFound:
			return http.StatusNotFound, postErr.Code
		case model.ErrCodeSlugTaken:
			return http.StatusConflict, postErr.Code
		case model.ErrCodeValidation:
			return http.StatusBadRequest, "VALIDATION_ERROR"
		default:
			return http.StatusInternalServerError, "INTERNAL_ERROR"
		}
	}

	switch {
	case errors.Is(err, model.ErrPostNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, model.ErrSlugTaken):
		return http.StatusConflict, "CONFLICT"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}
