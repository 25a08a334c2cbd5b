package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupAdminRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/protected", AdminAuth(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func TestAdminAuth_CorrectSecret(t *testing.T) {
	router := setupAdminRouter("s3cret")

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set(AdminSecretHeader, "s3cret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAuth_WrongSecret(t *testing.T) {
	router := setupAdminRouter("s3cret")

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set(AdminSecretHeader, "wrong")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestAdminAuth_MissingHeader(t *testing.T) {
	router := setupAdminRouter("s3cret")

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Empty configured secret = admin bị tắt, kể cả header rỗng cũng không vào được.
func TestAdminAuth_EmptyConfiguredSecretDeniesEverything(t *testing.T) {
	router := setupAdminRouter("")

	for _, header := range []string{"", "anything"} {
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		if header != "" {
			req.Header.Set(AdminSecretHeader, header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestIsAuthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		secret   string
		header   string
		expected bool
	}{
		{"correct secret", "s3cret", "s3cret", true},
		{"wrong secret", "s3cret", "nope", false},
		{"no header", "s3cret", "", false},
		{"disabled admin", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				c.Request.Header.Set(AdminSecretHeader, tc.header)
			}

			assert.Equal(t, tc.expected, IsAuthorized(c, tc.secret))
		})
	}
}
