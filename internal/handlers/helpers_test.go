package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"kasambahay_backend/internal/models"
	"kasambahay_backend/internal/validator"
	"kasambahay_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testAuth stands in for AuthMiddleware and DBMiddleware: it injects the
// identity and a nil gorm handle (the fakes behind the services never
// touch it).
func testAuth(userID string, role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(contextkeys.DBContextKey), (*gorm.DB)(nil))
		if userID != "" {
			c.Set("userID", userID)
			c.Set("role", string(role))
		}
		c.Next()
	}
}

func newTestRouter(userID string, role models.UserRole) *gin.Engine {
	r := gin.New()
	r.Use(testAuth(userID, role))
	return r
}

func testBase(t *testing.T) *BaseHandler {
	t.Helper()
	return NewBaseHandler(validator.New())
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}
