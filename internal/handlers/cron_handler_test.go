package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"kasambahay_backend/internal/config"
	"kasambahay_backend/internal/services"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSyncService struct {
	services.SearchSyncService
	reindexed int
}

func (f *fakeSyncService) ReindexAll(context.Context, *gorm.DB) (int, error) {
	f.reindexed++
	return 42, nil
}

// Not parallel: requireCronSecret reads the process-wide config.
func TestCronSecret(t *testing.T) {
	prev := config.AppConfig
	defer func() { config.AppConfig = prev }()

	cfg := &config.Config{}
	cfg.Cron.Secret = "s3cret"
	config.AppConfig = cfg

	sync := &fakeSyncService{}
	h := NewCronHandler(testBase(t), sync, nil, nil)

	r := newTestRouter("", "")
	r.POST("/cron/reindex", h.requireCronSecret, h.Reindex)

	send := func(auth string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/cron/reindex", nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusUnauthorized, send("").Code)
	assert.Equal(t, http.StatusUnauthorized, send("Bearer wrong").Code)
	assert.Equal(t, 0, sync.reindexed)

	w := send("Bearer s3cret")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"indexed":42`)
	assert.Equal(t, 1, sync.reindexed)

	// An empty configured secret locks the endpoints entirely.
	cfg.Cron.Secret = ""
	assert.Equal(t, http.StatusUnauthorized, send("Bearer ").Code)
}
