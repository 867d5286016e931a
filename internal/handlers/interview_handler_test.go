package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"kasambahay_backend/internal/dto"
	"kasambahay_backend/internal/models"
	"kasambahay_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeInterviewService struct {
	scheduleErr error
	cancelErr   error
	scheduled   *dto.ScheduleInterviewRequest
}

func (f *fakeInterviewService) Schedule(_ context.Context, _ *gorm.DB, userID string, _ models.UserRole, req *dto.ScheduleInterviewRequest) (*models.Interview, error) {
	if f.scheduleErr != nil {
		return nil, f.scheduleErr
	}
	f.scheduled = req
	return &models.Interview{
		BaseModel:  models.BaseModel{ID: "interview-1"},
		EmployerID: userID,
		WorkerID:   req.WorkerID,
		StartsAt:   req.StartsAt,
		Status:     models.InterviewStatusScheduled,
		Notes:      req.Notes,
	}, nil
}

func (f *fakeInterviewService) Update(_ context.Context, _ *gorm.DB, _ string, _ models.UserRole, _ string, _ *dto.UpdateInterviewRequest) (*models.Interview, error) {
	return nil, nil
}

func (f *fakeInterviewService) Cancel(context.Context, *gorm.DB, string, string) error {
	return f.cancelErr
}

func (f *fakeInterviewService) List(context.Context, *gorm.DB, string, models.UserRole) ([]models.Interview, error) {
	return []models.Interview{}, nil
}

func TestInterviewSchedule_Created(t *testing.T) {
	t.Parallel()

	svc := &fakeInterviewService{}
	h := NewInterviewHandler(testBase(t), svc)

	r := newTestRouter("user-1", models.UserRoleEmployer)
	r.POST("/interviews", h.Schedule)

	startsAt := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	w := performJSON(t, r, http.MethodPost, "/interviews", map[string]interface{}{
		"worker_id": "3f2f8c1e-9a51-4f6e-b2f0-8f0f4d2a7c11",
		"starts_at": startsAt.Format(time.RFC3339),
		"notes":     "Video call",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var iv models.Interview
	decodeBody(t, w, &iv)
	assert.Equal(t, "user-1", iv.EmployerID)
	assert.Equal(t, models.InterviewStatusScheduled, iv.Status)
	assert.True(t, iv.StartsAt.Equal(startsAt))
}

func TestInterviewSchedule_ServiceValidationError(t *testing.T) {
	t.Parallel()

	svc := &fakeInterviewService{
		scheduleErr: apperrors.ValidationError(map[string]string{
			"starts_at": "Must be in the future",
		}),
	}
	h := NewInterviewHandler(testBase(t), svc)

	r := newTestRouter("user-1", models.UserRoleEmployer)
	r.POST("/interviews", h.Schedule)

	w := performJSON(t, r, http.MethodPost, "/interviews", map[string]interface{}{
		"worker_id": "3f2f8c1e-9a51-4f6e-b2f0-8f0f4d2a7c11",
		"starts_at": time.Now().Add(-time.Hour).Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp apperrors.ErrorResponse
	decodeBody(t, w, &resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, apperrors.CodeValidationFailed, resp.Error.Code)
}

func TestInterviewSchedule_BadBody(t *testing.T) {
	t.Parallel()

	svc := &fakeInterviewService{}
	h := NewInterviewHandler(testBase(t), svc)

	r := newTestRouter("user-1", models.UserRoleEmployer)
	r.POST("/interviews", h.Schedule)

	// worker_id must be a uuid and starts_at is required.
	w := performJSON(t, r, http.MethodPost, "/interviews", map[string]interface{}{
		"worker_id": "not-a-uuid",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.scheduled, "invalid requests never reach the service")
}

func TestInterviewSchedule_Unauthenticated(t *testing.T) {
	t.Parallel()

	h := NewInterviewHandler(testBase(t), &fakeInterviewService{})

	r := newTestRouter("", "")
	r.POST("/interviews", h.Schedule)

	w := performJSON(t, r, http.MethodPost, "/interviews", map[string]interface{}{
		"worker_id": "3f2f8c1e-9a51-4f6e-b2f0-8f0f4d2a7c11",
		"starts_at": time.Now().Add(time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInterviewCancel_NoContent(t *testing.T) {
	t.Parallel()

	h := NewInterviewHandler(testBase(t), &fakeInterviewService{})

	r := newTestRouter("worker-1", models.UserRoleWorker)
	r.DELETE("/interviews/:id", h.Cancel)

	w := performJSON(t, r, http.MethodDelete, "/interviews/interview-1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
