package handlers

import (
	"context"
	"net/http"
	"testing"

	"kasambahay_backend/internal/dto"
	"kasambahay_backend/internal/models"
	"kasambahay_backend/internal/services"
	"kasambahay_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeProfileService embeds the interface and overrides only what a test
// route needs; unimplemented calls panic loudly.
type fakeProfileService struct {
	services.EmployeeProfileService
	created *dto.CreateEmployeeProfileRequest
	getByID func(id string, viewer services.Viewer) (*models.EmployeeProfile, error)
}

func (f *fakeProfileService) Create(_ context.Context, _ *gorm.DB, userID string, req *dto.CreateEmployeeProfileRequest) (*models.EmployeeProfile, error) {
	f.created = req
	return &models.EmployeeProfile{
		BaseModel:    models.BaseModel{ID: "profile-1"},
		UserID:       userID,
		FirstName:    req.FirstName,
		City:         req.City,
		Province:     req.Province,
		Visibility:   true,
		ProfileScore: 40,
	}, nil
}

func (f *fakeProfileService) GetByID(_ context.Context, _ *gorm.DB, id string, viewer services.Viewer) (*models.EmployeeProfile, error) {
	return f.getByID(id, viewer)
}

func TestCreateProfile_Created(t *testing.T) {
	t.Parallel()

	svc := &fakeProfileService{}
	h := NewEmployeeProfileHandler(testBase(t), svc)

	r := newTestRouter("worker-1", models.UserRoleWorker)
	r.POST("/employee-profiles", h.CreateProfile)

	w := performJSON(t, r, http.MethodPost, "/employee-profiles", map[string]interface{}{
		"first_name": "Maria",
		"city":       "Makati",
		"province":   "Metro Manila",
		"skills":     []string{"cooking", "childcare"},
		"phone":      "09171234567",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var profile models.EmployeeProfile
	decodeBody(t, w, &profile)
	assert.Equal(t, "worker-1", profile.UserID)
	assert.True(t, profile.Visibility)
	assert.Equal(t, 40, profile.ProfileScore)

	require.NotNil(t, svc.created)
	assert.Equal(t, []string{"cooking", "childcare"}, svc.created.Skills)
}

func TestCreateProfile_ValidationDetails(t *testing.T) {
	t.Parallel()

	svc := &fakeProfileService{}
	h := NewEmployeeProfileHandler(testBase(t), svc)

	r := newTestRouter("worker-1", models.UserRoleWorker)
	r.POST("/employee-profiles", h.CreateProfile)

	w := performJSON(t, r, http.MethodPost, "/employee-profiles", map[string]interface{}{
		"first_name": "M",
		"phone":      "12345",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.created)

	var resp struct {
		Error struct {
			Code    apperrors.ErrorCode `json:"code"`
			Details map[string]string   `json:"details"`
		} `json:"error"`
	}
	decodeBody(t, w, &resp)

	assert.Equal(t, apperrors.CodeValidationFailed, resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "first_name")
	assert.Contains(t, resp.Error.Details, "city")
	assert.Contains(t, resp.Error.Details, "phone")
}

func TestGetProfile_ViewerPassedThrough(t *testing.T) {
	t.Parallel()

	var gotViewer services.Viewer
	svc := &fakeProfileService{
		getByID: func(id string, viewer services.Viewer) (*models.EmployeeProfile, error) {
			gotViewer = viewer
			return &models.EmployeeProfile{BaseModel: models.BaseModel{ID: id}}, nil
		},
	}
	h := NewEmployeeProfileHandler(testBase(t), svc)

	r := newTestRouter("user-1", models.UserRoleEmployer)
	r.GET("/employee-profiles/:id", h.GetProfile)

	w := performJSON(t, r, http.MethodGet, "/employee-profiles/profile-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "user-1", gotViewer.UserID)
	assert.Equal(t, models.UserRoleEmployer, gotViewer.Role)
}

func TestGetProfile_Hidden(t *testing.T) {
	t.Parallel()

	svc := &fakeProfileService{
		getByID: func(string, services.Viewer) (*models.EmployeeProfile, error) {
			return nil, apperrors.ErrProfileHidden
		},
	}
	h := NewEmployeeProfileHandler(testBase(t), svc)

	r := newTestRouter("", "")
	r.GET("/employee-profiles/:id", h.GetProfile)

	w := performJSON(t, r, http.MethodGet, "/employee-profiles/profile-1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
