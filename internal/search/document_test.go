package search

import (
	"testing"
	"time"

	"kasambahay_backend/internal/models"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	t.Parallel()

	userID := "3f2f8c1e-9a51-4f6e-b2f0-8f0f4d2a7c11"

	tests := []struct {
		name      string
		firstName string
		city      string
		want      string
	}{
		{"plain ascii", "Maria", "Quezon City", "maria-quezoncity-" + userID},
		{"accented name", "Niña", "Parañaque", "nina-paranaque-" + userID},
		{"punctuation stripped", "Ma. Rosario", "Cebu City!", "marosario-cebucity-" + userID},
		{"empty parts fall back", "", "", "x-x-" + userID},
		{"non latin dropped", "Мария", "Давао", "x-x-" + userID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.firstName, tt.city, userID))
		})
	}
}

func TestGenerateSlug_Deterministic(t *testing.T) {
	t.Parallel()

	first := GenerateSlug("Liza", "Makati", "user-1")
	second := GenerateSlug("Liza", "Makati", "user-1")
	assert.Equal(t, first, second)
}

func TestParseSlug_RoundTrip(t *testing.T) {
	t.Parallel()

	userID := "3f2f8c1e-9a51-4f6e-b2f0-8f0f4d2a7c11"
	slug := GenerateSlug("José", "Las Piñas", userID)

	got, ok := ParseSlug(slug)
	assert.True(t, ok)
	assert.Equal(t, SlugParts{
		FirstName: "jose",
		City:      "laspinas",
		UserID:    userID,
	}, got, "every component must survive even though the user ID contains dashes")
}

func TestParseSlug_Malformed(t *testing.T) {
	t.Parallel()

	for _, slug := range []string{"", "maria", "maria-makati", "maria-makati-", "-makati-user-1"} {
		_, ok := ParseSlug(slug)
		assert.False(t, ok, "slug %q should not parse", slug)
	}
}

func TestExperienceBand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		years int
		want  string
	}{
		{0, "0-1"},
		{1, "0-1"},
		{2, "2-3"},
		{3, "2-3"},
		{4, "4-5"},
		{5, "4-5"},
		{6, "6+"},
		{25, "6+"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExperienceBand(tt.years), "years=%d", tt.years)
	}
}

func TestNewWorkerDocument_ExcludesPrivateFields(t *testing.T) {
	t.Parallel()

	min, max := 8000, 12000
	updated := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	profile := &models.EmployeeProfile{
		BaseModel:       models.BaseModel{ID: "profile-1", UpdatedAt: updated},
		UserID:          "user-1",
		FirstName:       "Maria",
		LastName:        "Santos",
		Phone:           "09171234567",
		City:            "Makati",
		Province:        "Metro Manila",
		Skills:          pq.StringArray{"cooking", "childcare"},
		Languages:       pq.StringArray{"tagalog", "english"},
		ExperienceYears: 4,
		SalaryMin:       &min,
		SalaryMax:       &max,
		EmploymentType:  models.EmploymentTypeLiveIn,
		Headline:        "Experienced nanny",
		ProfileScore:    70,
	}

	doc := NewWorkerDocument(profile)

	assert.Equal(t, "profile-1", doc.ID)
	assert.Equal(t, "maria-makati-user-1", doc.Slug)
	assert.Equal(t, "4-5", doc.ExperienceBand)
	assert.Equal(t, updated.Unix(), doc.UpdatedAt)
	assert.Equal(t, &min, doc.SalaryMin)

	// The document type has no field for phone, exact address or last
	// name; this assertion documents that the projection stays public.
	assert.NotContains(t, []string{doc.FirstName, doc.Headline, doc.City}, profile.Phone)
}
