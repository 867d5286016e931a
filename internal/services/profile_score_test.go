package services

import (
	"testing"

	"kasambahay_backend/internal/models"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestComputeProfileScore_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ComputeProfileScore(&models.EmployeeProfile{}))
}

func TestComputeProfileScore_PartialProfile(t *testing.T) {
	t.Parallel()

	min, max := 8000, 12000
	p := &models.EmployeeProfile{
		FirstName: "Maria",
		City:      "Makati",
		Province:  "Metro Manila",
		Skills:    pq.StringArray{"cooking"},
		SalaryMin: &min,
		SalaryMax: &max,
		Phone:     "09171234567",
	}

	// basics 25 + one skill 5 + salary pair 10 + contact 15
	assert.Equal(t, 55, ComputeProfileScore(p))
}

func TestComputeProfileScore_BasicsRequireAllThreeFields(t *testing.T) {
	t.Parallel()

	p := &models.EmployeeProfile{FirstName: "Maria", City: "Makati"}
	assert.Equal(t, 0, ComputeProfileScore(p), "province missing, no basics points")
}

func TestComputeProfileScore_SalaryNeedsBothBounds(t *testing.T) {
	t.Parallel()

	min := 8000
	p := &models.EmployeeProfile{SalaryMin: &min}
	assert.Equal(t, 0, ComputeProfileScore(p))
}

func TestComputeProfileScore_Caps(t *testing.T) {
	t.Parallel()

	p := &models.EmployeeProfile{
		Skills: pq.StringArray{"a", "b", "c", "d", "e", "f", "g"},
		Documents: []models.Document{
			{Status: models.DocumentStatusVerified},
			{Status: models.DocumentStatusVerified},
			{Status: models.DocumentStatusVerified},
			{Status: models.DocumentStatusPending},
		},
		References: []models.Reference{
			{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"},
		},
	}

	// skills capped at 15, verified docs capped at 20 (pending ones do
	// not count), references capped at 15.
	assert.Equal(t, 15+20+15, ComputeProfileScore(p))
}

func TestComputeProfileScore_FullProfileIsExactlyHundred(t *testing.T) {
	t.Parallel()

	min, max := 8000, 12000
	p := &models.EmployeeProfile{
		FirstName: "Maria",
		City:      "Makati",
		Province:  "Metro Manila",
		Email:     "maria@example.com",
		Skills:    pq.StringArray{"cooking", "childcare", "laundry", "cleaning"},
		SalaryMin: &min,
		SalaryMax: &max,
		Documents: []models.Document{
			{Status: models.DocumentStatusVerified},
			{Status: models.DocumentStatusVerified},
		},
		References: []models.Reference{
			{Name: "A"}, {Name: "B"}, {Name: "C"},
		},
	}

	assert.Equal(t, 100, ComputeProfileScore(p))
}
