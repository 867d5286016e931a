package validator

import (
	"testing"

	"kasambahay_backend/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfileRequest() *dto.CreateEmployeeProfileRequest {
	return &dto.CreateEmployeeProfileRequest{
		FirstName: "Maria",
		City:      "Makati",
		Province:  "Metro Manila",
	}
}

func TestValidate_PHMobile(t *testing.T) {
	t.Parallel()

	v := New()

	valid := []string{"09171234567", "+639171234567"}
	for _, phone := range valid {
		req := validProfileRequest()
		req.Phone = phone
		assert.NoError(t, v.Validate(req), "phone %q should pass", phone)
	}

	invalid := []string{"9171234567", "0917123456", "091712345678", "+449171234567", "hello"}
	for _, phone := range invalid {
		req := validProfileRequest()
		req.Phone = phone

		err := v.Validate(req)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "phone %q should fail", phone)
		assert.Equal(t, "Must be a valid Philippine mobile number", vErr.Errors["phone"])
	}
}

func TestValidate_SalaryBounds(t *testing.T) {
	t.Parallel()

	v := New()

	negative := -1
	req := validProfileRequest()
	req.SalaryMin = &negative

	err := v.Validate(req)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "salary_min")

	only := 12000
	req = validProfileRequest()
	req.SalaryMax = &only
	assert.NoError(t, v.Validate(req), "salary_max alone does not require salary_min")
}

func TestValidate_ErrorsKeyedByJSONName(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Validate(&dto.CreateEmployeeProfileRequest{FirstName: "M"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	assert.Contains(t, vErr.Errors, "first_name")
	assert.Contains(t, vErr.Errors, "city")
	assert.Contains(t, vErr.Errors, "province")
}

func TestValidate_EmploymentTypeOneOf(t *testing.T) {
	t.Parallel()

	v := New()

	req := validProfileRequest()
	req.EmploymentType = "freelance"

	err := v.Validate(req)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Must be one of: live_in, live_out, either", vErr.Errors["employment_type"])
}
