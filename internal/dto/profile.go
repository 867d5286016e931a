package dto

// CreateEmployeeProfileRequest carries everything a worker submits when
// publishing a profile. Salary bounds validate as a pair in the service
// layer: tag-level gtefield misreports when salary_min is absent.
type CreateEmployeeProfileRequest struct {
	FirstName       string   `json:"first_name" validate:"required,min=2,max=100"`
	LastName        string   `json:"last_name" validate:"omitempty,max=100"`
	City            string   `json:"city" validate:"required,max=100"`
	Province        string   `json:"province" validate:"required,max=100"`
	Skills          []string `json:"skills" validate:"omitempty,max=20,dive,min=2,max=50"`
	Languages       []string `json:"languages" validate:"omitempty,max=10,dive,min=2,max=30"`
	ExperienceYears int      `json:"experience_years" validate:"min=0,max=60"`
	SalaryMin       *int     `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax       *int     `json:"salary_max" validate:"omitempty,min=0"`
	EmploymentType  string   `json:"employment_type" validate:"omitempty,oneof=live_in live_out either"`
	Headline        string   `json:"headline" validate:"omitempty,max=200"`
	Visibility      *bool    `json:"visibility"`
	Address         string   `json:"address" validate:"omitempty,max=300"`
	Phone           string   `json:"phone" validate:"omitempty,ph_mobile"`
	Email           string   `json:"email" validate:"omitempty,email"`

	References []AddReferenceRequest `json:"references" validate:"omitempty,max=10,dive"`
}

// UpdateEmployeeProfileRequest uses pointers so absent fields stay untouched.
type UpdateEmployeeProfileRequest struct {
	FirstName       *string   `json:"first_name" validate:"omitempty,min=2,max=100"`
	LastName        *string   `json:"last_name" validate:"omitempty,max=100"`
	City            *string   `json:"city" validate:"omitempty,max=100"`
	Province        *string   `json:"province" validate:"omitempty,max=100"`
	Skills          *[]string `json:"skills" validate:"omitempty,max=20,dive,min=2,max=50"`
	Languages       *[]string `json:"languages" validate:"omitempty,max=10,dive,min=2,max=30"`
	ExperienceYears *int      `json:"experience_years" validate:"omitempty,min=0,max=60"`
	SalaryMin       *int      `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax       *int      `json:"salary_max" validate:"omitempty,min=0"`
	EmploymentType  *string   `json:"employment_type" validate:"omitempty,oneof=live_in live_out either"`
	Headline        *string   `json:"headline" validate:"omitempty,max=200"`
	Visibility      *bool     `json:"visibility"`
	Address         *string   `json:"address" validate:"omitempty,max=300"`
	Phone           *string   `json:"phone" validate:"omitempty,ph_mobile"`
	Email           *string   `json:"email" validate:"omitempty,email"`
}

type AddReferenceRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Relation string `json:"relation" validate:"omitempty,max=100"`
	Phone    string `json:"phone" validate:"omitempty,ph_mobile"`
}

type AttachDocumentRequest struct {
	Kind        string `json:"kind" validate:"required,oneof=nbi_clearance barangay_clearance certificate id"`
	StorageKey  string `json:"storage_key" validate:"required"`
	FileName    string `json:"file_name" validate:"required,max=255"`
	ContentType string `json:"content_type" validate:"required"`
	SizeBytes   int64  `json:"size_bytes" validate:"required,min=1"`
}
