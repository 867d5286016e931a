package dto

// SearchWorkersQuery binds from query parameters on the public search
// endpoint. Empty fields mean "no filter".
type SearchWorkersQuery struct {
	Q              string   `form:"q"`
	City           string   `form:"city"`
	Province       string   `form:"province"`
	Skills         []string `form:"skills"`
	Languages      []string `form:"languages"`
	EmploymentType string   `form:"employment_type" validate:"omitempty,oneof=live_in live_out either"`
	ExperienceBand string   `form:"experience_band" validate:"omitempty,oneof=0-1 2-3 4-5 6+"`
	SalaryMin      int      `form:"salary_min" validate:"omitempty,min=0"`
	SalaryMax      int      `form:"salary_max" validate:"omitempty,min=0"`
	Sort           string   `form:"sort" validate:"omitempty,oneof=relevance score_desc newest"`
	Page           int      `form:"page" validate:"omitempty,min=1"`
	PerPage        int      `form:"per_page" validate:"omitempty,min=1,max=100"`
}

type SuggestQuery struct {
	Q     string `form:"q" validate:"required,min=1,max=100"`
	Limit int    `form:"limit" validate:"omitempty,min=1,max=20"`
}
