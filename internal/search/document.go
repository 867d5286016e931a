package search

import (
	"fmt"
	"strings"
	"unicode"

	"kasambahay_backend/internal/models"
)

// WorkerDocument is the flattened, public-only projection of a worker
// profile that lives in the search index. Private contact fields never
// enter the index.
type WorkerDocument struct {
	ID              string   `json:"id"`
	UserID          string   `json:"user_id"`
	Slug            string   `json:"slug"`
	FirstName       string   `json:"first_name"`
	City            string   `json:"city"`
	Province        string   `json:"province"`
	Skills          []string `json:"skills"`
	Languages       []string `json:"languages"`
	ExperienceYears int      `json:"experience_years"`
	ExperienceBand  string   `json:"experience_band"`
	SalaryMin       *int     `json:"salary_min,omitempty"`
	SalaryMax       *int     `json:"salary_max,omitempty"`
	EmploymentType  string   `json:"employment_type"`
	Headline        string   `json:"headline"`
	ProfileScore    int      `json:"profile_score"`
	UpdatedAt       int64    `json:"updated_at"`
}

// NewWorkerDocument builds the index document for a visible profile.
func NewWorkerDocument(p *models.EmployeeProfile) WorkerDocument {
	return WorkerDocument{
		ID:              p.ID,
		UserID:          p.UserID,
		Slug:            GenerateSlug(p.FirstName, p.City, p.UserID),
		FirstName:       p.FirstName,
		City:            p.City,
		Province:        p.Province,
		Skills:          p.Skills,
		Languages:       p.Languages,
		ExperienceYears: p.ExperienceYears,
		ExperienceBand:  ExperienceBand(p.ExperienceYears),
		SalaryMin:       p.SalaryMin,
		SalaryMax:       p.SalaryMax,
		EmploymentType:  string(p.EmploymentType),
		Headline:        p.Headline,
		ProfileScore:    p.ProfileScore,
		UpdatedAt:       p.UpdatedAt.Unix(),
	}
}

// ExperienceBand buckets years of experience for faceting.
func ExperienceBand(years int) string {
	switch {
	case years <= 1:
		return "0-1"
	case years <= 3:
		return "2-3"
	case years <= 5:
		return "4-5"
	default:
		return "6+"
	}
}

// GenerateSlug produces the SEO path segment for a worker profile:
// slugified first name, slugified city, then the user ID. Slugified
// parts contain no separators, so the ID can always be recovered.
func GenerateSlug(firstName, city, userID string) string {
	return fmt.Sprintf("%s-%s-%s", slugify(firstName), slugify(city), userID)
}

// SlugParts are the components recovered from a profile slug. FirstName
// and City are the slugified display segments; UserID addresses the
// profile.
type SlugParts struct {
	FirstName string
	City      string
	UserID    string
}

// ParseSlug splits a profile slug back into its components. The user ID
// may itself contain dashes, so only the first two separators count.
func ParseSlug(slug string) (SlugParts, bool) {
	parts := strings.SplitN(slug, "-", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return SlugParts{}, false
	}
	return SlugParts{FirstName: parts[0], City: parts[1], UserID: parts[2]}, true
}

// slugify lowercases, folds common accented latin characters to ASCII
// and drops everything outside [a-z0-9]. The result is a single token:
// no separators survive because the slug format relies on that.
func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		r = foldRune(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "x"
	}
	return b.String()
}

func foldRune(r rune) rune {
	switch {
	case r >= 'à' && r <= 'å':
		return 'a'
	case r == 'ç':
		return 'c'
	case r >= 'è' && r <= 'ë':
		return 'e'
	case r >= 'ì' && r <= 'ï':
		return 'i'
	case r == 'ñ':
		return 'n'
	case r >= 'ò' && r <= 'ö':
		return 'o'
	case r >= 'ù' && r <= 'ü':
		return 'u'
	case r == 'ý' || r == 'ÿ':
		return 'y'
	case r > unicode.MaxASCII:
		return -1
	}
	return r
}
