package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/meilisearch/meilisearch-go"
)

// SearchParams captures the filters a caller can apply to the worker
// index. Zero values mean "no filter".
type SearchParams struct {
	Query          string
	City           string
	Province       string
	Skills         []string
	Languages      []string
	EmploymentType string
	ExperienceBand string
	SalaryMin      int
	SalaryMax      int
	Sort           string
	Page           int
	PerPage        int
}

// SearchResult is a page of matching documents plus facet counts for
// the current filter set.
type SearchResult struct {
	Hits      []WorkerDocument          `json:"hits"`
	Total     int64                     `json:"total"`
	Page      int                       `json:"page"`
	PerPage   int                       `json:"per_page"`
	Facets    map[string]map[string]int `json:"facets,omitempty"`
	Processed int64                     `json:"-"`
}

// Suggestion is a typeahead hit: just enough to render a dropdown row.
type Suggestion struct {
	Slug      string `json:"slug"`
	FirstName string `json:"first_name"`
	City      string `json:"city"`
	Headline  string `json:"headline"`
}

// Index abstracts the hosted search engine so services and tests do not
// depend on a live Meilisearch instance.
type Index interface {
	EnsureSettings(ctx context.Context) error
	Upsert(ctx context.Context, docs []WorkerDocument) error
	Delete(ctx context.Context, ids []string) error
	Clear(ctx context.Context) error
	Search(ctx context.Context, params SearchParams) (*SearchResult, error)
	Facets(ctx context.Context) (map[string]map[string]int, error)
	Suggest(ctx context.Context, query string, limit int) ([]Suggestion, error)
}

// MeiliIndex implements Index against a Meilisearch server.
type MeiliIndex struct {
	index *meilisearch.Index
}

func NewMeiliIndex(host, apiKey, indexName string) *MeiliIndex {
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   host,
		APIKey: apiKey,
	})
	return &MeiliIndex{index: client.Index(indexName)}
}

var facetAttributes = []string{"city", "province", "skills", "languages", "employment_type", "experience_band"}

// EnsureSettings pushes the filterable/sortable attribute configuration.
// Meilisearch applies settings asynchronously; calling this at boot is
// enough because settings updates are idempotent.
func (m *MeiliIndex) EnsureSettings(ctx context.Context) error {
	settings := meilisearch.Settings{
		SearchableAttributes: []string{"first_name", "headline", "skills", "city", "province"},
		FilterableAttributes: append(append([]string{}, facetAttributes...), "salary_min", "salary_max"),
		SortableAttributes:   []string{"profile_score", "updated_at"},
	}
	if _, err := m.index.UpdateSettings(&settings); err != nil {
		return fmt.Errorf("failed to update index settings: %w", err)
	}
	return nil
}

func (m *MeiliIndex) Upsert(ctx context.Context, docs []WorkerDocument) error {
	if len(docs) == 0 {
		return nil
	}
	if _, err := m.index.AddDocuments(docs, "id"); err != nil {
		return fmt.Errorf("failed to upsert documents: %w", err)
	}
	return nil
}

func (m *MeiliIndex) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := m.index.DeleteDocuments(ids); err != nil {
		return fmt.Errorf("failed to delete documents: %w", err)
	}
	return nil
}

func (m *MeiliIndex) Clear(ctx context.Context) error {
	if _, err := m.index.DeleteAllDocuments(); err != nil {
		return fmt.Errorf("failed to clear index: %w", err)
	}
	return nil
}

func (m *MeiliIndex) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	perPage := params.PerPage
	if perPage < 1 {
		perPage = 20
	}

	req := &meilisearch.SearchRequest{
		Offset: int64((page - 1) * perPage),
		Limit:  int64(perPage),
		Facets: facetAttributes,
	}
	if filter := buildFilter(params); filter != "" {
		req.Filter = filter
	}
	switch params.Sort {
	case "score_desc":
		req.Sort = []string{"profile_score:desc"}
	case "newest":
		req.Sort = []string{"updated_at:desc"}
	}

	resp, err := m.index.Search(params.Query, req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	hits, err := decodeHits(resp.Hits)
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Hits:    hits,
		Total:   resp.EstimatedTotalHits,
		Page:    page,
		PerPage: perPage,
		Facets:  decodeFacets(resp.FacetDistribution),
	}, nil
}

// Facets runs an empty query purely for the facet distribution, used to
// render the unfiltered search landing page.
func (m *MeiliIndex) Facets(ctx context.Context) (map[string]map[string]int, error) {
	resp, err := m.index.Search("", &meilisearch.SearchRequest{
		Limit:  0,
		Facets: facetAttributes,
	})
	if err != nil {
		return nil, fmt.Errorf("facets request failed: %w", err)
	}
	return decodeFacets(resp.FacetDistribution), nil
}

func (m *MeiliIndex) Suggest(ctx context.Context, query string, limit int) ([]Suggestion, error) {
	if limit < 1 {
		limit = 8
	}
	resp, err := m.index.Search(query, &meilisearch.SearchRequest{
		Limit:                int64(limit),
		AttributesToRetrieve: []string{"slug", "first_name", "city", "headline"},
	})
	if err != nil {
		return nil, fmt.Errorf("suggest request failed: %w", err)
	}

	raw, err := json.Marshal(resp.Hits)
	if err != nil {
		return nil, fmt.Errorf("failed to encode suggestions: %w", err)
	}
	var out []Suggestion
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}
	return out, nil
}

// buildFilter renders SearchParams into Meilisearch filter syntax.
// String values are quoted; skills and languages are AND-combined so
// every requested skill must be present.
func buildFilter(params SearchParams) string {
	var clauses []string

	eq := func(attr, val string) string {
		return fmt.Sprintf("%s = %q", attr, val)
	}

	if params.City != "" {
		clauses = append(clauses, eq("city", params.City))
	}
	if params.Province != "" {
		clauses = append(clauses, eq("province", params.Province))
	}
	if params.EmploymentType != "" {
		clauses = append(clauses, eq("employment_type", params.EmploymentType))
	}
	if params.ExperienceBand != "" {
		clauses = append(clauses, eq("experience_band", params.ExperienceBand))
	}
	for _, s := range params.Skills {
		clauses = append(clauses, eq("skills", s))
	}
	for _, l := range params.Languages {
		clauses = append(clauses, eq("languages", l))
	}
	// Salary overlap: a worker matches when their asking range intersects
	// the employer's budget.
	if params.SalaryMax > 0 {
		clauses = append(clauses, fmt.Sprintf("salary_min <= %d", params.SalaryMax))
	}
	if params.SalaryMin > 0 {
		clauses = append(clauses, fmt.Sprintf("salary_max >= %d", params.SalaryMin))
	}

	return strings.Join(clauses, " AND ")
}

func decodeHits(hits []interface{}) ([]WorkerDocument, error) {
	raw, err := json.Marshal(hits)
	if err != nil {
		return nil, fmt.Errorf("failed to encode hits: %w", err)
	}
	var out []WorkerDocument
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode hits: %w", err)
	}
	return out, nil
}

func decodeFacets(dist interface{}) map[string]map[string]int {
	if dist == nil {
		return nil
	}
	raw, err := json.Marshal(dist)
	if err != nil {
		return nil
	}
	var out map[string]map[string]int
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
