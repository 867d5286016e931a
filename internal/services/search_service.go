package services

import (
	"context"
	"time"

	"kasambahay_backend/internal/cache"
	"kasambahay_backend/internal/dto"
	"kasambahay_backend/internal/logger"
	"kasambahay_backend/internal/search"
	"kasambahay_backend/pkg/apperrors"
)

const (
	facetCacheTTL   = 10 * time.Minute
	suggestCacheTTL = 2 * time.Minute
)

// SearchService is the read side of the worker index: full searches hit
// the engine directly, facet distributions and suggestions go through
// the cache.
type SearchService interface {
	SearchWorkers(ctx context.Context, query *dto.SearchWorkersQuery) (*search.SearchResult, error)
	Facets(ctx context.Context) (map[string]map[string]int, error)
	Suggest(ctx context.Context, q string, limit int) ([]search.Suggestion, error)
	// WarmCache repopulates the facet cache, for the cron endpoint.
	WarmCache(ctx context.Context) error
}

type searchService struct {
	index search.Index
	cache cache.Cache
}

func NewSearchService(index search.Index, c cache.Cache) SearchService {
	return &searchService{index: index, cache: c}
}

func (s *searchService) SearchWorkers(ctx context.Context, query *dto.SearchWorkersQuery) (*search.SearchResult, error) {
	result, err := s.index.Search(ctx, search.SearchParams{
		Query:          query.Q,
		City:           query.City,
		Province:       query.Province,
		Skills:         query.Skills,
		Languages:      query.Languages,
		EmploymentType: query.EmploymentType,
		ExperienceBand: query.ExperienceBand,
		SalaryMin:      query.SalaryMin,
		SalaryMax:      query.SalaryMax,
		Sort:           query.Sort,
		Page:           query.Page,
		PerPage:        query.PerPage,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return result, nil
}

func (s *searchService) Facets(ctx context.Context) (map[string]map[string]int, error) {
	var cached map[string]map[string]int
	if s.cache != nil {
		if err := s.cache.GetJSON(ctx, cache.FacetsKey(), &cached); err == nil {
			return cached, nil
		} else if err != cache.ErrMiss {
			logger.CtxWarn(ctx, "facet cache read failed", "error", err.Error())
		}
	}

	facets, err := s.index.Facets(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cache.FacetsKey(), facets, facetCacheTTL); err != nil {
			logger.CtxWarn(ctx, "facet cache write failed", "error", err.Error())
		}
	}
	return facets, nil
}

func (s *searchService) Suggest(ctx context.Context, q string, limit int) ([]search.Suggestion, error) {
	key := cache.SuggestKey(q, limit)

	var cached []search.Suggestion
	if s.cache != nil {
		if err := s.cache.GetJSON(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}

	suggestions, err := s.index.Suggest(ctx, q, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, suggestions, suggestCacheTTL); err != nil {
			logger.CtxWarn(ctx, "suggestion cache write failed", "error", err.Error())
		}
	}
	return suggestions, nil
}

func (s *searchService) WarmCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	facets, err := s.index.Facets(ctx)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.cache.SetJSON(ctx, cache.FacetsKey(), facets, facetCacheTTL); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
