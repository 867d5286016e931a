package services

import (
	"context"
	"fmt"

	"kasambahay_backend/internal/cache"
	"kasambahay_backend/internal/logger"
	"kasambahay_backend/internal/models"
	"kasambahay_backend/internal/repositories"
	"kasambahay_backend/internal/search"

	"gorm.io/gorm"
)

// SearchSyncService keeps the hosted worker index consistent with the
// database. One path handles both directions: a synced profile is either
// upserted (visible) or deleted from the index (hidden or gone), so
// repeated syncs of the same ID always converge.
type SearchSyncService interface {
	SyncProfiles(ctx context.Context, db *gorm.DB, userIDs []string) error
	SyncOne(ctx context.Context, db *gorm.DB, userID string) error
	// RemoveProfile drops one document from the index by profile ID.
	// The sync paths need a profile row to resolve the document key;
	// deletion callers no longer have one, so they pass it directly.
	RemoveProfile(ctx context.Context, profileID string) error
	// ReindexAll clears the index and repopulates it from all visible
	// profiles. Searches running mid-rebuild see partial results.
	ReindexAll(ctx context.Context, db *gorm.DB) (int, error)
}

type searchSyncService struct {
	profileRepo repositories.EmployeeProfileRepository
	index       search.Index
	cache       cache.Cache
}

func NewSearchSyncService(
	profileRepo repositories.EmployeeProfileRepository,
	index search.Index,
	c cache.Cache,
) SearchSyncService {
	return &searchSyncService{
		profileRepo: profileRepo,
		index:       index,
		cache:       c,
	}
}

func (s *searchSyncService) SyncOne(ctx context.Context, db *gorm.DB, userID string) error {
	return s.SyncProfiles(ctx, db, []string{userID})
}

func (s *searchSyncService) SyncProfiles(ctx context.Context, db *gorm.DB, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}

	profiles, err := s.profileRepo.FindByUserIDs(db, userIDs)
	if err != nil {
		return fmt.Errorf("failed to load profiles for sync: %w", err)
	}

	byUserID := make(map[string]*models.EmployeeProfile, len(profiles))
	for i := range profiles {
		byUserID[profiles[i].UserID] = &profiles[i]
	}

	var upserts []search.WorkerDocument
	var deletes []string
	for _, userID := range userIDs {
		p, ok := byUserID[userID]
		if ok && p.Visibility {
			upserts = append(upserts, search.NewWorkerDocument(p))
		} else if ok {
			deletes = append(deletes, p.ID)
		}
		// Absent profiles carry no document key here; deletion callers
		// use RemoveProfile with the profile ID they captured.
	}

	if err := s.index.Upsert(ctx, upserts); err != nil {
		return err
	}
	if err := s.index.Delete(ctx, deletes); err != nil {
		return err
	}

	s.invalidateFacetCache(ctx)
	return nil
}

func (s *searchSyncService) RemoveProfile(ctx context.Context, profileID string) error {
	if err := s.index.Delete(ctx, []string{profileID}); err != nil {
		return err
	}
	s.invalidateFacetCache(ctx)
	return nil
}

func (s *searchSyncService) ReindexAll(ctx context.Context, db *gorm.DB) (int, error) {
	if err := s.index.Clear(ctx); err != nil {
		return 0, err
	}

	const batchSize = 500
	total := 0
	for offset := 0; ; offset += batchSize {
		profiles, err := s.profileRepo.ListVisible(db, offset, batchSize)
		if err != nil {
			return total, fmt.Errorf("failed to page visible profiles: %w", err)
		}
		if len(profiles) == 0 {
			break
		}

		docs := make([]search.WorkerDocument, 0, len(profiles))
		for i := range profiles {
			docs = append(docs, search.NewWorkerDocument(&profiles[i]))
		}
		if err := s.index.Upsert(ctx, docs); err != nil {
			return total, err
		}
		total += len(docs)

		if len(profiles) < batchSize {
			break
		}
	}

	s.invalidateFacetCache(ctx)
	logger.CtxInfo(ctx, "search reindex complete", "documents", total)
	return total, nil
}

func (s *searchSyncService) invalidateFacetCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.FacetsKey()); err != nil {
		logger.CtxWarn(ctx, "failed to invalidate facet cache", "error", err.Error())
	}
}
