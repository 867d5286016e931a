package services

import (
	"context"

	"kasambahay_backend/internal/dto"
	"kasambahay_backend/internal/logger"
	"kasambahay_backend/internal/models"
	"kasambahay_backend/internal/repositories"
	"kasambahay_backend/internal/search"
	"kasambahay_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Viewer identifies who is looking at a profile, for private-field
// shaping. Zero value means anonymous.
type Viewer struct {
	UserID string
	Role   models.UserRole
}

type EmployeeProfileService interface {
	Create(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateEmployeeProfileRequest) (*models.EmployeeProfile, error)
	GetOwn(ctx context.Context, db *gorm.DB, userID string) (*models.EmployeeProfile, error)
	GetByID(ctx context.Context, db *gorm.DB, id string, viewer Viewer) (*models.EmployeeProfile, error)
	GetBySlug(ctx context.Context, db *gorm.DB, slug string, viewer Viewer) (*models.EmployeeProfile, error)
	Update(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateEmployeeProfileRequest) (*models.EmployeeProfile, error)
	Delete(ctx context.Context, db *gorm.DB, userID string) error

	AddReference(ctx context.Context, db *gorm.DB, userID string, req *dto.AddReferenceRequest) (*models.Reference, error)
	DeleteReference(ctx context.Context, db *gorm.DB, userID, referenceID string) error

	AttachDocument(ctx context.Context, db *gorm.DB, userID string, req *dto.AttachDocumentRequest) (*models.Document, error)
	DeleteDocument(ctx context.Context, db *gorm.DB, userID, documentID string) error
	SetDocumentStatus(ctx context.Context, db *gorm.DB, documentID string, status models.DocumentStatus) error
}

type employeeProfileService struct {
	profileRepo repositories.EmployeeProfileRepository
	access      AccessService
	sync        SearchSyncService
}

func NewEmployeeProfileService(
	profileRepo repositories.EmployeeProfileRepository,
	access AccessService,
	sync SearchSyncService,
) EmployeeProfileService {
	return &employeeProfileService{
		profileRepo: profileRepo,
		access:      access,
		sync:        sync,
	}
}

func (s *employeeProfileService) Create(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateEmployeeProfileRequest) (*models.EmployeeProfile, error) {
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMax < *req.SalaryMin {
		return nil, apperrors.ValidationError(map[string]string{
			"salary_max": "Must be greater than or equal to salary_min",
		})
	}

	profile := &models.EmployeeProfile{
		UserID:          userID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		City:            req.City,
		Province:        req.Province,
		Skills:          req.Skills,
		Languages:       req.Languages,
		ExperienceYears: req.ExperienceYears,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		EmploymentType:  models.EmploymentType(req.EmploymentType),
		Headline:        req.Headline,
		Visibility:      true,
		Address:         req.Address,
		Phone:           req.Phone,
		Email:           req.Email,
	}
	if req.Visibility != nil {
		profile.Visibility = *req.Visibility
	}
	// Inline references persist with the profile as nested rows.
	for _, r := range req.References {
		profile.References = append(profile.References, models.Reference{
			Name:     r.Name,
			Relation: r.Relation,
			Phone:    r.Phone,
		})
	}
	profile.ProfileScore = ComputeProfileScore(profile)

	if err := s.profileRepo.Create(db, profile); err != nil {
		if err == repositories.ErrProfileAlreadyExists {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}

	s.syncAfterWrite(ctx, db, userID)
	return profile, nil
}

func (s *employeeProfileService) GetOwn(ctx context.Context, db *gorm.DB, userID string) (*models.EmployeeProfile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if err == repositories.ErrProfileNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *employeeProfileService) GetByID(ctx context.Context, db *gorm.DB, id string, viewer Viewer) (*models.EmployeeProfile, error) {
	profile, err := s.profileRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrProfileNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.shapeForViewer(db, profile, viewer)
}

func (s *employeeProfileService) GetBySlug(ctx context.Context, db *gorm.DB, slug string, viewer Viewer) (*models.EmployeeProfile, error) {
	parts, ok := search.ParseSlug(slug)
	if !ok {
		return nil, apperrors.NewBadRequestError("Invalid profile slug")
	}
	profile, err := s.profileRepo.FindByUserID(db, parts.UserID)
	if err != nil {
		if err == repositories.ErrProfileNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.shapeForViewer(db, profile, viewer)
}

func (s *employeeProfileService) Update(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateEmployeeProfileRequest) (*models.EmployeeProfile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if err == repositories.ErrProfileNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	applyProfileUpdate(profile, req)

	if profile.SalaryMin != nil && profile.SalaryMax != nil && *profile.SalaryMax < *profile.SalaryMin {
		return nil, apperrors.ValidationError(map[string]string{
			"salary_max": "Must be greater than or equal to salary_min",
		})
	}

	if err := s.profileRepo.Update(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.recomputeScore(db, profile); err != nil {
		return nil, err
	}

	s.syncAfterWrite(ctx, db, userID)
	return profile, nil
}

func (s *employeeProfileService) Delete(ctx context.Context, db *gorm.DB, userID string) error {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if err == repositories.ErrProfileNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if err := s.profileRepo.Delete(db, profile.ID); err != nil {
		return apperrors.InternalError(err)
	}

	// The row is gone, so the regular sync has nothing to key the
	// document by; remove it with the ID captured above.
	if err := s.sync.RemoveProfile(ctx, profile.ID); err != nil {
		logger.CtxWarn(ctx, "search index removal failed after profile delete",
			"profile_id", profile.ID, "error", err.Error())
	}
	return nil
}

func (s *employeeProfileService) AddReference(ctx context.Context, db *gorm.DB, userID string, req *dto.AddReferenceRequest) (*models.Reference, error) {
	profile, err := s.ownedProfile(db, userID)
	if err != nil {
		return nil, err
	}

	ref := &models.Reference{
		ProfileID: profile.ID,
		Name:      req.Name,
		Relation:  req.Relation,
		Phone:     req.Phone,
	}
	if err := s.profileRepo.AddReference(db, ref); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.recomputeScoreByUserID(db, userID); err != nil {
		return nil, err
	}
	return ref, nil
}

func (s *employeeProfileService) DeleteReference(ctx context.Context, db *gorm.DB, userID, referenceID string) error {
	profile, err := s.ownedProfile(db, userID)
	if err != nil {
		return err
	}
	if err := s.profileRepo.DeleteReference(db, profile.ID, referenceID); err != nil {
		if err == repositories.ErrReferenceNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return s.recomputeScoreByUserID(db, userID)
}

func (s *employeeProfileService) AttachDocument(ctx context.Context, db *gorm.DB, userID string, req *dto.AttachDocumentRequest) (*models.Document, error) {
	profile, err := s.ownedProfile(db, userID)
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		ProfileID:   profile.ID,
		Kind:        req.Kind,
		StorageKey:  req.StorageKey,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
		Status:      models.DocumentStatusPending,
	}
	if err := s.profileRepo.AddDocument(db, doc); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return doc, nil
}

func (s *employeeProfileService) DeleteDocument(ctx context.Context, db *gorm.DB, userID, documentID string) error {
	profile, err := s.ownedProfile(db, userID)
	if err != nil {
		return err
	}
	if err := s.profileRepo.DeleteDocument(db, profile.ID, documentID); err != nil {
		if err == repositories.ErrDocumentNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return s.recomputeScoreByUserID(db, userID)
}

// SetDocumentStatus is the admin verification action. Verified documents
// feed the completeness score, so it recomputes.
func (s *employeeProfileService) SetDocumentStatus(ctx context.Context, db *gorm.DB, documentID string, status models.DocumentStatus) error {
	if err := s.profileRepo.UpdateDocumentStatus(db, documentID, status); err != nil {
		if err == repositories.ErrDocumentNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	doc, err := s.profileRepo.FindDocument(db, documentID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	profile, err := s.profileRepo.FindByID(db, doc.ProfileID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	return s.recomputeScore(db, profile)
}

// ownedProfile loads the worker's own profile or a 404.
func (s *employeeProfileService) ownedProfile(db *gorm.DB, userID string) (*models.EmployeeProfile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if err == repositories.ErrProfileNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *employeeProfileService) recomputeScoreByUserID(db *gorm.DB, userID string) error {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	return s.recomputeScore(db, profile)
}

func (s *employeeProfileService) recomputeScore(db *gorm.DB, profile *models.EmployeeProfile) error {
	score := ComputeProfileScore(profile)
	if score == profile.ProfileScore {
		return nil
	}
	if err := s.profileRepo.UpdateScore(db, profile.ID, score); err != nil {
		return apperrors.InternalError(err)
	}
	profile.ProfileScore = score
	return nil
}

// shapeForViewer blanks private fields unless the viewer is the owner,
// an admin, or an employer with an active subscription. Hidden profiles
// are only visible to their owner and admins.
func (s *employeeProfileService) shapeForViewer(db *gorm.DB, profile *models.EmployeeProfile, viewer Viewer) (*models.EmployeeProfile, error) {
	isOwner := viewer.UserID != "" && viewer.UserID == profile.UserID
	isAdmin := viewer.Role == models.UserRoleAdmin

	if !profile.Visibility && !isOwner && !isAdmin {
		return nil, apperrors.ErrProfileHidden
	}
	if isOwner || isAdmin {
		return profile, nil
	}
	if s.access.HasActiveSubscription(db, viewer.UserID, viewer.Role) {
		return profile, nil
	}

	shaped := *profile
	shaped.LastName = ""
	shaped.Address = ""
	shaped.Phone = ""
	shaped.Email = ""
	shaped.Documents = nil
	if len(profile.References) > 0 {
		refs := make([]models.Reference, len(profile.References))
		copy(refs, profile.References)
		for i := range refs {
			refs[i].Phone = ""
		}
		shaped.References = refs
	}
	return &shaped, nil
}

// syncAfterWrite pushes the profile to the search index best effort; a
// search outage must not fail the profile write.
func (s *employeeProfileService) syncAfterWrite(ctx context.Context, db *gorm.DB, userID string) {
	if err := s.sync.SyncOne(ctx, db, userID); err != nil {
		logger.CtxWarn(ctx, "search sync failed after profile write",
			"user_id", userID, "error", err.Error())
	}
}

func applyProfileUpdate(profile *models.EmployeeProfile, req *dto.UpdateEmployeeProfileRequest) {
	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Province != nil {
		profile.Province = *req.Province
	}
	if req.Skills != nil {
		profile.Skills = *req.Skills
	}
	if req.Languages != nil {
		profile.Languages = *req.Languages
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.SalaryMin != nil {
		profile.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		profile.SalaryMax = req.SalaryMax
	}
	if req.EmploymentType != nil {
		profile.EmploymentType = models.EmploymentType(*req.EmploymentType)
	}
	if req.Headline != nil {
		profile.Headline = *req.Headline
	}
	if req.Visibility != nil {
		profile.Visibility = *req.Visibility
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
}

// Completeness score weights. The score always reflects the profile's
// current state; removing data lowers it.
const (
	scoreBasics          = 25
	scorePerSkill        = 5
	scoreSkillsCap       = 15
	scoreSalaryPair      = 10
	scorePerVerifiedDoc  = 10
	scoreVerifiedDocsCap = 20
	scorePerReference    = 5
	scoreReferencesCap   = 15
	scoreContact         = 15
	scoreMax             = 100
)

// ComputeProfileScore derives the 0-100 completeness score from the
// profile and its loaded documents and references.
func ComputeProfileScore(p *models.EmployeeProfile) int {
	score := 0

	if p.FirstName != "" && p.City != "" && p.Province != "" {
		score += scoreBasics
	}

	skillPoints := len(p.Skills) * scorePerSkill
	if skillPoints > scoreSkillsCap {
		skillPoints = scoreSkillsCap
	}
	score += skillPoints

	if p.SalaryMin != nil && p.SalaryMax != nil {
		score += scoreSalaryPair
	}

	docPoints := 0
	for _, d := range p.Documents {
		if d.Status == models.DocumentStatusVerified {
			docPoints += scorePerVerifiedDoc
		}
	}
	if docPoints > scoreVerifiedDocsCap {
		docPoints = scoreVerifiedDocsCap
	}
	score += docPoints

	refPoints := len(p.References) * scorePerReference
	if refPoints > scoreReferencesCap {
		refPoints = scoreReferencesCap
	}
	score += refPoints

	if p.Phone != "" || p.Email != "" {
		score += scoreContact
	}

	if score > scoreMax {
		score = scoreMax
	}
	return score
}
