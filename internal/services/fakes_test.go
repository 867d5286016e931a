package services

// In-memory fakes for the repository and client interfaces. Services take
// the gorm handle as a plain argument, so tests pass a nil *gorm.DB and
// the fakes ignore it.

import (
	"context"
	"fmt"
	"time"

	"kasambahay_backend/internal/cache"
	"kasambahay_backend/internal/models"
	"kasambahay_backend/internal/repositories"
	"kasambahay_backend/internal/search"

	"gorm.io/gorm"
)

type fakeEmployerRepo struct {
	byUserID map[string]*models.EmployerProfile
}

func newFakeEmployerRepo(profiles ...*models.EmployerProfile) *fakeEmployerRepo {
	r := &fakeEmployerRepo{byUserID: map[string]*models.EmployerProfile{}}
	for _, p := range profiles {
		r.byUserID[p.UserID] = p
	}
	return r
}

func (r *fakeEmployerRepo) Create(_ *gorm.DB, profile *models.EmployerProfile) error {
	r.byUserID[profile.UserID] = profile
	return nil
}

func (r *fakeEmployerRepo) FindByID(_ *gorm.DB, id string) (*models.EmployerProfile, error) {
	for _, p := range r.byUserID {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repositories.ErrEmployerProfileNotFound
}

func (r *fakeEmployerRepo) FindByUserID(_ *gorm.DB, userID string) (*models.EmployerProfile, error) {
	if p, ok := r.byUserID[userID]; ok {
		return p, nil
	}
	return nil, repositories.ErrEmployerProfileNotFound
}

func (r *fakeEmployerRepo) FindByStripeCustomerID(_ *gorm.DB, customerID string) (*models.EmployerProfile, error) {
	for _, p := range r.byUserID {
		if p.StripeCustomerID == customerID {
			return p, nil
		}
	}
	return nil, repositories.ErrEmployerProfileNotFound
}

func (r *fakeEmployerRepo) Update(_ *gorm.DB, profile *models.EmployerProfile) error {
	r.byUserID[profile.UserID] = profile
	return nil
}

func (r *fakeEmployerRepo) SetStripeCustomerID(_ *gorm.DB, profileID, customerID string) error {
	for _, p := range r.byUserID {
		if p.ID == profileID {
			p.StripeCustomerID = customerID
			return nil
		}
	}
	return repositories.ErrEmployerProfileNotFound
}

type fakeSubscriptionRepo struct {
	latest         map[string]*models.Subscription // employerID -> newest row
	statusUpdates  map[string]models.SubscriptionStatus
	billingEvents  []models.BillingHistory
	lapsed         []models.Subscription
	expiryUpdates  map[string]time.Time
	findByProvider map[string]*models.Subscription
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{
		latest:         map[string]*models.Subscription{},
		statusUpdates:  map[string]models.SubscriptionStatus{},
		expiryUpdates:  map[string]time.Time{},
		findByProvider: map[string]*models.Subscription{},
	}
}

func (r *fakeSubscriptionRepo) Create(_ *gorm.DB, sub *models.Subscription) error {
	if sub.ID == "" {
		sub.ID = "sub-" + sub.EmployerID
	}
	r.latest[sub.EmployerID] = sub
	if sub.ProviderID != "" {
		r.findByProvider[sub.ProviderID] = sub
	}
	return nil
}

func (r *fakeSubscriptionRepo) FindByID(_ *gorm.DB, id string) (*models.Subscription, error) {
	for _, s := range r.latest {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, repositories.ErrSubscriptionNotFound
}

func (r *fakeSubscriptionRepo) FindLatestByEmployer(_ *gorm.DB, employerID string) (*models.Subscription, error) {
	if s, ok := r.latest[employerID]; ok {
		return s, nil
	}
	return nil, repositories.ErrSubscriptionNotFound
}

func (r *fakeSubscriptionRepo) FindByProviderID(_ *gorm.DB, providerID string) (*models.Subscription, error) {
	if s, ok := r.findByProvider[providerID]; ok {
		return s, nil
	}
	return nil, repositories.ErrSubscriptionNotFound
}

func (r *fakeSubscriptionRepo) UpdateStatus(_ *gorm.DB, id string, status models.SubscriptionStatus) error {
	r.statusUpdates[id] = status
	for _, s := range r.latest {
		if s.ID == id {
			s.Status = status
		}
	}
	return nil
}

func (r *fakeSubscriptionRepo) UpdateStatusAndExpiry(_ *gorm.DB, id string, status models.SubscriptionStatus, expiresAt time.Time) error {
	r.statusUpdates[id] = status
	r.expiryUpdates[id] = expiresAt
	for _, s := range r.latest {
		if s.ID == id {
			s.Status = status
			s.ExpiresAt = expiresAt
		}
	}
	return nil
}

func (r *fakeSubscriptionRepo) FindLapsedActive(_ *gorm.DB, now time.Time, limit int) ([]models.Subscription, error) {
	out := r.lapsed
	r.lapsed = nil
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) AddBillingEvent(_ *gorm.DB, event *models.BillingHistory) error {
	r.billingEvents = append(r.billingEvents, *event)
	return nil
}

func (r *fakeSubscriptionRepo) ListBillingByEmployer(_ *gorm.DB, employerID string, limit int) ([]models.BillingHistory, error) {
	var out []models.BillingHistory
	for _, e := range r.billingEvents {
		if e.EmployerID == employerID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeProfileRepo struct {
	byUserID map[string]*models.EmployeeProfile
	scores   map[string]int
}

func newFakeProfileRepo(profiles ...*models.EmployeeProfile) *fakeProfileRepo {
	r := &fakeProfileRepo{
		byUserID: map[string]*models.EmployeeProfile{},
		scores:   map[string]int{},
	}
	for _, p := range profiles {
		r.byUserID[p.UserID] = p
	}
	return r
}

func (r *fakeProfileRepo) Create(_ *gorm.DB, profile *models.EmployeeProfile) error {
	if _, ok := r.byUserID[profile.UserID]; ok {
		return repositories.ErrProfileAlreadyExists
	}
	if profile.ID == "" {
		profile.ID = "profile-" + profile.UserID
	}
	r.byUserID[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) FindByID(_ *gorm.DB, id string) (*models.EmployeeProfile, error) {
	for _, p := range r.byUserID {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) FindByUserID(_ *gorm.DB, userID string) (*models.EmployeeProfile, error) {
	if p, ok := r.byUserID[userID]; ok {
		return p, nil
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) FindByUserIDs(_ *gorm.DB, userIDs []string) ([]models.EmployeeProfile, error) {
	var out []models.EmployeeProfile
	for _, id := range userIDs {
		if p, ok := r.byUserID[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) Update(_ *gorm.DB, profile *models.EmployeeProfile) error {
	r.byUserID[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) UpdateScore(_ *gorm.DB, profileID string, score int) error {
	r.scores[profileID] = score
	return nil
}

func (r *fakeProfileRepo) Delete(_ *gorm.DB, id string) error {
	for userID, p := range r.byUserID {
		if p.ID == id {
			delete(r.byUserID, userID)
			return nil
		}
	}
	return repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) ListVisible(_ *gorm.DB, offset, limit int) ([]models.EmployeeProfile, error) {
	var visible []models.EmployeeProfile
	for _, p := range r.byUserID {
		if p.Visibility {
			visible = append(visible, *p)
		}
	}
	if offset >= len(visible) {
		return nil, nil
	}
	end := offset + limit
	if end > len(visible) {
		end = len(visible)
	}
	return visible[offset:end], nil
}

func (r *fakeProfileRepo) CountVisible(_ *gorm.DB) (int64, error) {
	var n int64
	for _, p := range r.byUserID {
		if p.Visibility {
			n++
		}
	}
	return n, nil
}

func (r *fakeProfileRepo) AddDocument(_ *gorm.DB, doc *models.Document) error {
	for _, p := range r.byUserID {
		if p.ID == doc.ProfileID {
			if doc.ID == "" {
				doc.ID = "doc-" + doc.FileName
			}
			p.Documents = append(p.Documents, *doc)
			return nil
		}
	}
	return repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) FindDocument(_ *gorm.DB, documentID string) (*models.Document, error) {
	for _, p := range r.byUserID {
		for i := range p.Documents {
			if p.Documents[i].ID == documentID {
				return &p.Documents[i], nil
			}
		}
	}
	return nil, repositories.ErrDocumentNotFound
}

func (r *fakeProfileRepo) ListDocuments(_ *gorm.DB, profileID string) ([]models.Document, error) {
	for _, p := range r.byUserID {
		if p.ID == profileID {
			return p.Documents, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) UpdateDocumentStatus(_ *gorm.DB, documentID string, status models.DocumentStatus) error {
	for _, p := range r.byUserID {
		for i := range p.Documents {
			if p.Documents[i].ID == documentID {
				p.Documents[i].Status = status
				return nil
			}
		}
	}
	return repositories.ErrDocumentNotFound
}

func (r *fakeProfileRepo) DeleteDocument(_ *gorm.DB, profileID, documentID string) error {
	for _, p := range r.byUserID {
		if p.ID != profileID {
			continue
		}
		for i := range p.Documents {
			if p.Documents[i].ID == documentID {
				p.Documents = append(p.Documents[:i], p.Documents[i+1:]...)
				return nil
			}
		}
	}
	return repositories.ErrDocumentNotFound
}

func (r *fakeProfileRepo) AddReference(_ *gorm.DB, ref *models.Reference) error {
	for _, p := range r.byUserID {
		if p.ID == ref.ProfileID {
			if ref.ID == "" {
				ref.ID = "ref-" + ref.Name
			}
			p.References = append(p.References, *ref)
			return nil
		}
	}
	return repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) ListReferences(_ *gorm.DB, profileID string) ([]models.Reference, error) {
	for _, p := range r.byUserID {
		if p.ID == profileID {
			return p.References, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) DeleteReference(_ *gorm.DB, profileID, referenceID string) error {
	for _, p := range r.byUserID {
		if p.ID != profileID {
			continue
		}
		for i := range p.References {
			if p.References[i].ID == referenceID {
				p.References = append(p.References[:i], p.References[i+1:]...)
				return nil
			}
		}
	}
	return repositories.ErrReferenceNotFound
}

type fakeIndex struct {
	docs       map[string]search.WorkerDocument
	cleared    int
	upsertErrs []error
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{docs: map[string]search.WorkerDocument{}}
}

func (f *fakeIndex) EnsureSettings(context.Context) error { return nil }

func (f *fakeIndex) Upsert(_ context.Context, docs []search.WorkerDocument) error {
	if len(f.upsertErrs) > 0 {
		err := f.upsertErrs[0]
		f.upsertErrs = f.upsertErrs[1:]
		if err != nil {
			return err
		}
	}
	for _, d := range docs {
		f.docs[d.ID] = d
	}
	return nil
}

func (f *fakeIndex) Delete(_ context.Context, ids []string) error {
	for _, id := range ids {
		delete(f.docs, id)
	}
	return nil
}

func (f *fakeIndex) Clear(context.Context) error {
	f.docs = map[string]search.WorkerDocument{}
	f.cleared++
	return nil
}

func (f *fakeIndex) Search(context.Context, search.SearchParams) (*search.SearchResult, error) {
	return &search.SearchResult{}, nil
}

func (f *fakeIndex) Facets(context.Context) (map[string]map[string]int, error) {
	return map[string]map[string]int{"city": {"Makati": len(f.docs)}}, nil
}

func (f *fakeIndex) Suggest(context.Context, string, int) ([]search.Suggestion, error) {
	return nil, nil
}

type fakeCache struct {
	store   map[string][]byte
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, _ interface{}) error {
	// The fake always misses; tests assert on SetJSON/Delete traffic.
	return cache.ErrMiss
}

func (c *fakeCache) SetJSON(_ context.Context, key string, _ interface{}, _ time.Duration) error {
	c.store[key] = []byte("set")
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	c.deleted = append(c.deleted, keys...)
	for _, k := range keys {
		delete(c.store, k)
	}
	return nil
}

func (c *fakeCache) Ping(context.Context) error { return nil }

type fakeChatRepo struct {
	chats    map[string]*models.Chat
	messages map[string][]models.ChatMessage
}

func newFakeChatRepo(chats ...*models.Chat) *fakeChatRepo {
	r := &fakeChatRepo{
		chats:    map[string]*models.Chat{},
		messages: map[string][]models.ChatMessage{},
	}
	for _, c := range chats {
		r.chats[c.ID] = c
	}
	return r
}

func (r *fakeChatRepo) FindOrCreate(_ *gorm.DB, employerID, workerID string) (*models.Chat, error) {
	for _, c := range r.chats {
		if c.EmployerID == employerID && c.WorkerID == workerID {
			return c, nil
		}
	}
	chat := &models.Chat{
		BaseModel:  models.BaseModel{ID: "chat-" + employerID + "-" + workerID},
		EmployerID: employerID,
		WorkerID:   workerID,
	}
	r.chats[chat.ID] = chat
	return chat, nil
}

func (r *fakeChatRepo) FindByID(_ *gorm.DB, id string) (*models.Chat, error) {
	if c, ok := r.chats[id]; ok {
		return c, nil
	}
	return nil, repositories.ErrChatNotFound
}

func (r *fakeChatRepo) ListByEmployer(_ *gorm.DB, employerID string) ([]models.Chat, error) {
	var out []models.Chat
	for _, c := range r.chats {
		if c.EmployerID == employerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) ListByWorker(_ *gorm.DB, workerID string) ([]models.Chat, error) {
	var out []models.Chat
	for _, c := range r.chats {
		if c.WorkerID == workerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) AddMessage(_ *gorm.DB, msg *models.ChatMessage) error {
	if msg.ID == "" {
		msg.ID = fmt.Sprintf("msg-%d", len(r.messages[msg.ChatID])+1)
	}
	r.messages[msg.ChatID] = append(r.messages[msg.ChatID], *msg)
	return nil
}

func (r *fakeChatRepo) ListMessages(_ *gorm.DB, chatID string, offset, limit int) ([]models.ChatMessage, error) {
	msgs := r.messages[chatID]
	if offset >= len(msgs) {
		return nil, nil
	}
	end := offset + limit
	if end > len(msgs) {
		end = len(msgs)
	}
	return msgs[offset:end], nil
}

func (r *fakeChatRepo) CountMessages(_ *gorm.DB, chatID string) (int64, error) {
	return int64(len(r.messages[chatID])), nil
}

type fakeInterviewRepo struct {
	byID    map[string]*models.Interview
	created []*models.Interview
}

func newFakeInterviewRepo(interviews ...*models.Interview) *fakeInterviewRepo {
	r := &fakeInterviewRepo{byID: map[string]*models.Interview{}}
	for _, iv := range interviews {
		r.byID[iv.ID] = iv
	}
	return r
}

func (r *fakeInterviewRepo) Create(_ *gorm.DB, interview *models.Interview) error {
	if interview.ID == "" {
		interview.ID = "interview-1"
	}
	r.byID[interview.ID] = interview
	r.created = append(r.created, interview)
	return nil
}

func (r *fakeInterviewRepo) FindByID(_ *gorm.DB, id string) (*models.Interview, error) {
	if iv, ok := r.byID[id]; ok {
		return iv, nil
	}
	return nil, repositories.ErrInterviewNotFound
}

func (r *fakeInterviewRepo) Update(_ *gorm.DB, interview *models.Interview) error {
	r.byID[interview.ID] = interview
	return nil
}

func (r *fakeInterviewRepo) ListByEmployer(_ *gorm.DB, employerID string) ([]models.Interview, error) {
	var out []models.Interview
	for _, iv := range r.byID {
		if iv.EmployerID == employerID {
			out = append(out, *iv)
		}
	}
	return out, nil
}

func (r *fakeInterviewRepo) ListByWorker(_ *gorm.DB, workerID string) ([]models.Interview, error) {
	var out []models.Interview
	for _, iv := range r.byID {
		if iv.WorkerID == workerID {
			out = append(out, *iv)
		}
	}
	return out, nil
}

type fakeSavedSearchRepo struct {
	byID map[string]*models.SavedSearch
}

func newFakeSavedSearchRepo(searches ...*models.SavedSearch) *fakeSavedSearchRepo {
	r := &fakeSavedSearchRepo{byID: map[string]*models.SavedSearch{}}
	for _, sv := range searches {
		r.byID[sv.ID] = sv
	}
	return r
}

func (r *fakeSavedSearchRepo) Create(_ *gorm.DB, sv *models.SavedSearch) error {
	if sv.ID == "" {
		sv.ID = "search-" + sv.Name
	}
	if sv.IsDefault {
		r.clearDefault(sv.EmployerID)
	}
	r.byID[sv.ID] = sv
	return nil
}

func (r *fakeSavedSearchRepo) FindByID(_ *gorm.DB, id string) (*models.SavedSearch, error) {
	if sv, ok := r.byID[id]; ok {
		return sv, nil
	}
	return nil, repositories.ErrSavedSearchNotFound
}

func (r *fakeSavedSearchRepo) ListByEmployer(_ *gorm.DB, employerID string) ([]models.SavedSearch, error) {
	var out []models.SavedSearch
	for _, sv := range r.byID {
		if sv.EmployerID == employerID {
			out = append(out, *sv)
		}
	}
	return out, nil
}

func (r *fakeSavedSearchRepo) Update(_ *gorm.DB, sv *models.SavedSearch) error {
	if sv.IsDefault {
		r.clearDefault(sv.EmployerID)
	}
	r.byID[sv.ID] = sv
	return nil
}

func (r *fakeSavedSearchRepo) Delete(_ *gorm.DB, employerID, id string) error {
	sv, ok := r.byID[id]
	if !ok || sv.EmployerID != employerID {
		return repositories.ErrSavedSearchNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeSavedSearchRepo) SetDefault(_ *gorm.DB, employerID, id string) error {
	sv, ok := r.byID[id]
	if !ok || sv.EmployerID != employerID {
		return repositories.ErrSavedSearchNotFound
	}
	r.clearDefault(employerID)
	sv.IsDefault = true
	return nil
}

func (r *fakeSavedSearchRepo) clearDefault(employerID string) {
	for _, sv := range r.byID {
		if sv.EmployerID == employerID {
			sv.IsDefault = false
		}
	}
}
