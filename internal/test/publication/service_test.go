package publication_test

import (
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fashion-marketplace-backend/internal/database"
	"fashion-marketplace-backend/internal/identity"
	"fashion-marketplace-backend/internal/models"
	"fashion-marketplace-backend/internal/publication"
)

// fakeStore is an in-memory publication.Store that counts every call so
// tests can assert which writes happened.
type fakeStore struct {
	projects  map[uuid.UUID]*models.Project
	requests  map[uuid.UUID]*models.PublicationRequest
	designers map[uuid.UUID]*models.Designer

	// When set, GetDesigner fails with this instead of consulting the map.
	designerErr error

	calls struct {
		getProject     int
		getRequest     int
		hasOpenRequest int
		submissions    int
		decisions      int
		conversions    int
	}
	audits []models.AuditEntry
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		projects:  map[uuid.UUID]*models.Project{},
		requests:  map[uuid.UUID]*models.PublicationRequest{},
		designers: map[uuid.UUID]*models.Designer{},
	}
}

func (f *fakeStore) totalCalls() int {
	return f.calls.getProject + f.calls.getRequest + f.calls.hasOpenRequest +
		f.calls.submissions + f.calls.decisions + f.calls.conversions
}

func (f *fakeStore) GetProject(projectID uuid.UUID) (*models.Project, error) {
	f.calls.getProject++
	p, ok := f.projects[projectID]
	if !ok {
		return nil, database.ErrNotFound
	}
	return p, nil
}

func (f *fakeStore) GetRequest(requestID uuid.UUID) (*models.PublicationRequest, error) {
	f.calls.getRequest++
	r, ok := f.requests[requestID]
	if !ok {
		return nil, database.ErrNotFound
	}
	return r, nil
}

func (f *fakeStore) HasOpenRequest(projectID uuid.UUID) (bool, error) {
	f.calls.hasOpenRequest++
	for _, r := range f.requests {
		if r.ProjectID == projectID &&
			(r.Status == models.RequestPending || r.Status == models.RequestUnderReview) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) CreateSubmission(project *models.Project, title, description string) (*models.PublicationRequest, error) {
	f.calls.submissions++
	r := &models.PublicationRequest{
		ID:                 uuid.New(),
		DesignerID:         project.DesignerID,
		ProjectID:          project.ID,
		RequestTitle:       title,
		RequestDescription: description,
		Status:             models.RequestPending,
		SubmittedAt:        time.Now(),
	}
	f.requests[r.ID] = r
	project.Status = models.ProjectSubmitted
	return r, nil
}

func (f *fakeStore) GetDesigner(userID uuid.UUID) (*models.Designer, error) {
	if f.designerErr != nil {
		return nil, f.designerErr
	}
	d, ok := f.designers[userID]
	if !ok {
		return nil, database.ErrNotFound
	}
	return d, nil
}

func (f *fakeStore) RecordDecision(requestID, reviewerID uuid.UUID, decision models.RequestStatus, notes string, rating int, nextProjectStatus models.ProjectStatus) (*models.PublicationRequest, error) {
	f.calls.decisions++
	r, ok := f.requests[requestID]
	if !ok {
		return nil, database.ErrNotFound
	}
	r.Status = decision
	r.ReviewedAt = sql.NullTime{Time: time.Now(), Valid: true}
	r.ReviewedBy = uuid.NullUUID{UUID: reviewerID, Valid: true}
	if notes != "" {
		r.AdminNotes = sql.NullString{String: notes, Valid: true}
	}
	if rating != 0 {
		r.QualityRating = sql.NullInt64{Int64: int64(rating), Valid: true}
	}
	if nextProjectStatus != "" {
		if p, ok := f.projects[r.ProjectID]; ok {
			p.Status = nextProjectStatus
		}
	}
	return r, nil
}

func (f *fakeStore) ApproveAndConvert(requestID, reviewerID uuid.UUID, notes string, rating, sharePct int) (*models.PublicationRequest, *models.Product, error) {
	f.calls.conversions++
	r, ok := f.requests[requestID]
	if !ok {
		return nil, nil, database.ErrNotFound
	}
	p, ok := f.projects[r.ProjectID]
	if !ok {
		return nil, nil, database.ErrNotFound
	}

	product := &models.Product{
		ID:                     uuid.New(),
		DesignerID:             p.DesignerID,
		Title:                  p.Title,
		Description:            p.Description,
		Price:                  0,
		InventoryCount:         0,
		Status:                 models.ProductDraft,
		Images:                 p.Images(),
		Tags:                   p.Tags,
		PortfolioPublicationID: uuid.NullUUID{UUID: r.ID, Valid: true},
	}

	r.Status = models.RequestApproved
	r.ReviewedAt = sql.NullTime{Time: time.Now(), Valid: true}
	r.ReviewedBy = uuid.NullUUID{UUID: reviewerID, Valid: true}
	if notes != "" {
		r.AdminNotes = sql.NullString{String: notes, Valid: true}
	}
	if rating != 0 {
		r.QualityRating = sql.NullInt64{Int64: int64(rating), Valid: true}
	}
	r.RevenueSharePct = sql.NullInt64{Int64: int64(sharePct), Valid: true}
	r.MarketplaceConversionID = uuid.NullUUID{UUID: product.ID, Valid: true}
	p.Status = models.ProjectPublished

	return r, product, nil
}

func (f *fakeStore) InsertAudit(entry *models.AuditEntry) error {
	f.audits = append(f.audits, *entry)
	return nil
}

func (f *fakeStore) addProject(designerID uuid.UUID, status models.ProjectStatus) *models.Project {
	p := &models.Project{
		ID:         uuid.New(),
		DesignerID: designerID,
		Title:      "Linen Capsule",
		Status:     status,
		Tags:       []string{"linen", "summer"},
	}
	f.projects[p.ID] = p
	return p
}

func TestSubmit_ForeignDesignerDenied(t *testing.T) {
	store := newFakeStore()
	svc := publication.NewService(store)

	owner := uuid.New()
	project := store.addProject(owner, models.ProjectDraft)

	_, err := svc.Submit(project.ID, uuid.New(), &models.SubmitPublicationRequest{})
	assert.ErrorIs(t, err, database.ErrUnauthorized)
	assert.Equal(t, 0, store.calls.submissions)
	assert.Equal(t, models.ProjectDraft, project.Status)
}

func TestSubmit_UnsubmittableStatus(t *testing.T) {
	store := newFakeStore()
	svc := publication.NewService(store)

	owner := uuid.New()
	project := store.addProject(owner, models.ProjectPublished)

	_, err := svc.Submit(project.ID, owner, &models.SubmitPublicationRequest{})
	assert.ErrorIs(t, err, publication.ErrInvalidTransition)
	assert.Equal(t, 0, store.calls.submissions)
}

func TestSubmit_OpenRequestConflict(t *testing.T) {
	store := newFakeStore()
	svc := publication.NewService(store)

	owner := uuid.New()
	project := store.addProject(owner, models.ProjectDraft)

	_, err := svc.Submit(project.ID, owner, &models.SubmitPublicationRequest{})
	require.NoError(t, err)

	// The project is now submitted; reset it to draft to isolate the
	// open-request check from the status check.
	project.Status = models.ProjectDraft
	_, err = svc.Submit(project.ID, owner, &models.SubmitPublicationRequest{})
	assert.ErrorIs(t, err, database.ErrConflict)
	assert.Equal(t, 1, store.calls.submissions)
}

func TestSubmit_TitleDefaultsToProjectTitle(t *testing.T) {
	store := newFakeStore()
	svc := publication.NewService(store)

	owner := uuid.New()
	project := store.addProject(owner, models.ProjectCompleted)

	request, err := svc.Submit(project.ID, owner, &models.SubmitPublicationRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Linen Capsule", request.RequestTitle)
	assert.Equal(t, models.RequestPending, request.Status)
	assert.Equal(t, models.ProjectSubmitted, project.Status)
}

func TestReview_NotesRequiredBeforeAnyStoreCall(t *testing.T) {
	store := newFakeStore()
	svc := publication.NewService(store)

	for _, decision := range []string{"rejected", "revision_requested"} {
		_, _, err := svc.Review(uuid.New(), uuid.New(), &models.ReviewDecisionRequest{Decision: decision})
		assert.ErrorIs(t, err, publication.ErrInvalidDecision, decision)
	}
	assert.Equal(t, 0, store.totalCalls())
}

func TestReview_UnknownDecision(t *testing.T) {
	store := newFakeStore()
	svc := publication.NewService(store)

	_, _, err := svc.Review(uuid.New(), uuid.New(), &models.ReviewDecisionRequest{Decision: "escalated"})
	assert.ErrorIs(t, err, publication.ErrInvalidDecision)
	assert.Equal(t, 0, store.totalCalls())
}

func TestReview_ApproveConvertsToProduct(t *testing.T) {
	store := newFakeStore()
	svc := publication.NewService(store)

	owner := uuid.New()
	project := store.addProject(owner, models.ProjectDraft)
	project.Metadata = json.RawMessage(`{"images":["a.jpg","b.jpg"]}`)
	store.designers[owner] = &models.Designer{
		UserID:          owner,
		RankTier:        identity.TierGold,
		RevenueSharePct: 70,
	}

	request, err := svc.Submit(project.ID, owner, &models.SubmitPublicationRequest{})
	require.NoError(t, err)

	reviewer := uuid.New()
	updated, product, err := svc.Review(request.ID, reviewer, &models.ReviewDecisionRequest{
		Decision:      "approved",
		Notes:         "looks good",
		QualityRating: 5,
	})
	require.NoError(t, err)
	require.NotNil(t, product)

	assert.Equal(t, models.RequestApproved, updated.Status)
	assert.True(t, updated.ReviewedAt.Valid)
	assert.Equal(t, reviewer, updated.ReviewedBy.UUID)
	assert.Equal(t, "looks good", updated.AdminNotes.String)
	assert.Equal(t, int64(5), updated.QualityRating.Int64)
	assert.Equal(t, int64(70), updated.RevenueSharePct.Int64)
	assert.True(t, updated.MarketplaceConversionID.Valid)
	assert.Equal(t, product.ID, updated.MarketplaceConversionID.UUID)

	assert.Equal(t, owner, product.DesignerID)
	assert.Equal(t, "Linen Capsule", product.Title)
	assert.Equal(t, float64(0), product.Price)
	assert.Equal(t, 0, product.InventoryCount)
	assert.Equal(t, models.ProductDraft, product.Status)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, []string(product.Images))

	assert.Equal(t, models.ProjectPublished, project.Status)
	assert.Equal(t, 1, store.calls.conversions)
	assert.Equal(t, 0, store.calls.decisions)

	require.Len(t, store.audits, 1)
	assert.Equal(t, "admin_review", store.audits[0].Action)
}

func TestReview_ApproveWithoutImagesMetadata(t *testing.T) {
	store := newFakeStore()
	svc := publication.NewService(store)

	owner := uuid.New()
	project := store.addProject(owner, models.ProjectDraft)

	request, err := svc.Submit(project.ID, owner, &models.SubmitPublicationRequest{})
	require.NoError(t, err)

	_, product, err := svc.Review(request.ID, uuid.New(), &models.ReviewDecisionRequest{Decision: "approved"})
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, []string{}, []string(product.Images))

	// No designer profile on file: the bronze share is the fallback.
	r, err := store.GetRequest(request.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50), r.RevenueSharePct.Int64)
}

func TestReview_ApproveAbortsWhenShareUnreadable(t *testing.T) {
	store := newFakeStore()
	svc := publication.NewService(store)

	owner := uuid.New()
	project := store.addProject(owner, models.ProjectDraft)
	request, err := svc.Submit(project.ID, owner, &models.SubmitPublicationRequest{})
	require.NoError(t, err)

	store.designerErr = errors.New("connection reset by peer")
	_, _, err = svc.Review(request.ID, uuid.New(), &models.ReviewDecisionRequest{Decision: "approved"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, database.ErrNotFound)

	// Nothing was converted; the request still awaits a decision.
	assert.Equal(t, 0, store.calls.conversions)
	r, err := store.GetRequest(request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, r.Status)
	assert.False(t, r.RevenueSharePct.Valid)
}

func TestReview_ApproveKeepsProjectTitle(t *testing.T) {
	store := newFakeStore()
	svc := publication.NewService(store)

	owner := uuid.New()
	project := store.addProject(owner, models.ProjectDraft)

	request, err := svc.Submit(project.ID, owner, &models.SubmitPublicationRequest{
		RequestTitle:       "Please feature this",
		RequestDescription: "ready for the marketplace",
	})
	require.NoError(t, err)
	assert.Equal(t, "Please feature this", request.RequestTitle)

	_, product, err := svc.Review(request.ID, uuid.New(), &models.ReviewDecisionRequest{Decision: "approved"})
	require.NoError(t, err)
	require.NotNil(t, product)

	// The product is built from the project, not the request form.
	assert.Equal(t, "Linen Capsule", product.Title)
}

func TestReview_RejectSendsProjectBackToDraft(t *testing.T) {
	store := newFakeStore()
	svc := publication.NewService(store)

	owner := uuid.New()
	project := store.addProject(owner, models.ProjectDraft)

	request, err := svc.Submit(project.ID, owner, &models.SubmitPublicationRequest{})
	require.NoError(t, err)

	updated, product, err := svc.Review(request.ID, uuid.New(), &models.ReviewDecisionRequest{
		Decision: "rejected",
		Notes:    "not marketplace ready",
	})
	require.NoError(t, err)
	assert.Nil(t, product)
	assert.Equal(t, models.RequestRejected, updated.Status)
	assert.Equal(t, models.ProjectDraft, project.Status)
	assert.Equal(t, 0, store.calls.conversions)
}

func TestReview_TerminalRequestRefused(t *testing.T) {
	store := newFakeStore()
	svc := publication.NewService(store)

	owner := uuid.New()
	project := store.addProject(owner, models.ProjectDraft)
	request, err := svc.Submit(project.ID, owner, &models.SubmitPublicationRequest{})
	require.NoError(t, err)

	_, _, err = svc.Review(request.ID, uuid.New(), &models.ReviewDecisionRequest{
		Decision: "rejected",
		Notes:    "no",
	})
	require.NoError(t, err)

	_, _, err = svc.Review(request.ID, uuid.New(), &models.ReviewDecisionRequest{Decision: "approved"})
	assert.ErrorIs(t, err, publication.ErrInvalidTransition)
	assert.Equal(t, 0, store.calls.conversions)
}
