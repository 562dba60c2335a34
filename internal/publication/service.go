package publication

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"fashion-marketplace-backend/internal/database"
	"fashion-marketplace-backend/internal/identity"
	"fashion-marketplace-backend/internal/models"
)

// Store is the slice of the database the pipeline needs. *database.Client
// satisfies it; tests supply a fake.
type Store interface {
	GetProject(projectID uuid.UUID) (*models.Project, error)
	GetRequest(requestID uuid.UUID) (*models.PublicationRequest, error)
	HasOpenRequest(projectID uuid.UUID) (bool, error)
	CreateSubmission(project *models.Project, title, description string) (*models.PublicationRequest, error)
	GetDesigner(userID uuid.UUID) (*models.Designer, error)
	RecordDecision(requestID, reviewerID uuid.UUID, decision models.RequestStatus, notes string, rating int, nextProjectStatus models.ProjectStatus) (*models.PublicationRequest, error)
	ApproveAndConvert(requestID, reviewerID uuid.UUID, notes string, rating, sharePct int) (*models.PublicationRequest, *models.Product, error)
	InsertAudit(entry *models.AuditEntry) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Submit proposes a project for publication on behalf of its owner. The
// ownership read classifies the failure (not found vs unauthorized) before
// the transactional write.
func (s *Service) Submit(projectID, designerID uuid.UUID, req *models.SubmitPublicationRequest) (*models.PublicationRequest, error) {
	project, err := s.store.GetProject(projectID)
	if err != nil {
		return nil, err
	}
	if project.DesignerID != designerID {
		return nil, database.ErrUnauthorized
	}
	if !CanSubmitProject(project.Status) {
		return nil, fmt.Errorf("%w: project status %s does not allow submission", ErrInvalidTransition, project.Status)
	}

	open, err := s.store.HasOpenRequest(projectID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, fmt.Errorf("%w: project already has an open publication request", database.ErrConflict)
	}

	title := req.RequestTitle
	if title == "" {
		title = project.Title
	}

	created, err := s.store.CreateSubmission(project, title, req.RequestDescription)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("request_id", created.ID.String()).
		Str("project_id", projectID.String()).
		Msg("publication request submitted")
	return created, nil
}

// Review applies an admin decision. Approval converts the request into a
// draft marketplace product in the same transaction; the product is nil for
// every other decision.
func (s *Service) Review(requestID, reviewerID uuid.UUID, decision *models.ReviewDecisionRequest) (*models.PublicationRequest, *models.Product, error) {
	// Server-side re-validation; the handler checks too, but the form
	// rules must hold regardless of the caller.
	if err := decision.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidDecision, err)
	}

	request, err := s.store.GetRequest(requestID)
	if err != nil {
		return nil, nil, err
	}

	target := models.RequestStatus(decision.Decision)
	if err := Transition(request.Status, target); err != nil {
		return nil, nil, err
	}

	var (
		updated *models.PublicationRequest
		product *models.Product
	)

	if target == models.RequestApproved {
		// The share comes from the designer's tier. A missing profile falls
		// back to the bronze share; any other failure aborts the approval so
		// a transient read error cannot misprice the conversion.
		sharePct := identity.RevenueShareForTier(identity.TierBronze)
		designer, err := s.store.GetDesigner(request.DesignerID)
		switch {
		case err == nil:
			sharePct = designer.RevenueSharePct
		case !errors.Is(err, database.ErrNotFound):
			return nil, nil, fmt.Errorf("failed to resolve designer revenue share: %w", err)
		}

		updated, product, err = s.store.ApproveAndConvert(requestID, reviewerID, decision.Notes, decision.QualityRating, sharePct)
		if err != nil {
			return nil, nil, err
		}
	} else {
		updated, err = s.store.RecordDecision(requestID, reviewerID, target, decision.Notes,
			decision.QualityRating, projectStatusAfterDecision(target))
		if err != nil {
			return nil, nil, err
		}
	}

	s.audit(reviewerID, "admin_review", fmt.Sprintf("request=%s decision=%s", requestID, target))

	event := log.Info().
		Str("request_id", requestID.String()).
		Str("decision", string(target))
	if product != nil {
		event = event.Str("product_id", product.ID.String())
	}
	event.Msg("publication request reviewed")

	return updated, product, nil
}

func (s *Service) audit(actor uuid.UUID, action, detail string) {
	// Best effort; a failed audit row never fails the reviewed operation.
	_ = s.store.InsertAudit(&models.AuditEntry{
		UserID: uuid.NullUUID{UUID: actor, Valid: true},
		Action: action,
		Detail: detail,
	})
}
