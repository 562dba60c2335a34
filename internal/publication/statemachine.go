// Package publication owns the dual-layer pipeline: the state machine for
// publication requests, project submission, and the approve-and-convert
// step that creates a marketplace product from an approved request.
package publication

import (
	"errors"
	"fmt"

	"fashion-marketplace-backend/internal/models"
)

// ErrInvalidTransition is returned for any status change the transition
// table does not allow. Both the submission and the review flow go through
// this table; there is no other authority on status changes.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrInvalidDecision marks a review form that fails validation (unknown
// decision, missing notes on a negative outcome, rating out of range).
var ErrInvalidDecision = errors.New("invalid review decision")

var requestTransitions = map[models.RequestStatus][]models.RequestStatus{
	models.RequestPending: {
		models.RequestUnderReview,
		models.RequestApproved,
		models.RequestRejected,
		models.RequestRevisionRequested,
	},
	models.RequestUnderReview: {
		models.RequestApproved,
		models.RequestRejected,
		models.RequestRevisionRequested,
	},
	// approved, rejected and revision_requested are terminal; a reworked
	// project is resubmitted as a new request.
}

// CanTransition reports whether a request may move from one status to
// another.
func CanTransition(from, to models.RequestStatus) bool {
	for _, allowed := range requestTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition validates a request status change.
func Transition(from, to models.RequestStatus) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

var submittableProjectStatuses = map[models.ProjectStatus]bool{
	models.ProjectDraft:     true,
	models.ProjectCompleted: true,
}

// CanSubmitProject reports whether a project in the given status may be
// proposed for publication.
func CanSubmitProject(status models.ProjectStatus) bool {
	return submittableProjectStatuses[status]
}

// projectStatusAfterDecision gives the project status side effect of a
// review decision. Empty means the project does not move.
func projectStatusAfterDecision(decision models.RequestStatus) models.ProjectStatus {
	switch decision {
	case models.RequestApproved:
		return models.ProjectPublished
	case models.RequestRejected, models.RequestRevisionRequested:
		// Back to the designer's workbench for rework.
		return models.ProjectDraft
	default:
		return ""
	}
}
