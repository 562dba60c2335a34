package publication_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fashion-marketplace-backend/internal/models"
	"fashion-marketplace-backend/internal/publication"
)

func TestTransition_FromPending(t *testing.T) {
	for _, to := range []models.RequestStatus{
		models.RequestUnderReview,
		models.RequestApproved,
		models.RequestRejected,
		models.RequestRevisionRequested,
	} {
		assert.NoError(t, publication.Transition(models.RequestPending, to), string(to))
	}
}

func TestTransition_FromUnderReview(t *testing.T) {
	for _, to := range []models.RequestStatus{
		models.RequestApproved,
		models.RequestRejected,
		models.RequestRevisionRequested,
	} {
		assert.NoError(t, publication.Transition(models.RequestUnderReview, to), string(to))
	}

	// No way back to pending.
	err := publication.Transition(models.RequestUnderReview, models.RequestPending)
	assert.ErrorIs(t, err, publication.ErrInvalidTransition)
}

func TestTransition_TerminalStatesAreFinal(t *testing.T) {
	terminals := []models.RequestStatus{
		models.RequestApproved,
		models.RequestRejected,
		models.RequestRevisionRequested,
	}
	all := []models.RequestStatus{
		models.RequestPending,
		models.RequestUnderReview,
		models.RequestApproved,
		models.RequestRejected,
		models.RequestRevisionRequested,
	}
	for _, from := range terminals {
		for _, to := range all {
			err := publication.Transition(from, to)
			assert.ErrorIs(t, err, publication.ErrInvalidTransition, string(from)+" -> "+string(to))
		}
	}
}

func TestTransition_SelfLoopRejected(t *testing.T) {
	err := publication.Transition(models.RequestPending, models.RequestPending)
	assert.ErrorIs(t, err, publication.ErrInvalidTransition)
}

func TestCanSubmitProject(t *testing.T) {
	assert.True(t, publication.CanSubmitProject(models.ProjectDraft))
	assert.True(t, publication.CanSubmitProject(models.ProjectCompleted))

	assert.False(t, publication.CanSubmitProject(models.ProjectInProgress))
	assert.False(t, publication.CanSubmitProject(models.ProjectSubmitted))
	assert.False(t, publication.CanSubmitProject(models.ProjectPublished))
}
