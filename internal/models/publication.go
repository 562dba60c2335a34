package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestPending           RequestStatus = "pending"
	RequestUnderReview       RequestStatus = "under_review"
	RequestApproved          RequestStatus = "approved"
	RequestRejected          RequestStatus = "rejected"
	RequestRevisionRequested RequestStatus = "revision_requested"
)

// PublicationRequest is a designer's ask to promote a project into the
// marketplace. Immutable after submission except for the admin-decision
// fields and the conversion back-reference.
type PublicationRequest struct {
	ID                      uuid.UUID
	DesignerID              uuid.UUID
	ProjectID               uuid.UUID
	RequestTitle            string
	RequestDescription      string
	Status                  RequestStatus
	SubmittedAt             time.Time
	ReviewedAt              sql.NullTime
	ReviewedBy              uuid.NullUUID
	AdminNotes              sql.NullString
	QualityRating           sql.NullInt64
	RevenueSharePct         sql.NullInt64
	MarketplaceConversionID uuid.NullUUID
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

type ReviewHistoryEntry struct {
	ID            uuid.UUID
	RequestID     uuid.UUID
	ReviewerID    uuid.UUID
	Decision      RequestStatus
	Notes         sql.NullString
	QualityRating sql.NullInt64
	CreatedAt     time.Time
}
