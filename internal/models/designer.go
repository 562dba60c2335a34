package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"fashion-marketplace-backend/internal/identity"
)

// Designer is the marketplace profile attached to an auth user. Rank fields
// are maintained by stylebox XP awards; RevenueSharePct follows the tier
// unless RevenueOverride pins it.
type Designer struct {
	UserID          uuid.UUID
	Name            string
	BrandName       string
	AvatarURL       string
	Bio             string
	Instagram       string
	Website         string
	XP              int
	RankTier        identity.RankTier
	RevenueSharePct int
	RevenueOverride bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Computed by the admin list query, not stored.
	ProductCount    int
	CollectionCount int
}

type Stylebox struct {
	ID        uuid.UUID
	Title     string
	Brief     string
	StartsAt  time.Time
	EndsAt    time.Time
	XPReward  int
	CreatedAt time.Time
}

// Active reports whether the challenge window is open at t.
func (s *Stylebox) Active(t time.Time) bool {
	return !t.Before(s.StartsAt) && t.Before(s.EndsAt)
}

type StyleboxSubmission struct {
	ID          uuid.UUID
	StyleboxID  uuid.UUID
	DesignerID  uuid.UUID
	ProjectID   uuid.UUID
	Note        string
	SubmittedAt time.Time
}

type DraftEntityType string

const (
	DraftProduct DraftEntityType = "product"
	DraftArticle DraftEntityType = "article"
)

func ValidDraftEntityType(s string) bool {
	switch DraftEntityType(s) {
	case DraftProduct, DraftArticle:
		return true
	}
	return false
}

// Draft is a server-side auto-saved form payload, one row per designer and
// entity type. Deleted when the entity is successfully created.
type Draft struct {
	DesignerID uuid.UUID
	EntityType DraftEntityType
	Payload    json.RawMessage
	UpdatedAt  time.Time
}

type AuditEntry struct {
	ID         uuid.UUID
	UserID     uuid.NullUUID
	ActorEmail string
	Action     string
	Detail     string
	CreatedAt  time.Time
}
