package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProjectStatus string

const (
	ProjectDraft      ProjectStatus = "draft"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectSubmitted  ProjectStatus = "submitted"
	ProjectPublished  ProjectStatus = "published"
)

type AssetType string

const (
	AssetImage    AssetType = "image"
	AssetVideo    AssetType = "video"
	AssetDocument AssetType = "document"
	Asset3DModel  AssetType = "3d_model"
	AssetOther    AssetType = "other"
)

// Project is a designer's private workspace entry, the lower layer of the
// dual-layer model. It only becomes visible in the marketplace through an
// approved publication request.
type Project struct {
	ID          uuid.UUID
	DesignerID  uuid.UUID
	Title       string
	Description string
	Category    string
	Status      ProjectStatus
	Tags        pq.StringArray
	Metadata    json.RawMessage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Images extracts the optional images array from the project metadata bag.
// Missing or malformed metadata yields an empty slice.
func (p *Project) Images() []string {
	if len(p.Metadata) == 0 {
		return []string{}
	}
	var meta struct {
		Images []string `json:"images"`
	}
	if err := json.Unmarshal(p.Metadata, &meta); err != nil || meta.Images == nil {
		return []string{}
	}
	return meta.Images
}

type ProjectAsset struct {
	ID           uuid.UUID
	ProjectID    uuid.UUID
	DesignerID   uuid.UUID
	Name         string
	AssetType    AssetType
	URL          string
	ThumbnailURL string
	DisplayOrder int
	Metadata     json.RawMessage
	CreatedAt    time.Time
}
