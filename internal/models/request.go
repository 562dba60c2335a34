package models

import "fmt"

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateProjectRequest struct {
	Title       string                 `json:"title" binding:"required"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Tags        []string               `json:"tags"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

type UpdateProjectRequest struct {
	Title       string                 `json:"title" binding:"required"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Tags        []string               `json:"tags"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

type SubmitPublicationRequest struct {
	RequestTitle       string `json:"request_title"`
	RequestDescription string `json:"request_description"`
}

type ReviewDecisionRequest struct {
	Decision      string `json:"decision" binding:"required"`
	Notes         string `json:"notes"`
	QualityRating int    `json:"quality_rating"`
}

// Validate enforces the review-form rules before anything touches the
// store: known decision, notes mandatory for the negative outcomes, rating
// in 1..5 when present.
func (r *ReviewDecisionRequest) Validate() error {
	switch RequestStatus(r.Decision) {
	case RequestUnderReview, RequestApproved, RequestRejected, RequestRevisionRequested:
	default:
		return fmt.Errorf("unknown decision %q", r.Decision)
	}
	if r.Notes == "" &&
		(RequestStatus(r.Decision) == RequestRejected || RequestStatus(r.Decision) == RequestRevisionRequested) {
		return fmt.Errorf("notes are required for decision %q", r.Decision)
	}
	if r.QualityRating != 0 && (r.QualityRating < 1 || r.QualityRating > 5) {
		return fmt.Errorf("quality_rating must be between 1 and 5")
	}
	return nil
}

type RevenueOverrideRequest struct {
	// Pointer so an explicit 0% override survives the required check.
	SharePct *int `json:"share_pct" binding:"required"`
}

type UpdateDesignerRequest struct {
	Name      string `json:"name"`
	BrandName string `json:"brand_name"`
	AvatarURL string `json:"avatar_url"`
	Bio       string `json:"bio"`
	Instagram string `json:"instagram"`
	Website   string `json:"website"`
}

type CreateProductRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	DesignerID     string   `json:"designer_id" binding:"required"`
	Price          float64  `json:"price"`
	InventoryCount int      `json:"inventory_count"`
	Status         string   `json:"status"`
	Images         []string `json:"images"`
	Tags           []string `json:"tags"`
}

type UpdateProductRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	InventoryCount int      `json:"inventory_count"`
	Status         string   `json:"status"`
	Images         []string `json:"images"`
	Tags           []string `json:"tags"`
}

type CreateCollectionRequest struct {
	Title         string `json:"title" binding:"required"`
	DesignerID    string `json:"designer_id" binding:"required"`
	Description   string `json:"description"`
	CoverImageURL string `json:"cover_image_url"`
}

type UpdateCollectionRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	CoverImageURL string `json:"cover_image_url"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

type CreateStyleboxRequest struct {
	Title    string `json:"title" binding:"required"`
	Brief    string `json:"brief" binding:"required"`
	StartsAt string `json:"starts_at" binding:"required"`
	EndsAt   string `json:"ends_at" binding:"required"`
	XPReward int    `json:"xp_reward"`
}

type SubmitStyleboxRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	Note      string `json:"note"`
}

type SaveDraftRequest struct {
	Payload map[string]interface{} `json:"payload" binding:"required"`
}
