package models

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type SessionResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	Role         string `json:"role,omitempty"`
}

type MeResponse struct {
	UserID   string            `json:"user_id"`
	Role     string            `json:"role,omitempty"`
	IsAdmin  bool              `json:"is_admin"`
	Designer *DesignerResponse `json:"designer,omitempty"`
}

type ProjectResponse struct {
	ID          string                 `json:"id"`
	DesignerID  string                 `json:"designer_id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Category    string                 `json:"category,omitempty"`
	Status      string                 `json:"status"`
	Tags        []string               `json:"tags"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

type AssetResponse struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	Name         string    `json:"name"`
	AssetType    string    `json:"asset_type"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type AssetListResponse struct {
	Assets []AssetResponse `json:"assets"`
}

type PublicationResponse struct {
	ID                      string     `json:"id"`
	DesignerID              string     `json:"designer_id"`
	ProjectID               string     `json:"project_id"`
	RequestTitle            string     `json:"request_title"`
	RequestDescription      string     `json:"request_description,omitempty"`
	Status                  string     `json:"status"`
	SubmittedAt             time.Time  `json:"submitted_at"`
	ReviewedAt              *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy              string     `json:"reviewed_by,omitempty"`
	AdminNotes              string     `json:"admin_notes,omitempty"`
	QualityRating           int        `json:"quality_rating,omitempty"`
	RevenueSharePct         int        `json:"revenue_share_pct,omitempty"`
	MarketplaceConversionID string     `json:"marketplace_conversion_id,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

type PublicationListResponse struct {
	Publications []PublicationResponse `json:"publications"`
}

type ProductResponse struct {
	ID                     string    `json:"id"`
	DesignerID             string    `json:"designer_id"`
	Title                  string    `json:"title"`
	Description            string    `json:"description,omitempty"`
	Price                  float64   `json:"price"`
	InventoryCount         int       `json:"inventory_count"`
	Status                 string    `json:"status"`
	Images                 []string  `json:"images"`
	Tags                   []string  `json:"tags"`
	PortfolioPublicationID string    `json:"portfolio_publication_id,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

type DesignerResponse struct {
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	BrandName       string    `json:"brand_name,omitempty"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	Instagram       string    `json:"instagram,omitempty"`
	Website         string    `json:"website,omitempty"`
	XP              int       `json:"xp"`
	RankTier        string    `json:"rank_tier"`
	RevenueSharePct int       `json:"revenue_share_pct"`
	RevenueOverride bool      `json:"revenue_override"`
	ProductCount    int       `json:"product_count"`
	CollectionCount int       `json:"collection_count"`
	CreatedAt       time.Time `json:"created_at"`
}

type DesignerListResponse struct {
	Designers []DesignerResponse `json:"designers"`
}

type CollectionResponse struct {
	ID            string    `json:"id"`
	DesignerID    string    `json:"designer_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	CoverImageURL string    `json:"cover_image_url,omitempty"`
	ProductCount  int       `json:"product_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CollectionListResponse struct {
	Collections []CollectionResponse `json:"collections"`
}

type OrderResponse struct {
	ID            string    `json:"id"`
	CustomerEmail string    `json:"customer_email"`
	DesignerID    string    `json:"designer_id"`
	ProductID     string    `json:"product_id"`
	Quantity      int       `json:"quantity"`
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type StyleboxResponse struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Brief    string    `json:"brief"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	XPReward int       `json:"xp_reward"`
}

type StyleboxListResponse struct {
	Styleboxes []StyleboxResponse `json:"styleboxes"`
}

type StyleboxSubmissionResponse struct {
	ID          string    `json:"id"`
	StyleboxID  string    `json:"stylebox_id"`
	ProjectID   string    `json:"project_id"`
	XPAwarded   int       `json:"xp_awarded"`
	NewXP       int       `json:"new_xp"`
	RankTier    string    `json:"rank_tier"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type DraftResponse struct {
	EntityType string                 `json:"entity_type"`
	Payload    map[string]interface{} `json:"payload"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

type DesignerDashboardResponse struct {
	ProjectsByStatus    map[string]int `json:"projects_by_status"`
	PendingPublications int            `json:"pending_publications"`
	Products            int            `json:"products"`
	Orders              int            `json:"orders"`
	GrossSales          float64        `json:"gross_sales"`
	EarnedShare         float64        `json:"earned_share"`
}

type AdminDashboardResponse struct {
	Designers           int     `json:"designers"`
	Products            int     `json:"products"`
	Orders              int     `json:"orders"`
	GrossSales          float64 `json:"gross_sales"`
	PendingPublications int     `json:"pending_publications"`
}
