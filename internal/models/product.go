package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProductStatus string

const (
	ProductDraft    ProductStatus = "draft"
	ProductActive   ProductStatus = "active"
	ProductArchived ProductStatus = "archived"
)

// Product is the upper, public layer of the dual-layer model. Conversion
// from an approved publication request creates one with price 0, inventory 0
// and draft status; an admin prices and activates it afterwards.
type Product struct {
	ID                     uuid.UUID
	DesignerID             uuid.UUID
	Title                  string
	Description            string
	Price                  float64
	InventoryCount         int
	Status                 ProductStatus
	Images                 pq.StringArray
	Tags                   pq.StringArray
	PortfolioPublicationID uuid.NullUUID
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

type Collection struct {
	ID            uuid.UUID
	DesignerID    uuid.UUID
	Title         string
	Description   string
	CoverImageURL string
	ProductCount  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Category struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	CreatedAt time.Time
}
