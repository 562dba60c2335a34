package handlers

import (
	"encoding/json"

	"fashion-marketplace-backend/internal/models"
)

func toProjectResponse(p *models.Project) models.ProjectResponse {
	var metadata map[string]interface{}
	if len(p.Metadata) > 0 {
		json.Unmarshal(p.Metadata, &metadata)
	}
	return models.ProjectResponse{
		ID:          p.ID.String(),
		DesignerID:  p.DesignerID.String(),
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Status:      string(p.Status),
		Tags:        []string(p.Tags),
		Metadata:    metadata,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toAssetResponse(a *models.ProjectAsset) models.AssetResponse {
	return models.AssetResponse{
		ID:           a.ID.String(),
		ProjectID:    a.ProjectID.String(),
		Name:         a.Name,
		AssetType:    string(a.AssetType),
		URL:          a.URL,
		ThumbnailURL: a.ThumbnailURL,
		DisplayOrder: a.DisplayOrder,
		CreatedAt:    a.CreatedAt,
	}
}

func toPublicationResponse(r *models.PublicationRequest) models.PublicationResponse {
	resp := models.PublicationResponse{
		ID:                 r.ID.String(),
		DesignerID:         r.DesignerID.String(),
		ProjectID:          r.ProjectID.String(),
		RequestTitle:       r.RequestTitle,
		RequestDescription: r.RequestDescription,
		Status:             string(r.Status),
		SubmittedAt:        r.SubmittedAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	if r.ReviewedAt.Valid {
		t := r.ReviewedAt.Time
		resp.ReviewedAt = &t
	}
	if r.ReviewedBy.Valid {
		resp.ReviewedBy = r.ReviewedBy.UUID.String()
	}
	if r.AdminNotes.Valid {
		resp.AdminNotes = r.AdminNotes.String
	}
	if r.QualityRating.Valid {
		resp.QualityRating = int(r.QualityRating.Int64)
	}
	if r.RevenueSharePct.Valid {
		resp.RevenueSharePct = int(r.RevenueSharePct.Int64)
	}
	if r.MarketplaceConversionID.Valid {
		resp.MarketplaceConversionID = r.MarketplaceConversionID.UUID.String()
	}
	return resp
}

func toProductResponse(p *models.Product) models.ProductResponse {
	resp := models.ProductResponse{
		ID:             p.ID.String(),
		DesignerID:     p.DesignerID.String(),
		Title:          p.Title,
		Description:    p.Description,
		Price:          p.Price,
		InventoryCount: p.InventoryCount,
		Status:         string(p.Status),
		Images:         []string(p.Images),
		Tags:           []string(p.Tags),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.PortfolioPublicationID.Valid {
		resp.PortfolioPublicationID = p.PortfolioPublicationID.UUID.String()
	}
	return resp
}

func toDesignerResponse(d *models.Designer) models.DesignerResponse {
	return models.DesignerResponse{
		UserID:          d.UserID.String(),
		Name:            d.Name,
		BrandName:       d.BrandName,
		AvatarURL:       d.AvatarURL,
		Bio:             d.Bio,
		Instagram:       d.Instagram,
		Website:         d.Website,
		XP:              d.XP,
		RankTier:        string(d.RankTier),
		RevenueSharePct: d.RevenueSharePct,
		RevenueOverride: d.RevenueOverride,
		ProductCount:    d.ProductCount,
		CollectionCount: d.CollectionCount,
		CreatedAt:       d.CreatedAt,
	}
}

func toCollectionResponse(col *models.Collection) models.CollectionResponse {
	return models.CollectionResponse{
		ID:            col.ID.String(),
		DesignerID:    col.DesignerID.String(),
		Title:         col.Title,
		Description:   col.Description,
		CoverImageURL: col.CoverImageURL,
		ProductCount:  col.ProductCount,
		CreatedAt:     col.CreatedAt,
		UpdatedAt:     col.UpdatedAt,
	}
}

func toOrderResponse(o *models.Order) models.OrderResponse {
	return models.OrderResponse{
		ID:            o.ID.String(),
		CustomerEmail: o.CustomerEmail,
		DesignerID:    o.DesignerID.String(),
		ProductID:     o.ProductID.String(),
		Quantity:      o.Quantity,
		TotalAmount:   o.TotalAmount,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func toCategoryResponse(cat *models.Category) models.CategoryResponse {
	return models.CategoryResponse{
		ID:   cat.ID.String(),
		Name: cat.Name,
		Slug: cat.Slug,
	}
}

func toStyleboxResponse(s *models.Stylebox) models.StyleboxResponse {
	return models.StyleboxResponse{
		ID:       s.ID.String(),
		Title:    s.Title,
		Brief:    s.Brief,
		StartsAt: s.StartsAt,
		EndsAt:   s.EndsAt,
		XPReward: s.XPReward,
	}
}
