package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"fashion-marketplace-backend/internal/models"
)

const assetColumns = `id, project_id, designer_id, name, asset_type, url, thumbnail_url, display_order, metadata, created_at`

func (c *Client) CreateAsset(asset *models.ProjectAsset) (*models.ProjectAsset, error) {
	metadata := asset.Metadata
	if len(metadata) == 0 {
		metadata = []byte(`{}`)
	}

	var out models.ProjectAsset
	err := c.db.QueryRow(`
		INSERT INTO project_assets (project_id, designer_id, name, asset_type, url, thumbnail_url, display_order, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+assetColumns+`
	`, asset.ProjectID, asset.DesignerID, asset.Name, asset.AssetType, asset.URL,
		asset.ThumbnailURL, asset.DisplayOrder, metadata,
	).Scan(
		&out.ID, &out.ProjectID, &out.DesignerID, &out.Name, &out.AssetType,
		&out.URL, &out.ThumbnailURL, &out.DisplayOrder, &out.Metadata, &out.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}
	return &out, nil
}

func (c *Client) ListAssets(projectID uuid.UUID) ([]models.ProjectAsset, error) {
	rows, err := c.db.Query(`
		SELECT `+assetColumns+`
		FROM project_assets
		WHERE project_id = $1
		ORDER BY display_order ASC, created_at ASC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []models.ProjectAsset
	for rows.Next() {
		var a models.ProjectAsset
		err := rows.Scan(
			&a.ID, &a.ProjectID, &a.DesignerID, &a.Name, &a.AssetType,
			&a.URL, &a.ThumbnailURL, &a.DisplayOrder, &a.Metadata, &a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (c *Client) GetAsset(assetID uuid.UUID) (*models.ProjectAsset, error) {
	var a models.ProjectAsset
	err := c.db.QueryRow(`
		SELECT `+assetColumns+`
		FROM project_assets
		WHERE id = $1
	`, assetID).Scan(
		&a.ID, &a.ProjectID, &a.DesignerID, &a.Name, &a.AssetType,
		&a.URL, &a.ThumbnailURL, &a.DisplayOrder, &a.Metadata, &a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return &a, nil
}

func (c *Client) DeleteAsset(assetID, designerID uuid.UUID) error {
	res, err := c.db.Exec(`
		DELETE FROM project_assets
		WHERE id = $1 AND designer_id = $2
	`, assetID, designerID)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
