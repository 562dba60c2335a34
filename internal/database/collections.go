package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"fashion-marketplace-backend/internal/models"
)

const collectionColumns = `id, designer_id, title, description, cover_image_url, created_at, updated_at`

func scanCollection(row interface{ Scan(...interface{}) error }, extra ...interface{}) (*models.Collection, error) {
	var col models.Collection
	dest := []interface{}{
		&col.ID, &col.DesignerID, &col.Title, &col.Description,
		&col.CoverImageURL, &col.CreatedAt, &col.UpdatedAt,
	}
	dest = append(dest, extra...)
	err := row.Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan collection: %w", err)
	}
	return &col, nil
}

func (c *Client) CreateCollection(designerID uuid.UUID, req *models.CreateCollectionRequest) (*models.Collection, error) {
	return scanCollection(c.db.QueryRow(`
		INSERT INTO collections (designer_id, title, description, cover_image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING `+collectionColumns+`
	`, designerID, req.Title, req.Description, req.CoverImageURL))
}

func (c *Client) ListCollections() ([]models.Collection, error) {
	rows, err := c.db.Query(`
		SELECT ` + collectionColumns + `,
			(SELECT COUNT(*) FROM collection_products cp WHERE cp.collection_id = collections.id)
		FROM collections
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	var collections []models.Collection
	for rows.Next() {
		var count int
		col, err := scanCollection(rows, &count)
		if err != nil {
			return nil, err
		}
		col.ProductCount = count
		collections = append(collections, *col)
	}
	return collections, rows.Err()
}

func (c *Client) UpdateCollection(collectionID uuid.UUID, req *models.UpdateCollectionRequest) (*models.Collection, error) {
	return scanCollection(c.db.QueryRow(`
		UPDATE collections
		SET title = $1, description = $2, cover_image_url = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING `+collectionColumns+`
	`, req.Title, req.Description, req.CoverImageURL, collectionID))
}

func (c *Client) DeleteCollection(collectionID uuid.UUID) error {
	res, err := c.db.Exec(`
		DELETE FROM collections
		WHERE id = $1
	`, collectionID)
	if err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *Client) AddProductToCollection(collectionID, productID uuid.UUID) error {
	_, err := c.db.Exec(`
		INSERT INTO collection_products (collection_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, collectionID, productID)
	return err
}

func (c *Client) RemoveProductFromCollection(collectionID, productID uuid.UUID) error {
	_, err := c.db.Exec(`
		DELETE FROM collection_products
		WHERE collection_id = $1 AND product_id = $2
	`, collectionID, productID)
	return err
}
