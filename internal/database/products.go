package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"fashion-marketplace-backend/internal/models"
)

const productColumns = `id, designer_id, title, description, price, inventory_count, status,
	images, tags, portfolio_publication_id, created_at, updated_at`

func scanProduct(row interface{ Scan(...interface{}) error }) (*models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ID, &p.DesignerID, &p.Title, &p.Description, &p.Price, &p.InventoryCount,
		&p.Status, &p.Images, &p.Tags, &p.PortfolioPublicationID, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}
	return &p, nil
}

func (c *Client) CreateProduct(designerID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error) {
	status := req.Status
	if status == "" {
		status = string(models.ProductDraft)
	}
	row := c.db.QueryRow(`
		INSERT INTO products (designer_id, title, description, price, inventory_count, status, images, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+productColumns+`
	`, designerID, req.Title, req.Description, req.Price, req.InventoryCount,
		status, pq.Array(req.Images), pq.Array(req.Tags))
	return scanProduct(row)
}

func (c *Client) GetProduct(productID uuid.UUID) (*models.Product, error) {
	row := c.db.QueryRow(`
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, productID)
	return scanProduct(row)
}

func (c *Client) ListProducts(status string, designerID uuid.NullUUID) ([]models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE 1=1`
	var args []interface{}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if designerID.Valid {
		args = append(args, designerID.UUID)
		query += fmt.Sprintf(" AND designer_id = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (c *Client) UpdateProduct(productID uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {
	row := c.db.QueryRow(`
		UPDATE products
		SET title = $1, description = $2, price = $3, inventory_count = $4,
			status = $5, images = $6, tags = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING `+productColumns+`
	`, req.Title, req.Description, req.Price, req.InventoryCount, req.Status,
		pq.Array(req.Images), pq.Array(req.Tags), productID)
	return scanProduct(row)
}

func (c *Client) DeleteProduct(productID uuid.UUID) error {
	res, err := c.db.Exec(`
		DELETE FROM products
		WHERE id = $1
	`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
