package database

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"fashion-marketplace-backend/internal/models"
)

func (c *Client) ListCategories() ([]models.Category, error) {
	rows, err := c.db.Query(`
		SELECT id, name, slug, created_at
		FROM categories
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (c *Client) CreateCategory(req *models.CreateCategoryRequest) (*models.Category, error) {
	var cat models.Category
	err := c.db.QueryRow(`
		INSERT INTO categories (name, slug)
		VALUES ($1, $2)
		RETURNING id, name, slug, created_at
	`, req.Name, req.Slug).Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, fmt.Errorf("%w: slug already exists", ErrConflict)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &cat, nil
}

func (c *Client) DeleteCategory(categoryID uuid.UUID) error {
	res, err := c.db.Exec(`
		DELETE FROM categories
		WHERE id = $1
	`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
