package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"fashion-marketplace-backend/internal/models"
)

const orderColumns = `id, customer_email, designer_id, product_id, quantity, total_amount, status, created_at, updated_at`

func scanOrder(row interface{ Scan(...interface{}) error }) (*models.Order, error) {
	var o models.Order
	err := row.Scan(
		&o.ID, &o.CustomerEmail, &o.DesignerID, &o.ProductID,
		&o.Quantity, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}
	return &o, nil
}

func (c *Client) GetOrder(orderID uuid.UUID) (*models.Order, error) {
	row := c.db.QueryRow(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1
	`, orderID)
	return scanOrder(row)
}

func (c *Client) ListOrders(status string) ([]models.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders`
	var args []interface{}
	if status != "" {
		args = append(args, status)
		query += " WHERE status = $1"
	}
	query += " ORDER BY created_at DESC"

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (c *Client) ListOrdersByDesigner(designerID uuid.UUID) ([]models.Order, error) {
	rows, err := c.db.Query(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE designer_id = $1
		ORDER BY created_at DESC
	`, designerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (c *Client) UpdateOrderStatus(orderID uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	row := c.db.QueryRow(`
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+orderColumns+`
	`, status, orderID)
	return scanOrder(row)
}
