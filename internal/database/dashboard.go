package database

import (
	"fmt"

	"github.com/google/uuid"

	"fashion-marketplace-backend/internal/models"
)

// DesignerDashboard aggregates a designer's own counts and sales. The
// earned share applies the profile's current revenue percentage to paid
// order totals.
func (c *Client) DesignerDashboard(designerID uuid.UUID) (*models.DesignerDashboardResponse, error) {
	out := &models.DesignerDashboardResponse{
		ProjectsByStatus: map[string]int{},
	}

	rows, err := c.db.Query(`
		SELECT status, COUNT(*)
		FROM projects
		WHERE designer_id = $1
		GROUP BY status
	`, designerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		out.ProjectsByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = c.db.QueryRow(`
		SELECT COUNT(*)
		FROM publication_requests
		WHERE designer_id = $1 AND status IN ('pending', 'under_review')
	`, designerID).Scan(&out.PendingPublications)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending publications: %w", err)
	}

	err = c.db.QueryRow(`
		SELECT COUNT(*)
		FROM products
		WHERE designer_id = $1
	`, designerID).Scan(&out.Products)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	err = c.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE designer_id = $1 AND status NOT IN ('cancelled')
	`, designerID).Scan(&out.Orders, &out.GrossSales)
	if err != nil {
		return nil, fmt.Errorf("failed to sum orders: %w", err)
	}

	var sharePct int
	err = c.db.QueryRow(`
		SELECT revenue_share_pct FROM designers WHERE user_id = $1
	`, designerID).Scan(&sharePct)
	if err == nil {
		out.EarnedShare = out.GrossSales * float64(sharePct) / 100
	}

	return out, nil
}

func (c *Client) AdminDashboard() (*models.AdminDashboardResponse, error) {
	out := &models.AdminDashboardResponse{}

	err := c.db.QueryRow(`SELECT COUNT(*) FROM designers`).Scan(&out.Designers)
	if err != nil {
		return nil, fmt.Errorf("failed to count designers: %w", err)
	}
	err = c.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&out.Products)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	err = c.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE status NOT IN ('cancelled')
	`).Scan(&out.Orders, &out.GrossSales)
	if err != nil {
		return nil, fmt.Errorf("failed to sum orders: %w", err)
	}
	err = c.db.QueryRow(`
		SELECT COUNT(*)
		FROM publication_requests
		WHERE status IN ('pending', 'under_review')
	`).Scan(&out.PendingPublications)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending publications: %w", err)
	}

	return out, nil
}
