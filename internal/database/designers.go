package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"fashion-marketplace-backend/internal/identity"
	"fashion-marketplace-backend/internal/models"
)

const designerColumns = `user_id, name, brand_name, avatar_url, bio, instagram, website,
	xp, rank_tier, revenue_share_pct, revenue_override, created_at, updated_at`

func scanDesigner(row interface{ Scan(...interface{}) error }, d *models.Designer, extra ...interface{}) error {
	dest := []interface{}{
		&d.UserID, &d.Name, &d.BrandName, &d.AvatarURL, &d.Bio, &d.Instagram, &d.Website,
		&d.XP, &d.RankTier, &d.RevenueSharePct, &d.RevenueOverride, &d.CreatedAt, &d.UpdatedAt,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}

func (c *Client) CreateDesigner(userID uuid.UUID, name string) (*models.Designer, error) {
	var d models.Designer
	err := scanDesigner(c.db.QueryRow(`
		INSERT INTO designers (user_id, name)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = NOW()
		RETURNING `+designerColumns+`
	`, userID, name), &d)
	if err != nil {
		return nil, fmt.Errorf("failed to create designer: %w", err)
	}
	return &d, nil
}

func (c *Client) GetDesigner(userID uuid.UUID) (*models.Designer, error) {
	var d models.Designer
	err := scanDesigner(c.db.QueryRow(`
		SELECT `+designerColumns+`
		FROM designers
		WHERE user_id = $1
	`, userID), &d)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get designer: %w", err)
	}
	return &d, nil
}

// ListDesigners includes per-row product and collection counts in the list
// query itself instead of issuing one count query per row.
func (c *Client) ListDesigners() ([]models.Designer, error) {
	rows, err := c.db.Query(`
		SELECT ` + designerColumns + `,
			(SELECT COUNT(*) FROM products p WHERE p.designer_id = d.user_id),
			(SELECT COUNT(*) FROM collections col WHERE col.designer_id = d.user_id)
		FROM designers d
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list designers: %w", err)
	}
	defer rows.Close()

	var designers []models.Designer
	for rows.Next() {
		var d models.Designer
		if err := scanDesigner(rows, &d, &d.ProductCount, &d.CollectionCount); err != nil {
			return nil, fmt.Errorf("failed to scan designer: %w", err)
		}
		designers = append(designers, d)
	}
	return designers, rows.Err()
}

func (c *Client) UpdateDesigner(userID uuid.UUID, req *models.UpdateDesignerRequest) (*models.Designer, error) {
	var d models.Designer
	err := scanDesigner(c.db.QueryRow(`
		UPDATE designers
		SET name = $1, brand_name = $2, avatar_url = $3, bio = $4, instagram = $5, website = $6, updated_at = NOW()
		WHERE user_id = $7
		RETURNING `+designerColumns+`
	`, req.Name, req.BrandName, req.AvatarURL, req.Bio, req.Instagram, req.Website, userID), &d)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update designer: %w", err)
	}
	return &d, nil
}

// AwardXP adds stylebox XP and recomputes the rank tier. The revenue share
// follows the new tier unless a superadmin override pinned it.
func (c *Client) AwardXP(userID uuid.UUID, xp int) (*models.Designer, error) {
	d, err := c.GetDesigner(userID)
	if err != nil {
		return nil, err
	}

	newXP := d.XP + xp
	tier := identity.TierForXP(newXP)
	share := d.RevenueSharePct
	if !d.RevenueOverride {
		share = identity.RevenueShareForTier(tier)
	}

	var out models.Designer
	err = scanDesigner(c.db.QueryRow(`
		UPDATE designers
		SET xp = $1, rank_tier = $2, revenue_share_pct = $3, updated_at = NOW()
		WHERE user_id = $4
		RETURNING `+designerColumns+`
	`, newXP, tier, share, userID), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to award xp: %w", err)
	}
	return &out, nil
}

// OverrideRevenueShare pins a manual percentage on the profile. The value
// is clamped by the caller; the override flag stops tier recomputation from
// touching it again.
func (c *Client) OverrideRevenueShare(userID uuid.UUID, pct int) (*models.Designer, error) {
	var d models.Designer
	err := scanDesigner(c.db.QueryRow(`
		UPDATE designers
		SET revenue_share_pct = $1, revenue_override = TRUE, updated_at = NOW()
		WHERE user_id = $2
		RETURNING `+designerColumns+`
	`, pct, userID), &d)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to override revenue share: %w", err)
	}
	return &d, nil
}
