package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"fashion-marketplace-backend/internal/models"
)

const styleboxColumns = `id, title, brief, starts_at, ends_at, xp_reward, created_at`

func (c *Client) CreateStylebox(title, brief string, startsAt, endsAt time.Time, xpReward int) (*models.Stylebox, error) {
	var s models.Stylebox
	err := c.db.QueryRow(`
		INSERT INTO styleboxes (title, brief, starts_at, ends_at, xp_reward)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+styleboxColumns+`
	`, title, brief, startsAt, endsAt, xpReward).Scan(
		&s.ID, &s.Title, &s.Brief, &s.StartsAt, &s.EndsAt, &s.XPReward, &s.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create stylebox: %w", err)
	}
	return &s, nil
}

func (c *Client) GetStylebox(styleboxID uuid.UUID) (*models.Stylebox, error) {
	var s models.Stylebox
	err := c.db.QueryRow(`
		SELECT `+styleboxColumns+`
		FROM styleboxes
		WHERE id = $1
	`, styleboxID).Scan(
		&s.ID, &s.Title, &s.Brief, &s.StartsAt, &s.EndsAt, &s.XPReward, &s.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stylebox: %w", err)
	}
	return &s, nil
}

// ListActiveStyleboxes returns the briefs whose window contains now.
func (c *Client) ListActiveStyleboxes(now time.Time) ([]models.Stylebox, error) {
	rows, err := c.db.Query(`
		SELECT `+styleboxColumns+`
		FROM styleboxes
		WHERE starts_at <= $1 AND ends_at > $1
		ORDER BY ends_at ASC
	`, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list styleboxes: %w", err)
	}
	defer rows.Close()

	var styleboxes []models.Stylebox
	for rows.Next() {
		var s models.Stylebox
		err := rows.Scan(&s.ID, &s.Title, &s.Brief, &s.StartsAt, &s.EndsAt, &s.XPReward, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stylebox: %w", err)
		}
		styleboxes = append(styleboxes, s)
	}
	return styleboxes, rows.Err()
}

// CreateStyleboxSubmission records the entry. The unique constraint on
// (stylebox_id, designer_id) enforces the once-per-designer rule.
func (c *Client) CreateStyleboxSubmission(styleboxID, designerID, projectID uuid.UUID, note string) (*models.StyleboxSubmission, error) {
	var sub models.StyleboxSubmission
	err := c.db.QueryRow(`
		INSERT INTO stylebox_submissions (stylebox_id, designer_id, project_id, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id, stylebox_id, designer_id, project_id, note, submitted_at
	`, styleboxID, designerID, projectID, note).Scan(
		&sub.ID, &sub.StyleboxID, &sub.DesignerID, &sub.ProjectID, &sub.Note, &sub.SubmittedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, fmt.Errorf("%w: already submitted to this stylebox", ErrConflict)
		}
		return nil, fmt.Errorf("failed to create stylebox submission: %w", err)
	}
	return &sub, nil
}
