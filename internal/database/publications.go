package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"fashion-marketplace-backend/internal/models"
)

const requestColumns = `id, designer_id, project_id, request_title, request_description, status,
	submitted_at, reviewed_at, reviewed_by, admin_notes, quality_rating, revenue_share_pct,
	marketplace_conversion_id, created_at, updated_at`

func scanRequest(row interface{ Scan(...interface{}) error }) (*models.PublicationRequest, error) {
	var r models.PublicationRequest
	err := row.Scan(
		&r.ID, &r.DesignerID, &r.ProjectID, &r.RequestTitle, &r.RequestDescription, &r.Status,
		&r.SubmittedAt, &r.ReviewedAt, &r.ReviewedBy, &r.AdminNotes, &r.QualityRating,
		&r.RevenueSharePct, &r.MarketplaceConversionID, &r.CreatedAt, &r.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan publication request: %w", err)
	}
	return &r, nil
}

func (c *Client) GetRequest(requestID uuid.UUID) (*models.PublicationRequest, error) {
	row := c.db.QueryRow(`
		SELECT `+requestColumns+`
		FROM publication_requests
		WHERE id = $1
	`, requestID)
	return scanRequest(row)
}

// HasOpenRequest reports whether the project already has a request awaiting
// a decision. One open request per project at a time.
func (c *Client) HasOpenRequest(projectID uuid.UUID) (bool, error) {
	var count int
	err := c.db.QueryRow(`
		SELECT COUNT(*)
		FROM publication_requests
		WHERE project_id = $1 AND status IN ('pending', 'under_review')
	`, projectID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check open requests: %w", err)
	}
	return count > 0, nil
}

// CreateSubmission inserts the pending request and flips the project to
// submitted in one transaction.
func (c *Client) CreateSubmission(project *models.Project, title, description string) (*models.PublicationRequest, error) {
	tx, err := c.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	req, err := scanRequest(tx.QueryRow(`
		INSERT INTO publication_requests (designer_id, project_id, request_title, request_description)
		VALUES ($1, $2, $3, $4)
		RETURNING `+requestColumns+`
	`, project.DesignerID, project.ID, title, description))
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(`
		UPDATE projects
		SET status = 'submitted', updated_at = NOW()
		WHERE id = $1
	`, project.ID); err != nil {
		return nil, fmt.Errorf("failed to mark project submitted: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit submission: %w", err)
	}
	return req, nil
}

func (c *Client) ListRequestsByDesigner(designerID uuid.UUID) ([]models.PublicationRequest, error) {
	return c.listRequests(`WHERE designer_id = $1`, designerID)
}

func (c *Client) ListRequestsByStatus(status string) ([]models.PublicationRequest, error) {
	if status == "" {
		return c.listRequests(``)
	}
	return c.listRequests(`WHERE status = $1`, status)
}

func (c *Client) listRequests(where string, args ...interface{}) ([]models.PublicationRequest, error) {
	rows, err := c.db.Query(`
		SELECT `+requestColumns+`
		FROM publication_requests
		`+where+`
		ORDER BY submitted_at DESC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list publication requests: %w", err)
	}
	defer rows.Close()

	var requests []models.PublicationRequest
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *r)
	}
	return requests, rows.Err()
}

// RecordDecision applies a non-approving decision: the request row, the
// review-history entry and the project status side effect commit together.
// nextProjectStatus may be empty when the project should not move.
func (c *Client) RecordDecision(requestID, reviewerID uuid.UUID, decision models.RequestStatus, notes string, rating int, nextProjectStatus models.ProjectStatus) (*models.PublicationRequest, error) {
	tx, err := c.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	req, err := scanRequest(tx.QueryRow(`
		UPDATE publication_requests
		SET status = $1, reviewed_at = NOW(), reviewed_by = $2,
			admin_notes = NULLIF($3, ''), quality_rating = NULLIF($4, 0), updated_at = NOW()
		WHERE id = $5
		RETURNING `+requestColumns+`
	`, decision, reviewerID, notes, rating, requestID))
	if err != nil {
		return nil, err
	}

	if err := insertReviewHistory(tx, req.ID, reviewerID, decision, notes, rating); err != nil {
		return nil, err
	}

	if nextProjectStatus != "" {
		if _, err := tx.Exec(`
			UPDATE projects
			SET status = $1, updated_at = NOW()
			WHERE id = $2
		`, nextProjectStatus, req.ProjectID); err != nil {
			return nil, fmt.Errorf("failed to update project status: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit decision: %w", err)
	}
	return req, nil
}

// ApproveAndConvert is the approval path. The decision fields, the new
// marketplace product, the conversion back-reference, the project's
// published status and the review-history entry commit in one transaction,
// so a request can never end up approved without its conversion id.
func (c *Client) ApproveAndConvert(requestID, reviewerID uuid.UUID, notes string, rating, sharePct int) (*models.PublicationRequest, *models.Product, error) {
	tx, err := c.db.Begin()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	req, err := scanRequest(tx.QueryRow(`
		SELECT `+requestColumns+`
		FROM publication_requests
		WHERE id = $1
		FOR UPDATE
	`, requestID))
	if err != nil {
		return nil, nil, err
	}
	if req.MarketplaceConversionID.Valid {
		return nil, nil, fmt.Errorf("%w: request already converted", ErrConflict)
	}

	project, err := scanProject(tx.QueryRow(`
		SELECT `+projectColumns+`
		FROM projects
		WHERE id = $1
		FOR UPDATE
	`, req.ProjectID))
	if err != nil {
		return nil, nil, err
	}

	var product models.Product
	err = tx.QueryRow(`
		INSERT INTO products (designer_id, title, description, price, inventory_count, status, images, tags, portfolio_publication_id)
		VALUES ($1, $2, $3, 0, 0, 'draft', $4, $5, $6)
		RETURNING id, designer_id, title, description, price, inventory_count, status, images, tags, portfolio_publication_id, created_at, updated_at
	`, project.DesignerID, project.Title, project.Description,
		pq.Array(project.Images()), project.Tags, req.ID,
	).Scan(
		&product.ID, &product.DesignerID, &product.Title, &product.Description,
		&product.Price, &product.InventoryCount, &product.Status, &product.Images,
		&product.Tags, &product.PortfolioPublicationID, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert product: %w", err)
	}

	req, err = scanRequest(tx.QueryRow(`
		UPDATE publication_requests
		SET status = 'approved', reviewed_at = NOW(), reviewed_by = $1,
			admin_notes = NULLIF($2, ''), quality_rating = NULLIF($3, 0),
			revenue_share_pct = $4, marketplace_conversion_id = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING `+requestColumns+`
	`, reviewerID, notes, rating, sharePct, product.ID, requestID))
	if err != nil {
		return nil, nil, err
	}

	if _, err := tx.Exec(`
		UPDATE projects
		SET status = 'published', updated_at = NOW()
		WHERE id = $1
	`, project.ID); err != nil {
		return nil, nil, fmt.Errorf("failed to publish project: %w", err)
	}

	if err := insertReviewHistory(tx, req.ID, reviewerID, models.RequestApproved, notes, rating); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit approval: %w", err)
	}
	return req, &product, nil
}

func insertReviewHistory(tx *sql.Tx, requestID, reviewerID uuid.UUID, decision models.RequestStatus, notes string, rating int) error {
	_, err := tx.Exec(`
		INSERT INTO review_history (request_id, reviewer_id, decision, notes, quality_rating)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, 0))
	`, requestID, reviewerID, decision, notes, rating)
	if err != nil {
		return fmt.Errorf("failed to insert review history: %w", err)
	}
	return nil
}

func (c *Client) ListReviewHistory(requestID uuid.UUID) ([]models.ReviewHistoryEntry, error) {
	rows, err := c.db.Query(`
		SELECT id, request_id, reviewer_id, decision, notes, quality_rating, created_at
		FROM review_history
		WHERE request_id = $1
		ORDER BY created_at ASC
	`, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list review history: %w", err)
	}
	defer rows.Close()

	var entries []models.ReviewHistoryEntry
	for rows.Next() {
		var e models.ReviewHistoryEntry
		err := rows.Scan(&e.ID, &e.RequestID, &e.ReviewerID, &e.Decision, &e.Notes, &e.QualityRating, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review history: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
