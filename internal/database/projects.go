package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"fashion-marketplace-backend/internal/models"
)

const projectColumns = `id, designer_id, title, description, category, status, tags, metadata, created_at, updated_at`

func scanProject(row interface{ Scan(...interface{}) error }) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID, &p.DesignerID, &p.Title, &p.Description, &p.Category,
		&p.Status, &p.Tags, &p.Metadata, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}
	return &p, nil
}

func (c *Client) CreateProject(designerID uuid.UUID, req *models.CreateProjectRequest) (*models.Project, error) {
	metadataJSON, _ := json.Marshal(req.Metadata)
	if req.Metadata == nil {
		metadataJSON = []byte(`{}`)
	}

	row := c.db.QueryRow(`
		INSERT INTO projects (designer_id, title, description, category, status, tags, metadata)
		VALUES ($1, $2, $3, $4, 'draft', $5, $6)
		RETURNING `+projectColumns+`
	`, designerID, req.Title, req.Description, req.Category, pq.Array(req.Tags), metadataJSON)
	return scanProject(row)
}

// GetProject fetches a project by id with no ownership scope. Callers that
// act on behalf of a designer must compare DesignerID themselves so the
// failure can be reported as unauthorized rather than not found.
func (c *Client) GetProject(projectID uuid.UUID) (*models.Project, error) {
	row := c.db.QueryRow(`
		SELECT `+projectColumns+`
		FROM projects
		WHERE id = $1
	`, projectID)
	return scanProject(row)
}

func (c *Client) ListProjects(designerID uuid.UUID, status, category string) ([]models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE designer_id = $1`
	args := []interface{}{designerID}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	query += " ORDER BY updated_at DESC"

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// UpdateProject rewrites the editable fields of a draft project. The WHERE
// clause re-asserts ownership and draft status so a concurrent change
// cannot slip a write onto a row the caller no longer controls.
func (c *Client) UpdateProject(projectID, designerID uuid.UUID, req *models.UpdateProjectRequest) (*models.Project, error) {
	current, err := c.GetProject(projectID)
	if err != nil {
		return nil, err
	}
	if current.DesignerID != designerID {
		return nil, ErrUnauthorized
	}
	if current.Status != models.ProjectDraft {
		return nil, fmt.Errorf("%w: project is not editable in status %q", ErrConflict, current.Status)
	}

	metadataJSON, _ := json.Marshal(req.Metadata)
	if req.Metadata == nil {
		metadataJSON = current.Metadata
	}

	row := c.db.QueryRow(`
		UPDATE projects
		SET title = $1, description = $2, category = $3, tags = $4, metadata = $5, updated_at = NOW()
		WHERE id = $6 AND designer_id = $7 AND status = 'draft'
		RETURNING `+projectColumns+`
	`, req.Title, req.Description, req.Category, pq.Array(req.Tags), metadataJSON, projectID, designerID)
	return scanProject(row)
}

func (c *Client) UpdateProjectStatus(projectID uuid.UUID, status models.ProjectStatus) error {
	_, err := c.db.Exec(`
		UPDATE projects
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, status, projectID)
	return err
}

func (c *Client) DeleteProject(projectID, designerID uuid.UUID) error {
	current, err := c.GetProject(projectID)
	if err != nil {
		return err
	}
	if current.DesignerID != designerID {
		return ErrUnauthorized
	}

	// Cascade removes assets and publication requests.
	_, err = c.db.Exec(`
		DELETE FROM projects
		WHERE id = $1 AND designer_id = $2
	`, projectID, designerID)
	return err
}
