package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"fashion-marketplace-backend/internal/models"
)

// SaveDraft upserts the single auto-save row per (designer, entity type).
func (c *Client) SaveDraft(designerID uuid.UUID, entityType models.DraftEntityType, payload []byte) (*models.Draft, error) {
	var d models.Draft
	err := c.db.QueryRow(`
		INSERT INTO drafts (designer_id, entity_type, payload, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (designer_id, entity_type)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
		RETURNING designer_id, entity_type, payload, updated_at
	`, designerID, entityType, payload).Scan(&d.DesignerID, &d.EntityType, &d.Payload, &d.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return &d, nil
}

func (c *Client) GetDraft(designerID uuid.UUID, entityType models.DraftEntityType) (*models.Draft, error) {
	var d models.Draft
	err := c.db.QueryRow(`
		SELECT designer_id, entity_type, payload, updated_at
		FROM drafts
		WHERE designer_id = $1 AND entity_type = $2
	`, designerID, entityType).Scan(&d.DesignerID, &d.EntityType, &d.Payload, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	return &d, nil
}

func (c *Client) DeleteDraft(designerID uuid.UUID, entityType models.DraftEntityType) error {
	_, err := c.db.Exec(`
		DELETE FROM drafts
		WHERE designer_id = $1 AND entity_type = $2
	`, designerID, entityType)
	return err
}
