package database

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"fashion-marketplace-backend/internal/models"
)

// InsertAudit writes an audit-log row. Best effort: audit failures are
// logged and swallowed so they never fail the operation being audited.
func (c *Client) InsertAudit(entry *models.AuditEntry) error {
	_, err := c.db.Exec(`
		INSERT INTO audit_log (user_id, actor_email, action, detail)
		VALUES ($1, $2, $3, $4)
	`, entry.UserID, entry.ActorEmail, entry.Action, entry.Detail)
	if err != nil {
		log.Error().Err(err).Str("action", entry.Action).Msg("failed to write audit log")
	}
	return err
}

func (c *Client) ListAudit(action string, limit int) ([]models.AuditEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	query := `
		SELECT id, user_id, actor_email, action, detail, created_at
		FROM audit_log`
	var args []interface{}
	if action != "" {
		args = append(args, action)
		query += " WHERE action = $1"
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.AuditEntry
	for rows.Next() {
		var e models.AuditEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.ActorEmail, &e.Action, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// AuditUserID wraps an optional auth user id for the audit row.
func AuditUserID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}
