package database

import (
	"fmt"

	"github.com/google/uuid"
)

// GetUserRoles returns every role row stored for a user. Resolution to a
// single effective role happens in the identity package; this is re-read on
// each request and never cached.
func (c *Client) GetUserRoles(userID uuid.UUID) ([]string, error) {
	rows, err := c.db.Query(`
		SELECT role
		FROM user_roles
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user roles: %w", err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (c *Client) AssignRole(userID uuid.UUID, role string) error {
	_, err := c.db.Exec(`
		INSERT INTO user_roles (user_id, role)
		VALUES ($1, $2)
		ON CONFLICT (user_id, role) DO NOTHING
	`, userID, role)
	return err
}
