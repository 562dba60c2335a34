package supabase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go/types"
)

// Session is what the portals need from a Supabase auth session.
type Session struct {
	AccessToken  string
	RefreshToken string
	UserID       uuid.UUID
	Email        string
}

// SignUp registers the user with Supabase auth and signs them straight in,
// so the caller gets a usable session either way the instance is configured.
func (c *Client) SignUp(email, password string) (*Session, error) {
	_, err := c.Supabase.Auth.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}

	return c.SignIn(email, password)
}

func (c *Client) SignIn(email, password string) (*Session, error) {
	resp, err := c.Supabase.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("sign in failed: %w", err)
	}

	return &Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		UserID:       resp.User.ID,
		Email:        resp.User.Email,
	}, nil
}

// SignOut revokes the session behind the token. Local scope only: other
// sessions for the same user stay valid.
func (c *Client) SignOut(accessToken string) error {
	if err := c.Supabase.Auth.WithToken(accessToken).Logout(); err != nil {
		return fmt.Errorf("sign out failed: %w", err)
	}
	return nil
}
