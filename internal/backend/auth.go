package backend

import (
	"context"
	"fmt"

	"eso-store-web/internal/model"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the response of POST /auth/login.
type LoginResult struct {
	AccessToken string            `json:"accessToken"`
	User        model.SessionUser `json:"user"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisteredUser is the response of POST /auth/register. Registration does
// not sign the user in; no token is issued here.
type RegisteredUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Login handles POST /auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	err := c.post(ctx, "", "/auth/login", loginRequest{Email: email, Password: password}, &result)
	if err != nil {
		return nil, err
	}
	if result.AccessToken == "" {
		return nil, fmt.Errorf("login response carried no access token")
	}
	return &result, nil
}

// Register handles POST /auth/register.
func (c *Client) Register(ctx context.Context, name, email, password string) (*RegisteredUser, error) {
	var user RegisteredUser
	err := c.post(ctx, "", "/auth/register", registerRequest{Name: name, Email: email, Password: password}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
