package api

import (
	"context"
	"fmt"

	"github.com/ahmchowd27/safesnap-client/internal/client/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// authResponse is all the backend returns on login/register: a bearer token
// and the role. No user id, no profile.
type authResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Login exchanges credentials for a bearer token and the user's role.
func (g *Gateway) Login(ctx context.Context, email, password string) (string, models.Role, error) {
	var resp authResponse
	if err := g.Post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", "", err
	}
	if resp.Token == "" {
		return "", "", fmt.Errorf("login response carries no token")
	}
	role, err := models.ParseRole(resp.Role)
	if err != nil {
		return "", "", fmt.Errorf("login response: %w", err)
	}
	return resp.Token, role, nil
}

// Register creates an account and logs it in within one call.
func (g *Gateway) Register(ctx context.Context, name, email, password string, role models.Role) (string, models.Role, error) {
	body := registerRequest{Name: name, Email: email, Password: password, Role: role.String()}

	var resp authResponse
	if err := g.Post(ctx, "/auth/register", body, &resp); err != nil {
		return "", "", err
	}
	if resp.Token == "" {
		return "", "", fmt.Errorf("register response carries no token")
	}
	got, err := models.ParseRole(resp.Role)
	if err != nil {
		return "", "", fmt.Errorf("register response: %w", err)
	}
	return resp.Token, got, nil
}
