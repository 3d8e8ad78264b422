// Package services contains the application services driving the CLI:
// authentication (login/register/logout around the session manager) and
// incident reporting.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ahmchowd27/safesnap-client/internal/client/models"
	"github.com/go-playground/validator/v10"
)

// AuthAPI is the slice of the gateway the auth service needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, models.Role, error)
	Register(ctx context.Context, name, email, password string, role models.Role) (string, models.Role, error)
}

// Sessions is the session manager's writer surface.
type Sessions interface {
	Login(ctx context.Context, token string, identity models.Identity) error
	Logout(ctx context.Context) error
}

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type registerInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type AuthService struct {
	api      AuthAPI
	sessions Sessions
	validate *validator.Validate
}

func NewAuthService(api AuthAPI, sessions Sessions) *AuthService {
	return &AuthService{api: api, sessions: sessions, validate: validator.New()}
}

// Login authenticates against the backend and persists the resulting
// session. The caller gets the identity the session now holds.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	if err := s.validate.Struct(loginInput{Email: email, Password: password}); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}

	token, role, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	identity := identityFromLogin(email, role)
	if err := s.sessions.Login(ctx, token, identity); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return &identity, nil
}

// Register creates an account and logs it in.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role models.Role) (*models.Identity, error) {
	if err := s.validate.Struct(registerInput{Name: name, Email: email, Password: password}); err != nil {
		return nil, fmt.Errorf("invalid registration: %w", err)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("invalid registration: unknown role %q", role)
	}

	token, got, err := s.api.Register(ctx, name, email, password, role)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}

	identity := identityFromLogin(email, got)
	identity.Name = name
	if err := s.sessions.Login(ctx, token, identity); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return &identity, nil
}

// Logout clears the session. Safe to call when already logged out.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Logout(ctx)
}

// identityFromLogin builds the client-side identity for a login response.
// The backend returns only {token, role}: there is no user id and no display
// name, so the id is a fixed placeholder and the name is derived from the
// email local-part until the backend grows a real profile endpoint.
func identityFromLogin(email string, role models.Role) models.Identity {
	name := email
	if i := strings.Index(email, "@"); i > 0 {
		name = email[:i]
	}
	return models.Identity{ID: 1, Name: name, Email: email, Role: role}
}
