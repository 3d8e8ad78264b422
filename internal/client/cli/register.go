package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ahmchowd27/safesnap-client/internal/client/models"
)

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	roleRaw, err := GetSimpleText(a.reader, "Role (worker/manager)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	role, err := models.ParseRole(strings.ToUpper(strings.TrimSpace(roleRaw)))
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	identity, err := a.auth.Register(ctx, name, email, string(password), role)
	if err != nil {
		fmt.Fprintf(a.out, "Registration unsuccessful: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s! You are registered as %s.\n", identity.Name, identity.Role)
	return nil
}
