package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/contentfactory/internal/client/api"
)

func (c *Cli) runLogin(ctx context.Context, email string, rememberMe bool) error {
	c.io.Println("=== Login ===")

	email, err := c.prompt(email, "Email")
	if err != nil {
		return err
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	authData, err := c.auth.Login(ctx, email, password, rememberMe)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return fmt.Errorf("invalid email or password")
		}
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Printf("✓ Logged in as %s\n", authData.Username)
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	c.io.Println("✓ Logged out")
	return nil
}
