package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runRegister(ctx context.Context, email, username string) error {
	c.io.Println("=== Registration ===")

	email, err := c.prompt(email, "Email")
	if err != nil {
		return err
	}
	username, err = c.prompt(username, "Username")
	if err != nil {
		return err
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	authData, err := c.auth.Register(ctx, email, username, password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	c.io.Printf("✓ Registered as %s (%s)\n", authData.Username, authData.Email)
	return nil
}
