package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/contentfactory/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")

	authData, err := c.auth.Current(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			c.io.Println("Status: Not authenticated")
			c.io.Println("Run 'cfctl login' to authenticate.")
			return nil
		}
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	expiresAt := time.Unix(authData.ExpiresAt, 0).UTC()

	c.io.Println("Status: Authenticated")
	c.io.Printf("Server: %s\n", authData.ServerURL)
	c.io.Printf("User: %s <%s>\n", authData.Username, authData.Email)
	c.io.Printf("Session expires: %s\n", expiresAt.Format(time.RFC3339))
	c.io.Printf("Time remaining: %s\n", expiresAt.Sub(c.now()).Round(time.Second))
	return nil
}
