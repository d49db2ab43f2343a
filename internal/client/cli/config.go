package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	pkgapi "github.com/iudanet/contentfactory/pkg/api"
)

func (c *Cli) runConfigList(ctx context.Context) error {
	authData, err := c.session(ctx)
	if err != nil {
		return err
	}

	configs, err := c.configs.ListConfigs(ctx, authData.Token)
	if err != nil {
		return c.serverError(ctx, err)
	}

	if len(configs) == 0 {
		c.io.Println("No provider configs. Use 'cfctl config set <provider>' to add one.")
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROVIDER\tNAME\tKEY\tACTIVE\tTEST\tMODEL")
	for _, cfg := range configs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			cfg.Provider, cfg.Name, yesNo(cfg.HasAPIKey), yesNo(cfg.IsActive), dash(cfg.TestStatus), dash(cfg.Model))
	}
	return w.Flush()
}

// configInput собирает поля команды config set
type configInput struct {
	active          *bool
	name            string
	description     string
	apiBase         string
	model           string
	serviceProvider string
}

func (c *Cli) runConfigSet(ctx context.Context, provider string, in configInput) error {
	authData, err := c.session(ctx)
	if err != nil {
		return err
	}

	// ключ не передается аргументом, чтобы не попасть в историю shell
	apiKey, err := c.io.ReadPassword("API key (leave empty to keep current): ")
	if err != nil {
		return fmt.Errorf("failed to read API key: %w", err)
	}

	saved, err := c.configs.SaveConfig(ctx, authData.Token, provider, pkgapi.CredentialRequest{
		IsActive:          in.active,
		Name:              in.name,
		Description:       in.description,
		APIKey:            apiKey,
		APIBase:           in.apiBase,
		Model:             in.model,
		ServiceProviderID: in.serviceProvider,
	})
	if err != nil {
		return c.serverError(ctx, err)
	}

	c.io.Printf("✓ Saved %s (key configured: %s, active: %s)\n", saved.Provider, yesNo(saved.HasAPIKey), yesNo(saved.IsActive))
	return nil
}

func (c *Cli) runConfigDelete(ctx context.Context, provider string) error {
	authData, err := c.session(ctx)
	if err != nil {
		return err
	}

	if err := c.configs.DeleteConfig(ctx, authData.Token, provider); err != nil {
		return c.serverError(ctx, err)
	}

	c.io.Printf("✓ Deleted %s\n", provider)
	return nil
}

func (c *Cli) runConfigTest(ctx context.Context, provider, status, message string) error {
	authData, err := c.session(ctx)
	if err != nil {
		return err
	}

	resp, err := c.configs.RecordTest(ctx, authData.Token, provider, pkgapi.TestResultRequest{
		Status:  status,
		Message: message,
	})
	if err != nil {
		return c.serverError(ctx, err)
	}

	c.io.Printf("✓ Recorded test result for %s: %s\n", resp.Provider, resp.TestStatus)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
