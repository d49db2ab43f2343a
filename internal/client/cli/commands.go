package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/contentfactory/internal/client/api"
	"github.com/iudanet/contentfactory/internal/client/auth"
	"github.com/iudanet/contentfactory/internal/client/iocli"
	"github.com/iudanet/contentfactory/internal/client/storage/boltdb"
)

const (
	defaultServerURL = "http://localhost:8080"
	defaultDBPath    = "cfctl.db"
)

// Options содержит глобальные флаги cfctl
type Options struct {
	ServerURL string
	DBPath    string
	Verbose   bool
}

// Execute строит дерево команд, выполняет его и закрывает локальное хранилище
func Execute(ctx context.Context, stdio iocli.IO, version string, args []string) error {
	opts := Options{
		ServerURL: envOr("CFCTL_SERVER", defaultServerURL),
		DBPath:    envOr("CFCTL_DB", defaultDBPath),
	}
	c := &Cli{io: stdio}

	var store *boltdb.Storage
	defer func() {
		if store != nil {
			if err := store.Close(); err != nil {
				slog.Error("failed to close database", slog.Any("error", err))
			}
		}
	}()

	root := &cobra.Command{
		Use:           "cfctl",
		Short:         "ContentFactory command-line client",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			var err error
			store, err = boltdb.New(cmd.Context(), opts.DBPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}

			apiClient := api.NewClient(opts.ServerURL)
			c.auth = auth.NewService(apiClient, store, logger)
			c.configs = apiClient
			c.now = time.Now
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.ServerURL, "server", opts.ServerURL, "server URL (env CFCTL_SERVER)")
	root.PersistentFlags().StringVar(&opts.DBPath, "db", opts.DBPath, "path to local session cache (env CFCTL_DB)")
	root.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	c.addCommands(root)
	root.SetArgs(args)
	root.SetOut(stdio)
	root.SetErr(stdio)

	return root.ExecuteContext(ctx)
}

// addCommands регистрирует подкоманды cfctl
func (c *Cli) addCommands(root *cobra.Command) {
	var (
		email      string
		username   string
		rememberMe bool
	)

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and start a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRegister(cmd.Context(), email, username)
		},
	}
	registerCmd.Flags().StringVar(&email, "email", "", "account email")
	registerCmd.Flags().StringVar(&username, "username", "", "account username")

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and cache the session locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLogin(cmd.Context(), email, rememberMe)
		},
	}
	loginCmd.Flags().StringVar(&email, "email", "", "account email")
	loginCmd.Flags().BoolVar(&rememberMe, "remember", false, "ask the server for a persistent session")

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLogout(cmd.Context())
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the cached session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStatus(cmd.Context())
		},
	}

	root.AddCommand(registerCmd, loginCmd, logoutCmd, statusCmd, c.configCommand())
}

func (c *Cli) configCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage AI provider credentials",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List provider configs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConfigList(cmd.Context())
		},
	}

	var (
		in       configInput
		active   bool
		inactive bool
	)
	setCmd := &cobra.Command{
		Use:   "set <provider>",
		Short: "Create or update a provider config, the API key is read from the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case active && inactive:
				return errors.New("--active and --inactive are mutually exclusive")
			case active:
				in.active = &active
			case inactive:
				off := false
				in.active = &off
			}
			return c.runConfigSet(cmd.Context(), args[0], in)
		},
	}
	setCmd.Flags().StringVar(&in.name, "name", "", "display name (required for unknown providers)")
	setCmd.Flags().StringVar(&in.description, "description", "", "description")
	setCmd.Flags().StringVar(&in.apiBase, "api-base", "", "custom API base URL")
	setCmd.Flags().StringVar(&in.model, "model", "", "default model")
	setCmd.Flags().StringVar(&in.serviceProvider, "service-provider", "", "upstream service provider id")
	setCmd.Flags().BoolVar(&active, "active", false, "mark the config active")
	setCmd.Flags().BoolVar(&inactive, "inactive", false, "mark the config inactive")

	deleteCmd := &cobra.Command{
		Use:     "delete <provider>",
		Aliases: []string{"rm"},
		Short:   "Delete a provider config",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConfigDelete(cmd.Context(), args[0])
		},
	}

	var status, message string
	testCmd := &cobra.Command{
		Use:   "test <provider>",
		Short: "Record the result of a key check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConfigTest(cmd.Context(), args[0], status, message)
		},
	}
	testCmd.Flags().StringVar(&status, "status", "success", "result: success, error or pending")
	testCmd.Flags().StringVar(&message, "message", "", "details of the check")

	configCmd.AddCommand(listCmd, setCmd, deleteCmd, testCmd)
	return configCmd
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
