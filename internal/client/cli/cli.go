package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/contentfactory/internal/client/api"
	"github.com/iudanet/contentfactory/internal/client/auth"
	"github.com/iudanet/contentfactory/internal/client/iocli"
	"github.com/iudanet/contentfactory/internal/client/storage"
	pkgapi "github.com/iudanet/contentfactory/pkg/api"
)

//go:generate moq -out configs_mock.go . ConfigClient

// ConfigClient описывает серверные операции с настройками провайдеров
type ConfigClient interface {
	ListConfigs(ctx context.Context, token string) ([]pkgapi.CredentialResponse, error)
	SaveConfig(ctx context.Context, token, provider string, req pkgapi.CredentialRequest) (*pkgapi.CredentialResponse, error)
	DeleteConfig(ctx context.Context, token, provider string) error
	RecordTest(ctx context.Context, token, provider string, req pkgapi.TestResultRequest) (*pkgapi.CredentialResponse, error)
}

// Cli связывает команды cfctl с сервисами клиента
type Cli struct {
	io      iocli.IO
	auth    auth.Service
	configs ConfigClient
	now     func() time.Time
}

// New создает Cli с готовыми зависимостями
func New(io iocli.IO, authService auth.Service, configs ConfigClient) *Cli {
	return &Cli{
		io:      io,
		auth:    authService,
		configs: configs,
		now:     time.Now,
	}
}

// session возвращает действующую локальную сессию или понятную пользователю ошибку
func (c *Cli) session(ctx context.Context) (*storage.AuthData, error) {
	authData, err := c.auth.Current(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			return nil, fmt.Errorf("%w. Please run 'cfctl login' first", err)
		}
		return nil, err
	}
	return authData, nil
}

// serverError сбрасывает локальную сессию, если сервер ее больше не принимает
func (c *Cli) serverError(ctx context.Context, err error) error {
	if !errors.Is(err, api.ErrUnauthorized) {
		return err
	}
	if forgetErr := c.auth.Forget(ctx); forgetErr != nil {
		return errors.Join(err, forgetErr)
	}
	return fmt.Errorf("session is no longer valid. Please run 'cfctl login' again")
}

// prompt возвращает значение флага или запрашивает его у пользователя
func (c *Cli) prompt(value, label string) (string, error) {
	if value != "" {
		return value, nil
	}
	input, err := c.io.ReadInput(label + ": ")
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", label, err)
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%s cannot be empty", label)
	}
	return input, nil
}
