package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/contentfactory/internal/client/api"
	"github.com/iudanet/contentfactory/internal/client/storage"
	"github.com/iudanet/contentfactory/internal/validation"
	pkgapi "github.com/iudanet/contentfactory/pkg/api"
)

// ErrNotAuthenticated возвращается, когда действующей локальной сессии нет
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthService предоставляет функции авторизации клиента
type AuthService struct {
	apiClient *api.Client
	store     storage.AuthStorage
	logger    *slog.Logger
	now       func() time.Time
}

var _ Service = (*AuthService)(nil)

// NewService создает новый сервис авторизации
func NewService(apiClient *api.Client, store storage.AuthStorage, logger *slog.Logger) *AuthService {
	return &AuthService{
		apiClient: apiClient,
		store:     store,
		logger:    logger,
		now:       time.Now,
	}
}

// Register регистрирует нового пользователя
func (s *AuthService) Register(ctx context.Context, email, username, password string) (*storage.AuthData, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Email:    email,
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	return s.save(ctx, resp)
}

// Login выполняет аутентификацию пользователя
func (s *AuthService) Login(ctx context.Context, email, password string, rememberMe bool) (*storage.AuthData, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Email:      email,
		Password:   password,
		RememberMe: rememberMe,
	})
	if err != nil {
		return nil, err
	}

	return s.save(ctx, resp)
}

// Current возвращает действующую локальную сессию
func (s *AuthService) Current(ctx context.Context) (*storage.AuthData, error) {
	authData, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}

	if authData.ServerURL != s.apiClient.BaseURL() {
		return nil, fmt.Errorf("%w: session belongs to %s", ErrNotAuthenticated, authData.ServerURL)
	}
	if s.now().Unix() >= authData.ExpiresAt {
		return nil, fmt.Errorf("%w: session expired", ErrNotAuthenticated)
	}

	return authData, nil
}

// Logout выполняет выход из системы
func (s *AuthService) Logout(ctx context.Context) error {
	authData, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return ErrNotAuthenticated
		}
		return fmt.Errorf("failed to get auth data: %w", err)
	}

	// Сервер уведомляем по возможности: локальный кэш удаляется в любом случае
	if authData.ServerURL == s.apiClient.BaseURL() {
		if err := s.apiClient.Logout(ctx, authData.Token); err != nil {
			s.logger.WarnContext(ctx, "failed to logout on server", slog.Any("error", err))
		}
	}

	return s.Forget(ctx)
}

// Forget удаляет локальную сессию
func (s *AuthService) Forget(ctx context.Context) error {
	if err := s.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}
	return nil
}

func (s *AuthService) save(ctx context.Context, resp *pkgapi.AuthResponse) (*storage.AuthData, error) {
	if resp.Session.Token == "" {
		return nil, fmt.Errorf("server did not return a session token")
	}

	authData := &storage.AuthData{
		ServerURL: s.apiClient.BaseURL(),
		UserID:    resp.User.ID,
		Email:     resp.User.Email,
		Username:  resp.User.Username,
		Token:     resp.Session.Token,
		ExpiresAt: resp.Session.ExpiresAt.Unix(),
	}
	if err := s.store.SaveAuth(ctx, authData); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	return authData, nil
}
