package auth

import (
	"context"

	"github.com/iudanet/contentfactory/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// Service defines the main interface for client authentication.
// Сессия сервера кэшируется локально и используется всеми командами.
type Service interface {
	// Register регистрирует нового пользователя и сохраняет выданную сессию
	Register(ctx context.Context, email, username, password string) (*storage.AuthData, error)

	// Login выполняет аутентификацию и сохраняет выданную сессию
	Login(ctx context.Context, email, password string, rememberMe bool) (*storage.AuthData, error)

	// Current возвращает действующую сессию для текущего сервера.
	// Возвращает ErrNotAuthenticated, если сессии нет, она истекла или выдана другим сервером
	Current(ctx context.Context) (*storage.AuthData, error)

	// Logout завершает сессию на сервере и всегда удаляет локальный кэш
	Logout(ctx context.Context) error

	// Forget удаляет локальную сессию без обращения к серверу
	Forget(ctx context.Context) error
}
