package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/contentfactory/pkg/api"
)

// ErrUnauthorized возвращается, когда сервер отвечает 401: сессия отсутствует или истекла
var ErrUnauthorized = errors.New("unauthorized")

// StatusError описывает неуспешный ответ сервера
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Is позволяет проверять 401 через errors.Is(err, ErrUnauthorized)
func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// BaseURL возвращает адрес сервера
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Logout завершает сессию на сервере
func (c *Client) Logout(ctx context.Context, token string) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/logout", token, nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// Session возвращает текущего пользователя и срок действия сессии
func (c *Client) Session(ctx context.Context, token string) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/auth/session", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("session request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProfile частично обновляет профиль
func (c *Client) UpdateProfile(ctx context.Context, token string, req api.ProfileRequest) (*api.UserResponse, error) {
	var resp api.UserResponse
	if err := c.doRequest(ctx, http.MethodPatch, "/api/v1/user/profile", token, req, &resp); err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	return &resp, nil
}

// ChangePassword меняет пароль пользователя
func (c *Client) ChangePassword(ctx context.Context, token string, req api.PasswordRequest) error {
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/user/password", token, req, nil); err != nil {
		return fmt.Errorf("change password request failed: %w", err)
	}
	return nil
}

// ListConfigs возвращает настройки провайдеров пользователя
func (c *Client) ListConfigs(ctx context.Context, token string) ([]api.CredentialResponse, error) {
	var resp api.CredentialListResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/user/configs", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("list configs request failed: %w", err)
	}
	return resp.Configs, nil
}

// SaveConfig создает или обновляет настройку провайдера
func (c *Client) SaveConfig(ctx context.Context, token, provider string, req api.CredentialRequest) (*api.CredentialResponse, error) {
	var resp api.CredentialResponse
	if err := c.doRequest(ctx, http.MethodPut, configPath(provider), token, req, &resp); err != nil {
		return nil, fmt.Errorf("save config request failed: %w", err)
	}
	return &resp, nil
}

// DeleteConfig удаляет настройку провайдера
func (c *Client) DeleteConfig(ctx context.Context, token, provider string) error {
	if err := c.doRequest(ctx, http.MethodDelete, configPath(provider), token, nil, nil); err != nil {
		return fmt.Errorf("delete config request failed: %w", err)
	}
	return nil
}

// RecordTest сохраняет результат проверки ключа провайдера
func (c *Client) RecordTest(ctx context.Context, token, provider string, req api.TestResultRequest) (*api.CredentialResponse, error) {
	var resp api.CredentialResponse
	if err := c.doRequest(ctx, http.MethodPost, configPath(provider)+"/test", token, req, &resp); err != nil {
		return nil, fmt.Errorf("record test request failed: %w", err)
	}
	return &resp, nil
}

func configPath(provider string) string {
	return "/api/v1/user/configs/" + url.PathEscape(provider)
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			statusErr.Message = errResp.Message
		} else {
			statusErr.Message = strings.TrimSpace(string(respBody))
		}
		return statusErr
	}

	// 204 и пустое тело не декодируем
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
