package api

import "time"

// CredentialRequest представляет запрос на сохранение API ключа провайдера.
// Пустой apiKey оставляет сохранённый ключ без изменений.
type CredentialRequest struct {
	IsActive          *bool  `json:"isActive,omitempty"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	APIKey            string `json:"apiKey"`
	APIBase           string `json:"apiBase,omitempty"`
	Model             string `json:"model,omitempty"`
	ServiceProviderID string `json:"serviceProvider,omitempty"`
}

// CredentialResponse описывает настройку провайдера без секрета
type CredentialResponse struct {
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	LastTestedAt      *time.Time `json:"lastTested,omitempty"`
	ID                string     `json:"id"`
	Provider          string     `json:"provider"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	APIBase           string     `json:"apiBase,omitempty"`
	Model             string     `json:"model,omitempty"`
	ServiceProviderID string     `json:"serviceProvider,omitempty"`
	TestStatus        string     `json:"testStatus,omitempty"`
	TestMessage       string     `json:"testMessage,omitempty"`
	IsActive          bool       `json:"isActive"`
	IsConfigured      bool       `json:"isConfigured"`
	HasAPIKey         bool       `json:"hasApiKey"`
}

// CredentialListResponse представляет список настроек пользователя
type CredentialListResponse struct {
	Configs []CredentialResponse `json:"configs"`
}

// TestResultRequest сообщает результат проверки ключа
type TestResultRequest struct {
	Status  string `json:"status"` // success, error, pending
	Message string `json:"message,omitempty"`
}
