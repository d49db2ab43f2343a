package models

import (
	"strings"
	"time"
)

// TestStatus is the outcome of the last connectivity test of a credential.
type TestStatus string

const (
	TestStatusSuccess TestStatus = "success"
	TestStatusError   TestStatus = "error"
	TestStatusPending TestStatus = "pending"
)

// Valid reports whether s is one of the known statuses.
func (s TestStatus) Valid() bool {
	switch s {
	case TestStatusSuccess, TestStatusError, TestStatusPending:
		return true
	}
	return false
}

// Известные провайдеры внешних API
const (
	ProviderOpenRouter    = "openrouter"
	ProviderSiliconFlow   = "siliconflow"
	ProviderWechatSearch  = "wechat_search"
	ProviderWechatPublish = "wechat_publish"
)

// Credential представляет API ключ пользователя для одного провайдера.
// JSON ключи совпадают с форматом файла user-configs.json.
type Credential struct {
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	LastTestedAt      *time.Time `json:"lastTested,omitempty"`
	ID                string     `json:"id"`
	UserID            string     `json:"userId"`
	Provider          string     `json:"provider"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Secret            string     `json:"apiKey"` // sensitive, не возвращается клиентам
	BaseURL           string     `json:"apiBase,omitempty"`
	Model             string     `json:"model,omitempty"`
	ServiceProviderID string     `json:"serviceProvider,omitempty"`
	LastTestStatus    TestStatus `json:"testStatus,omitempty"`
	LastTestMessage   string     `json:"testMessage,omitempty"`
	IsActive          bool       `json:"isActive"`
	IsConfigured      bool       `json:"isConfigured"`
}

// Configured reports whether the secret is non-empty after trimming.
func (c *Credential) Configured() bool {
	return strings.TrimSpace(c.Secret) != ""
}

// Clone returns a deep copy of the credential.
func (c *Credential) Clone() *Credential {
	if c == nil {
		return nil
	}
	v := *c
	v.LastTestedAt = cloneTime(c.LastTestedAt)
	return &v
}

// CloneCredentials copies a credential sequence, never returning nil.
func CloneCredentials(in []Credential) []Credential {
	out := make([]Credential, 0, len(in))
	for i := range in {
		out = append(out, *in[i].Clone())
	}
	return out
}
