package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		errMsg   string
		wantErr  bool
	}{
		{
			name:     "valid username - lowercase",
			username: "alice",
			wantErr:  false,
		},
		{
			name:     "valid username - mixed case",
			username: "AliceSmith",
			wantErr:  false,
		},
		{
			name:     "valid username - with underscore and numbers",
			username: "alice_42",
			wantErr:  false,
		},
		{
			name:     "valid username - chinese",
			username: "内容工厂",
			wantErr:  false,
		},
		{
			name:     "valid username - min length in runes",
			username: "张三丰",
			wantErr:  false,
		},
		{
			name:     "valid username - max length",
			username: strings.Repeat("a", 20),
			wantErr:  false,
		},
		{
			name:     "invalid - empty",
			username: "",
			wantErr:  true,
			errMsg:   "cannot be empty",
		},
		{
			name:     "invalid - too short",
			username: "ab",
			wantErr:  true,
			errMsg:   "at least 3",
		},
		{
			name:     "invalid - too short chinese",
			username: "张三",
			wantErr:  true,
			errMsg:   "at least 3",
		},
		{
			name:     "invalid - too long",
			username: strings.Repeat("a", 21),
			wantErr:  true,
			errMsg:   "must not exceed 20",
		},
		{
			name:     "invalid - hyphen",
			username: "alice-smith",
			wantErr:  true,
			errMsg:   "can only contain",
		},
		{
			name:     "invalid - space",
			username: "alice smith",
			wantErr:  true,
			errMsg:   "can only contain",
		},
		{
			name:     "invalid - cyrillic",
			username: "алиса",
			wantErr:  true,
			errMsg:   "can only contain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		errMsg   string
		wantErr  bool
	}{
		{name: "valid", password: "secret1", wantErr: false},
		{name: "valid - min length", password: "abc123", wantErr: false},
		{name: "valid - max length", password: strings.Repeat("a", 49) + "1", wantErr: false},
		{name: "valid - with symbols", password: "p@ss w0rd!", wantErr: false},
		{name: "empty", password: "", wantErr: true, errMsg: "cannot be empty"},
		{name: "too short", password: "ab12", wantErr: true, errMsg: "at least 6"},
		{name: "too long", password: strings.Repeat("a", 50) + "1", wantErr: true, errMsg: "must not exceed 50"},
		{name: "letters only", password: "abcdefgh", wantErr: true, errMsg: "letters and numbers"},
		{name: "digits only", password: "12345678", wantErr: true, errMsg: "letters and numbers"},
		{name: "non-ascii letters", password: "密码密码123", wantErr: true, errMsg: "letters and numbers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "alice@example.com"},
		{name: "valid subdomain", email: "a.b+c@mail.example.org"},
		{name: "empty", email: "", wantErr: true},
		{name: "no at", email: "alice.example.com", wantErr: true},
		{name: "no dot in domain", email: "alice@example", wantErr: true},
		{name: "space", email: "ali ce@example.com", wantErr: true},
		{name: "double at", email: "a@b@example.com", wantErr: true},
		{name: "too long", email: strings.Repeat("a", 250) + "@x.io", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateProvider(t *testing.T) {
	valid := []string{"openrouter", "siliconflow", "wechat_search", "wechat_publish", "x1"}
	for _, p := range valid {
		assert.NoError(t, ValidateProvider(p), p)
	}

	invalid := []string{"", "a", "OpenRouter", "open-router", "open router", strings.Repeat("a", 33), "../etc"}
	for _, p := range invalid {
		assert.Error(t, ValidateProvider(p), p)
	}
}
