package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// облегченные параметры, чтобы тесты не тратили 64MB на каждый хеш
var testParams = Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32}

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		errMsg   string
		wantErr  bool
	}{
		{
			name:     "successful hash",
			password: "secret1",
			wantErr:  false,
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  true,
			errMsg:   "password cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := HashPasswordWithParams(tt.password, testParams)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=1024,t=1,p=1$"))
			assert.NotContains(t, encoded, tt.password)
		})
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPasswordWithParams("same-password", testParams)
	require.NoError(t, err)
	h2, err := HashPasswordWithParams("same-password", testParams)
	require.NoError(t, err)

	// Одинаковые пароли дают разные хеши благодаря соли
	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword(t *testing.T) {
	encoded, err := HashPasswordWithParams("secret1", testParams)
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		encoded  string
		want     bool
		wantErr  bool
	}{
		{name: "correct password", password: "secret1", encoded: encoded, want: true},
		{name: "wrong password", password: "wrongpass", encoded: encoded, want: false},
		{name: "empty password", password: "", encoded: encoded, want: false},
		{name: "plaintext stored value", password: "secret1", encoded: "secret1", wantErr: true},
		{name: "wrong algorithm", password: "secret1", encoded: "$argon2i$v=19$m=1024,t=1,p=1$c2FsdA$a2V5", wantErr: true},
		{name: "bad params", password: "secret1", encoded: "$argon2id$v=19$m=x,t=1,p=1$c2FsdA$a2V5", wantErr: true},
		{name: "bad version", password: "secret1", encoded: "$argon2id$v=16$m=1024,t=1,p=1$c2FsdA$a2V5", wantErr: true},
		{name: "zero time", password: "secret1", encoded: "$argon2id$v=19$m=1024,t=0,p=1$c2FsdA$a2V5", wantErr: true},
		{name: "zero threads", password: "secret1", encoded: "$argon2id$v=19$m=1024,t=1,p=0$c2FsdA$a2V5", wantErr: true},
		{name: "zero memory", password: "secret1", encoded: "$argon2id$v=19$m=0,t=1,p=1$c2FsdA$a2V5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := VerifyPassword(tt.password, tt.encoded)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedHash)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestHashPassword_DefaultParams(t *testing.T) {
	encoded, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=65536,t=1,p=4$"))

	ok, err := VerifyPassword("secret1", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}
