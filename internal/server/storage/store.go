package storage

import (
	"io"
	"time"

	"github.com/iudanet/contentfactory/internal/crypto"
)

// CredentialStore is the full record store contract. Every backend
// (file, sqlite, memory) implements it with identical observable behaviour.
type CredentialStore interface {
	UserStorage
	PasswordStorage
	AccountStorage
	SessionStorage
	ConfigStorage
	io.Closer
}

// Options configures behaviour shared by all backends.
type Options struct {
	// Now returns the current time. Defaults to time.Now
	Now func() time.Time
	// PasswordParams are the Argon2id parameters for new password hashes
	PasswordParams crypto.Params
}

// WithDefaults fills zero fields with defaults.
func (o Options) WithDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.PasswordParams == (crypto.Params{}) {
		o.PasswordParams = crypto.DefaultParams
	}
	return o
}
