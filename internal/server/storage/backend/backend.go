// Package backend selects and opens the record store for the process.
package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/iudanet/contentfactory/internal/server/storage"
	"github.com/iudanet/contentfactory/internal/server/storage/file"
	"github.com/iudanet/contentfactory/internal/server/storage/memory"
	"github.com/iudanet/contentfactory/internal/server/storage/sqlite"
)

// Kind names a storage backend.
type Kind string

const (
	KindAuto   Kind = "auto"
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
	KindMemory Kind = "memory"
)

// ErrUnknownBackend is returned for an unsupported Kind.
var ErrUnknownBackend = errors.New("unknown storage backend")

// ParseKind converts a configuration value to a Kind. Empty means auto.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case "":
		return KindAuto, nil
	case KindAuto, KindFile, KindSQLite, KindMemory:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

// Select picks the backend. An explicit preference wins; with auto the
// serverless signal chooses memory, otherwise file.
func Select(serverless bool, preferred Kind) Kind {
	if preferred != "" && preferred != KindAuto {
		return preferred
	}
	if serverless {
		return KindMemory
	}
	return KindFile
}

// Options describe how to open the store.
type Options struct {
	Kind       Kind
	DataDir    string
	SQLitePath string // defaults to <DataDir>/contentfactory.db
	Store      storage.Options
	Serverless bool
}

// Open selects the backend once and constructs it.
func Open(ctx context.Context, opts Options, logger *slog.Logger) (storage.CredentialStore, Kind, error) {
	kind := Select(opts.Serverless, opts.Kind)

	switch kind {
	case KindMemory:
		logger.Info("using in-memory storage, data is lost on restart",
			"serverless", opts.Serverless,
		)
		return memory.New(opts.Store), kind, nil

	case KindFile:
		s, err := file.New(ctx, opts.DataDir, opts.Store)
		if err != nil {
			return nil, kind, fmt.Errorf("failed to open file storage: %w", err)
		}
		logger.Info("using file storage", "dir", s.Dir())
		return s, kind, nil

	case KindSQLite:
		path := opts.SQLitePath
		if path == "" {
			path = filepath.Join(opts.DataDir, "contentfactory.db")
		}
		s, err := sqlite.New(ctx, path, opts.Store)
		if err != nil {
			return nil, kind, fmt.Errorf("failed to open sqlite storage: %w", err)
		}
		logger.Info("using sqlite storage", "path", path)
		return s, kind, nil

	default:
		return nil, kind, fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
	}
}
