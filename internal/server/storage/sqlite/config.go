package sqlite

import (
	"context"
	"database/sql"

	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/storage"
)

const credentialColumns = `id, user_id, provider, name, description, secret, base_url, model,
	service_provider_id, is_active, is_configured, last_tested_at, last_test_status,
	last_test_message, created_at, updated_at`

// GetUserConfigs returns user's credentials in stored order
func (s *Storage) GetUserConfigs(ctx context.Context, userID string) ([]models.Credential, error) {
	return queryConfigs(ctx, s.db, userID)
}

// SaveUserConfigs replaces user's credentials
func (s *Storage) SaveUserConfigs(ctx context.Context, userID string, configs []models.Credential) error {
	normalized := storage.NormalizeConfigs(userID, configs)

	return s.inTx(ctx, func(tx *sql.Tx) error {
		return replaceConfigs(ctx, tx, userID, normalized)
	})
}

// UpdateConfig upserts a credential by provider
func (s *Storage) UpdateConfig(ctx context.Context, userID string, config models.Credential) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		current, err := queryConfigs(ctx, tx, userID)
		if err != nil {
			return err
		}

		updated := storage.UpsertConfig(current, userID, *config.Clone(), s.opts.Now())
		return replaceConfigs(ctx, tx, userID, updated)
	})
}

// DeleteConfig removes credential of the provider
func (s *Storage) DeleteConfig(ctx context.Context, userID, provider string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE user_id = ? AND provider = ?`, userID, provider)
	if err != nil {
		return unavailable("failed to delete config", err)
	}
	return nil
}

func queryConfigs(ctx context.Context, q querier, userID string) ([]models.Credential, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT `+credentialColumns+` FROM credentials WHERE user_id = ? ORDER BY position`,
		userID,
	)
	if err != nil {
		return nil, unavailable("failed to query configs", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	configs := []models.Credential{}
	for rows.Next() {
		var (
			c                    models.Credential
			isActive, configured int
			lastTested           sql.NullInt64
			status               string
			createdAt, updatedAt int64
		)

		if err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.Provider,
			&c.Name,
			&c.Description,
			&c.Secret,
			&c.BaseURL,
			&c.Model,
			&c.ServiceProviderID,
			&isActive,
			&configured,
			&lastTested,
			&status,
			&c.LastTestMessage,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, unavailable("failed to scan config", err)
		}

		c.IsActive = isActive != 0
		c.IsConfigured = configured != 0
		c.LastTestedAt = fromNullNanos(lastTested)
		c.LastTestStatus = models.TestStatus(status)
		c.CreatedAt = fromNanos(createdAt)
		c.UpdatedAt = fromNanos(updatedAt)

		configs = append(configs, c)
	}

	if err := rows.Err(); err != nil {
		return nil, unavailable("rows iteration error", err)
	}

	return configs, nil
}

// replaceConfigs переписывает весь набор пользователя, сохраняя порядок через position
func replaceConfigs(ctx context.Context, tx *sql.Tx, userID string, configs []models.Credential) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM credentials WHERE user_id = ?`, userID); err != nil {
		return unavailable("failed to clear configs", err)
	}

	query := `
		INSERT INTO credentials (` + credentialColumns + `, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	for i, c := range configs {
		_, err := tx.ExecContext(ctx, query,
			c.ID,
			userID,
			c.Provider,
			c.Name,
			c.Description,
			c.Secret,
			c.BaseURL,
			c.Model,
			c.ServiceProviderID,
			boolToInt(c.IsActive),
			boolToInt(c.IsConfigured),
			nullNanos(c.LastTestedAt),
			string(c.LastTestStatus),
			c.LastTestMessage,
			toNanos(c.CreatedAt),
			toNanos(c.UpdatedAt),
			i,
		)
		if err != nil {
			return unavailable("failed to insert config", err)
		}
	}

	return nil
}
