package sqlite

import (
	"context"
	"time"

	"github.com/stackledger/stackledger/internal/inventory/domain"
)

type apiKeysRepo struct {
	q querier
}

func (r *apiKeysRepo) ListActiveAPIKeys(ctx context.Context) ([]domain.APIKey, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, name, key_hash, active, created_at
		FROM api_keys
		WHERE active = 1
		ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []domain.APIKey
	for rows.Next() {
		var k domain.APIKey
		if err := rows.Scan(&k.ID, &k.Name, &k.KeyHash, &k.Active, &k.CreatedAt); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (r *apiKeysRepo) CreateAPIKey(ctx context.Context, k domain.APIKey) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO api_keys (id, name, key_hash, active, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		k.ID, k.Name, k.KeyHash, k.Active, time.Now().UTC(),
	)
	return mapConstraint(err)
}

func (r *apiKeysRepo) DeactivateAPIKey(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE api_keys SET active = 0 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
