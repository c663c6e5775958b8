package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/stackledger/stackledger/internal/inventory/domain"
)

type auditRepo struct {
	q querier
}

func (r *auditRepo) RecordChange(ctx context.Context, e domain.AuditEntry) error {
	changes, err := encodeJSON(e.Changes)
	if err != nil {
		return fmt.Errorf("encoding audit changes: %w", err)
	}

	_, err = r.q.ExecContext(ctx, `
		INSERT INTO audit_logs (id, action, resource_type, resource_id, changes, api_key_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Action, e.ResourceType, e.ResourceID, changes,
		mapStringNull(e.APIKeyID), time.Now().UTC(),
	)
	return err
}

func (r *auditRepo) ListRecentChanges(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.q.QueryContext(ctx, `
		SELECT id, action, resource_type, resource_id, changes, api_key_id, created_at
		FROM audit_logs
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var (
			e        domain.AuditEntry
			changes  sql.NullString
			apiKeyID sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Action, &e.ResourceType, &e.ResourceID,
			&changes, &apiKeyID, &e.CreatedAt); err != nil {
			return nil, err
		}

		e.APIKeyID = mapNullString(apiKeyID)
		e.Changes, err = decodeJSON(changes.String)
		if err != nil {
			return nil, fmt.Errorf("decoding audit changes: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *auditRepo) PruneEntriesBefore(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM audit_logs WHERE created_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}
