package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/stackledger/stackledger/internal/inventory/domain"
)

type applicationsRepo struct {
	q querier
}

const applicationColumns = `id, name, description, access_url, environment, version, port,
	status, contact_id, criticality, notes, created_at, updated_at`

func scanApplication(row interface{ Scan(...any) error }) (domain.Application, error) {
	var (
		a         domain.Application
		desc      sql.NullString
		accessURL sql.NullString
		version   sql.NullString
		port      sql.NullInt64
		contactID sql.NullString
		notes     sql.NullString
	)

	err := row.Scan(
		&a.ID, &a.Name, &desc, &accessURL, &a.Environment, &version, &port,
		&a.Status, &contactID, &a.Criticality, &notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Application{}, err
	}

	a.Description = mapNullString(desc)
	a.AccessURL = mapNullString(accessURL)
	a.Version = mapNullString(version)
	a.Port = int(port.Int64)
	a.ContactID = mapNullString(contactID)
	a.Notes = mapNullString(notes)
	return a, nil
}

func (r *applicationsRepo) loadAssetIDs(ctx context.Context, appID string) ([]string, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT asset_id FROM application_assets WHERE application_id = ? ORDER BY asset_id`,
		appID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *applicationsRepo) GetApplicationByID(ctx context.Context, id string) (domain.Application, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = ?`, id)

	a, err := scanApplication(row)
	if err != nil {
		return domain.Application{}, mapNotFound(err)
	}

	a.AssetIDs, err = r.loadAssetIDs(ctx, a.ID)
	if err != nil {
		return domain.Application{}, err
	}
	return a, nil
}

func (r *applicationsRepo) ListApplications(ctx context.Context) ([]domain.Application, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+applicationColumns+` FROM applications ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range apps {
		apps[i].AssetIDs, err = r.loadAssetIDs(ctx, apps[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return apps, nil
}

func (r *applicationsRepo) CreateApplication(ctx context.Context, a domain.Application) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO applications (id, name, description, access_url, environment, version,
			port, status, contact_id, criticality, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, mapStringNull(a.Description), mapStringNull(a.AccessURL),
		a.Environment, mapStringNull(a.Version), nullableInt(a.Port), a.Status,
		mapStringNull(a.ContactID), a.Criticality, mapStringNull(a.Notes), now, now,
	)
	return mapConstraint(err)
}

func (r *applicationsRepo) UpdateApplication(ctx context.Context, a domain.Application) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE applications
		SET name = ?, description = ?, access_url = ?, environment = ?, version = ?,
			port = ?, status = ?, contact_id = ?, criticality = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		a.Name, mapStringNull(a.Description), mapStringNull(a.AccessURL), a.Environment,
		mapStringNull(a.Version), nullableInt(a.Port), a.Status, mapStringNull(a.ContactID),
		a.Criticality, mapStringNull(a.Notes), time.Now().UTC(), a.ID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRow(res)
}

func (r *applicationsRepo) DeleteApplication(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM applications WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *applicationsRepo) LinkAsset(ctx context.Context, appID, assetID string) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO application_assets (application_id, asset_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (application_id, asset_id) DO NOTHING`,
		appID, assetID, time.Now().UTC(),
	)
	return err
}

func (r *applicationsRepo) UnlinkAsset(ctx context.Context, appID, assetID string) error {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM application_assets WHERE application_id = ? AND asset_id = ?`,
		appID, assetID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func nullableInt(n int) sql.NullInt64 {
	if n == 0 {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: int64(n), Valid: true}
}
