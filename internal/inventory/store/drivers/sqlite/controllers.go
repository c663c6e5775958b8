package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/stackledger/stackledger/internal/inventory/domain"
)

type controllersRepo struct {
	q querier
}

const controllerColumns = `id, asset_id, type, address, port, ui_url, credential_ref, created_at`

func scanController(row interface{ Scan(...any) error }) (domain.ManagementController, error) {
	var (
		c     domain.ManagementController
		uiURL sql.NullString
		cred  sql.NullString
	)

	err := row.Scan(&c.ID, &c.AssetID, &c.Type, &c.Address, &c.Port, &uiURL, &cred, &c.CreatedAt)
	if err != nil {
		return domain.ManagementController{}, err
	}

	c.UIURL = mapNullString(uiURL)
	c.CredentialRef = mapNullString(cred)
	return c, nil
}

func (r *controllersRepo) GetControllerByID(ctx context.Context, id string) (domain.ManagementController, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+controllerColumns+` FROM management_controllers WHERE id = ?`, id)

	c, err := scanController(row)
	if err != nil {
		return domain.ManagementController{}, mapNotFound(err)
	}
	return c, nil
}

func (r *controllersRepo) ListControllersByAsset(
	ctx context.Context,
	assetID string,
) ([]domain.ManagementController, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+controllerColumns+` FROM management_controllers WHERE asset_id = ? ORDER BY created_at`,
		assetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var controllers []domain.ManagementController
	for rows.Next() {
		c, err := scanController(rows)
		if err != nil {
			return nil, err
		}
		controllers = append(controllers, c)
	}
	return controllers, rows.Err()
}

func (r *controllersRepo) CreateController(ctx context.Context, c domain.ManagementController) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO management_controllers (id, asset_id, type, address, port, ui_url, credential_ref, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.AssetID, c.Type, c.Address, c.Port,
		mapStringNull(c.UIURL), mapStringNull(c.CredentialRef), time.Now().UTC(),
	)
	return mapConstraint(err)
}

func (r *controllersRepo) DeleteController(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM management_controllers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
