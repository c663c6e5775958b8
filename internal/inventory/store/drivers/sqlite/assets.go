package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/stackledger/stackledger/internal/inventory/domain"
	"github.com/stackledger/stackledger/internal/inventory/store"
)

type assetsRepo struct {
	q querier
}

const assetColumns = `id, hostname, fqdn, serial_number, vendor, model, type, status,
	location, specs, owner_id, notes, created_at, updated_at`

func scanAsset(row interface{ Scan(...any) error }) (domain.Asset, error) {
	var (
		a       domain.Asset
		fqdn    sql.NullString
		serial  sql.NullString
		vendor  sql.NullString
		model   sql.NullString
		loc     sql.NullString
		specs   string
		ownerID sql.NullString
		notes   sql.NullString
	)

	err := row.Scan(
		&a.ID, &a.Hostname, &fqdn, &serial, &vendor, &model, &a.Type, &a.Status,
		&loc, &specs, &ownerID, &notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Asset{}, err
	}

	a.FQDN = mapNullString(fqdn)
	a.SerialNumber = mapNullString(serial)
	a.Vendor = mapNullString(vendor)
	a.Model = mapNullString(model)
	a.Location = mapNullString(loc)
	a.OwnerID = mapNullString(ownerID)
	a.Notes = mapNullString(notes)

	a.Specs, err = decodeJSON(specs)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("decoding asset specs: %w", err)
	}

	return a, nil
}

func (r *assetsRepo) GetAssetByID(ctx context.Context, id string) (domain.Asset, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE id = ?`, id)

	a, err := scanAsset(row)
	if err != nil {
		return domain.Asset{}, mapNotFound(err)
	}
	return a, nil
}

func (r *assetsRepo) FindAssetByFQDN(ctx context.Context, fqdn string) (domain.Asset, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE fqdn = ?`, fqdn)

	a, err := scanAsset(row)
	if err != nil {
		return domain.Asset{}, mapNotFound(err)
	}
	return a, nil
}

func (r *assetsRepo) FindAssetBySerialVendor(
	ctx context.Context,
	serial, vendor string,
) (domain.Asset, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE serial_number = ? AND vendor = ?`,
		serial, vendor)

	a, err := scanAsset(row)
	if err != nil {
		return domain.Asset{}, mapNotFound(err)
	}
	return a, nil
}

func (r *assetsRepo) FindAssetByHostname(ctx context.Context, hostname string) (domain.Asset, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE hostname = ? ORDER BY created_at LIMIT 1`,
		hostname)

	a, err := scanAsset(row)
	if err != nil {
		return domain.Asset{}, mapNotFound(err)
	}
	return a, nil
}

// sortColumns whitelists user-supplied sort fields so they can be spliced into
// the ORDER BY clause safely.
var sortColumns = map[string]string{
	"hostname":   "hostname",
	"vendor":     "vendor",
	"status":     "status",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func (r *assetsRepo) ListAssets(
	ctx context.Context,
	f store.AssetFilter,
) ([]domain.Asset, int, error) {
	var (
		where []string
		args  []any
	)

	if f.Search != "" {
		like := "%" + f.Search + "%"
		where = append(where,
			`(hostname LIKE ? OR fqdn LIKE ? OR serial_number LIKE ? OR vendor LIKE ? OR model LIKE ?)`)
		args = append(args, like, like, like, like, like)
	}
	if f.Status != "" {
		where = append(where, `status = ?`)
		args = append(args, f.Status)
	}
	if f.Type != "" {
		where = append(where, `type = ?`)
		args = append(args, f.Type)
	}
	if f.Vendor != "" {
		where = append(where, `vendor LIKE ?`)
		args = append(args, "%"+f.Vendor+"%")
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM assets`+clause, args...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderBy, ok := sortColumns[f.SortBy]
	if !ok {
		orderBy = "created_at"
	}
	direction := "ASC"
	if f.SortDesc {
		direction = "DESC"
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}

	query := fmt.Sprintf(
		`SELECT %s FROM assets%s ORDER BY %s %s LIMIT ? OFFSET ?`,
		assetColumns, clause, orderBy, direction,
	)
	rows, err := r.q.QueryContext(ctx, query, append(args, limit, f.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, 0, err
		}
		assets = append(assets, a)
	}
	return assets, total, rows.Err()
}

func (r *assetsRepo) CreateAsset(ctx context.Context, a domain.Asset) error {
	specs, err := encodeJSON(a.Specs)
	if err != nil {
		return fmt.Errorf("encoding asset specs: %w", err)
	}

	now := time.Now().UTC()
	_, err = r.q.ExecContext(ctx, `
		INSERT INTO assets (id, hostname, fqdn, serial_number, vendor, model, type, status,
			location, specs, owner_id, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Hostname, mapStringNull(a.FQDN), mapStringNull(a.SerialNumber),
		mapStringNull(a.Vendor), mapStringNull(a.Model), a.Type, a.Status,
		mapStringNull(a.Location), specs, mapStringNull(a.OwnerID),
		mapStringNull(a.Notes), now, now,
	)
	return mapConstraint(err)
}

func (r *assetsRepo) UpdateAsset(ctx context.Context, a domain.Asset) error {
	specs, err := encodeJSON(a.Specs)
	if err != nil {
		return fmt.Errorf("encoding asset specs: %w", err)
	}

	res, err := r.q.ExecContext(ctx, `
		UPDATE assets
		SET hostname = ?, fqdn = ?, serial_number = ?, vendor = ?, model = ?,
			type = ?, status = ?, location = ?, specs = ?, owner_id = ?, notes = ?,
			updated_at = ?
		WHERE id = ?`,
		a.Hostname, mapStringNull(a.FQDN), mapStringNull(a.SerialNumber),
		mapStringNull(a.Vendor), mapStringNull(a.Model), a.Type, a.Status,
		mapStringNull(a.Location), specs, mapStringNull(a.OwnerID),
		mapStringNull(a.Notes), time.Now().UTC(), a.ID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRow(res)
}

func (r *assetsRepo) DeleteAsset(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM assets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *assetsRepo) CountAssetsByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM assets GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
