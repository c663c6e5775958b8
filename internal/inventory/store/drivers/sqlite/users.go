package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/stackledger/stackledger/internal/inventory/domain"
	"github.com/stackledger/stackledger/internal/inventory/store"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, username, full_name, email, department, title, active, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u          domain.User
		email      sql.NullString
		department sql.NullString
		title      sql.NullString
	)

	err := row.Scan(
		&u.ID, &u.Username, &u.FullName, &email, &department, &title,
		&u.Active, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}

	u.Email = mapNullString(email)
	u.Department = mapNullString(department)
	u.Title = mapNullString(title)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)

	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)

	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) ListUsers(
	ctx context.Context,
	f store.UserFilter,
) ([]domain.User, int, error) {
	var (
		where []string
		args  []any
	)

	if f.Search != "" {
		like := "%" + f.Search + "%"
		where = append(where,
			`(username LIKE ? OR full_name LIKE ? OR email LIKE ? OR department LIKE ?)`)
		args = append(args, like, like, like, like)
	}
	if f.ActiveOnly {
		where = append(where, `active = 1`)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users`+clause, args...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.q.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users`+clause+` ORDER BY username LIMIT ? OFFSET ?`,
		append(args, limit, f.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, username, full_name, email, department, title, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.FullName, mapStringNull(u.Email),
		mapStringNull(u.Department), mapStringNull(u.Title), u.Active, now, now,
	)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET username = ?, full_name = ?, email = ?, department = ?, title = ?,
			active = ?, updated_at = ?
		WHERE id = ?`,
		u.Username, u.FullName, mapStringNull(u.Email), mapStringNull(u.Department),
		mapStringNull(u.Title), u.Active, time.Now().UTC(), u.ID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRow(res)
}

func (r *usersRepo) DeactivateUser(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE users SET active = 0, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
