package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

const userColumns = `user_id, username, first_name, is_admin, is_banned, is_approved, added_date, last_action`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.FirstName, &u.IsAdmin, &u.IsBanned, &u.IsApproved, &u.AddedAt, &u.LastAction); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repo) Get(ctx context.Context, id int64) (*User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, id)
	return scanUser(row)
}

// Register заводит строку для нового пользователя. Повторная регистрация — no-op.
// seedAdmin используется только для главного администратора.
func (r *Repo) Register(ctx context.Context, id int64, username, firstName string, seedAdmin bool) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO users (user_id, username, first_name, is_admin, is_approved)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (user_id) DO NOTHING
	`, id, username, firstName, seedAdmin)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) SetApproved(ctx context.Context, id int64, approved bool) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET is_approved = $2 WHERE user_id = $1`, id, approved)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) SetBanned(ctx context.Context, id int64, banned bool) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET is_banned = $2 WHERE user_id = $1`, id, banned)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) SetAdmin(ctx context.Context, id int64, admin bool) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET is_admin = $2 WHERE user_id = $1`, id, admin)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) TouchLastAction(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE users SET last_action = now() WHERE user_id = $1`, id)
	return err
}

func (r *Repo) List(ctx context.Context) ([]User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY added_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

// ListUnapproved пользователи, ожидающие одобрения (забаненные не показываются)
func (r *Repo) ListUnapproved(ctx context.Context) ([]User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE is_approved = FALSE AND is_banned = FALSE
		ORDER BY added_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *Repo) ListApproved(ctx context.Context) ([]User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE is_approved = TRUE AND is_banned = FALSE
		ORDER BY added_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *Repo) Count(ctx context.Context) (Counts, error) {
	var c Counts
	row := r.pool.QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE is_admin),
		       count(*) FILTER (WHERE is_banned),
		       count(*) FILTER (WHERE NOT is_approved AND NOT is_banned)
		FROM users`)
	if err := row.Scan(&c.Total, &c.Admins, &c.Banned, &c.Unapproved); err != nil {
		return c, err
	}
	return c, nil
}

func collect(rows pgx.Rows) ([]User, error) {
	var out []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.FirstName, &u.IsAdmin, &u.IsBanned, &u.IsApproved, &u.AddedAt, &u.LastAction); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
