package reports

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

const reportColumns = `id, user_id, to_char(report_date, 'YYYY-MM-DD'), total, cash, card, bar, hookah_count, expenses, starting_cash, balance, created_at`

func (r *Repo) Exists(ctx context.Context, userID int64, date string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM shift_reports WHERE user_id = $1 AND report_date = $2::date)
	`, userID, date).Scan(&exists)
	return exists, err
}

func (r *Repo) Get(ctx context.Context, userID int64, date string) (*Report, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+reportColumns+` FROM shift_reports WHERE user_id = $1 AND report_date = $2::date
	`, userID, date)
	var rep Report
	if err := scan(row, &rep); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rep, nil
}

func (r *Repo) Insert(ctx context.Context, rep *Report) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO shift_reports
			(user_id, report_date, total, cash, card, bar, hookah_count, expenses, starting_cash, balance)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8, $9, $10)
	`, rep.UserID, rep.Date, rep.Total, rep.Cash, rep.Card, rep.Bar, rep.HookahCount, rep.Expenses, rep.StartingCash, rep.Balance)
	return err
}

// Update обновляет существующую строку; новая строка никогда не создаётся
func (r *Repo) Update(ctx context.Context, rep *Report) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE shift_reports SET
			total = $3, cash = $4, card = $5, bar = $6,
			hookah_count = $7, expenses = $8, starting_cash = $9, balance = $10
		WHERE user_id = $1 AND report_date = $2::date
	`, rep.UserID, rep.Date, rep.Total, rep.Cash, rep.Card, rep.Bar, rep.HookahCount, rep.Expenses, rep.StartingCash, rep.Balance)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) ListRecent(ctx context.Context, userID int64, limit int) ([]Report, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+reportColumns+` FROM shift_reports
		WHERE user_id = $1 ORDER BY report_date DESC LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Report
	for rows.Next() {
		var rep Report
		if err := scan(rows, &rep); err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func (r *Repo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM shift_reports`).Scan(&n)
	return n, err
}

func scan(row pgx.Row, rep *Report) error {
	return row.Scan(&rep.ID, &rep.UserID, &rep.Date, &rep.Total, &rep.Cash, &rep.Card,
		&rep.Bar, &rep.HookahCount, &rep.Expenses, &rep.StartingCash, &rep.Balance, &rep.CreatedAt)
}
