package products

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

func (r *Repo) Insert(ctx context.Context, name string, quantity int, category *string) (*Product, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (name, quantity, category)
		VALUES ($1, $2, $3)
		RETURNING id, name, quantity, category, added_date
	`, name, quantity, category)
	var p Product
	if err := row.Scan(&p.ID, &p.Name, &p.Quantity, &p.Category, &p.AddedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*Product, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, quantity, category, added_date FROM products WHERE id = $1
	`, id)
	var p Product
	if err := row.Scan(&p.ID, &p.Name, &p.Quantity, &p.Category, &p.AddedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repo) List(ctx context.Context) ([]Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, quantity, category, added_date FROM products ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *Repo) ListLowStock(ctx context.Context, threshold int) ([]Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, quantity, category, added_date
		FROM products WHERE quantity < $1 ORDER BY quantity ASC
	`, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *Repo) UpdateName(ctx context.Context, id int64, name string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE products SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) UpdateQuantity(ctx context.Context, id int64, quantity int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE products SET quantity = $2 WHERE id = $1`, id, quantity)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) UpdateCategory(ctx context.Context, id int64, category *string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE products SET category = $2 WHERE id = $1`, id, category)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&n)
	return n, err
}

func (r *Repo) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM products WHERE quantity < $1`, threshold).Scan(&n)
	return n, err
}

func collect(rows pgx.Rows) ([]Product, error) {
	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Quantity, &p.Category, &p.AddedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
