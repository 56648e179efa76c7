package notify

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

// Get возвращает chat_id для типа уведомления; пустая строка — настройки нет
func (r *Repo) Get(ctx context.Context, notificationType string) (string, error) {
	var chatID string
	err := r.pool.QueryRow(ctx, `
		SELECT chat_id FROM notification_settings WHERE notification_type = $1
	`, notificationType).Scan(&chatID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return chatID, nil
}

func (r *Repo) Set(ctx context.Context, notificationType, chatID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO notification_settings (notification_type, chat_id)
		VALUES ($1, $2)
		ON CONFLICT (notification_type) DO UPDATE SET chat_id = $2
	`, notificationType, chatID)
	return err
}

func (r *Repo) List(ctx context.Context) ([]Setting, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT notification_type, chat_id FROM notification_settings ORDER BY notification_type
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Type, &s.ChatID); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
