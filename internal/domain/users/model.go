package users

import "time"

type User struct {
	ID         int64 // Telegram user id
	Username   string
	FirstName  string
	IsAdmin    bool
	IsBanned   bool
	IsApproved bool
	AddedAt    time.Time
	LastAction *time.Time
}

// Counts сводка по пользователям для экрана статистики
type Counts struct {
	Total      int64
	Admins     int64
	Banned     int64
	Unapproved int64
}
