package audit

import "time"

// Entry запись журнала действий; журнал только дополняется
type Entry struct {
	ID        int64
	UserID    int64
	Action    string
	Details   string
	CreatedAt time.Time
}
