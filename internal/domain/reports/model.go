package reports

import "time"

// Report отчёт по смене: не более одного на пару (пользователь, дата)
type Report struct {
	ID           int64
	UserID       int64
	Date         string // YYYY-MM-DD
	Total        float64
	Cash         float64
	Card         float64
	Bar          float64
	HookahCount  int
	Expenses     float64
	StartingCash float64
	Balance      float64
	CreatedAt    time.Time
}

// Balance остаток в кассе на конец смены
func Balance(startingCash, cash, expenses float64) float64 {
	return startingCash + cash - expenses
}

// NetProfit чистая прибыль (производное значение, не хранится)
func NetProfit(total, expenses float64) float64 {
	return total - expenses
}
