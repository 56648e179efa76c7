package reports

import "testing"

func TestBalance(t *testing.T) {
	tests := []struct {
		name                         string
		startingCash, cash, expenses float64
		want                         float64
	}{
		{"обычная смена", 4000, 25000, 3000, 26000},
		{"без наличных", 4000, 0, 0, 4000},
		{"расходы больше наличных", 4000, 1000, 6000, -1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Balance(tt.startingCash, tt.cash, tt.expenses); got != tt.want {
				t.Errorf("Balance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNetProfit(t *testing.T) {
	if got := NetProfit(50000, 3000); got != 47000 {
		t.Errorf("NetProfit = %v, want 47000", got)
	}
	if got := NetProfit(1000, 2500); got != -1500 {
		t.Errorf("NetProfit = %v, want -1500", got)
	}
}
