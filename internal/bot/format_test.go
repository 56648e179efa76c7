package bot

import (
	"strings"
	"testing"

	"github.com/soralabs/warehouse-bot/internal/domain/products"
	"github.com/soralabs/warehouse-bot/internal/domain/reports"
)

func TestChunkText(t *testing.T) {
	if got := chunkText("", 10); got != nil {
		t.Errorf("empty input = %v, want nil", got)
	}
	if got := chunkText("short", 10); len(got) != 1 || got[0] != "short" {
		t.Errorf("short input = %v", got)
	}

	long := strings.Repeat("я", 25) // многобайтовые руны не должны резаться
	parts := chunkText(long, 10)
	if len(parts) != 3 {
		t.Fatalf("parts = %d, want 3", len(parts))
	}
	if strings.Join(parts, "") != long {
		t.Error("chunks do not reassemble into the source string")
	}
	for i, p := range parts {
		if n := len([]rune(p)); n > 10 {
			t.Errorf("part %d has %d runes", i, n)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{4000, "4000"},
		{0, "0"},
		{99.5, "99.50"},
		{-1000, "-1000"},
	}
	for _, tt := range tests {
		if got := formatMoney(tt.in); got != tt.want {
			t.Errorf("formatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatProductLineMarksLowStock(t *testing.T) {
	low := formatProductLine(products.Product{ID: 1, Name: "Уголь", Quantity: 2}, 10)
	if !strings.Contains(low, "⚠️") {
		t.Error("low stock line missing warning marker")
	}
	ok := formatProductLine(products.Product{ID: 2, Name: "Табак", Quantity: 50}, 10)
	if strings.Contains(ok, "⚠️") {
		t.Error("normal stock line has warning marker")
	}
}

func TestFormatReportSummary(t *testing.T) {
	rep := &reports.Report{
		Date: "2026-08-31", Total: 50000, Cash: 20000, Card: 25000, Bar: 5000,
		HookahCount: 12, Expenses: 3000, StartingCash: 4000, Balance: 21000,
	}
	got := formatReportSummary(rep, "создан")
	for _, want := range []string{
		"2026-08-31", "создан",
		"Общая сумма: 50000 ₽",
		"Количество кальянов: 12 шт.",
		"Начальная касса: 4000 ₽",
		"Остаток в кассе: 21000 ₽",
		"Чистая прибыль: 47000 ₽",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}
