package bot

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/soralabs/warehouse-bot/internal/domain/products"
)

func TestBuildProductsWorkbook(t *testing.T) {
	cat := "Табак"
	added := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	list := []products.Product{
		{ID: 1, Name: "Уголь кокосовый", Quantity: 3, AddedAt: added},
		{ID: 2, Name: "DarkSide", Quantity: 40, Category: &cat, AddedAt: added},
	}

	f, err := BuildProductsWorkbook(list)
	if err != nil {
		t.Fatalf("BuildProductsWorkbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	// файл должен читаться обратно
	back, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() { _ = back.Close() }()

	sheet := back.GetSheetName(back.GetActiveSheetIndex())
	tests := []struct {
		cell, want string
	}{
		{"A1", "ID"},
		{"B1", "Название"},
		{"C1", "Количество"},
		{"D1", "Категория"},
		{"B2", "Уголь кокосовый"},
		{"C2", "3"},
		{"D2", "не указана"},
		{"B3", "DarkSide"},
		{"D3", "Табак"},
		{"E3", "2026-08-31 12:00:00"},
	}
	for _, tt := range tests {
		got, err := back.GetCellValue(sheet, tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("cell %s = %q, want %q", tt.cell, got, tt.want)
		}
	}
}
