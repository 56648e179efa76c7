package products

import "testing"

func strptr(s string) *string { return &s }

func TestCategoryName(t *testing.T) {
	if got := (Product{Category: strptr("Табак")}).CategoryName(); got != "Табак" {
		t.Errorf("CategoryName = %q", got)
	}
	if got := (Product{}).CategoryName(); got != "не указана" {
		t.Errorf("nil category = %q, want fallback", got)
	}
	if got := (Product{Category: strptr("")}).CategoryName(); got != "не указана" {
		t.Errorf("empty category = %q, want fallback", got)
	}
}

func TestLowStock(t *testing.T) {
	tests := []struct {
		qty, threshold int
		want           bool
	}{
		{0, 10, true},
		{9, 10, true},
		{10, 10, false},
		{11, 10, false},
	}
	for _, tt := range tests {
		if got := LowStock(tt.qty, tt.threshold); got != tt.want {
			t.Errorf("LowStock(%d, %d) = %v, want %v", tt.qty, tt.threshold, got, tt.want)
		}
	}
}

func TestFilter(t *testing.T) {
	list := []Product{
		{ID: 1, Name: "Уголь кокосовый", Category: strptr("Расходники")},
		{ID: 2, Name: "Табак DarkSide", Category: strptr("Табак")},
		{ID: 3, Name: "Мундштуки"},
		{ID: 4, Name: "ТАБАК MustHave", Category: strptr("Табак")},
	}

	tests := []struct {
		term string
		want []int64
	}{
		{"табак", []int64{2, 4}},    // регистр не важен, ищет в названии и категории
		{"уголь", []int64{1}},
		{"расходники", []int64{1}},  // совпадение только по категории
		{"мундштуки", []int64{3}},
		{"кальян", nil},
		{"", nil},
		{"   ", nil},
	}
	for _, tt := range tests {
		got := Filter(list, tt.term)
		var ids []int64
		for _, p := range got {
			ids = append(ids, p.ID)
		}
		if len(ids) != len(tt.want) {
			t.Errorf("Filter(%q) ids = %v, want %v", tt.term, ids, tt.want)
			continue
		}
		for i := range ids {
			if ids[i] != tt.want[i] {
				t.Errorf("Filter(%q) ids = %v, want %v", tt.term, ids, tt.want)
				break
			}
		}
	}
}
