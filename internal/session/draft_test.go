package session

import "testing"

func TestRecognize(t *testing.T) {
	tests := []struct {
		text string
		want Token
	}{
		{CancelText, TokenCancel},
		{SkipText, TokenSkip},
		{SkipPlainText, TokenSkip},
		{"отмена", TokenNone},
		{"", TokenNone},
		{"123", TokenNone},
	}
	for _, tt := range tests {
		if got := Recognize(tt.text); got != tt.want {
			t.Errorf("Recognize(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestReportDraftCreateWalk(t *testing.T) {
	d := NewCreateDraft("2026-08-31")
	if d.Update {
		t.Fatal("create draft marked as update")
	}

	values := []float64{50000, 20000, 25000, 5000, 12, 3000}
	for i, v := range values {
		if d.Done() {
			t.Fatalf("done after %d fields, want %d", i, ReportFieldCount)
		}
		if int(d.Field()) != i {
			t.Fatalf("cursor at %d, want %d", d.Field(), i)
		}
		done := d.Apply(v)
		if done != (i == len(values)-1) {
			t.Fatalf("Apply #%d returned done=%v", i, done)
		}
	}

	if d.Values[FieldHookah] != 12 {
		t.Errorf("hookah = %v, want 12", d.Values[FieldHookah])
	}
	if d.Values[FieldExpenses] != 3000 {
		t.Errorf("expenses = %v, want 3000", d.Values[FieldExpenses])
	}
}

func TestReportDraftUpdateSkipKeepsValues(t *testing.T) {
	current := [ReportFieldCount]float64{100, 40, 50, 10, 3, 20}
	d := NewUpdateDraft("2026-08-31", current)
	if !d.Update {
		t.Fatal("update draft not marked")
	}

	// total пропускаем, наличные меняем, остальное пропускаем
	if d.Skip() {
		t.Fatal("done too early")
	}
	if d.Current() != 40 {
		t.Fatalf("current = %v, want 40", d.Current())
	}
	d.Apply(77)
	for !d.Done() {
		d.Skip()
	}

	want := [ReportFieldCount]float64{100, 77, 50, 10, 3, 20}
	if d.Values != want {
		t.Fatalf("values = %v, want %v", d.Values, want)
	}
}

func TestReportFieldIsCount(t *testing.T) {
	for f := FieldTotal; f <= FieldExpenses; f++ {
		want := f == FieldHookah
		if got := f.IsCount(); got != want {
			t.Errorf("IsCount(%s) = %v, want %v", f.Label(), got, want)
		}
	}
}
