package session

// ProductDraft частично введённый товар
type ProductDraft struct {
	Name     string
	Quantity int
	Category *string
}

// ReportField поле отчёта по смене; порядок полей фиксирован
type ReportField int

const (
	FieldTotal ReportField = iota
	FieldCash
	FieldCard
	FieldBar
	FieldHookah
	FieldExpenses

	ReportFieldCount = int(FieldExpenses) + 1
)

var reportFieldLabels = [ReportFieldCount]string{
	"общую сумму выручки",
	"сумму наличных",
	"сумму безналичных",
	"выручку по бару",
	"количество проданных кальянов",
	"сумму расходов",
}

func (f ReportField) Label() string { return reportFieldLabels[f] }

// IsCount поле вводится как целое количество, а не денежная сумма
func (f ReportField) IsCount() bool { return f == FieldHookah }

// ReportDraft пошаговый ввод отчёта; при обновлении Values предзаполнены
// текущими значениями, и отдельные поля можно пропустить
type ReportDraft struct {
	Date   string // YYYY-MM-DD
	Update bool
	Cursor int
	Values [ReportFieldCount]float64
}

func NewCreateDraft(date string) *ReportDraft {
	return &ReportDraft{Date: date}
}

func NewUpdateDraft(date string, current [ReportFieldCount]float64) *ReportDraft {
	return &ReportDraft{Date: date, Update: true, Values: current}
}

func (d *ReportDraft) Field() ReportField { return ReportField(d.Cursor) }

func (d *ReportDraft) Done() bool { return d.Cursor >= ReportFieldCount }

// Current текущее сохранённое значение поля под курсором (для подсказки при обновлении)
func (d *ReportDraft) Current() float64 { return d.Values[d.Cursor] }

// Apply записывает значение текущего поля и сдвигает курсор.
// Возвращает true, когда все поля заполнены.
func (d *ReportDraft) Apply(v float64) bool {
	d.Values[d.Cursor] = v
	d.Cursor++
	return d.Done()
}

// Skip оставляет текущее значение поля без изменений (только при обновлении)
func (d *ReportDraft) Skip() bool {
	d.Cursor++
	return d.Done()
}
