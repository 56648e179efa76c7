package session

// State тег активного многошагового диалога пользователя
type State string

const (
	StateIdle State = ""

	// Склад
	StateAddingName      State = "adding_name"
	StateAddingQuantity  State = "adding_quantity"
	StateAddingCategory  State = "adding_category"
	StateEditingName     State = "editing_name"
	StateEditingQuantity State = "editing_quantity"
	StateEditingCategory State = "editing_category"
	StateSearching       State = "searching"

	// Отчёты по смене
	StateReportCreate State = "report_create"
	StateReportUpdate State = "report_update"

	// Управление пользователями (ввод числового ID)
	StatePromotingUser State = "promoting_user"
	StateBanningUser   State = "banning_user"
	StateUnbanningUser State = "unbanning_user"
	StateDemotingUser  State = "demoting_user"
)

// Token управляющий ввод, распознаваемый до разбора значения поля
type Token int

const (
	TokenNone Token = iota
	TokenCancel
	TokenSkip
)

const (
	CancelText = "❌ Отмена"
	SkipText   = "⏭ Пропустить"
	// категория при добавлении товара исторически пропускается без эмодзи
	SkipPlainText = "Пропустить"
)

// Recognize сопоставляет текст сообщения с управляющим токеном
func Recognize(text string) Token {
	switch text {
	case CancelText:
		return TokenCancel
	case SkipText, SkipPlainText:
		return TokenSkip
	}
	return TokenNone
}

// Data типизированные черновые данные активного диалога
type Data struct {
	Product *ProductDraft
	Report  *ReportDraft
	EditID  int64 // товар, выбранный для редактирования
}
