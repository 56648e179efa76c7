package notify

// Типы уведомлений: на каждый тип не более одного чата назначения
const (
	TypeReports = "reports"
	TypeActions = "actions"
)

type Setting struct {
	Type   string
	ChatID string
}
