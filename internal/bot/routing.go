package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/soralabs/warehouse-bot/internal/domain/notify"
	"github.com/soralabs/warehouse-bot/internal/session"
)

func (b *Bot) onMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Text == "" && !msg.IsCommand() {
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	uid := msg.From.ID
	st, data := b.sessions.Get(uid)

	// Токен отмены обрабатывается до любого разбора ввода
	if session.Recognize(msg.Text) == session.TokenCancel {
		b.cancelFlow(ctx, msg, st)
		return
	}

	if st != session.StateIdle {
		b.continueFlow(ctx, msg, st, data)
		return
	}

	if b.dispatchMenu(ctx, msg) {
		return
	}

	// Нераспознанный текст: в личке сбрасываем в главное меню,
	// в группах молча игнорируем
	if msg.Chat.IsPrivate() {
		b.sessions.Clear(uid)
		b.log.Info("unrecognized input", "user", uid, "text", msg.Text)
		b.showMainMenu(ctx, msg, "Не понимаю. Возвращаю в главное меню:")
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		u, ok := b.gate(ctx, msg, false)
		if !ok {
			return
		}
		b.sessions.Clear(u.ID)
		b.replyKB(msg.Chat.ID, "🛒 Добро пожаловать в складской бот!",
			mainKeyboard(u.IsAdmin || u.ID == b.principal))
		b.logAction(ctx, u.ID, "Запуск бота", "Пользователь вошел в систему")

	case "id":
		// доступно без регистрации: нужен для настройки чатов уведомлений
		chatType := "личные сообщения"
		switch {
		case msg.Chat.IsGroup():
			chatType = "группа"
		case msg.Chat.IsSuperGroup():
			chatType = "супергруппа"
		case msg.Chat.IsChannel():
			chatType = "канал"
		}
		b.reply(msg.Chat.ID, fmt.Sprintf(
			"ℹ️ Информация о чате:\nТип: %s\nID чата: %d\n\n"+
				"Этот ID можно использовать для настройки уведомлений в админ-панели.",
			chatType, msg.Chat.ID))

	case "help":
		b.reply(msg.Chat.ID,
			"Команды:\n/start — начать работу\n/id — показать ID чата\n/help — помощь")

	default:
		if msg.Chat.IsPrivate() {
			b.reply(msg.Chat.ID, "Не знаю такую команду. Наберите /help")
		}
	}
}

// dispatchMenu точное совпадение текста с кнопкой меню
func (b *Bot) dispatchMenu(ctx context.Context, msg *tgbotapi.Message) bool {
	switch msg.Text {
	// Главное меню
	case btnWarehouse:
		b.warehouseMenu(ctx, msg)
	case btnReports:
		b.reportMenu(ctx, msg)
	case btnExport:
		b.exportProducts(ctx, msg)
	case btnAdminPanel:
		b.adminPanel(ctx, msg)
	case btnBackToMain:
		b.showMainMenu(ctx, msg, "Главное меню:")

	// Склад
	case btnAddProduct:
		b.addProductStart(ctx, msg)
	case btnViewWarehouse:
		b.viewWarehouse(ctx, msg)
	case btnSearchProduct:
		b.searchProductStart(ctx, msg)
	case btnEditProduct:
		b.editProductStart(ctx, msg)
	case btnDeleteProduct:
		b.deleteProductStart(ctx, msg)
	case btnCheckStock:
		b.checkLowStock(ctx, msg)

	// Отчёты
	case btnCreateReport:
		b.createReportStart(ctx, msg)
	case btnUpdateReport:
		b.updateReportStart(ctx, msg)
	case btnReportHistory:
		b.reportHistory(ctx, msg)

	// Админ-панель
	case btnUserManagement:
		b.userManagementMenu(ctx, msg)
	case btnAccessManagement:
		b.accessManagementMenu(ctx, msg)
	case btnStats:
		b.statsScreen(ctx, msg)
	case btnActionLogs:
		b.actionLogScreen(ctx, msg)
	case btnNotifications:
		b.notificationMenu(ctx, msg)
	case btnBackToAdmin:
		b.backToAdminPanel(ctx, msg)

	// Управление пользователями
	case btnListUsers, btnListAllUsers:
		b.listAllUsers(ctx, msg)
	case btnPromote:
		b.adminTargetStart(ctx, msg, session.StatePromotingUser, "Введите ID пользователя для назначения администратором:")
	case btnBanUser:
		b.adminTargetStart(ctx, msg, session.StateBanningUser, "Введите ID пользователя для блокировки:")
	case btnUnbanUser:
		b.adminTargetStart(ctx, msg, session.StateUnbanningUser, "Введите ID пользователя для разблокировки:")
	case btnDemote:
		b.adminTargetStart(ctx, msg, session.StateDemotingUser, "Введите ID пользователя для снятия прав администратора:")

	// Управление доступом
	case btnApproveAccess:
		b.approveAccessStart(ctx, msg)
	case btnRevokeAccess:
		b.revokeAccessStart(ctx, msg)
	case btnShowUnapproved:
		b.showUnapproved(ctx, msg)

	// Уведомления
	case btnViewNotifySettings:
		b.viewNotificationSettings(ctx, msg)
	case btnSetReportChat:
		b.setNotificationChat(ctx, msg, notify.TypeReports)
	case btnSetActionChat:
		b.setNotificationChat(ctx, msg, notify.TypeActions)
	case btnChatIDHelp:
		b.chatIDHelp(ctx, msg)

	default:
		return false
	}
	return true
}

// continueFlow продолжение активного диалога: ввод интерпретируется
// валидатором текущего шага
func (b *Bot) continueFlow(ctx context.Context, msg *tgbotapi.Message, st session.State, data session.Data) {
	switch st {
	case session.StateAddingName, session.StateAddingQuantity, session.StateAddingCategory:
		b.flowAddProduct(ctx, msg, st, data)
	case session.StateEditingName, session.StateEditingQuantity, session.StateEditingCategory:
		b.flowEditProduct(ctx, msg, st, data)
	case session.StateSearching:
		b.flowSearch(ctx, msg)
	case session.StateReportCreate, session.StateReportUpdate:
		b.flowReport(ctx, msg, st, data)
	case session.StatePromotingUser, session.StateBanningUser, session.StateUnbanningUser, session.StateDemotingUser:
		b.flowAdminTarget(ctx, msg, st)
	default:
		b.sessions.Clear(msg.From.ID)
	}
}

// cancelFlow универсальная отмена: черновик сбрасывается, пользователь
// возвращается в родительское меню активного диалога
func (b *Bot) cancelFlow(ctx context.Context, msg *tgbotapi.Message, st session.State) {
	uid := msg.From.ID
	b.sessions.Clear(uid)

	switch st {
	case session.StateIdle:
		// в группе случайная «Отмена» без активного диалога игнорируется
		if !msg.Chat.IsPrivate() {
			return
		}
		b.showMainMenu(ctx, msg, "Нет активных действий для отмены.")
	case session.StateReportCreate, session.StateReportUpdate:
		b.replyKB(msg.Chat.ID, "❌ Создание отчета отменено", reportKeyboard())
	case session.StatePromotingUser, session.StateBanningUser, session.StateUnbanningUser, session.StateDemotingUser:
		b.replyKB(msg.Chat.ID, "❌ Действие отменено", userManagementKeyboard())
	default:
		b.replyKB(msg.Chat.ID, "❌ Действие отменено", warehouseKeyboard())
	}
}

func (b *Bot) showMainMenu(ctx context.Context, msg *tgbotapi.Message, text string) {
	u, ok := b.gate(ctx, msg, false)
	if !ok {
		return
	}
	b.replyKB(msg.Chat.ID, text, mainKeyboard(u.IsAdmin || u.ID == b.principal))
}

func (b *Bot) onCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	act, err := parseCallback(cb.Data)
	if err != nil {
		b.log.Warn("malformed callback", "data", cb.Data)
		b.answerCallback(cb, "")
		return
	}
	if cb.Message == nil {
		b.answerCallback(cb, "")
		return
	}

	if _, ok := b.gateCallback(ctx, cb, adminVerb(act.Verb)); !ok {
		return
	}

	switch act.Verb {
	case verbUser:
		b.handleUserSelected(ctx, cb, act.TargetID)
	case verbApprove, verbDisapprove, verbBan, verbUnban, verbPromote, verbDemote:
		b.handleUserAction(ctx, cb, act.Verb, act.TargetID)
	case verbEdit:
		b.handleEditSelected(ctx, cb, act.TargetID)
	case verbEditName, verbEditQty, verbEditCat:
		b.handleEditField(ctx, cb, act.Verb, act.TargetID)
	case verbDelete:
		b.handleDeleteProduct(ctx, cb, act.TargetID)
	default:
		b.answerCallback(cb, "")
	}
}
