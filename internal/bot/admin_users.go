package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/soralabs/warehouse-bot/internal/domain/users"
	"github.com/soralabs/warehouse-bot/internal/session"
)

const actionLogLimit = 50

func (b *Bot) adminPanel(ctx context.Context, msg *tgbotapi.Message) {
	if _, ok := b.gate(ctx, msg, true); !ok {
		return
	}
	b.replyKB(msg.Chat.ID, "👑 Админ-панель:", adminKeyboard())
}

func (b *Bot) backToAdminPanel(ctx context.Context, msg *tgbotapi.Message) {
	b.adminPanel(ctx, msg)
}

func (b *Bot) userManagementMenu(ctx context.Context, msg *tgbotapi.Message) {
	if _, ok := b.gate(ctx, msg, true); !ok {
		return
	}
	b.replyKB(msg.Chat.ID, "👥 Управление пользователями:", userManagementKeyboard())
}

func (b *Bot) accessManagementMenu(ctx context.Context, msg *tgbotapi.Message) {
	if _, ok := b.gate(ctx, msg, true); !ok {
		return
	}
	b.replyKB(msg.Chat.ID, "🔒 Управление доступом:", accessManagementKeyboard())
}

// userPickKeyboard инлайн-список пользователей; текст кнопки только для
// отображения, цель действия несут callback-данные
func userPickKeyboard(list []users.User, verb string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(list))
	for i := range list {
		u := &list[i]
		label := fmt.Sprintf("%s %s (%s)", userBadges(*u), nameOr(u), usernameOr(u))
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(label, callbackData(verb, u.ID)),
		})
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func (b *Bot) listAllUsers(ctx context.Context, msg *tgbotapi.Message) {
	if _, ok := b.gate(ctx, msg, true); !ok {
		return
	}
	list, err := b.users.List(ctx)
	if err != nil {
		b.log.Error("user list failed", "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка при получении списка пользователей.")
		return
	}
	if len(list) == 0 {
		b.reply(msg.Chat.ID, "📭 Пользователей пока нет.")
		return
	}
	m := tgbotapi.NewMessage(msg.Chat.ID, fmt.Sprintf(
		"👥 Пользователи (%d):\n👑 админ, 🚫 заблокирован, ✅ одобрен, ⏳ ожидает\n\nВыберите пользователя:",
		len(list)))
	m.ReplyMarkup = userPickKeyboard(list, verbUser)
	b.send(m)
}

// handleUserSelected карточка пользователя с кнопками действий,
// зависящими от его текущих флагов
func (b *Bot) handleUserSelected(ctx context.Context, cb *tgbotapi.CallbackQuery, targetID int64) {
	target, err := b.users.Get(ctx, targetID)
	if err != nil {
		b.log.Error("user lookup failed", "id", targetID, "err", err)
		b.answerCallback(cb, "❌ Ошибка")
		return
	}
	if target == nil {
		b.answerCallback(cb, "❌ Пользователь не найден")
		return
	}
	b.answerCallback(cb, "")

	var rows [][]tgbotapi.InlineKeyboardButton
	if target.IsApproved {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🚫 Запретить доступ", callbackData(verbDisapprove, targetID))))
	} else {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Одобрить доступ", callbackData(verbApprove, targetID))))
	}
	if target.IsBanned {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Разблокировать", callbackData(verbUnban, targetID))))
	} else {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🚫 Заблокировать", callbackData(verbBan, targetID))))
	}
	if target.IsAdmin {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Снять админа", callbackData(verbDemote, targetID))))
	} else {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚡ Назначить админом", callbackData(verbPromote, targetID))))
	}

	m := tgbotapi.NewMessage(cb.Message.Chat.ID, formatUserCard(target))
	m.ReplyMarkup = tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
	b.send(m)
}

type userActionOutcome struct {
	adminText  string // ответ администратору
	targetText string // уведомление целевому пользователю, пусто — не слать
	logAction  string
}

// execUserAction применяет админское действие к пользователю.
// Главный администратор не может быть целью ни одного действия.
func (b *Bot) execUserAction(ctx context.Context, actorID int64, verb string, targetID int64) userActionOutcome {
	if targetID == b.principal {
		return userActionOutcome{adminText: "❌ Это действие нельзя применить к главному администратору."}
	}

	target, err := b.users.Get(ctx, targetID)
	if err != nil {
		b.log.Error("user lookup failed", "id", targetID, "err", err)
		return userActionOutcome{adminText: "❌ Ошибка при поиске пользователя."}
	}
	if target == nil {
		return userActionOutcome{adminText: fmt.Sprintf("❌ Пользователь с ID %d не найден.", targetID)}
	}

	var (
		ok  bool
		out userActionOutcome
	)
	switch verb {
	case verbApprove:
		ok, err = b.users.SetApproved(ctx, targetID, true)
		out = userActionOutcome{
			adminText:  fmt.Sprintf("✅ Доступ пользователю %s (ID %d) одобрен.", nameOr(target), targetID),
			targetText: "✅ Ваш доступ к боту одобрен! Наберите /start для начала работы.",
			logAction:  "Одобрение доступа",
		}
	case verbDisapprove:
		ok, err = b.users.SetApproved(ctx, targetID, false)
		out = userActionOutcome{
			adminText:  fmt.Sprintf("🚫 Доступ пользователю %s (ID %d) запрещён.", nameOr(target), targetID),
			targetText: "🚫 Ваш доступ к боту отозван администратором.",
			logAction:  "Запрет доступа",
		}
	case verbBan:
		ok, err = b.users.SetBanned(ctx, targetID, true)
		out = userActionOutcome{
			adminText:  fmt.Sprintf("🚫 Пользователь %s (ID %d) заблокирован.", nameOr(target), targetID),
			targetText: "🚫 Вы были заблокированы администратором.",
			logAction:  "Блокировка пользователя",
		}
	case verbUnban:
		ok, err = b.users.SetBanned(ctx, targetID, false)
		out = userActionOutcome{
			adminText:  fmt.Sprintf("✅ Пользователь %s (ID %d) разблокирован.", nameOr(target), targetID),
			targetText: "✅ Вы были разблокированы администратором.",
			logAction:  "Разблокировка пользователя",
		}
	case verbPromote:
		ok, err = b.users.SetAdmin(ctx, targetID, true)
		out = userActionOutcome{
			adminText:  fmt.Sprintf("⚡ Пользователь %s (ID %d) назначен администратором.", nameOr(target), targetID),
			targetText: "⚡ Вам выданы права администратора. Наберите /start, чтобы обновить меню.",
			logAction:  "Назначение администратора",
		}
	case verbDemote:
		ok, err = b.users.SetAdmin(ctx, targetID, false)
		out = userActionOutcome{
			adminText:  fmt.Sprintf("❌ С пользователя %s (ID %d) сняты права администратора.", nameOr(target), targetID),
			targetText: "❌ С вас сняты права администратора.",
			logAction:  "Снятие администратора",
		}
	default:
		return userActionOutcome{adminText: "❌ Неизвестное действие."}
	}

	if err != nil {
		b.log.Error("user action failed", "verb", verb, "id", targetID, "err", err)
		return userActionOutcome{adminText: "❌ Ошибка при выполнении действия."}
	}
	if !ok {
		return userActionOutcome{adminText: fmt.Sprintf("❌ Пользователь с ID %d не найден.", targetID)}
	}

	if out.targetText != "" {
		if _, err := b.api.Send(tgbotapi.NewMessage(targetID, out.targetText)); err != nil {
			b.log.Warn("target notification failed", "id", targetID, "err", err)
		}
	}
	b.logAction(ctx, actorID, out.logAction, fmt.Sprintf("Цель: %s (ID %d)", nameOr(target), targetID))
	return out
}

func (b *Bot) handleUserAction(ctx context.Context, cb *tgbotapi.CallbackQuery, verb string, targetID int64) {
	out := b.execUserAction(ctx, cb.From.ID, verb, targetID)
	b.answerCallback(cb, "")
	b.reply(cb.Message.Chat.ID, out.adminText)
}

// adminTargetStart запуск ввода числового ID для админского действия
func (b *Bot) adminTargetStart(ctx context.Context, msg *tgbotapi.Message, st session.State, prompt string) {
	u, ok := b.gate(ctx, msg, true)
	if !ok {
		return
	}
	b.sessions.Set(u.ID, st, session.Data{})
	b.replyKB(msg.Chat.ID, prompt, cancelKeyboard())
}

func (b *Bot) flowAdminTarget(ctx context.Context, msg *tgbotapi.Message, st session.State) {
	uid := msg.From.ID
	targetID, err := session.ParseID(msg.Text)
	if err != nil {
		b.reply(msg.Chat.ID, "❌ Введите корректный числовой ID пользователя:")
		return
	}
	b.sessions.Clear(uid)

	var verb string
	switch st {
	case session.StatePromotingUser:
		verb = verbPromote
	case session.StateBanningUser:
		verb = verbBan
	case session.StateUnbanningUser:
		verb = verbUnban
	case session.StateDemotingUser:
		verb = verbDemote
	default:
		b.replyKB(msg.Chat.ID, "❌ Действие отменено", userManagementKeyboard())
		return
	}

	out := b.execUserAction(ctx, uid, verb, targetID)
	b.replyKB(msg.Chat.ID, out.adminText, userManagementKeyboard())
}

func (b *Bot) approveAccessStart(ctx context.Context, msg *tgbotapi.Message) {
	if _, ok := b.gate(ctx, msg, true); !ok {
		return
	}
	list, err := b.users.ListUnapproved(ctx)
	if err != nil {
		b.log.Error("unapproved list failed", "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка при получении списка пользователей.")
		return
	}
	if len(list) == 0 {
		b.replyKB(msg.Chat.ID, "✅ Нет пользователей, ожидающих одобрения.", accessManagementKeyboard())
		return
	}
	m := tgbotapi.NewMessage(msg.Chat.ID, "✅ Выберите пользователя для одобрения доступа:")
	m.ReplyMarkup = userPickKeyboard(list, verbApprove)
	b.send(m)
}

func (b *Bot) revokeAccessStart(ctx context.Context, msg *tgbotapi.Message) {
	if _, ok := b.gate(ctx, msg, true); !ok {
		return
	}
	list, err := b.users.ListApproved(ctx)
	if err != nil {
		b.log.Error("approved list failed", "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка при получении списка пользователей.")
		return
	}
	if len(list) == 0 {
		b.replyKB(msg.Chat.ID, "📭 Нет пользователей с одобренным доступом.", accessManagementKeyboard())
		return
	}
	m := tgbotapi.NewMessage(msg.Chat.ID, "🚫 Выберите пользователя для запрета доступа:")
	m.ReplyMarkup = userPickKeyboard(list, verbDisapprove)
	b.send(m)
}

func (b *Bot) showUnapproved(ctx context.Context, msg *tgbotapi.Message) {
	if _, ok := b.gate(ctx, msg, true); !ok {
		return
	}
	list, err := b.users.ListUnapproved(ctx)
	if err != nil {
		b.log.Error("unapproved list failed", "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка при получении списка пользователей.")
		return
	}
	if len(list) == 0 {
		b.replyKB(msg.Chat.ID, "✅ Нет пользователей, ожидающих одобрения.", accessManagementKeyboard())
		return
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("⏳ Ожидают одобрения (%d):\n\n", len(list)))
	for i := range list {
		u := &list[i]
		sb.WriteString(fmt.Sprintf("🆔 %d — %s (%s)\n📅 %s\n\n",
			u.ID, nameOr(u), usernameOr(u), u.AddedAt.Format("2006-01-02 15:04:05")))
	}
	kb := accessManagementKeyboard()
	b.replyLong(msg.Chat.ID, sb.String(), &kb)
}

func (b *Bot) statsScreen(ctx context.Context, msg *tgbotapi.Message) {
	if _, ok := b.gate(ctx, msg, true); !ok {
		return
	}
	counts, err := b.users.Count(ctx)
	if err != nil {
		b.log.Error("user counts failed", "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка при получении статистики.")
		return
	}
	productTotal, err := b.products.Count(ctx)
	if err != nil {
		b.log.Error("product count failed", "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка при получении статистики.")
		return
	}
	lowStock, err := b.products.CountLowStock(ctx, b.lowStock)
	if err != nil {
		b.log.Error("low stock count failed", "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка при получении статистики.")
		return
	}
	reportTotal, err := b.reports.Count(ctx)
	if err != nil {
		b.log.Error("report count failed", "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка при получении статистики.")
		return
	}

	b.replyKB(msg.Chat.ID, fmt.Sprintf(
		"📊 Статистика:\n\n"+
			"👥 Пользователи: %d\n"+
			"👑 Администраторы: %d\n"+
			"🚫 Заблокированные: %d\n"+
			"⏳ Ожидают одобрения: %d\n\n"+
			"📦 Товаров на складе: %d\n"+
			"🚨 С низким остатком: %d\n\n"+
			"📝 Отчётов по сменам: %d",
		counts.Total, counts.Admins, counts.Banned, counts.Unapproved,
		productTotal, lowStock, reportTotal), adminKeyboard())
}

func (b *Bot) actionLogScreen(ctx context.Context, msg *tgbotapi.Message) {
	if _, ok := b.gate(ctx, msg, true); !ok {
		return
	}
	entries, err := b.audit.ListRecent(ctx, actionLogLimit)
	if err != nil {
		b.log.Error("action log query failed", "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка при получении логов.")
		return
	}
	if len(entries) == 0 {
		b.replyKB(msg.Chat.ID, "📭 Логи действий пусты.", adminKeyboard())
		return
	}
	kb := adminKeyboard()
	b.replyLong(msg.Chat.ID, formatActionLog(entries), &kb)
}
