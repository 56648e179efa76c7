package bot

import (
	"context"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/soralabs/warehouse-bot/internal/domain/notify"
)

// notificationChat возвращает чат для типа уведомлений, если он настроен
// и разбирается как числовой ID
func (b *Bot) notificationChat(ctx context.Context, typ string) (int64, bool) {
	raw, err := b.notify.Get(ctx, typ)
	if err != nil {
		b.log.Error("notification setting query failed", "type", typ, "err", err)
		return 0, false
	}
	if raw == "" {
		return 0, false
	}
	chatID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		b.log.Warn("bad notification chat id", "type", typ, "value", raw)
		return 0, false
	}
	return chatID, true
}

// logAction записывает действие в журнал, обновляет отметку активности
// пользователя и рассылает уведомление. Действия главного администратора
// не транслируются.
func (b *Bot) logAction(ctx context.Context, userID int64, action, details string) {
	if err := b.audit.Insert(ctx, userID, action, details); err != nil {
		b.log.Error("action log insert failed", "user", userID, "err", err)
	}
	if err := b.users.TouchLastAction(ctx, userID); err != nil {
		b.log.Error("last action update failed", "user", userID, "err", err)
	}

	if userID == b.principal {
		return
	}

	chatID, ok := b.notificationChat(ctx, notify.TypeActions)
	if !ok {
		chatID = b.principal
	}

	u, err := b.users.Get(ctx, userID)
	if err != nil {
		b.log.Error("action notification user lookup failed", "user", userID, "err", err)
	}
	text := formatActionNotification(u, userID, action, details, time.Now())
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.log.Error("action notification failed", "chat", chatID, "err", err)
	}
}
