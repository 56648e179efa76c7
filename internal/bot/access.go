package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/soralabs/warehouse-bot/internal/domain/users"
)

type decision int

const (
	admitted decision = iota
	deniedUnregistered
	deniedBanned
	deniedUnapproved
	deniedNotAdmin
)

func (d decision) String() string {
	switch d {
	case admitted:
		return "admitted"
	case deniedUnregistered:
		return "unregistered"
	case deniedBanned:
		return "banned"
	case deniedUnapproved:
		return "unapproved"
	case deniedNotAdmin:
		return "not_admin"
	}
	return "unknown"
}

// decide выносит ровно одно решение по доступу. Главный администратор
// считается одобренным админом вне зависимости от флагов в БД.
func decide(u *users.User, principal int64, needAdmin bool) decision {
	if u == nil {
		return deniedUnregistered
	}
	if u.ID == principal {
		return admitted
	}
	if u.IsBanned {
		return deniedBanned
	}
	if !u.IsApproved {
		return deniedUnapproved
	}
	if needAdmin && !u.IsAdmin {
		return deniedNotAdmin
	}
	return admitted
}

func denialText(d decision) string {
	switch d {
	case deniedBanned:
		return "❌ Ваш доступ к боту заблокирован."
	case deniedUnapproved:
		return "❌ Ваш доступ к боту еще не подтвержден администратором. Ожидайте одобрения."
	case deniedNotAdmin:
		return "❌ У вас нет прав администратора для выполнения этого действия."
	}
	return "❌ Доступ запрещён."
}

// registerIfNeeded авто-регистрация при первом входящем сообщении.
// Возвращает строку пользователя (свежую) и признак, что регистрация произошла.
func (b *Bot) registerIfNeeded(ctx context.Context, msg *tgbotapi.Message) (*users.User, bool, error) {
	from := msg.From
	u, err := b.users.Get(ctx, from.ID)
	if err != nil {
		return nil, false, err
	}
	if u != nil {
		return u, false, nil
	}

	seedAdmin := from.ID == b.principal
	created, err := b.users.Register(ctx, from.ID, from.UserName, from.FirstName, seedAdmin)
	if err != nil {
		return nil, false, err
	}
	if created && !seedAdmin {
		b.reply(msg.Chat.ID,
			"✅ Вы успешно зарегистрированы!\n"+
				"⏳ Ожидайте подтверждения доступа администратором.")
		b.log.Info("new user registered", "user", from.ID, "name", from.FirstName)

		notification := fmt.Sprintf(
			"👤 Новый пользователь!\n"+
				"🆔 ID: %d\n"+
				"👨‍💼 Имя: %s\n"+
				"📎 Username: @%s\n\n"+
				"Для одобрения доступа используйте админ-панель.",
			from.ID, from.FirstName, from.UserName)
		if _, err := b.api.Send(tgbotapi.NewMessage(b.principal, notification)); err != nil {
			b.log.Error("registration notification failed", "err", err)
		}
	}
	u, err = b.users.Get(ctx, from.ID)
	return u, created, err
}

// gate единственная точка принятия решения о доступе перед обработчиком:
// авто-регистрация → бан → одобрение → (для админских действий) роль.
func (b *Bot) gate(ctx context.Context, msg *tgbotapi.Message, needAdmin bool) (*users.User, bool) {
	u, _, err := b.registerIfNeeded(ctx, msg)
	if err != nil {
		b.log.Error("registration failed", "user", msg.From.ID, "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка регистрации. Обратитесь к администратору.")
		return nil, false
	}

	d := decide(u, b.principal, needAdmin)
	if d != admitted {
		accessDeniedTotal.WithLabelValues(d.String()).Inc()
		b.reply(msg.Chat.ID, denialText(d))
		return nil, false
	}
	return u, true
}

// gateCallback проверка доступа для нажатий inline-кнопок (без авто-регистрации)
func (b *Bot) gateCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, needAdmin bool) (*users.User, bool) {
	u, err := b.users.Get(ctx, cb.From.ID)
	if err != nil {
		b.log.Error("callback user lookup failed", "user", cb.From.ID, "err", err)
		b.answerCallback(cb, "❌ Ошибка доступа")
		return nil, false
	}
	d := decide(u, b.principal, needAdmin)
	if d != admitted {
		accessDeniedTotal.WithLabelValues(d.String()).Inc()
		b.answerCallback(cb, denialText(d))
		return nil, false
	}
	return u, true
}
