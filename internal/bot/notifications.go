package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/soralabs/warehouse-bot/internal/domain/notify"
)

func (b *Bot) notificationMenu(ctx context.Context, msg *tgbotapi.Message) {
	if _, ok := b.gate(ctx, msg, true); !ok {
		return
	}
	b.replyKB(msg.Chat.ID, "🔔 Управление уведомлениями:", notificationKeyboard())
}

func notificationTypeName(typ string) string {
	switch typ {
	case notify.TypeReports:
		return "отчёты по смене"
	case notify.TypeActions:
		return "действия пользователей"
	}
	return typ
}

func (b *Bot) viewNotificationSettings(ctx context.Context, msg *tgbotapi.Message) {
	if _, ok := b.gate(ctx, msg, true); !ok {
		return
	}
	settings, err := b.notify.List(ctx)
	if err != nil {
		b.log.Error("notification settings query failed", "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка при получении настроек.")
		return
	}
	if len(settings) == 0 {
		b.replyKB(msg.Chat.ID,
			"📭 Чаты уведомлений не настроены.\nУведомления отправляются главному администратору.",
			notificationKeyboard())
		return
	}
	var sb strings.Builder
	sb.WriteString("🔔 Настройки уведомлений:\n\n")
	for _, s := range settings {
		sb.WriteString(fmt.Sprintf("• %s → чат %s\n", notificationTypeName(s.Type), s.ChatID))
	}
	b.replyKB(msg.Chat.ID, sb.String(), notificationKeyboard())
}

// setNotificationChat привязывает текущий чат к типу уведомлений.
// В группе бот обязан быть администратором, иначе доставка невозможна.
func (b *Bot) setNotificationChat(ctx context.Context, msg *tgbotapi.Message, typ string) {
	if _, ok := b.gate(ctx, msg, true); !ok {
		return
	}

	if msg.Chat.IsGroup() || msg.Chat.IsSuperGroup() {
		member, err := b.api.GetChatMember(tgbotapi.GetChatMemberConfig{
			ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
				ChatID: msg.Chat.ID,
				UserID: b.self,
			},
		})
		if err != nil {
			b.log.Error("chat member check failed", "chat", msg.Chat.ID, "err", err)
			b.reply(msg.Chat.ID, "❌ Не удалось проверить права бота в этом чате.")
			return
		}
		if !member.IsAdministrator() && !member.IsCreator() {
			b.reply(msg.Chat.ID,
				"❌ Бот должен быть администратором этого чата, чтобы отправлять сюда уведомления.")
			return
		}
	}

	chatID := fmt.Sprintf("%d", msg.Chat.ID)
	if err := b.notify.Set(ctx, typ, chatID); err != nil {
		b.log.Error("notification setting save failed", "type", typ, "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка при сохранении настройки.")
		return
	}
	b.reply(msg.Chat.ID, fmt.Sprintf(
		"✅ Текущий чат (%s) установлен для уведомлений: %s.", chatID, notificationTypeName(typ)))
	b.logAction(ctx, msg.From.ID, "Настройка уведомлений",
		fmt.Sprintf("Тип: %s, чат: %s", typ, chatID))
}

func (b *Bot) chatIDHelp(ctx context.Context, msg *tgbotapi.Message) {
	if _, ok := b.gate(ctx, msg, true); !ok {
		return
	}
	b.replyKB(msg.Chat.ID,
		"❓ Как получить ID чата:\n\n"+
			"1. Добавьте бота в нужную группу и сделайте его администратором.\n"+
			"2. Отправьте в группе команду /id.\n"+
			"3. Бот ответит ID этого чата.\n\n"+
			"Затем отправьте в нужном чате кнопку «Установить текущий чат» из этого меню.",
		notificationKeyboard())
}
