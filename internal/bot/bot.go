package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/soralabs/warehouse-bot/internal/domain/audit"
	"github.com/soralabs/warehouse-bot/internal/domain/notify"
	"github.com/soralabs/warehouse-bot/internal/domain/products"
	"github.com/soralabs/warehouse-bot/internal/domain/reports"
	"github.com/soralabs/warehouse-bot/internal/domain/users"
	"github.com/soralabs/warehouse-bot/internal/session"
)

// telegramClient часть Bot API, которой пользуются обработчики
type telegramClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type Bot struct {
	api      telegramClient
	self     int64
	log      *slog.Logger
	users    *users.Repo
	products *products.Repo
	reports  *reports.Repo
	audit    *audit.Repo
	notify   *notify.Repo
	sessions *session.Store

	principal    int64
	lowStock     int
	startingCash float64
}

func New(api *tgbotapi.BotAPI, log *slog.Logger,
	usersRepo *users.Repo, productsRepo *products.Repo,
	reportsRepo *reports.Repo, auditRepo *audit.Repo,
	notifyRepo *notify.Repo, sessions *session.Store,
	principalID int64, lowStockThreshold int, startingCash float64) *Bot {

	return &Bot{
		api: api, self: api.Self.ID, log: log,
		users: usersRepo, products: productsRepo,
		reports: reportsRepo, audit: auditRepo,
		notify: notifyRepo, sessions: sessions,
		principal:    principalID,
		lowStock:     lowStockThreshold,
		startingCash: startingCash,
	}
}

func (b *Bot) Run(ctx context.Context, timeoutSec int) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeoutSec
	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd := <-updates:
			if upd.Message != nil {
				updatesTotal.WithLabelValues("message").Inc()
				b.onMessage(ctx, upd.Message)
			} else if upd.CallbackQuery != nil {
				updatesTotal.WithLabelValues("callback").Inc()
				b.onCallback(ctx, upd.CallbackQuery)
			}
		}
	}
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send failed", "err", err)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) replyKB(chatID int64, text string, kb tgbotapi.ReplyKeyboardMarkup) {
	m := tgbotapi.NewMessage(chatID, text)
	m.ReplyMarkup = kb
	b.send(m)
}

// replyLong разбивает длинный ответ на части; клавиатура уходит с последней
func (b *Bot) replyLong(chatID int64, text string, kb *tgbotapi.ReplyKeyboardMarkup) {
	parts := chunkText(text, maxMessageLen)
	for i, part := range parts {
		m := tgbotapi.NewMessage(chatID, part)
		if kb != nil && i == len(parts)-1 {
			m.ReplyMarkup = *kb
		}
		b.send(m)
	}
}

func (b *Bot) answerCallback(cb *tgbotapi.CallbackQuery, text string) {
	resp := tgbotapi.NewCallback(cb.ID, text)
	if _, err := b.api.Request(resp); err != nil {
		b.log.Error("answer callback failed", "err", err)
	}
}
