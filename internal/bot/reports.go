package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/soralabs/warehouse-bot/internal/domain/notify"
	"github.com/soralabs/warehouse-bot/internal/domain/reports"
	"github.com/soralabs/warehouse-bot/internal/session"
)

const reportHistoryLimit = 10

func today() string { return time.Now().Format("2006-01-02") }

func (b *Bot) reportMenu(ctx context.Context, msg *tgbotapi.Message) {
	if _, ok := b.gate(ctx, msg, false); !ok {
		return
	}
	b.replyKB(msg.Chat.ID, "📝 Отчёты по смене:", reportKeyboard())
}

func (b *Bot) createReportStart(ctx context.Context, msg *tgbotapi.Message) {
	u, ok := b.gate(ctx, msg, false)
	if !ok {
		return
	}
	date := today()
	exists, err := b.reports.Exists(ctx, u.ID, date)
	if err != nil {
		b.log.Error("report lookup failed", "user", u.ID, "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка при проверке отчёта.")
		return
	}
	if exists {
		b.replyKB(msg.Chat.ID,
			"⚠️ Отчёт за сегодня уже существует.\nИспользуйте «🔄 Обновить отчёт», чтобы изменить его.",
			reportKeyboard())
		return
	}

	draft := session.NewCreateDraft(date)
	b.sessions.Set(u.ID, session.StateReportCreate, session.Data{Report: draft})
	b.replyKB(msg.Chat.ID,
		fmt.Sprintf("📋 Создание отчёта за %s.\n\n%s", date, reportPrompt(draft)),
		cancelKeyboard())
}

func (b *Bot) updateReportStart(ctx context.Context, msg *tgbotapi.Message) {
	u, ok := b.gate(ctx, msg, false)
	if !ok {
		return
	}
	date := today()
	rep, err := b.reports.Get(ctx, u.ID, date)
	if err != nil {
		b.log.Error("report lookup failed", "user", u.ID, "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка при получении отчёта.")
		return
	}
	if rep == nil {
		b.replyKB(msg.Chat.ID,
			"❌ Отчёт за сегодня ещё не создан.\nСначала используйте «📋 Создать отчёт».",
			reportKeyboard())
		return
	}

	current := [session.ReportFieldCount]float64{
		rep.Total, rep.Cash, rep.Card, rep.Bar, float64(rep.HookahCount), rep.Expenses,
	}
	draft := session.NewUpdateDraft(date, current)
	b.sessions.Set(u.ID, session.StateReportUpdate, session.Data{Report: draft})
	b.replyKB(msg.Chat.ID,
		fmt.Sprintf("🔄 Обновление отчёта за %s.\nНажмите «⏭ Пропустить», чтобы оставить поле без изменений.\n\n%s",
			date, reportPrompt(draft)),
		skipKeyboard())
}

// reportPrompt подсказка для поля под курсором; при обновлении показывает
// текущее сохранённое значение
func reportPrompt(d *session.ReportDraft) string {
	f := d.Field()
	if !d.Update {
		return fmt.Sprintf("Введите %s:", f.Label())
	}
	if f.IsCount() {
		return fmt.Sprintf("Введите %s (текущее: %d шт.):", f.Label(), int(d.Current()))
	}
	return fmt.Sprintf("Введите %s (текущее: %s ₽):", f.Label(), formatMoney(d.Current()))
}

func (b *Bot) flowReport(ctx context.Context, msg *tgbotapi.Message, st session.State, data session.Data) {
	uid := msg.From.ID
	draft := data.Report
	if draft == nil || draft.Done() {
		b.sessions.Clear(uid)
		b.replyKB(msg.Chat.ID, "❌ Создание отчета отменено", reportKeyboard())
		return
	}

	var done bool
	if session.Recognize(msg.Text) == session.TokenSkip {
		if !draft.Update {
			b.reply(msg.Chat.ID, "❌ При создании отчёта пропускать поля нельзя.\n"+reportPrompt(draft))
			return
		}
		done = draft.Skip()
	} else {
		var v float64
		var err error
		if draft.Field().IsCount() {
			var n int
			n, err = session.ParseCount(msg.Text)
			v = float64(n)
		} else {
			v, err = session.ParseAmount(msg.Text)
		}
		if err != nil {
			if errors.Is(err, session.ErrNegative) {
				b.reply(msg.Chat.ID, "❌ Значение не может быть отрицательным.\n"+reportPrompt(draft))
			} else {
				b.reply(msg.Chat.ID, "❌ Введите корректное число.\n"+reportPrompt(draft))
			}
			return
		}
		done = draft.Apply(v)
	}

	if !done {
		b.sessions.Set(uid, st, session.Data{Report: draft})
		if draft.Update {
			b.replyKB(msg.Chat.ID, reportPrompt(draft), skipKeyboard())
		} else {
			b.replyKB(msg.Chat.ID, reportPrompt(draft), cancelKeyboard())
		}
		return
	}

	b.sessions.Clear(uid)
	b.saveReport(ctx, msg, uid, draft)
}

func (b *Bot) saveReport(ctx context.Context, msg *tgbotapi.Message, uid int64, draft *session.ReportDraft) {
	rep := &reports.Report{
		UserID:       uid,
		Date:         draft.Date,
		Total:        draft.Values[session.FieldTotal],
		Cash:         draft.Values[session.FieldCash],
		Card:         draft.Values[session.FieldCard],
		Bar:          draft.Values[session.FieldBar],
		HookahCount:  int(draft.Values[session.FieldHookah]),
		Expenses:     draft.Values[session.FieldExpenses],
		StartingCash: b.startingCash,
	}
	rep.Balance = reports.Balance(rep.StartingCash, rep.Cash, rep.Expenses)

	var (
		err    error
		action string
	)
	if draft.Update {
		action = "обновлён"
		var ok bool
		ok, err = b.reports.Update(ctx, rep)
		if err == nil && !ok {
			err = errors.New("report row disappeared")
		}
	} else {
		action = "создан"
		err = b.reports.Insert(ctx, rep)
	}
	if err != nil {
		b.log.Error("report save failed", "user", uid, "err", err)
		b.replyKB(msg.Chat.ID, "❌ Ошибка при сохранении отчёта. Попробуйте ещё раз.", reportKeyboard())
		return
	}

	summary := formatReportSummary(rep, action)
	b.replyKB(msg.Chat.ID, summary, reportKeyboard())
	if chatID, ok := b.notificationChat(ctx, notify.TypeReports); ok && chatID != msg.Chat.ID {
		b.pushReportSummary(chatID, msg, summary)
	}

	if draft.Update {
		b.logAction(ctx, uid, "Обновление отчёта", "Отчёт за "+draft.Date)
	} else {
		b.logAction(ctx, uid, "Создание отчёта", "Отчёт за "+draft.Date)
	}
}

// pushReportSummary отправка отчёта в настроенный чат. Сбой доставки
// не мешает сохранению, но о нём предупреждается автор отчёта.
func (b *Bot) pushReportSummary(chatID int64, msg *tgbotapi.Message, summary string) {
	name := msg.From.FirstName
	if name == "" {
		name = "Пользователь"
	}
	uname := "без username"
	if msg.From.UserName != "" {
		uname = "@" + msg.From.UserName
	}
	text := fmt.Sprintf("👤 %s (%s)\n\n%s", name, uname, summary)
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.log.Error("report notification failed", "chat", chatID, "err", err)
		b.reply(msg.Chat.ID, "❌ Не удалось отправить отчет в группу")
	}
}

func (b *Bot) reportHistory(ctx context.Context, msg *tgbotapi.Message) {
	u, ok := b.gate(ctx, msg, false)
	if !ok {
		return
	}
	list, err := b.reports.ListRecent(ctx, u.ID, reportHistoryLimit)
	if err != nil {
		b.log.Error("report history failed", "user", u.ID, "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка при получении истории отчётов.")
		return
	}
	if len(list) == 0 {
		b.replyKB(msg.Chat.ID, "📭 У вас пока нет отчётов.", reportKeyboard())
		return
	}
	kb := reportKeyboard()
	b.replyLong(msg.Chat.ID, formatReportHistory(list), &kb)
}
