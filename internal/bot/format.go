package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/soralabs/warehouse-bot/internal/domain/audit"
	"github.com/soralabs/warehouse-bot/internal/domain/products"
	"github.com/soralabs/warehouse-bot/internal/domain/reports"
	"github.com/soralabs/warehouse-bot/internal/domain/users"
)

// Telegram ограничивает сообщение 4096 символами; режем с запасом
const maxMessageLen = 4000

func chunkText(s string, max int) []string {
	if s == "" {
		return nil
	}
	runes := []rune(s)
	if len(runes) <= max {
		return []string{s}
	}
	var parts []string
	for len(runes) > 0 {
		n := max
		if n > len(runes) {
			n = len(runes)
		}
		parts = append(parts, string(runes[:n]))
		runes = runes[n:]
	}
	return parts
}

func nameOr(u *users.User) string {
	if u == nil || u.FirstName == "" {
		return "Пользователь"
	}
	return u.FirstName
}

func usernameOr(u *users.User) string {
	if u == nil || u.Username == "" {
		return "без username"
	}
	return "@" + u.Username
}

func formatMoney(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

func formatProductLine(p products.Product, threshold int) string {
	marker := "🔹"
	if products.LowStock(p.Quantity, threshold) {
		marker = "⚠️"
	}
	return fmt.Sprintf(
		"%s ID: %d\nНазвание: %s\nКоличество: %d\nКатегория: %s\n\n",
		marker, p.ID, p.Name, p.Quantity, p.CategoryName())
}

func formatProductList(title string, list []products.Product, threshold int) string {
	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n\n")
	for _, p := range list {
		sb.WriteString(formatProductLine(p, threshold))
	}
	return sb.String()
}

func formatReportSummary(rep *reports.Report, action string) string {
	return fmt.Sprintf(
		"📝 Отчёт по смене %s %s:\n\n"+
			"• Общая сумма: %s ₽\n"+
			"• Наличные: %s ₽\n"+
			"• Безналичные: %s ₽\n"+
			"• Бар: %s ₽\n"+
			"🚬 Количество кальянов: %d шт.\n"+
			"• Расходы: %s ₽\n"+
			"🏦 Начальная касса: %s ₽\n"+
			"• Остаток в кассе: %s ₽\n\n"+
			"💸 Чистая прибыль: %s ₽",
		rep.Date, action,
		formatMoney(rep.Total), formatMoney(rep.Cash), formatMoney(rep.Card),
		formatMoney(rep.Bar), rep.HookahCount, formatMoney(rep.Expenses),
		formatMoney(rep.StartingCash), formatMoney(rep.Balance),
		formatMoney(reports.NetProfit(rep.Total, rep.Expenses)))
}

func formatReportHistory(list []reports.Report) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📅 Последние %d отчётов:\n\n", len(list)))
	for _, rep := range list {
		sb.WriteString(fmt.Sprintf(
			"📅 %s\n"+
				"├ Общая сумма: %s ₽\n"+
				"├ Наличные: %s ₽\n"+
				"├ Безнал: %s ₽\n"+
				"├ Бар: %s ₽\n"+
				"├ Кальяны: %d шт.\n"+
				"├ Расходы: %s ₽\n"+
				"└ Остаток: %s ₽\n\n",
			rep.Date,
			formatMoney(rep.Total), formatMoney(rep.Cash), formatMoney(rep.Card),
			formatMoney(rep.Bar), rep.HookahCount, formatMoney(rep.Expenses),
			formatMoney(rep.Balance)))
	}
	return sb.String()
}

func userBadges(u users.User) string {
	var badges string
	if u.IsAdmin {
		badges += "👑"
	}
	if u.IsBanned {
		badges += "🚫"
	}
	if u.IsApproved {
		badges += "✅"
	} else {
		badges += "⏳"
	}
	return badges
}

func formatUserCard(u *users.User) string {
	var status []string
	if u.IsAdmin {
		status = append(status, "👑 Администратор")
	} else {
		status = append(status, "👤 Обычный пользователь")
	}
	if u.IsBanned {
		status = append(status, "🚫 Заблокирован")
	}
	if u.IsApproved {
		status = append(status, "✅ Доступ разрешен")
	} else {
		status = append(status, "⏳ Ожидает одобрения")
	}

	lastAction := "никогда"
	if u.LastAction != nil {
		lastAction = u.LastAction.Format("2006-01-02 15:04:05")
	}

	return fmt.Sprintf(
		"👤 Информация о пользователе:\n"+
			"🆔 ID: %d\n"+
			"👨‍💼 Имя: %s\n"+
			"📎 Username: %s\n"+
			"📌 Статус: %s\n"+
			"📅 Дата регистрации: %s\n"+
			"⏱ Последнее действие: %s",
		u.ID, nameOr(u), usernameOr(u), strings.Join(status, "; "),
		u.AddedAt.Format("2006-01-02 15:04:05"), lastAction)
}

func formatActionNotification(u *users.User, userID int64, action, details string, ts time.Time) string {
	return fmt.Sprintf(
		"🔔 Действие пользователя:\n"+
			"👤 %s (%s)\n"+
			"🆔 ID: %d\n"+
			"⚡ Действие: %s\n"+
			"📝 Детали: %s\n"+
			"🕐 Время: %s",
		nameOr(u), usernameOr(u), userID, action, details,
		ts.Format("2006-01-02 15:04:05"))
}

func formatActionLog(entries []audit.Entry) string {
	var sb strings.Builder
	sb.WriteString("📋 Последние действия:\n\n")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("🕐 %s\n🆔 %d — %s\n📝 %s\n\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.UserID, e.Action, e.Details))
	}
	return sb.String()
}
