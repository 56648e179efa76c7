package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/soralabs/warehouse-bot/internal/session"
)

// Кнопки главного и вложенных меню. Текст кнопки — ключ маршрутизации.
const (
	btnWarehouse  = "📊 Склад"
	btnReports    = "📝 Отчёт по смене"
	btnExport     = "📥 Экспорт в Excel"
	btnAdminPanel = "👑 Админ-панель"

	btnAddProduct    = "📦 Добавить товар"
	btnViewWarehouse = "📋 Посмотреть склад"
	btnSearchProduct = "🔍 Поиск товара"
	btnEditProduct   = "✏️ Редактировать"
	btnDeleteProduct = "❌ Удалить товар"
	btnCheckStock    = "🚨 Проверить остатки"
	btnBackToMain    = "🔙 Назад в главное меню"

	btnCreateReport  = "📋 Создать отчёт"
	btnUpdateReport  = "🔄 Обновить отчёт"
	btnReportHistory = "📅 История отчётов"

	btnUserManagement   = "👥 Управление пользователями"
	btnAccessManagement = "🔒 Управление доступом"
	btnStats            = "📊 Статистика"
	btnActionLogs       = "📋 Логи действий"
	btnNotifications    = "🔔 Управление уведомлениями"
	btnBackToAdmin      = "🔙 Назад в админ-панель"

	btnListUsers = "👀 Список пользователей"
	btnPromote   = "⚡ Назначить админа"
	btnBanUser   = "🚫 Заблокировать"
	btnUnbanUser = "✅ Разблокировать"
	btnDemote    = "❌ Снять админа"

	btnListAllUsers   = "👥 Список всех пользователей"
	btnApproveAccess  = "✅ Одобрить доступ"
	btnRevokeAccess   = "🚫 Запретить доступ"
	btnShowUnapproved = "👀 Показать неодобренных"

	btnViewNotifySettings = "👁 Просмотреть настройки"
	btnSetReportChat      = "✏️ Установить текущий чат для отчетов"
	btnSetActionChat      = "✏️ Установить текущий чат для действий"
	btnChatIDHelp         = "❓ Как получить ID чата?"
)

func mainKeyboard(isAdmin bool) tgbotapi.ReplyKeyboardMarkup {
	rows := [][]tgbotapi.KeyboardButton{
		{tgbotapi.NewKeyboardButton(btnWarehouse)},
		{tgbotapi.NewKeyboardButton(btnReports)},
		{tgbotapi.NewKeyboardButton(btnExport)},
	}
	if isAdmin {
		rows = append(rows, []tgbotapi.KeyboardButton{tgbotapi.NewKeyboardButton(btnAdminPanel)})
	}
	return tgbotapi.ReplyKeyboardMarkup{ResizeKeyboard: true, Keyboard: rows}
}

func warehouseKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(btnAddProduct)},
			{tgbotapi.NewKeyboardButton(btnViewWarehouse), tgbotapi.NewKeyboardButton(btnSearchProduct)},
			{tgbotapi.NewKeyboardButton(btnEditProduct), tgbotapi.NewKeyboardButton(btnDeleteProduct)},
			{tgbotapi.NewKeyboardButton(btnCheckStock)},
			{tgbotapi.NewKeyboardButton(btnBackToMain)},
		},
	}
}

func reportKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(btnCreateReport)},
			{tgbotapi.NewKeyboardButton(btnUpdateReport)},
			{tgbotapi.NewKeyboardButton(btnReportHistory)},
			{tgbotapi.NewKeyboardButton(btnBackToMain)},
		},
	}
}

func adminKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(btnUserManagement)},
			{tgbotapi.NewKeyboardButton(btnAccessManagement)},
			{tgbotapi.NewKeyboardButton(btnStats), tgbotapi.NewKeyboardButton(btnActionLogs)},
			{tgbotapi.NewKeyboardButton(btnNotifications)},
			{tgbotapi.NewKeyboardButton(btnBackToMain)},
		},
	}
}

func userManagementKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(btnListUsers)},
			{tgbotapi.NewKeyboardButton(btnPromote), tgbotapi.NewKeyboardButton(btnBanUser)},
			{tgbotapi.NewKeyboardButton(btnUnbanUser), tgbotapi.NewKeyboardButton(btnDemote)},
			{tgbotapi.NewKeyboardButton(btnBackToAdmin)},
		},
	}
}

func accessManagementKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(btnListAllUsers)},
			{tgbotapi.NewKeyboardButton(btnApproveAccess), tgbotapi.NewKeyboardButton(btnRevokeAccess)},
			{tgbotapi.NewKeyboardButton(btnShowUnapproved)},
			{tgbotapi.NewKeyboardButton(btnBackToAdmin)},
		},
	}
}

func notificationKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(btnViewNotifySettings)},
			{tgbotapi.NewKeyboardButton(btnSetReportChat)},
			{tgbotapi.NewKeyboardButton(btnSetActionChat)},
			{tgbotapi.NewKeyboardButton(btnChatIDHelp)},
			{tgbotapi.NewKeyboardButton(btnBackToAdmin)},
		},
	}
}

func cancelKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(session.CancelText)},
		},
	}
}

func skipKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(session.SkipText)},
			{tgbotapi.NewKeyboardButton(session.CancelText)},
		},
	}
}

func categoryKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(session.SkipPlainText)},
			{tgbotapi.NewKeyboardButton(session.CancelText)},
		},
	}
}
