package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/soralabs/warehouse-bot/internal/domain/products"
	"github.com/soralabs/warehouse-bot/internal/session"
)

func (b *Bot) warehouseMenu(ctx context.Context, msg *tgbotapi.Message) {
	if _, ok := b.gate(ctx, msg, false); !ok {
		return
	}
	b.replyKB(msg.Chat.ID, "📊 Управление складом:", warehouseKeyboard())
}

func (b *Bot) addProductStart(ctx context.Context, msg *tgbotapi.Message) {
	u, ok := b.gate(ctx, msg, false)
	if !ok {
		return
	}
	b.sessions.Set(u.ID, session.StateAddingName, session.Data{Product: &session.ProductDraft{}})
	b.replyKB(msg.Chat.ID, "📦 Введите название товара:", cancelKeyboard())
}

func (b *Bot) flowAddProduct(ctx context.Context, msg *tgbotapi.Message, st session.State, data session.Data) {
	uid := msg.From.ID
	draft := data.Product
	if draft == nil {
		b.sessions.Clear(uid)
		b.replyKB(msg.Chat.ID, "❌ Действие отменено", warehouseKeyboard())
		return
	}

	switch st {
	case session.StateAddingName:
		name := strings.TrimSpace(msg.Text)
		if name == "" {
			b.reply(msg.Chat.ID, "❌ Название не может быть пустым. Введите название товара:")
			return
		}
		draft.Name = name
		b.sessions.Set(uid, session.StateAddingQuantity, session.Data{Product: draft})
		b.replyKB(msg.Chat.ID, "🔢 Введите количество товара:", cancelKeyboard())

	case session.StateAddingQuantity:
		qty, err := session.ParseCount(msg.Text)
		if err != nil {
			b.reply(msg.Chat.ID, "❌ Введите корректное неотрицательное число:")
			return
		}
		draft.Quantity = qty
		b.sessions.Set(uid, session.StateAddingCategory, session.Data{Product: draft})
		b.replyKB(msg.Chat.ID, "🏷 Введите категорию товара (или нажмите «Пропустить»):", categoryKeyboard())

	case session.StateAddingCategory:
		if session.Recognize(msg.Text) != session.TokenSkip {
			cat := strings.TrimSpace(msg.Text)
			if cat != "" {
				draft.Category = &cat
			}
		}
		b.sessions.Clear(uid)

		p, err := b.products.Insert(ctx, draft.Name, draft.Quantity, draft.Category)
		if err != nil {
			b.log.Error("product insert failed", "user", uid, "err", err)
			b.replyKB(msg.Chat.ID, "❌ Ошибка при добавлении товара. Попробуйте ещё раз.", warehouseKeyboard())
			return
		}
		b.announceProductAdded(msg.Chat.ID, p)
		b.logAction(ctx, uid, "Добавление товара",
			fmt.Sprintf("%s (кол-во: %d, категория: %s)", p.Name, p.Quantity, p.CategoryName()))
	}
}

// announceProductAdded подтверждение добавления; при низком остатке
// следом уходит отдельное предупреждение
func (b *Bot) announceProductAdded(chatID int64, p *products.Product) {
	b.replyKB(chatID, fmt.Sprintf(
		"✅ Товар добавлен!\n\nID: %d\nНазвание: %s\nКоличество: %d\nКатегория: %s",
		p.ID, p.Name, p.Quantity, p.CategoryName()), warehouseKeyboard())
	if products.LowStock(p.Quantity, b.lowStock) {
		b.reply(chatID, fmt.Sprintf(
			"⚠️ Внимание! Остаток товара «%s» низкий: %d шт. (порог %d).",
			p.Name, p.Quantity, b.lowStock))
	}
}

func (b *Bot) viewWarehouse(ctx context.Context, msg *tgbotapi.Message) {
	if _, ok := b.gate(ctx, msg, false); !ok {
		return
	}
	list, err := b.products.List(ctx)
	if err != nil {
		b.log.Error("product list failed", "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка при получении списка товаров.")
		return
	}
	if len(list) == 0 {
		b.replyKB(msg.Chat.ID, "📭 Склад пуст.", warehouseKeyboard())
		return
	}
	kb := warehouseKeyboard()
	b.replyLong(msg.Chat.ID,
		formatProductList(fmt.Sprintf("📋 Товары на складе (%d):", len(list)), list, b.lowStock), &kb)
}

func (b *Bot) searchProductStart(ctx context.Context, msg *tgbotapi.Message) {
	u, ok := b.gate(ctx, msg, false)
	if !ok {
		return
	}
	b.sessions.Set(u.ID, session.StateSearching, session.Data{})
	b.replyKB(msg.Chat.ID, "🔍 Введите название или категорию для поиска:", cancelKeyboard())
}

func (b *Bot) flowSearch(ctx context.Context, msg *tgbotapi.Message) {
	uid := msg.From.ID
	b.sessions.Clear(uid)

	list, err := b.products.List(ctx)
	if err != nil {
		b.log.Error("product list failed", "err", err)
		b.replyKB(msg.Chat.ID, "❌ Ошибка при поиске.", warehouseKeyboard())
		return
	}
	found := products.Filter(list, msg.Text)
	if len(found) == 0 {
		b.replyKB(msg.Chat.ID, fmt.Sprintf("🔍 По запросу «%s» ничего не найдено.", strings.TrimSpace(msg.Text)), warehouseKeyboard())
		return
	}
	kb := warehouseKeyboard()
	b.replyLong(msg.Chat.ID,
		formatProductList(fmt.Sprintf("🔍 Найдено товаров: %d", len(found)), found, b.lowStock), &kb)
}

// productPickKeyboard инлайн-список товаров, по кнопке на товар
func productPickKeyboard(list []products.Product, verb string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(list))
	for _, p := range list {
		label := fmt.Sprintf("%s (%d шт.)", p.Name, p.Quantity)
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(label, callbackData(verb, p.ID)),
		})
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func (b *Bot) editProductStart(ctx context.Context, msg *tgbotapi.Message) {
	if _, ok := b.gate(ctx, msg, false); !ok {
		return
	}
	list, err := b.products.List(ctx)
	if err != nil {
		b.log.Error("product list failed", "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка при получении списка товаров.")
		return
	}
	if len(list) == 0 {
		b.replyKB(msg.Chat.ID, "📭 Склад пуст. Нечего редактировать.", warehouseKeyboard())
		return
	}
	m := tgbotapi.NewMessage(msg.Chat.ID, "✏️ Выберите товар для редактирования:")
	m.ReplyMarkup = productPickKeyboard(list, verbEdit)
	b.send(m)
}

func (b *Bot) handleEditSelected(ctx context.Context, cb *tgbotapi.CallbackQuery, id int64) {
	p, err := b.products.GetByID(ctx, id)
	if err != nil {
		b.log.Error("product lookup failed", "id", id, "err", err)
		b.answerCallback(cb, "❌ Ошибка")
		return
	}
	if p == nil {
		b.answerCallback(cb, "❌ Товар не найден")
		return
	}
	b.answerCallback(cb, "")

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Название", callbackData(verbEditName, id)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔢 Количество", callbackData(verbEditQty, id)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏷 Категория", callbackData(verbEditCat, id)),
		),
	)
	m := tgbotapi.NewMessage(cb.Message.Chat.ID, fmt.Sprintf(
		"Товар: %s\nКоличество: %d\nКатегория: %s\n\nЧто изменить?",
		p.Name, p.Quantity, p.CategoryName()))
	m.ReplyMarkup = kb
	b.send(m)
}

func (b *Bot) handleEditField(ctx context.Context, cb *tgbotapi.CallbackQuery, verb string, id int64) {
	uid := cb.From.ID
	var st session.State
	var prompt string
	switch verb {
	case verbEditName:
		st, prompt = session.StateEditingName, "✏️ Введите новое название товара:"
	case verbEditQty:
		st, prompt = session.StateEditingQuantity, "🔢 Введите новое количество товара:"
	case verbEditCat:
		st, prompt = session.StateEditingCategory, "🏷 Введите новую категорию (или нажмите «Пропустить», чтобы очистить):"
	}
	b.sessions.Set(uid, st, session.Data{EditID: id})
	b.answerCallback(cb, "")
	if verb == verbEditCat {
		b.replyKB(cb.Message.Chat.ID, prompt, categoryKeyboard())
		return
	}
	b.replyKB(cb.Message.Chat.ID, prompt, cancelKeyboard())
}

func (b *Bot) flowEditProduct(ctx context.Context, msg *tgbotapi.Message, st session.State, data session.Data) {
	uid := msg.From.ID
	id := data.EditID
	if id == 0 {
		b.sessions.Clear(uid)
		b.replyKB(msg.Chat.ID, "❌ Действие отменено", warehouseKeyboard())
		return
	}

	var (
		ok      bool
		err     error
		details string
		warning string
	)
	switch st {
	case session.StateEditingName:
		name := strings.TrimSpace(msg.Text)
		if name == "" {
			b.reply(msg.Chat.ID, "❌ Название не может быть пустым. Введите новое название:")
			return
		}
		ok, err = b.products.UpdateName(ctx, id, name)
		details = fmt.Sprintf("ID %d: новое название «%s»", id, name)

	case session.StateEditingQuantity:
		var qty int
		qty, err = session.ParseCount(msg.Text)
		if err != nil {
			if errors.Is(err, session.ErrNegative) {
				b.reply(msg.Chat.ID, "❌ Количество не может быть отрицательным. Введите число:")
			} else {
				b.reply(msg.Chat.ID, "❌ Введите корректное число:")
			}
			return
		}
		ok, err = b.products.UpdateQuantity(ctx, id, qty)
		details = fmt.Sprintf("ID %d: новое количество %d", id, qty)
		if products.LowStock(qty, b.lowStock) {
			warning = fmt.Sprintf("\n\n⚠️ Низкий остаток: меньше %d шт.", b.lowStock)
		}

	case session.StateEditingCategory:
		var cat *string
		if session.Recognize(msg.Text) != session.TokenSkip {
			c := strings.TrimSpace(msg.Text)
			if c != "" {
				cat = &c
			}
		}
		ok, err = b.products.UpdateCategory(ctx, id, cat)
		if cat != nil {
			details = fmt.Sprintf("ID %d: новая категория «%s»", id, *cat)
		} else {
			details = fmt.Sprintf("ID %d: категория очищена", id)
		}
	}

	b.sessions.Clear(uid)
	if err != nil {
		b.log.Error("product update failed", "id", id, "err", err)
		b.replyKB(msg.Chat.ID, "❌ Ошибка при обновлении товара.", warehouseKeyboard())
		return
	}
	if !ok {
		b.replyKB(msg.Chat.ID, "❌ Товар не найден. Возможно, его уже удалили.", warehouseKeyboard())
		return
	}
	b.replyKB(msg.Chat.ID, "✅ Товар обновлён!"+warning, warehouseKeyboard())
	b.logAction(ctx, uid, "Редактирование товара", details)
}

func (b *Bot) deleteProductStart(ctx context.Context, msg *tgbotapi.Message) {
	if _, ok := b.gate(ctx, msg, false); !ok {
		return
	}
	list, err := b.products.List(ctx)
	if err != nil {
		b.log.Error("product list failed", "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка при получении списка товаров.")
		return
	}
	if len(list) == 0 {
		b.replyKB(msg.Chat.ID, "📭 Склад пуст. Нечего удалять.", warehouseKeyboard())
		return
	}
	m := tgbotapi.NewMessage(msg.Chat.ID, "❌ Выберите товар для удаления:")
	m.ReplyMarkup = productPickKeyboard(list, verbDelete)
	b.send(m)
}

func (b *Bot) handleDeleteProduct(ctx context.Context, cb *tgbotapi.CallbackQuery, id int64) {
	p, err := b.products.GetByID(ctx, id)
	if err != nil {
		b.log.Error("product lookup failed", "id", id, "err", err)
		b.answerCallback(cb, "❌ Ошибка")
		return
	}
	if p == nil {
		b.answerCallback(cb, "❌ Товар не найден")
		return
	}
	ok, err := b.products.Delete(ctx, id)
	if err != nil || !ok {
		b.log.Error("product delete failed", "id", id, "err", err)
		b.answerCallback(cb, "❌ Не удалось удалить товар")
		return
	}
	b.answerCallback(cb, "✅ Удалено")
	b.reply(cb.Message.Chat.ID, fmt.Sprintf("✅ Товар «%s» удалён со склада.", p.Name))
	b.logAction(ctx, cb.From.ID, "Удаление товара", fmt.Sprintf("%s (ID %d)", p.Name, p.ID))
}

func (b *Bot) checkLowStock(ctx context.Context, msg *tgbotapi.Message) {
	if _, ok := b.gate(ctx, msg, false); !ok {
		return
	}
	list, err := b.products.ListLowStock(ctx, b.lowStock)
	if err != nil {
		b.log.Error("low stock query failed", "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка при проверке остатков.")
		return
	}
	if len(list) == 0 {
		b.replyKB(msg.Chat.ID, "✅ Все товары в достаточном количестве.", warehouseKeyboard())
		return
	}
	kb := warehouseKeyboard()
	b.replyLong(msg.Chat.ID,
		formatProductList(fmt.Sprintf("🚨 Товары с низким остатком (меньше %d шт.):", b.lowStock), list, b.lowStock), &kb)
}
