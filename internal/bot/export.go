package bot

import (
	"bytes"
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xuri/excelize/v2"

	"github.com/soralabs/warehouse-bot/internal/domain/products"
)

// BuildProductsWorkbook собирает xlsx со всеми товарами склада
func BuildProductsWorkbook(list []products.Product) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"ID", "Название", "Количество", "Категория", "Добавлен"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("workbook header: %w", err)
	}

	row := 2
	for _, p := range list {
		excelRow := []interface{}{
			p.ID,
			p.Name,
			p.Quantity,
			p.CategoryName(),
			p.AddedAt.Format("2006-01-02 15:04:05"),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("workbook cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("workbook row: %w", err)
		}
		row++
	}
	return f, nil
}

func (b *Bot) exportProducts(ctx context.Context, msg *tgbotapi.Message) {
	u, ok := b.gate(ctx, msg, false)
	if !ok {
		return
	}
	list, err := b.products.List(ctx)
	if err != nil {
		b.log.Error("product list failed", "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка при получении списка товаров.")
		return
	}
	if len(list) == 0 {
		b.reply(msg.Chat.ID, "📭 Склад пуст. Экспортировать нечего.")
		return
	}

	f, err := BuildProductsWorkbook(list)
	if err != nil {
		b.log.Error("workbook build failed", "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка формирования файла.")
		return
	}
	defer func() { _ = f.Close() }()

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		b.log.Error("workbook write failed", "err", err)
		b.reply(msg.Chat.ID, "❌ Ошибка записи файла.")
		return
	}

	fileName := fmt.Sprintf("warehouse_%s.xlsx", time.Now().Format("20060102_150405"))
	doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{
		Name:  fileName,
		Bytes: buf.Bytes(),
	})
	doc.Caption = fmt.Sprintf("📥 Экспорт склада: %d товаров.", len(list))
	b.send(doc)

	b.logAction(ctx, u.ID, "Экспорт в Excel", fmt.Sprintf("Выгружено товаров: %d", len(list)))
}
