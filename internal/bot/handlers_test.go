package bot

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/soralabs/warehouse-bot/internal/domain/products"
	"github.com/soralabs/warehouse-bot/internal/session"
)

// fakeClient записывает исходящие сообщения; отправка в failChat
// завершается ошибкой
type fakeClient struct {
	sent     []tgbotapi.MessageConfig
	failChat int64
}

func (f *fakeClient) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if m, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, m)
		if f.failChat != 0 && m.ChatID == f.failChat {
			return tgbotapi.Message{}, errors.New("forbidden: bot was kicked")
		}
	}
	return tgbotapi.Message{}, nil
}

func (f *fakeClient) Request(tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeClient) GetChatMember(tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	return tgbotapi.ChatMember{}, nil
}

func (f *fakeClient) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return nil
}

func newTestBot(f *fakeClient) *Bot {
	return &Bot{
		api:      f,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessions: session.NewStore(),
		lowStock: 10,
	}
}

func TestPushReportSummaryWarnsAuthorOnFailure(t *testing.T) {
	const groupChat = int64(-100500)
	f := &fakeClient{failChat: groupChat}
	b := newTestBot(f)
	msg := &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 42, Type: "private"},
		From: &tgbotapi.User{ID: 42, FirstName: "Аня", UserName: "anya"},
	}

	b.pushReportSummary(groupChat, msg, "сводка")

	if len(f.sent) != 2 {
		t.Fatalf("sent %d messages, want 2 (push + warning)", len(f.sent))
	}
	if f.sent[0].ChatID != groupChat {
		t.Errorf("first message went to %d, want %d", f.sent[0].ChatID, groupChat)
	}
	if f.sent[1].ChatID != 42 {
		t.Errorf("warning went to %d, want author chat 42", f.sent[1].ChatID)
	}
	if !strings.Contains(f.sent[1].Text, "Не удалось отправить отчет в группу") {
		t.Errorf("warning text = %q", f.sent[1].Text)
	}
}

func TestPushReportSummaryQuietOnSuccess(t *testing.T) {
	f := &fakeClient{}
	b := newTestBot(f)
	msg := &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 42, Type: "private"},
		From: &tgbotapi.User{ID: 42, FirstName: "Аня"},
	}

	b.pushReportSummary(-1, msg, "сводка")

	if len(f.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(f.sent))
	}
	if !strings.Contains(f.sent[0].Text, "сводка") {
		t.Errorf("push text = %q", f.sent[0].Text)
	}
}

func TestAnnounceProductAddedWarnsSeparately(t *testing.T) {
	f := &fakeClient{}
	b := newTestBot(f)

	b.announceProductAdded(7, &products.Product{ID: 1, Name: "Уголь", Quantity: 2})

	if len(f.sent) != 2 {
		t.Fatalf("sent %d messages, want success + separate warning", len(f.sent))
	}
	if !strings.Contains(f.sent[0].Text, "Товар добавлен") {
		t.Errorf("first message = %q", f.sent[0].Text)
	}
	if !strings.Contains(f.sent[1].Text, "⚠️") || !strings.Contains(f.sent[1].Text, "Уголь") {
		t.Errorf("warning message = %q", f.sent[1].Text)
	}
}

func TestAnnounceProductAddedNoWarningAboveThreshold(t *testing.T) {
	f := &fakeClient{}
	b := newTestBot(f)

	b.announceProductAdded(7, &products.Product{ID: 1, Name: "Табак", Quantity: 50})

	if len(f.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(f.sent))
	}
}

func TestCancelWithoutFlowSilentInGroup(t *testing.T) {
	f := &fakeClient{}
	b := newTestBot(f)
	msg := &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: -200, Type: "group"},
		From: &tgbotapi.User{ID: 5},
	}

	b.cancelFlow(context.Background(), msg, session.StateIdle)

	if len(f.sent) != 0 {
		t.Fatalf("sent %d messages in group, want silence", len(f.sent))
	}
}
