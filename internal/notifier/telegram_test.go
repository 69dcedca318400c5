package notifier

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/julianstephens/quantumlife/internal/models"
	"github.com/julianstephens/quantumlife/internal/reminders"
)

type fakeBot struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func TestTelegram_Notify(t *testing.T) {
	bot := &fakeBot{}
	tg := &Telegram{bot: bot, chatID: 42}

	n := reminders.Notification{
		Reminder: models.Reminder{ReminderTitle: "Take <vitamins>", TrackerCategory: "Wellness"},
		Due:      time.Date(2025, 6, 12, 8, 0, 0, 0, time.UTC),
	}
	if err := tg.Notify(context.Background(), n); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}

	if len(bot.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(bot.sent))
	}
	msg := bot.sent[0]
	if msg.ChatID != 42 || msg.ParseMode != tgbotapi.ModeHTML {
		t.Errorf("message = %+v", msg)
	}
	if !strings.Contains(msg.Text, "Take &lt;vitamins&gt;") {
		t.Errorf("title should be escaped: %q", msg.Text)
	}
}

func TestTelegram_NotifyError(t *testing.T) {
	tg := &Telegram{bot: &fakeBot{err: errors.New("forbidden")}, chatID: 1}
	if err := tg.Notify(context.Background(), reminders.Notification{}); err == nil {
		t.Error("Notify() should wrap send errors")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := tg.Notify(ctx, reminders.Notification{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Notify() with cancelled context = %v", err)
	}
}
