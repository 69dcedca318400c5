package notifier

import (
	"context"
	"errors"
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/keyring"
	"github.com/julianstephens/quantumlife/internal/reminders"
)

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram sends reminders to a single chat through a bot.
type Telegram struct {
	bot    messageSender
	chatID int64
}

// TelegramFromKeyring logs in with the bot token stored in the keyring.
func TelegramFromKeyring(chatID int64) (*Telegram, error) {
	token, err := keyring.Resolve(keyring.TelegramToken)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, fmt.Errorf("no Telegram bot token found. Use '%s keyring set telegram-token <token>' to store one", constants.AppName)
		}
		return nil, err
	}
	return NewTelegram(token, chatID)
}

// NewTelegram authenticates the bot token against the Telegram API.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot login failed: %w", err)
	}
	return &Telegram{bot: bot, chatID: chatID}, nil
}

func (t *Telegram) Notify(ctx context.Context, n reminders.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(t.chatID, FormatTelegram(n))
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	return nil
}

// FormatTelegram renders a notification as Telegram HTML.
func FormatTelegram(n reminders.Notification) string {
	return fmt.Sprintf("⏰ <b>%s</b>\n%s",
		html.EscapeString(n.Reminder.ReminderTitle),
		html.EscapeString(n.Body()),
	)
}
