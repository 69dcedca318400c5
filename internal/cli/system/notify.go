package system

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/quantumlife/internal/cli"
	"github.com/julianstephens/quantumlife/internal/models"
	"github.com/julianstephens/quantumlife/internal/notifier"
	"github.com/julianstephens/quantumlife/internal/reminders"
)

// NotifyCmd sends a one-off notification through the configured channels.
// It is used to check that the tray app and Telegram bot are reachable.
type NotifyCmd struct {
	Message      string `arg:"" optional:"" help:"Notification text." default:"Test notification"`
	DryRun       bool   `help:"Print notifications to stdout instead of sending them."`
	TelegramChat int64  `help:"Also send to this Telegram chat." env:"QUANTUMLIFE_TELEGRAM_CHAT"`
}

func (c *NotifyCmd) Validate() error {
	if strings.TrimSpace(c.Message) == "" {
		return fmt.Errorf("message cannot be empty")
	}
	return nil
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	n := reminders.Notification{
		Reminder: models.Reminder{
			ReminderTitle:    c.Message,
			ReminderDateTime: ctx.Clock(),
			IsActive:         true,
		},
		Due: ctx.Clock(),
	}

	if c.DryRun {
		fmt.Println("[DryRun] " + n.Title())
		fmt.Println("[DryRun] " + n.Body())
		if c.TelegramChat != 0 {
			fmt.Printf("[DryRun] Telegram chat %d: %s\n", c.TelegramChat, notifier.FormatTelegram(n))
		}
		return nil
	}

	sinks, err := c.sinks()
	if err != nil {
		return err
	}

	rctx, cancel := ctx.Timeout()
	defer cancel()
	return deliver(rctx, n, sinks)
}

func (c *NotifyCmd) sinks() (map[string]reminders.Sink, error) {
	sinks := map[string]reminders.Sink{"tray": notifier.New()}
	if c.TelegramChat == 0 {
		return sinks, nil
	}
	tg, err := notifier.TelegramFromKeyring(c.TelegramChat)
	if err != nil {
		return nil, err
	}
	sinks["telegram"] = tg
	return sinks, nil
}

// deliver sends n to every sink and reports each outcome. It fails only when
// no sink accepted the notification.
func deliver(ctx context.Context, n reminders.Notification, sinks map[string]reminders.Sink) error {
	var errs []error
	for name, sink := range sinks {
		if err := sink.Notify(ctx, n); err != nil {
			fmt.Printf("❌ %s: %v\n", name, err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		fmt.Printf("✓ %s: sent\n", name)
	}
	if len(errs) == len(sinks) {
		return errors.Join(errs...)
	}
	return nil
}
