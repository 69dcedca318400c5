package alerts

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/quantumlife/internal/cli"
	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/logger"
	"github.com/julianstephens/quantumlife/internal/models"
	"github.com/julianstephens/quantumlife/internal/notifier"
	"github.com/julianstephens/quantumlife/internal/preferences"
	"github.com/julianstephens/quantumlife/internal/reminders"
	"github.com/julianstephens/quantumlife/internal/utils"
)

// ReminderWatchCmd runs the due check in the foreground until interrupted.
type ReminderWatchCmd struct {
	Once         bool  `help:"Check once and exit instead of polling every minute."`
	Tray         bool  `help:"Also send notifications to the tray app." default:"true" negatable:""`
	TelegramChat int64 `help:"Telegram chat ID to forward notifications to. The bot token is read from the keyring." env:"QUANTUMLIFE_TELEGRAM_CHAT"`
}

func (c *ReminderWatchCmd) Run(ctx *cli.Context) error {
	sinks, err := c.sinks(ctx)
	if err != nil {
		return err
	}

	watcher := reminders.NewWatcher(collection.For[models.Reminder](ctx.Provider), sinks...)

	if c.Once {
		rctx, cancel := ctx.Timeout()
		defer cancel()
		sent, err := watcher.Scan(rctx)
		if len(sent) == 0 && err == nil {
			fmt.Println("Nothing due in the next minute.")
		}
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := watcher.Start(sigCtx); err != nil {
		return fmt.Errorf("failed to start reminder watcher: %w", err)
	}
	fmt.Println("Watching reminders. Press Ctrl+C to stop.")

	<-sigCtx.Done()
	watcher.Stop()
	fmt.Println("\nStopped.")
	return nil
}

func (c *ReminderWatchCmd) sinks(ctx *cli.Context) ([]reminders.Sink, error) {
	loc := ctx.Loc()
	sinks := []reminders.Sink{
		reminders.SinkFunc(func(_ context.Context, n reminders.Notification) error {
			fmt.Printf("🔔 %s  %s (%s)\n", utils.FormatDateTime(n.Due, loc), n.Reminder.ReminderTitle, n.Reminder.FormatRecurrence())
			return nil
		}),
	}

	rctx, cancel := ctx.Timeout()
	defer cancel()
	if !notificationsEnabled(rctx, ctx.Provider) {
		fmt.Println("Notifications are disabled in settings; printing reminders only.")
		return sinks, nil
	}

	if c.Tray {
		sinks = append(sinks, notifier.New())
	}

	if c.TelegramChat != 0 {
		tg, err := notifier.TelegramFromKeyring(c.TelegramChat)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, tg)
	}
	return sinks, nil
}

func notificationsEnabled(ctx context.Context, p collection.Provider) bool {
	settings, _, err := preferences.LoadSettings(ctx, collection.For[models.UserSettings](p))
	if err != nil {
		logger.Warn("Settings unavailable, assuming notifications are on", "error", err)
		return true
	}
	return settings.EnableNotifications
}
