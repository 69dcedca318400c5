package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/quantumlife/internal/cli"
	"github.com/julianstephens/quantumlife/internal/notifier"
	"github.com/julianstephens/quantumlife/internal/reminders"
	"github.com/julianstephens/quantumlife/internal/tui"
)

type TuiCmd struct {
	Author       string `help:"Display name for new community posts." env:"QUANTUMLIFE_AUTHOR"`
	Tray         bool   `help:"Send due reminders to the tray app." default:"true" negatable:""`
	TelegramChat int64  `help:"Telegram chat ID to forward due reminders to." env:"QUANTUMLIFE_TELEGRAM_CHAT"`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	// Perform automatic backup on TUI startup (after successful load)
	ctx.PerformAutomaticBackup()

	var sinks []reminders.Sink
	if c.Tray {
		sinks = append(sinks, notifier.New())
	}
	if c.TelegramChat != 0 {
		tg, err := notifier.TelegramFromKeyring(c.TelegramChat)
		if err != nil {
			return err
		}
		sinks = append(sinks, tg)
	}

	model := tui.NewModel(ctx.Provider, tui.Options{
		ConfigDir: ctx.ConfigDir,
		Location:  ctx.Loc(),
		Now:       ctx.Now,
		Author:    c.Author,
		Sinks:     sinks,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
