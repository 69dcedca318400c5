package main

import (
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/quantumlife/internal/cli"
	"github.com/julianstephens/quantumlife/internal/cli/alerts"
	"github.com/julianstephens/quantumlife/internal/cli/backups"
	"github.com/julianstephens/quantumlife/internal/cli/community"
	"github.com/julianstephens/quantumlife/internal/cli/settings"
	"github.com/julianstephens/quantumlife/internal/cli/system"
	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/errors"
	"github.com/julianstephens/quantumlife/internal/logger"
	"github.com/julianstephens/quantumlife/internal/utils"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   kong.ConfigFlag `help:"JSON file with default flag values."`
	Store    string          `help:"SQLite database path, PostgreSQL connection string, 'postgres' to use the connection string from the keyring, or a quantumlife server URL. PostgreSQL credentials must NOT be embedded in the flag." env:"QUANTUMLIFE_STORE" default:"${default_store}"`
	Timezone string          `help:"IANA timezone for dates and reminders." env:"QUANTUMLIFE_TZ" default:"Local"`
	DebugLog bool            `name:"debug" help:"Write debug logs and mirror them to stderr."`

	Init         system.InitCmd      `cmd:"" help:"Initialize quantumlife storage."`
	Migrate      system.MigrateCmd   `cmd:"" help:"Run database migrations."`
	Doctor       system.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	Tui          system.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Serve        system.ServeCmd     `cmd:"" help:"Share the store with other clients over HTTP."`
	Dashboard    cli.DashboardCmd    `cmd:"" help:"Show today's overview."`
	Habit        cli.HabitCmd        `cmd:"" help:"Manage habits and daily completion."`
	Goal         cli.GoalCmd         `cmd:"" help:"Manage goals and their progress."`
	Fitness      cli.FitnessCmd      `cmd:"" help:"Log fitness activities."`
	Wellness     cli.WellnessCmd     `cmd:"" help:"Record mood, stress and energy check-ins."`
	Productivity cli.ProductivityCmd `cmd:"" help:"Log focused work sessions."`
	Reminder     struct {
		Add    alerts.ReminderAddCmd    `cmd:"" help:"Add a reminder."`
		List   alerts.ReminderListCmd   `cmd:"" help:"List reminders." default:"1"`
		Toggle alerts.ReminderToggleCmd `cmd:"" help:"Turn a reminder on or off."`
		Delete alerts.ReminderDeleteCmd `cmd:"" help:"Delete a reminder."`
		Watch  alerts.ReminderWatchCmd  `cmd:"" help:"Deliver due reminders until interrupted."`
	} `cmd:"" help:"Manage reminders."`
	Post     community.PostCmd    `cmd:"" help:"Read and share community posts."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a secret in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show a stored secret (masked)."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove a secret from the OS keyring."`
		Status system.KeyringStatusCmd `cmd:"" help:"Show keyring availability and stored secrets." default:"1"`
	} `cmd:"" help:"Manage secrets in the OS keyring."`
	Debug  system.DebugCmd  `cmd:"" help:"Debug commands for troubleshooting."`
	Notify system.NotifyCmd `cmd:"" hidden:"" help:"Send a test notification."`
}

// storelessCommands run without loading the store first.
var storelessCommands = map[string]bool{
	"init":    true,
	"doctor":  true,
	"keyring": true,
	"notify":  true,
}

func main() {
	configDir, err := cli.DefaultConfigDir()
	if err != nil {
		errors.Fatal(err)
	}

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Track habits, goals, fitness, wellness and productivity from the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Configuration(kong.JSON, "~/.config/quantumlife/config.json"),
		kong.Vars{
			"version":       constants.Version,
			"default_store": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.DebugLog,
		ConfigDir: configDir,
		Console:   CLI.DebugLog,
	}); err != nil {
		errors.Fatal(err)
	}

	loc, err := utils.LoadLocation(CLI.Timezone)
	if err != nil {
		errors.Fatal(err)
	}

	store, err := cli.OpenStore(CLI.Store)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Provider:  store,
		ConfigDir: configDir,
		Location:  loc,
	}

	if !storelessCommands[topCommand(ctx)] {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	err = ctx.Run(appCtx)
	if cerr := store.Close(); cerr != nil {
		logger.Warn("Failed to close store", "error", cerr)
	}
	errors.Fatal(err)
}

func topCommand(ctx *kong.Context) string {
	fields := strings.Fields(ctx.Command())
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
