package settings

import (
	"fmt"

	"github.com/julianstephens/quantumlife/internal/cli"
	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/models"
	"github.com/julianstephens/quantumlife/internal/preferences"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Theme               string `help:"Color scheme (dark, light or auto)."`
	Language            string `help:"Language code, e.g. en."`
	EnableNotifications *bool  `help:"Enable or disable reminder notifications."`
	NotificationSound   *bool  `help:"Play a sound with notifications."`
	ShareActivityData   *bool  `help:"Share activity data with the community."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	coll := collection.For[models.UserSettings](ctx.Provider)
	settings, _, err := preferences.LoadSettings(rctx, coll)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		res, err := ctx.Preferences().Sync(rctx)
		if err != nil {
			return fmt.Errorf("failed to resolve preferences: %w", err)
		}
		fmt.Println("Current Settings:")
		fmt.Printf("  Theme:                 %s (from %s)\n", res.Theme, res.Source)
		fmt.Printf("  Language:              %s\n", res.Language)
		fmt.Println("\nNotification Settings:")
		fmt.Printf("  Notifications Enabled: %v\n", settings.EnableNotifications)
		fmt.Printf("  Notification Sound:    %v\n", settings.NotificationSound)
		fmt.Println("\nPrivacy:")
		fmt.Printf("  Share Activity Data:   %v\n", settings.ShareActivityData)
		return nil
	}

	updated := false
	if c.Theme != "" {
		settings.ThemePreference = constants.ThemePreference(c.Theme)
		updated = true
	}
	if c.Language != "" {
		settings.LanguagePreference = c.Language
		updated = true
	}
	if c.EnableNotifications != nil {
		settings.EnableNotifications = *c.EnableNotifications
		updated = true
	}
	if c.NotificationSound != nil {
		settings.NotificationSound = *c.NotificationSound
		updated = true
	}
	if c.ShareActivityData != nil {
		settings.ShareActivityData = *c.ShareActivityData
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := settings.Validate(); err != nil {
		return err
	}
	if _, err := preferences.SaveSettings(rctx, coll, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	if c.Theme != "" || c.Language != "" {
		if err := ctx.Preferences().Set(rctx, settings.ThemePreference, settings.LanguagePreference); err != nil {
			return fmt.Errorf("failed to save local preferences: %w", err)
		}
	}
	fmt.Println("Settings updated successfully.")
	return nil
}
