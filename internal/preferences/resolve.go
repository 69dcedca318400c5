package preferences

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/models"
)

// Source says where resolved preferences came from.
type Source string

const (
	SourceDefault Source = "default"
	SourceLocal   Source = "local"
	SourceServer  Source = "server"
)

// Resolution is the outcome of merging the local cache with the server record.
type Resolution struct {
	Theme     constants.ThemePreference
	Language  string
	UpdatedAt time.Time
	Source    Source
	// PushToServer is set when the local cache is newer than the server record.
	PushToServer bool
	// UpdateLocal is set when the cache should be rewritten with the result.
	UpdateLocal bool
}

// Local returns the resolution as a cache entry.
func (r Resolution) Local() Local {
	return Local{Theme: r.Theme, Language: r.Language, UpdatedAt: r.UpdatedAt}
}

// Resolve merges the two sources. Without a server record the cache is
// authoritative. With both, the later updatedAt wins and ties go to the server.
func Resolve(local Local, hasLocal bool, server *models.UserSettings) Resolution {
	switch {
	case server == nil && !hasLocal:
		return Resolution{
			Theme:    constants.DefaultTheme,
			Language: constants.DefaultLanguage,
			Source:   SourceDefault,
		}
	case server == nil:
		return fromLocal(local)
	case hasLocal && local.UpdatedAt.After(server.UpdatedAt):
		r := fromLocal(local)
		r.PushToServer = local.Theme != server.ThemePreference || local.Language != server.LanguagePreference
		return r
	}

	s := *server
	models.ApplyDefaultSettings(&s)
	return Resolution{
		Theme:       s.ThemePreference,
		Language:    s.LanguagePreference,
		UpdatedAt:   s.UpdatedAt,
		Source:      SourceServer,
		UpdateLocal: !hasLocal || local.Theme != s.ThemePreference || local.Language != s.LanguagePreference,
	}
}

func fromLocal(local Local) Resolution {
	if !models.ValidTheme(local.Theme) {
		local.Theme = constants.DefaultTheme
	}
	if local.Language == "" {
		local.Language = constants.DefaultLanguage
	}
	return Resolution{
		Theme:     local.Theme,
		Language:  local.Language,
		UpdatedAt: local.UpdatedAt,
		Source:    SourceLocal,
	}
}

// EffectiveTheme turns "auto" into dark or light using hasDark, which
// defaults to asking the terminal.
func EffectiveTheme(theme constants.ThemePreference, hasDark func() bool) constants.ThemePreference {
	if theme != constants.ThemeAuto {
		return theme
	}
	if hasDark == nil {
		hasDark = lipgloss.HasDarkBackground
	}
	if hasDark() {
		return constants.ThemeDark
	}
	return constants.ThemeLight
}
