package state

import (
	"context"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/dashboard"
	"github.com/julianstephens/quantumlife/internal/models"
	"github.com/julianstephens/quantumlife/internal/preferences"
	"github.com/julianstephens/quantumlife/internal/reminders"
	"github.com/julianstephens/quantumlife/internal/sync"
	"github.com/julianstephens/quantumlife/internal/tui/components/overview"
	"github.com/julianstephens/quantumlife/internal/tui/components/page"
	"github.com/julianstephens/quantumlife/internal/tui/components/settings"
)

// Tabs lists the main pages in tab order.
var Tabs = []constants.SessionState{
	constants.StateDashboard,
	constants.StateHabits,
	constants.StateGoals,
	constants.StateFitness,
	constants.StateWellness,
	constants.StateProductivity,
	constants.StateReminders,
	constants.StateCommunity,
	constants.StateSettings,
}

var tabTitles = map[constants.SessionState]string{
	constants.StateDashboard:    "Dashboard",
	constants.StateHabits:       "Habits",
	constants.StateGoals:        "Goals",
	constants.StateFitness:      "Fitness",
	constants.StateWellness:     "Wellness",
	constants.StateProductivity: "Productivity",
	constants.StateReminders:    "Reminders",
	constants.StateCommunity:    "Community",
	constants.StateSettings:     "Settings",
}

func TabTitle(s constants.SessionState) string {
	return tabTitles[s]
}

// IsTab reports whether s is one of the main pages.
func IsTab(s constants.SessionState) bool {
	_, ok := tabTitles[s]
	return ok
}

// Options configure a new TUI session.
type Options struct {
	ConfigDir string
	Location  *time.Location
	Now       func() time.Time
	// Author is the default display name for new community posts.
	Author string
	// Sinks receive due reminders in addition to the in-app banner.
	Sinks []reminders.Sink
}

// Model represents the shared state for the TUI
type Model struct {
	Provider collection.Provider
	Prefs    *preferences.Manager
	Loc      *time.Location
	Now      func() time.Time
	Author   string

	State         constants.SessionState
	PreviousState constants.SessionState
	Keys          KeyMap
	Help          help.Model
	Spinner       spinner.Model
	Theme         constants.ThemePreference
	Width         int
	Height        int
	Quitting      bool

	Habits       *sync.Controller[models.Habit]
	Goals        *sync.Controller[models.Goal]
	Fitness      *sync.Controller[models.FitnessActivity]
	Wellness     *sync.Controller[models.WellnessCheckin]
	Productivity *sync.Controller[models.ProductivityLog]
	Reminders    *sync.Controller[models.Reminder]
	Posts        *sync.Controller[models.CommunityPost]

	Pages         map[constants.SessionState]*page.Model
	OverviewModel overview.Model
	SettingsModel settings.Model
	Dashboard     *dashboard.Loader
	Watcher       *reminders.Watcher
	// Notify gates the external reminder sinks on the notifications setting.
	Notify *atomic.Bool

	// Background work reports back through these channels.
	Changes chan struct{}
	Errors  chan StoreErrorMsg
	Due     chan reminders.Notification

	Form             *huh.Form
	HabitForm        *HabitFormModel
	GoalForm         *GoalFormModel
	FitnessForm      *FitnessFormModel
	WellnessForm     *WellnessFormModel
	ProductivityForm *ProductivityFormModel
	ReminderForm     *ReminderFormModel
	PostForm         *PostFormModel
	SettingsForm     *SettingsFormModel
	ConfirmationForm *ConfirmationFormModel
	// Submit runs when the open form completes. An error keeps the form open.
	Submit        func(m *Model) (tea.Cmd, error)
	PendingAction func() tea.Cmd

	FormError         string // Error message to display for form operations
	Status            string // Last non-blocking store error
	Flash             string // Due reminder banner
	FlashID           int
	ValidationWarning string

	ctx    context.Context
	cancel context.CancelFunc
}

// ConfirmationFormModel represents a generic yes/no confirmation
type ConfirmationFormModel struct {
	Message   string
	Confirmed bool
}

// New creates a new state Model
func New(p collection.Provider, opts Options) Model {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	author := opts.Author
	if author == "" {
		author = os.Getenv("USER")
	}

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan struct{}, 1)
	errs := make(chan StoreErrorMsg, 16)
	due := make(chan reminders.Notification, 16)

	controllerOpts := func(name string) []sync.Option {
		return []sync.Option{
			sync.WithContext(ctx),
			sync.OnChange(func() {
				// Coalesce: one pending signal is enough to refresh every page.
				select {
				case changes <- struct{}{}:
				default:
				}
			}),
			sync.OnError(func(op string, err error) {
				select {
				case errs <- StoreErrorMsg{Collection: name, Op: op, Err: err}:
				default:
				}
			}),
		}
	}

	m := Model{
		Provider: p,
		Prefs:    preferences.NewManager(preferences.NewCache(opts.ConfigDir), p),
		Loc:      loc,
		Now:      now,
		Author:   author,

		State:   constants.StateDashboard,
		Keys:    DefaultKeyMap(),
		Help:    help.New(),
		Spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		Theme:   constants.DefaultTheme,

		Habits:       sync.New[models.Habit](p, controllerOpts(constants.CollectionHabits)...),
		Goals:        sync.New[models.Goal](p, controllerOpts(constants.CollectionGoals)...),
		Fitness:      sync.New[models.FitnessActivity](p, controllerOpts(constants.CollectionFitnessActivities)...),
		Wellness:     sync.New[models.WellnessCheckin](p, controllerOpts(constants.CollectionWellnessCheckins)...),
		Productivity: sync.New[models.ProductivityLog](p, controllerOpts(constants.CollectionProductivityLogs)...),
		Reminders:    sync.New[models.Reminder](p, controllerOpts(constants.CollectionReminders)...),
		Posts:        sync.New[models.CommunityPost](p, controllerOpts(constants.CollectionCommunityPosts)...),

		Pages: map[constants.SessionState]*page.Model{
			constants.StateHabits:       newPage(constants.StateHabits, page.Options{Title: "Habits", Empty: "No habits yet.", ToggleHelp: "complete"}),
			constants.StateGoals:        newPage(constants.StateGoals, page.Options{Title: "Goals", Empty: "No goals yet."}),
			constants.StateFitness:      newPage(constants.StateFitness, page.Options{Title: "Fitness", Empty: "No activities logged."}),
			constants.StateWellness:     newPage(constants.StateWellness, page.Options{Title: "Wellness", Empty: "No check-ins yet."}),
			constants.StateProductivity: newPage(constants.StateProductivity, page.Options{Title: "Productivity", Empty: "No sessions logged."}),
			constants.StateReminders:    newPage(constants.StateReminders, page.Options{Title: "Reminders", Empty: "No reminders set.", ToggleHelp: "active"}),
			constants.StateCommunity:    newPage(constants.StateCommunity, page.Options{Title: "Community", Empty: "No posts yet.", ToggleHelp: "like"}),
		},
		OverviewModel: overview.New(loc),
		SettingsModel: settings.New(models.DefaultUserSettings(), 0, 0),
		Dashboard:     dashboard.NewLoader(p, constants.DashboardRecentLimit),

		Changes: changes,
		Errors:  errs,
		Due:     due,

		ctx:    ctx,
		cancel: cancel,
	}

	m.Notify = new(atomic.Bool)
	m.Notify.Store(true)

	// The banner always shows; external sinks follow the settings toggle.
	banner := reminders.SinkFunc(func(_ context.Context, n reminders.Notification) error {
		select {
		case due <- n:
		default:
		}
		return nil
	})
	sinks := []reminders.Sink{banner}
	for _, sink := range opts.Sinks {
		sinks = append(sinks, gated(m.Notify, sink))
	}
	m.Watcher = reminders.NewWatcher(collection.For[models.Reminder](p), sinks...)

	m.RefreshPages()
	return m
}

func newPage(s constants.SessionState, opts page.Options) *page.Model {
	p := page.New(s, opts, 0, 0)
	return &p
}

func gated(on *atomic.Bool, sink reminders.Sink) reminders.Sink {
	return reminders.SinkFunc(func(ctx context.Context, n reminders.Notification) error {
		if !on.Load() {
			return nil
		}
		return sink.Notify(ctx, n)
	})
}

// Context is cancelled by Close.
func (m *Model) Context() context.Context {
	return m.ctx
}

// Close stops every controller and the reminder watcher. Late store
// responses are dropped.
func (m *Model) Close() {
	m.cancel()
	m.Habits.Close()
	m.Goals.Close()
	m.Fitness.Close()
	m.Wellness.Close()
	m.Productivity.Close()
	m.Reminders.Close()
	m.Posts.Close()
	m.Watcher.Stop()
}

// Loading reports whether the current page is waiting for its first list.
func (m *Model) Loading() bool {
	switch m.State {
	case constants.StateHabits:
		return m.Habits.IsLoading()
	case constants.StateGoals:
		return m.Goals.IsLoading()
	case constants.StateFitness:
		return m.Fitness.IsLoading()
	case constants.StateWellness:
		return m.Wellness.IsLoading()
	case constants.StateProductivity:
		return m.Productivity.IsLoading()
	case constants.StateReminders:
		return m.Reminders.IsLoading()
	case constants.StateCommunity:
		return m.Posts.IsLoading()
	}
	return false
}

// Today returns the current date in the session location.
func (m *Model) Today() string {
	return m.Now().In(m.Loc).Format(constants.DateFormat)
}

// SetSize resizes every page to the content area.
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	// Tabs, banner and help take the rest
	contentHeight := height - 8
	if contentHeight < 3 {
		contentHeight = 3
	}
	for _, p := range m.Pages {
		p.SetSize(width-4, contentHeight)
	}
	m.OverviewModel.SetSize(width-4, contentHeight)
	m.SettingsModel.SetSize(width-4, contentHeight)
	m.Help.Width = width
}
