package reminders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/logger"
)

// Watcher polls the reminders collection on a fixed interval.
type Watcher struct {
	source  Lister
	sinks   []Sink
	tracker *Tracker
	window  time.Duration
	spec    string
	now     func() time.Time
	cron    *cron.Cron
	log     *log.Logger
	cancel  context.CancelFunc
}

func NewWatcher(source Lister, sinks ...Sink) *Watcher {
	return &Watcher{
		source:  source,
		sinks:   sinks,
		tracker: NewTracker(),
		window:  constants.ReminderPollInterval,
		spec:    constants.ReminderPollSpec,
		now:     time.Now,
		cron:    cron.New(),
		log:     logger.Component("reminders"),
	}
}

// Scan checks once and notifies every sink for each new due occurrence.
// It returns what was sent.
func (w *Watcher) Scan(ctx context.Context) ([]Notification, error) {
	active, err := w.source.ListAll(ctx, collection.Filter{"isActive": true}, collection.Options{})
	if err != nil {
		return nil, fmt.Errorf("load reminders: %w", err)
	}

	now := w.now()
	fresh := w.tracker.Filter(active, Due(active, now, w.window))

	var errs []error
	for _, n := range fresh {
		w.log.Info("Reminder due", "id", n.Reminder.ID, "title", n.Reminder.ReminderTitle, "due", n.Due)
		for _, sink := range w.sinks {
			if err := sink.Notify(ctx, n); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return fresh, errors.Join(errs...)
}

// Start scans right away and then on every tick until Stop or ctx is done.
func (w *Watcher) Start(ctx context.Context) error {
	ctx, w.cancel = context.WithCancel(ctx)

	_, err := w.cron.AddFunc(w.spec, func() { w.tick(ctx) })
	if err != nil {
		return fmt.Errorf("schedule reminder scan: %w", err)
	}

	w.tick(ctx)
	w.cron.Start()

	go func() {
		<-ctx.Done()
		w.cron.Stop()
	}()
	return nil
}

// Stop halts the schedule and waits for a running scan to finish.
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	<-w.cron.Stop().Done()
}

func (w *Watcher) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := w.Scan(ctx); err != nil {
		w.log.Error("Reminder scan failed", "error", err)
	}
}
