package system

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/quantumlife/internal/cli"
	"github.com/julianstephens/quantumlife/internal/models"
	"github.com/julianstephens/quantumlife/internal/reminders"
)

func TestNotifyCmd_Validate(t *testing.T) {
	tests := []struct {
		name    string
		message string
		wantErr bool
	}{
		{"plain message", "Drink water", false},
		{"empty message", "", true},
		{"whitespace message", "   ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&NotifyCmd{Message: tt.message}).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNotifyCmd_DryRun(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	ctx := &cli.Context{Now: func() time.Time { return fixed }}

	cmd := &NotifyCmd{Message: "Stretch", DryRun: true, TelegramChat: 42}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("dry run should not contact any sink: %v", err)
	}
}

func TestDeliver(t *testing.T) {
	n := reminders.Notification{
		Reminder: models.Reminder{ReminderTitle: "Stretch", IsActive: true},
		Due:      time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	ok := reminders.SinkFunc(func(context.Context, reminders.Notification) error { return nil })
	broken := reminders.SinkFunc(func(context.Context, reminders.Notification) error { return errors.New("offline") })

	tests := []struct {
		name    string
		sinks   map[string]reminders.Sink
		wantErr bool
	}{
		{"all succeed", map[string]reminders.Sink{"a": ok, "b": ok}, false},
		{"one fails", map[string]reminders.Sink{"a": ok, "b": broken}, false},
		{"all fail", map[string]reminders.Sink{"a": broken, "b": broken}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := deliver(context.Background(), n, tt.sinks)
			if (err != nil) != tt.wantErr {
				t.Errorf("deliver() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
