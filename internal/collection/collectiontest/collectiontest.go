// Package collectiontest checks that a collection.Provider honours the store
// contract. Each backend's tests run it against a fresh provider.
package collectiontest

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/constants"
)

// NewProvider returns an initialized, empty provider.
type NewProvider func(t *testing.T) collection.Provider

// Run exercises the provider contract.
func Run(t *testing.T, newProvider NewProvider) {
	t.Run("CreateAndList", func(t *testing.T) { testCreateAndList(t, newProvider(t)) })
	t.Run("CreateRequiresID", func(t *testing.T) { testCreateRequiresID(t, newProvider(t)) })
	t.Run("CreateConflict", func(t *testing.T) { testCreateConflict(t, newProvider(t)) })
	t.Run("UpdateMergesFields", func(t *testing.T) { testUpdateMerges(t, newProvider(t)) })
	t.Run("UpdateMissing", func(t *testing.T) { testUpdateMissing(t, newProvider(t)) })
	t.Run("Delete", func(t *testing.T) { testDelete(t, newProvider(t)) })
	t.Run("FilterAndLimit", func(t *testing.T) { testFilterAndLimit(t, newProvider(t)) })
	t.Run("CollectionsAreIsolated", func(t *testing.T) { testIsolation(t, newProvider(t)) })
	t.Run("UnknownCollection", func(t *testing.T) { testUnknownCollection(t, newProvider(t)) })
}

func habitDoc(id, name string, streak int) collection.Document {
	return collection.Document{
		"id":          id,
		"habitName":   name,
		"frequency":   "Daily",
		"streakCount": streak,
		"isCompleted": false,
	}
}

func mustCreate(t *testing.T, p collection.Provider, name string, doc collection.Document) collection.Document {
	t.Helper()
	stored, err := p.Create(context.Background(), name, doc)
	if err != nil {
		t.Fatalf("Create(%s, %v) error = %v", name, doc.ID(), err)
	}
	return stored
}

func ids(res collection.Result) []string {
	out := make([]string, len(res.Items))
	for i, d := range res.Items {
		out[i] = d.ID()
	}
	return out
}

func testCreateAndList(t *testing.T, p collection.Provider) {
	ctx := context.Background()
	stored := mustCreate(t, p, constants.CollectionHabits, habitDoc("h1", "Meditate", 0))

	if stored.ID() != "h1" {
		t.Errorf("Create() id = %q, want h1", stored.ID())
	}
	if stored["habitName"] != "Meditate" {
		t.Errorf("Create() habitName = %v, want Meditate", stored["habitName"])
	}
	if _, ok := stored[collection.FieldCreatedAt]; !ok {
		t.Error("Create() should stamp createdAt")
	}

	mustCreate(t, p, constants.CollectionHabits, habitDoc("h2", "Read", 3))
	mustCreate(t, p, constants.CollectionHabits, habitDoc("h3", "Walk", 1))

	res, err := p.ListAll(ctx, constants.CollectionHabits, nil, collection.Options{})
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if got := fmt.Sprint(ids(res)); got != "[h1 h2 h3]" {
		t.Errorf("ListAll() order = %s, want insertion order [h1 h2 h3]", got)
	}
	if fmt.Sprint(res.Items[1]["streakCount"]) != "3" {
		t.Errorf("streakCount = %v, want 3", res.Items[1]["streakCount"])
	}
}

func testCreateRequiresID(t *testing.T, p collection.Provider) {
	doc := habitDoc("", "Nameless", 0)
	delete(doc, "id")
	_, err := p.Create(context.Background(), constants.CollectionHabits, doc)
	if !errors.Is(err, collection.ErrMissingID) {
		t.Errorf("Create() without id error = %v, want ErrMissingID", err)
	}
}

func testCreateConflict(t *testing.T, p collection.Provider) {
	mustCreate(t, p, constants.CollectionHabits, habitDoc("dup", "First", 0))
	_, err := p.Create(context.Background(), constants.CollectionHabits, habitDoc("dup", "Second", 0))
	if !errors.Is(err, collection.ErrConflict) {
		t.Errorf("Create() duplicate error = %v, want ErrConflict", err)
	}
}

func testUpdateMerges(t *testing.T, p collection.Provider) {
	ctx := context.Background()
	mustCreate(t, p, constants.CollectionHabits, habitDoc("h1", "Meditate", 2))

	updated, err := p.Update(ctx, constants.CollectionHabits, collection.Document{
		"id":          "h1",
		"isCompleted": true,
		"streakCount": 3,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated["habitName"] != "Meditate" {
		t.Errorf("Update() dropped untouched field: habitName = %v", updated["habitName"])
	}
	if updated["isCompleted"] != true {
		t.Errorf("Update() isCompleted = %v, want true", updated["isCompleted"])
	}

	res, err := p.ListAll(ctx, constants.CollectionHabits, nil, collection.Options{})
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	got := res.Items[0]
	if got["frequency"] != "Daily" || fmt.Sprint(got["streakCount"]) != "3" || got["isCompleted"] != true {
		t.Errorf("stored document after update = %v", got)
	}
}

func testUpdateMissing(t *testing.T, p collection.Provider) {
	_, err := p.Update(context.Background(), constants.CollectionHabits, collection.Document{"id": "ghost", "habitName": "x"})
	if !errors.Is(err, collection.ErrNotFound) {
		t.Errorf("Update() unknown id error = %v, want ErrNotFound", err)
	}

	_, err = p.Update(context.Background(), constants.CollectionHabits, collection.Document{"habitName": "x"})
	if !errors.Is(err, collection.ErrMissingID) {
		t.Errorf("Update() without id error = %v, want ErrMissingID", err)
	}
}

func testDelete(t *testing.T, p collection.Provider) {
	ctx := context.Background()
	mustCreate(t, p, constants.CollectionHabits, habitDoc("a", "A", 0))
	mustCreate(t, p, constants.CollectionHabits, habitDoc("b", "B", 0))
	mustCreate(t, p, constants.CollectionHabits, habitDoc("c", "C", 0))

	if err := p.Delete(ctx, constants.CollectionHabits, "b"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	res, err := p.ListAll(ctx, constants.CollectionHabits, nil, collection.Options{})
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if got := fmt.Sprint(ids(res)); got != "[a c]" {
		t.Errorf("ListAll() after delete = %s, want [a c]", got)
	}

	if err := p.Delete(ctx, constants.CollectionHabits, "b"); !errors.Is(err, collection.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func testFilterAndLimit(t *testing.T, p collection.Provider) {
	ctx := context.Background()
	for i, active := range []bool{true, false, true, true} {
		mustCreate(t, p, constants.CollectionReminders, collection.Document{
			"id":            fmt.Sprintf("r%d", i),
			"reminderTitle": fmt.Sprintf("Reminder %d", i),
			"isActive":      active,
		})
	}

	res, err := p.ListAll(ctx, constants.CollectionReminders, collection.Filter{"isActive": true}, collection.Options{})
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if got := fmt.Sprint(ids(res)); got != "[r0 r2 r3]" {
		t.Errorf("filtered ListAll() = %s, want [r0 r2 r3]", got)
	}

	res, err = p.ListAll(ctx, constants.CollectionReminders, collection.Filter{"isActive": true}, collection.Options{Limit: 2})
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if got := fmt.Sprint(ids(res)); got != "[r0 r2]" {
		t.Errorf("limited ListAll() = %s, want [r0 r2]", got)
	}
}

func testIsolation(t *testing.T, p collection.Provider) {
	ctx := context.Background()
	mustCreate(t, p, constants.CollectionHabits, habitDoc("shared", "Habit", 0))
	mustCreate(t, p, constants.CollectionGoals, collection.Document{"id": "shared", "goalTitle": "Goal"})

	res, err := p.ListAll(ctx, constants.CollectionGoals, nil, collection.Options{})
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(res.Items) != 1 || res.Items[0]["goalTitle"] != "Goal" {
		t.Errorf("goals = %v, want only the goal document", res.Items)
	}
}

func testUnknownCollection(t *testing.T, p collection.Provider) {
	_, err := p.ListAll(context.Background(), "spaceships", nil, collection.Options{})
	if !errors.Is(err, collection.ErrUnknownCollection) {
		t.Errorf("ListAll() unknown collection error = %v, want ErrUnknownCollection", err)
	}
}
