package memory

import (
	"context"
	"testing"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/collection/collectiontest"
	"github.com/julianstephens/quantumlife/internal/constants"
)

func TestStoreContract(t *testing.T) {
	collectiontest.Run(t, func(t *testing.T) collection.Provider {
		return New()
	})
}

func TestListAllReturnsCopies(t *testing.T) {
	s := New()
	ctx := context.Background()
	if _, err := s.Create(ctx, constants.CollectionGoals, collection.Document{"id": "g1", "goalTitle": "Save"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	res, err := s.ListAll(ctx, constants.CollectionGoals, nil, collection.Options{})
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	res.Items[0]["goalTitle"] = "mutated"

	res, _ = s.ListAll(ctx, constants.CollectionGoals, nil, collection.Options{})
	if res.Items[0]["goalTitle"] != "Save" {
		t.Errorf("stored document changed through a listing: %v", res.Items[0])
	}
}

func TestCancelledContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.ListAll(ctx, constants.CollectionHabits, nil, collection.Options{}); err == nil {
		t.Error("ListAll() with cancelled context should fail")
	}
}
