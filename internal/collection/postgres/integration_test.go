package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/collection/collectiontest"
)

// These tests run against a disposable database named by QUANTUMLIFE_TEST_POSTGRES.
func testConnString(t *testing.T) string {
	t.Helper()
	connStr := os.Getenv("QUANTUMLIFE_TEST_POSTGRES")
	if connStr == "" {
		t.Skip("QUANTUMLIFE_TEST_POSTGRES not set")
	}
	return connStr
}

func TestStoreContract(t *testing.T) {
	connStr := testConnString(t)

	collectiontest.Run(t, func(t *testing.T) collection.Provider {
		store := New(connStr)
		if err := store.Init(); err != nil {
			t.Fatalf("Init() error = %v", err)
		}
		if _, err := store.db.ExecContext(context.Background(), "TRUNCATE documents"); err != nil {
			t.Fatalf("failed to reset documents: %v", err)
		}
		t.Cleanup(func() { store.Close() })
		return store
	})
}
