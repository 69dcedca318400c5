// Package collection is the generic document store the tracker pages read and
// write through. Records live in named collections and are addressed by a
// client-assigned id.
package collection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/quantumlife/internal/constants"
)

// Reserved document keys managed by the store.
const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrConflict          = errors.New("record with this id already exists")
	ErrMissingID         = errors.New("record id is required")
	ErrUnknownCollection = errors.New("unknown collection")
)

// Document is a record as the store sees it: a JSON object.
type Document map[string]any

// ID returns the document identity, or "" when it has none.
func (d Document) ID() string {
	id, _ := d[FieldID].(string)
	return id
}

// Clone returns a shallow copy.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Body returns a copy without the store-managed keys.
func (d Document) Body() Document {
	out := d.Clone()
	delete(out, FieldID)
	delete(out, FieldCreatedAt)
	delete(out, FieldUpdatedAt)
	return out
}

// Merge overlays the fields of partial onto a copy of d. Store-managed keys in
// partial are ignored.
func (d Document) Merge(partial Document) Document {
	out := d.Clone()
	for k, v := range partial.Body() {
		out[k] = v
	}
	return out
}

// Stamp sets the store-managed keys on a copy of d.
func (d Document) Stamp(id string, created, updated time.Time) Document {
	out := d.Clone()
	out[FieldID] = id
	out[FieldCreatedAt] = created.UTC().Format(time.RFC3339Nano)
	out[FieldUpdatedAt] = updated.UTC().Format(time.RFC3339Nano)
	return out
}

// Filter selects documents whose top-level fields equal the given values.
type Filter map[string]any

// Match reports whether doc satisfies every condition. Values are compared by
// their printed form so a query-string "3" matches a stored number 3.
func (f Filter) Match(doc Document) bool {
	for k, want := range f {
		got, ok := doc[k]
		if !ok {
			return false
		}
		if fmt.Sprint(got) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

// Options bound a listing.
type Options struct {
	// Limit caps the number of returned items. Zero means no limit.
	Limit int
}

// Result is the response of a listing.
type Result struct {
	Items []Document `json:"items"`
}

// Provider is a collection store backend.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// ListAll returns the matching documents in insertion order.
	ListAll(ctx context.Context, name string, filter Filter, opts Options) (Result, error)
	// Create stores a new document. The document must carry an id.
	Create(ctx context.Context, name string, doc Document) (Document, error)
	// Update merges the provided fields into the document with the same id.
	Update(ctx context.Context, name string, partial Document) (Document, error)
	Delete(ctx context.Context, name string, id string) error

	// Utils
	GetConfigPath() string
}

// ValidateName rejects collection names the application does not know.
func ValidateName(name string) error {
	if !constants.IsCollection(name) {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	return nil
}

// Collect applies filter and limit to documents already in insertion order.
func Collect(docs []Document, filter Filter, opts Options) Result {
	items := make([]Document, 0, len(docs))
	for _, doc := range docs {
		if !filter.Match(doc) {
			continue
		}
		items = append(items, doc)
		if opts.Limit > 0 && len(items) == opts.Limit {
			break
		}
	}
	return Result{Items: items}
}
