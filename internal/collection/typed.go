package collection

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/julianstephens/quantumlife/internal/models"
)

// Collection is a typed view of one named collection.
type Collection[T models.Record[T]] struct {
	provider Provider
	name     string
}

// For returns the typed collection for T's collection name.
func For[T models.Record[T]](p Provider) *Collection[T] {
	var zero T
	return &Collection[T]{provider: p, name: zero.CollectionName()}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

func (c *Collection[T]) ListAll(ctx context.Context, filter Filter, opts Options) ([]T, error) {
	res, err := c.provider.ListAll(ctx, c.name, filter, opts)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, len(res.Items))
	for _, doc := range res.Items {
		var rec T
		if err := Decode(doc, &rec); err != nil {
			return nil, fmt.Errorf("decode %s record %q: %w", c.name, doc.ID(), err)
		}
		items = append(items, rec)
	}
	return items, nil
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	items, err := c.ListAll(ctx, Filter{FieldID: id}, Options{Limit: 1})
	if err != nil {
		return zero, err
	}
	if len(items) == 0 {
		return zero, fmt.Errorf("%s %q: %w", c.name, id, ErrNotFound)
	}
	return items[0], nil
}

func (c *Collection[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	doc, err := Encode(rec)
	if err != nil {
		return zero, err
	}
	stored, err := c.provider.Create(ctx, c.name, doc)
	if err != nil {
		return zero, err
	}
	var out T
	if err := Decode(stored, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// Update sends a partial record for id. Patch is any JSON-encodable value
// whose encoded fields are the ones to change.
func (c *Collection[T]) Update(ctx context.Context, id string, patch any) (T, error) {
	var zero T
	doc, err := Encode(patch)
	if err != nil {
		return zero, err
	}
	doc[FieldID] = id
	stored, err := c.provider.Update(ctx, c.name, doc)
	if err != nil {
		return zero, err
	}
	var out T
	if err := Decode(stored, &out); err != nil {
		return zero, err
	}
	return out, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.provider.Delete(ctx, c.name, id)
}

// Encode converts a JSON-encodable value into a Document.
func Encode(v any) (Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// Decode fills v from a Document.
func Decode(doc Document, v any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
