package models

import (
	"time"
)

// Meta holds the fields the store keeps on every record.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// GetID returns the record identity.
func (m Meta) GetID() string {
	return m.ID
}

// Record is satisfied by every collection entity. WithID returns a copy
// carrying the given identity so generic code can assign ids to values.
type Record[T any] interface {
	GetID() string
	WithID(id string) T
	CollectionName() string
}

// Patch is a partial record. Only non-nil fields are sent to the store
// and merged into the local copy.
type Patch[T any] interface {
	Apply(T) T
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setTime(dst *time.Time, src *time.Time) {
	if src != nil {
		*dst = *src
	}
}

// Ptr returns a pointer to v. Handy for building patches.
func Ptr[V any](v V) *V {
	return &v
}
