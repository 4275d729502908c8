// Package store provides a generic, collection-oriented document store.
// Documents are loosely typed field maps identified by an opaque string id.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Document is a loosely typed document: field name to value
type Document map[string]any

// Filter is an equality filter: every listed field must match exactly.
// An empty filter matches all documents.
type Filter map[string]any

// FindOptions controls ordering and result size of Find
type FindOptions struct {
	SortField string
	SortDesc  bool
	Limit     int // 0 means no limit
}

// Store errors
var (
	ErrInvalidQuery = errors.New("invalid query")
	ErrUnavailable  = errors.New("store unavailable")
	ErrNotFound     = errors.New("document not found")
)

// IDField is the string identifier field carried by documents returned from Find
const IDField = "id"

// TimeLayout is the fixed-width ISO-8601 UTC layout used for all stored
// timestamps. Fixed width keeps lexicographic order equal to chronological
// order, which the sort implementation relies on.
const TimeLayout = "2006-01-02T15:04:05.000000Z07:00"

// FormatTime renders a timestamp in the store's canonical layout
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Store is a collection-oriented persistence abstraction shared by all
// request handlers. Implementations must make UpsertSingleton an atomic
// merge, never a read-modify-write.
type Store interface {
	// Count returns the number of documents matching an equality filter
	Count(ctx context.Context, collection string, filter Filter) (int64, error)

	// Find returns matching documents; a nonexistent collection yields an
	// empty result, never an error. Returned documents carry IDField.
	Find(ctx context.Context, collection string, filter Filter, opts FindOptions) ([]Document, error)

	// InsertOne persists the document and returns its assigned id
	InsertOne(ctx context.Context, collection string, doc Document) (string, error)

	// InsertMany persists documents all-or-nothing per collection
	InsertMany(ctx context.Context, collection string, docs []Document) ([]string, error)

	// UpsertSingleton creates the collection's lone document from fields,
	// or merges fields into it. Absent fields retain prior values.
	UpsertSingleton(ctx context.Context, collection string, fields Document) error

	// FindSingleton returns the collection's lone document or ErrNotFound
	FindSingleton(ctx context.Context, collection string) (Document, error)

	// DeleteAll removes every document in the collection
	DeleteAll(ctx context.Context, collection string) error

	Ping(ctx context.Context) error
	Close() error
}

// validateFilter rejects filters with non-scalar values
func validateFilter(filter Filter) error {
	for field, value := range filter {
		switch value.(type) {
		case string, bool, int, int64, float64:
		default:
			return fmt.Errorf("%w: unsupported filter value for field %q", ErrInvalidQuery, field)
		}
	}
	return nil
}

// matches reports whether the document satisfies the equality filter
func matches(doc Document, filter Filter) bool {
	for field, want := range filter {
		got, ok := doc[field]
		if !ok || !equalValues(got, want) {
			return false
		}
	}
	return true
}

func equalValues(a, b any) bool {
	if af, aok := asFloat(a); aok {
		bf, bok := asFloat(b)
		return bok && af == bf
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	}
	return false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// compareValues orders two field values: numbers numerically, strings
// lexicographically (timestamps use TimeLayout, so this is chronological).
// Missing or unordered values sort first.
func compareValues(a, b any) int {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return strings.Compare(as, bs)
	}
	if a == nil && b != nil {
		return -1
	}
	if a != nil && b == nil {
		return 1
	}
	return 0
}
