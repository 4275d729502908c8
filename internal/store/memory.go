package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// memoryStore keeps documents in process memory with the same semantics as
// the Redis store. Used by the memory driver and by tests that need a store
// without a live database.
type memoryStore struct {
	mu          sync.RWMutex
	collections map[string][]memDoc
}

type memDoc struct {
	id     string
	fields Document
}

// singletonID mirrors the fixed id used by the Redis store
const singletonID = "singleton"

// NewMemory creates an in-memory document store
func NewMemory() Store {
	return &memoryStore{
		collections: make(map[string][]memDoc),
	}
}

func (s *memoryStore) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	if err := validateFilter(filter); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(filter) == 0 {
		return int64(len(s.collections[collection])), nil
	}

	var count int64
	for _, d := range s.collections[collection] {
		if matches(d.fields, filter) {
			count++
		}
	}
	return count, nil
}

func (s *memoryStore) Find(ctx context.Context, collection string, filter Filter, opts FindOptions) ([]Document, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := []Document{}
	for _, d := range s.collections[collection] {
		if !matches(d.fields, filter) {
			continue
		}
		doc := copyDoc(d.fields)
		doc[IDField] = d.id
		docs = append(docs, doc)
	}

	applyFindOptions(&docs, opts)
	return docs, nil
}

func (s *memoryStore) InsertOne(ctx context.Context, collection string, doc Document) (string, error) {
	ids, err := s.InsertMany(ctx, collection, []Document{doc})
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

func (s *memoryStore) InsertMany(ctx context.Context, collection string, docs []Document) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		id := uuid.New().String()
		s.collections[collection] = append(s.collections[collection], memDoc{
			id:     id,
			fields: copyDoc(doc),
		})
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *memoryStore) UpsertSingleton(ctx context.Context, collection string, fields Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.collections[collection] {
		if d.id == singletonID {
			merged := copyDoc(d.fields)
			for k, v := range fields {
				merged[k] = v
			}
			s.collections[collection][i].fields = merged
			return nil
		}
	}

	s.collections[collection] = append(s.collections[collection], memDoc{
		id:     singletonID,
		fields: copyDoc(fields),
	})
	return nil
}

func (s *memoryStore) FindSingleton(ctx context.Context, collection string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.collections[collection] {
		if d.id == singletonID {
			return copyDoc(d.fields), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, collection)
}

func (s *memoryStore) DeleteAll(ctx context.Context, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections, collection)
	return nil
}

func (s *memoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *memoryStore) Close() error {
	return nil
}

func copyDoc(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
