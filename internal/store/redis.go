package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"flashbot/backend/pkg/redis"

	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"
)

// redisStore persists each document as a Redis hash with JSON-encoded field
// values, indexed per collection by a sorted set scored with an INCR
// sequence. Singleton collections use a fixed document id; merging fields is
// a single HSET, which Redis serializes atomically.
type redisStore struct {
	client    *redis.Client
	opTimeout time.Duration
}

// NewRedis creates a Redis-backed document store. Every operation is bounded
// by opTimeout.
func NewRedis(client *redis.Client, opTimeout time.Duration) Store {
	return &redisStore{
		client:    client,
		opTimeout: opTimeout,
	}
}

func (s *redisStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opTimeout)
}

// wrapErr surfaces persistence failures as ErrUnavailable
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func (s *redisStore) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	if err := validateFilter(filter); err != nil {
		return 0, err
	}

	if len(filter) == 0 {
		ctx, cancel := s.withTimeout(ctx)
		defer cancel()

		count, err := s.client.ZCard(ctx, redis.CollectionIndexKey(collection))
		if err != nil {
			return 0, wrapErr(err)
		}
		return count, nil
	}

	docs, err := s.Find(ctx, collection, filter, FindOptions{})
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}

func (s *redisStore) Find(ctx context.Context, collection string, filter Filter, opts FindOptions) ([]Document, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ids, err := s.client.ZRange(ctx, redis.CollectionIndexKey(collection), 0, -1)
	if err != nil {
		return nil, wrapErr(err)
	}
	if len(ids) == 0 {
		return []Document{}, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redislib.MapStringStringCmd, 0, len(ids))
	for _, id := range ids {
		cmds = append(cmds, pipe.HGetAll(ctx, redis.DocKey(collection, id)))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, wrapErr(err)
	}

	docs := make([]Document, 0, len(ids))
	for i, cmd := range cmds {
		raw, err := cmd.Result()
		if err != nil || len(raw) == 0 {
			continue
		}
		doc := decodeDoc(raw)
		doc[IDField] = ids[i]
		if matches(doc, filter) {
			docs = append(docs, doc)
		}
	}

	applyFindOptions(&docs, opts)
	return docs, nil
}

func (s *redisStore) InsertOne(ctx context.Context, collection string, doc Document) (string, error) {
	ids, err := s.InsertMany(ctx, collection, []Document{doc})
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

func (s *redisStore) InsertMany(ctx context.Context, collection string, docs []Document) ([]string, error) {
	if len(docs) == 0 {
		return []string{}, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	encoded := make([][]interface{}, len(docs))
	for i, doc := range docs {
		fields, err := encodeDoc(doc)
		if err != nil {
			return nil, err
		}
		encoded[i] = fields
	}

	ids := make([]string, len(docs))
	scores := make([]float64, len(docs))
	for i := range docs {
		seq, err := s.client.Incr(ctx, redis.CollectionSeqKey(collection))
		if err != nil {
			return nil, wrapErr(err)
		}
		ids[i] = uuid.New().String()
		scores[i] = float64(seq)
	}

	// All writes land in one MULTI/EXEC so a partially seeded collection
	// cannot result from a mid-insert failure.
	pipe := s.client.TxPipeline()
	for i := range docs {
		pipe.HSet(ctx, redis.DocKey(collection, ids[i]), encoded[i]...)
		pipe.ZAdd(ctx, redis.CollectionIndexKey(collection), redis.Z{
			Score:  scores[i],
			Member: ids[i],
		})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, wrapErr(err)
	}

	return ids, nil
}

func (s *redisStore) UpsertSingleton(ctx context.Context, collection string, fields Document) error {
	encoded, err := encodeDoc(fields)
	if err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	seq, err := s.client.Incr(ctx, redis.CollectionSeqKey(collection))
	if err != nil {
		return wrapErr(err)
	}

	pipe := s.client.TxPipeline()
	if len(encoded) > 0 {
		pipe.HSet(ctx, redis.DocKey(collection, redis.SingletonDocID), encoded...)
	}
	// NX keeps the original insertion score on repeat upserts
	pipe.ZAddNX(ctx, redis.CollectionIndexKey(collection), redis.Z{
		Score:  float64(seq),
		Member: redis.SingletonDocID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *redisStore) FindSingleton(ctx context.Context, collection string) (Document, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := s.client.HGetAll(ctx, redis.DocKey(collection, redis.SingletonDocID))
	if err != nil {
		return nil, wrapErr(err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, collection)
	}
	return decodeDoc(raw), nil
}

func (s *redisStore) DeleteAll(ctx context.Context, collection string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ids, err := s.client.ZRange(ctx, redis.CollectionIndexKey(collection), 0, -1)
	if err != nil {
		return wrapErr(err)
	}

	keys := make([]string, 0, len(ids)+2)
	for _, id := range ids {
		keys = append(keys, redis.DocKey(collection, id))
	}
	keys = append(keys, redis.CollectionIndexKey(collection), redis.CollectionSeqKey(collection))

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, keys...)
	if _, err := pipe.Exec(ctx); err != nil {
		return wrapErr(err)
	}
	return nil
}

func (s *redisStore) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return wrapErr(s.client.Ping(ctx))
}

func (s *redisStore) Close() error {
	return s.client.Close()
}

// encodeDoc flattens a document into HSET field/value pairs with
// JSON-encoded values
func encodeDoc(doc Document) ([]interface{}, error) {
	pairs := make([]interface{}, 0, len(doc)*2)
	for field, value := range doc {
		data, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q is not serializable", ErrInvalidQuery, field)
		}
		pairs = append(pairs, field, string(data))
	}
	return pairs, nil
}

// decodeDoc rebuilds a document from hash fields. Values that fail to decode
// are kept as raw strings rather than dropped.
func decodeDoc(raw map[string]string) Document {
	doc := make(Document, len(raw))
	for field, data := range raw {
		var value any
		if err := json.Unmarshal([]byte(data), &value); err != nil {
			doc[field] = data
			continue
		}
		doc[field] = value
	}
	return doc
}

// applyFindOptions sorts and truncates a result set in place
func applyFindOptions(docs *[]Document, opts FindOptions) {
	if opts.SortField != "" {
		field, desc := opts.SortField, opts.SortDesc
		sort.SliceStable(*docs, func(i, j int) bool {
			cmp := compareValues((*docs)[i][field], (*docs)[j][field])
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}
	if opts.Limit > 0 && len(*docs) > opts.Limit {
		*docs = (*docs)[:opts.Limit]
	}
}
