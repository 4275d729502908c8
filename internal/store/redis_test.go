package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	redispkg "flashbot/backend/pkg/redis"
)

// newRedisStore spins up a throwaway Redis container for one test
func newRedisStore(t *testing.T) Store {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("could not start redis container: %s", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("could not stop redis container: %s", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client, err := redispkg.New(redispkg.Config{
		Host: host,
		Port: port.Port(),
	})
	require.NoError(t, err)

	return NewRedis(client, 3*time.Second)
}

func TestRedisStore_RoundTripPreservesTypes(t *testing.T) {
	ctx := context.Background()
	s := newRedisStore(t)

	err := s.UpsertSingleton(ctx, "settings", Document{
		"max_gas_price_gwei": 0.1,
		"scan_interval_ms":   4000,
		"scan_amount":        "1",
		"bot_active":         true,
	})
	require.NoError(t, err)

	doc, err := s.FindSingleton(ctx, "settings")
	require.NoError(t, err)
	assert.Equal(t, 0.1, doc["max_gas_price_gwei"])
	assert.Equal(t, float64(4000), doc["scan_interval_ms"])
	assert.Equal(t, "1", doc["scan_amount"])
	assert.Equal(t, true, doc["bot_active"])
}

func TestRedisStore_SingletonMergeKeepsAbsentFields(t *testing.T) {
	ctx := context.Background()
	s := newRedisStore(t)

	require.NoError(t, s.UpsertSingleton(ctx, "bot_status", Document{
		"status":  "idle",
		"network": "base",
	}))
	require.NoError(t, s.UpsertSingleton(ctx, "bot_status", Document{
		"status": "scanning",
	}))

	doc, err := s.FindSingleton(ctx, "bot_status")
	require.NoError(t, err)
	assert.Equal(t, "scanning", doc["status"])
	assert.Equal(t, "base", doc["network"])

	count, err := s.Count(ctx, "bot_status", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestRedisStore_FindFilterSortLimit(t *testing.T) {
	ctx := context.Background()
	s := newRedisStore(t)

	_, err := s.InsertMany(ctx, "opportunities", []Document{
		{"detected_at": "2025-01-01T08:00:00.000000Z", "status": "detected"},
		{"detected_at": "2025-01-01T12:00:00.000000Z", "status": "profitable"},
		{"detected_at": "2025-01-01T10:00:00.000000Z", "status": "profitable"},
		{"detected_at": "2025-01-01T09:00:00.000000Z", "status": "expired"},
	})
	require.NoError(t, err)

	docs, err := s.Find(ctx, "opportunities", Filter{"status": "profitable"}, FindOptions{
		SortField: "detected_at",
		SortDesc:  true,
	})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "2025-01-01T12:00:00.000000Z", docs[0]["detected_at"])
	assert.NotEmpty(t, docs[0][IDField])

	docs, err = s.Find(ctx, "opportunities", nil, FindOptions{
		SortField: "detected_at",
		SortDesc:  true,
		Limit:     2,
	})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "2025-01-01T12:00:00.000000Z", docs[0]["detected_at"])
	assert.Equal(t, "2025-01-01T10:00:00.000000Z", docs[1]["detected_at"])
}

func TestRedisStore_DeleteAllAndReuse(t *testing.T) {
	ctx := context.Background()
	s := newRedisStore(t)

	_, err := s.InsertMany(ctx, "bot_logs", []Document{
		{"message": "one"},
		{"message": "two"},
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteAll(ctx, "bot_logs"))

	count, err := s.Count(ctx, "bot_logs", nil)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Collection stays usable after a wipe
	_, err = s.InsertOne(ctx, "bot_logs", Document{"message": "three"})
	require.NoError(t, err)

	docs, err := s.Find(ctx, "bot_logs", nil, FindOptions{})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "three", docs[0]["message"])
}
