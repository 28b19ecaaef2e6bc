package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayloop/notify/internal/model"
)

type fakeRedis struct {
	channel string
	message interface{}
	err     error
}

func (f *fakeRedis) Publish(_ context.Context, channel string, message interface{}) *redis.IntCmd {
	f.channel = channel
	f.message = message

	cmd := redis.NewIntResult(1, f.err)
	return cmd
}

func TestPublisher_Publish(t *testing.T) {
	rdb := &fakeRedis{}
	p := NewPublisher(rdb, "host-events")

	n := model.Notification{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Category:  model.CategoryBooking,
		Title:     "Booking confirmed",
		Message:   "See you soon",
		DedupKey:  "secret",
		CreatedAt: time.Now().UTC(),
	}

	err := p.Publish(context.Background(), n)
	require.NoError(t, err)
	assert.Equal(t, "host-events", rdb.channel)

	body, ok := rdb.message.([]byte)
	require.True(t, ok)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, n.ID.String(), got["id"])
	assert.Equal(t, "BOOKING", got["category"])

	// the dedup key is internal bookkeeping and must not leak to subscribers
	_, leaked := got["DedupKey"]
	assert.False(t, leaked)
	_, leaked = got["dedup_key"]
	assert.False(t, leaked)
}

func TestPublisher_Publish_Error(t *testing.T) {
	rdb := &fakeRedis{err: errors.New("connection refused")}
	p := NewPublisher(rdb, "")

	err := p.Publish(context.Background(), model.Notification{ID: uuid.New()})
	assert.Error(t, err)
	assert.Equal(t, DefaultChannel, rdb.channel)
}

func TestNewPublisher_DefaultChannel(t *testing.T) {
	p := NewPublisher(&fakeRedis{}, "")
	assert.Equal(t, DefaultChannel, p.channel)
}
