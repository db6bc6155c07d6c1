package redisadapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"campaignhub/contexts/campaign-editorial/content-progress-service/domain/entities"
	"campaignhub/contexts/campaign-editorial/content-progress-service/ports"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient is an in-process stand-in for the redis commands the store issues.
type fakeClient struct {
	values map[string]string
	lists  map[string][]string
	getErr error
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		values: make(map[string]string),
		lists:  make(map[string][]string),
	}
}

func (f *fakeClient) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	value, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (f *fakeClient) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeClient) RPush(_ context.Context, key string, values ...interface{}) *redis.IntCmd {
	for _, value := range values {
		switch v := value.(type) {
		case []byte:
			f.lists[key] = append(f.lists[key], string(v))
		case string:
			f.lists[key] = append(f.lists[key], v)
		}
	}
	return redis.NewIntResult(int64(len(f.lists[key])), nil)
}

func (f *fakeClient) LRange(_ context.Context, key string, start, stop int64) *redis.StringSliceCmd {
	items := f.lists[key]
	if stop < 0 {
		stop = int64(len(items)) + stop
	}
	if start >= int64(len(items)) || start > stop {
		return redis.NewStringSliceResult([]string{}, nil)
	}
	return redis.NewStringSliceResult(append([]string(nil), items[start:stop+1]...), nil)
}

func (f *fakeClient) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := f.lists[key]; ok {
			delete(f.lists, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func TestGetMissReportsNotFound(t *testing.T) {
	store := NewStore(newFakeClient(), "")

	value, found, err := store.Get(context.Background(), ports.CampaignsKey)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestSetWritesUnderNamespace(t *testing.T) {
	client := newFakeClient()
	store := NewStore(client, "hub")

	require.NoError(t, store.Set(context.Background(), ports.CampaignsKey, []byte(`[]`)))
	assert.Equal(t, `[]`, client.values["hub:campaigns"])

	value, found, err := store.Get(context.Background(), ports.CampaignsKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, string(value))
}

func TestGetPropagatesBackendErrors(t *testing.T) {
	client := newFakeClient()
	client.getErr = errors.New("connection refused")
	store := NewStore(client, "")

	_, _, err := store.Get(context.Background(), ports.CampaignsKey)
	assert.ErrorIs(t, err, client.getErr)
}

func TestStatusHistoryListIsPerCampaign(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	store := NewStore(client, "")
	at := time.Date(2026, 4, 3, 9, 30, 0, 0, time.UTC)

	first := entities.StatusChange{
		ChangeID: "h-1", CampaignID: "c-1", ItemID: "i-1",
		Action: entities.StatusActionCreate, ToStatus: entities.ContentStatusNotStarted,
		ChangedBy: "ana", CreatedAt: at,
	}
	second := entities.StatusChange{
		ChangeID: "h-2", CampaignID: "c-1", ItemID: "i-1",
		Action: entities.StatusActionAdvance, FromStatus: entities.ContentStatusNotStarted,
		ToStatus: entities.ContentStatusInProgress, ToProgress: 25,
		ChangedBy: "ana", CreatedAt: at.Add(time.Minute),
	}
	other := entities.StatusChange{ChangeID: "h-3", CampaignID: "c-2", CreatedAt: at}

	for _, change := range []entities.StatusChange{first, second, other} {
		require.NoError(t, store.AppendStatusChange(ctx, change))
	}
	assert.Len(t, client.lists["campaignhub:history:c-1"], 2)

	items, err := store.ListStatusChanges(ctx, "c-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first, items[0])
	assert.Equal(t, second, items[1])
}

func TestDeleteStatusChangesDropsOnlyThatCampaign(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	store := NewStore(client, "")

	require.NoError(t, store.AppendStatusChange(ctx, entities.StatusChange{ChangeID: "h-1", CampaignID: "c-1"}))
	require.NoError(t, store.AppendStatusChange(ctx, entities.StatusChange{ChangeID: "h-2", CampaignID: "c-2"}))

	require.NoError(t, store.DeleteStatusChanges(ctx, "c-1"))

	items, err := store.ListStatusChanges(ctx, "c-1")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Len(t, client.lists["campaignhub:history:c-2"], 1)
}
