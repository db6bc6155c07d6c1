package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"campaignhub/contexts/campaign-editorial/content-progress-service/adapters/snapshot"
	"campaignhub/contexts/campaign-editorial/content-progress-service/adapters/sqlite"
	"campaignhub/contexts/campaign-editorial/content-progress-service/domain/entities"
	"campaignhub/contexts/campaign-editorial/content-progress-service/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestKeyValueUpsert(t *testing.T) {
	ctx := context.Background()
	store := openMemory(t)

	_, found, err := store.Get(ctx, ports.CampaignsKey)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, ports.CampaignsKey, []byte(`[]`)))
	require.NoError(t, store.Set(ctx, ports.CampaignsKey, []byte(`[{"id":"c-1"}]`)))

	value, found, err := store.Get(ctx, ports.CampaignsKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"c-1"}]`, string(value))
}

func TestStatusHistoryIsOrderedPerCampaign(t *testing.T) {
	ctx := context.Background()
	store := openMemory(t)
	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	changes := []entities.StatusChange{
		{ChangeID: "h-2", CampaignID: "c-1", ItemID: "i-1", Action: entities.StatusActionAdvance,
			FromStatus: entities.ContentStatusNotStarted, ToStatus: entities.ContentStatusInProgress,
			FromProgress: 0, ToProgress: 25, ChangedBy: "ana", CreatedAt: base.Add(2 * time.Minute)},
		{ChangeID: "h-1", CampaignID: "c-1", ItemID: "i-1", Action: entities.StatusActionCreate,
			ToStatus: entities.ContentStatusNotStarted, ChangedBy: "ana", CreatedAt: base},
		{ChangeID: "h-3", CampaignID: "c-2", ItemID: "i-9", Action: entities.StatusActionReset,
			FromStatus: entities.ContentStatusPublished, ToStatus: entities.ContentStatusNotStarted,
			FromProgress: 100, ToProgress: 0, ChangedBy: "bruno", CreatedAt: base.Add(time.Minute)},
	}
	for _, change := range changes {
		require.NoError(t, store.AppendStatusChange(ctx, change))
	}

	items, err := store.ListStatusChanges(ctx, "c-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "h-1", items[0].ChangeID)
	assert.Equal(t, "h-2", items[1].ChangeID)
	assert.Equal(t, changes[0], items[1])
}

func TestDeleteStatusChangesKeepsOtherCampaigns(t *testing.T) {
	ctx := context.Background()
	store := openMemory(t)
	at := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, store.AppendStatusChange(ctx, entities.StatusChange{
		ChangeID: "h-1", CampaignID: "c-1", ItemID: "i-1", Action: entities.StatusActionCreate, CreatedAt: at,
	}))
	require.NoError(t, store.AppendStatusChange(ctx, entities.StatusChange{
		ChangeID: "h-2", CampaignID: "c-2", ItemID: "i-2", Action: entities.StatusActionCreate, CreatedAt: at,
	}))

	require.NoError(t, store.DeleteStatusChanges(ctx, "c-1"))

	gone, err := store.ListStatusChanges(ctx, "c-1")
	require.NoError(t, err)
	assert.Empty(t, gone)
	kept, err := store.ListStatusChanges(ctx, "c-2")
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestSnapshotSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "campaigns.db")

	store, err := sqlite.Open(path)
	require.NoError(t, err)
	repo, err := snapshot.Open(ctx, snapshot.NewStore(store, nil), nil)
	require.NoError(t, err)
	require.NoError(t, repo.CreateCampaign(ctx, entities.Campaign{
		CampaignID: "c-1",
		Name:       "B2B Thought Leadership",
		Status:     entities.CampaignStatusPlanning,
	}))
	require.NoError(t, store.Close())

	reopened, err := sqlite.Open(path)
	require.NoError(t, err)
	defer reopened.Close()
	repo, err = snapshot.Open(ctx, snapshot.NewStore(reopened, nil), nil)
	require.NoError(t, err)
	campaign, err := repo.GetCampaign(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "B2B Thought Leadership", campaign.Name)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := sqlite.Open("  ")
	assert.Error(t, err)
}
