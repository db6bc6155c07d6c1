package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"campaignhub/contexts/campaign-editorial/content-progress-service/adapters/memory"
	"campaignhub/contexts/campaign-editorial/content-progress-service/adapters/seed"
	"campaignhub/contexts/campaign-editorial/content-progress-service/adapters/snapshot"
	"campaignhub/contexts/campaign-editorial/content-progress-service/domain/entities"
	"campaignhub/contexts/campaign-editorial/content-progress-service/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeeder(t *testing.T) (seed.Seeder, *snapshot.Repository, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	repo, err := snapshot.Open(context.Background(), snapshot.NewStore(store, nil), nil)
	require.NoError(t, err)
	return seed.Seeder{
		Campaigns:   repo,
		Clock:       store,
		IDGenerator: store,
	}, repo, store
}

func TestBuiltinSeedLoadsDemoCampaigns(t *testing.T) {
	ctx := context.Background()
	seeder, repo, _ := newSeeder(t)

	count, err := seeder.Run(ctx, seed.BuiltinSource)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	campaigns, err := repo.ListCampaigns(ctx, ports.CampaignFilter{})
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "Summer Collection Launch", campaigns[0].Name)
	assert.Equal(t, entities.CampaignStatusActive, campaigns[0].Status)
	for _, campaign := range campaigns {
		for _, item := range campaign.ContentItems {
			assert.True(t, item.ProgressConsistent(), "item %q", item.Title)
			assert.NotEmpty(t, item.ItemID)
		}
	}
}

func TestSeedSkipsNonEmptyStore(t *testing.T) {
	ctx := context.Background()
	seeder, _, store := newSeeder(t)

	_, err := seeder.Run(ctx, seed.BuiltinSource)
	require.NoError(t, err)
	writes := store.Writes()

	count, err := seeder.Run(ctx, seed.BuiltinSource)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, writes, store.Writes())
}

func TestSeedFromFileClampsProgress(t *testing.T) {
	ctx := context.Background()
	seeder, repo, _ := newSeeder(t)

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
campaigns:
  - name: Webinar series
    status: planning
    channels: [linkedin]
    content_items:
      - title: Invite email copy
        type: text
        platform: linkedin
        status: review
        assigned_to: Dana
        progress: 10
`), 0o600))

	count, err := seeder.Run(ctx, path)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	campaigns, err := repo.ListCampaigns(ctx, ports.CampaignFilter{})
	require.NoError(t, err)
	require.Len(t, campaigns[0].ContentItems, 1)
	assert.Equal(t, 75, campaigns[0].ContentItems[0].Progress)
}

func TestSeedRejectsInvalidDocument(t *testing.T) {
	seeder, _, _ := newSeeder(t)

	_, err := seeder.Parse(context.Background(), []byte(`
campaigns:
  - name: Broken
    content_items:
      - title: ""
        type: image
        platform: instagram
        assigned_to: Ana
`))
	assert.Error(t, err)

	_, err = seeder.Parse(context.Background(), []byte("campaigns: [unterminated"))
	assert.Error(t, err)
}

func TestSeedLatencyHonoursCancellation(t *testing.T) {
	seeder, _, _ := newSeeder(t)
	seeder.Latency = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := seeder.Run(ctx, seed.BuiltinSource)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmptySourceDisablesSeeding(t *testing.T) {
	seeder, _, store := newSeeder(t)

	count, err := seeder.Run(context.Background(), "  ")
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, store.Writes())
}
