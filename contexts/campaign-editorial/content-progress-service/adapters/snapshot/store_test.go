package snapshot_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"campaignhub/contexts/campaign-editorial/content-progress-service/adapters/memory"
	"campaignhub/contexts/campaign-editorial/content-progress-service/adapters/snapshot"
	"campaignhub/contexts/campaign-editorial/content-progress-service/domain/entities"
	domainerrors "campaignhub/contexts/campaign-editorial/content-progress-service/domain/errors"
	"campaignhub/contexts/campaign-editorial/content-progress-service/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

func sampleCampaign(id string) entities.Campaign {
	return entities.Campaign{
		CampaignID: id,
		Name:       "Summer Collection Launch",
		Status:     entities.CampaignStatusActive,
		Channels:   []entities.Platform{entities.PlatformInstagram},
		StartDate:  "2026-06-01",
		EndDate:    "2026-08-31",
		ContentItems: []entities.ContentItem{
			entities.NewContentItem("item-1", "Banner", entities.ContentTypeBanner, entities.PlatformInstagram,
				entities.ContentStatusReview, "Ana", "2026-06-10", "", now),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestLoadMalformedPayloadStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()
	require.NoError(t, kv.Set(ctx, ports.CampaignsKey, []byte(`{"not": "an array"`)))

	campaigns, err := snapshot.NewStore(kv, nil).Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, campaigns)
}

func TestLoadMissingKeyStartsEmpty(t *testing.T) {
	campaigns, err := snapshot.NewStore(memory.NewStore(), nil).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, campaigns)
}

func TestEncodeUsesCamelCaseLayout(t *testing.T) {
	payload, err := snapshot.Encode([]entities.Campaign{sampleCampaign("c-1")})
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(payload, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "c-1", raw[0]["id"])
	assert.Equal(t, "2026-06-01", raw[0]["startDate"])

	items, ok := raw[0]["contentItems"].([]any)
	require.True(t, ok)
	item := items[0].(map[string]any)
	assert.Equal(t, "Ana", item["assignedTo"])
	assert.Equal(t, "2026-06-10", item["dueDate"])
	assert.EqualValues(t, 75, item["progress"])
}

func TestDecodeLiftsProgressToStatusFloor(t *testing.T) {
	payload := []byte(`[{"id":"c-1","name":"Legacy","startDate":"","endDate":"","status":"active",
		"contentItems":[{"id":"i-1","title":"Old post","type":"image","platform":"facebook",
		"status":"approved","assignedTo":"Ana","dueDate":"","progress":40}]}]`)

	campaigns, err := snapshot.Decode(payload)
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	require.Len(t, campaigns[0].ContentItems, 1)
	assert.Equal(t, 90, campaigns[0].ContentItems[0].Progress)
}

func TestRepositoryRoundTripsThroughSnapshot(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()
	repo, err := snapshot.Open(ctx, snapshot.NewStore(kv, nil), nil)
	require.NoError(t, err)

	require.NoError(t, repo.CreateCampaign(ctx, sampleCampaign("c-1")))
	require.NoError(t, repo.CreateCampaign(ctx, sampleCampaign("c-2")))
	assert.ErrorIs(t, repo.CreateCampaign(ctx, sampleCampaign("c-1")), domainerrors.ErrCampaignAlreadyExists)
	assert.Equal(t, 2, kv.Writes())

	reopened, err := snapshot.Open(ctx, snapshot.NewStore(kv, nil), nil)
	require.NoError(t, err)
	all, err := reopened.ListCampaigns(ctx, ports.CampaignFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "c-1", all[0].CampaignID)
	assert.Equal(t, "c-2", all[1].CampaignID)
	assert.Equal(t, now, all[0].ContentItems[0].CreatedAt)
}

func TestMutateWithoutChangeSkipsWrite(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()
	repo, err := snapshot.Open(ctx, snapshot.NewStore(kv, nil), nil)
	require.NoError(t, err)
	require.NoError(t, repo.CreateCampaign(ctx, sampleCampaign("c-1")))

	_, err = repo.MutateCampaign(ctx, "c-1", func(*entities.Campaign) (bool, error) {
		return false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, kv.Writes())

	boom := errors.New("boom")
	_, err = repo.MutateCampaign(ctx, "c-1", func(campaign *entities.Campaign) (bool, error) {
		campaign.ContentItems = nil
		return false, boom
	})
	assert.ErrorIs(t, err, boom)

	stored, err := repo.GetCampaign(ctx, "c-1")
	require.NoError(t, err)
	assert.Len(t, stored.ContentItems, 1)
}

type failingKV struct {
	ports.KeyValueStore
	err error
}

func (f failingKV) Set(context.Context, string, []byte) error {
	return f.err
}

func TestFailedSaveLeavesListUnchanged(t *testing.T) {
	ctx := context.Background()
	saveErr := errors.New("disk full")
	repo, err := snapshot.Open(ctx, snapshot.NewStore(failingKV{KeyValueStore: memory.NewStore(), err: saveErr}, nil), nil)
	require.NoError(t, err)

	assert.ErrorIs(t, repo.CreateCampaign(ctx, sampleCampaign("c-1")), saveErr)
	all, err := repo.ListCampaigns(ctx, ports.CampaignFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	repo, err := snapshot.Open(ctx, snapshot.NewStore(memory.NewStore(), nil), nil)
	require.NoError(t, err)
	require.NoError(t, repo.CreateCampaign(ctx, sampleCampaign("c-1")))

	first, err := repo.GetCampaign(ctx, "c-1")
	require.NoError(t, err)
	first.ContentItems[0].Title = "mutated"

	second, err := repo.GetCampaign(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "Banner", second.ContentItems[0].Title)
}
