package entities_test

import (
	"testing"

	"campaignhub/contexts/campaign-editorial/content-progress-service/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []entities.ContentItem {
	mk := func(id, title string, platform entities.Platform, status entities.ContentStatus) entities.ContentItem {
		return entities.NewContentItem(id, title, entities.ContentTypeImage, platform, status, "Ana", "", "", fixedNow)
	}
	return []entities.ContentItem{
		mk("a", "Summer Banner", entities.PlatformInstagram, entities.ContentStatusNotStarted),
		mk("b", "Launch video", entities.PlatformFacebook, entities.ContentStatusReview),
		mk("c", "BANNER retarget", entities.PlatformFacebook, entities.ContentStatusPublished),
	}
}

func TestCampaignProgressIsMeanOfItems(t *testing.T) {
	campaign := entities.Campaign{Name: "Summer", Status: entities.CampaignStatusActive}
	assert.Equal(t, 0.0, campaign.Progress())

	campaign.ContentItems = sampleItems()
	assert.InDelta(t, (0.0+75.0+100.0)/3.0, campaign.Progress(), 0.0001)
}

func TestStatusBreakdownListsEveryStatus(t *testing.T) {
	campaign := entities.Campaign{ContentItems: sampleItems()}
	breakdown := campaign.StatusBreakdown()
	require.Len(t, breakdown, len(entities.ContentStatuses))
	assert.Equal(t, 1, breakdown[entities.ContentStatusNotStarted])
	assert.Equal(t, 0, breakdown[entities.ContentStatusApproved])
	assert.Equal(t, 1, breakdown[entities.ContentStatusPublished])
}

func TestCloneDoesNotAliasItems(t *testing.T) {
	campaign := entities.Campaign{
		Channels:     []entities.Platform{entities.PlatformInstagram},
		ContentItems: sampleItems(),
	}
	clone := campaign.Clone()
	clone.ContentItems[0].Title = "changed"
	clone.Channels[0] = entities.PlatformWebsite

	assert.Equal(t, "Summer Banner", campaign.ContentItems[0].Title)
	assert.Equal(t, entities.PlatformInstagram, campaign.Channels[0])
}

func TestCampaignValidateBasics(t *testing.T) {
	valid := entities.Campaign{
		Name:      "Summer",
		Status:    entities.CampaignStatusPlanning,
		StartDate: "2026-06-01",
		EndDate:   "2026-08-31",
	}
	assert.True(t, valid.ValidateBasics())

	reversed := valid
	reversed.StartDate, reversed.EndDate = valid.EndDate, valid.StartDate
	assert.False(t, reversed.ValidateBasics())

	negative := valid
	negative.Budget = -1
	assert.False(t, negative.ValidateBasics())

	unnamed := valid
	unnamed.Name = " "
	assert.False(t, unnamed.ValidateBasics())
}

func TestFilterMatchesTitleCaseInsensitively(t *testing.T) {
	items := sampleItems()
	result := entities.ContentFilter{Query: "banner"}.Apply(items)
	require.Len(t, result, 2)
	assert.Equal(t, "a", result[0].ItemID)
	assert.Equal(t, "c", result[1].ItemID)
}

func TestFilterCombinesPredicates(t *testing.T) {
	items := sampleItems()
	result := entities.ContentFilter{
		Query:    "banner",
		Status:   "published",
		Platform: "facebook",
	}.Apply(items)
	require.Len(t, result, 1)
	assert.Equal(t, "c", result[0].ItemID)

	all := entities.ContentFilter{Status: entities.FilterAll, Platform: entities.FilterAll}.Apply(items)
	assert.Len(t, all, 3)
}

func TestFilterWithoutMatchesLeavesSourceUntouched(t *testing.T) {
	items := sampleItems()
	before := append([]entities.ContentItem(nil), items...)

	result := entities.ContentFilter{Query: "no such title"}.Apply(items)
	assert.Empty(t, result)
	assert.Equal(t, before, items)
}

func TestFilterValidate(t *testing.T) {
	assert.True(t, entities.ContentFilter{}.Validate())
	assert.True(t, entities.ContentFilter{Status: "ALL", Platform: "Website"}.Validate())
	assert.False(t, entities.ContentFilter{Status: "archived"}.Validate())
	assert.False(t, entities.ContentFilter{Platform: "myspace"}.Validate())
}
