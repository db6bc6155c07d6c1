package queries

import (
	"context"
	"log/slog"
	"strings"

	application "campaignhub/contexts/campaign-editorial/content-progress-service/application"
	"campaignhub/contexts/campaign-editorial/content-progress-service/domain/entities"
	domainerrors "campaignhub/contexts/campaign-editorial/content-progress-service/domain/errors"
	"campaignhub/contexts/campaign-editorial/content-progress-service/ports"
)

type GetCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Logger    *slog.Logger
}

func (uc GetCampaignUseCase) Execute(ctx context.Context, campaignID string) (entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)
	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(campaignID))
	if err != nil {
		return entities.Campaign{}, err
	}
	logger.Debug("campaign fetched",
		"event", "campaign_fetched",
		"module", "campaign-editorial/content-progress-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"items", len(campaign.ContentItems),
		"progress", campaign.Progress(),
	)
	return campaign, nil
}

type ListContentItemsQuery struct {
	CampaignID string
	Filter     entities.ContentFilter
}

type ListContentItemsUseCase struct {
	Campaigns ports.CampaignRepository
	Logger    *slog.Logger
}

// Execute projects the campaign's items through the filter view.
func (uc ListContentItemsUseCase) Execute(ctx context.Context, query ListContentItemsQuery) ([]entities.ContentItem, error) {
	logger := application.ResolveLogger(uc.Logger)
	if !query.Filter.Validate() {
		return nil, domainerrors.ErrInvalidContentFilter
	}
	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(query.CampaignID))
	if err != nil {
		return nil, err
	}
	items := query.Filter.Apply(campaign.ContentItems)
	logger.Debug("content items listed",
		"event", "content_items_listed",
		"module", "campaign-editorial/content-progress-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"total", len(campaign.ContentItems),
		"visible", len(items),
	)
	return items, nil
}

type ListStatusHistoryUseCase struct {
	Campaigns ports.CampaignRepository
	History   ports.HistoryRepository
	Logger    *slog.Logger
}

func (uc ListStatusHistoryUseCase) Execute(ctx context.Context, campaignID string) ([]entities.StatusChange, error) {
	campaignID = strings.TrimSpace(campaignID)
	if _, err := uc.Campaigns.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	if uc.History == nil {
		return []entities.StatusChange{}, nil
	}
	return uc.History.ListStatusChanges(ctx, campaignID)
}
