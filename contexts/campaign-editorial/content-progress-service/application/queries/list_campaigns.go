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

type ListCampaignsQuery struct {
	Status string
}

type ListCampaignsUseCase struct {
	Campaigns ports.CampaignRepository
	Logger    *slog.Logger
}

func (uc ListCampaignsUseCase) Execute(ctx context.Context, query ListCampaignsQuery) ([]entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)
	filter := ports.CampaignFilter{}
	if status := strings.ToLower(strings.TrimSpace(query.Status)); status != "" && status != entities.FilterAll {
		filter.Status = entities.CampaignStatus(status)
		if !entities.IsSupportedCampaignStatus(filter.Status) {
			return nil, domainerrors.ErrInvalidCampaignInput
		}
	}
	items, err := uc.Campaigns.ListCampaigns(ctx, filter)
	if err != nil {
		return nil, err
	}
	logger.Info("campaigns listed",
		"event", "campaigns_listed",
		"module", "campaign-editorial/content-progress-service",
		"layer", "application",
		"count", len(items),
	)
	return items, nil
}
