package commands

import (
	"context"
	"log/slog"
	"strings"

	application "campaignhub/contexts/campaign-editorial/content-progress-service/application"
	"campaignhub/contexts/campaign-editorial/content-progress-service/domain/entities"
	domainerrors "campaignhub/contexts/campaign-editorial/content-progress-service/domain/errors"
	"campaignhub/contexts/campaign-editorial/content-progress-service/ports"
)

type CreateCampaignCommand struct {
	ActorID        string
	Name           string  `validate:"notblank,max=120"`
	Objective      string  `validate:"max=2000"`
	TargetAudience string  `validate:"max=2000"`
	Budget         float64 `validate:"gte=0"`
	Channels       []string
	StartDate      string
	EndDate        string
	Status         string
}

type CreateCampaignUseCase struct {
	Campaigns   ports.CampaignRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (uc CreateCampaignUseCase) Execute(ctx context.Context, cmd CreateCampaignCommand) (entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)
	if !application.ValidStruct(cmd) {
		return entities.Campaign{}, domainerrors.ErrInvalidCampaignInput
	}

	campaignID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Campaign{}, err
	}

	now := uc.Clock.Now().UTC()
	status := entities.CampaignStatus(strings.ToLower(strings.TrimSpace(cmd.Status)))
	if status == "" {
		status = entities.CampaignStatusPlanning
	}
	campaign := entities.Campaign{
		CampaignID:     campaignID,
		Name:           strings.TrimSpace(cmd.Name),
		Objective:      strings.TrimSpace(cmd.Objective),
		TargetAudience: strings.TrimSpace(cmd.TargetAudience),
		Budget:         cmd.Budget,
		Channels:       normalizeChannels(cmd.Channels),
		StartDate:      strings.TrimSpace(cmd.StartDate),
		EndDate:        strings.TrimSpace(cmd.EndDate),
		Status:         status,
		ContentItems:   []entities.ContentItem{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if !campaign.ValidateBasics() {
		return entities.Campaign{}, domainerrors.ErrInvalidCampaignInput
	}

	if err := uc.Campaigns.CreateCampaign(ctx, campaign); err != nil {
		return entities.Campaign{}, err
	}

	logger.Info("campaign created",
		"event", "campaign_created",
		"module", "campaign-editorial/content-progress-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"actor_id", actorOrAnonymous(cmd.ActorID),
	)
	return campaign, nil
}

func normalizeChannels(raw []string) []entities.Platform {
	channels := make([]entities.Platform, 0, len(raw))
	seen := make(map[entities.Platform]struct{}, len(raw))
	for _, item := range raw {
		platform := entities.NormalizePlatform(item)
		if platform == "" {
			continue
		}
		if _, exists := seen[platform]; exists {
			continue
		}
		seen[platform] = struct{}{}
		channels = append(channels, platform)
	}
	return channels
}
