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

// UpdateCampaignCommand carries briefing edits; nil fields are left untouched.
type UpdateCampaignCommand struct {
	CampaignID     string
	ActorID        string
	Name           *string
	Objective      *string
	TargetAudience *string
	Budget         *float64
	Channels       *[]string
	StartDate      *string
	EndDate        *string
}

type UpdateCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc UpdateCampaignUseCase) Execute(ctx context.Context, cmd UpdateCampaignCommand) (entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()

	updated, err := uc.Campaigns.MutateCampaign(ctx, cmd.CampaignID, func(campaign *entities.Campaign) (bool, error) {
		if cmd.Name != nil {
			campaign.Name = strings.TrimSpace(*cmd.Name)
		}
		if cmd.Objective != nil {
			campaign.Objective = strings.TrimSpace(*cmd.Objective)
		}
		if cmd.TargetAudience != nil {
			campaign.TargetAudience = strings.TrimSpace(*cmd.TargetAudience)
		}
		if cmd.Budget != nil {
			campaign.Budget = *cmd.Budget
		}
		if cmd.Channels != nil {
			campaign.Channels = normalizeChannels(*cmd.Channels)
		}
		if cmd.StartDate != nil {
			campaign.StartDate = strings.TrimSpace(*cmd.StartDate)
		}
		if cmd.EndDate != nil {
			campaign.EndDate = strings.TrimSpace(*cmd.EndDate)
		}
		if !campaign.ValidateBasics() {
			return false, domainerrors.ErrInvalidCampaignInput
		}
		campaign.UpdatedAt = now
		return true, nil
	})
	if err != nil {
		return entities.Campaign{}, err
	}

	logger.Info("campaign updated",
		"event", "campaign_updated",
		"module", "campaign-editorial/content-progress-service",
		"layer", "application",
		"campaign_id", updated.CampaignID,
		"actor_id", actorOrAnonymous(cmd.ActorID),
	)
	return updated, nil
}
