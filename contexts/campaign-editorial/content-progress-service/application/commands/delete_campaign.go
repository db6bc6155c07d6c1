package commands

import (
	"context"
	"log/slog"
	"strings"

	application "campaignhub/contexts/campaign-editorial/content-progress-service/application"
	"campaignhub/contexts/campaign-editorial/content-progress-service/ports"
)

type DeleteCampaignCommand struct {
	CampaignID string
	ActorID    string
}

type DeleteCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	History   ports.HistoryRepository
	Logger    *slog.Logger
}

// Execute removes the campaign and then purges its status history. A failed
// purge is logged and does not fail the delete, which is already committed.
func (uc DeleteCampaignUseCase) Execute(ctx context.Context, cmd DeleteCampaignCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	campaignID := strings.TrimSpace(cmd.CampaignID)
	if err := uc.Campaigns.DeleteCampaign(ctx, campaignID); err != nil {
		return err
	}
	if uc.History != nil {
		if err := uc.History.DeleteStatusChanges(ctx, campaignID); err != nil {
			logger.Warn("campaign history purge failed",
				"event", "campaign_history_purge_failed",
				"module", "campaign-editorial/content-progress-service",
				"layer", "application",
				"campaign_id", campaignID,
				"error", err.Error(),
			)
		}
	}
	logger.Info("campaign deleted",
		"event", "campaign_deleted",
		"module", "campaign-editorial/content-progress-service",
		"layer", "application",
		"campaign_id", campaignID,
		"actor_id", actorOrAnonymous(cmd.ActorID),
	)
	return nil
}
