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

type DeleteContentItemCommand struct {
	CampaignID string
	ItemID     string
	ActorID    string
}

type DeleteContentItemUseCase struct {
	Campaigns   ports.CampaignRepository
	History     ports.HistoryRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// Execute removes the item and leaves a delete row in the status history.
func (uc DeleteContentItemUseCase) Execute(ctx context.Context, cmd DeleteContentItemCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()
	changeID, err := newStatusChangeID(ctx, uc.History, uc.IDGenerator)
	if err != nil {
		return err
	}

	_, err = uc.Campaigns.MutateCampaign(ctx, cmd.CampaignID, func(campaign *entities.Campaign) (bool, error) {
		idx, ok := campaign.ItemIndex(cmd.ItemID)
		if !ok {
			return false, domainerrors.ErrContentItemNotFound
		}
		removed := campaign.ContentItems[idx]
		if err := appendStatusChange(ctx, uc.History, entities.StatusChange{
			ChangeID:     changeID,
			CampaignID:   strings.TrimSpace(cmd.CampaignID),
			ItemID:       removed.ItemID,
			Action:       entities.StatusActionDelete,
			FromStatus:   removed.Status,
			FromProgress: removed.Progress,
			ChangedBy:    actorOrAnonymous(cmd.ActorID),
			CreatedAt:    now,
		}); err != nil {
			return false, err
		}
		items := make([]entities.ContentItem, 0, len(campaign.ContentItems)-1)
		items = append(items, campaign.ContentItems[:idx]...)
		items = append(items, campaign.ContentItems[idx+1:]...)
		campaign.ContentItems = items
		campaign.UpdatedAt = now
		return true, nil
	})
	if err != nil {
		return err
	}

	logger.Info("content item deleted",
		"event", "content_item_deleted",
		"module", "campaign-editorial/content-progress-service",
		"layer", "application",
		"campaign_id", strings.TrimSpace(cmd.CampaignID),
		"item_id", strings.TrimSpace(cmd.ItemID),
		"actor_id", actorOrAnonymous(cmd.ActorID),
	)
	return nil
}
