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

// EditContentItemCommand edits item fields; nil fields are left untouched.
// Status changes go through TransitionContentItemUseCase.
type EditContentItemCommand struct {
	CampaignID string
	ItemID     string
	ActorID    string
	Title      *string
	Type       *string
	Platform   *string
	AssignedTo *string
	DueDate    *string
	Notes      *string
	Progress   *int
}

type EditContentItemUseCase struct {
	Campaigns ports.CampaignRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc EditContentItemUseCase) Execute(ctx context.Context, cmd EditContentItemCommand) (entities.ContentItem, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()

	var edited entities.ContentItem
	_, err := uc.Campaigns.MutateCampaign(ctx, cmd.CampaignID, func(campaign *entities.Campaign) (bool, error) {
		idx, ok := campaign.ItemIndex(cmd.ItemID)
		if !ok {
			return false, domainerrors.ErrContentItemNotFound
		}
		item := campaign.ContentItems[idx]
		if cmd.Title != nil {
			item.Title = strings.TrimSpace(*cmd.Title)
		}
		if cmd.Type != nil {
			item.Type = entities.NormalizeContentType(*cmd.Type)
		}
		if cmd.Platform != nil {
			item.Platform = entities.NormalizePlatform(*cmd.Platform)
		}
		if cmd.AssignedTo != nil {
			item.AssignedTo = strings.TrimSpace(*cmd.AssignedTo)
		}
		if cmd.DueDate != nil {
			item.DueDate = strings.TrimSpace(*cmd.DueDate)
		}
		if cmd.Notes != nil {
			item.Notes = strings.TrimSpace(*cmd.Notes)
		}
		if cmd.Progress != nil {
			item = item.WithProgress(*cmd.Progress, now)
		}
		if !item.ValidateBasics() {
			return false, domainerrors.ErrInvalidContentItemInput
		}
		item.UpdatedAt = now
		campaign.ContentItems[idx] = item
		campaign.UpdatedAt = now
		edited = item
		return true, nil
	})
	if err != nil {
		return entities.ContentItem{}, err
	}

	logger.Info("content item edited",
		"event", "content_item_edited",
		"module", "campaign-editorial/content-progress-service",
		"layer", "application",
		"campaign_id", strings.TrimSpace(cmd.CampaignID),
		"item_id", edited.ItemID,
		"actor_id", actorOrAnonymous(cmd.ActorID),
	)
	return edited, nil
}
