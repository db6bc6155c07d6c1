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

type AddContentItemCommand struct {
	CampaignID string
	ActorID    string
	Title      string `validate:"notblank,max=200"`
	Type       string `validate:"required"`
	Platform   string `validate:"required"`
	Status     string
	AssignedTo string `validate:"notblank,max=120"`
	DueDate    string
	Notes      string `validate:"max=4000"`
}

type AddContentItemUseCase struct {
	Campaigns   ports.CampaignRepository
	History     ports.HistoryRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// Execute appends a new item to the campaign. A rejected command leaves the
// campaign's item list untouched.
func (uc AddContentItemUseCase) Execute(ctx context.Context, cmd AddContentItemCommand) (entities.ContentItem, error) {
	logger := application.ResolveLogger(uc.Logger)
	if !application.ValidStruct(cmd) {
		return entities.ContentItem{}, domainerrors.ErrInvalidContentItemInput
	}

	itemID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.ContentItem{}, err
	}

	now := uc.Clock.Now().UTC()
	status := entities.NormalizeContentStatus(cmd.Status)
	if status == "" {
		status = entities.ContentStatusNotStarted
	}
	item := entities.NewContentItem(
		itemID,
		cmd.Title,
		entities.NormalizeContentType(cmd.Type),
		entities.NormalizePlatform(cmd.Platform),
		status,
		cmd.AssignedTo,
		cmd.DueDate,
		cmd.Notes,
		now,
	)
	if !item.ValidateBasics() {
		return entities.ContentItem{}, domainerrors.ErrInvalidContentItemInput
	}

	changeID, err := newStatusChangeID(ctx, uc.History, uc.IDGenerator)
	if err != nil {
		return entities.ContentItem{}, err
	}
	change := entities.StatusChange{
		ChangeID:     changeID,
		CampaignID:   strings.TrimSpace(cmd.CampaignID),
		ItemID:       item.ItemID,
		Action:       entities.StatusActionCreate,
		ToStatus:     item.Status,
		FromProgress: 0,
		ToProgress:   item.Progress,
		ChangedBy:    actorOrAnonymous(cmd.ActorID),
		CreatedAt:    now,
	}

	if _, err := uc.Campaigns.MutateCampaign(ctx, cmd.CampaignID, func(campaign *entities.Campaign) (bool, error) {
		if err := appendStatusChange(ctx, uc.History, change); err != nil {
			return false, err
		}
		campaign.ContentItems = append(campaign.ContentItems, item)
		campaign.UpdatedAt = now
		return true, nil
	}); err != nil {
		return entities.ContentItem{}, err
	}

	logger.Info("content item created",
		"event", "content_item_created",
		"module", "campaign-editorial/content-progress-service",
		"layer", "application",
		"campaign_id", strings.TrimSpace(cmd.CampaignID),
		"item_id", item.ItemID,
		"status", string(item.Status),
		"progress", item.Progress,
	)
	return item, nil
}
