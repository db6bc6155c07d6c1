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

type TransitionContentItemCommand struct {
	CampaignID string
	ItemID     string
	ActorID    string
	Action     entities.StatusAction
	// Status is only read for StatusActionSet.
	Status string
}

type TransitionContentItemResult struct {
	Item entities.ContentItem
	// Changed is false when the action was a no-op, e.g. advancing a published item.
	Changed bool
}

type TransitionContentItemUseCase struct {
	Campaigns ports.CampaignRepository
	History   ports.HistoryRepository
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func (uc TransitionContentItemUseCase) Execute(
	ctx context.Context,
	cmd TransitionContentItemCommand,
) (TransitionContentItemResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()
	changeID, err := newStatusChangeID(ctx, uc.History, uc.IDGen)
	if err != nil {
		return TransitionContentItemResult{}, err
	}

	var (
		before  entities.ContentItem
		after   entities.ContentItem
		changed bool
	)
	_, err = uc.Campaigns.MutateCampaign(ctx, cmd.CampaignID, func(campaign *entities.Campaign) (bool, error) {
		idx, ok := campaign.ItemIndex(cmd.ItemID)
		if !ok {
			return false, domainerrors.ErrContentItemNotFound
		}
		before = campaign.ContentItems[idx]

		switch cmd.Action {
		case entities.StatusActionAdvance:
			after, changed = before.Advance(now)
		case entities.StatusActionReset:
			after, changed = before.Reset(now), true
		case entities.StatusActionSet:
			status := entities.NormalizeContentStatus(cmd.Status)
			if !entities.IsSupportedContentStatus(status) {
				return false, domainerrors.ErrInvalidContentItemInput
			}
			after, changed = before.WithStatus(status, now), true
		default:
			return false, domainerrors.ErrInvalidContentItemInput
		}
		if !changed {
			return false, nil
		}
		if err := appendStatusChange(ctx, uc.History, entities.StatusChange{
			ChangeID:     changeID,
			CampaignID:   strings.TrimSpace(cmd.CampaignID),
			ItemID:       after.ItemID,
			Action:       cmd.Action,
			FromStatus:   before.Status,
			ToStatus:     after.Status,
			FromProgress: before.Progress,
			ToProgress:   after.Progress,
			ChangedBy:    actorOrAnonymous(cmd.ActorID),
			CreatedAt:    now,
		}); err != nil {
			return false, err
		}
		campaign.ContentItems[idx] = after
		campaign.UpdatedAt = now
		return true, nil
	})
	if err != nil {
		return TransitionContentItemResult{}, err
	}
	if !changed {
		logger.Debug("content item transition skipped",
			"event", "content_item_transition_skipped",
			"module", "campaign-editorial/content-progress-service",
			"layer", "application",
			"campaign_id", strings.TrimSpace(cmd.CampaignID),
			"item_id", before.ItemID,
			"action", string(cmd.Action),
			"status", string(before.Status),
		)
		return TransitionContentItemResult{Item: before, Changed: false}, nil
	}

	logger.Info("content item status changed",
		"event", "content_item_status_changed",
		"module", "campaign-editorial/content-progress-service",
		"layer", "application",
		"campaign_id", strings.TrimSpace(cmd.CampaignID),
		"item_id", after.ItemID,
		"action", string(cmd.Action),
		"from_status", string(before.Status),
		"to_status", string(after.Status),
		"progress", after.Progress,
	)
	return TransitionContentItemResult{Item: after, Changed: true}, nil
}
