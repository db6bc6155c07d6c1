package commands

import (
	"context"
	"log/slog"

	application "campaignhub/contexts/campaign-editorial/content-progress-service/application"
	"campaignhub/contexts/campaign-editorial/content-progress-service/domain/entities"
	domainerrors "campaignhub/contexts/campaign-editorial/content-progress-service/domain/errors"
	"campaignhub/contexts/campaign-editorial/content-progress-service/ports"
)

type ChangeStatusAction string

const (
	StatusActionLaunch   ChangeStatusAction = "launch"
	StatusActionPause    ChangeStatusAction = "pause"
	StatusActionResume   ChangeStatusAction = "resume"
	StatusActionComplete ChangeStatusAction = "complete"
)

type ChangeStatusCommand struct {
	CampaignID string
	ActorID    string
	Action     ChangeStatusAction
}

type ChangeStatusUseCase struct {
	Campaigns ports.CampaignRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()

	var from entities.CampaignStatus
	updated, err := uc.Campaigns.MutateCampaign(ctx, cmd.CampaignID, func(campaign *entities.Campaign) (bool, error) {
		from = campaign.Status
		to, err := nextCampaignStatus(campaign.Status, cmd.Action)
		if err != nil {
			return false, err
		}
		campaign.Status = to
		campaign.UpdatedAt = now
		return true, nil
	})
	if err != nil {
		return entities.Campaign{}, err
	}

	logger.Info("campaign state changed",
		"event", "campaign_state_changed",
		"module", "campaign-editorial/content-progress-service",
		"layer", "application",
		"campaign_id", updated.CampaignID,
		"actor_id", actorOrAnonymous(cmd.ActorID),
		"from_status", string(from),
		"to_status", string(updated.Status),
	)
	return updated, nil
}

func nextCampaignStatus(current entities.CampaignStatus, action ChangeStatusAction) (entities.CampaignStatus, error) {
	switch action {
	case StatusActionLaunch:
		if current != entities.CampaignStatusPlanning {
			return "", domainerrors.ErrInvalidStateTransition
		}
		return entities.CampaignStatusActive, nil
	case StatusActionPause:
		if current != entities.CampaignStatusActive {
			return "", domainerrors.ErrInvalidStateTransition
		}
		return entities.CampaignStatusPaused, nil
	case StatusActionResume:
		if current != entities.CampaignStatusPaused {
			return "", domainerrors.ErrInvalidStateTransition
		}
		return entities.CampaignStatusActive, nil
	case StatusActionComplete:
		if current != entities.CampaignStatusActive && current != entities.CampaignStatusPaused {
			return "", domainerrors.ErrInvalidStateTransition
		}
		return entities.CampaignStatusCompleted, nil
	default:
		return "", domainerrors.ErrInvalidStateTransition
	}
}
