package commands

import (
	"context"
	"strings"

	"campaignhub/contexts/campaign-editorial/content-progress-service/domain/entities"
	"campaignhub/contexts/campaign-editorial/content-progress-service/ports"
)

const anonymousActor = "anonymous"

func newStatusChangeID(ctx context.Context, history ports.HistoryRepository, idGen ports.IDGenerator) (string, error) {
	if history == nil {
		return "", nil
	}
	return idGen.NewID(ctx)
}

// appendStatusChange runs inside MutateCampaign so a failed history write
// aborts the campaign save.
func appendStatusChange(ctx context.Context, history ports.HistoryRepository, change entities.StatusChange) error {
	if history == nil {
		return nil
	}
	return history.AppendStatusChange(ctx, change)
}

func actorOrAnonymous(actorID string) string {
	if value := strings.TrimSpace(actorID); value != "" {
		return value
	}
	return anonymousActor
}
