package ports

import (
	"context"
	"time"

	"campaignhub/contexts/campaign-editorial/content-progress-service/domain/entities"
)

// CampaignsKey is the single key under which the campaign array is stored.
const CampaignsKey = "campaigns"

// KeyValueStore is the raw persistence collaborator: one opaque value per key.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// CampaignSnapshot loads and saves the whole campaign array at once.
type CampaignSnapshot interface {
	Load(ctx context.Context) ([]entities.Campaign, error)
	Save(ctx context.Context, campaigns []entities.Campaign) error
}

type CampaignFilter struct {
	Status entities.CampaignStatus
}

// CampaignRepository is the store object owned by the application root.
// MutateCampaign runs fn against the current campaign and persists the result
// before any other mutation can observe it.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign entities.Campaign) error
	GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error)
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]entities.Campaign, error)
	MutateCampaign(
		ctx context.Context,
		campaignID string,
		fn func(*entities.Campaign) (bool, error),
	) (entities.Campaign, error)
	DeleteCampaign(ctx context.Context, campaignID string) error
}

type HistoryRepository interface {
	AppendStatusChange(ctx context.Context, item entities.StatusChange) error
	ListStatusChanges(ctx context.Context, campaignID string) ([]entities.StatusChange, error)
	DeleteStatusChanges(ctx context.Context, campaignID string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
