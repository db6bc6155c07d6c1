package snapshot

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"campaignhub/contexts/campaign-editorial/content-progress-service/domain/entities"
	domainerrors "campaignhub/contexts/campaign-editorial/content-progress-service/domain/errors"
	"campaignhub/contexts/campaign-editorial/content-progress-service/ports"
)

// Repository keeps the ordered campaign list in memory and mirrors the full
// array to the snapshot after every mutation. Mutations are serialised; the
// in-memory list only changes once the snapshot write succeeded.
type Repository struct {
	mu sync.RWMutex

	snapshot  ports.CampaignSnapshot
	campaigns []entities.Campaign
	logger    *slog.Logger
}

func Open(ctx context.Context, snapshot ports.CampaignSnapshot, logger *slog.Logger) (*Repository, error) {
	if logger == nil {
		logger = slog.Default()
	}
	campaigns, err := snapshot.Load(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("campaigns snapshot loaded",
		"event", "campaigns_snapshot_loaded",
		"module", "campaign-editorial/content-progress-service",
		"layer", "adapter",
		"count", len(campaigns),
	)
	return &Repository{
		snapshot:  snapshot,
		campaigns: campaigns,
		logger:    logger,
	}, nil
}

func (r *Repository) CreateCampaign(ctx context.Context, campaign entities.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.indexOf(campaign.CampaignID); exists {
		return domainerrors.ErrCampaignAlreadyExists
	}
	next := r.cloneAll()
	next = append(next, campaign.Clone())
	return r.commit(ctx, next)
}

func (r *Repository) GetCampaign(_ context.Context, campaignID string) (entities.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, exists := r.indexOf(campaignID)
	if !exists {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	return r.campaigns[idx].Clone(), nil
}

func (r *Repository) ListCampaigns(_ context.Context, filter ports.CampaignFilter) ([]entities.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]entities.Campaign, 0, len(r.campaigns))
	for _, campaign := range r.campaigns {
		if filter.Status != "" && campaign.Status != filter.Status {
			continue
		}
		items = append(items, campaign.Clone())
	}
	return items, nil
}

func (r *Repository) MutateCampaign(
	ctx context.Context,
	campaignID string,
	fn func(*entities.Campaign) (bool, error),
) (entities.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, exists := r.indexOf(campaignID)
	if !exists {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	working := r.campaigns[idx].Clone()
	changed, err := fn(&working)
	if err != nil {
		return entities.Campaign{}, err
	}
	if !changed {
		return r.campaigns[idx].Clone(), nil
	}

	next := r.cloneAll()
	next[idx] = working
	if err := r.commit(ctx, next); err != nil {
		return entities.Campaign{}, err
	}
	return working.Clone(), nil
}

func (r *Repository) DeleteCampaign(ctx context.Context, campaignID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, exists := r.indexOf(campaignID)
	if !exists {
		return domainerrors.ErrCampaignNotFound
	}
	next := make([]entities.Campaign, 0, len(r.campaigns)-1)
	next = append(next, r.campaigns[:idx]...)
	next = append(next, r.campaigns[idx+1:]...)
	return r.commit(ctx, next)
}

func (r *Repository) commit(ctx context.Context, next []entities.Campaign) error {
	if err := r.snapshot.Save(ctx, next); err != nil {
		r.logger.Error("campaigns snapshot save failed",
			"event", "campaigns_snapshot_save_failed",
			"module", "campaign-editorial/content-progress-service",
			"layer", "adapter",
			"error", err.Error(),
		)
		return err
	}
	r.campaigns = next
	return nil
}

func (r *Repository) indexOf(campaignID string) (int, bool) {
	campaignID = strings.TrimSpace(campaignID)
	for idx, campaign := range r.campaigns {
		if campaign.CampaignID == campaignID {
			return idx, true
		}
	}
	return -1, false
}

func (r *Repository) cloneAll() []entities.Campaign {
	items := make([]entities.Campaign, 0, len(r.campaigns)+1)
	for _, campaign := range r.campaigns {
		items = append(items, campaign.Clone())
	}
	return items
}

var _ ports.CampaignRepository = (*Repository)(nil)
