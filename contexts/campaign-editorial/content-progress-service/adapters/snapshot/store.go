package snapshot

import (
	"context"
	"fmt"
	"log/slog"

	"campaignhub/contexts/campaign-editorial/content-progress-service/domain/entities"
	"campaignhub/contexts/campaign-editorial/content-progress-service/ports"
)

// Store reads and writes the campaign array as one JSON value in a KeyValueStore.
type Store struct {
	kv     ports.KeyValueStore
	key    string
	logger *slog.Logger
}

func NewStore(kv ports.KeyValueStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		kv:     kv,
		key:    ports.CampaignsKey,
		logger: logger,
	}
}

// Load never fails on a corrupt payload: it is logged and treated as an
// empty collection. Only backend errors are returned.
func (s *Store) Load(ctx context.Context) ([]entities.Campaign, error) {
	payload, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("load campaigns snapshot: %w", err)
	}
	if !found || len(payload) == 0 {
		return []entities.Campaign{}, nil
	}

	campaigns, err := Decode(payload)
	if err != nil {
		s.logger.Warn("campaigns snapshot is malformed, starting empty",
			"event", "campaigns_snapshot_malformed",
			"module", "campaign-editorial/content-progress-service",
			"layer", "adapter",
			"key", s.key,
			"error", err.Error(),
		)
		return []entities.Campaign{}, nil
	}
	return campaigns, nil
}

func (s *Store) Save(ctx context.Context, campaigns []entities.Campaign) error {
	payload, err := Encode(campaigns)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, payload); err != nil {
		return fmt.Errorf("save campaigns snapshot: %w", err)
	}
	return nil
}

var _ ports.CampaignSnapshot = (*Store)(nil)
