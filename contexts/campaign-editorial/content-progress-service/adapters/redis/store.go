package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"campaignhub/contexts/campaign-editorial/content-progress-service/domain/entities"
	"campaignhub/contexts/campaign-editorial/content-progress-service/ports"

	"github.com/redis/go-redis/v9"
)

const (
	defaultNamespace = "campaignhub"
	historyKeyPrefix = "history"
)

// Client is the subset of redis.Cmdable the store uses.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Store keeps the campaign snapshot as a plain string value and the status
// history as one list per campaign.
type Store struct {
	client    Client
	namespace string
}

func NewClient(addr string, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewStore(client Client, namespace string) *Store {
	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &Store{client: client, namespace: namespace}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, s.valueKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.valueKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *Store) AppendStatusChange(ctx context.Context, item entities.StatusChange) error {
	payload, err := json.Marshal(statusChangeRecordFromEntity(item))
	if err != nil {
		return err
	}
	if err := s.client.RPush(ctx, s.historyKey(item.CampaignID), payload).Err(); err != nil {
		return fmt.Errorf("redis rpush: %w", err)
	}
	return nil
}

func (s *Store) ListStatusChanges(ctx context.Context, campaignID string) ([]entities.StatusChange, error) {
	values, err := s.client.LRange(ctx, s.historyKey(campaignID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange: %w", err)
	}
	items := make([]entities.StatusChange, 0, len(values))
	for _, value := range values {
		var record statusChangeRecord
		if err := json.Unmarshal([]byte(value), &record); err != nil {
			return nil, fmt.Errorf("decode status change: %w", err)
		}
		items = append(items, record.toEntity())
	}
	return items, nil
}

func (s *Store) DeleteStatusChanges(ctx context.Context, campaignID string) error {
	if err := s.client.Del(ctx, s.historyKey(campaignID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (s *Store) valueKey(key string) string {
	return s.namespace + ":" + strings.TrimSpace(key)
}

func (s *Store) historyKey(campaignID string) string {
	return s.namespace + ":" + historyKeyPrefix + ":" + strings.TrimSpace(campaignID)
}

type statusChangeRecord struct {
	ChangeID     string    `json:"change_id"`
	CampaignID   string    `json:"campaign_id"`
	ItemID       string    `json:"item_id"`
	Action       string    `json:"action"`
	FromStatus   string    `json:"from_status"`
	ToStatus     string    `json:"to_status"`
	FromProgress int       `json:"from_progress"`
	ToProgress   int       `json:"to_progress"`
	ChangedBy    string    `json:"changed_by"`
	CreatedAt    time.Time `json:"created_at"`
}

func statusChangeRecordFromEntity(item entities.StatusChange) statusChangeRecord {
	return statusChangeRecord{
		ChangeID:     item.ChangeID,
		CampaignID:   item.CampaignID,
		ItemID:       item.ItemID,
		Action:       string(item.Action),
		FromStatus:   string(item.FromStatus),
		ToStatus:     string(item.ToStatus),
		FromProgress: item.FromProgress,
		ToProgress:   item.ToProgress,
		ChangedBy:    item.ChangedBy,
		CreatedAt:    item.CreatedAt.UTC(),
	}
}

func (r statusChangeRecord) toEntity() entities.StatusChange {
	return entities.StatusChange{
		ChangeID:     r.ChangeID,
		CampaignID:   r.CampaignID,
		ItemID:       r.ItemID,
		Action:       entities.StatusAction(r.Action),
		FromStatus:   entities.ContentStatus(r.FromStatus),
		ToStatus:     entities.ContentStatus(r.ToStatus),
		FromProgress: r.FromProgress,
		ToProgress:   r.ToProgress,
		ChangedBy:    r.ChangedBy,
		CreatedAt:    r.CreatedAt.UTC(),
	}
}

var (
	_ ports.KeyValueStore     = (*Store)(nil)
	_ ports.HistoryRepository = (*Store)(nil)
	_ Client                  = (*redis.Client)(nil)
)
