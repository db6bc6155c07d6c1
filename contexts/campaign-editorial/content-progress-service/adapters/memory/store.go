package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"campaignhub/contexts/campaign-editorial/content-progress-service/domain/entities"
	"campaignhub/contexts/campaign-editorial/content-progress-service/ports"

	"github.com/google/uuid"
)

// Store is the process-local backend: key-value values, status history,
// clock and id generation. Nothing survives a restart.
type Store struct {
	mu sync.RWMutex

	values   map[string][]byte
	history  []entities.StatusChange
	writes   int
	nowFunc  func() time.Time
	nextUUID func() (uuid.UUID, error)
}

func NewStore() *Store {
	return &Store{
		values:   make(map[string][]byte),
		history:  make([]entities.StatusChange, 0),
		nowFunc:  time.Now,
		nextUUID: uuid.NewV7,
	}
}

// NewStoreWithClock pins the clock, used by tests that assert timestamps.
func NewStoreWithClock(now func() time.Time) *Store {
	store := NewStore()
	store.nowFunc = now
	return store
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, exists := s.values[strings.TrimSpace(key)]
	if !exists {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[strings.TrimSpace(key)] = append([]byte(nil), value...)
	s.writes++
	return nil
}

// Writes reports how many Set calls the store has served.
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

func (s *Store) AppendStatusChange(_ context.Context, item entities.StatusChange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, item)
	return nil
}

func (s *Store) ListStatusChanges(_ context.Context, campaignID string) ([]entities.StatusChange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.StatusChange, 0)
	for _, item := range s.history {
		if item.CampaignID == strings.TrimSpace(campaignID) {
			items = append(items, item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) DeleteStatusChanges(_ context.Context, campaignID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.history[:0]
	for _, item := range s.history {
		if item.CampaignID != strings.TrimSpace(campaignID) {
			kept = append(kept, item)
		}
	}
	s.history = kept
	return nil
}

func (s *Store) Now() time.Time {
	return s.nowFunc().UTC()
}

// NewID returns a UUIDv7 so ids sort by creation time.
func (s *Store) NewID(_ context.Context) (string, error) {
	id, err := s.nextUUID()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

var (
	_ ports.KeyValueStore     = (*Store)(nil)
	_ ports.HistoryRepository = (*Store)(nil)
	_ ports.Clock             = (*Store)(nil)
	_ ports.IDGenerator       = (*Store)(nil)
)
