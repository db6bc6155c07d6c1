package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"campaignhub/contexts/campaign-editorial/content-progress-service/domain/entities"
	"campaignhub/contexts/campaign-editorial/content-progress-service/ports"

	_ "modernc.org/sqlite"
)

// timeFormat is fixed width so stored timestamps sort lexically.
const timeFormat = "2006-01-02T15:04:05.000000000Z"

const memoryPath = ":memory:"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS key_values (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS content_status_history (
		change_id TEXT PRIMARY KEY,
		campaign_id TEXT NOT NULL,
		item_id TEXT NOT NULL,
		action TEXT NOT NULL,
		from_status TEXT NOT NULL,
		to_status TEXT NOT NULL,
		from_progress INTEGER NOT NULL,
		to_progress INTEGER NOT NULL,
		changed_by TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_content_status_history_campaign
		ON content_status_history (campaign_id, created_at)`,
}

// Store is a file-backed key-value and history store. It is the durable
// stand-in for browser local storage.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (and initialises) a SQLite store at path. ":memory:" opens a
// private in-memory database.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := memoryPath
	if path != memoryPath {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serialises writers.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	for _, statement := range schema {
		if _, err := sqlDB.Exec(statement); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("apply sqlite schema: %w", err)
		}
	}
	return &Store{sqlDB: sqlDB}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT value FROM key_values WHERE key = ?`,
		strings.TrimSpace(key),
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get key value: %w", err)
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO key_values (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		strings.TrimSpace(key),
		value,
		time.Now().UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("set key value: %w", err)
	}
	return nil
}

func (s *Store) AppendStatusChange(ctx context.Context, item entities.StatusChange) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO content_status_history (
			change_id, campaign_id, item_id, action, from_status, to_status,
			from_progress, to_progress, changed_by, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		strings.TrimSpace(item.ChangeID),
		strings.TrimSpace(item.CampaignID),
		strings.TrimSpace(item.ItemID),
		string(item.Action),
		string(item.FromStatus),
		string(item.ToStatus),
		item.FromProgress,
		item.ToProgress,
		strings.TrimSpace(item.ChangedBy),
		item.CreatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("append status change: %w", err)
	}
	return nil
}

func (s *Store) DeleteStatusChanges(ctx context.Context, campaignID string) error {
	if _, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM content_status_history WHERE campaign_id = ?`,
		strings.TrimSpace(campaignID),
	); err != nil {
		return fmt.Errorf("delete status changes: %w", err)
	}
	return nil
}

func (s *Store) ListStatusChanges(ctx context.Context, campaignID string) ([]entities.StatusChange, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT change_id, campaign_id, item_id, action, from_status, to_status,
			from_progress, to_progress, changed_by, created_at
		FROM content_status_history
		WHERE campaign_id = ?
		ORDER BY created_at ASC, change_id ASC`,
		strings.TrimSpace(campaignID),
	)
	if err != nil {
		return nil, fmt.Errorf("list status changes: %w", err)
	}
	defer rows.Close()

	items := make([]entities.StatusChange, 0)
	for rows.Next() {
		var (
			item       entities.StatusChange
			action     string
			fromStatus string
			toStatus   string
			createdAt  string
		)
		if err := rows.Scan(
			&item.ChangeID,
			&item.CampaignID,
			&item.ItemID,
			&action,
			&fromStatus,
			&toStatus,
			&item.FromProgress,
			&item.ToProgress,
			&item.ChangedBy,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan status change: %w", err)
		}
		item.Action = entities.StatusAction(action)
		item.FromStatus = entities.ContentStatus(fromStatus)
		item.ToStatus = entities.ContentStatus(toStatus)
		parsed, err := time.Parse(timeFormat, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse status change time: %w", err)
		}
		item.CreatedAt = parsed.UTC()
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status changes: %w", err)
	}
	return items, nil
}

var (
	_ ports.KeyValueStore     = (*Store)(nil)
	_ ports.HistoryRepository = (*Store)(nil)
)
