package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"campaignhub/contexts/campaign-editorial/content-progress-service/domain/entities"
	domainerrors "campaignhub/contexts/campaign-editorial/content-progress-service/domain/errors"
	"campaignhub/contexts/campaign-editorial/content-progress-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository stores the campaign snapshot and the status history in Postgres.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates the tables the repository reads and writes.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&keyValueModel{}, &statusChangeModel{})
}

func (r *Repository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var row keyValueModel
	err := r.db.WithContext(ctx).
		Where("key = ?", strings.TrimSpace(key)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return append([]byte(nil), row.Value...), true, nil
}

func (r *Repository) Set(ctx context.Context, key string, value []byte) error {
	row := keyValueModel{
		Key:       strings.TrimSpace(key),
		Value:     append([]byte(nil), value...),
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).
		Error
}

func (r *Repository) AppendStatusChange(ctx context.Context, item entities.StatusChange) error {
	row := statusChangeModel{
		ChangeID:     strings.TrimSpace(item.ChangeID),
		CampaignID:   strings.TrimSpace(item.CampaignID),
		ItemID:       strings.TrimSpace(item.ItemID),
		Action:       string(item.Action),
		FromStatus:   string(item.FromStatus),
		ToStatus:     string(item.ToStatus),
		FromProgress: item.FromProgress,
		ToProgress:   item.ToProgress,
		ChangedBy:    strings.TrimSpace(item.ChangedBy),
		CreatedAt:    item.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrStatusChangeExists
		}
		return err
	}
	return nil
}

func (r *Repository) ListStatusChanges(ctx context.Context, campaignID string) ([]entities.StatusChange, error) {
	var rows []statusChangeModel
	if err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.StatusChange, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) DeleteStatusChanges(ctx context.Context, campaignID string) error {
	return r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Delete(&statusChangeModel{}).
		Error
}

type keyValueModel struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     []byte    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (keyValueModel) TableName() string {
	return "campaign_key_values"
}

type statusChangeModel struct {
	ChangeID     string    `gorm:"column:change_id;primaryKey"`
	CampaignID   string    `gorm:"column:campaign_id;index"`
	ItemID       string    `gorm:"column:item_id"`
	Action       string    `gorm:"column:action"`
	FromStatus   string    `gorm:"column:from_status"`
	ToStatus     string    `gorm:"column:to_status"`
	FromProgress int       `gorm:"column:from_progress"`
	ToProgress   int       `gorm:"column:to_progress"`
	ChangedBy    string    `gorm:"column:changed_by"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (statusChangeModel) TableName() string {
	return "content_status_history"
}

func (m statusChangeModel) toEntity() entities.StatusChange {
	return entities.StatusChange{
		ChangeID:     m.ChangeID,
		CampaignID:   m.CampaignID,
		ItemID:       m.ItemID,
		Action:       entities.StatusAction(m.Action),
		FromStatus:   entities.ContentStatus(m.FromStatus),
		ToStatus:     entities.ContentStatus(m.ToStatus),
		FromProgress: m.FromProgress,
		ToProgress:   m.ToProgress,
		ChangedBy:    m.ChangedBy,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var (
	_ ports.KeyValueStore     = (*Repository)(nil)
	_ ports.HistoryRepository = (*Repository)(nil)
)
