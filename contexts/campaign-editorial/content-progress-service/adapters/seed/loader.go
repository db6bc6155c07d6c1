package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"campaignhub/contexts/campaign-editorial/content-progress-service/domain/entities"
	"campaignhub/contexts/campaign-editorial/content-progress-service/ports"

	"gopkg.in/yaml.v3"
)

// BuiltinSource selects the embedded demo campaigns instead of a file.
const BuiltinSource = "builtin"

//go:embed default_campaigns.yaml
var defaultCampaigns []byte

type document struct {
	Campaigns []campaignDocument `yaml:"campaigns"`
}

type campaignDocument struct {
	Name           string            `yaml:"name"`
	Objective      string            `yaml:"objective"`
	TargetAudience string            `yaml:"target_audience"`
	Budget         float64           `yaml:"budget"`
	Channels       []string          `yaml:"channels"`
	StartDate      string            `yaml:"start_date"`
	EndDate        string            `yaml:"end_date"`
	Status         string            `yaml:"status"`
	ContentItems   []contentDocument `yaml:"content_items"`
}

type contentDocument struct {
	Title      string `yaml:"title"`
	Type       string `yaml:"type"`
	Platform   string `yaml:"platform"`
	Status     string `yaml:"status"`
	AssignedTo string `yaml:"assigned_to"`
	DueDate    string `yaml:"due_date"`
	Progress   *int   `yaml:"progress"`
	Notes      string `yaml:"notes"`
}

// Seeder fills an empty repository with demo campaigns.
type Seeder struct {
	Campaigns   ports.CampaignRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	// Latency simulates the network delay of the dashboard's mock loaders.
	Latency time.Duration
	Logger  *slog.Logger
}

// Run seeds from source ("builtin" or a YAML path) when the repository holds
// no campaigns. It returns the number of campaigns created.
func (s Seeder) Run(ctx context.Context, source string) (int, error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	source = strings.TrimSpace(source)
	if source == "" {
		return 0, nil
	}

	existing, err := s.Campaigns.ListCampaigns(ctx, ports.CampaignFilter{})
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		logger.Info("seed skipped, store not empty",
			"event", "seed_skipped",
			"module", "campaign-editorial/content-progress-service",
			"layer", "adapter",
			"count", len(existing),
		)
		return 0, nil
	}

	payload, err := readSource(source)
	if err != nil {
		return 0, err
	}
	if err := wait(ctx, s.Latency); err != nil {
		return 0, err
	}
	campaigns, err := s.Parse(ctx, payload)
	if err != nil {
		return 0, err
	}
	for _, campaign := range campaigns {
		if err := s.Campaigns.CreateCampaign(ctx, campaign); err != nil {
			return 0, fmt.Errorf("seed campaign %q: %w", campaign.Name, err)
		}
	}

	logger.Info("seed campaigns created",
		"event", "seed_completed",
		"module", "campaign-editorial/content-progress-service",
		"layer", "adapter",
		"source", source,
		"count", len(campaigns),
	)
	return len(campaigns), nil
}

// Parse converts a YAML seed document into validated campaigns with fresh ids.
func (s Seeder) Parse(ctx context.Context, payload []byte) ([]entities.Campaign, error) {
	var doc document
	if err := yaml.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("parse seed document: %w", err)
	}

	now := s.Clock.Now().UTC()
	campaigns := make([]entities.Campaign, 0, len(doc.Campaigns))
	for _, raw := range doc.Campaigns {
		campaignID, err := s.IDGenerator.NewID(ctx)
		if err != nil {
			return nil, err
		}
		channels := make([]entities.Platform, 0, len(raw.Channels))
		for _, channel := range raw.Channels {
			channels = append(channels, entities.NormalizePlatform(channel))
		}
		status := entities.CampaignStatus(strings.ToLower(strings.TrimSpace(raw.Status)))
		if status == "" {
			status = entities.CampaignStatusPlanning
		}
		campaign := entities.Campaign{
			CampaignID:     campaignID,
			Name:           strings.TrimSpace(raw.Name),
			Objective:      strings.TrimSpace(raw.Objective),
			TargetAudience: strings.TrimSpace(raw.TargetAudience),
			Budget:         raw.Budget,
			Channels:       channels,
			StartDate:      strings.TrimSpace(raw.StartDate),
			EndDate:        strings.TrimSpace(raw.EndDate),
			Status:         status,
			ContentItems:   make([]entities.ContentItem, 0, len(raw.ContentItems)),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if !campaign.ValidateBasics() {
			return nil, fmt.Errorf("seed campaign %q is invalid", raw.Name)
		}

		for _, rawItem := range raw.ContentItems {
			itemID, err := s.IDGenerator.NewID(ctx)
			if err != nil {
				return nil, err
			}
			item := entities.NewContentItem(
				itemID,
				rawItem.Title,
				entities.NormalizeContentType(rawItem.Type),
				entities.NormalizePlatform(rawItem.Platform),
				entities.NormalizeContentStatus(rawItem.Status),
				rawItem.AssignedTo,
				rawItem.DueDate,
				rawItem.Notes,
				now,
			)
			if rawItem.Progress != nil {
				item = item.WithProgress(*rawItem.Progress, now)
			}
			if !item.ValidateBasics() {
				return nil, fmt.Errorf("seed item %q in campaign %q is invalid", rawItem.Title, raw.Name)
			}
			campaign.ContentItems = append(campaign.ContentItems, item)
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, nil
}

func readSource(source string) ([]byte, error) {
	if source == BuiltinSource {
		return defaultCampaigns, nil
	}
	payload, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return payload, nil
}

func wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
