package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"campaignhub/contexts/campaign-editorial/content-progress-service/domain/entities"
)

// The persisted layout keeps the camelCase field names of the dashboard's
// local storage blob so existing exports load unchanged.

type campaignRecord struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Objective      string              `json:"objective,omitempty"`
	TargetAudience string              `json:"targetAudience,omitempty"`
	Budget         float64             `json:"budget,omitempty"`
	Channels       []string            `json:"channels,omitempty"`
	StartDate      string              `json:"startDate"`
	EndDate        string              `json:"endDate"`
	Status         string              `json:"status"`
	ContentItems   []contentItemRecord `json:"contentItems"`
	CreatedAt      *time.Time          `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time          `json:"updatedAt,omitempty"`
}

type contentItemRecord struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Type       string     `json:"type"`
	Platform   string     `json:"platform"`
	Status     string     `json:"status"`
	AssignedTo string     `json:"assignedTo"`
	DueDate    string     `json:"dueDate"`
	Progress   int        `json:"progress"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

func Encode(campaigns []entities.Campaign) ([]byte, error) {
	records := make([]campaignRecord, 0, len(campaigns))
	for _, campaign := range campaigns {
		records = append(records, campaignRecordFromEntity(campaign))
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode campaigns snapshot: %w", err)
	}
	return payload, nil
}

// Decode parses a persisted snapshot. Items whose stored progress is below
// their status floor are lifted to the floor.
func Decode(payload []byte) ([]entities.Campaign, error) {
	var records []campaignRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("decode campaigns snapshot: %w", err)
	}
	campaigns := make([]entities.Campaign, 0, len(records))
	for _, record := range records {
		campaigns = append(campaigns, record.toEntity())
	}
	return campaigns, nil
}

func campaignRecordFromEntity(item entities.Campaign) campaignRecord {
	channels := make([]string, 0, len(item.Channels))
	for _, channel := range item.Channels {
		channels = append(channels, string(channel))
	}
	contentItems := make([]contentItemRecord, 0, len(item.ContentItems))
	for _, contentItem := range item.ContentItems {
		contentItems = append(contentItems, contentItemRecord{
			ID:         contentItem.ItemID,
			Title:      contentItem.Title,
			Type:       string(contentItem.Type),
			Platform:   string(contentItem.Platform),
			Status:     string(contentItem.Status),
			AssignedTo: contentItem.AssignedTo,
			DueDate:    contentItem.DueDate,
			Progress:   contentItem.Progress,
			Notes:      contentItem.Notes,
			CreatedAt:  optionalTime(contentItem.CreatedAt),
			UpdatedAt:  optionalTime(contentItem.UpdatedAt),
		})
	}
	return campaignRecord{
		ID:             item.CampaignID,
		Name:           item.Name,
		Objective:      item.Objective,
		TargetAudience: item.TargetAudience,
		Budget:         item.Budget,
		Channels:       channels,
		StartDate:      item.StartDate,
		EndDate:        item.EndDate,
		Status:         string(item.Status),
		ContentItems:   contentItems,
		CreatedAt:      optionalTime(item.CreatedAt),
		UpdatedAt:      optionalTime(item.UpdatedAt),
	}
}

func (r campaignRecord) toEntity() entities.Campaign {
	channels := make([]entities.Platform, 0, len(r.Channels))
	for _, channel := range r.Channels {
		channels = append(channels, entities.NormalizePlatform(channel))
	}
	items := make([]entities.ContentItem, 0, len(r.ContentItems))
	for _, record := range r.ContentItems {
		item := entities.ContentItem{
			ItemID:     record.ID,
			Title:      record.Title,
			Type:       entities.NormalizeContentType(record.Type),
			Platform:   entities.NormalizePlatform(record.Platform),
			Status:     entities.NormalizeContentStatus(record.Status),
			AssignedTo: record.AssignedTo,
			DueDate:    record.DueDate,
			Progress:   record.Progress,
			Notes:      record.Notes,
			CreatedAt:  derefTime(record.CreatedAt),
			UpdatedAt:  derefTime(record.UpdatedAt),
		}
		if !entities.IsSupportedContentStatus(item.Status) {
			item.Status = entities.ContentStatusNotStarted
		}
		item.Progress = min(max(item.Progress, item.Status.ProgressFloor()), 100)
		items = append(items, item)
	}
	status := entities.CampaignStatus(r.Status)
	if !entities.IsSupportedCampaignStatus(status) {
		status = entities.CampaignStatusPlanning
	}
	return entities.Campaign{
		CampaignID:     r.ID,
		Name:           r.Name,
		Objective:      r.Objective,
		TargetAudience: r.TargetAudience,
		Budget:         r.Budget,
		Channels:       channels,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Status:         status,
		ContentItems:   items,
		CreatedAt:      derefTime(r.CreatedAt),
		UpdatedAt:      derefTime(r.UpdatedAt),
	}
}

func optionalTime(value time.Time) *time.Time {
	if value.IsZero() {
		return nil
	}
	utc := value.UTC()
	return &utc
}

func derefTime(value *time.Time) time.Time {
	if value == nil {
		return time.Time{}
	}
	return value.UTC()
}
