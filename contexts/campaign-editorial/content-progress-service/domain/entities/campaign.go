package entities

import (
	"strings"
	"time"
)

type CampaignStatus string

const (
	CampaignStatusPlanning  CampaignStatus = "planning"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

type Campaign struct {
	CampaignID     string
	Name           string
	Objective      string
	TargetAudience string
	Budget         float64
	Channels       []Platform
	StartDate      string
	EndDate        string
	Status         CampaignStatus
	ContentItems   []ContentItem
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Progress is the arithmetic mean of item progress, 0 for an empty campaign.
func (c Campaign) Progress() float64 {
	if len(c.ContentItems) == 0 {
		return 0
	}
	total := 0
	for _, item := range c.ContentItems {
		total += item.Progress
	}
	return float64(total) / float64(len(c.ContentItems))
}

// StatusBreakdown counts items per content status. Every status is present.
func (c Campaign) StatusBreakdown() map[ContentStatus]int {
	counts := make(map[ContentStatus]int, len(ContentStatuses))
	for _, status := range ContentStatuses {
		counts[status] = 0
	}
	for _, item := range c.ContentItems {
		counts[item.Status]++
	}
	return counts
}

func (c Campaign) ItemIndex(itemID string) (int, bool) {
	itemID = strings.TrimSpace(itemID)
	for idx, item := range c.ContentItems {
		if item.ItemID == itemID {
			return idx, true
		}
	}
	return -1, false
}

// Clone deep-copies the slices so callers cannot alias stored state.
func (c Campaign) Clone() Campaign {
	c.Channels = append([]Platform(nil), c.Channels...)
	c.ContentItems = append([]ContentItem(nil), c.ContentItems...)
	return c
}

func (c Campaign) ValidateBasics() bool {
	name := strings.TrimSpace(c.Name)
	if name == "" || len(name) > 120 {
		return false
	}
	if c.Budget < 0 || !IsSupportedCampaignStatus(c.Status) {
		return false
	}
	for _, channel := range c.Channels {
		if !IsSupportedPlatform(channel) {
			return false
		}
	}
	return ValidDate(c.StartDate) && ValidDate(c.EndDate) && DatesOrdered(c.StartDate, c.EndDate)
}

func IsSupportedCampaignStatus(value CampaignStatus) bool {
	switch value {
	case CampaignStatusPlanning, CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted:
		return true
	default:
		return false
	}
}

// DatesOrdered reports whether end is not before start. Missing dates pass.
func DatesOrdered(start string, end string) bool {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if start == "" || end == "" {
		return true
	}
	startAt, err := time.Parse(DueDateLayout, start)
	if err != nil {
		return false
	}
	endAt, err := time.Parse(DueDateLayout, end)
	if err != nil {
		return false
	}
	return !endAt.Before(startAt)
}
