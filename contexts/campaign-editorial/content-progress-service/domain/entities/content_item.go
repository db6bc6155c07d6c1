package entities

import (
	"strings"
	"time"
)

type ContentStatus string
type ContentType string
type Platform string

const (
	ContentStatusNotStarted ContentStatus = "not_started"
	ContentStatusInProgress ContentStatus = "in_progress"
	ContentStatusReview     ContentStatus = "review"
	ContentStatusApproved   ContentStatus = "approved"
	ContentStatusPublished  ContentStatus = "published"

	ContentTypeImage  ContentType = "image"
	ContentTypeVideo  ContentType = "video"
	ContentTypeText   ContentType = "text"
	ContentTypeBanner ContentType = "banner"
	ContentTypeStory  ContentType = "story"

	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
	PlatformWebsite   Platform = "website"
)

// DueDateLayout is the calendar date format used for content due dates.
const DueDateLayout = "2006-01-02"

// ContentStatuses lists the pipeline in order.
var ContentStatuses = []ContentStatus{
	ContentStatusNotStarted,
	ContentStatusInProgress,
	ContentStatusReview,
	ContentStatusApproved,
	ContentStatusPublished,
}

// Next returns the single status an item may advance to.
// Published is terminal and reports false.
func (s ContentStatus) Next() (ContentStatus, bool) {
	switch s {
	case ContentStatusNotStarted:
		return ContentStatusInProgress, true
	case ContentStatusInProgress:
		return ContentStatusReview, true
	case ContentStatusReview:
		return ContentStatusApproved, true
	case ContentStatusApproved:
		return ContentStatusPublished, true
	default:
		return "", false
	}
}

// ProgressFloor is the minimum progress percentage an item in this status may report.
func (s ContentStatus) ProgressFloor() int {
	switch s {
	case ContentStatusInProgress:
		return 25
	case ContentStatusReview:
		return 75
	case ContentStatusApproved:
		return 90
	case ContentStatusPublished:
		return 100
	default:
		return 0
	}
}

func (s ContentStatus) IsTerminal() bool {
	return s == ContentStatusPublished
}

func IsSupportedContentStatus(value ContentStatus) bool {
	switch value {
	case ContentStatusNotStarted,
		ContentStatusInProgress,
		ContentStatusReview,
		ContentStatusApproved,
		ContentStatusPublished:
		return true
	default:
		return false
	}
}

func IsSupportedContentType(value ContentType) bool {
	switch value {
	case ContentTypeImage, ContentTypeVideo, ContentTypeText, ContentTypeBanner, ContentTypeStory:
		return true
	default:
		return false
	}
}

func IsSupportedPlatform(value Platform) bool {
	switch value {
	case PlatformInstagram, PlatformFacebook, PlatformLinkedIn, PlatformTwitter, PlatformWebsite:
		return true
	default:
		return false
	}
}

func NormalizeContentStatus(raw string) ContentStatus {
	return ContentStatus(strings.ToLower(strings.TrimSpace(raw)))
}

func NormalizeContentType(raw string) ContentType {
	return ContentType(strings.ToLower(strings.TrimSpace(raw)))
}

func NormalizePlatform(raw string) Platform {
	return Platform(strings.ToLower(strings.TrimSpace(raw)))
}

type ContentItem struct {
	ItemID     string
	Title      string
	Type       ContentType
	Platform   Platform
	Status     ContentStatus
	AssignedTo string
	DueDate    string
	Progress   int
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewContentItem builds an item whose progress is exactly the floor of its initial status.
func NewContentItem(
	itemID string,
	title string,
	contentType ContentType,
	platform Platform,
	status ContentStatus,
	assignedTo string,
	dueDate string,
	notes string,
	now time.Time,
) ContentItem {
	if status == "" {
		status = ContentStatusNotStarted
	}
	return ContentItem{
		ItemID:     itemID,
		Title:      strings.TrimSpace(title),
		Type:       contentType,
		Platform:   platform,
		Status:     status,
		AssignedTo: strings.TrimSpace(assignedTo),
		DueDate:    strings.TrimSpace(dueDate),
		Progress:   status.ProgressFloor(),
		Notes:      strings.TrimSpace(notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Advance moves the item one step along the pipeline. A terminal item is
// returned unchanged with false.
func (i ContentItem) Advance(now time.Time) (ContentItem, bool) {
	next, ok := i.Status.Next()
	if !ok {
		return i, false
	}
	i.Status = next
	i.Progress = max(i.Progress, next.ProgressFloor())
	i.UpdatedAt = now
	return i, true
}

func (i ContentItem) Reset(now time.Time) ContentItem {
	i.Status = ContentStatusNotStarted
	i.Progress = 0
	i.UpdatedAt = now
	return i
}

func (i ContentItem) WithStatus(status ContentStatus, now time.Time) ContentItem {
	i.Status = status
	i.Progress = status.ProgressFloor()
	i.UpdatedAt = now
	return i
}

// WithProgress clamps a manual progress edit into [floor(status), 100].
func (i ContentItem) WithProgress(progress int, now time.Time) ContentItem {
	i.Progress = min(max(progress, i.Status.ProgressFloor()), 100)
	i.UpdatedAt = now
	return i
}

func (i ContentItem) ValidateBasics() bool {
	return strings.TrimSpace(i.Title) != "" &&
		len(strings.TrimSpace(i.Title)) <= 200 &&
		strings.TrimSpace(i.AssignedTo) != "" &&
		IsSupportedContentType(i.Type) &&
		IsSupportedPlatform(i.Platform) &&
		IsSupportedContentStatus(i.Status) &&
		ValidDate(i.DueDate)
}

// ProgressConsistent reports whether progress honours the status floor.
func (i ContentItem) ProgressConsistent() bool {
	return i.Progress >= i.Status.ProgressFloor() && i.Progress <= 100
}

// ValidDate accepts an empty value or a YYYY-MM-DD calendar date.
func ValidDate(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return true
	}
	_, err := time.Parse(DueDateLayout, value)
	return err == nil
}
