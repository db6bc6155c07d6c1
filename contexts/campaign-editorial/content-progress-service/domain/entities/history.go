package entities

import "time"

type StatusAction string

const (
	StatusActionCreate  StatusAction = "create"
	StatusActionAdvance StatusAction = "advance"
	StatusActionReset   StatusAction = "reset"
	StatusActionSet     StatusAction = "set"
	StatusActionDelete  StatusAction = "delete"
)

// StatusChange is one audit row for a content item status transition.
type StatusChange struct {
	ChangeID     string
	CampaignID   string
	ItemID       string
	Action       StatusAction
	FromStatus   ContentStatus
	ToStatus     ContentStatus
	FromProgress int
	ToProgress   int
	ChangedBy    string
	CreatedAt    time.Time
}
