package errors

import "errors"

var (
	ErrCampaignNotFound        = errors.New("campaign not found")
	ErrInvalidCampaignInput    = errors.New("invalid campaign input")
	ErrInvalidStateTransition  = errors.New("invalid campaign state transition")
	ErrContentItemNotFound     = errors.New("content item not found")
	ErrInvalidContentItemInput = errors.New("invalid content item input")
	ErrInvalidContentFilter    = errors.New("invalid content filter")
	ErrCampaignAlreadyExists   = errors.New("campaign already exists")
	ErrStatusChangeExists      = errors.New("status change already recorded")
)
