// Package system holds the runtime clock and id generator shared by the
// durable storage backends.
package system

import (
	"context"
	"time"

	"campaignhub/contexts/campaign-editorial/content-progress-service/ports"

	"github.com/google/uuid"
)

type Clock struct{}

func (Clock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDGenerator creates time-ordered UUIDv7 identifiers for campaigns,
// content items and history rows.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

var (
	_ ports.Clock       = Clock{}
	_ ports.IDGenerator = UUIDGenerator{}
)
