package system

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGeneratorProducesOrderedV7IDs(t *testing.T) {
	gen := UUIDGenerator{}
	first, err := gen.NewID(context.Background())
	require.NoError(t, err)
	second, err := gen.NewID(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.LessOrEqual(t, first, second)
}

func TestClockReturnsUTC(t *testing.T) {
	now := Clock{}.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}
