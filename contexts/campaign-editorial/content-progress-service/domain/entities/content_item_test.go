package entities_test

import (
	"testing"
	"time"

	"campaignhub/contexts/campaign-editorial/content-progress-service/domain/entities"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newItem(status entities.ContentStatus) entities.ContentItem {
	return entities.NewContentItem(
		"item-1",
		"Banner",
		entities.ContentTypeBanner,
		entities.PlatformInstagram,
		status,
		"Ana",
		"2026-03-10",
		"",
		fixedNow,
	)
}

func TestNextStatusFollowsPipeline(t *testing.T) {
	cases := []struct {
		from entities.ContentStatus
		to   entities.ContentStatus
		ok   bool
	}{
		{entities.ContentStatusNotStarted, entities.ContentStatusInProgress, true},
		{entities.ContentStatusInProgress, entities.ContentStatusReview, true},
		{entities.ContentStatusReview, entities.ContentStatusApproved, true},
		{entities.ContentStatusApproved, entities.ContentStatusPublished, true},
		{entities.ContentStatusPublished, "", false},
	}
	for _, tc := range cases {
		next, ok := tc.from.Next()
		assert.Equal(t, tc.ok, ok, "from %s", tc.from)
		assert.Equal(t, tc.to, next, "from %s", tc.from)
	}
}

func TestProgressFloors(t *testing.T) {
	assert.Equal(t, 0, entities.ContentStatusNotStarted.ProgressFloor())
	assert.Equal(t, 25, entities.ContentStatusInProgress.ProgressFloor())
	assert.Equal(t, 75, entities.ContentStatusReview.ProgressFloor())
	assert.Equal(t, 90, entities.ContentStatusApproved.ProgressFloor())
	assert.Equal(t, 100, entities.ContentStatusPublished.ProgressFloor())
	assert.True(t, entities.ContentStatusPublished.IsTerminal())
	assert.False(t, entities.ContentStatusApproved.IsTerminal())
}

func TestNewContentItemStartsAtStatusFloor(t *testing.T) {
	item := newItem("")
	assert.Equal(t, entities.ContentStatusNotStarted, item.Status)
	assert.Equal(t, 0, item.Progress)

	review := newItem(entities.ContentStatusReview)
	assert.Equal(t, 75, review.Progress)
	assert.True(t, review.ValidateBasics())
}

func TestAdvanceFromNotStartedReachesPublishedInFourSteps(t *testing.T) {
	item := newItem(entities.ContentStatusNotStarted)
	wantProgress := []int{25, 75, 90, 100}
	for step, want := range wantProgress {
		var changed bool
		item, changed = item.Advance(fixedNow.Add(time.Duration(step+1) * time.Minute))
		require.True(t, changed, "step %d", step)
		assert.Equal(t, want, item.Progress, "step %d", step)
	}
	assert.Equal(t, entities.ContentStatusPublished, item.Status)

	again, changed := item.Advance(fixedNow.Add(time.Hour))
	assert.False(t, changed)
	assert.Equal(t, item, again)
}

func TestAdvanceKeepsProgressAboveFloor(t *testing.T) {
	item := newItem(entities.ContentStatusInProgress).WithProgress(80, fixedNow)
	advanced, changed := item.Advance(fixedNow)
	require.True(t, changed)
	assert.Equal(t, entities.ContentStatusReview, advanced.Status)
	assert.Equal(t, 80, advanced.Progress)
}

func TestResetAlwaysReturnsToNotStarted(t *testing.T) {
	for _, status := range entities.ContentStatuses {
		reset := newItem(status).Reset(fixedNow)
		assert.Equal(t, entities.ContentStatusNotStarted, reset.Status)
		assert.Equal(t, 0, reset.Progress)
	}
}

func TestWithStatusSetsProgressToFloor(t *testing.T) {
	item := newItem(entities.ContentStatusApproved).WithProgress(95, fixedNow)
	moved := item.WithStatus(entities.ContentStatusInProgress, fixedNow)
	assert.Equal(t, 25, moved.Progress)
	assert.Equal(t, 100, item.WithStatus(entities.ContentStatusPublished, fixedNow).Progress)
}

func TestWithProgressClampsToFloorAndHundred(t *testing.T) {
	item := newItem(entities.ContentStatusReview)
	assert.Equal(t, 75, item.WithProgress(10, fixedNow).Progress)
	assert.Equal(t, 100, item.WithProgress(250, fixedNow).Progress)
	assert.Equal(t, 82, item.WithProgress(82, fixedNow).Progress)
}

func TestValidateBasicsRejectsBadInput(t *testing.T) {
	blank := newItem(entities.ContentStatusNotStarted)
	blank.Title = "   "
	assert.False(t, blank.ValidateBasics())

	unassigned := newItem(entities.ContentStatusNotStarted)
	unassigned.AssignedTo = ""
	assert.False(t, unassigned.ValidateBasics())

	badDate := newItem(entities.ContentStatusNotStarted)
	badDate.DueDate = "10/03/2026"
	assert.False(t, badDate.ValidateBasics())

	badPlatform := newItem(entities.ContentStatusNotStarted)
	badPlatform.Platform = "myspace"
	assert.False(t, badPlatform.ValidateBasics())
}

func TestProgressNeverFallsBelowStatusFloor(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("every operation keeps progress within [floor, 100]", prop.ForAll(
		func(ops []int, args []int) bool {
			item := newItem(entities.ContentStatusNotStarted)
			for idx, op := range ops {
				arg := 0
				if len(args) > 0 {
					arg = args[idx%len(args)]
				}
				switch op {
				case 0:
					item, _ = item.Advance(fixedNow)
				case 1:
					item = item.Reset(fixedNow)
				case 2:
					item = item.WithStatus(entities.ContentStatuses[arg%len(entities.ContentStatuses)], fixedNow)
				default:
					item = item.WithProgress(arg-10, fixedNow)
				}
				if !item.ProgressConsistent() {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 3)),
		gen.SliceOf(gen.IntRange(0, 130)),
	))

	properties.TestingRun(t)
}
