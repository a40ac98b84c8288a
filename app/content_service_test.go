package app

import (
	"testing"

	"gotrial/domain/condition"
	"gotrial/domain/stimuli"
	"gotrial/models"
	"gotrial/summarize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payloadFieldCount(p *models.ContentPayload) int {
	count := 0
	if p.Original != nil {
		count++
	}
	if p.AISummary != nil {
		count++
	}
	if p.Digest != nil {
		count++
	}
	return count
}

// TestContentForSetsExactlyOneRendition verifies the payload union invariant
// across every round and order.
func TestContentForSetsExactlyOneRendition(t *testing.T) {
	svc := NewContentService(testEngine(t))

	for order := 1; order <= 6; order++ {
		participant := models.NewParticipant(condition.Assignment{
			SourceOrder: order,
			Length:      condition.LengthShorter,
		}, 30, false, false, false)

		for _, slug := range condition.TestSlugs() {
			payload, err := svc.ContentFor(participant, slug)
			require.NoError(t, err, "order %d slug %s", order, slug)
			assert.Equal(t, 1, payloadFieldCount(payload), "order %d slug %s sets %d renditions", order, slug, payloadFieldCount(payload))
			assert.Equal(t, slug, payload.Slug)
			assert.Equal(t, condition.LengthShorter, payload.Length)
		}
	}
}

// TestContentForOrderOne pins the renditions for the first table row.
func TestContentForOrderOne(t *testing.T) {
	svc := NewContentService(testEngine(t))
	participant := models.NewParticipant(condition.Assignment{
		SourceOrder: 1,
		Length:      condition.LengthShorter,
	}, 30, false, false, false)

	// SetA on original data.
	payload, err := svc.ContentFor(participant, condition.SlugPushNotifications)
	require.NoError(t, err)
	assert.Equal(t, condition.SourceOriginal, payload.Source)
	items, ok := payload.Original.([]stimuli.NotificationItem)
	require.True(t, ok, "original payload holds %T", payload.Original)
	for _, item := range items {
		assert.False(t, item.Irrelevant, "shorter variant kept irrelevant item %d", item.ID)
	}

	// SetB on the AI summary.
	payload, err = svc.ContentFor(participant, condition.SlugEmailInbox)
	require.NoError(t, err)
	assert.Equal(t, condition.SourceAI, payload.Source)
	assert.NotNil(t, payload.AISummary)

	// SetC on the programmatic digest.
	payload, err = svc.ContentFor(participant, condition.SlugMeetingTranscription)
	require.NoError(t, err)
	assert.Equal(t, condition.SourceProgrammatic, payload.Source)
	digest, ok := payload.Digest.(summarize.TranscriptDigest)
	require.True(t, ok, "digest payload holds %T", payload.Digest)
	assert.NotEmpty(t, digest.Summary)
}

// TestContentForPracticeIsAlwaysOriginal verifies the warm-up round ignores
// the condition tables and shows all boxes unfiltered.
func TestContentForPracticeIsAlwaysOriginal(t *testing.T) {
	svc := NewContentService(testEngine(t))

	for order := 1; order <= 6; order++ {
		for _, length := range []condition.ContentLength{condition.LengthLonger, condition.LengthShorter} {
			participant := models.NewParticipant(condition.Assignment{
				SourceOrder: order,
				Length:      length,
			}, 30, false, false, false)

			payload, err := svc.ContentFor(participant, condition.SlugPractice)
			require.NoError(t, err)
			assert.Equal(t, condition.SourceOriginal, payload.Source)

			items, ok := payload.Original.([]stimuli.PracticeItem)
			require.True(t, ok)
			assert.Len(t, items, len(stimuli.PracticeData))
		}
	}
}

// TestContentForLongerVariantDropsOneItem verifies the longer length removes
// exactly one item from an original rendition.
func TestContentForLongerVariantDropsOneItem(t *testing.T) {
	svc := NewContentService(testEngine(t))
	participant := models.NewParticipant(condition.Assignment{
		SourceOrder: 1,
		Length:      condition.LengthLonger,
	}, 30, false, false, false)

	payload, err := svc.ContentFor(participant, condition.SlugPushNotifications)
	require.NoError(t, err)
	items, ok := payload.Original.([]stimuli.NotificationItem)
	require.True(t, ok)
	assert.Len(t, items, len(stimuli.NotificationsData)-1)
}
