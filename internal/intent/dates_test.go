package intent_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hazzsaeedharis/postgres-nl-agent/internal/intent"
)

// Wednesday, 13 March 2024, mid-afternoon.
var anchor = time.Date(2024, time.March, 13, 15, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveDatePhrase(t *testing.T) {

	cases := []struct {
		phrase string
		start  time.Time
		end    time.Time
	}{
		{"today", day(2024, time.March, 13), day(2024, time.March, 14)},
		{"yesterday", day(2024, time.March, 12), day(2024, time.March, 13)},
		{"this week", day(2024, time.March, 11), day(2024, time.March, 18)},
		{"last week", day(2024, time.March, 4), day(2024, time.March, 11)},
		{"this month", day(2024, time.March, 1), day(2024, time.April, 1)},
		{"last month", day(2024, time.February, 1), day(2024, time.March, 1)},
		{"2024-01-15", day(2024, time.January, 15), day(2024, time.January, 16)},
	}

	for _, tc := range cases {
		t.Run(tc.phrase, func(t *testing.T) {
			window, ok := intent.ResolveDatePhrase(tc.phrase, anchor)
			assert.True(t, ok)
			assert.Equal(t, tc.start, window.Start)
			assert.Equal(t, tc.end, window.End)
		})
	}
}

func TestResolveDatePhraseNormalization(t *testing.T) {
	// Snake-case and mixed-case inputs resolve identically.
	a, ok := intent.ResolveDatePhrase("last_week", anchor)
	assert.True(t, ok)
	b, ok := intent.ResolveDatePhrase("  Last  Week ", anchor)
	assert.True(t, ok)
	assert.Equal(t, a, b)
}

func TestResolveDatePhraseDeterministic(t *testing.T) {
	// The same phrase and clock always yield the same window.
	first, ok := intent.ResolveDatePhrase("last week", anchor)
	assert.True(t, ok)
	second, ok := intent.ResolveDatePhrase("last week", anchor)
	assert.True(t, ok)
	assert.Equal(t, first, second)
}

func TestResolveDatePhraseAnchoredOnMonday(t *testing.T) {
	// Asked on a Monday, "last week" is the full previous ISO week.
	monday := time.Date(2024, time.March, 11, 9, 0, 0, 0, time.UTC)
	window, ok := intent.ResolveDatePhrase("last week", monday)
	assert.True(t, ok)
	assert.Equal(t, day(2024, time.March, 4), window.Start)
	assert.Equal(t, day(2024, time.March, 11), window.End)
}

func TestResolveDatePhraseRejectsUnknown(t *testing.T) {
	_, ok := intent.ResolveDatePhrase("a fortnight hence", anchor)
	assert.False(t, ok)
}
