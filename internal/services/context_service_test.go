package services

import (
	"testing"
	"tripwise/pkg/memcache"

	"github.com/stretchr/testify/assert"
)

func TestRewritePassthroughWithoutHistory(t *testing.T) {
	svc := NewContextService(memcache.NewConversationStore(5))

	assert.Equal(t, "beach holidays", svc.Rewrite("user-1", "beach holidays"))
}

func TestRewritePassthroughForFreshIntent(t *testing.T) {
	svc := NewContextService(memcache.NewConversationStore(5))
	svc.Record("user-1", "I love beach destinations", "...")

	query := "itinerary for Rome"
	assert.Equal(t, query, svc.Rewrite("user-1", query))
}

func TestRewritePrefixesKeywordsAndDestinations(t *testing.T) {
	svc := NewContextService(memcache.NewConversationStore(5))
	svc.Record("user-1", "I want a beach holiday with great food", "...")
	svc.Record("user-1", "we plan to visit Lisbon", "...")

	augmented := svc.Rewrite("user-1", "what do you suggest")

	assert.Contains(t, augmented, "you've shown interest in")
	assert.Contains(t, augmented, "beach")
	assert.Contains(t, augmented, "food")
	assert.Contains(t, augmented, "Lisbon")
	assert.Contains(t, augmented, "what do you suggest")
}

func TestRewriteIsolatedPerUser(t *testing.T) {
	svc := NewContextService(memcache.NewConversationStore(5))
	svc.Record("user-1", "mountain hiking trips", "...")

	assert.Equal(t, "any ideas", svc.Rewrite("user-2", "any ideas"))
}

func TestHistoryCappedAtFiveTurns(t *testing.T) {
	svc := NewContextService(memcache.NewConversationStore(5))

	for _, q := range []string{"one", "two", "three", "four", "five", "six"} {
		svc.Record("user-1", q, "resp "+q)
	}

	history := svc.History("user-1")
	assert.Len(t, history, 5)
	assert.Equal(t, "two", history[0].Query)
	assert.Equal(t, "six", history[4].Query)
}

func TestLastResponse(t *testing.T) {
	svc := NewContextService(memcache.NewConversationStore(5))
	assert.Empty(t, svc.LastResponse("user-1"))

	svc.Record("user-1", "q1", "r1")
	svc.Record("user-1", "q2", "r2")
	assert.Equal(t, "r2", svc.LastResponse("user-1"))
}
