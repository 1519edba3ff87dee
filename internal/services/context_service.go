package services

import (
	"regexp"
	"strings"
	"tripwise/pkg/memcache"
)

type ContextServiceInterface interface {
	Rewrite(userID, query string) string
	Record(userID, query, response string)
	History(userID string) []memcache.Turn
	LastResponse(userID string) string
	Clear(userID string)
}

// ContextService keeps per-user conversation memory and prefixes follow-up
// queries with a summary of earlier interests. A query that already opens a
// fresh topic passes through untouched.
type ContextService struct {
	store *memcache.ConversationStore
}

func NewContextService(store *memcache.ConversationStore) ContextServiceInterface {
	return &ContextService{store: store}
}

var freshIntentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)where to go`),
	regexp.MustCompile(`(?i)recommend destinations`),
	regexp.MustCompile(`(?i)suggest places`),
	regexp.MustCompile(`(?i)itinerary for`),
	regexp.MustCompile(`(?i)travel plan for`),
	regexp.MustCompile(`(?i)flights from`),
	regexp.MustCompile(`(?i)weather in`),
}

var interestKeywords = []string{
	"beach", "mountain", "city", "culture", "food", "adventure",
	"budget", "luxury", "family", "solo", "couple", "history",
	"nature", "relaxation", "shopping",
}

var mentionedDestinationRe = regexp.MustCompile(`(?i)(?:visit|go to|travel to|trip to|in)\s+(?:the\s+)?([\w\s]+)`)

func (s *ContextService) Rewrite(userID, query string) string {
	history := s.store.History(userID)
	if len(history) == 0 {
		return query
	}
	for _, pattern := range freshIntentPatterns {
		if pattern.MatchString(query) {
			return query
		}
	}

	context := s.buildContext(history)
	if context == "" {
		return query
	}
	return context + " " + query
}

func (s *ContextService) buildContext(history []memcache.Turn) string {
	var allQueries strings.Builder
	for _, turn := range history {
		allQueries.WriteString(turn.Query)
		allQueries.WriteString(" ")
	}
	queriesLower := strings.ToLower(allQueries.String())

	var keywords []string
	for _, keyword := range interestKeywords {
		if strings.Contains(queriesLower, keyword) {
			keywords = append(keywords, keyword)
		}
	}

	var mentioned []string
	for _, match := range mentionedDestinationRe.FindAllStringSubmatch(allQueries.String(), -1) {
		name := strings.TrimSpace(match[1])
		if len(name) > 2 {
			mentioned = append(mentioned, name)
		}
	}

	context := "Based on our conversation so far, you've shown interest in: "
	if len(keywords) > 0 {
		context += strings.Join(keywords, ", ") + ". "
	}
	if len(mentioned) > 0 {
		context += "You've mentioned these destinations: " + strings.Join(mentioned, ", ") + ". "
	}
	return strings.TrimSpace(context)
}

func (s *ContextService) Record(userID, query, response string) {
	s.store.Append(userID, memcache.Turn{Query: query, Response: response})
}

func (s *ContextService) History(userID string) []memcache.Turn {
	return s.store.History(userID)
}

// LastResponse returns the assistant's most recent reply, used for follow-up
// resolution. Empty when the user has no history.
func (s *ContextService) LastResponse(userID string) string {
	history := s.store.History(userID)
	if len(history) == 0 {
		return ""
	}
	return history[len(history)-1].Response
}

func (s *ContextService) Clear(userID string) {
	s.store.Clear(userID)
}
