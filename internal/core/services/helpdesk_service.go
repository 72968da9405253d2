package services

import (
	"strings"
)

// helplineFallback is shown when no FAQ entry matches the question
const helplineFallback = "I could not find an answer for that. Please rephrase your question, or call the DBT helpline at 1800-11-8004 for assistance."

var greetingWords = []string{"hi", "hello", "hey", "namaste", "namaskar"}

// HelpdeskService answers student questions from the FAQ knowledge base.
// Matching is a simple keyword overlap score - no external calls, fully
// deterministic.
type HelpdeskService struct{}

// NewHelpdeskService creates a new helpdesk service
func NewHelpdeskService() *HelpdeskService {
	return &HelpdeskService{}
}

// FAQs returns the published knowledge base
func (s *HelpdeskService) FAQs() []FAQ {
	return FAQList()
}

// Search filters the knowledge base by a case-insensitive substring over
// question and answer. An empty query returns everything.
func (s *HelpdeskService) Search(query string) []FAQ {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return FAQList()
	}

	matches := []FAQ{}
	for _, entry := range faqEntries {
		if strings.Contains(strings.ToLower(entry.Question), q) ||
			strings.Contains(strings.ToLower(entry.Answer), q) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// Reply resolves a bot answer for a free-text question
func (s *HelpdeskService) Reply(message string) string {
	return GetBotReply(message)
}

// GetBotReply scores each FAQ entry by counting how many significant words
// (longer than three characters) of the question appear in the entry, and
// returns the best match. Greetings get a greeting; no match gets the
// helpline fallback.
func GetBotReply(message string) string {
	normalized := strings.ToLower(strings.TrimSpace(message))
	if normalized == "" {
		return helplineFallback
	}

	for _, greeting := range greetingWords {
		if normalized == greeting || strings.HasPrefix(normalized, greeting+" ") || strings.HasPrefix(normalized, greeting+",") {
			return "Hello! I am the DBT Setu helpdesk assistant. Ask me about DBT enablement, Aadhaar seeding, scholarship payments or your verification status."
		}
	}

	words := strings.FieldsFunc(normalized, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})

	bestScore := 0
	bestAnswer := ""
	for _, entry := range faqEntries {
		haystack := strings.ToLower(entry.Question + " " + entry.Answer)
		score := 0
		for _, word := range words {
			if len(word) > 3 && strings.Contains(haystack, word) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestAnswer = entry.Answer
		}
	}

	if bestScore == 0 {
		return helplineFallback
	}
	return bestAnswer
}
