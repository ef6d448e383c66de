package advisory

import (
	"strings"

	"github.com/nag3003/agrisaarthii/internal/domain"
)

// Fixed keyword lexicons. Classification must stay reproducible — same text,
// same category, always — so these are compile-time constants, not config.
var (
	pestKeywords       = []string{"curling", "pest", "bug", "insect", "yellow", "spot"}
	irrigationKeywords = []string{"water", "dry", "irrigation", "motor", "pump"}
)

// ClassifyIntent maps a free-text query to its coarse intent category via
// case-insensitive substring matching. The pest lexicon is checked first
// and short-circuits, so a query matching both classifies as PEST. Empty or
// whitespace-only input is GENERIC.
func ClassifyIntent(query string) domain.Intent {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return domain.IntentGeneric
	}
	if containsAny(q, pestKeywords) {
		return domain.IntentPest
	}
	if containsAny(q, irrigationKeywords) {
		return domain.IntentIrrigation
	}
	return domain.IntentGeneric
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
