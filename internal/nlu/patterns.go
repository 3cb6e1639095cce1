package nlu

import (
	"context"
	"regexp"
	"strings"

	"github.com/hazzsaeedharis/postgres-nl-agent/internal/intent"
)

// PatternMatcher classifies queries with fixed keyword heuristics. It is the
// always-available fallback when no Dialogflow agent is configured and
// never returns an error.
type PatternMatcher struct{}

func NewPatternMatcher() *PatternMatcher { return &PatternMatcher{} }

const (
	patternConfidence = 0.8
	unknownConfidence = 0.5
)

var (
	emailRe      = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	datePhraseRe = regexp.MustCompile(`(?i)\b(last\s+week|this\s+week|last\s+month|this\s+month|yesterday|today|\d{4}-\d{2}-\d{2})\b`)
	statusRe     = regexp.MustCompile(`(?i)\b(pending|processing|shipped|delivered|cancelled)\b`)
	numberRe     = regexp.MustCompile(`\b(\d+)\b`)

	summaryRe      = regexp.MustCompile(`\border\s+summar(y|ies)\b|\bsummar(y|ize|ise)\b.*\borders?\b`)
	revenueRe      = regexp.MustCompile(`\brevenue\b|\bsales\s+total\b|\bhow\s+much\b.*\b(made|earned|sold)\b`)
	lowStockRe     = regexp.MustCompile(`\blow\b.*\bstock\b|\brunning\s+low\b|\bout\s+of\s+stock\b|\bstock\s+below\b`)
	countRe        = regexp.MustCompile(`\bhow\s+many\b|\bnumber\s+of\b|\bcount\b|\btotal\s+(number|amount)\s+of\b`)
	customerWordRe = regexp.MustCompile(`\bcustomers?\b|\bclients?\b`)
	productWordRe  = regexp.MustCompile(`\bproducts?\b|\bcatalog\b|\binventory\b|\bitems?\b`)
	orderWordRe    = regexp.MustCompile(`\borders?\b|\bpurchases?\b`)
)

func (m *PatternMatcher) Process(_ context.Context, text string) (Result, error) {
	lower := strings.ToLower(text)
	entities := extractEntities(text)

	detected := classify(lower, entities)

	confidence := patternConfidence
	if detected == intent.Unknown {
		confidence = unknownConfidence
	}

	return Result{
		Intent:     detected.String(),
		Confidence: confidence,
		Entities:   entities,
		Text:       text,
	}, nil
}

func classify(lower string, entities map[string]string) intent.Intent {
	_, hasEmail := entities["email"]
	_, hasDate := entities["date_phrase"]
	_, hasStatus := entities["status"]

	switch {
	case summaryRe.MatchString(lower):
		return intent.OrderSummary
	case revenueRe.MatchString(lower):
		return intent.RevenueInPeriod
	case hasEmail && customerWordRe.MatchString(lower):
		return intent.FindCustomerByEmail
	case lowStockRe.MatchString(lower):
		return intent.LowStockProducts
	case hasStatus && orderWordRe.MatchString(lower):
		return intent.OrdersByStatus
	case hasDate && orderWordRe.MatchString(lower):
		return intent.OrdersInDateRange
	case countRe.MatchString(lower) && customerWordRe.MatchString(lower):
		return intent.CountCustomers
	case countRe.MatchString(lower) && orderWordRe.MatchString(lower):
		return intent.CountOrders
	case productWordRe.MatchString(lower):
		return intent.ListProducts
	case orderWordRe.MatchString(lower):
		return intent.ListOrders
	case customerWordRe.MatchString(lower):
		return intent.ListCustomers
	default:
		return intent.Unknown
	}
}

func extractEntities(text string) map[string]string {
	entities := map[string]string{}

	if m := emailRe.FindString(text); m != "" {
		entities["email"] = m
	}
	if m := datePhraseRe.FindString(text); m != "" {
		entities["date_phrase"] = strings.Join(strings.Fields(strings.ToLower(m)), " ")
	}
	if m := statusRe.FindString(text); m != "" {
		entities["status"] = strings.ToLower(m)
	}
	// Bare numbers double as the low-stock threshold; the mapper decides
	// whether it is needed.
	if m := numberRe.FindString(text); m != "" {
		entities["threshold"] = m
	}

	return entities
}
