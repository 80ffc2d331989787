package quote

import (
	"strings"

	"vendora/models"
)

// transitions is the closed set of legal status moves. COMPLETED and CLOSED are
// terminal. Responding to a quote is not routed through this table; Respond
// always forces QUOTED.
var transitions = map[string][]string{
	models.QuoteStatusNew:       {models.QuoteStatusQuoted, models.QuoteStatusRejected, models.QuoteStatusClosed},
	models.QuoteStatusQuoted:    {models.QuoteStatusAccepted, models.QuoteStatusRejected, models.QuoteStatusClosed},
	models.QuoteStatusAccepted:  {models.QuoteStatusCompleted, models.QuoteStatusClosed},
	models.QuoteStatusRejected:  {models.QuoteStatusClosed},
	models.QuoteStatusCompleted: {},
	models.QuoteStatusClosed:    {},
}

// CanonicalStatus uppercases s and maps the legacy PENDING alias to NEW.
// It returns false for anything outside the closed status set.
func CanonicalStatus(s string) (string, bool) {
	status := strings.ToUpper(strings.TrimSpace(s))
	if status == models.QuoteStatusPending {
		status = models.QuoteStatusNew
	}
	_, known := transitions[status]
	return status, known
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to string) bool {
	fromCanon, ok := CanonicalStatus(from)
	if !ok {
		return false
	}
	toCanon, ok := CanonicalStatus(to)
	if !ok {
		return false
	}
	for _, allowed := range transitions[fromCanon] {
		if allowed == toCanon {
			return true
		}
	}
	return false
}

// IsInitial reports whether a stored status is the initial state, treating NEW
// and the legacy PENDING alias as the same state.
func IsInitial(status string) bool {
	canon, ok := CanonicalStatus(status)
	return ok && canon == models.QuoteStatusNew
}
