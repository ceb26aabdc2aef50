package stripe

import "strings"

// NormalizeStatus folds Stripe subscription statuses into the few the
// dashboard shows: none, active, trialing, past_due, canceled.
func NormalizeStatus(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "none"
	}
	switch strings.TrimSpace(*s) {
	case "active":
		return "active"
	case "trialing":
		return "trialing"
	case "past_due", "unpaid":
		return "past_due"
	case "canceled", "incomplete_expired", "incomplete", "paused":
		return "canceled"
	default:
		return strings.TrimSpace(*s)
	}
}

// Entitles reports whether a subscription in this status keeps its paid tier.
// past_due keeps access while Stripe retries the payment; unpaid means the
// retries are exhausted. Reads the raw status, not the display fold.
func Entitles(status string) bool {
	switch strings.TrimSpace(status) {
	case "active", "trialing", "past_due":
		return true
	}
	return false
}
