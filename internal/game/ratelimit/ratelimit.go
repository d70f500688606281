// Package ratelimit enforces sliding-window limits on character
// actions such as fulfilling aspirations or voting for other players.
package ratelimit

import (
	"fmt"
	"time"
)

// Action is one recorded use of a limited action.
type Action struct {
	Type   string    `json:"type"`
	Target string    `json:"target,omitempty"`
	At     time.Time `json:"at"`
}

// History is a character's recorded actions.
type History struct {
	Actions []Action `json:"actions"`
}

// Status is the result of a limit check.
type Status struct {
	// Allowed reports whether the action may be performed now.
	Allowed bool

	// Remaining is how many uses are left in the window when allowed.
	Remaining int

	// NextAt is when the action next becomes available when denied.
	NextAt time.Time

	// Message is a human-readable account of the limit state.
	Message string
}

// Check evaluates a per-character limit: at most max uses of
// actionType within the window ending at now.
func (h *History) Check(now time.Time, actionType string, max int, window time.Duration) Status {
	cutoff := now.Add(-window)
	var recent []Action
	for _, action := range h.Actions {
		if action.Type == actionType && action.At.After(cutoff) {
			recent = append(recent, action)
		}
	}

	if len(recent) >= max {
		oldest := recent[0]
		for _, action := range recent[1:] {
			if action.At.Before(oldest.At) {
				oldest = action
			}
		}
		nextAt := oldest.At.Add(window)
		return Status{
			Allowed: false,
			NextAt:  nextAt,
			Message: fmt.Sprintf("You've used all %d %s actions this period. Next available in %s (at %s).",
				max, actionType, formatRemaining(nextAt.Sub(now)), nextAt.UTC().Format("2006-01-02 15:04 UTC")),
		}
	}

	remaining := max - len(recent)
	return Status{
		Allowed:   true,
		Remaining: remaining,
		Message:   fmt.Sprintf("%d %s %s remaining this period.", remaining, actionType, plural(remaining, "action", "actions")),
	}
}

// CheckTarget evaluates a per-target limit: at most one use of
// actionType against target within the window.
func (h *History) CheckTarget(now time.Time, actionType, target string, window time.Duration) Status {
	cutoff := now.Add(-window)
	for _, action := range h.Actions {
		if action.Type == actionType && action.Target == target && action.At.After(cutoff) {
			nextAt := action.At.Add(window)
			return Status{
				Allowed: false,
				NextAt:  nextAt,
				Message: fmt.Sprintf("You already used %s on %s this period. Next available in %s.",
					actionType, target, formatRemaining(nextAt.Sub(now))),
			}
		}
	}
	return Status{
		Allowed: true,
		Message: fmt.Sprintf("You can %s %s.", actionType, target),
	}
}

// Record appends an action use.
func (h *History) Record(now time.Time, actionType, target string) {
	h.Actions = append(h.Actions, Action{Type: actionType, Target: target, At: now})
}

// Count returns uses of actionType within the window ending at now.
func (h *History) Count(now time.Time, actionType string, window time.Duration) int {
	cutoff := now.Add(-window)
	count := 0
	for _, action := range h.Actions {
		if action.Type == actionType && action.At.After(cutoff) {
			count++
		}
	}
	return count
}

// Prune drops actions older than keep, preventing unbounded growth.
func (h *History) Prune(now time.Time, keep time.Duration) {
	cutoff := now.Add(-keep)
	kept := h.Actions[:0]
	for _, action := range h.Actions {
		if action.At.After(cutoff) {
			kept = append(kept, action)
		}
	}
	h.Actions = kept
}

func formatRemaining(d time.Duration) string {
	switch {
	case d >= 24*time.Hour:
		days := int(d / (24 * time.Hour))
		return fmt.Sprintf("%d %s", days, plural(days, "day", "days"))
	case d >= time.Hour:
		hours := int(d / time.Hour)
		return fmt.Sprintf("%d %s", hours, plural(hours, "hour", "hours"))
	default:
		minutes := int(d / time.Minute)
		if minutes < 1 {
			minutes = 1
		}
		return fmt.Sprintf("%d %s", minutes, plural(minutes, "minute", "minutes"))
	}
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
