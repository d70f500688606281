// Package aspirations manages character aspirations: short and
// long-term goals that grant a beat when fulfilled.
package aspirations

import (
	"strconv"
	"strings"
	"time"

	"github.com/soma-satoro/PyReach/internal/game/ratelimit"
	"github.com/soma-satoro/PyReach/internal/platform/errors"
)

// MaxAspirations is the cap on concurrent aspirations, any mix of
// short and long term.
const MaxAspirations = 6

// Rate limits on aspiration churn.
const (
	fulfillLimit  = 3
	fulfillAction = "aspiration_fulfill"
	changeLimit   = 3
	changeAction  = "aspiration_change"
	limitWindow   = 7 * 24 * time.Hour
)

// Term is an aspiration's horizon.
type Term string

const (
	// Short aspirations resolve within a few scenes.
	Short Term = "short"
	// Long aspirations span multiple sessions.
	Long Term = "long"
)

// ParseTerm accepts "short" or "long" in any case.
func ParseTerm(s string) (Term, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "short":
		return Short, true
	case "long":
		return Long, true
	default:
		return "", false
	}
}

// Aspiration is one character goal.
type Aspiration struct {
	Term        Term      `json:"term"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// List is a character's aspirations with the rate-limit history that
// governs fulfillment and changes.
type List struct {
	Aspirations []Aspiration      `json:"aspirations"`
	Limits      ratelimit.History `json:"limits"`
}

// Add appends a new aspiration. Fails when at the cap or the
// description is empty.
func (l *List) Add(now time.Time, term Term, description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errors.New(errors.CodeAspirationMissing, "aspiration description is required")
	}
	if len(l.Aspirations) >= MaxAspirations {
		return errors.WithMetadata(errors.CodeAspirationLimit, "too many aspirations",
			map[string]string{"max": "6"})
	}
	l.Aspirations = append(l.Aspirations, Aspiration{Term: term, Description: description, CreatedAt: now})
	return nil
}

// Change rewrites aspiration number (1-based). Changes are rate
// limited to discourage churning goals for beats.
func (l *List) Change(now time.Time, number int, description string) error {
	index, err := l.index(number)
	if err != nil {
		return err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return errors.New(errors.CodeAspirationMissing, "aspiration description is required")
	}

	status := l.Limits.Check(now, changeAction, changeLimit, limitWindow)
	if !status.Allowed {
		return errors.WithMetadata(errors.CodeRateLimited, "aspiration change limit reached",
			map[string]string{"detail": status.Message})
	}

	l.Aspirations[index].Description = description
	l.Limits.Record(now, changeAction, "")
	return nil
}

// Remove deletes aspiration number (1-based) without a beat.
func (l *List) Remove(number int) error {
	index, err := l.index(number)
	if err != nil {
		return err
	}
	l.Aspirations = append(l.Aspirations[:index], l.Aspirations[index+1:]...)
	return nil
}

// Fulfill marks aspiration number (1-based) as achieved and removes
// it. Returns the fulfilled aspiration; the caller awards the beat.
// Fulfillment is rate limited per week.
func (l *List) Fulfill(now time.Time, number int) (Aspiration, error) {
	index, err := l.index(number)
	if err != nil {
		return Aspiration{}, err
	}

	status := l.Limits.Check(now, fulfillAction, fulfillLimit, limitWindow)
	if !status.Allowed {
		return Aspiration{}, errors.WithMetadata(errors.CodeRateLimited, "aspiration fulfillment limit reached",
			map[string]string{"detail": status.Message})
	}

	fulfilled := l.Aspirations[index]
	l.Aspirations = append(l.Aspirations[:index], l.Aspirations[index+1:]...)
	l.Limits.Record(now, fulfillAction, "")
	return fulfilled, nil
}

func (l *List) index(number int) (int, error) {
	if number < 1 || number > len(l.Aspirations) {
		return 0, errors.WithMetadata(errors.CodeAspirationMissing, "no such aspiration",
			map[string]string{"number": strconv.Itoa(number)})
	}
	return number - 1, nil
}
