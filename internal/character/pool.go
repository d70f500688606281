package character

import (
	"strconv"
	"strings"

	"github.com/soma-satoro/PyReach/internal/platform/errors"
)

// ResolvePool evaluates a dice pool expression against the sheet.
// Terms are stat names or integers joined by + and -, for example
// "strength+brawl" or "wits + composure - 2". The wound penalty from
// the character's health track is passed in by the caller and applied
// last. Pools never resolve below zero; a zero pool is a chance die.
func (s *Sheet) ResolvePool(expression string, woundPenalty int) (int, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return 0, errors.New(errors.CodeDiceEmptyPool, "empty dice pool")
	}

	total := 0
	sign := 1
	for _, term := range splitTerms(expression) {
		switch term {
		case "+":
			sign = 1
			continue
		case "-":
			sign = -1
			continue
		}
		value, err := s.term(term)
		if err != nil {
			return 0, err
		}
		total += sign * value
		sign = 1
	}

	total += woundPenalty
	if total < 0 {
		total = 0
	}
	return total, nil
}

func (s *Sheet) term(term string) (int, error) {
	if value, err := strconv.Atoi(term); err == nil {
		return value, nil
	}
	return s.Stat(term)
}

// splitTerms breaks "a+b-2" into ["a", "+", "b", "-", "2"], keeping
// multi-word stat names intact.
func splitTerms(expression string) []string {
	var terms []string
	var current strings.Builder
	for _, r := range expression {
		switch r {
		case '+', '-':
			if term := strings.TrimSpace(current.String()); term != "" {
				terms = append(terms, term)
			}
			current.Reset()
			terms = append(terms, string(r))
		default:
			current.WriteRune(r)
		}
	}
	if term := strings.TrimSpace(current.String()); term != "" {
		terms = append(terms, term)
	}
	return terms
}
