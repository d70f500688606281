package xp

import (
	"sort"
	"time"

	"github.com/soma-satoro/PyReach/internal/platform/errors"
)

// Beat sources a player may claim; staff awards skip validation.
var beatSources = map[string]bool{
	"dramatic_failure":    true,
	"exceptional_success": true,
	"conditions":          true,
	"aspirations":         true,
	"story":               true,
	"scene":               true,
	"session":             true,
	"roleplay":            true,
	"challenge":           true,
	"sacrifice":           true,
	"discovery":           true,
	"relationship":        true,
	"consequence":         true,
	"learning":            true,
	"growth":              true,
}

// ValidBeatSource reports whether source is a claimable beat source.
func ValidBeatSource(source string) bool {
	return beatSources[normalize(source)]
}

// BeatSources returns the claimable sources, sorted.
func BeatSources() []string {
	out := make([]string, 0, len(beatSources))
	for source := range beatSources {
		out = append(out, source)
	}
	sort.Strings(out)
	return out
}

// EntryKind distinguishes ledger entries.
type EntryKind string

const (
	EntryBeat       EntryKind = "beat"
	EntryExperience EntryKind = "experience"
)

// Entry is one change in the experience log.
type Entry struct {
	At      time.Time `json:"at"`
	Kind    EntryKind `json:"kind"`
	Amount  int       `json:"amount"` // positive for gains, negative for spends
	Source  string    `json:"source"`
	Details string    `json:"details,omitempty"`
}

// Ledger is a character's beat and experience state with its audit
// log. Five beats convert into one experience automatically.
type Ledger struct {
	Beats      int     `json:"beats"`
	Experience int     `json:"experience"`
	Spent      int     `json:"spent"`
	Log        []Entry `json:"log"`
}

// AwardBeats adds beats from a source, converting every five beats
// into an experience point.
func (l *Ledger) AwardBeats(now time.Time, amount int, source, details string) {
	if amount <= 0 {
		return
	}
	l.Beats += amount
	l.Log = append(l.Log, Entry{At: now, Kind: EntryBeat, Amount: amount, Source: source, Details: details})

	for l.Beats >= BeatsPerExperience {
		l.Beats -= BeatsPerExperience
		l.Experience++
		l.Log = append(l.Log, Entry{At: now, Kind: EntryExperience, Amount: 1, Source: "beats"})
	}
}

// ClaimBeat validates a player-claimed beat source and awards one beat.
func (l *Ledger) ClaimBeat(now time.Time, source string) error {
	if !ValidBeatSource(source) {
		return errors.WithMetadata(errors.CodeXPBadSource, "invalid beat source",
			map[string]string{"source": source})
	}
	l.AwardBeats(now, 1, normalize(source), "")
	return nil
}

// Spend deducts experience for a purchase.
func (l *Ledger) Spend(now time.Time, amount int, reason string) error {
	if amount <= 0 {
		return nil
	}
	if amount > l.Experience {
		return errors.WithMetadata(errors.CodeXPInsufficient, "not enough experience",
			map[string]string{"reason": reason})
	}
	l.Experience -= amount
	l.Spent += amount
	l.Log = append(l.Log, Entry{At: now, Kind: EntryExperience, Amount: -amount, Source: reason})
	return nil
}

// Buy prices a purchase for the buyer and spends the experience. The
// cost is returned for display.
func (l *Ledger) Buy(now time.Time, buyer Buyer, purchase Purchase) (int, error) {
	cost := Cost(buyer, purchase)
	if cost == 0 {
		return 0, errors.WithMetadata(errors.CodeXPUnknownStat, "nothing to buy",
			map[string]string{"type": purchase.Type, "name": purchase.Name})
	}
	if err := l.Spend(now, cost, purchase.Type+": "+purchase.Name); err != nil {
		return 0, err
	}
	return cost, nil
}

// Recent returns up to limit newest log entries, newest first.
func (l *Ledger) Recent(limit int) []Entry {
	if limit <= 0 || limit > len(l.Log) {
		limit = len(l.Log)
	}
	out := make([]Entry, limit)
	for i := 0; i < limit; i++ {
		out[i] = l.Log[len(l.Log)-1-i]
	}
	return out
}
