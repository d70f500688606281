// Package health implements World of Darkness health tracks: a fixed
// row of boxes filled left to right, with more severe damage pushing
// less severe damage toward the right edge.
package health

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Damage is a damage type. Severity ordering is Aggravated > Lethal >
// Bashing > None.
type Damage int

const (
	None Damage = iota
	Bashing
	Lethal
	Aggravated
)

// String returns the canonical lowercase name.
func (d Damage) String() string {
	switch d {
	case Bashing:
		return "bashing"
	case Lethal:
		return "lethal"
	case Aggravated:
		return "aggravated"
	default:
		return "none"
	}
}

// ParseDamage accepts full names and single-letter shorthands
// (b, l, a). Empty input defaults to bashing.
func ParseDamage(s string) (Damage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "b", "bashing":
		return Bashing, nil
	case "l", "lethal":
		return Lethal, nil
	case "a", "agg", "aggravated":
		return Aggravated, nil
	default:
		return None, fmt.Errorf("unknown damage type %q", s)
	}
}

// Track is a health track. Index 0 is the leftmost (most severe) box.
type Track []Damage

// NewTrack returns an empty track with the given number of boxes.
func NewTrack(size int) Track {
	if size < 1 {
		size = 1
	}
	return make(Track, size)
}

// Clone returns an independent copy.
func (t Track) Clone() Track {
	out := make(Track, len(t))
	copy(out, t)
	return out
}

// Count returns the number of boxes holding the given damage type.
func (t Track) Count(damage Damage) int {
	n := 0
	for _, box := range t {
		if box == damage {
			n++
		}
	}
	return n
}

// Full reports whether every box is filled.
func (t Track) Full() bool {
	return t.Count(None) == 0
}

// Apply applies amount points of damage and returns how many were
// placed. Bashing fills the leftmost empty box. Lethal inserts at the
// leftmost box that is not lethal or aggravated, pushing bashing
// right. Aggravated inserts at the leftmost non-aggravated box,
// pushing everything right. Damage pushed off the right edge is lost.
func (t Track) Apply(amount int, damage Damage) int {
	applied := 0
	for i := 0; i < amount; i++ {
		pos := t.insertPos(damage)
		if pos == -1 {
			break
		}
		t.insertWithPush(pos, damage)
		applied++
	}
	return applied
}

func (t Track) insertPos(damage Damage) int {
	switch damage {
	case Bashing:
		for i, box := range t {
			if box == None {
				return i
			}
		}
	case Lethal:
		for i, box := range t {
			if box == None || box == Bashing {
				return i
			}
		}
	case Aggravated:
		for i, box := range t {
			if box != Aggravated {
				return i
			}
		}
	}
	return -1
}

// insertWithPush places damage at pos and re-packs everything that was
// at or after pos into the remaining boxes, dropping overflow.
func (t Track) insertWithPush(pos int, damage Damage) {
	pushed := make([]Damage, 0, len(t)-pos)
	for i := pos; i < len(t); i++ {
		if t[i] != None {
			pushed = append(pushed, t[i])
		}
		t[i] = None
	}
	t[pos] = damage
	cursor := pos + 1
	for _, old := range pushed {
		if cursor >= len(t) {
			break
		}
		t[cursor] = old
		cursor++
	}
}

// Heal removes up to amount boxes of the given damage type, rightmost
// first, then compacts the track so damage stays packed to the left.
// Returns the number of boxes healed.
func (t Track) Heal(amount int, damage Damage) int {
	healed := 0
	for i := len(t) - 1; i >= 0 && healed < amount; i-- {
		if t[i] == damage {
			t[i] = None
			healed++
		}
	}
	t.Compact()
	return healed
}

// Compact slides all damage left, removing gaps while preserving order.
func (t Track) Compact() {
	cursor := 0
	for i := 0; i < len(t); i++ {
		if t[i] != None {
			t[cursor] = t[i]
			if cursor != i {
				t[i] = None
			}
			cursor++
		}
	}
}

// Clear empties the track.
func (t Track) Clear() {
	for i := range t {
		t[i] = None
	}
}

// Penalty returns the wound penalty: -1, -2 or -3 as the last three
// boxes fill, 0 otherwise.
func (t Track) Penalty() int {
	size := len(t)
	if size < 3 {
		return 0
	}
	penalty := 0
	for i := size - 3; i < size; i++ {
		if t[i] != None {
			penalty++
		}
	}
	return -penalty
}

// Incapacitated reports whether the track is full with the rightmost
// box holding lethal or worse.
func (t Track) Incapacitated() bool {
	return t.Full() && t[len(t)-1] >= Lethal
}

// String renders the track in ASCII: [ ] empty, [/] bashing,
// [X] lethal, [*] aggravated.
func (t Track) String() string {
	var b strings.Builder
	for _, box := range t {
		switch box {
		case Bashing:
			b.WriteString("[/]")
		case Lethal:
			b.WriteString("[X]")
		case Aggravated:
			b.WriteString("[*]")
		default:
			b.WriteString("[ ]")
		}
	}
	return b.String()
}

// MarshalJSON stores the track as an array of damage names so rows
// remain readable in the database.
func (t Track) MarshalJSON() ([]byte, error) {
	names := make([]string, len(t))
	for i, box := range t {
		names[i] = box.String()
	}
	return json.Marshal(names)
}

// UnmarshalJSON restores a track serialized by MarshalJSON.
func (t *Track) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	out := make(Track, len(names))
	for i, name := range names {
		if name == "none" {
			out[i] = None
			continue
		}
		damage, err := ParseDamage(name)
		if err != nil {
			return err
		}
		out[i] = damage
	}
	*t = out
	return nil
}
