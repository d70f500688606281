// Package tilts manages combat tilts: short-lived combat effects on
// characters (personal) or whole scenes (environmental). Outside
// combat a tilt converts to its equivalent condition.
package tilts

import (
	"sort"
	"strings"
)

// Kind distinguishes who a tilt applies to.
type Kind string

const (
	// Personal tilts affect a single character.
	Personal Kind = "personal"
	// Environmental tilts affect everyone in a scene.
	Environmental Kind = "environmental"
)

// Definition describes a tilt from the rules.
type Definition struct {
	Name        string
	Description string
	Kind        Kind

	// Duration is the default duration in combat turns; zero means the
	// tilt lasts until resolved.
	Duration int

	// Effects summarizes the mechanical effects.
	Effects string

	// Resolution describes how the tilt ends.
	Resolution string

	// ConditionEquivalent names the condition this tilt becomes
	// outside combat. Empty when there is no equivalent.
	ConditionEquivalent string
}

// Instance is a tilt in effect during combat.
type Instance struct {
	Name string `json:"name"`

	// TurnsRemaining counts down each combat turn; nil means the tilt
	// persists until resolved.
	TurnsRemaining *int `json:"turns_remaining,omitempty"`
}

// Key normalizes a tilt name for registry lookup.
func Key(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// Lookup finds a tilt definition by name or key.
func Lookup(name string) (Definition, bool) {
	def, ok := Standard[Key(name)]
	return def, ok
}

// Names returns registry tilt names of the given kind, sorted. An
// empty kind returns every tilt.
func Names(kind Kind) []string {
	var names []string
	for _, def := range Standard {
		if kind == "" || def.Kind == kind {
			names = append(names, def.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Set is the tilts active on one character or scene.
type Set struct {
	active map[string]*Instance
}

// NewSet builds a Set from stored instances, dropping unknown tilts.
func NewSet(instances []Instance) *Set {
	set := &Set{active: make(map[string]*Instance)}
	for _, instance := range instances {
		if _, ok := Lookup(instance.Name); ok {
			copied := instance
			set.active[Key(instance.Name)] = &copied
		}
	}
	return set
}

// Add applies a tilt using its default duration. Re-applying an active
// tilt refreshes the duration.
func (s *Set) Add(name string) (Instance, bool) {
	def, ok := Lookup(name)
	if !ok {
		return Instance{}, false
	}
	instance := &Instance{Name: def.Name}
	if def.Duration > 0 {
		turns := def.Duration
		instance.TurnsRemaining = &turns
	}
	s.active[Key(def.Name)] = instance
	return *instance, true
}

// Remove ends a tilt. Returns false when not active.
func (s *Set) Remove(name string) bool {
	key := Key(name)
	if _, ok := s.active[key]; !ok {
		return false
	}
	delete(s.active, key)
	return true
}

// Has reports whether the tilt is active.
func (s *Set) Has(name string) bool {
	_, ok := s.active[Key(name)]
	return ok
}

// AdvanceTurn decrements every timed tilt by one turn and removes the
// ones that lapse, returning their names sorted.
func (s *Set) AdvanceTurn() []string {
	var lapsed []string
	for key, instance := range s.active {
		if instance.TurnsRemaining == nil {
			continue
		}
		*instance.TurnsRemaining--
		if *instance.TurnsRemaining <= 0 {
			lapsed = append(lapsed, instance.Name)
			delete(s.active, key)
		}
	}
	sort.Strings(lapsed)
	return lapsed
}

// EndCombat converts active tilts into their equivalent condition
// names and clears the set. Tilts without an equivalent simply end.
func (s *Set) EndCombat() []string {
	var converted []string
	for key, instance := range s.active {
		if def, ok := Lookup(instance.Name); ok && def.ConditionEquivalent != "" {
			converted = append(converted, def.ConditionEquivalent)
		}
		delete(s.active, key)
	}
	sort.Strings(converted)
	return converted
}

// All returns active instances sorted by name.
func (s *Set) All() []Instance {
	out := make([]Instance, 0, len(s.active))
	for _, instance := range s.active {
		out = append(out, *instance)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
