// Package conditions manages Chronicles of Darkness conditions:
// lingering states that shape play and grant a beat when resolved.
package conditions

import (
	"sort"
	"strings"
	"time"
)

// Definition describes a condition from the rules. Definitions are
// immutable; characters hold Instances.
type Definition struct {
	Name        string
	Description string

	// Persistent conditions never expire on their own and grant a beat
	// periodically rather than only on resolution.
	Persistent bool

	// Resolution describes how the condition is resolved.
	Resolution string

	// Sources describes what typically inflicts the condition.
	Sources string

	// GrantsBeat reports whether resolving the condition awards a beat.
	GrantsBeat bool
}

// Instance is a condition applied to a character.
type Instance struct {
	Name      string     `json:"name"`
	AppliedAt time.Time  `json:"applied_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether the instance has lapsed at the given time.
func (i Instance) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && now.After(*i.ExpiresAt)
}

// Key normalizes a condition name for registry lookup.
func Key(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// Lookup finds a condition definition by name or key.
func Lookup(name string) (Definition, bool) {
	def, ok := Standard[Key(name)]
	return def, ok
}

// Names returns all registry condition names, sorted.
func Names() []string {
	names := make([]string, 0, len(Standard))
	for _, def := range Standard {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}

// Set is a character's active conditions, keyed by condition key.
type Set struct {
	active map[string]Instance
}

// NewSet builds a Set from stored instances, silently dropping entries
// whose definitions no longer exist.
func NewSet(instances []Instance) *Set {
	set := &Set{active: make(map[string]Instance)}
	for _, instance := range instances {
		if _, ok := Lookup(instance.Name); ok {
			set.active[Key(instance.Name)] = instance
		}
	}
	return set
}

// Add applies a condition, replacing an existing instance of the same
// condition. Duration zero means no expiry.
func (s *Set) Add(name string, now time.Time, duration time.Duration) (Instance, bool) {
	def, ok := Lookup(name)
	if !ok {
		return Instance{}, false
	}
	instance := Instance{Name: def.Name, AppliedAt: now}
	if duration > 0 && !def.Persistent {
		expires := now.Add(duration)
		instance.ExpiresAt = &expires
	}
	s.active[Key(def.Name)] = instance
	return instance, true
}

// Remove drops a condition without resolution. Returns false when the
// character does not have it.
func (s *Set) Remove(name string) bool {
	key := Key(name)
	if _, ok := s.active[key]; !ok {
		return false
	}
	delete(s.active, key)
	return true
}

// Resolve removes a condition through its resolution method and
// reports whether a beat is earned.
func (s *Set) Resolve(name string) (beat bool, ok bool) {
	key := Key(name)
	if _, held := s.active[key]; !held {
		return false, false
	}
	delete(s.active, key)
	def, _ := Lookup(name)
	return def.GrantsBeat, true
}

// Has reports whether the condition is active.
func (s *Set) Has(name string) bool {
	_, ok := s.active[Key(name)]
	return ok
}

// PurgeExpired removes lapsed instances and returns their names.
func (s *Set) PurgeExpired(now time.Time) []string {
	var expired []string
	for key, instance := range s.active {
		if instance.Expired(now) {
			expired = append(expired, instance.Name)
			delete(s.active, key)
		}
	}
	sort.Strings(expired)
	return expired
}

// All returns active instances sorted by name.
func (s *Set) All() []Instance {
	out := make([]Instance, 0, len(s.active))
	for _, instance := range s.active {
		out = append(out, instance)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
