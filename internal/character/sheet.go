// Package character models Chronicles of Darkness character sheets and
// the live state layered on top of them.
package character

import (
	"sort"
	"strings"

	"github.com/soma-satoro/PyReach/internal/game/xp"
	"github.com/soma-satoro/PyReach/internal/platform/errors"
)

// Attribute and skill names, normalized to lowercase underscores.
var attributeNames = []string{
	// Mental
	"intelligence", "wits", "resolve",
	// Physical
	"strength", "dexterity", "stamina",
	// Social
	"presence", "manipulation", "composure",
}

var skillNames = []string{
	// Mental
	"academics", "computer", "crafts", "investigation",
	"medicine", "occult", "politics", "science",
	// Physical
	"athletics", "brawl", "drive", "firearms",
	"larceny", "stealth", "survival", "weaponry",
	// Social
	"animal_ken", "empathy", "expression", "intimidation",
	"persuasion", "socialize", "streetwise", "subterfuge",
}

// Normalize lowercases a stat name and replaces spaces with
// underscores so "Animal Ken" and "animal_ken" match.
func Normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// ValidAttribute reports whether name is one of the nine attributes.
func ValidAttribute(name string) bool {
	key := Normalize(name)
	for _, attr := range attributeNames {
		if attr == key {
			return true
		}
	}
	return false
}

// ValidSkill reports whether name is one of the 24 skills.
func ValidSkill(name string) bool {
	key := Normalize(name)
	for _, skill := range skillNames {
		if skill == key {
			return true
		}
	}
	return false
}

// AttributeNames returns the nine attribute keys in book order.
func AttributeNames() []string {
	out := make([]string, len(attributeNames))
	copy(out, attributeNames)
	return out
}

// SkillNames returns the 24 skill keys in book order.
func SkillNames() []string {
	out := make([]string, len(skillNames))
	copy(out, skillNames)
	return out
}

// Sheet is the persistent character sheet: the dots a player buys and
// the template facts that shape advancement.
type Sheet struct {
	Name      string      `json:"name"`
	Template  xp.Template `json:"template"`
	Concept   string      `json:"concept,omitempty"`
	Virtue    string      `json:"virtue,omitempty"`
	Vice      string      `json:"vice,omitempty"`

	// Template-specific facts. Only the fields matching Template are
	// meaningful.
	Auspice          string   `json:"auspice,omitempty"`
	Tribe            string   `json:"tribe,omitempty"`
	Clan             string   `json:"clan,omitempty"`
	Covenant         string   `json:"covenant,omitempty"`
	Path             string   `json:"path,omitempty"`
	Order            string   `json:"order,omitempty"`
	Seeming          string   `json:"seeming,omitempty"`
	Kith             string   `json:"kith,omitempty"`
	FavoredContracts []string `json:"favored_contracts,omitempty"`

	Attributes map[string]int `json:"attributes"`
	Skills     map[string]int `json:"skills"`
	Merits     map[string]int `json:"merits,omitempty"`

	// Specialties maps skill key to specialty names.
	Specialties map[string][]string `json:"specialties,omitempty"`

	Size      int `json:"size"`
	Integrity int `json:"integrity"`

	// Willpower is current points; the maximum is derived.
	Willpower int `json:"willpower"`

	// PowerStat is the template power trait: primal urge, blood
	// potency, gnosis or wyrd. Zero for mortals.
	PowerStat int `json:"power_stat,omitempty"`
}

// NewSheet returns a sheet with every attribute at 1, skills at 0 and
// the mortal defaults (size 5, integrity 7).
func NewSheet(name string, template xp.Template) *Sheet {
	sheet := &Sheet{
		Name:       name,
		Template:   template,
		Attributes: make(map[string]int, len(attributeNames)),
		Skills:     make(map[string]int, len(skillNames)),
		Size:       5,
		Integrity:  7,
	}
	for _, attr := range attributeNames {
		sheet.Attributes[attr] = 1
	}
	for _, skill := range skillNames {
		sheet.Skills[skill] = 0
	}
	sheet.Willpower = sheet.MaxWillpower()
	return sheet
}

// Attribute returns a dot rating, defaulting missing attributes to 1.
func (s *Sheet) Attribute(name string) int {
	if dots, ok := s.Attributes[Normalize(name)]; ok {
		return dots
	}
	return 1
}

// Skill returns a dot rating; unknown skills are 0.
func (s *Sheet) Skill(name string) int {
	return s.Skills[Normalize(name)]
}

// Stat resolves a name against attributes, then skills, then merits.
func (s *Sheet) Stat(name string) (int, error) {
	key := Normalize(name)
	if ValidAttribute(key) {
		return s.Attribute(key), nil
	}
	if ValidSkill(key) {
		return s.Skill(key), nil
	}
	if dots, ok := s.Merits[key]; ok {
		return dots, nil
	}
	return 0, errors.WithMetadata(errors.CodeCharacterBadStat, "unknown stat",
		map[string]string{"stat": name})
}

// SetStat updates an attribute, skill or merit dot rating. Attribute
// and skill names must exist; any merit name is accepted.
func (s *Sheet) SetStat(name string, dots int) error {
	if dots < 0 {
		return errors.New(errors.CodeCharacterBadStat, "dots cannot be negative")
	}
	key := Normalize(name)
	switch {
	case ValidAttribute(key):
		if dots < 1 {
			return errors.New(errors.CodeCharacterBadStat, "attributes cannot drop below 1")
		}
		s.Attributes[key] = dots
	case ValidSkill(key):
		s.Skills[key] = dots
	default:
		if s.Merits == nil {
			s.Merits = make(map[string]int)
		}
		if dots == 0 {
			delete(s.Merits, key)
		} else {
			s.Merits[key] = dots
		}
	}
	return nil
}

// MaxHealth is size plus stamina.
func (s *Sheet) MaxHealth() int {
	return s.Size + s.Attribute("stamina")
}

// MaxWillpower is resolve plus composure.
func (s *Sheet) MaxWillpower() int {
	return s.Attribute("resolve") + s.Attribute("composure")
}

// Defense is the lower of wits and dexterity plus athletics.
func (s *Sheet) Defense() int {
	wits := s.Attribute("wits")
	dex := s.Attribute("dexterity")
	if dex < wits {
		wits = dex
	}
	return wits + s.Skill("athletics")
}

// Speed is strength plus dexterity plus 5.
func (s *Sheet) Speed() int {
	return s.Attribute("strength") + s.Attribute("dexterity") + 5
}

// Initiative is dexterity plus composure.
func (s *Sheet) Initiative() int {
	return s.Attribute("dexterity") + s.Attribute("composure")
}

// SpendWillpower deducts one willpower point.
func (s *Sheet) SpendWillpower() error {
	if s.Willpower <= 0 {
		return errors.New(errors.CodeCharacterBadStat, "no willpower remaining")
	}
	s.Willpower--
	return nil
}

// RegainWillpower adds points up to the derived maximum.
func (s *Sheet) RegainWillpower(amount int) {
	s.Willpower += amount
	if max := s.MaxWillpower(); s.Willpower > max {
		s.Willpower = max
	}
}

// Buyer returns the xp.Buyer view of this sheet for pricing purchases.
func (s *Sheet) Buyer() xp.Buyer {
	return xp.Buyer{
		Template:         s.Template,
		Auspice:          s.Auspice,
		Tribe:            s.Tribe,
		Clan:             s.Clan,
		Path:             s.Path,
		FavoredContracts: s.FavoredContracts,
	}
}

// MeritNames returns the sheet's merit keys, sorted.
func (s *Sheet) MeritNames() []string {
	names := make([]string, 0, len(s.Merits))
	for name := range s.Merits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
