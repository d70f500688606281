// Package equipment holds the weapon and armor catalog from the Hurt
// Locker supplement and per-character inventories.
package equipment

import (
	"sort"
	"strings"

	"github.com/soma-satoro/PyReach/internal/platform/errors"
)

// WeaponType distinguishes attack pools: melee uses Strength +
// Weaponry, ranged Dexterity + Firearms, thrown Dexterity + Athletics.
type WeaponType string

const (
	Melee  WeaponType = "melee"
	Ranged WeaponType = "ranged"
	Thrown WeaponType = "thrown"
)

// Weapon is one catalog weapon.
type Weapon struct {
	Name          string
	Damage        int // added to attack successes
	InitiativeMod int
	Type          WeaponType
	Size          int
	StrengthReq   int
	Availability  int
	Tags          string // comma-separated special tags
	Capacity      string // magazine descriptor for ranged weapons
}

// HasTag reports whether the weapon carries the tag.
func (w Weapon) HasTag(tag string) bool {
	for _, t := range strings.Split(w.Tags, ",") {
		if strings.EqualFold(strings.TrimSpace(t), tag) {
			return true
		}
	}
	return false
}

// IsBrawl reports whether the weapon uses Strength + Brawl instead of
// Weaponry (fist weapons such as brass knuckles).
func (w Weapon) IsBrawl() bool {
	return w.HasTag("brawl")
}

// UsesDexterity reports whether a melee weapon swings with Dexterity +
// Weaponry (whips and similar).
func (w Weapon) UsesDexterity() bool {
	return w.Type == Melee && w.HasTag("dexterity")
}

// AppliesDefense reports whether the target's Defense applies against
// this weapon. Firearms ignore Defense unless the weapon is slow.
func (w Weapon) AppliesDefense() bool {
	if w.HasTag("slow") {
		return true
	}
	return w.Type == Melee || w.Type == Thrown || w.IsBrawl()
}

// Armor is one catalog armor entry.
type Armor struct {
	Name           string
	GeneralArmor   int // reduces total damage
	BallisticArmor int // downgrades firearm lethal to bashing
	StrengthReq    int
	DefensePenalty int
	SpeedPenalty   int
	Availability   int
	Notes          string
}

// Effective returns the (ballistic, general) armor ratings against an
// attack after armor piercing. Ballistic armor absorbs piercing before
// general armor does.
func (a Armor) Effective(ballistic bool, armorPiercing int) (int, int) {
	if !ballistic {
		general := a.GeneralArmor - armorPiercing
		if general < 0 {
			general = 0
		}
		return 0, general
	}
	effectiveBallistic := a.BallisticArmor - armorPiercing
	if effectiveBallistic < 0 {
		effectiveBallistic = 0
	}
	remaining := armorPiercing - a.BallisticArmor
	if remaining < 0 {
		remaining = 0
	}
	general := a.GeneralArmor - remaining
	if general < 0 {
		general = 0
	}
	return effectiveBallistic, general
}

func key(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// LookupWeapon finds a weapon by name or key.
func LookupWeapon(name string) (Weapon, bool) {
	weapon, ok := Weapons[key(name)]
	return weapon, ok
}

// LookupArmor finds an armor entry by name or key.
func LookupArmor(name string) (Armor, bool) {
	armor, ok := Armors[key(name)]
	return armor, ok
}

// WeaponNames returns catalog weapon names of the given type, sorted.
// An empty type returns everything.
func WeaponNames(weaponType WeaponType) []string {
	var names []string
	for _, weapon := range Weapons {
		if weaponType == "" || weapon.Type == weaponType {
			names = append(names, weapon.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Inventory is the equipment a character carries.
type Inventory struct {
	Weapons []string `json:"weapons"`
	Armor   []string `json:"armor"`
}

// AddWeapon adds a catalog weapon by name.
func (inv *Inventory) AddWeapon(name string) (Weapon, error) {
	weapon, ok := LookupWeapon(name)
	if !ok {
		return Weapon{}, errors.WithMetadata(errors.CodeEquipmentUnknown, "unknown weapon",
			map[string]string{"name": name})
	}
	inv.Weapons = append(inv.Weapons, weapon.Name)
	return weapon, nil
}

// AddArmor adds a catalog armor entry by name.
func (inv *Inventory) AddArmor(name string) (Armor, error) {
	armor, ok := LookupArmor(name)
	if !ok {
		return Armor{}, errors.WithMetadata(errors.CodeEquipmentUnknown, "unknown armor",
			map[string]string{"name": name})
	}
	inv.Armor = append(inv.Armor, armor.Name)
	return armor, nil
}

// Remove drops the first matching item, weapon or armor. Returns false
// when the character does not carry it.
func (inv *Inventory) Remove(name string) bool {
	target := key(name)
	for i, carried := range inv.Weapons {
		if key(carried) == target {
			inv.Weapons = append(inv.Weapons[:i], inv.Weapons[i+1:]...)
			return true
		}
	}
	for i, carried := range inv.Armor {
		if key(carried) == target {
			inv.Armor = append(inv.Armor[:i], inv.Armor[i+1:]...)
			return true
		}
	}
	return false
}
