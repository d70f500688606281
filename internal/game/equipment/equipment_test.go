package equipment

import (
	"testing"

	platformerrors "github.com/soma-satoro/PyReach/internal/platform/errors"
)

func TestLookupWeapon(t *testing.T) {
	tests := []struct {
		name       string
		wantName   string
		wantDamage int
		wantInit   int
	}{
		{"sword", "Sword", 3, -3},
		{"Battle Axe", "Battle Axe", 3, -4},
		{"  GREAT SWORD  ", "Great Sword", 4, -5},
		{"brass_knuckles", "Brass Knuckles", 0, 0},
	}
	for _, tt := range tests {
		weapon, ok := LookupWeapon(tt.name)
		if !ok {
			t.Errorf("LookupWeapon(%q) not found", tt.name)
			continue
		}
		if weapon.Name != tt.wantName || weapon.Damage != tt.wantDamage || weapon.InitiativeMod != tt.wantInit {
			t.Errorf("LookupWeapon(%q) = %+v", tt.name, weapon)
		}
	}

	if _, ok := LookupWeapon("vorpal blade"); ok {
		t.Error("LookupWeapon found a weapon that is not in the catalog")
	}
}

func TestWeaponPools(t *testing.T) {
	brass, _ := LookupWeapon("brass_knuckles")
	if !brass.IsBrawl() {
		t.Error("brass knuckles should use Brawl")
	}
	whip, _ := LookupWeapon("whip")
	if !whip.UsesDexterity() {
		t.Error("whip should swing with Dexterity")
	}
	sword, _ := LookupWeapon("sword")
	if sword.IsBrawl() || sword.UsesDexterity() {
		t.Errorf("sword pool flags wrong: %+v", sword)
	}
}

func TestAppliesDefense(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"sword", true},
		{"throwing_knife", true},
		{"brass_knuckles", true},
		{"rifle", false},
		{"crossbow", true}, // slow firearms do not outpace Defense
	}
	for _, tt := range tests {
		weapon, ok := LookupWeapon(tt.name)
		if !ok {
			t.Fatalf("missing catalog weapon %q", tt.name)
		}
		if got := weapon.AppliesDefense(); got != tt.want {
			t.Errorf("%s AppliesDefense = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestArmorEffective(t *testing.T) {
	kevlar, ok := LookupArmor("kevlar_vest")
	if !ok {
		t.Fatal("kevlar vest missing from catalog")
	}

	// Melee attack: only general armor applies.
	ballistic, general := kevlar.Effective(false, 0)
	if ballistic != 0 || general != 1 {
		t.Errorf("melee: got %d/%d, want 0/1", ballistic, general)
	}

	// Gunfire: both ratings apply.
	ballistic, general = kevlar.Effective(true, 0)
	if ballistic != 3 || general != 1 {
		t.Errorf("gunfire: got %d/%d, want 3/1", ballistic, general)
	}

	// Armor piercing chews through ballistic armor first.
	ballistic, general = kevlar.Effective(true, 2)
	if ballistic != 1 || general != 1 {
		t.Errorf("AP 2: got %d/%d, want 1/1", ballistic, general)
	}
	ballistic, general = kevlar.Effective(true, 4)
	if ballistic != 0 || general != 0 {
		t.Errorf("AP 4: got %d/%d, want 0/0", ballistic, general)
	}
}

func TestWeaponNamesFiltered(t *testing.T) {
	ranged := WeaponNames(Ranged)
	if len(ranged) == 0 {
		t.Fatal("no ranged weapons in catalog")
	}
	for _, name := range ranged {
		weapon, _ := LookupWeapon(name)
		if weapon.Type != Ranged {
			t.Errorf("%s listed as ranged but has type %s", name, weapon.Type)
		}
	}

	all := WeaponNames("")
	if len(all) != len(Weapons) {
		t.Errorf("WeaponNames(\"\") returned %d names for %d weapons", len(all), len(Weapons))
	}
}

func TestInventory(t *testing.T) {
	inv := &Inventory{}

	weapon, err := inv.AddWeapon("machete")
	if err != nil {
		t.Fatalf("add weapon: %v", err)
	}
	if weapon.Damage != 2 {
		t.Errorf("machete damage = %d", weapon.Damage)
	}

	if _, err := inv.AddWeapon("lightsaber"); err == nil {
		t.Fatal("expected unknown weapon to be rejected")
	} else if platformerrors.CodeOf(err) != platformerrors.CodeEquipmentUnknown {
		t.Errorf("error code = %v", platformerrors.CodeOf(err))
	}

	if _, err := inv.AddArmor("Kevlar Vest"); err != nil {
		t.Fatalf("add armor: %v", err)
	}

	if !inv.Remove("machete") {
		t.Error("failed to remove carried weapon")
	}
	if inv.Remove("machete") {
		t.Error("removed a weapon no longer carried")
	}
	if !inv.Remove("kevlar vest") {
		t.Error("failed to remove carried armor")
	}
	if len(inv.Weapons) != 0 || len(inv.Armor) != 0 {
		t.Errorf("inventory not empty: %+v", inv)
	}
}
