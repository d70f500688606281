package character

import (
	"testing"

	"github.com/soma-satoro/PyReach/internal/game/xp"
	platformerrors "github.com/soma-satoro/PyReach/internal/platform/errors"
)

func TestNewSheetDefaults(t *testing.T) {
	sheet := NewSheet("Beren", xp.Mortal)

	if sheet.Attribute("strength") != 1 {
		t.Errorf("strength = %d, want 1", sheet.Attribute("strength"))
	}
	if sheet.Skill("brawl") != 0 {
		t.Errorf("brawl = %d, want 0", sheet.Skill("brawl"))
	}
	if sheet.Size != 5 || sheet.Integrity != 7 {
		t.Errorf("size/integrity = %d/%d, want 5/7", sheet.Size, sheet.Integrity)
	}
	if sheet.Willpower != 2 {
		t.Errorf("willpower = %d, want resolve+composure = 2", sheet.Willpower)
	}
}

func TestDerivedStats(t *testing.T) {
	sheet := NewSheet("Beren", xp.Mortal)
	sheet.SetStat("strength", 3)
	sheet.SetStat("dexterity", 2)
	sheet.SetStat("stamina", 3)
	sheet.SetStat("wits", 3)
	sheet.SetStat("composure", 2)
	sheet.SetStat("athletics", 2)

	if got := sheet.MaxHealth(); got != 8 {
		t.Errorf("MaxHealth = %d, want 8", got)
	}
	if got := sheet.Defense(); got != 4 {
		t.Errorf("Defense = %d, want min(3,2)+2 = 4", got)
	}
	if got := sheet.Speed(); got != 10 {
		t.Errorf("Speed = %d, want 10", got)
	}
	if got := sheet.Initiative(); got != 4 {
		t.Errorf("Initiative = %d, want 4", got)
	}
	if got := sheet.MaxWillpower(); got != 3 {
		t.Errorf("MaxWillpower = %d, want 3", got)
	}
}

func TestStatLookup(t *testing.T) {
	sheet := NewSheet("Beren", xp.Mortal)
	sheet.SetStat("Animal Ken", 2)
	sheet.SetStat("fast reflexes", 3)

	if dots, err := sheet.Stat("animal_ken"); err != nil || dots != 2 {
		t.Errorf("Stat(animal_ken) = %d, %v", dots, err)
	}
	if dots, err := sheet.Stat("Fast Reflexes"); err != nil || dots != 3 {
		t.Errorf("Stat(Fast Reflexes) = %d, %v", dots, err)
	}
	if _, err := sheet.Stat("moxie"); err == nil {
		t.Error("expected unknown stat to fail")
	} else if platformerrors.CodeOf(err) != platformerrors.CodeCharacterBadStat {
		t.Errorf("error code = %v", platformerrors.CodeOf(err))
	}
}

func TestSetStatValidation(t *testing.T) {
	sheet := NewSheet("Beren", xp.Mortal)

	if err := sheet.SetStat("strength", 0); err == nil {
		t.Error("attribute at 0 accepted")
	}
	if err := sheet.SetStat("brawl", -1); err == nil {
		t.Error("negative dots accepted")
	}
	if err := sheet.SetStat("brawl", 0); err != nil {
		t.Errorf("skill at 0 rejected: %v", err)
	}

	// Setting a merit to 0 removes it.
	sheet.SetStat("resources", 2)
	sheet.SetStat("resources", 0)
	if _, ok := sheet.Merits["resources"]; ok {
		t.Error("merit at 0 not removed")
	}
}

func TestWillpowerSpendAndRegain(t *testing.T) {
	sheet := NewSheet("Beren", xp.Mortal)
	sheet.SetStat("resolve", 2)
	sheet.SetStat("composure", 2)
	sheet.Willpower = sheet.MaxWillpower()

	for i := 0; i < 4; i++ {
		if err := sheet.SpendWillpower(); err != nil {
			t.Fatalf("spend %d: %v", i, err)
		}
	}
	if err := sheet.SpendWillpower(); err == nil {
		t.Error("spent willpower below zero")
	}

	sheet.RegainWillpower(10)
	if sheet.Willpower != 4 {
		t.Errorf("willpower = %d, want capped at 4", sheet.Willpower)
	}
}

func TestBuyerCarriesTemplateFacts(t *testing.T) {
	sheet := NewSheet("Ghost", xp.Werewolf)
	sheet.Auspice = "Irraka"
	sheet.Tribe = "Hunters in Darkness"

	buyer := sheet.Buyer()
	if buyer.Template != xp.Werewolf || buyer.Auspice != "Irraka" || buyer.Tribe != "Hunters in Darkness" {
		t.Errorf("buyer = %+v", buyer)
	}
}
