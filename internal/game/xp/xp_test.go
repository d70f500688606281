package xp

import (
	"errors"
	"testing"
	"time"

	platformerrors "github.com/soma-satoro/PyReach/internal/platform/errors"
)

func TestGeneralCosts(t *testing.T) {
	buyer := Buyer{Template: Mortal}
	tests := []struct {
		name     string
		purchase Purchase
		want     int
	}{
		{"attribute one dot", Purchase{Type: "attribute", Name: "strength", Current: 2, Target: 3}, 4},
		{"attribute two dots", Purchase{Type: "attribute", Name: "wits", Current: 1, Target: 3}, 8},
		{"skill", Purchase{Type: "skill", Name: "brawl", Current: 0, Target: 2}, 4},
		{"merit", Purchase{Type: "merit", Name: "resources", Current: 1, Target: 3}, 2},
		{"specialty is flat", Purchase{Type: "skill_specialty", Name: "knives"}, 1},
		{"integrity", Purchase{Type: "integrity", Current: 5, Target: 7}, 4},
		{"no dots", Purchase{Type: "attribute", Current: 3, Target: 3}, 0},
		{"negative dots", Purchase{Type: "skill", Current: 3, Target: 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cost(buyer, tt.purchase); got != tt.want {
				t.Errorf("Cost() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWerewolfGiftAffinity(t *testing.T) {
	buyer := Buyer{Template: Werewolf, Auspice: "Rahu", Tribe: "Blood Talons"}

	// Full moon is a Rahu auspice gift; rage is a Blood Talons tribe
	// gift; weather belongs to neither.
	if got := Cost(buyer, Purchase{Type: "gift", Name: "Full Moon", Current: 0, Target: 1}); got != 3 {
		t.Errorf("auspice gift cost = %d, want 3", got)
	}
	if got := Cost(buyer, Purchase{Type: "gift", Name: "Rage", Current: 0, Target: 1}); got != 3 {
		t.Errorf("tribe gift cost = %d, want 3", got)
	}
	if got := Cost(buyer, Purchase{Type: "gift", Name: "Weather", Current: 0, Target: 1}); got != 5 {
		t.Errorf("non-affinity gift cost = %d, want 5", got)
	}
}

func TestVampireDisciplineCosts(t *testing.T) {
	buyer := Buyer{Template: Vampire, Clan: "Daeva"}

	if got := Cost(buyer, Purchase{Type: "discipline", Name: "Majesty", Current: 1, Target: 2}); got != 3 {
		t.Errorf("in-clan discipline = %d, want 3", got)
	}
	if got := Cost(buyer, Purchase{Type: "discipline", Name: "Dominate", Current: 1, Target: 2}); got != 4 {
		t.Errorf("out-of-clan discipline = %d, want 4", got)
	}
	if got := Cost(buyer, Purchase{Type: "blood_potency", Current: 1, Target: 2}); got != 5 {
		t.Errorf("blood potency = %d, want 5", got)
	}
}

func TestChangelingContractCosts(t *testing.T) {
	buyer := Buyer{Template: Changeling, FavoredContracts: []string{"Crown Royal Hostile Takeover"}}

	tests := []struct {
		name string
		want int
	}{
		{"Crown Royal Hostile Takeover", 3}, // favored royal
		{"Some Royal Contract", 4},
		{"Plain Contract", 3},
	}
	for _, tt := range tests {
		got := Cost(buyer, Purchase{Type: "contract", Name: tt.name, Current: 0, Target: 1})
		if got != tt.want {
			t.Errorf("contract %q = %d, want %d", tt.name, got, tt.want)
		}
	}

	if got := Cost(buyer, Purchase{Type: "wyrd", Current: 1, Target: 2}); got != 5 {
		t.Errorf("wyrd = %d, want 5", got)
	}
}

func TestMageArcanumLimits(t *testing.T) {
	buyer := Buyer{Template: Mage, Path: "Obrimos"}

	// Forces is ruling (limit 5): four dots at 4 each.
	if got := Cost(buyer, Purchase{Type: "arcanum", Name: "Forces", Current: 0, Target: 4}); got != 16 {
		t.Errorf("ruling arcanum to 4 = %d, want 16", got)
	}
	// Death is inferior (limit 2): two dots at 4, one above at 5.
	if got := Cost(buyer, Purchase{Type: "arcanum", Name: "Death", Current: 0, Target: 3}); got != 13 {
		t.Errorf("inferior arcanum to 3 = %d, want 13", got)
	}
	// Mind is common (limit 4): dot five costs 5.
	if got := Cost(buyer, Purchase{Type: "arcanum", Name: "Mind", Current: 4, Target: 5}); got != 5 {
		t.Errorf("common arcanum fifth dot = %d, want 5", got)
	}
}

func TestLedgerBeatConversion(t *testing.T) {
	ledger := &Ledger{}
	now := time.Now()

	ledger.AwardBeats(now, 4, "story", "")
	if ledger.Beats != 4 || ledger.Experience != 0 {
		t.Fatalf("beats=%d xp=%d, want 4/0", ledger.Beats, ledger.Experience)
	}

	ledger.AwardBeats(now, 3, "scene", "")
	if ledger.Beats != 2 || ledger.Experience != 1 {
		t.Fatalf("beats=%d xp=%d, want 2/1", ledger.Beats, ledger.Experience)
	}
}

func TestLedgerClaimBeatValidatesSource(t *testing.T) {
	ledger := &Ledger{}
	now := time.Now()

	if err := ledger.ClaimBeat(now, "Dramatic Failure"); err != nil {
		t.Fatalf("claim valid source: %v", err)
	}
	if ledger.Beats != 1 {
		t.Errorf("beats = %d, want 1", ledger.Beats)
	}

	err := ledger.ClaimBeat(now, "winning")
	if err == nil {
		t.Fatal("expected invalid source to be rejected")
	}
	if platformerrors.CodeOf(err) != platformerrors.CodeXPBadSource {
		t.Errorf("error code = %v, want %v", platformerrors.CodeOf(err), platformerrors.CodeXPBadSource)
	}
}

func TestLedgerSpendInsufficient(t *testing.T) {
	ledger := &Ledger{Experience: 3}
	err := ledger.Spend(time.Now(), 5, "attribute: strength")
	if err == nil {
		t.Fatal("expected insufficient experience error")
	}
	if !errors.Is(err, platformerrors.New(platformerrors.CodeXPInsufficient, "")) {
		t.Errorf("unexpected error: %v", err)
	}
	if ledger.Experience != 3 {
		t.Errorf("experience changed on failed spend: %d", ledger.Experience)
	}
}

func TestLedgerBuy(t *testing.T) {
	ledger := &Ledger{Experience: 10}
	buyer := Buyer{Template: Mortal}
	now := time.Now()

	cost, err := ledger.Buy(now, buyer, Purchase{Type: "attribute", Name: "stamina", Current: 2, Target: 3})
	if err != nil {
		t.Fatalf("buy: %v", err)
	}
	if cost != 4 {
		t.Errorf("cost = %d, want 4", cost)
	}
	if ledger.Experience != 6 || ledger.Spent != 4 {
		t.Errorf("xp=%d spent=%d, want 6/4", ledger.Experience, ledger.Spent)
	}
}

func TestLedgerRecentNewestFirst(t *testing.T) {
	ledger := &Ledger{}
	base := time.Now()
	ledger.AwardBeats(base, 1, "first", "")
	ledger.AwardBeats(base.Add(time.Minute), 1, "second", "")
	ledger.AwardBeats(base.Add(2*time.Minute), 1, "third", "")

	recent := ledger.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("len = %d, want 2", len(recent))
	}
	if recent[0].Source != "third" || recent[1].Source != "second" {
		t.Errorf("order wrong: %s, %s", recent[0].Source, recent[1].Source)
	}
}
