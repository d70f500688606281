package character

import (
	"time"

	"github.com/soma-satoro/PyReach/internal/game/aspirations"
	"github.com/soma-satoro/PyReach/internal/game/conditions"
	"github.com/soma-satoro/PyReach/internal/game/equipment"
	"github.com/soma-satoro/PyReach/internal/game/health"
	"github.com/soma-satoro/PyReach/internal/game/ratelimit"
	"github.com/soma-satoro/PyReach/internal/game/tilts"
	"github.com/soma-satoro/PyReach/internal/game/xp"
)

// Character is a sheet plus the mutable state a live game accrues:
// damage, conditions, tilts, beats, aspirations and gear. It is the
// unit the store persists.
type Character struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"account_id"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`

	Sheet       *Sheet                `json:"sheet"`
	Health      health.Track          `json:"health"`
	Conditions  []conditions.Instance `json:"conditions,omitempty"`
	Tilts       []tilts.Instance      `json:"tilts,omitempty"`
	XP          xp.Ledger             `json:"xp"`
	Aspirations aspirations.List      `json:"aspirations"`
	Inventory   equipment.Inventory   `json:"inventory"`
	Limits      ratelimit.History     `json:"limits"`
}

// New builds a fresh character for an account with an empty health
// track sized from the sheet.
func New(accountID int64, name string, template xp.Template) *Character {
	sheet := NewSheet(name, template)
	return &Character{
		AccountID: accountID,
		Sheet:     sheet,
		Health:    health.NewTrack(sheet.MaxHealth()),
	}
}

// Name returns the sheet name.
func (c *Character) Name() string {
	if c.Sheet == nil {
		return ""
	}
	return c.Sheet.Name
}

// SyncHealth resizes the health track after a stamina or size change,
// preserving existing damage left to right.
func (c *Character) SyncHealth() {
	want := c.Sheet.MaxHealth()
	if len(c.Health) == want {
		return
	}
	resized := health.NewTrack(want)
	for i, box := range c.Health {
		if i >= len(resized) {
			break
		}
		resized[i] = box
	}
	resized.Compact()
	c.Health = resized
}

// WoundPenalty is the dice penalty from the health track.
func (c *Character) WoundPenalty() int {
	return c.Health.Penalty()
}

// ConditionSet materializes the stored condition instances. Mutations
// must be written back with SetConditions.
func (c *Character) ConditionSet() *conditions.Set {
	return conditions.NewSet(c.Conditions)
}

// SetConditions stores the set's instances back onto the character.
func (c *Character) SetConditions(set *conditions.Set) {
	c.Conditions = set.All()
}

// PurgeExpiredConditions drops conditions that have lapsed and returns
// the names removed.
func (c *Character) PurgeExpiredConditions(now time.Time) []string {
	set := c.ConditionSet()
	expired := set.PurgeExpired(now)
	if len(expired) > 0 {
		c.SetConditions(set)
	}
	return expired
}

// TiltSet materializes the stored tilt instances. Mutations must be
// written back with SetTilts.
func (c *Character) TiltSet() *tilts.Set {
	return tilts.NewSet(c.Tilts)
}

// SetTilts stores the set's instances back onto the character.
func (c *Character) SetTilts(set *tilts.Set) {
	c.Tilts = set.All()
}

// EndCombat converts the character's tilts into their equivalent
// conditions and returns the condition names applied.
func (c *Character) EndCombat(now time.Time) []string {
	tiltSet := c.TiltSet()
	converted := tiltSet.EndCombat()
	c.SetTilts(tiltSet)

	conditionSet := c.ConditionSet()
	var applied []string
	for _, name := range converted {
		if _, ok := conditionSet.Add(name, now, 0); ok {
			applied = append(applied, name)
		}
	}
	c.SetConditions(conditionSet)
	return applied
}

// ResolveCondition resolves a condition and awards the beat when the
// condition grants one.
func (c *Character) ResolveCondition(now time.Time, name string) (beat bool, ok bool) {
	set := c.ConditionSet()
	beat, ok = set.Resolve(name)
	if !ok {
		return false, false
	}
	c.SetConditions(set)
	if beat {
		c.XP.AwardBeats(now, 1, "conditions", name)
	}
	return beat, true
}

// FulfillAspiration fulfills aspiration number and awards the beat.
func (c *Character) FulfillAspiration(now time.Time, number int) (aspirations.Aspiration, error) {
	fulfilled, err := c.Aspirations.Fulfill(now, number)
	if err != nil {
		return aspirations.Aspiration{}, err
	}
	c.XP.AwardBeats(now, 1, "aspirations", fulfilled.Description)
	return fulfilled, nil
}
