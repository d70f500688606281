package server

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/soma-satoro/PyReach/internal/core/dice"
	"github.com/soma-satoro/PyReach/internal/storage/sqlite"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	store, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	game := NewGame("Testreach", store)
	game.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	game.seed = func() int64 { return 42 }
	return game
}

type testClient struct {
	session *Session
	out     *bytes.Buffer
}

func connect(t *testing.T, game *Game) *testClient {
	t.Helper()
	out := &bytes.Buffer{}
	return &testClient{session: game.NewSession(out, "test"), out: out}
}

// run feeds one line and returns everything written since the last call.
func (c *testClient) run(ctx context.Context, line string) string {
	c.out.Reset()
	c.session.HandleLine(ctx, line)
	return c.out.String()
}

// enterPlay drives a client through registration into play.
func (c *testClient) enterPlay(ctx context.Context, t *testing.T, account, name string) {
	t.Helper()
	if got := c.run(ctx, "register "+account+" hunter2hunter2"); !strings.Contains(got, "created") {
		t.Fatalf("register: %q", got)
	}
	if got := c.run(ctx, "new "+name); !strings.Contains(got, "created") {
		t.Fatalf("new character: %q", got)
	}
	if got := c.run(ctx, "play "+name); !strings.Contains(got, "now playing") {
		t.Fatalf("play: %q", got)
	}
}

func TestLoginFlow(t *testing.T) {
	game := newTestGame(t)
	ctx := context.Background()
	client := connect(t, game)

	if got := client.run(ctx, "connect nobody hunter2hunter2"); !strings.Contains(got, "Error") {
		t.Errorf("unknown account accepted: %q", got)
	}
	if got := client.run(ctx, "register mira short"); !strings.Contains(got, "Error") {
		t.Errorf("weak password accepted: %q", got)
	}
	if got := client.run(ctx, "register mira hunter2hunter2"); !strings.Contains(got, "Account mira created") {
		t.Fatalf("register: %q", got)
	}
	if got := client.run(ctx, "new Selene vampire"); !strings.Contains(got, "Selene (vampire) created") {
		t.Fatalf("new: %q", got)
	}

	// A fresh session logs in with the stored password.
	other := connect(t, game)
	if got := other.run(ctx, "connect mira wrongpassword"); !strings.Contains(got, "Error") {
		t.Errorf("bad password accepted: %q", got)
	}
	if got := other.run(ctx, "connect mira hunter2hunter2"); !strings.Contains(got, "Selene") {
		t.Errorf("character list missing: %q", got)
	}
	if got := other.run(ctx, "play Selene"); !strings.Contains(got, "now playing Selene") {
		t.Fatalf("play: %q", got)
	}
}

func TestPlayRequiresOwnership(t *testing.T) {
	game := newTestGame(t)
	ctx := context.Background()

	owner := connect(t, game)
	owner.enterPlay(ctx, t, "alice", "Aveline")

	thief := connect(t, game)
	thief.run(ctx, "register bob hunter2hunter2")
	if got := thief.run(ctx, "play Aveline"); !strings.Contains(got, "another account") {
		t.Errorf("cross-account play allowed: %q", got)
	}
}

func TestRollIsDeterministicWithSeed(t *testing.T) {
	game := newTestGame(t)
	ctx := context.Background()
	client := connect(t, game)
	client.enterPlay(ctx, t, "alice", "Aveline")

	// strength 1 + brawl 0 with no wounds rolls one die.
	want, err := dice.Roll(dice.Request{Pool: 1, Again: dice.Again10, Seed: 42})
	if err != nil {
		t.Fatalf("roll: %v", err)
	}
	got := client.run(ctx, "+roll strength + brawl")
	if !strings.Contains(got, formatRoll("Aveline", "strength + brawl", 1, want)) {
		t.Errorf("roll output = %q, want it to contain the seeded result %+v", got, want)
	}
}

func TestRollChanceDieOnNegativePool(t *testing.T) {
	game := newTestGame(t)
	ctx := context.Background()
	client := connect(t, game)
	client.enterPlay(ctx, t, "alice", "Aveline")

	got := client.run(ctx, "+roll strength - 5")
	if !strings.Contains(got, "chance die") {
		t.Errorf("expected a chance die: %q", got)
	}
}

func TestParseRollArgs(t *testing.T) {
	tests := []struct {
		in    string
		expr  string
		again dice.Again
		rote  bool
	}{
		{"strength + brawl", "strength + brawl", dice.Again10, false},
		{"wits+composure 9again", "wits+composure", dice.Again9, false},
		{"presence 8-again rote", "presence", dice.Again8, true},
		{"dexterity noagain", "dexterity", dice.AgainNone, false},
	}
	for _, tt := range tests {
		expr, again, rote := parseRollArgs(tt.in)
		if expr != tt.expr || again != tt.again || rote != tt.rote {
			t.Errorf("parseRollArgs(%q) = (%q, %d, %v), want (%q, %d, %v)",
				tt.in, expr, again, rote, tt.expr, tt.again, tt.rote)
		}
	}
}

func TestExtendedActionAccumulates(t *testing.T) {
	game := newTestGame(t)
	ctx := context.Background()
	client := connect(t, game)
	client.enterPlay(ctx, t, "alice", "Aveline")
	client.run(ctx, "+stat wits=4")
	client.run(ctx, "+stat investigation=4")

	got := client.run(ctx, "+extended wits + investigation vs 3/10")
	if !strings.Contains(got, "Extended action:") {
		t.Fatalf("no progress line: %q", got)
	}
	for i := 0; i < 20 && client.session.extended != nil; i++ {
		got = client.run(ctx, "+extended")
	}
	if client.session.extended != nil {
		t.Fatalf("extended action never finished: %q", got)
	}
	if !strings.Contains(got, "succeeds") && !strings.Contains(got, "fails") {
		t.Errorf("no final verdict: %q", got)
	}
}

func TestExtendedStopAbandons(t *testing.T) {
	game := newTestGame(t)
	ctx := context.Background()
	client := connect(t, game)
	client.enterPlay(ctx, t, "alice", "Aveline")

	client.run(ctx, "+extended strength vs 5")
	if client.session.extended == nil {
		t.Fatal("extended action not started")
	}
	client.run(ctx, "+extended/stop")
	if client.session.extended != nil {
		t.Error("extended action not abandoned")
	}
}

func TestDamageAndHeal(t *testing.T) {
	game := newTestGame(t)
	ctx := context.Background()
	client := connect(t, game)
	client.enterPlay(ctx, t, "alice", "Aveline")

	got := client.run(ctx, "+damage 2 l")
	if !strings.Contains(got, "You take 2 lethal damage.") {
		t.Fatalf("damage: %q", got)
	}
	if !strings.Contains(got, "[X][X]") {
		t.Errorf("track not shown: %q", got)
	}

	got = client.run(ctx, "+heal 1 l")
	if !strings.Contains(got, "You heal 1 lethal damage.") {
		t.Fatalf("heal: %q", got)
	}

	// Filling the last three boxes shows a wound penalty.
	client.run(ctx, "+damage 5 b")
	got = client.run(ctx, "+health")
	if !strings.Contains(got, "Wound penalty:") {
		t.Errorf("no wound penalty: %q", got)
	}
}

func TestConditionLifecycle(t *testing.T) {
	game := newTestGame(t)
	ctx := context.Background()
	client := connect(t, game)
	client.enterPlay(ctx, t, "alice", "Aveline")

	if got := client.run(ctx, "+condition/add nonsense"); !strings.Contains(got, "Unknown condition") {
		t.Errorf("unknown condition accepted: %q", got)
	}
	if got := client.run(ctx, "+condition/add shaken"); !strings.Contains(got, "Shaken applied") {
		t.Fatalf("add: %q", got)
	}
	if got := client.run(ctx, "+conditions"); !strings.Contains(got, "Shaken") {
		t.Errorf("list: %q", got)
	}
	got := client.run(ctx, "+condition/resolve shaken")
	if !strings.Contains(got, "you take a beat") {
		t.Errorf("no beat on resolve: %q", got)
	}
	if client.session.character.XP.Beats != 1 {
		t.Errorf("beats = %d, want 1", client.session.character.XP.Beats)
	}
}

func TestConditionExpiryPurgedOnRead(t *testing.T) {
	game := newTestGame(t)
	ctx := context.Background()
	client := connect(t, game)
	client.enterPlay(ctx, t, "alice", "Aveline")

	if got := client.run(ctx, "+condition/add shaken 1h"); !strings.Contains(got, "Shaken applied") {
		t.Fatalf("add: %q", got)
	}
	if got := client.run(ctx, "+conditions"); !strings.Contains(got, "Shaken") {
		t.Fatalf("list: %q", got)
	}

	// Two hours later the instance has lapsed and is purged on read.
	game.now = func() time.Time { return time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC) }
	got := client.run(ctx, "+conditions")
	if !strings.Contains(got, "Lapsed: Shaken") {
		t.Fatalf("expiry not reported: %q", got)
	}
	if !strings.Contains(got, "no conditions") {
		t.Errorf("expired condition still listed: %q", got)
	}

	saved, err := game.store.CharacterByName(ctx, "Aveline")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(saved.Conditions) != 0 {
		t.Errorf("purge not persisted: %v", saved.Conditions)
	}
}

func TestTiltEndCombatConverts(t *testing.T) {
	game := newTestGame(t)
	ctx := context.Background()
	client := connect(t, game)
	client.enterPlay(ctx, t, "alice", "Aveline")

	if got := client.run(ctx, "+tilt/add arm wrack"); !strings.Contains(got, "Arm Wrack applied") {
		t.Fatalf("add: %q", got)
	}
	got := client.run(ctx, "+tilt/end")
	if !strings.Contains(got, "Disabled") {
		t.Errorf("tilt not converted on combat end: %q", got)
	}
	if got := client.run(ctx, "+conditions"); !strings.Contains(got, "Disabled") {
		t.Errorf("condition missing after conversion: %q", got)
	}
}

func TestXPClaimAndBuy(t *testing.T) {
	game := newTestGame(t)
	ctx := context.Background()
	client := connect(t, game)
	client.enterPlay(ctx, t, "alice", "Aveline")

	if got := client.run(ctx, "+xp/claim dancing"); !strings.Contains(got, "Invalid source") {
		t.Errorf("bad source accepted: %q", got)
	}
	if got := client.run(ctx, "+xp/claim roleplay"); !strings.Contains(got, "Beat claimed") {
		t.Fatalf("claim: %q", got)
	}

	// Not enough experience yet.
	if got := client.run(ctx, "+xp/buy skill brawl 0 1"); !strings.Contains(got, "Error") {
		t.Errorf("overspend allowed: %q", got)
	}

	// Ten beats make two experience; a skill dot costs two.
	client.session.character.XP.AwardBeats(game.now(), 9, "story", "")
	got := client.run(ctx, "+xp/buy skill brawl 0 1")
	if !strings.Contains(got, "Bought skill brawl 0 -> 1 for 2 experience.") {
		t.Fatalf("buy: %q", got)
	}
	if client.session.character.Sheet.Skill("brawl") != 1 {
		t.Errorf("brawl not raised")
	}

	got = client.run(ctx, "+xp")
	if !strings.Contains(got, "Experience: 0 (spent 2)") {
		t.Errorf("summary: %q", got)
	}
}

func TestAspirationFulfillAwardsBeat(t *testing.T) {
	game := newTestGame(t)
	ctx := context.Background()
	client := connect(t, game)
	client.enterPlay(ctx, t, "alice", "Aveline")

	if got := client.run(ctx, "+aspiration/add short find the missing courier"); !strings.Contains(got, "added") {
		t.Fatalf("add: %q", got)
	}
	if got := client.run(ctx, "+aspirations"); !strings.Contains(got, "find the missing courier") {
		t.Errorf("list: %q", got)
	}
	got := client.run(ctx, "+aspiration/fulfill 1")
	if !strings.Contains(got, "You take a beat") {
		t.Fatalf("fulfill: %q", got)
	}
	if client.session.character.XP.Beats != 1 {
		t.Errorf("beats = %d, want 1", client.session.character.XP.Beats)
	}
	if got := client.run(ctx, "+aspirations"); !strings.Contains(got, "no aspirations") {
		t.Errorf("aspiration not removed: %q", got)
	}
}

func TestVoteAwardsBeatWithWeeklyLimits(t *testing.T) {
	game := newTestGame(t)
	ctx := context.Background()

	alice := connect(t, game)
	alice.enterPlay(ctx, t, "alice", "Aveline")
	bob := connect(t, game)
	bob.enterPlay(ctx, t, "bob", "Barnaby")

	if got := alice.run(ctx, "+vote Aveline"); !strings.Contains(got, "yourself") {
		t.Errorf("self vote allowed: %q", got)
	}

	bob.out.Reset()
	if got := alice.run(ctx, "+vote Barnaby"); !strings.Contains(got, "You vote for Barnaby.") {
		t.Fatalf("vote: %q", got)
	}
	if heard := bob.out.String(); !strings.Contains(heard, "you take a beat") {
		t.Errorf("recipient not told: %q", heard)
	}
	if bob.session.character.XP.Beats != 1 {
		t.Errorf("beats = %d, want 1", bob.session.character.XP.Beats)
	}

	// One vote per recipient per window.
	if got := alice.run(ctx, "+vote Barnaby"); !strings.Contains(got, "already used") {
		t.Errorf("repeat vote allowed: %q", got)
	}

	saved, err := game.store.CharacterByName(ctx, "Barnaby")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if saved.XP.Beats != 1 {
		t.Errorf("stored beats = %d, want 1", saved.XP.Beats)
	}
}

func TestEquipCommands(t *testing.T) {
	game := newTestGame(t)
	ctx := context.Background()
	client := connect(t, game)
	client.enterPlay(ctx, t, "alice", "Aveline")

	if got := client.run(ctx, "+equip/add vorpal sword"); !strings.Contains(got, "No such item") {
		t.Errorf("fictional item accepted: %q", got)
	}
	if got := client.run(ctx, "+equip/add sword"); !strings.Contains(got, "You pick up a Sword.") {
		t.Fatalf("add weapon: %q", got)
	}
	if got := client.run(ctx, "+equip/add kevlar vest"); !strings.Contains(got, "You put on Kevlar Vest.") {
		t.Fatalf("add armor: %q", got)
	}
	got := client.run(ctx, "+equip")
	if !strings.Contains(got, "Sword") || !strings.Contains(got, "Kevlar Vest") {
		t.Errorf("inventory: %q", got)
	}
	if got := client.run(ctx, "+equip/info sword"); !strings.Contains(got, "damage +3") {
		t.Errorf("info: %q", got)
	}
	if got := client.run(ctx, "+equip/remove sword"); !strings.Contains(got, "Dropped.") {
		t.Fatalf("remove: %q", got)
	}
}

func TestStatLockedAfterApproval(t *testing.T) {
	game := newTestGame(t)
	ctx := context.Background()
	client := connect(t, game)
	client.enterPlay(ctx, t, "alice", "Aveline")

	if got := client.run(ctx, "+stat strength=3"); !strings.Contains(got, "strength set to 3") {
		t.Fatalf("set: %q", got)
	}
	// Raising stamina grows the health track.
	client.run(ctx, "+stat stamina=3")
	if len(client.session.character.Health) != 8 {
		t.Errorf("health track = %d boxes, want 8", len(client.session.character.Health))
	}

	client.session.character.Approved = true
	if got := client.run(ctx, "+stat strength=5"); !strings.Contains(got, "ask staff") {
		t.Errorf("approved sheet editable: %q", got)
	}
}

func TestApproveIsStaffOnly(t *testing.T) {
	game := newTestGame(t)
	ctx := context.Background()
	client := connect(t, game)
	client.enterPlay(ctx, t, "alice", "Aveline")

	if got := client.run(ctx, "+approve Aveline"); !strings.Contains(got, "Staff only.") {
		t.Errorf("non-staff approve allowed: %q", got)
	}

	client.session.account.Staff = true
	if got := client.run(ctx, "+approve Aveline"); !strings.Contains(got, "Aveline approved.") {
		t.Fatalf("staff approve: %q", got)
	}
	saved, err := game.store.CharacterByName(ctx, "Aveline")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !saved.Approved {
		t.Error("approval not persisted")
	}
}

func TestSayBroadcastsToOthers(t *testing.T) {
	game := newTestGame(t)
	ctx := context.Background()

	alice := connect(t, game)
	alice.enterPlay(ctx, t, "alice", "Aveline")
	bob := connect(t, game)
	bob.enterPlay(ctx, t, "bob", "Barnaby")

	bob.out.Reset()
	got := alice.run(ctx, "say hello there")
	if !strings.Contains(got, `You say, "hello there"`) {
		t.Errorf("speaker echo: %q", got)
	}
	if heard := bob.out.String(); !strings.Contains(heard, `Aveline says, "hello there"`) {
		t.Errorf("listener: %q", heard)
	}

	got = alice.run(ctx, "who")
	if !strings.Contains(got, "Aveline") || !strings.Contains(got, "Barnaby") {
		t.Errorf("who: %q", got)
	}
}

func TestSheetShowsDerivedStats(t *testing.T) {
	game := newTestGame(t)
	ctx := context.Background()
	client := connect(t, game)
	client.enterPlay(ctx, t, "alice", "Aveline")

	got := client.run(ctx, "+sheet")
	for _, want := range []string{"Aveline", "strength", "Willpower 2/2", "Speed 7"} {
		if !strings.Contains(got, want) {
			t.Errorf("sheet missing %q: %q", want, got)
		}
	}
}

func TestQuitClosesSession(t *testing.T) {
	game := newTestGame(t)
	ctx := context.Background()
	client := connect(t, game)
	client.enterPlay(ctx, t, "alice", "Aveline")

	client.run(ctx, "quit")
	if !client.session.Closed() {
		t.Error("session still open after quit")
	}
	if names := game.Who(); len(names) != 0 {
		t.Errorf("who after quit = %v", names)
	}
}
