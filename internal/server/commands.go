package server

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/soma-satoro/PyReach/internal/character"
	"github.com/soma-satoro/PyReach/internal/core/dice"
	"github.com/soma-satoro/PyReach/internal/game/aspirations"
	"github.com/soma-satoro/PyReach/internal/game/conditions"
	"github.com/soma-satoro/PyReach/internal/game/equipment"
	"github.com/soma-satoro/PyReach/internal/game/health"
	"github.com/soma-satoro/PyReach/internal/game/tilts"
	"github.com/soma-satoro/PyReach/internal/game/xp"
)

// pruneKeep is how long rate-limit history is retained.
const pruneKeep = 90 * 24 * time.Hour

// Vote limits: one vote per recipient and five in total per week.
const (
	voteWindow     = 7 * 24 * time.Hour
	votesPerWindow = 5
)

// handleCommand dispatches in-play commands. The leading verb may
// carry a /switch, as in "+condition/add shaken".
func (s *Session) handleCommand(ctx context.Context, line string) {
	verb, rest, _ := strings.Cut(line, " ")
	verb = strings.ToLower(verb)
	verb, switchName, _ := strings.Cut(verb, "/")
	rest = strings.TrimSpace(rest)

	switch verb {
	case "help":
		s.cmdHelp()
	case "quit":
		s.game.Broadcast(s, fmt.Sprintf("%s has disconnected.", s.character.Name()))
		s.writeLine("Goodbye.")
		s.Close()
	case "who":
		s.cmdWho()
	case "say":
		s.cmdSay(rest)
	case "pose", ":":
		s.cmdPose(rest)
	case "ooc":
		s.cmdOOC(rest)
	case "+roll":
		s.cmdRoll(ctx, rest)
	case "+extended":
		s.cmdExtended(ctx, switchName, rest)
	case "+health":
		s.cmdHealth()
	case "+damage":
		s.cmdDamage(ctx, rest)
	case "+heal":
		s.cmdHeal(ctx, rest)
	case "+conditions", "+condition":
		s.cmdCondition(ctx, switchName, rest)
	case "+tilts", "+tilt":
		s.cmdTilt(ctx, switchName, rest)
	case "+xp":
		s.cmdXP(ctx, switchName, rest)
	case "+aspirations", "+aspiration":
		s.cmdAspiration(ctx, switchName, rest)
	case "+vote":
		s.cmdVote(ctx, rest)
	case "+equip":
		s.cmdEquip(ctx, switchName, rest)
	case "+sheet":
		s.cmdSheet()
	case "+stat":
		s.cmdStat(ctx, rest)
	case "+approve":
		s.cmdApprove(ctx, rest)
	default:
		s.writeLine("Unknown command. Type help for the command list.")
	}
}

func (s *Session) cmdHelp() {
	s.writeLine("Commands:")
	s.writeLine("  say <text>, pose <text>, ooc <text>, who, quit")
	s.writeLine("  +roll <pool> [rote] [9again|8again|noagain]  roll a dice pool")
	s.writeLine("  +extended <pool> vs <target>[/<max rolls>]   extended action; repeat to keep rolling")
	s.writeLine("  +health, +damage <n> [b|l|a], +heal <n> [b|l|a]")
	s.writeLine("  +conditions, +condition/add <name> [duration], /remove|resolve <name>")
	s.writeLine("  +tilts, +tilt/add|remove <name>, +tilt/turn, +tilt/end")
	s.writeLine("  +xp, +xp/claim <source>, +xp/buy <type> <name> <from> <to>")
	s.writeLine("  +aspirations, +aspiration/add <short|long> <text>, /fulfill <n>, /change <n> <text>, /remove <n>")
	s.writeLine("  +vote <character>                            give another player a beat")
	s.writeLine("  +equip, +equip/add|remove <item>, +equip/info <item>")
	s.writeLine("  +sheet, +stat <name>=<dots>")
}

func (s *Session) cmdWho() {
	names := s.game.Who()
	s.writeLine(fmt.Sprintf("Online (%d):", len(names)))
	for _, name := range names {
		s.writeLine("  " + name)
	}
}

func (s *Session) cmdSay(text string) {
	if text == "" {
		s.writeLine("Say what?")
		return
	}
	s.writeLine(fmt.Sprintf("You say, \"%s\"", text))
	s.game.Broadcast(s, fmt.Sprintf("%s says, \"%s\"", s.character.Name(), text))
}

func (s *Session) cmdPose(text string) {
	if text == "" {
		s.writeLine("Pose what?")
		return
	}
	line := fmt.Sprintf("%s %s", s.character.Name(), text)
	s.writeLine(line)
	s.game.Broadcast(s, line)
}

func (s *Session) cmdOOC(text string) {
	if text == "" {
		s.writeLine("OOC what?")
		return
	}
	line := fmt.Sprintf("<OOC> %s: %s", s.character.Name(), text)
	s.writeLine(line)
	s.game.Broadcast(s, line)
}

// parseRollArgs splits "strength+brawl rote 9again" into the pool
// expression and roll options.
func parseRollArgs(rest string) (expr string, again dice.Again, rote bool) {
	again = dice.Again10
	var exprParts []string
	for _, field := range strings.Fields(rest) {
		switch strings.ToLower(field) {
		case "rote":
			rote = true
		case "9again", "9-again":
			again = dice.Again9
		case "8again", "8-again":
			again = dice.Again8
		case "noagain", "no-again":
			again = dice.AgainNone
		case "10again", "10-again":
			again = dice.Again10
		default:
			exprParts = append(exprParts, field)
		}
	}
	return strings.Join(exprParts, " "), again, rote
}

func (s *Session) cmdRoll(ctx context.Context, rest string) {
	if rest == "" {
		s.writeLine("Usage: +roll <pool> [rote] [9again|8again|noagain]")
		return
	}
	expr, again, rote := parseRollArgs(rest)

	pool, err := s.character.Sheet.ResolvePool(expr, s.character.WoundPenalty())
	if err != nil {
		s.writeError(err)
		return
	}

	result, err := dice.Roll(dice.Request{Pool: pool, Again: again, Rote: rote, Seed: s.game.seed()})
	if err != nil {
		s.writeError(err)
		return
	}

	summary := formatRoll(s.character.Name(), expr, pool, result)
	s.writeLine(summary)
	s.game.Broadcast(s, summary)

	s.awardRollBeats(ctx, result)
}

// awardRollBeats grants the beat for dramatic failures and exceptional
// successes.
func (s *Session) awardRollBeats(ctx context.Context, result dice.Result) {
	now := s.game.now()
	switch result.Outcome {
	case dice.OutcomeDramaticFailure:
		s.character.XP.AwardBeats(now, 1, "dramatic_failure", "")
		s.writeLine("Dramatic failure: you take a beat.")
		s.game.save(ctx, s.character)
	case dice.OutcomeExceptional:
		s.character.XP.AwardBeats(now, 1, "exceptional_success", "")
		s.writeLine("Exceptional success: you take a beat.")
		s.game.save(ctx, s.character)
	}
}

func formatRoll(name, expr string, pool int, result dice.Result) string {
	dieStrings := make([]string, len(result.Dice))
	for i, die := range result.Dice {
		dieStrings[i] = strconv.Itoa(die)
	}
	kind := fmt.Sprintf("%d dice", pool)
	if result.ChanceDie {
		kind = "a chance die"
	}
	return fmt.Sprintf("%s rolls %s (%s): [%s] -> %d successes (%s)",
		name, kind, expr, strings.Join(dieStrings, " "), result.Successes,
		strings.ReplaceAll(string(result.Outcome), "_", " "))
}

func (s *Session) cmdExtended(ctx context.Context, switchName, rest string) {
	if switchName == "stop" {
		s.extended = nil
		s.extendedPool = ""
		s.writeLine("Extended action abandoned.")
		return
	}

	if s.extended == nil || s.extended.Done() {
		expr, spec, ok := strings.Cut(rest, " vs ")
		if !ok {
			s.writeLine("Usage: +extended <pool> vs <target>[/<max rolls>]")
			return
		}
		targetPart, maxPart, hasMax := strings.Cut(strings.TrimSpace(spec), "/")
		target, err := strconv.Atoi(strings.TrimSpace(targetPart))
		if err != nil || target < 1 {
			s.writeLine("The target must be a positive number of successes.")
			return
		}
		maxRolls := 0
		if hasMax {
			if maxRolls, err = strconv.Atoi(strings.TrimSpace(maxPart)); err != nil || maxRolls < 1 {
				s.writeLine("The roll cap must be a positive number.")
				return
			}
		}
		s.extended = &dice.ExtendedAction{Target: target, MaxRolls: maxRolls}
		s.extendedPool = strings.TrimSpace(expr)
	}

	pool, err := s.character.Sheet.ResolvePool(s.extendedPool, s.character.WoundPenalty())
	if err != nil {
		s.writeError(err)
		return
	}
	rng := rand.New(rand.NewSource(s.game.seed()))
	result, err := s.extended.Roll(rng, dice.Request{Pool: pool})
	if err != nil {
		s.writeError(err)
		return
	}

	s.writeLine(formatRoll(s.character.Name(), s.extendedPool, pool, result))
	s.writeLine(fmt.Sprintf("Extended action: %d/%d successes after %d roll(s).",
		s.extended.Accumulated, s.extended.Target, s.extended.RollsMade))
	s.awardRollBeats(ctx, result)

	if s.extended.Done() {
		if s.extended.Succeeded() {
			s.writeLine("The extended action succeeds.")
		} else {
			s.writeLine("The extended action fails; the rolls are exhausted.")
		}
		s.extended = nil
		s.extendedPool = ""
	}
}

func (s *Session) cmdHealth() {
	track := s.character.Health
	s.writeLine(fmt.Sprintf("Health: %s", track))
	if penalty := track.Penalty(); penalty < 0 {
		s.writeLine(fmt.Sprintf("Wound penalty: %d", penalty))
	}
	if track.Incapacitated() {
		s.writeLine("You are incapacitated.")
	}
}

func (s *Session) cmdDamage(ctx context.Context, rest string) {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		s.writeLine("Usage: +damage <amount> [b|l|a]")
		return
	}
	amount, err := strconv.Atoi(fields[0])
	if err != nil || amount < 1 {
		s.writeLine("The amount must be a positive number.")
		return
	}
	kind := ""
	if len(fields) > 1 {
		kind = fields[1]
	}
	damage, err := health.ParseDamage(kind)
	if err != nil {
		s.writeError(err)
		return
	}
	applied := s.character.Health.Apply(amount, damage)
	s.writeLine(fmt.Sprintf("You take %d %s damage.", applied, damage))
	s.cmdHealth()
	s.game.save(ctx, s.character)
}

func (s *Session) cmdHeal(ctx context.Context, rest string) {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		s.writeLine("Usage: +heal <amount> [b|l|a]")
		return
	}
	amount, err := strconv.Atoi(fields[0])
	if err != nil || amount < 1 {
		s.writeLine("The amount must be a positive number.")
		return
	}
	kind := ""
	if len(fields) > 1 {
		kind = fields[1]
	}
	damage, err := health.ParseDamage(kind)
	if err != nil {
		s.writeError(err)
		return
	}
	healed := s.character.Health.Heal(amount, damage)
	s.writeLine(fmt.Sprintf("You heal %d %s damage.", healed, damage))
	s.cmdHealth()
	s.game.save(ctx, s.character)
}

func (s *Session) cmdCondition(ctx context.Context, switchName, rest string) {
	now := s.game.now()
	if lapsed := s.character.PurgeExpiredConditions(now); len(lapsed) > 0 {
		s.writeLine("Lapsed: " + strings.Join(lapsed, ", "))
		s.game.save(ctx, s.character)
	}
	set := s.character.ConditionSet()
	switch switchName {
	case "":
		active := set.All()
		if len(active) == 0 {
			s.writeLine("You have no conditions.")
			return
		}
		s.writeLine("Conditions:")
		for _, instance := range active {
			def, _ := conditions.Lookup(instance.Name)
			s.writeLine(fmt.Sprintf("  %s - %s", instance.Name, def.Description))
		}
	case "add":
		// A trailing duration such as 24h or 30m sets an expiry.
		name := rest
		var duration time.Duration
		if fields := strings.Fields(rest); len(fields) > 1 {
			if parsed, err := time.ParseDuration(fields[len(fields)-1]); err == nil && parsed > 0 {
				duration = parsed
				name = strings.Join(fields[:len(fields)-1], " ")
			}
		}
		instance, ok := set.Add(name, now, duration)
		if !ok {
			s.writeLine(fmt.Sprintf("Unknown condition %q. Known: %s", name,
				strings.Join(conditions.Names(), ", ")))
			return
		}
		s.character.SetConditions(set)
		s.writeLine(fmt.Sprintf("Condition %s applied.", instance.Name))
		s.game.save(ctx, s.character)
	case "remove":
		if !set.Remove(rest) {
			s.writeLine("You do not have that condition.")
			return
		}
		s.character.SetConditions(set)
		s.writeLine(fmt.Sprintf("Condition %s removed.", rest))
		s.game.save(ctx, s.character)
	case "resolve":
		beat, ok := s.character.ResolveCondition(now, rest)
		if !ok {
			s.writeLine("You do not have that condition.")
			return
		}
		if beat {
			s.writeLine(fmt.Sprintf("Condition %s resolved: you take a beat.", rest))
		} else {
			s.writeLine(fmt.Sprintf("Condition %s resolved.", rest))
		}
		s.game.save(ctx, s.character)
	default:
		s.writeLine("Usage: +condition/add|remove|resolve <name>")
	}
}

func (s *Session) cmdTilt(ctx context.Context, switchName, rest string) {
	set := s.character.TiltSet()
	switch switchName {
	case "":
		active := set.All()
		if len(active) == 0 {
			s.writeLine("You have no tilts.")
			return
		}
		s.writeLine("Tilts:")
		for _, instance := range active {
			suffix := ""
			if instance.TurnsRemaining != nil {
				suffix = fmt.Sprintf(" (%d turns)", *instance.TurnsRemaining)
			}
			s.writeLine("  " + instance.Name + suffix)
		}
	case "add":
		instance, ok := set.Add(rest)
		if !ok {
			s.writeLine(fmt.Sprintf("Unknown tilt %q. Known: %s", rest,
				strings.Join(tilts.Names(""), ", ")))
			return
		}
		s.character.SetTilts(set)
		s.writeLine(fmt.Sprintf("Tilt %s applied.", instance.Name))
		s.game.save(ctx, s.character)
	case "remove":
		if !set.Remove(rest) {
			s.writeLine("You do not have that tilt.")
			return
		}
		s.character.SetTilts(set)
		s.writeLine(fmt.Sprintf("Tilt %s removed.", rest))
		s.game.save(ctx, s.character)
	case "turn":
		lapsed := set.AdvanceTurn()
		s.character.SetTilts(set)
		if len(lapsed) > 0 {
			s.writeLine("Lapsed: " + strings.Join(lapsed, ", "))
		} else {
			s.writeLine("A combat turn passes.")
		}
		s.game.save(ctx, s.character)
	case "end":
		applied := s.character.EndCombat(s.game.now())
		if len(applied) > 0 {
			s.writeLine("Combat ends. Conditions applied: " + strings.Join(applied, ", "))
		} else {
			s.writeLine("Combat ends.")
		}
		s.game.save(ctx, s.character)
	default:
		s.writeLine("Usage: +tilt/add|remove <name>, +tilt/turn, +tilt/end")
	}
}

func (s *Session) cmdXP(ctx context.Context, switchName, rest string) {
	ledger := &s.character.XP
	switch switchName {
	case "":
		s.writeLine(fmt.Sprintf("Beats: %d  Experience: %d (spent %d)",
			ledger.Beats, ledger.Experience, ledger.Spent))
		for _, entry := range ledger.Recent(5) {
			s.writeLine(fmt.Sprintf("  %s %+d %s %s",
				entry.At.Format("2006-01-02"), entry.Amount, entry.Kind, entry.Source))
		}
	case "claim":
		if err := ledger.ClaimBeat(s.game.now(), rest); err != nil {
			s.writeLine(fmt.Sprintf("Invalid source. Claimable: %s",
				strings.Join(xp.BeatSources(), ", ")))
			return
		}
		s.writeLine("Beat claimed.")
		s.game.save(ctx, s.character)
	case "buy":
		fields := strings.Fields(rest)
		if len(fields) < 4 {
			s.writeLine("Usage: +xp/buy <type> <name> <from> <to>   e.g. +xp/buy skill brawl 1 2")
			return
		}
		from, err1 := strconv.Atoi(fields[len(fields)-2])
		to, err2 := strconv.Atoi(fields[len(fields)-1])
		if err1 != nil || err2 != nil {
			s.writeLine("The last two arguments must be dot ratings.")
			return
		}
		statType := fields[0]
		statName := strings.Join(fields[1:len(fields)-2], " ")
		cost, err := ledger.Buy(s.game.now(), s.character.Sheet.Buyer(), xp.Purchase{
			Type: statType, Name: statName, Current: from, Target: to,
		})
		if err != nil {
			s.writeError(err)
			return
		}
		if err := s.character.Sheet.SetStat(statName, to); err == nil {
			s.character.SyncHealth()
		}
		s.writeLine(fmt.Sprintf("Bought %s %s %d -> %d for %d experience.", statType, statName, from, to, cost))
		s.game.save(ctx, s.character)
	default:
		s.writeLine("Usage: +xp, +xp/claim <source>, +xp/buy <type> <name> <from> <to>")
	}
}

func (s *Session) cmdAspiration(ctx context.Context, switchName, rest string) {
	list := &s.character.Aspirations
	now := s.game.now()
	switch switchName {
	case "":
		if len(list.Aspirations) == 0 {
			s.writeLine("You have no aspirations.")
			return
		}
		s.writeLine("Aspirations:")
		for i, aspiration := range list.Aspirations {
			s.writeLine(fmt.Sprintf("  %d. [%s] %s", i+1, aspiration.Term, aspiration.Description))
		}
	case "add":
		termWord, description, _ := strings.Cut(rest, " ")
		term, ok := aspirations.ParseTerm(termWord)
		if !ok {
			s.writeLine("Usage: +aspiration/add <short|long> <text>")
			return
		}
		if err := list.Add(now, term, description); err != nil {
			s.writeError(err)
			return
		}
		s.writeLine("Aspiration added.")
		s.game.save(ctx, s.character)
	case "fulfill":
		number, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			s.writeLine("Usage: +aspiration/fulfill <number>")
			return
		}
		fulfilled, err := s.character.FulfillAspiration(now, number)
		if err != nil {
			s.writeError(err)
			return
		}
		s.writeLine(fmt.Sprintf("Aspiration fulfilled: %s. You take a beat.", fulfilled.Description))
		s.game.save(ctx, s.character)
	case "change":
		numberWord, description, _ := strings.Cut(rest, " ")
		number, err := strconv.Atoi(numberWord)
		if err != nil {
			s.writeLine("Usage: +aspiration/change <number> <text>")
			return
		}
		if err := list.Change(now, number, description); err != nil {
			s.writeError(err)
			return
		}
		s.writeLine("Aspiration changed.")
		s.game.save(ctx, s.character)
	case "remove":
		number, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			s.writeLine("Usage: +aspiration/remove <number>")
			return
		}
		if err := list.Remove(number); err != nil {
			s.writeError(err)
			return
		}
		s.writeLine("Aspiration removed.")
		s.game.save(ctx, s.character)
	default:
		s.writeLine("Usage: +aspirations, +aspiration/add|fulfill|change|remove")
	}
	list.Limits.Prune(now, pruneKeep)
}

// cmdVote awards another player's character a beat for good play,
// limited to one vote per recipient and a weekly total.
func (s *Session) cmdVote(ctx context.Context, rest string) {
	if rest == "" {
		s.writeLine("Usage: +vote <character>")
		return
	}
	if strings.EqualFold(rest, s.character.Name()) {
		s.writeLine("You cannot vote for yourself.")
		return
	}

	now := s.game.now()
	if status := s.character.Limits.Check(now, "vote", votesPerWindow, voteWindow); !status.Allowed {
		s.writeLine(status.Message)
		return
	}

	// Prefer the live copy so an online recipient sees the beat now.
	var target *character.Character
	if live := s.game.SessionFor(rest); live != nil {
		target = live.character
	} else {
		loaded, err := s.game.store.CharacterByName(ctx, rest)
		if err != nil {
			s.writeError(err)
			return
		}
		target = loaded
	}

	if status := s.character.Limits.CheckTarget(now, "vote", target.Name(), voteWindow); !status.Allowed {
		s.writeLine(status.Message)
		return
	}
	s.character.Limits.Record(now, "vote", target.Name())
	s.character.Limits.Prune(now, pruneKeep)

	target.XP.AwardBeats(now, 1, "vote", s.character.Name())
	s.game.save(ctx, target)
	s.game.save(ctx, s.character)

	s.writeLine(fmt.Sprintf("You vote for %s.", target.Name()))
	if live := s.game.SessionFor(target.Name()); live != nil && live != s {
		live.writeLine(fmt.Sprintf("%s votes for you: you take a beat.", s.character.Name()))
	}
}

func (s *Session) cmdEquip(ctx context.Context, switchName, rest string) {
	inventory := &s.character.Inventory
	switch switchName {
	case "":
		if len(inventory.Weapons) == 0 && len(inventory.Armor) == 0 {
			s.writeLine("You carry nothing of note.")
			return
		}
		if len(inventory.Weapons) > 0 {
			s.writeLine("Weapons: " + strings.Join(inventory.Weapons, ", "))
		}
		if len(inventory.Armor) > 0 {
			s.writeLine("Armor: " + strings.Join(inventory.Armor, ", "))
		}
	case "add":
		if weapon, err := inventory.AddWeapon(rest); err == nil {
			s.writeLine(fmt.Sprintf("You pick up a %s.", weapon.Name))
			s.game.save(ctx, s.character)
			return
		}
		armor, err := inventory.AddArmor(rest)
		if err != nil {
			s.writeLine(fmt.Sprintf("No such item %q.", rest))
			return
		}
		s.writeLine(fmt.Sprintf("You put on %s.", armor.Name))
		s.game.save(ctx, s.character)
	case "remove":
		if !inventory.Remove(rest) {
			s.writeLine("You are not carrying that.")
			return
		}
		s.writeLine("Dropped.")
		s.game.save(ctx, s.character)
	case "info":
		if weapon, ok := equipment.LookupWeapon(rest); ok {
			s.writeLine(fmt.Sprintf("%s: damage +%d, initiative %+d, %s, size %d, str %d",
				weapon.Name, weapon.Damage, weapon.InitiativeMod, weapon.Type, weapon.Size, weapon.StrengthReq))
			if weapon.Tags != "" {
				s.writeLine("  Tags: " + weapon.Tags)
			}
			return
		}
		if armor, ok := equipment.LookupArmor(rest); ok {
			s.writeLine(fmt.Sprintf("%s: armor %d/%d, defense %d, speed %d (%s)",
				armor.Name, armor.GeneralArmor, armor.BallisticArmor,
				armor.DefensePenalty, armor.SpeedPenalty, armor.Notes))
			return
		}
		s.writeLine(fmt.Sprintf("No such item %q.", rest))
	default:
		s.writeLine("Usage: +equip, +equip/add|remove|info <item>")
	}
}

func (s *Session) cmdSheet() {
	sheet := s.character.Sheet
	s.writeLine(fmt.Sprintf("== %s (%s) ==", sheet.Name, sheet.Template))
	s.writeLine("Attributes:")
	for _, name := range character.AttributeNames() {
		s.writeLine(fmt.Sprintf("  %-14s %d", name, sheet.Attribute(name)))
	}
	s.writeLine("Skills (nonzero):")
	for _, name := range character.SkillNames() {
		if dots := sheet.Skill(name); dots > 0 {
			s.writeLine(fmt.Sprintf("  %-14s %d", name, dots))
		}
	}
	if len(sheet.Merits) > 0 {
		s.writeLine("Merits:")
		for _, name := range sheet.MeritNames() {
			s.writeLine(fmt.Sprintf("  %-14s %d", name, sheet.Merits[name]))
		}
	}
	s.writeLine(fmt.Sprintf("Willpower %d/%d  Integrity %d  Defense %d  Speed %d  Initiative %d",
		sheet.Willpower, sheet.MaxWillpower(), sheet.Integrity,
		sheet.Defense(), sheet.Speed(), sheet.Initiative()))
	s.cmdHealth()
}

func (s *Session) cmdStat(ctx context.Context, rest string) {
	name, dotsWord, ok := strings.Cut(rest, "=")
	if !ok {
		s.writeLine("Usage: +stat <name>=<dots>")
		return
	}
	dots, err := strconv.Atoi(strings.TrimSpace(dotsWord))
	if err != nil {
		s.writeLine("Dots must be a number.")
		return
	}
	if s.character.Approved && !s.account.Staff {
		s.writeLine("Your sheet is approved; ask staff for changes.")
		return
	}
	if err := s.character.Sheet.SetStat(strings.TrimSpace(name), dots); err != nil {
		s.writeError(err)
		return
	}
	s.character.SyncHealth()
	s.writeLine(fmt.Sprintf("%s set to %d.", strings.TrimSpace(name), dots))
	s.game.save(ctx, s.character)
}

func (s *Session) cmdApprove(ctx context.Context, rest string) {
	if !s.account.Staff {
		s.writeLine("Staff only.")
		return
	}
	target, err := s.game.store.CharacterByName(ctx, rest)
	if err != nil {
		s.writeError(err)
		return
	}
	target.Approved = true
	if err := s.game.store.SaveCharacter(ctx, target); err != nil {
		s.writeError(err)
		return
	}
	s.writeLine(fmt.Sprintf("%s approved.", target.Name()))
}
