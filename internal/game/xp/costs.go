// Package xp tracks beats and experience and prices advancements
// according to Chronicles of Darkness cost tables.
package xp

import "strings"

// BeatsPerExperience converts beats to experience points.
const BeatsPerExperience = 5

// Template is a character's supernatural template.
type Template string

const (
	Mortal     Template = "mortal"
	Werewolf   Template = "werewolf"
	Vampire    Template = "vampire"
	Changeling Template = "changeling"
	Mage       Template = "mage"
)

// General costs shared by every template, per dot unless noted.
const (
	CostMerit          = 1
	CostSkillSpecialty = 1 // flat
	CostLostWillpower  = 1
	CostAttribute      = 4
	CostSkill          = 2
	CostIntegrity      = 2
)

// Werewolf costs.
const (
	costAffinityGift    = 3
	costNonAffinityGift = 5
	costRenown          = 3
	costRite            = 1 // flat
	costPrimalUrge      = 5
)

// Vampire costs.
const (
	costClanDiscipline      = 3
	costOutOfClanDiscipline = 4
	costHumanity            = 2
	costBloodPotency        = 5
)

// Changeling costs.
const (
	costCommonContract        = 3
	costRoyalContract         = 4
	costFavoredCommonContract = 2
	costFavoredRoyalContract  = 3
	costGoblinContract        = 2
	costWyrd                  = 5
)

// Mage costs.
const (
	costArcanumToLimit    = 4
	costArcanumAboveLimit = 5
	costGnosis            = 5
)

// werewolfAuspiceGifts maps auspice to affinity gift keys.
var werewolfAuspiceGifts = map[string][]string{
	"cahalith": {"gibbous_moon", "inspiration", "knowledge"},
	"elodoth":  {"half_moon", "insight", "warding"},
	"irraka":   {"new_moon", "evasion", "stealth"},
	"ithaeur":  {"crescent_moon", "elemental", "shaping"},
	"rahu":     {"full_moon", "dominance", "strength"},
}

// werewolfTribeGifts maps tribe to affinity gift keys. Ghost wolves
// have no tribal affinities.
var werewolfTribeGifts = map[string][]string{
	"blood_talons":        {"inspiration", "rage", "strength"},
	"bone_shadows":        {"death", "elemental", "insight"},
	"hunters_in_darkness": {"nature", "stealth", "warding"},
	"iron_masters":        {"knowledge", "shaping", "technology"},
	"storm_lords":         {"evasion", "dominance", "weather"},
	"ghost_wolves":        {},
}

// vampireClanDisciplines maps clan to in-clan discipline keys.
var vampireClanDisciplines = map[string][]string{
	"daeva":     {"celerity", "majesty", "vigor"},
	"gangrel":   {"animalism", "protean", "resilience"},
	"mekhet":    {"auspex", "celerity", "obfuscate"},
	"nosferatu": {"nightmare", "obfuscate", "vigor"},
	"ventrue":   {"animalism", "dominate", "resilience"},
}

// magePathArcana maps path to ruling and inferior arcana; all other
// arcana are common.
var magePathArcana = map[string]struct{ ruling, inferior []string }{
	"acanthus": {ruling: []string{"time", "fate"}, inferior: []string{"forces"}},
	"mastigos": {ruling: []string{"space", "mind"}, inferior: []string{"matter"}},
	"moros":    {ruling: []string{"matter", "death"}, inferior: []string{"spirit"}},
	"obrimos":  {ruling: []string{"forces", "prime"}, inferior: []string{"death"}},
	"thyrsus":  {ruling: []string{"life", "spirit"}, inferior: []string{"mind"}},
}

// Arcanum dot limits before a gnosis increase is needed.
const (
	arcanumLimitRuling   = 5
	arcanumLimitCommon   = 4
	arcanumLimitInferior = 2
)

// Purchase describes a stat advancement to price.
type Purchase struct {
	// Type is the stat category: attribute, skill, merit,
	// skill_specialty, integrity, lost_willpower, or a template stat
	// such as gift, discipline, contract, arcanum, renown, humanity.
	Type string

	// Name is the specific stat, used for affinity checks.
	Name string

	// Current and Target are dot ratings; flat-cost purchases ignore
	// them.
	Current int
	Target  int
}

// Buyer carries the template facts that change prices.
type Buyer struct {
	Template Template

	// Auspice and Tribe apply to werewolves.
	Auspice string
	Tribe   string

	// Clan applies to vampires.
	Clan string

	// Path applies to mages.
	Path string

	// FavoredContracts lists changeling contract names discounted by
	// kith regalia.
	FavoredContracts []string
}

func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

func contains(list []string, key string) bool {
	for _, entry := range list {
		if entry == key {
			return true
		}
	}
	return false
}

// Cost returns the experience cost of a purchase. Unknown stat types
// and non-positive dot ranges cost zero.
func Cost(buyer Buyer, purchase Purchase) int {
	dots := purchase.Target - purchase.Current

	switch normalize(purchase.Type) {
	case "merit":
		return positive(dots) * CostMerit
	case "skill_specialty":
		return CostSkillSpecialty
	case "lost_willpower":
		return positive(dots) * CostLostWillpower
	case "attribute":
		return positive(dots) * CostAttribute
	case "skill":
		return positive(dots) * CostSkill
	case "integrity":
		return positive(dots) * CostIntegrity
	}

	if dots <= 0 {
		return 0
	}

	switch buyer.Template {
	case Werewolf:
		return werewolfCost(buyer, purchase, dots)
	case Vampire:
		return vampireCost(buyer, purchase, dots)
	case Changeling:
		return changelingCost(buyer, purchase, dots)
	case Mage:
		return mageCost(buyer, purchase)
	}
	return 0
}

func positive(dots int) int {
	if dots < 0 {
		return 0
	}
	return dots
}

func werewolfCost(buyer Buyer, purchase Purchase, dots int) int {
	switch normalize(purchase.Type) {
	case "gift":
		gift := normalize(purchase.Name)
		affinity := append(werewolfAuspiceGifts[normalize(buyer.Auspice)],
			werewolfTribeGifts[normalize(buyer.Tribe)]...)
		if contains(affinity, gift) {
			return dots * costAffinityGift
		}
		return dots * costNonAffinityGift
	case "renown":
		return dots * costRenown
	case "rite":
		return costRite
	case "primal_urge":
		return dots * costPrimalUrge
	}
	return 0
}

func vampireCost(buyer Buyer, purchase Purchase, dots int) int {
	switch normalize(purchase.Type) {
	case "discipline":
		if contains(vampireClanDisciplines[normalize(buyer.Clan)], normalize(purchase.Name)) {
			return dots * costClanDiscipline
		}
		return dots * costOutOfClanDiscipline
	case "humanity":
		return dots * costHumanity
	case "blood_potency":
		return dots * costBloodPotency
	}
	return 0
}

func changelingCost(buyer Buyer, purchase Purchase, dots int) int {
	switch normalize(purchase.Type) {
	case "contract":
		favored := false
		for _, name := range buyer.FavoredContracts {
			if normalize(name) == normalize(purchase.Name) {
				favored = true
				break
			}
		}
		royal := strings.Contains(normalize(purchase.Name), "royal")
		switch {
		case favored && royal:
			return dots * costFavoredRoyalContract
		case favored:
			return dots * costFavoredCommonContract
		case royal:
			return dots * costRoyalContract
		default:
			return dots * costCommonContract
		}
	case "goblin_contract":
		return dots * costGoblinContract
	case "wyrd":
		return dots * costWyrd
	}
	return 0
}

// mageCost prices arcana per dot: dots at or under the path limit cost
// less than dots above it.
func mageCost(buyer Buyer, purchase Purchase) int {
	switch normalize(purchase.Type) {
	case "arcanum":
		limit := mageArcanumLimit(buyer.Path, purchase.Name)
		total := 0
		for dot := purchase.Current + 1; dot <= purchase.Target; dot++ {
			if dot <= limit {
				total += costArcanumToLimit
			} else {
				total += costArcanumAboveLimit
			}
		}
		return total
	case "gnosis":
		return (purchase.Target - purchase.Current) * costGnosis
	}
	return 0
}

func mageArcanumLimit(path, arcanum string) int {
	arcana, ok := magePathArcana[normalize(path)]
	if !ok {
		return arcanumLimitCommon
	}
	key := normalize(arcanum)
	if contains(arcana.ruling, key) {
		return arcanumLimitRuling
	}
	if contains(arcana.inferior, key) {
		return arcanumLimitInferior
	}
	return arcanumLimitCommon
}
