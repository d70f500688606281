package tilts

// Standard is the registry of book tilts, keyed by normalized name.
var Standard = map[string]Definition{
	// Personal tilts
	"arm_wrack": {
		Name:                "Arm Wrack",
		Description:         "The arm burns with pain and goes numb; the limb cannot be used.",
		Kind:                Personal,
		Effects:             "Drop anything held in the arm; off-hand penalties on rolls requiring manual dexterity.",
		Resolution:          "Ends when the damage that caused it heals; aggravated damage makes the loss permanent.",
		ConditionEquivalent: "Disabled",
	},
	"beaten_down": {
		Name:                "Beaten Down",
		Description:         "The character has had the fight knocked out of him.",
		Kind:                Personal,
		Effects:             "Spending Willpower is required to take violent action; running, dodging and Defense still apply.",
		Resolution:          "Surrender and give the aggressor what he wants, regaining a Willpower and taking a Beat.",
		ConditionEquivalent: "Humbled",
	},
	"blinded": {
		Name:                "Blinded",
		Description:         "The character's eyes are damaged or obscured.",
		Kind:                Personal,
		Effects:             "-3 on vision rolls and half Defense with one eye; -5 and no Defense with both.",
		Resolution:          "Ends when the causing damage heals; aggravated damage blinds permanently.",
		ConditionEquivalent: "Blind",
	},
	"deafened": {
		Name:        "Deafened",
		Description: "The character cannot hear.",
		Kind:        Personal,
		Effects:     "-3 on hearing Perception with one ear; chance die and -2 to combat rolls with both.",
		Resolution:  "Noise deafness fades after (10 - Stamina + Resolve) turns; otherwise when the damage heals.",
	},
	"drugged": {
		Name:                "Drugged",
		Description:         "Mind-altering substances addle the character.",
		Kind:                Personal,
		Effects:             "-2 Speed and -3 on all combat rolls including Defense and Perception; ignores wound penalties.",
		Resolution:          "Wears off after (10 - Stamina + Resolve) hours; medical help halves the time.",
		ConditionEquivalent: "Intoxicated",
	},
	"immobilized": {
		Name:        "Immobilized",
		Description: "Something holds the character fast.",
		Kind:        Personal,
		Effects:     "No Defense and no combat actions; only helpless wriggling.",
		Resolution:  "Break free of the grapple or bindings with Strength + Athletics against the item's Durability.",
	},
	"insane": {
		Name:                "Insane",
		Description:         "Panic attack, sudden imbalance, or a full psychotic break.",
		Kind:                Personal,
		Effects:             "+1 to combat rolls but acts last; no Willpower in combat; -3 on Social rolls.",
		Resolution:          "Lasts the scene; Resolve + Composure contested by (10 - Willpower) to steady early.",
		ConditionEquivalent: "Madness",
	},
	"insensate": {
		Name:        "Insensate",
		Description: "The character shuts down from extreme fear or sudden pleasure.",
		Kind:        Personal,
		Effects:     "No actions until resolved; Defense still applies; damage snaps the character out of it.",
		Resolution:  "Wears off at scene's end; a Willpower point buys one turn of normal action.",
	},
	"knocked_down": {
		Name:        "Knocked Down",
		Description: "Something knocks the character to the floor.",
		Kind:        Personal,
		Effects:     "Loses the action if not yet acted; prone, attacks from the ground at -2.",
		Resolution:  "Stand up, which takes an action.",
	},
	"leg_wrack": {
		Name:                "Leg Wrack",
		Description:         "The leg feels like it will snap clean off with every movement.",
		Kind:                Personal,
		Effects:             "Half Speed and -2 on movement rolls and Defense; both legs inflicts Knocked Down and Speed 1.",
		Resolution:          "Ends when the damage that caused it heals; aggravated damage makes the loss permanent.",
		ConditionEquivalent: "Crippled",
	},
	"poisoned": {
		Name:        "Poisoned",
		Description: "Poison tears the character apart from the inside.",
		Kind:        Personal,
		Effects:     "Moderate poison deals one bashing per turn; grave poison one lethal per turn.",
		Resolution:  "Stamina + Resolve reflexively each turn; success counteracts the damage for one turn.",
	},
	"sick": {
		Name:                "Sick",
		Description:         "Fever, nausea and aches wrack the character.",
		Kind:                Personal,
		Effects:             "-1 on all actions, worsening by one every two turns to a maximum of -5.",
		Resolution:          "Penalties fade one point per turn once the character can rest.",
		ConditionEquivalent: "Deprived",
	},
	"stunned": {
		Name:        "Stunned",
		Description: "The character is dazed and unable to think straight.",
		Kind:        Personal,
		Duration:    1,
		Effects:     "Loses the next action and halves Defense until she can next act.",
		Resolution:  "Normally lasts a single turn; a reflexive Willpower point ends it at -3 to actions that turn.",
	},

	// Environmental tilts
	"blizzard": {
		Name:        "Blizzard",
		Description: "Heavy snowfall whipped into a barrage of whirling white.",
		Kind:        Environmental,
		Effects:     "-1 per 10 yards on visual Perception and ranged attacks; deep snow penalizes Physical rolls.",
		Resolution:  "Escape the weather or wait it out; equipment offsets up to +3.",
	},
	"earthquake": {
		Name:        "Earthquake",
		Description: "Everything shudders and shakes; rents tear the ground open.",
		Kind:        Environmental,
		Duration:    20,
		Effects:     "-1 to -5 on Dexterity pools and Defense; one to three lethal per turn, Stamina + Athletics downgrades.",
		Resolution:  "Rarely lasts more than a minute; wait it out.",
	},
	"extreme_cold": {
		Name:        "Extreme Cold",
		Description: "Bone-chilling cold below freezing.",
		Kind:        Environmental,
		Effects:     "Bashing damage cannot heal; -1 per hour of exposure, then one lethal per hour at -5.",
		Resolution:  "Find warmth; hypothermia requires medical attention.",
	},
	"extreme_heat": {
		Name:        "Extreme Heat",
		Description: "Heat far above normal, internal or external.",
		Kind:        Environmental,
		Effects:     "Bashing damage cannot heal; -1 per hour of exposure, then one lethal per hour at -5.",
		Resolution:  "Get out of the heat or end whatever causes it.",
	},
	"flooded": {
		Name:        "Flooded",
		Description: "Rising liquid impedes the character's progress.",
		Kind:        Environmental,
		Effects:     "-2 on Physical pools per foot of liquid; over the head requires swimming or holding breath.",
		Resolution:  "Get to high ground.",
	},
	"heavy_rain": {
		Name:        "Heavy Rain",
		Description: "Torrential rain lashes down in knives.",
		Kind:        Environmental,
		Effects:     "-3 on vision and hearing Perception; an hour or more brings the Flooded tilt.",
		Resolution:  "Get indoors and wait for the weather to ease.",
	},
	"heavy_winds": {
		Name:        "Heavy Winds",
		Description: "Howling winds buffet the characters and fling debris.",
		Kind:        Environmental,
		Effects:     "-3 on aural Perception; Physical rolls penalized by wind grade 1-5; bashing damage from debris.",
		Resolution:  "Shelter out of the wind.",
	},
	"ice": {
		Name:        "Ice",
		Description: "The ground is covered in a mirror-smooth slick layer.",
		Kind:        Environmental,
		Effects:     "Half Speed; -2 on Physical rolls and Defense; dramatic failures inflict Knocked Down.",
		Resolution:  "Melt it, grit it, or move carefully.",
	},
}
