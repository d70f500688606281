package conditions

// Standard is the registry of book conditions, keyed by normalized name.
var Standard = map[string]Definition{
	"atavism": {
		Name:        "Atavism",
		Description: "Ancient, ancestral memories rouse anger and violent urges; their cause must be destroyed.",
		GrantsBeat:  true,
	},
	"berserk": {
		Name:        "Berserk",
		Description: "A spark of berserk rage has been lit within the character.",
		GrantsBeat:  true,
	},
	"bestial": {
		Name:        "Bestial",
		Description: "The character acts on primal, physical impulses: -2 to resist frenzy or physical impulse and -2 Defense.",
		Sources:     "A monstrous predatory aura conflict, facing a breaking point.",
		Resolution:  "Cause damage in someone's last three Health boxes.",
	},
	"blind": {
		Name:        "Blind",
		Description: "The character cannot see; -3 on all rolls that rely on vision.",
		Persistent:  true,
		GrantsBeat:  true,
	},
	"captivated": {
		Name:        "Captivated",
		Description: "The character is enthralled by something or someone.",
		GrantsBeat:  true,
	},
	"competitive": {
		Name:        "Competitive",
		Description: "The character must assert dominance: -2 on contested rolls where she does not spend Willpower.",
		Sources:     "A challenging predatory aura conflict, facing a breaking point.",
		Resolution:  "Win or lose a competition where someone reaches a breaking point.",
	},
	"confused": {
		Name:        "Confused",
		Description: "The character cannot think straight; -2 on all Intelligence and Wits rolls.",
		Sources:     "A blow to the head, dramatic failure on perception powers.",
		Resolution:  "Take half an hour to clear your mind, or take any amount of lethal damage.",
		GrantsBeat:  true,
	},
	"cowed": {
		Name:        "Cowed",
		Description: "The character has been put in her place through the violence and dominance of another.",
		GrantsBeat:  true,
	},
	"deprived": {
		Name:        "Deprived",
		Description: "Unable to get a fix: remove one die from Stamina, Resolve and Composure pools.",
		Sources:     "The character is Addicted but cannot indulge.",
		Resolution:  "Indulge the addiction.",
		GrantsBeat:  true,
	},
	"crippled": {
		Name:        "Crippled",
		Description: "A leg is permanently damaged; half Speed and -2 on rolls requiring movement.",
		Persistent:  true,
		GrantsBeat:  true,
	},
	"disabled": {
		Name:        "Disabled",
		Description: "An arm is permanently damaged and cannot be used.",
		Persistent:  true,
		GrantsBeat:  true,
	},
	"disoriented": {
		Name:        "Disoriented",
		Description: "The character has lost their sense of direction and balance.",
		GrantsBeat:  true,
	},
	"distracted": {
		Name:        "Distracted",
		Description: "No extended actions; -2 on perception, concentration and precision rolls.",
		Sources:     "Being in a swarm.",
		Resolution:  "Leave the swarm.",
	},
	"dominated": {
		Name:        "Dominated",
		Description: "A specific command the character cannot go against; her will is not her own.",
		Sources:     "The Dominate Discipline.",
		Resolution:  "Complete the command, or take more bashing or lethal damage than your Stamina.",
		GrantsBeat:  true,
	},
	"drained": {
		Name:        "Drained",
		Description: "Extensive blood loss: -2 on physical actions and on rolls to stabilize injuries.",
		Sources:     "A vampire's feeding.",
		Resolution:  "All lethal damage healed through normal means.",
		GrantsBeat:  true,
	},
	"embarrassing_secret": {
		Name:        "Embarrassing Secret",
		Description: "The character has a secret that would damage her reputation if it came out.",
		GrantsBeat:  true,
	},
	"fugue": {
		Name:        "Fugue",
		Description: "The character loses time and acts without conscious direction under stress.",
		Persistent:  true,
		GrantsBeat:  true,
	},
	"guilty": {
		Name:        "Guilty",
		Description: "Remorse weighs on the character; -2 on Resolve and Composure rolls to defend against Social interaction.",
		Resolution:  "Confess the wrongdoing, or make restitution.",
		GrantsBeat:  true,
	},
	"humbled": {
		Name:        "Humbled",
		Description: "The fight has been knocked out of the character; violent action requires Willpower.",
		GrantsBeat:  true,
	},
	"intoxicated": {
		Name:        "Intoxicated",
		Description: "Drink or drugs addle the character's mind and dull his reactions.",
		Resolution:  "Sober up.",
	},
	"madness": {
		Name:        "Madness",
		Description: "The character's grip on reality slips; severe penalties to mental and social rolls under stress.",
		Persistent:  true,
		GrantsBeat:  true,
	},
	"obsession": {
		Name:        "Obsession",
		Description: "One idea consumes the character's attention above everything else.",
		Persistent:  true,
		GrantsBeat:  true,
	},
	"shaken": {
		Name:        "Shaken",
		Description: "Fear grips the character: once per scene the Storyteller may force a reroll or a failure.",
		Sources:     "Facing a breaking point, supernatural terror.",
		Resolution:  "Fail a roll where the Condition forces hesitation.",
		GrantsBeat:  true,
	},
	"spooked": {
		Name:        "Spooked",
		Description: "The character has seen something that unsettles her and cannot let it go.",
		Sources:     "Witnessing the supernatural.",
		Resolution:  "Investigate the source, or flee from it at an inopportune moment.",
		GrantsBeat:  true,
	},
	"swooning": {
		Name:        "Swooning",
		Description: "The character is infatuated: -2 to resist the object's social overtures.",
		GrantsBeat:  true,
	},
	"wanton": {
		Name:        "Wanton",
		Description: "The character indulges appetite without restraint.",
		Sources:     "A seductive predatory aura conflict.",
		Resolution:  "Indulge to the point of endangering yourself or someone close.",
	},
}
