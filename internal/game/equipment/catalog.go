package equipment

// Weapons is the catalog, keyed by lowercase underscore name.
var Weapons = map[string]Weapon{
	// Bladed melee weapons.
	"battle_axe": {Name: "Battle Axe", Damage: 3, InitiativeMod: -4, Type: Melee, Size: 3, StrengthReq: 3, Availability: 3, Tags: "9-again,two-handed"},
	"fire_axe":   {Name: "Fire Axe", Damage: 2, InitiativeMod: -4, Type: Melee, Size: 3, StrengthReq: 3, Availability: 2, Tags: "9-again,two-handed"},
	"great_sword": {Name: "Great Sword", Damage: 4, InitiativeMod: -5, Type: Melee, Size: 3, StrengthReq: 4, Availability: 4, Tags: "9-again,two-handed"},
	"hatchet":    {Name: "Hatchet", Damage: 1, InitiativeMod: -2, Type: Melee, Size: 1, StrengthReq: 1, Availability: 1},
	"knife_small": {Name: "Knife, Small", Damage: 0, InitiativeMod: 0, Type: Melee, Size: 1, StrengthReq: 1, Availability: 1, Tags: "thrown"},
	"knife_hunting": {Name: "Knife, Hunting", Damage: 1, InitiativeMod: -1, Type: Melee, Size: 2, StrengthReq: 1, Availability: 2},
	"machete":    {Name: "Machete", Damage: 2, InitiativeMod: -2, Type: Melee, Size: 2, StrengthReq: 2, Availability: 2},
	"rapier":     {Name: "Rapier", Damage: 1, InitiativeMod: -2, Type: Melee, Size: 2, StrengthReq: 1, Availability: 2, Tags: "piercing"},
	"sword":      {Name: "Sword", Damage: 3, InitiativeMod: -3, Type: Melee, Size: 3, StrengthReq: 2, Availability: 3},

	// Blunt melee weapons.
	"brass_knuckles": {Name: "Brass Knuckles", Damage: 0, InitiativeMod: 0, Type: Melee, Size: 1, StrengthReq: 1, Availability: 1, Tags: "brawl"},
	"metal_club":     {Name: "Metal Club", Damage: 2, InitiativeMod: -2, Type: Melee, Size: 2, StrengthReq: 2, Availability: 1},
	"nightstick":     {Name: "Nightstick", Damage: 1, InitiativeMod: -1, Type: Melee, Size: 2, StrengthReq: 2, Availability: 2},
	"nunchaku":       {Name: "Nunchaku", Damage: 1, InitiativeMod: 1, Type: Melee, Size: 2, StrengthReq: 2, Availability: 2},
	"sap":            {Name: "Sap", Damage: 0, InitiativeMod: -1, Type: Melee, Size: 1, StrengthReq: 1, Availability: 1, Tags: "stun"},
	"sledgehammer":   {Name: "Sledgehammer", Damage: 3, InitiativeMod: -4, Type: Melee, Size: 3, StrengthReq: 3, Availability: 1, Tags: "knockdown,two-handed"},

	// Exotic melee weapons.
	"catchpole":   {Name: "Catchpole", Damage: 0, InitiativeMod: -3, Type: Melee, Size: 2, StrengthReq: 2, Availability: 1, Tags: "grapple,reach"},
	"chain":       {Name: "Chain", Damage: 1, InitiativeMod: -3, Type: Melee, Size: 2, StrengthReq: 2, Availability: 1, Tags: "grapple,reach"},
	"chainsaw":    {Name: "Chainsaw", Damage: 3, InitiativeMod: -6, Type: Melee, Size: 3, StrengthReq: 4, Availability: 3, Tags: "9-again,two-handed,inaccurate"},
	"whip":        {Name: "Whip", Damage: 0, InitiativeMod: -2, Type: Melee, Size: 2, StrengthReq: 1, Availability: 1, Tags: "dexterity,grapple,stun"},
	"tiger_claws": {Name: "Tiger Claws", Damage: 1, InitiativeMod: -1, Type: Melee, Size: 2, StrengthReq: 2, Availability: 2, Tags: "brawl"},
	"shield_small": {Name: "Shield, Small", Damage: 0, InitiativeMod: -2, Type: Melee, Size: 2, StrengthReq: 2, Availability: 2, Tags: "concealed"},
	"shield_large": {Name: "Shield, Large", Damage: 2, InitiativeMod: -4, Type: Melee, Size: 3, StrengthReq: 3, Availability: 2},

	// Firearms.
	"pistol_light":  {Name: "Pistol, Light", Damage: 1, InitiativeMod: 0, Type: Ranged, Size: 1, StrengthReq: 2, Availability: 2, Capacity: "17+1"},
	"pistol_heavy":  {Name: "Pistol, Heavy", Damage: 2, InitiativeMod: -2, Type: Ranged, Size: 1, StrengthReq: 3, Availability: 3, Capacity: "7+1"},
	"revolver_light": {Name: "Revolver, Light", Damage: 1, InitiativeMod: 0, Type: Ranged, Size: 1, StrengthReq: 2, Availability: 2, Capacity: "6"},
	"revolver_heavy": {Name: "Revolver, Heavy", Damage: 2, InitiativeMod: -2, Type: Ranged, Size: 1, StrengthReq: 3, Availability: 2, Capacity: "6"},
	"smg_small":     {Name: "SMG, Small", Damage: 1, InitiativeMod: -2, Type: Ranged, Size: 1, StrengthReq: 2, Availability: 3, Capacity: "30+1"},
	"smg_heavy":     {Name: "SMG, Heavy", Damage: 2, InitiativeMod: -3, Type: Ranged, Size: 2, StrengthReq: 3, Availability: 3, Capacity: "30+1"},
	"rifle":         {Name: "Rifle", Damage: 4, InitiativeMod: -5, Type: Ranged, Size: 3, StrengthReq: 2, Availability: 2, Capacity: "5+1"},
	"assault_rifle": {Name: "Assault Rifle", Damage: 3, InitiativeMod: -3, Type: Ranged, Size: 3, StrengthReq: 3, Availability: 3, Capacity: "42+1", Tags: "9-again"},
	"shotgun":       {Name: "Shotgun", Damage: 3, InitiativeMod: -4, Type: Ranged, Size: 2, StrengthReq: 3, Availability: 2, Capacity: "6+1", Tags: "9-again"},
	"crossbow":      {Name: "Crossbow", Damage: 2, InitiativeMod: -5, Type: Ranged, Size: 3, StrengthReq: 3, Availability: 3, Capacity: "1", Tags: "slow"},

	// Thrown weapons.
	"throwing_knife": {Name: "Throwing Knife", Damage: 0, InitiativeMod: 0, Type: Thrown, Size: 1, StrengthReq: 1, Availability: 1},
	"molotov_cocktail": {Name: "Molotov Cocktail", Damage: 1, InitiativeMod: -2, Type: Thrown, Size: 2, StrengthReq: 2, Availability: 1, Tags: "incendiary"},
}

// Armors is the armor catalog, keyed by lowercase underscore name.
var Armors = map[string]Armor{
	"reinforced_clothing": {Name: "Reinforced Clothing", GeneralArmor: 1, BallisticArmor: 0, StrengthReq: 1, DefensePenalty: 0, SpeedPenalty: 0, Availability: 1, Notes: "Torso, arms, legs"},
	"sports_gear":         {Name: "Sports Gear", GeneralArmor: 2, BallisticArmor: 0, StrengthReq: 2, DefensePenalty: -1, SpeedPenalty: -1, Availability: 1, Notes: "Torso, arms, legs"},
	"kevlar_vest":         {Name: "Kevlar Vest", GeneralArmor: 1, BallisticArmor: 3, StrengthReq: 1, DefensePenalty: 0, SpeedPenalty: 0, Availability: 1, Notes: "Torso"},
	"flak_jacket":         {Name: "Flak Jacket", GeneralArmor: 2, BallisticArmor: 4, StrengthReq: 1, DefensePenalty: -1, SpeedPenalty: 0, Availability: 2, Notes: "Torso, arms"},
	"full_riot_gear":      {Name: "Full Riot Gear", GeneralArmor: 3, BallisticArmor: 5, StrengthReq: 2, DefensePenalty: -2, SpeedPenalty: -1, Availability: 3, Notes: "Full body"},
	"bomb_suit":           {Name: "Bomb Suit", GeneralArmor: 4, BallisticArmor: 6, StrengthReq: 3, DefensePenalty: -5, SpeedPenalty: -4, Availability: 5, Notes: "Full body, hands-only tasks"},
	"leather_hard":        {Name: "Leather (Hard)", GeneralArmor: 2, BallisticArmor: 0, StrengthReq: 2, DefensePenalty: -1, SpeedPenalty: 0, Availability: 2, Notes: "Torso, arms"},
	"lorica_segmentata":   {Name: "Lorica Segmentata", GeneralArmor: 3, BallisticArmor: 0, StrengthReq: 3, DefensePenalty: -2, SpeedPenalty: -3, Availability: 4, Notes: "Torso"},
	"chainmail":           {Name: "Chainmail", GeneralArmor: 3, BallisticArmor: 1, StrengthReq: 3, DefensePenalty: -2, SpeedPenalty: -2, Availability: 2, Notes: "Torso, arms"},
	"plate_mail":          {Name: "Plate Mail", GeneralArmor: 4, BallisticArmor: 2, StrengthReq: 3, DefensePenalty: -2, SpeedPenalty: -3, Availability: 5, Notes: "Full body"},
}
