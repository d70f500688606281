package wiki

import (
	"context"
	"fmt"
)

// System is the viewer used for seeded and file-backed content.
var System = Viewer{Name: "system", Staff: true}

type seedCategory struct {
	name        string
	description string
}

// Default category layout for a fresh wiki.
var seedCategories = []seedCategory{
	{"Setting", "The world of the chronicle: history, mood and themes."},
	{"Rules", "House rules and system reference."},
	{"Factions", "Organizations, courts, packs and covenants."},
	{"Characters", "Player and staff character pages."},
	{"Lore", "In-character documents and rumors."},
	{"Locations", "Places in and around the city."},
	{"News & Updates", "Announcements from the staff."},
}

type seedPage struct {
	title    string
	category string
	tags     []string
	featured bool
	content  string
}

var seedPages = []seedPage{
	{
		title:    "Welcome",
		category: "news-updates",
		featured: true,
		tags:     []string{"start-here"},
		content: `# Welcome

This wiki documents the setting, rules and ongoing stories of the game.
Connect to the game itself over telnet, or use the **Play** link in the
header to open a session in your browser.

New players should start with the [Rules](/wiki/category/rules) category.`,
	},
	{
		title:    "Dice Rolls",
		category: "rules",
		tags:     []string{"rules", "dice"},
		content: `# Dice Rolls

Roll a pool of ten-sided dice with ` + "`+roll <pool>`" + `. Each die
showing 8 or higher is a success; tens roll again by default. Five or
more successes is an exceptional success.

A pool reduced to zero rolls a single *chance die*: only a 10 succeeds,
and a 1 is a dramatic failure.

| Quality | Effect |
|---------|--------|
| 10-again | Tens reroll (default) |
| 9-again | Nines and tens reroll |
| 8-again | Eights and up reroll |
| rote | Failed dice reroll once |`,
	},
	{
		title:    "Health and Damage",
		category: "rules",
		tags:     []string{"rules", "combat"},
		content: `# Health and Damage

Your health track has one box per point of Stamina + Size. Damage
fills boxes left to right and comes in three severities: bashing ` + "`[/]`" + `,
lethal ` + "`[X]`" + ` and aggravated ` + "`[*]`" + `. More severe damage pushes lighter
damage toward the right edge; damage pushed off the track is gone,
along with the part of you it represented.

When your last three boxes are filled you suffer wound penalties of
-1, -2 and -3 to all actions.`,
	},
	{
		title:    "Conditions and Tilts",
		category: "rules",
		tags:     []string{"rules"},
		content: `# Conditions and Tilts

Conditions are lingering states — *Shaken*, *Guilty*, *Inspired* —
that shape roleplay and grant a beat when resolved. Tilts are their
combat-time cousins: short effects like *Knocked Down* or *Blinded*
that convert into conditions when the fight ends.

Use ` + "`+conditions`" + ` and ` + "`+tilts`" + ` in game to manage yours.`,
	},
	{
		title:    "Experience and Beats",
		category: "rules",
		tags:     []string{"rules", "advancement"},
		content: `# Experience and Beats

You earn beats from dramatic failures, resolved conditions, fulfilled
aspirations and good play. Five beats become one experience point.
Spend experience with ` + "`+xp/buy`" + `; attribute dots cost 4, skill dots 2
and merits 1 per dot.`,
	},
}

// Seed installs the default categories and starter pages. It is a
// no-op when any category already exists, so it is safe to run at
// every startup.
func (s *Service) Seed(ctx context.Context) error {
	existing, err := s.store.Categories(ctx)
	if err != nil {
		return fmt.Errorf("check existing categories: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for i, category := range seedCategories {
		if _, err := s.CreateCategory(ctx, System, category.name, category.description, "", i+1); err != nil {
			return fmt.Errorf("seed category %q: %w", category.name, err)
		}
	}

	for _, page := range seedPages {
		draft := Draft{
			Title:        page.title,
			Content:      page.content,
			CategorySlug: page.category,
			Tags:         page.tags,
			Published:    true,
			Featured:     page.featured,
		}
		if _, err := s.CreatePage(ctx, System, draft); err != nil {
			return fmt.Errorf("seed page %q: %w", page.title, err)
		}
	}

	s.log.WithField("pages", len(seedPages)).Info("wiki seeded")
	return nil
}
