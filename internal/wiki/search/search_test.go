package search

import "testing"

func testDocuments() []Document {
	return []Document{
		{
			Slug: "dice-rolls", Title: "Dice Rolls", Summary: "How dice pools work",
			Content: "Roll a pool of ten-sided dice. Eights and above are successes.",
			Tags:    []string{"rules", "dice"},
		},
		{
			Slug: "health-and-damage", Title: "Health and Damage", Summary: "Tracking injuries",
			Content: "Damage fills the health track. Dice are not involved here much.",
			Tags:    []string{"rules", "combat"},
		},
		{
			Slug: "the-city", Title: "The City", Summary: "Where the chronicle happens",
			Content: "The city has seven districts and a harbor.",
			Tags:    []string{"setting"},
		},
	}
}

func TestSearchRanksTitleMatchesFirst(t *testing.T) {
	index := New(testDocuments())

	hits := index.Search("dice", 10)
	if len(hits) != 2 {
		t.Fatalf("hits = %d, want 2", len(hits))
	}
	// "dice" appears in one page's title (weighted 3x) and only in
	// another's body.
	if hits[0].Slug != "dice-rolls" {
		t.Errorf("top hit = %s, want dice-rolls", hits[0].Slug)
	}
	if hits[0].Score <= hits[1].Score {
		t.Errorf("scores not descending: %v", hits)
	}
}

func TestSearchNoMatches(t *testing.T) {
	index := New(testDocuments())
	if hits := index.Search("vampire", 10); len(hits) != 0 {
		t.Errorf("hits = %v, want none", hits)
	}
	if hits := index.Search("", 10); hits != nil {
		t.Errorf("empty query returned %v", hits)
	}
	if hits := index.Search("a !", 10); hits != nil {
		t.Errorf("noise query returned %v", hits)
	}
}

func TestSearchLimit(t *testing.T) {
	index := New(testDocuments())
	hits := index.Search("rules health dice city", 1)
	if len(hits) != 1 {
		t.Errorf("limit ignored: %d hits", len(hits))
	}
}

func TestSearchTagsMatch(t *testing.T) {
	index := New(testDocuments())
	hits := index.Search("setting", 10)
	if len(hits) == 0 || hits[0].Slug != "the-city" {
		t.Errorf("tag search hits = %v", hits)
	}
}

func TestEmptyIndex(t *testing.T) {
	index := New(nil)
	if hits := index.Search("anything", 5); len(hits) != 0 {
		t.Errorf("empty index returned %v", hits)
	}
}
