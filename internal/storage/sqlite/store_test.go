package sqlite

import (
	"context"
	"testing"

	"github.com/soma-satoro/PyReach/internal/account"
	"github.com/soma-satoro/PyReach/internal/character"
	"github.com/soma-satoro/PyReach/internal/game/health"
	"github.com/soma-satoro/PyReach/internal/game/xp"
	platformerrors "github.com/soma-satoro/PyReach/internal/platform/errors"
	"github.com/soma-satoro/PyReach/internal/wiki"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAccountRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	acct, err := account.New("Beren", "beren@example.com", "password123")
	if err != nil {
		t.Fatalf("new account: %v", err)
	}
	if err := store.CreateAccount(ctx, acct); err != nil {
		t.Fatalf("create account: %v", err)
	}
	if acct.ID == 0 {
		t.Fatal("account ID not assigned")
	}

	loaded, err := store.AccountByName(ctx, "beren")
	if err != nil {
		t.Fatalf("lookup by name: %v", err)
	}
	if loaded.Name != "Beren" || loaded.Email != "beren@example.com" {
		t.Errorf("loaded = %+v", loaded)
	}
	if err := loaded.CheckPassword("password123"); err != nil {
		t.Errorf("password lost in round trip: %v", err)
	}

	// Duplicate names are rejected case-insensitively.
	dup, _ := account.New("BEREN", "", "password123")
	err = store.CreateAccount(ctx, dup)
	if platformerrors.CodeOf(err) != platformerrors.CodeAccountNameTaken {
		t.Errorf("duplicate create error = %v", err)
	}

	if _, err := store.AccountByName(ctx, "nobody"); platformerrors.CodeOf(err) != platformerrors.CodeAccountNotFound {
		t.Errorf("missing account error = %v", err)
	}
}

func TestUpdateAccount(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	acct, _ := account.New("Luthien", "", "password123")
	if err := store.CreateAccount(ctx, acct); err != nil {
		t.Fatalf("create: %v", err)
	}

	acct.Staff = true
	if err := store.UpdateAccount(ctx, acct); err != nil {
		t.Fatalf("update: %v", err)
	}

	loaded, err := store.AccountByID(ctx, acct.ID)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !loaded.Staff {
		t.Error("staff flag not persisted")
	}
}

func TestCharacterRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	acct, _ := account.New("Beren", "", "password123")
	if err := store.CreateAccount(ctx, acct); err != nil {
		t.Fatalf("create account: %v", err)
	}

	c := character.New(acct.ID, "Beren Erchamion", xp.Mortal)
	c.Sheet.SetStat("strength", 3)
	c.Health.Apply(2, health.Lethal)
	c.XP.AwardBeats(c.CreatedAt, 3, "story", "")

	if err := store.CreateCharacter(ctx, c); err != nil {
		t.Fatalf("create character: %v", err)
	}

	loaded, err := store.CharacterByName(ctx, "beren erchamion")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if loaded.Sheet.Attribute("strength") != 3 {
		t.Errorf("strength = %d", loaded.Sheet.Attribute("strength"))
	}
	if loaded.Health.Count(health.Lethal) != 2 {
		t.Errorf("lethal = %d", loaded.Health.Count(health.Lethal))
	}
	if loaded.XP.Beats != 3 {
		t.Errorf("beats = %d", loaded.XP.Beats)
	}

	loaded.XP.AwardBeats(loaded.CreatedAt, 2, "scene", "")
	if err := store.SaveCharacter(ctx, loaded); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, err := store.CharacterByID(ctx, loaded.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	// 5 beats converted into 1 experience.
	if again.XP.Experience != 1 || again.XP.Beats != 0 {
		t.Errorf("xp = %d exp / %d beats", again.XP.Experience, again.XP.Beats)
	}

	list, err := store.CharactersForAccount(ctx, acct.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("len = %d, want 1", len(list))
	}
}

func TestCharacterNameConflict(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	acct, _ := account.New("Beren", "", "password123")
	store.CreateAccount(ctx, acct)

	if err := store.CreateCharacter(ctx, character.New(acct.ID, "Huan", xp.Mortal)); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := store.CreateCharacter(ctx, character.New(acct.ID, "HUAN", xp.Mortal))
	if platformerrors.CodeOf(err) != platformerrors.CodeCharacterNameTaken {
		t.Errorf("duplicate error = %v", err)
	}

	if err := store.CreateCharacter(ctx, character.New(acct.ID, "  ", xp.Mortal)); err == nil {
		t.Error("blank name accepted")
	}
}

func TestWikiCategoryAndPages(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	category := &wiki.Category{Name: "Setting", Slug: "setting", DisplayOrder: 1}
	if err := store.CreateCategory(ctx, category); err != nil {
		t.Fatalf("create category: %v", err)
	}

	child := &wiki.Category{Name: "Locations", Slug: "locations", ParentID: &category.ID, DisplayOrder: 2}
	if err := store.CreateCategory(ctx, child); err != nil {
		t.Fatalf("create child: %v", err)
	}

	page := &wiki.Page{
		Slug: "the-city", Title: "The City", Content: "# The City\nA haunted place.",
		CategoryID: &category.ID, Tags: []string{"setting", "urban"},
		Published: true, CreatedBy: "staff", UpdatedBy: "staff",
	}
	if err := store.CreatePage(ctx, page); err != nil {
		t.Fatalf("create page: %v", err)
	}

	loaded, err := store.PageBySlug(ctx, "the-city")
	if err != nil {
		t.Fatalf("lookup page: %v", err)
	}
	if loaded.Title != "The City" || len(loaded.Tags) != 2 || *loaded.CategoryID != category.ID {
		t.Errorf("loaded = %+v", loaded)
	}

	inCategory, err := store.PagesInCategory(ctx, category.ID)
	if err != nil {
		t.Fatalf("pages in category: %v", err)
	}
	if len(inCategory) != 1 {
		t.Errorf("pages in category = %d, want 1", len(inCategory))
	}

	if err := store.IncrementViews(ctx, page.ID); err != nil {
		t.Fatalf("increment views: %v", err)
	}
	loaded, _ = store.PageBySlug(ctx, "the-city")
	if loaded.Views != 1 {
		t.Errorf("views = %d, want 1", loaded.Views)
	}

	// Deleting the category leaves the page uncategorized.
	if err := store.DeleteCategory(ctx, category.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}
	loaded, _ = store.PageBySlug(ctx, "the-city")
	if loaded.CategoryID != nil {
		t.Errorf("category id = %v, want nil", *loaded.CategoryID)
	}
}

func TestWikiRevisions(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	page := &wiki.Page{Slug: "dice", Title: "Dice", Content: "v1", Published: true}
	if err := store.CreatePage(ctx, page); err != nil {
		t.Fatalf("create page: %v", err)
	}

	for _, content := range []string{"v1", "v2"} {
		revision := &wiki.Revision{PageID: page.ID, Title: "Dice", Content: content, EditedBy: "staff"}
		if err := store.AddRevision(ctx, revision); err != nil {
			t.Fatalf("add revision: %v", err)
		}
	}

	revisions, err := store.Revisions(ctx, page.ID)
	if err != nil {
		t.Fatalf("list revisions: %v", err)
	}
	if len(revisions) != 2 || revisions[0].Content != "v2" {
		t.Errorf("revisions = %+v", revisions)
	}

	// Revisions go with their page.
	if err := store.DeletePage(ctx, page.ID); err != nil {
		t.Fatalf("delete page: %v", err)
	}
	revisions, err = store.Revisions(ctx, page.ID)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(revisions) != 0 {
		t.Errorf("revisions survived page delete: %+v", revisions)
	}
}
