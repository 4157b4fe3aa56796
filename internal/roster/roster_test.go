package roster

import (
	"testing"

	"github.com/scout9/scout9-web/internal/models"
)

func TestSearch(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		title   models.Title
		wantIDs []string
	}{
		{"exact short name", "T1", models.TitleLoL, []string{"47494"}},
		{"case insensitive", "gen.g", models.TitleLoL, []string{"47558"}},
		{"blank", "   ", models.TitleLoL, nil},
		{"no match", "zzzz", models.TitleLoL, nil},
		{"other title", "sentinels", models.TitleValorant, []string{"1079"}},
		{"unknown title", "T1", models.Title("dota"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(tt.query, tt.title)
			if got == nil {
				t.Fatalf("Search returned nil slice")
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Search(%q) = %d teams, want %d: %+v", tt.query, len(got), len(tt.wantIDs), got)
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("result[%d].ID = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestSearch_RosterOrder(t *testing.T) {
	got := Search("esports", models.TitleLoL)
	if len(got) < 2 {
		t.Fatalf("expected several matches, got %d", len(got))
	}
	all := All(models.TitleLoL)
	pos := map[string]int{}
	for i, team := range all {
		if _, seen := pos[team.ID]; !seen {
			pos[team.ID] = i
		}
	}
	for i := 1; i < len(got); i++ {
		if pos[got[i-1].ID] > pos[got[i].ID] {
			t.Errorf("results out of roster order at %d", i)
		}
	}
}

func TestFeatured(t *testing.T) {
	got := Featured(models.TitleLoL, "")
	if len(got) != FeaturedCount {
		t.Fatalf("Featured = %d teams, want %d", len(got), FeaturedCount)
	}
	if got[0].ID != "47494" {
		t.Errorf("first featured = %s, want 47494", got[0].ID)
	}

	excluded := Featured(models.TitleLoL, "47494")
	if len(excluded) != FeaturedCount-1 {
		t.Fatalf("Featured excluding T1 = %d teams", len(excluded))
	}
	for _, team := range excluded {
		if team.ID == "47494" {
			t.Errorf("excluded team still present")
		}
	}
}

func TestFindByID(t *testing.T) {
	team, ok := FindByID("47558", models.TitleLoL)
	if !ok || team.Name != "Gen.G Esports" {
		t.Errorf("FindByID = %+v, %v", team, ok)
	}
	if _, ok := FindByID("47558", models.TitleValorant); ok {
		t.Errorf("lol id should not resolve under valorant")
	}
	if _, ok := FindByID("", models.TitleLoL); ok {
		t.Errorf("empty id should not resolve")
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	a := All(models.TitleValorant)
	if len(a) == 0 {
		t.Fatal("empty valorant roster")
	}
	a[0].Name = "mutated"
	if All(models.TitleValorant)[0].Name == "mutated" {
		t.Errorf("All exposed the backing slice")
	}
}
