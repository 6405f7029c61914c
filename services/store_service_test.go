package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NateDevIO/MacroMeter/models"
)

func TestLoadHistoryMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())
	h := store.LoadHistory()
	if len(h) != 0 {
		t.Errorf("expected empty history, got %d entries", len(h))
	}
}

func TestLoadHistoryCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "history.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := NewStore(dir).LoadHistory()
	if len(h) != 0 {
		t.Errorf("corrupt file should read as empty history, got %d entries", len(h))
	}
}

func TestSaveDayRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	meals := []models.MealEntry{
		{ID: "1", Description: "2 eggs", MacroSet: models.MacroSet{Calories: 155, Protein: 12.6, Carbs: 1.1, Fat: 10.6}},
		{ID: "2", Description: "banana", MacroSet: models.MacroSet{Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4}},
	}
	goals := models.MacroSet{Calories: 2000, Protein: 150, Carbs: 250, Fat: 65}

	store.SaveDayToHistory("2026-08-29", meals, goals)

	rec, ok := store.LoadHistory()["2026-08-29"]
	if !ok {
		t.Fatal("saved day missing from history")
	}
	if rec.MealCount != 2 {
		t.Errorf("expected meal_count 2, got %d", rec.MealCount)
	}
	if rec.Totals != Totals(meals) {
		t.Errorf("totals not recomputed from meals: %+v", rec.Totals)
	}
	if rec.Goals == nil || *rec.Goals != goals {
		t.Errorf("goal snapshot not persisted: %+v", rec.Goals)
	}
}

func TestSaveDayOverwritesWholesale(t *testing.T) {
	store := NewStore(t.TempDir())
	goals := models.MacroSet{Calories: 2000}

	store.SaveDayToHistory("2026-08-29", []models.MealEntry{
		{ID: "1", Description: "toast", MacroSet: models.MacroSet{Calories: 80}},
	}, goals)
	store.SaveDayToHistory("2026-08-29", []models.MealEntry{
		{ID: "2", Description: "oatmeal", MacroSet: models.MacroSet{Calories: 150}},
	}, goals)

	rec := store.LoadHistory()["2026-08-29"]
	if rec.MealCount != 1 || rec.Meals[0].Description != "oatmeal" {
		t.Errorf("second save should replace the record, got %+v", rec)
	}
}

func TestRecentHistoryEmptyStore(t *testing.T) {
	store := NewStore(t.TempDir())
	recent := store.RecentHistory(7)

	if len(recent) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(recent))
	}
	if recent[0].Date != time.Now().Format(dateLayout) {
		t.Errorf("first entry should be today, got %s", recent[0].Date)
	}
	for i, d := range recent {
		if d.Record.MealCount != 0 {
			t.Errorf("day %s: expected synthetic zero record", d.Date)
		}
		if d.Record.Goals != nil {
			t.Errorf("day %s: synthetic record should carry no goal snapshot", d.Date)
		}
		want := time.Now().AddDate(0, 0, -i).Format(dateLayout)
		if d.Date != want {
			t.Errorf("entry %d: expected consecutive date %s, got %s", i, want, d.Date)
		}
	}
}

func TestRecentHistoryIncludesSavedDays(t *testing.T) {
	store := NewStore(t.TempDir())
	today := time.Now().Format(dateLayout)
	store.SaveDayToHistory(today, []models.MealEntry{
		{ID: "1", Description: "lunch", MacroSet: models.MacroSet{Calories: 600}},
	}, models.MacroSet{Calories: 2000})

	recent := store.RecentHistory(3)
	if recent[0].Record.MealCount != 1 {
		t.Errorf("today's saved record should surface, got %+v", recent[0].Record)
	}
	if recent[1].Record.MealCount != 0 {
		t.Errorf("yesterday should be synthetic, got %+v", recent[1].Record)
	}
}

func TestAddFavoriteCaseInsensitiveDedupe(t *testing.T) {
	store := NewStore(t.TempDir())

	if !store.AddFavorite("2 eggs", models.MacroSet{Calories: 155}) {
		t.Fatal("first add should succeed")
	}
	if store.AddFavorite("2 EGGS", models.MacroSet{Calories: 155}) {
		t.Error("case-insensitive duplicate should be rejected")
	}
	if favs := store.LoadFavorites(); len(favs) != 1 {
		t.Errorf("expected 1 favorite, got %d", len(favs))
	}
}

func TestRemoveFavorite(t *testing.T) {
	store := NewStore(t.TempDir())
	store.AddFavorite("protein shake", models.MacroSet{Calories: 220, Protein: 30})

	favs := store.LoadFavorites()
	if len(favs) != 1 {
		t.Fatalf("expected 1 favorite, got %d", len(favs))
	}
	if !store.RemoveFavorite(favs[0].ID) {
		t.Error("remove by id should succeed")
	}
	if store.RemoveFavorite("no-such-id") {
		t.Error("remove of absent id should report false")
	}
	if len(store.LoadFavorites()) != 0 {
		t.Error("favorite not removed from disk")
	}
}

func TestLoadFavoritesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "favorites.json"), []byte("[[["), 0o644); err != nil {
		t.Fatal(err)
	}
	if favs := NewStore(dir).LoadFavorites(); len(favs) != 0 {
		t.Errorf("corrupt favorites should read as empty, got %d", len(favs))
	}
}
