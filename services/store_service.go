package services

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NateDevIO/MacroMeter/models"
)

const dateLayout = "2006-01-02"

// Store persists the two application documents, history.json and
// favorites.json, under one data directory. Reads are best-effort: a
// missing or corrupt file yields empty state instead of an error, so a
// damaged document means starting fresh rather than crashing. Writes log
// and swallow IO errors. There is no locking; concurrent writers are
// last-write-wins, acceptable for the single-user scope.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) historyPath() string   { return filepath.Join(s.dir, "history.json") }
func (s *Store) favoritesPath() string { return filepath.Join(s.dir, "favorites.json") }

func (s *Store) writeDoc(path string, v any) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		log.Printf("store: create data dir: %v", err)
		return
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("store: marshal %s: %v", filepath.Base(path), err)
		return
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		log.Printf("store: save %s: %v", filepath.Base(path), err)
	}
}

// LoadHistory returns the full date → DayRecord mapping, or an empty map
// if the file is absent or unparseable.
func (s *Store) LoadHistory() models.History {
	b, err := os.ReadFile(s.historyPath())
	if err != nil {
		return models.History{}
	}
	var h models.History
	if err := json.Unmarshal(b, &h); err != nil {
		return models.History{}
	}
	if h == nil {
		h = models.History{}
	}
	return h
}

// SaveHistory writes the entire history document.
func (s *Store) SaveHistory(h models.History) {
	s.writeDoc(s.historyPath(), h)
}

// SaveDayToHistory recomputes totals from meals and overwrites the record
// for date wholesale. Totals are never trusted from a caller.
func (s *Store) SaveDayToHistory(date string, meals []models.MealEntry, goals models.MacroSet) {
	h := s.LoadHistory()
	if meals == nil {
		meals = []models.MealEntry{}
	}
	g := goals
	h[date] = models.DayRecord{
		Meals:     meals,
		Totals:    Totals(meals),
		Goals:     &g,
		MealCount: len(meals),
	}
	s.SaveHistory(h)
}

// DayEntry pairs a date string with its record, preserving order for
// windowed views.
type DayEntry struct {
	Date   string           `json:"date"`
	Record models.DayRecord `json:"record"`
}

// RecentHistory returns exactly days consecutive calendar dates ending
// today, most-recent-first. Dates with no saved record get a synthetic
// all-zero DayRecord with no goal snapshot, so callers always see a full
// window.
func (s *Store) RecentHistory(days int) []DayEntry {
	h := s.LoadHistory()
	today := time.Now()

	out := make([]DayEntry, 0, days)
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, -i).Format(dateLayout)
		rec, ok := h[date]
		if !ok {
			rec = models.DayRecord{Meals: []models.MealEntry{}}
		}
		out = append(out, DayEntry{Date: date, Record: rec})
	}
	return out
}

// LoadFavorites returns the saved meal templates, empty on a missing or
// corrupt file.
func (s *Store) LoadFavorites() []models.FavoriteEntry {
	b, err := os.ReadFile(s.favoritesPath())
	if err != nil {
		return []models.FavoriteEntry{}
	}
	var favs []models.FavoriteEntry
	if err := json.Unmarshal(b, &favs); err != nil {
		return []models.FavoriteEntry{}
	}
	if favs == nil {
		favs = []models.FavoriteEntry{}
	}
	return favs
}

// SaveFavorites writes the entire favorites document.
func (s *Store) SaveFavorites(favs []models.FavoriteEntry) {
	s.writeDoc(s.favoritesPath(), favs)
}

// AddFavorite appends a template unless one with a case-insensitively
// equal description already exists; returns false on that no-op.
func (s *Store) AddFavorite(description string, macros models.MacroSet) bool {
	favs := s.LoadFavorites()
	for _, f := range favs {
		if strings.EqualFold(f.Description, description) {
			return false
		}
	}

	now := time.Now()
	favs = append(favs, models.FavoriteEntry{
		ID:          now.Format(time.RFC3339Nano),
		Description: description,
		MacroSet:    macros,
		AddedDate:   now.Format(dateLayout),
	})
	s.SaveFavorites(favs)
	return true
}

// RemoveFavorite deletes by id; false if no entry matched.
func (s *Store) RemoveFavorite(id string) bool {
	favs := s.LoadFavorites()
	for i, f := range favs {
		if f.ID == id {
			favs = append(favs[:i], favs[i+1:]...)
			s.SaveFavorites(favs)
			return true
		}
	}
	return false
}

// FindFavorite returns the template with the given id, if present.
func (s *Store) FindFavorite(id string) (models.FavoriteEntry, bool) {
	for _, f := range s.LoadFavorites() {
		if f.ID == id {
			return f, true
		}
	}
	return models.FavoriteEntry{}, false
}
