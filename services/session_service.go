package services

import (
	"sync"
	"time"

	"github.com/NateDevIO/MacroMeter/models"
)

const clockLayout = "03:04 PM"

// PendingMeal is a resolved-but-unconfirmed lookup result held until the
// user confirms, discards, or replaces it.
type PendingMeal struct {
	Description string          `json:"description"`
	Macros      models.MacroSet `json:"macros"`
	Servings    int             `json:"servings,omitempty"`
}

// Session is the explicit application state for the one user: current
// goals, today's meal list, and the pending lookup result. Handlers run
// concurrently under Gin so access is mutex-guarded even though the
// logical session is single-user. Every meal mutation re-persists today's
// record through the Store.
type Session struct {
	mu      sync.Mutex
	store   *Store
	goals   models.MacroSet
	meals   []models.MealEntry
	pending *PendingMeal
	date    string
}

// NewSession restores today's meals and goal snapshot from history when
// present, otherwise starts empty with the configured default goals.
func NewSession(store *Store, defaults models.MacroSet) *Session {
	s := &Session{
		store: store,
		goals: defaults,
		date:  time.Now().Format(dateLayout),
	}
	if rec, ok := store.LoadHistory()[s.date]; ok {
		s.meals = rec.Meals
		if rec.Goals != nil {
			s.goals = *rec.Goals
		}
	}
	return s
}

// rollover saves and resets the meal list when the calendar date has
// changed since the session was last touched. Callers hold mu.
func (s *Session) rollover() {
	today := time.Now().Format(dateLayout)
	if today == s.date {
		return
	}
	if len(s.meals) > 0 {
		s.store.SaveDayToHistory(s.date, s.meals, s.goals)
	}
	s.meals = nil
	s.pending = nil
	s.date = today
}

func (s *Session) persist() {
	s.store.SaveDayToHistory(s.date, s.meals, s.goals)
}

// Date returns the session's current calendar date.
func (s *Session) Date() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollover()
	return s.date
}

// Goals returns the current daily targets.
func (s *Session) Goals() models.MacroSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goals
}

// SetGoals replaces the daily targets. The new snapshot reaches history on
// the next meal mutation's save.
func (s *Session) SetGoals(g models.MacroSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = g
}

// Meals returns a copy of today's meal list.
func (s *Session) Meals() []models.MealEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollover()
	out := make([]models.MealEntry, len(s.meals))
	copy(out, s.meals)
	return out
}

// Totals returns today's running macro totals.
func (s *Session) Totals() models.MacroSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollover()
	return Totals(s.meals)
}

// SetPending replaces any existing pending lookup result.
func (s *Session) SetPending(p *PendingMeal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollover()
	s.pending = p
}

// Pending returns the current pending result, nil when there is none.
func (s *Session) Pending() *PendingMeal {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollover()
	return s.pending
}

// DiscardPending drops the pending result; false if there was none.
func (s *Session) DiscardPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollover()
	if s.pending == nil {
		return false
	}
	s.pending = nil
	return true
}

// ConfirmPending turns the pending result into a logged meal and persists
// the day. Returns false when nothing is pending.
func (s *Session) ConfirmPending() (models.MealEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollover()
	if s.pending == nil {
		return models.MealEntry{}, false
	}
	entry := s.appendMeal(s.pending.Description, s.pending.Macros)
	s.pending = nil
	return entry, true
}

// AddMeal logs a meal directly (manual entry or a favorite) and persists
// the day.
func (s *Session) AddMeal(description string, macros models.MacroSet) models.MealEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollover()
	return s.appendMeal(description, macros)
}

// appendMeal creates the entry with a high-resolution-timestamp id.
// Callers hold mu.
func (s *Session) appendMeal(description string, macros models.MacroSet) models.MealEntry {
	now := time.Now()
	entry := models.MealEntry{
		ID:          now.Format(time.RFC3339Nano),
		Description: description,
		MacroSet:    macros,
		LoggedAt:    now.Format(clockLayout),
	}
	s.meals = append(s.meals, entry)
	s.persist()
	return entry
}

// RemoveMeal deletes a logged meal by id and persists; false if absent.
func (s *Session) RemoveMeal(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollover()
	for i, m := range s.meals {
		if m.ID == id {
			s.meals = append(s.meals[:i], s.meals[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// ClearMeals empties today's list and persists the now-empty day.
func (s *Session) ClearMeals() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollover()
	s.meals = nil
	s.persist()
}

// Progress is the push payload sent to connected clients after mutations.
type Progress struct {
	Date      string          `json:"date"`
	Totals    models.MacroSet `json:"totals"`
	Remaining models.MacroSet `json:"remaining"`
	Goals     models.MacroSet `json:"goals"`
	MealCount int             `json:"meal_count"`
}

// Snapshot returns the current progress view in one locked read.
func (s *Session) Snapshot() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollover()
	totals := Totals(s.meals)
	return Progress{
		Date:      s.date,
		Totals:    totals,
		Remaining: Remaining(s.goals, totals),
		Goals:     s.goals,
		MealCount: len(s.meals),
	}
}
