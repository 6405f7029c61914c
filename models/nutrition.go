package models

// MacroSet is the four-field nutrition quantity used throughout the app.
// Depending on context it holds an absolute amount, a daily goal, or a
// remaining delta (deltas may go negative).
type MacroSet struct {
	Calories float64 `json:"calories" yaml:"calories"`
	Protein  float64 `json:"protein" yaml:"protein"`
	Carbs    float64 `json:"carbs" yaml:"carbs"`
	Fat      float64 `json:"fat" yaml:"fat"`
}

// Add returns the elementwise sum of m and other.
func (m MacroSet) Add(other MacroSet) MacroSet {
	return MacroSet{
		Calories: m.Calories + other.Calories,
		Protein:  m.Protein + other.Protein,
		Carbs:    m.Carbs + other.Carbs,
		Fat:      m.Fat + other.Fat,
	}
}

// Sub returns m minus other, elementwise.
func (m MacroSet) Sub(other MacroSet) MacroSet {
	return MacroSet{
		Calories: m.Calories - other.Calories,
		Protein:  m.Protein - other.Protein,
		Carbs:    m.Carbs - other.Carbs,
		Fat:      m.Fat - other.Fat,
	}
}

// MealEntry is one logged meal in a day's list. The MacroSet embeds flat
// so the persisted JSON keeps the historical field layout
// (id, description, calories, protein, carbs, fat, timestamp).
type MealEntry struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	MacroSet
	LoggedAt string `json:"timestamp"`
}

// FavoriteEntry is a saved meal template for quick re-logging.
type FavoriteEntry struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	MacroSet
	AddedDate string `json:"added_date"`
}

// DayRecord is the persisted summary of one calendar day. Totals are
// derived from Meals and recomputed on every save; Goals is the goal
// snapshot at the time of the last save (nil for never-saved days).
type DayRecord struct {
	Meals     []MealEntry `json:"meals"`
	Totals    MacroSet    `json:"totals"`
	Goals     *MacroSet   `json:"goals"`
	MealCount int         `json:"meal_count"`
}

// History maps a YYYY-MM-DD date string to that day's record.
type History map[string]DayRecord

// DefaultGoals are the out-of-the-box daily targets before the user
// configures their own.
var DefaultGoals = MacroSet{Calories: 2000, Protein: 150, Carbs: 250, Fat: 65}
