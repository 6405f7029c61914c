package services

import "github.com/NateDevIO/MacroMeter/models"

// Calories per gram for each macronutrient.
const (
	calsPerGramProtein = 4
	calsPerGramCarbs   = 4
	calsPerGramFat     = 9
)

// Totals sums the macros of every meal in the list. An empty list yields
// the zero MacroSet.
func Totals(meals []models.MealEntry) models.MacroSet {
	var t models.MacroSet
	for _, m := range meals {
		t = t.Add(m.MacroSet)
	}
	return t
}

// Remaining returns goals minus totals, elementwise. Negative values mean
// over goal.
func Remaining(goals, totals models.MacroSet) models.MacroSet {
	return goals.Sub(totals)
}

// PerServing divides whole-recipe nutrition by the serving count. Zero or
// negative servings are treated as one rather than rejected. No rounding:
// truncation to integers happens only at display time.
func PerServing(total models.MacroSet, servings int) models.MacroSet {
	if servings <= 0 {
		servings = 1
	}
	n := float64(servings)
	return models.MacroSet{
		Calories: total.Calories / n,
		Protein:  total.Protein / n,
		Carbs:    total.Carbs / n,
		Fat:      total.Fat / n,
	}
}

// MacroBreakdown is one macro's share of the day's caloric intake.
type MacroBreakdown struct {
	Grams      float64 `json:"grams"`
	Calories   float64 `json:"calories"`
	Percentage float64 `json:"percentage"`
}

// MacroCaloriePercentages converts gram totals to calories (protein and
// carbs at 4 kcal/g, fat at 9) and reports each macro's percentage of
// their combined calories. All zeroes when nothing is logged.
func MacroCaloriePercentages(totals models.MacroSet) map[string]MacroBreakdown {
	proteinCals := totals.Protein * calsPerGramProtein
	carbsCals := totals.Carbs * calsPerGramCarbs
	fatCals := totals.Fat * calsPerGramFat
	totalCals := proteinCals + carbsCals + fatCals

	if totalCals == 0 {
		return map[string]MacroBreakdown{
			"protein": {}, "carbs": {}, "fat": {},
		}
	}
	return map[string]MacroBreakdown{
		"protein": {Grams: totals.Protein, Calories: proteinCals, Percentage: proteinCals / totalCals * 100},
		"carbs":   {Grams: totals.Carbs, Calories: carbsCals, Percentage: carbsCals / totalCals * 100},
		"fat":     {Grams: totals.Fat, Calories: fatCals, Percentage: fatCals / totalCals * 100},
	}
}

// GoalStatus tiers progress against a single goal value.
type GoalStatus string

const (
	StatusNoGoal   GoalStatus = "no_goal"
	StatusOnTrack  GoalStatus = "on_track"
	StatusNearGoal GoalStatus = "near_goal"
	StatusOverGoal GoalStatus = "over_goal"
)

// EvaluateGoal returns the tier, the raw fraction consumed (uncapped), and
// the tier's display color. Boundaries are inclusive on the lower tier:
// exactly 0.8 is still on_track, exactly 1.0 is still near_goal.
func EvaluateGoal(current, goal float64) (GoalStatus, float64, string) {
	if goal <= 0 {
		return StatusNoGoal, 0, "#95A5A6"
	}
	fraction := current / goal
	switch {
	case fraction <= 0.8:
		return StatusOnTrack, fraction, "#2ECC71"
	case fraction <= 1.0:
		return StatusNearGoal, fraction, "#FFD93D"
	default:
		return StatusOverGoal, fraction, "#FF6B6B"
	}
}
