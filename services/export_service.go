package services

import (
	"fmt"
	"strconv"
	"strings"
)

// CSVHeader is the fixed first row of a history export.
const CSVHeader = "Date,Meals,Calories,Protein (g),Carbs (g),Fat (g),Calorie Goal,Goal %"

// ExportCSV renders the trailing window of days as delimited rows,
// most-recent-first. Macro values are truncated to integers for display
// and the goal percentage is formatted to one decimal; a day with no goal
// on record reports 0%.
func ExportCSV(store *Store, days int) string {
	lines := []string{CSVHeader}

	for _, d := range store.RecentHistory(days) {
		totals := d.Record.Totals
		var calGoal float64
		if d.Record.Goals != nil {
			calGoal = d.Record.Goals.Calories
		}
		goalPct := 0.0
		if calGoal > 0 {
			goalPct = totals.Calories / calGoal * 100
		}

		// decimal formatting always: %g would flip large goals into
		// scientific notation
		lines = append(lines, fmt.Sprintf("%s,%d,%d,%d,%d,%d,%s,%.1f",
			d.Date,
			d.Record.MealCount,
			int(totals.Calories),
			int(totals.Protein),
			int(totals.Carbs),
			int(totals.Fat),
			strconv.FormatFloat(calGoal, 'f', -1, 64),
			goalPct,
		))
	}
	return strings.Join(lines, "\n")
}
