package utils

import (
	"fmt"

	"github.com/NateDevIO/MacroMeter/models"
)

// FormatSummary renders a one-line readable digest of a MacroSet,
// e.g. "520 cal | 32g protein | 48g carbs | 18g fat".
func FormatSummary(m models.MacroSet) string {
	return fmt.Sprintf("%d cal | %dg protein | %dg carbs | %dg fat",
		int(m.Calories), int(m.Protein), int(m.Carbs), int(m.Fat))
}

// FormatMacroDisplay renders a current-vs-goal pair plus a remaining/over
// delta line for dashboard metrics.
func FormatMacroDisplay(current, goal float64, unit string) (value, delta string, over bool) {
	remaining := goal - current
	value = fmt.Sprintf("%d%s / %d%s", int(current), unit, int(goal), unit)
	if remaining >= 0 {
		return value, fmt.Sprintf("%d%s remaining", int(remaining), unit), false
	}
	return value, fmt.Sprintf("%d%s over", int(-remaining), unit), true
}
