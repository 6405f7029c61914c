package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/NateDevIO/MacroMeter/services"

	"github.com/gin-gonic/gin"
)

const (
	defaultHistoryDays = 7
	maxHistoryDays     = 365
)

type HistoryController struct {
	Store *services.Store
}

func NewHistoryController(store *services.Store) *HistoryController {
	return &HistoryController{Store: store}
}

func daysParam(c *gin.Context, fallback int) int {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(fallback)))
	if err != nil || days <= 0 {
		return fallback
	}
	if days > maxHistoryDays {
		return maxHistoryDays
	}
	return days
}

// GET /history?days=N — windowed view, most-recent-first, with synthetic
// zero records for unsaved days.
func (hc *HistoryController) Recent(c *gin.Context) {
	days := daysParam(c, defaultHistoryDays)
	c.JSON(http.StatusOK, gin.H{
		"days":    days,
		"history": hc.Store.RecentHistory(days),
	})
}

// GET /history/export?days=N — CSV download.
func (hc *HistoryController) Export(c *gin.Context) {
	days := daysParam(c, 30)
	csv := services.ExportCSV(hc.Store, days)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=macrometer_history_%dd.csv", days))
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}
