package controllers

import (
	"net/http"

	"github.com/NateDevIO/MacroMeter/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Session *services.Session
}

func NewAnalyticsController(session *services.Session) *AnalyticsController {
	return &AnalyticsController{Session: session}
}

// GET /analytics/macros — today's caloric breakdown per macro (grams,
// calories, percentage), the numbers behind the UI's distribution chart.
func (ac *AnalyticsController) Macros(c *gin.Context) {
	totals := ac.Session.Totals()
	c.JSON(http.StatusOK, gin.H{
		"totals":    totals,
		"breakdown": services.MacroCaloriePercentages(totals),
	})
}
