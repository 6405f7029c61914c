package controllers

import (
	"net/http"

	"github.com/NateDevIO/MacroMeter/models"
	"github.com/NateDevIO/MacroMeter/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Session *services.Session
	Hub     *services.ProgressHub
}

func NewGoalController(session *services.Session, hub *services.ProgressHub) *GoalController {
	return &GoalController{Session: session, Hub: hub}
}

func macroProgress(consumed, goal float64) gin.H {
	status, fraction, color := services.EvaluateGoal(consumed, goal)
	return gin.H{
		"consumed": consumed,
		"goal":     goal,
		"fraction": fraction,
		"status":   status,
		"color":    color,
	}
}

// GET /goals — current targets plus per-macro progress and tier.
func (gc *GoalController) Get(c *gin.Context) {
	goals := gc.Session.Goals()
	totals := gc.Session.Totals()

	c.JSON(http.StatusOK, gin.H{
		"goals":     goals,
		"remaining": services.Remaining(goals, totals),
		"progress": gin.H{
			"calories": macroProgress(totals.Calories, goals.Calories),
			"protein":  macroProgress(totals.Protein, goals.Protein),
			"carbs":    macroProgress(totals.Carbs, goals.Carbs),
			"fat":      macroProgress(totals.Fat, goals.Fat),
		},
	})
}

// PUT /goals
func (gc *GoalController) Update(c *gin.Context) {
	var req struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	gc.Session.SetGoals(models.MacroSet{
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	})
	gc.Hub.Broadcast(gc.Session.Snapshot())
	c.Status(http.StatusNoContent)
}
