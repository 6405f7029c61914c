package controllers

import (
	"net/http"

	"github.com/NateDevIO/MacroMeter/models"
	"github.com/NateDevIO/MacroMeter/services"
	"github.com/NateDevIO/MacroMeter/utils"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Session *services.Session
	Hub     *services.ProgressHub
}

func NewMealController(session *services.Session, hub *services.ProgressHub) *MealController {
	return &MealController{Session: session, Hub: hub}
}

// POST /meals — manual entry with user-supplied macros, no API round trip.
func (mc *MealController) Create(c *gin.Context) {
	var req struct {
		Description string  `json:"description" binding:"required"`
		Calories    float64 `json:"calories"`
		Protein     float64 `json:"protein"`
		Carbs       float64 `json:"carbs"`
		Fat         float64 `json:"fat"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	entry := mc.Session.AddMeal(req.Description, models.MacroSet{
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	})
	mc.Hub.Broadcast(mc.Session.Snapshot())
	c.JSON(http.StatusCreated, gin.H{"meal": entry})
}

// GET /meals/today
func (mc *MealController) Today(c *gin.Context) {
	meals := mc.Session.Meals()
	totals := services.Totals(meals)
	c.JSON(http.StatusOK, gin.H{
		"date":    mc.Session.Date(),
		"meals":   meals,
		"totals":  totals,
		"summary": utils.FormatSummary(totals),
	})
}

// DELETE /meals/:id
func (mc *MealController) Delete(c *gin.Context) {
	if !mc.Session.RemoveMeal(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	mc.Hub.Broadcast(mc.Session.Snapshot())
	c.Status(http.StatusNoContent)
}

// DELETE /meals — clear today's log.
func (mc *MealController) Clear(c *gin.Context) {
	mc.Session.ClearMeals()
	mc.Hub.Broadcast(mc.Session.Snapshot())
	c.Status(http.StatusNoContent)
}
