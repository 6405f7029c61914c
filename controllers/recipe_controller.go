package controllers

import (
	"net/http"

	"github.com/NateDevIO/MacroMeter/services"
	"github.com/NateDevIO/MacroMeter/utils"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	USDA    *services.USDAService
	Session *services.Session
}

func NewRecipeController(usda *services.USDAService, session *services.Session) *RecipeController {
	return &RecipeController{USDA: usda, Session: session}
}

// POST /recipe/resolve  {"query": "...", "servings": 4}
// Resolves a whole recipe, divides by servings, and parks one serving as
// the pending meal so it can be confirmed like a normal lookup.
func (rc *RecipeController) Resolve(c *gin.Context) {
	var req struct {
		Query    string `json:"query" binding:"required"`
		Servings int    `json:"servings"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	total, err := rc.USDA.Resolve(req.Query)
	if err != nil {
		writeResolveError(c, err)
		return
	}

	servings := req.Servings
	if servings <= 0 {
		servings = 1
	}
	perServing := services.PerServing(total, servings)

	pending := &services.PendingMeal{
		Description: req.Query + " (1 serving)",
		Macros:      perServing,
		Servings:    servings,
	}
	rc.Session.SetPending(pending)

	resp := gin.H{
		"total":       total,
		"per_serving": perServing,
		"servings":    servings,
		"pending":     pending,
		"summary":     utils.FormatSummary(perServing),
	}
	if len(req.Query) > services.LongQueryChars {
		resp["warning"] = "long descriptions reduce match accuracy; consider listing fewer ingredients"
	}
	c.JSON(http.StatusOK, resp)
}
