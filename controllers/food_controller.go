package controllers

import (
	"errors"
	"net/http"

	"github.com/NateDevIO/MacroMeter/services"
	"github.com/NateDevIO/MacroMeter/utils"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	USDA    *services.USDAService
	Session *services.Session
	Hub     *services.ProgressHub
}

func NewFoodController(usda *services.USDAService, session *services.Session, hub *services.ProgressHub) *FoodController {
	return &FoodController{USDA: usda, Session: session, Hub: hub}
}

// resolveStatus maps the resolver failure taxonomy to HTTP statuses.
func resolveStatus(kind services.ResolveKind) int {
	switch kind {
	case services.KindNotConfigured:
		return http.StatusServiceUnavailable
	case services.KindAuthFailed:
		return http.StatusBadGateway
	case services.KindRateLimited:
		return http.StatusTooManyRequests
	case services.KindTransient:
		return http.StatusBadGateway
	case services.KindNoMatch:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func writeResolveError(c *gin.Context, err error) {
	var re *services.ResolveError
	if !errors.As(err, &re) {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(resolveStatus(re.Kind), gin.H{
		"error":     re.Message,
		"kind":      re.Kind,
		"needs_key": re.NeedsKey(),
	})
}

// POST /food/resolve  {"query": "2 eggs and a banana"}
// Stores the result as the pending meal awaiting confirmation.
func (fc *FoodController) Resolve(c *gin.Context) {
	var req struct {
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	macros, err := fc.USDA.Resolve(req.Query)
	if err != nil {
		writeResolveError(c, err)
		return
	}

	pending := &services.PendingMeal{Description: req.Query, Macros: macros}
	fc.Session.SetPending(pending)

	resp := gin.H{
		"pending": pending,
		"summary": utils.FormatSummary(macros),
	}
	if len(req.Query) > services.LongQueryChars {
		resp["warning"] = "long descriptions reduce match accuracy; consider splitting the meal up"
	}
	c.JSON(http.StatusOK, resp)
}

// POST /food/confirm logs the pending meal into today's list.
func (fc *FoodController) Confirm(c *gin.Context) {
	entry, ok := fc.Session.ConfirmPending()
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "no pending meal to confirm"})
		return
	}
	fc.Hub.Broadcast(fc.Session.Snapshot())
	c.JSON(http.StatusCreated, gin.H{"meal": entry})
}

// DELETE /food/pending discards the pending meal without logging it.
func (fc *FoodController) Discard(c *gin.Context) {
	if !fc.Session.DiscardPending() {
		c.JSON(http.StatusNotFound, gin.H{"error": "no pending meal"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /food/pending
func (fc *FoodController) Pending(c *gin.Context) {
	p := fc.Session.Pending()
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no pending meal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": p})
}
