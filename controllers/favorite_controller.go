package controllers

import (
	"net/http"

	"github.com/NateDevIO/MacroMeter/models"
	"github.com/NateDevIO/MacroMeter/services"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	Store   *services.Store
	Session *services.Session
	Hub     *services.ProgressHub
}

func NewFavoriteController(store *services.Store, session *services.Session, hub *services.ProgressHub) *FavoriteController {
	return &FavoriteController{Store: store, Session: session, Hub: hub}
}

// GET /favorites
func (fc *FavoriteController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"favorites": fc.Store.LoadFavorites()})
}

// POST /favorites — save a template either from the pending meal (empty
// body or no description) or from explicitly supplied macros.
func (fc *FavoriteController) Create(c *gin.Context) {
	var req struct {
		Description string  `json:"description"`
		Calories    float64 `json:"calories"`
		Protein     float64 `json:"protein"`
		Carbs       float64 `json:"carbs"`
		Fat         float64 `json:"fat"`
	}
	// Body is optional; absent means "favorite the pending meal".
	_ = c.ShouldBindJSON(&req)

	description := req.Description
	macros := models.MacroSet{
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	}
	if description == "" {
		p := fc.Session.Pending()
		if p == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no description given and no pending meal"})
			return
		}
		description = p.Description
		macros = p.Macros
	}

	if !fc.Store.AddFavorite(description, macros) {
		c.JSON(http.StatusConflict, gin.H{"error": "favorite already exists"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"favorites": fc.Store.LoadFavorites()})
}

// DELETE /favorites/:id
func (fc *FavoriteController) Delete(c *gin.Context) {
	if !fc.Store.RemoveFavorite(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /favorites/:id/log — quick-add a favorite to today's meals.
func (fc *FavoriteController) Log(c *gin.Context) {
	fav, ok := fc.Store.FindFavorite(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
		return
	}

	entry := fc.Session.AddMeal(fav.Description, fav.MacroSet)
	fc.Hub.Broadcast(fc.Session.Snapshot())
	c.JSON(http.StatusCreated, gin.H{"meal": entry})
}
