package routes

import (
	"github.com/NateDevIO/MacroMeter/config"
	"github.com/NateDevIO/MacroMeter/controllers"
	"github.com/NateDevIO/MacroMeter/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	store := services.NewStore(cfg.DataDir)
	session := services.NewSession(store, cfg.DefaultGoals)
	hub := services.NewProgressHub()
	usda := services.NewUSDAService()

	food := controllers.NewFoodController(usda, session, hub)
	meals := controllers.NewMealController(session, hub)
	recipe := controllers.NewRecipeController(usda, session)
	goals := controllers.NewGoalController(session, hub)
	favorites := controllers.NewFavoriteController(store, session, hub)
	history := controllers.NewHistoryController(store)
	analytics := controllers.NewAnalyticsController(session)
	progress := controllers.NewProgressController(session, hub)

	f := r.Group("/food")
	{
		f.POST("/resolve", food.Resolve)
		f.POST("/confirm", food.Confirm)
		f.GET("/pending", food.Pending)
		f.DELETE("/pending", food.Discard)
	}

	m := r.Group("/meals")
	{
		m.POST("", meals.Create)
		m.GET("/today", meals.Today)
		m.DELETE("/:id", meals.Delete)
		m.DELETE("", meals.Clear)
	}

	r.POST("/recipe/resolve", recipe.Resolve)

	g := r.Group("/goals")
	{
		g.GET("", goals.Get)
		g.PUT("", goals.Update)
	}

	fav := r.Group("/favorites")
	{
		fav.GET("", favorites.List)
		fav.POST("", favorites.Create)
		fav.DELETE("/:id", favorites.Delete)
		fav.POST("/:id/log", favorites.Log)
	}

	h := r.Group("/history")
	{
		h.GET("", history.Recent)
		h.GET("/export", history.Export)
	}

	r.GET("/analytics/macros", analytics.Macros)
	r.GET("/ws/progress", progress.Progress)

	return r
}
