package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rajatjain1997/meal-planner/controllers"
	"github.com/rajatjain1997/meal-planner/middlewares"
)

type Controllers struct {
	Meals    *controllers.MealController
	Logs     *controllers.LogController
	Plans    *controllers.PlanController
	Cheats   *controllers.CheatController
	Chat     *controllers.ChatController
	Proxy    *controllers.ProxyController
	Realtime *controllers.RealtimeController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	meals := r.Group("/meals")
	{
		meals.GET("", ctrl.Meals.List)
		meals.GET("/:id", ctrl.Meals.Get)
		meals.GET("/type/:type", ctrl.Meals.ListByType)
		meals.POST("", ctrl.Meals.Create)
		meals.DELETE("/:id", ctrl.Meals.Delete)
	}

	cheats := r.Group("/cheat-meals")
	{
		cheats.GET("", ctrl.Cheats.List)
		cheats.POST("/:id/purchase", ctrl.Cheats.Purchase)
	}

	logs := r.Group("/logs")
	{
		logs.GET("", ctrl.Logs.List)
		logs.POST("/import", ctrl.Logs.Import)
		logs.GET("/:date", ctrl.Logs.Get)
		logs.PUT("/:date", ctrl.Logs.Put)
		logs.DELETE("/:date", ctrl.Logs.Delete)
		logs.POST("/:date/meals", ctrl.Logs.AppendMeal)
		logs.GET("/:date/summary", ctrl.Logs.Summary)
	}

	plans := r.Group("/plans")
	{
		plans.GET("", ctrl.Plans.List)
		plans.GET("/options", ctrl.Plans.Options)
		plans.GET("/:date", ctrl.Plans.Get)
		plans.PUT("/:date", ctrl.Plans.Put)
		plans.DELETE("/:date", ctrl.Plans.Delete)
	}

	chat := r.Group("/chat")
	{
		chat.GET("/today", ctrl.Chat.Today)
		chat.POST("/turn", ctrl.Chat.Turn)
		chat.POST("/accept/meal", ctrl.Chat.AcceptMeal)
		chat.POST("/accept/suggestion", ctrl.Chat.AcceptSuggestion)
	}

	r.POST("/api/chat", ctrl.Proxy.Chat)
	r.GET("/ws", ctrl.Realtime.EventsWS)

	return r
}
