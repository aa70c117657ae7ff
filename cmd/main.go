package main

import (
	"os"

	"github.com/rajatjain1997/meal-planner/config"
	"github.com/rajatjain1997/meal-planner/controllers"
	"github.com/rajatjain1997/meal-planner/routes"
	"github.com/rajatjain1997/meal-planner/services"
)

func main() {
	db := config.InitDB()

	bus := services.NewEventBus()
	hub := services.NewRealtimeHub(bus)

	library := services.NewLibraryService(db, bus)
	logs := services.NewLogService(db, bus)
	plans := services.NewPlanService(db, bus, library)
	chats := services.NewChatService(db)
	assistant := services.NewAssistantService(library, logs)

	r := routes.SetupRouter(routes.Controllers{
		Meals:    controllers.NewMealController(library),
		Logs:     controllers.NewLogController(logs, library),
		Plans:    controllers.NewPlanController(plans),
		Cheats:   controllers.NewCheatController(library, logs),
		Chat:     controllers.NewChatController(assistant, chats, logs, plans, library),
		Proxy:    controllers.NewProxyController(),
		Realtime: controllers.NewRealtimeController(hub),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
