package routes

import (
	"github.com/appdotbuilder/smart-diet-tracker/controllers"
	"github.com/appdotbuilder/smart-diet-tracker/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Everything else requires a valid token
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)

		api.POST("/goals", controllers.CreateGoals)
		api.PUT("/goals/:id", controllers.UpdateGoals)
		api.GET("/goals", controllers.GetGoals)
		api.GET("/goals/history", controllers.GetGoalHistory)

		api.GET("/foods", controllers.SearchFoods)
		api.POST("/foods", controllers.CreateFoodItem)

		api.POST("/logs/food", controllers.LogFood)
		api.DELETE("/logs/food/:id", controllers.DeleteFoodLog)
		api.POST("/logs/fluid", controllers.LogFluid)
		api.DELETE("/logs/fluid/:id", controllers.DeleteFluidLog)

		api.GET("/progress", controllers.GetDailyProgress)
		api.GET("/ws/progress", controllers.ProgressWS)
	}

	return r
}
