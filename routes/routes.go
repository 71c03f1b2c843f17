package routes

import (
	"nutritrack/config"
	"nutritrack/controllers"
	"nutritrack/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.RequestID())

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Everything below requires a session token
	profile := r.Group("/profile")
	profile.Use(middlewares.AuthMiddleware())
	{
		profile.POST("/save", controllers.SaveProfile)
	}

	food := r.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.POST("/add", controllers.AddFood)
		food.GET("/today", controllers.ListTodayFood)
		food.GET("/options", controllers.ListFoodOptions)
		food.DELETE("/:id", controllers.DeleteFood)
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("/summary", controllers.GetDashboardSummary)
		dashboard.GET("/trend", controllers.GetWeeklyTrend)
	}

	return r
}
