package main

import (
	"context"
	"log"
	"os"
	"tripwise/cmd/fx/account_fx"
	"tripwise/cmd/fx/assistant_fx"
	"tripwise/cmd/fx/controllers_fx"
	"tripwise/cmd/fx/db_fx"
	"tripwise/cmd/fx/flights_fx"
	"tripwise/cmd/fx/geo_fx"
	"tripwise/cmd/fx/itinerary_fx"
	"tripwise/cmd/fx/memcache_fx"
	"tripwise/cmd/fx/routes_fx"
	"tripwise/cmd/fx/search_fx"
	"tripwise/cmd/fx/trips_fx"
	"tripwise/cmd/fx/weather_fx"
	"tripwise/internal/api/controllers"
	"tripwise/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		db_fx.Module,
		geo_fx.Module,
		routes_fx.Module,
		flights_fx.Module,
		weather_fx.Module,
		memcache_fx.Module,
		search_fx.Module,
		itinerary_fx.Module,
		assistant_fx.Module,
		account_fx.Module,
		trips_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	assistantController *controllers.AssistantController,
	tripController *controllers.TripController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, assistantController, tripController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	assistantController *controllers.AssistantController,
	tripController *controllers.TripController,
	accountController *controllers.AccountController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)

	assistantGroup := r.Group("/assistant")
	assistantGroup.Use(middleware.JWTAuthMiddleware())
	assistantGroup.POST("/query", assistantController.Query)
	assistantGroup.GET("/history", assistantController.History)

	tripGroup := r.Group("/trips")
	tripGroup.Use(middleware.JWTAuthMiddleware())
	tripGroup.POST("", tripController.SaveTrip)
	tripGroup.GET("", tripController.ListTrips)

	prefGroup := r.Group("/preferences")
	prefGroup.Use(middleware.JWTAuthMiddleware())
	prefGroup.PUT("", tripController.SavePreferences)
	prefGroup.GET("", tripController.GetPreferences)
}
