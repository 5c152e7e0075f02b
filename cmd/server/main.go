package main

import (
	"context"
	"flag"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"mileage-scheduler/internal/app"
	"mileage-scheduler/internal/server"
)

func main() {
	ctx := context.Background()

	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer pool.Close()

	store := app.NewPGStore(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("failed to prepare schema: %v", err)
	}

	appInstance := &app.App{Store: store, Users: store, Cfg: cfg}

	router := gin.Default()

	// Sign-in surface (must be reachable without a session token)
	router.POST("/api/auth/register", appInstance.RegisterHandler)
	router.POST("/api/auth/login", appInstance.LoginHandler)
	router.GET("/api/auth/google", appInstance.GoogleAuthHandler)
	router.GET("/oauth2callback", appInstance.GoogleOAuth2CallbackHandler)

	api := router.Group("/api")
	api.Use(appInstance.AuthMiddleware())
	{
		api.GET("/grid", appInstance.GridHandler)
		api.GET("/sites", appInstance.SitesHandler)

		journeys := api.Group("/journeys")
		{
			journeys.GET("", appInstance.ListJourneysHandler)
			journeys.POST("", appInstance.CreateJourneyHandler)
			journeys.GET("/:id", appInstance.GetJourneyHandler)
			journeys.PUT("/:id", appInstance.ReplaceJourneyHandler)
		}

		report := api.Group("/report")
		{
			report.GET("", appInstance.ReportHandler)
			report.GET("/csv", appInstance.ReportCSVHandler)
			report.GET("/ics", appInstance.ReportICSHandler)
		}
	}

	server.Run(router, cfg.Listen)
}
