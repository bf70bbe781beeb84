package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hellorory/careers-api/internal/config"
	"github.com/hellorory/careers-api/internal/database"
	"github.com/hellorory/careers-api/internal/handlers"
	"github.com/hellorory/careers-api/internal/intake"
	"github.com/hellorory/careers-api/internal/mailer"
	"github.com/hellorory/careers-api/internal/services"
	"github.com/hellorory/careers-api/internal/storage"
)

func main() {
	// 1. Configuration (.env + environment)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseURL)

	// 3. Adapters
	jobService := services.NewJobService(db)
	attachmentStore := storage.NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseServiceKey)
	notifier := mailer.NewResendNotifier(cfg.ResendAPIKey, cfg.NotifyFrom, cfg.NotifyTo)

	// 4. Intake pipeline
	pipeline := intake.New(jobService, attachmentStore, notifier, nil)

	// 5. Handlers
	jobHandler := handlers.NewJobHandler(pipeline, jobService)
	applicationHandler := handlers.NewApplicationHandler(pipeline)

	// 6. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Admin-Token"}
	corsConfig.OptionsResponseStatusCode = http.StatusOK
	r.Use(cors.New(corsConfig))

	r.HandleMethodNotAllowed = true
	r.NoMethod(handlers.MethodFallback)

	// 7. Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		api.GET("/jobs", jobHandler.GetJobs)
		api.POST("/applications", applicationHandler.Apply)

		admin := api.Group("/", handlers.AdminAuth(cfg.AdminToken))
		admin.POST("/jobs", jobHandler.CreateJob)
		admin.POST("/jobs/delete", jobHandler.DeleteJob)
	}

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
