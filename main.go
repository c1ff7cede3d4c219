package main

import (
	"context"
	"log"
	"net/http"

	controller "github.com/Itish41/NyayaMitra/controller"
	"github.com/Itish41/NyayaMitra/initializers"
	middleware "github.com/Itish41/NyayaMitra/middleware"
	service "github.com/Itish41/NyayaMitra/service"

	"github.com/gin-gonic/gin"
)

func init() {
	if err := initializers.LoadEnv(); err != nil {
		log.Printf("No .env file loaded, relying on environment: %s", err)
	}
	if err := initializers.ConnectDB(); err != nil {
		log.Fatalf("[CRITICAL] Failed to initialize database connection: %s", err)
	}
	if err := initializers.Migrate(); err != nil {
		log.Fatalf("[CRITICAL] Failed to run database migrations: %s", err)
	}
}

func main() {
	store := service.NewDocumentStore()

	syncService, err := service.NewCorpusSyncService(initializers.DB, store)
	if err != nil {
		log.Fatalf("Failed to initialize corpus sync service: %s", err)
	}
	if err := syncService.SyncCorpus(context.Background()); err != nil {
		log.Fatalf("Failed to load legal corpus: %s", err)
	}

	opts := []service.ServiceOption{
		service.WithQueryLogger(syncService),
	}
	backend, err := service.NewGeminiBackend(context.Background())
	if err != nil {
		log.Printf("Generative backend disabled: %s", err)
	} else {
		opts = append(opts, service.WithGenerativeBackend(backend))
	}

	ragService := service.NewRAGService(store, opts...)
	chatController := controller.NewChatController(ragService, syncService)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.GlobalRateLimiter.Limit())

	router.POST("/chat/message",
		middleware.ChatRateLimiter.Limit(),
		chatController.SendMessage)
	router.POST("/chat/feedback", chatController.SubmitFeedback)

	router.GET("/documents", chatController.GetDocuments)
	router.GET("/search", chatController.SearchDocuments)
	router.GET("/analytics/popular", chatController.GetPopularQueries)

	router.POST("/sync",
		middleware.StrictRateLimiter.Limit(),
		chatController.SyncCorpus)

	// Healthcheck endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"documents": store.Count(),
		})
	})

	router.Run(":8080")
}
