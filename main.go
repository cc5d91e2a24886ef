package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/streadway/amqp"

	"coursehub/internal/handlers"
	"coursehub/internal/middleware"
	"coursehub/internal/models"
	"coursehub/internal/repositories"
	"coursehub/internal/services"
	"coursehub/pkg/rabbitmq"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	// --- Configuration ---
	// Load a local .env if present, then read everything through Viper.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("STORAGE_DRIVER", "file")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("JWT_SECRET", "coursehub_dev_secret")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables eventing
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Initialize RabbitMQ Client (optional) ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		var err error
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, catalog events disabled")
	}

	// --- Initialize Repositories ---
	courseRepo, reviewRepo, userRepo, err := buildRepositories()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// --- Initialize Services ---
	var publisher services.EventPublisher
	if mqClient != nil {
		publisher = mqClient
	}
	courseService := services.NewCourseService(courseRepo, publisher)
	reviewService := services.NewReviewService(reviewRepo, publisher)
	authService := services.NewAuthService(userRepo, viper.GetString("JWT_SECRET"))

	// --- Initialize Handlers ---
	courseHandler := handlers.NewCourseHandler(courseService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	authHandler := handlers.NewAuthHandler(authService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")

	// Public routes: auth, catalog reads, review reads
	authHandler.RegisterRoutes(apiV1)
	courseHandler.RegisterRoutes(apiV1)
	reviewHandler.RegisterRoutes(apiV1)

	// Authenticated routes: review creation for any logged-in user,
	// course creation gated to mentors and admins
	authed := apiV1.Group("", middleware.AuthRequired(authService))
	reviewHandler.RegisterProtectedRoutes(authed)
	mentorOnly := authed.Group("", middleware.RequireRole(models.RoleMentor, models.RoleAdmin))
	courseHandler.RegisterProtectedRoutes(mentorOnly)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for catalog events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received Catalog Event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil // Return nil to acknowledge
			}
			if consumerErr := mqClient.ConsumeCourseEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// buildRepositories selects the storage backend from STORAGE_DRIVER:
// "file" (the default JSON-file store), "sqlite", or "postgres".
func buildRepositories() (repositories.CourseRepository, repositories.ReviewRepository, repositories.UserRepository, error) {
	driver := viper.GetString("STORAGE_DRIVER")
	switch driver {
	case "file":
		dataDir := viper.GetString("DATA_DIR")
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create data dir %s: %w", dataDir, err)
		}
		return repositories.NewFileCourseRepository(dataDir),
			repositories.NewFileReviewRepository(dataDir),
			repositories.NewFileUserRepository(dataDir),
			nil

	case "sqlite", "postgres":
		dsn := viper.GetString("DATABASE_DSN")
		var dialector gorm.Dialector
		if driver == "sqlite" {
			if dsn == "" {
				dsn = "coursehub.db"
			}
			dialector = sqlite.Open(dsn)
		} else {
			dialector = postgres.Open(dsn)
		}
		db, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
		}
		if err := db.AutoMigrate(&models.Course{}, &models.Review{}, &models.User{}); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		return repositories.NewGORMCourseRepository(db),
			repositories.NewGORMReviewRepository(db),
			repositories.NewGORMUserRepository(db),
			nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
}
