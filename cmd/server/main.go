package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	config "github.com/init0-hack8/postpulse/configs"
	"github.com/init0-hack8/postpulse/internal/api/handlers"
	"github.com/init0-hack8/postpulse/internal/api/middleware"
	job "github.com/init0-hack8/postpulse/internal/jobs"
	"github.com/init0-hack8/postpulse/internal/queue"
	"github.com/init0-hack8/postpulse/internal/repository"
	"github.com/init0-hack8/postpulse/internal/service"
	"github.com/init0-hack8/postpulse/internal/storage"
	"github.com/robfig/cron"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	mongoClient, err := storage.MongoDBClient(ctx, cfg.MongoURI)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeMongo(mongoClient)

	db := mongoClient.Database(cfg.DatabaseName)
	rdb := storage.RedisClient(cfg.RedisURI)

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)

	authService := service.NewAuthService(*cfg, userRepo)
	userService := service.NewUserService(userRepo)
	r2Service := service.NewR2Service(*cfg)
	previewService := service.NewPreviewService()
	postService := service.NewPostService(postRepo, r2Service)
	analysisService := service.NewAnalysisService(analysisRepo, rdb)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Get("/login", auth.Login)
	app.Get("/login/callback", auth.LoginCallbackHandler)
	app.Get("/logout", auth.Logout)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	user := handlers.NewUserHandler(userService)
	api.Get("/user/info", user.GetUserInfo)

	post := handlers.NewPostHandler(postService, previewService, client)
	api.Post("/posts/preview", post.PreviewImages)
	api.Post("/posts/create", post.CreatePost)
	api.Get("/posts", post.ListPosts)

	analysis := handlers.NewAnalysisHandler(analysisService)
	api.Get("/analysis/:postId", analysis.GetAnalysis)

	// cron jobs
	sweepJob := job.NewAnalysisSweepJob(postRepo, analysisRepo, client)

	//queue
	queueW := queue.NewQueue(postRepo, analysisService)

	c := cron.New()
	c.AddFunc("@every 00h10m00s", sweepJob.Sweep)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypeAnalyzePost, queueW.HandleAnalyzePostTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app, mongoClient)
}

func closeMongo(client *mongo.Client) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, client *mongo.Client) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeMongo(client)
	log.Println("Server shutdown complete.")
}
