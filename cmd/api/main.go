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
	"github.com/gofiber/fiber/v2/middleware/recover"

	"rahultripathi/resume-screener/internal/config"
	"rahultripathi/resume-screener/internal/handlers"
	"rahultripathi/resume-screener/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	llmClient := services.NewGeminiClient(cfg.Gemini.APIKey)
	extractor := services.NewStructuredDataExtractor(llmClient)
	evaluator := services.NewEvaluatorService(llmClient, services.WeightedScorer{})
	mailer := services.NewMailer(cfg.Mail)
	log.Println("✅ Services initialized successfully")

	// Spreadsheet logging is optional; the pipeline runs without it.
	var resultLogger services.ResultLogger
	if cfg.Sheets.Enabled() {
		rl, err := services.NewSheetsLogger(context.Background(), cfg.Sheets)
		if err != nil {
			log.Printf("⚠️  Spreadsheet logging disabled: %v\n", err)
		} else {
			resultLogger = rl
			log.Println("✅ Spreadsheet logger initialized")
		}
	}

	// Initialize pipeline
	pipeline := services.NewPipeline(
		pdfParser,
		extractor,
		evaluator,
		mailer,
		resultLogger,
		cfg.JobProfile,
		cfg.Mail.FallbackRecipient,
	)
	log.Println("✅ Screening pipeline initialized")

	// Initialize handlers
	resumeHandler := handlers.NewResumeHandler(
		storageService,
		pipeline,
		cfg.Storage.MaxFileSize,
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI-Powered Resume Screening",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI-Powered Resume Screening API is running!",
			"endpoints": fiber.Map{
				"upload": "POST /upload_resume",
				"docs":   "/docs",
			},
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	app.Post("/upload_resume", resumeHandler.HandleUploadResume)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"detail": err.Error(),
	})
}
