package main

import (
	"database/sql"
	"log"

	"github.com/Maryncell/iabot-landing-page/internal/application"
	"github.com/Maryncell/iabot-landing-page/internal/config"
	"github.com/Maryncell/iabot-landing-page/internal/email"
	"github.com/Maryncell/iabot-landing-page/internal/infrastructure/repository"
	handlers "github.com/Maryncell/iabot-landing-page/internal/interfaces/http"
	"github.com/Maryncell/iabot-landing-page/internal/payments"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigin,
		AllowMethods:     "GET,POST,PATCH,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Email Client
	emailClient, err := email.NewClient(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPassword,
		cfg.SMTPFromName,
		cfg.SMTPFromEmail,
		cfg.SalesEmail,
	)
	if err != nil {
		log.Printf("Warning: Email client initialization failed: %v", err)
		emailClient = nil // Continuar sin email
	}

	// Catálogo
	catalogRepo := repository.NewCatalogRepository(db)
	catalogService := application.NewCatalogService(catalogRepo)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Contacto
	contactRepo := repository.NewContactRepository(db)
	contactService := application.NewContactService(contactRepo, emailClient)
	contactHandler := handlers.NewContactHandler(contactService)

	// Demo guionada
	sessionStore := repository.NewSessionStore(cfg.SessionTTL)
	leadRepo := repository.NewLeadRepository(db)
	limiter := application.NewRateLimiter(cfg.DemoRateWindow, cfg.DemoRateLimit)
	demoService := application.NewDemoService(sessionStore, leadRepo, emailClient, limiter, cfg.TypingDelay)
	demoHandler := handlers.NewDemoHandler(demoService)

	// Checkout
	var checkoutHandler *handlers.CheckoutHandler
	paymentsClient, err := payments.NewClient(cfg.StripeSecretKey, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL)
	if err != nil {
		log.Printf("Warning: Payments client initialization failed: %v", err)
	} else {
		checkoutService := application.NewCheckoutService(catalogRepo, paymentsClient)
		checkoutHandler = handlers.NewCheckoutHandler(checkoutService)
	}

	api := app.Group("/api")

	// Catálogo de planes y add-ons
	api.Get("/planes", catalogHandler.GetPlans)
	api.Get("/features", catalogHandler.GetFeatures)

	// Formulario de contacto
	api.Post("/contacto", contactHandler.Create)
	api.Get("/contacto", contactHandler.List)
	api.Patch("/contacto/:id/estado", contactHandler.UpdateEstado)

	// Bot demo
	demo := api.Group("/demo")
	demo.Post("/chat", demoHandler.Chat)
	demo.Post("/toggle", demoHandler.Toggle)
	demo.Post("/reset", demoHandler.Reset)
	demo.Get("/session/:id", demoHandler.GetSession)

	// Checkout hospedado
	if checkoutHandler != nil {
		api.Post("/create-checkout-session", checkoutHandler.CreateSession)
	}

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
