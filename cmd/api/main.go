package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/outreach-guardian/internal/config"
	"github.com/xavierca1/outreach-guardian/internal/infra/database"
	"github.com/xavierca1/outreach-guardian/internal/infra/http/handlers"
	"github.com/xavierca1/outreach-guardian/internal/infra/http/middleware"
	"github.com/xavierca1/outreach-guardian/internal/infra/integration/openai"
	"github.com/xavierca1/outreach-guardian/internal/infra/mail"
	"github.com/xavierca1/outreach-guardian/internal/infra/queue"
	"github.com/xavierca1/outreach-guardian/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg := config.Load()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// RabbitMQ is optional: without a broker the engine still gates contacts,
	// it just skips lead events and hot-lead alerts.
	var rabbitConn *amqp.Connection
	var producer usecase.EventPublisherInterface
	if cfg.RabbitMQ.Host != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.User, cfg.RabbitMQ.Pass, cfg.RabbitMQ.Host, cfg.RabbitMQ.Port)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		rabbitConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		mailSender := mail.NewEmailSender(cfg.SMTP)
		worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
		go worker.Start(queue.QueueName)
	} else {
		log.Println("⚠️ RABBITMQ_HOST not set, lead events disabled")
	}

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	statsRepo := database.NewStatsRepository(db)

	// External text-completion service
	chatClient := openai.NewClient(cfg.OpenAI)

	policy := usecase.ContactPolicy{
		IGDailyCap:             cfg.IGDailyCap,
		WADailyCap:             cfg.WADailyCap,
		CooldownHours:          cfg.CooldownHours,
		AllowTerminalOverwrite: cfg.AllowTerminalOverwrite,
		Location:               cfg.Location(),
	}

	// UseCases
	checkContactUC := usecase.NewCheckContactUseCase(leadRepo, statsRepo, policy)
	logAttemptUC := usecase.NewLogAttemptUseCase(leadRepo, policy)
	updateStatusUC := usecase.NewUpdateStatusUseCase(leadRepo, producer)
	updateScoreUC := usecase.NewUpdateScoreUseCase(leadRepo, producer, cfg.HotScoreThreshold)
	classifyUC := usecase.NewClassifyIntentUseCase(chatClient, leadRepo)
	generateUC := usecase.NewGenerateResponseUseCase(chatClient, statsRepo, policy)

	// Handlers
	guardianHandler := handlers.NewGuardianHandler(checkContactUC, logAttemptUC, updateStatusUC)
	leadsHandler := handlers.NewLeadsHandler(leadRepo, updateScoreUC, cfg.HotScoreThreshold)
	statsHandler := handlers.NewStatsHandler(leadRepo, statsRepo, policy)
	aiHandler := handlers.NewAIHandler(classifyUC, generateUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/can-contact", guardianHandler.HandleCanContact)
	r.Post("/log-attempt", guardianHandler.HandleLogAttempt)
	r.Post("/update-status", guardianHandler.HandleUpdateStatus)
	r.Get("/stats/today", statsHandler.HandleToday)
	r.Get("/leads", leadsHandler.HandleList)
	r.Get("/leads/hot", leadsHandler.HandleHot)
	r.Post("/leads/update-score", leadsHandler.HandleUpdateScore)
	r.Post("/ai/classify-intent", aiHandler.HandleClassifyIntent)
	r.Post("/ai/generate-response", aiHandler.HandleGenerateResponse)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("🛡️ Outreach Guardian listening on %s (tz=%s, ig_cap=%d, wa_cap=%d)",
		addr, cfg.Timezone, cfg.IGDailyCap, cfg.WADailyCap)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
