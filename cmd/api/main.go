package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anvaya/crm-backend/internal/infra/database"
	"github.com/anvaya/crm-backend/internal/infra/http/handlers"
	"github.com/anvaya/crm-backend/internal/infra/http/middleware"
	"github.com/anvaya/crm-backend/internal/infra/mail"
	"github.com/anvaya/crm-backend/internal/infra/queue"
	"github.com/anvaya/crm-backend/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	// RabbitMQ and SMTP are optional collaborators; the API runs fine
	// without either.
	var rabbitMQ *queue.RabbitMQ
	var publisher usecase.LeadEventPublisher
	if os.Getenv("RABBITMQ_HOST") != "" {
		rabbitMQ, err = queue.NewRabbitMQ(
			getenv("RABBITMQ_USER", "guest"),
			getenv("RABBITMQ_PASS", "guest"),
			os.Getenv("RABBITMQ_HOST"),
			getenv("RABBITMQ_PORT", "5672"),
		)
		if err != nil {
			log.Fatalf("rabbitmq connection failed: %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		publisher = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	}

	var notifier usecase.AgentNotifier
	if os.Getenv("MAIL_HOST") != "" {
		mailPort, _ := strconv.Atoi(getenv("MAIL_PORT", "587"))
		notifier = mail.NewEmailSender(
			os.Getenv("MAIL_HOST"),
			mailPort,
			os.Getenv("MAIL_USER"),
			os.Getenv("MAIL_PASS"),
			getenv("MAIL_FROM", "no-reply@anvaya.local"),
		)
	}

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	agentRepo := database.NewSalesAgentRepository(db)
	commentRepo := database.NewCommentRepository(db)
	tagRepo := database.NewTagRepository(db)

	// Use cases
	createAgentUC := usecase.NewCreateAgentUseCase(agentRepo)
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, agentRepo, notifier)
	updateLeadUC := usecase.NewUpdateLeadUseCase(leadRepo, publisher)
	createCommentUC := usecase.NewCreateCommentUseCase(leadRepo, commentRepo)

	// Handlers
	agentHandler := handlers.NewAgentHandler(createAgentUC, agentRepo)
	leadHandler := handlers.NewLeadHandler(createLeadUC, updateLeadUC, leadRepo)
	commentHandler := handlers.NewCommentHandler(createCommentUC, commentRepo)
	tagHandler := handlers.NewTagHandler(tagRepo)
	reportHandler := handlers.NewReportHandler(leadRepo)

	var healthHandler *handlers.HealthHandler
	if rabbitMQ != nil {
		healthHandler = handlers.NewHealthHandler(db, rabbitMQ.Conn)
	} else {
		healthHandler = handlers.NewHealthHandler(db, nil)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/api/agents", agentHandler.HandleCreate)
	r.Get("/api/agents", agentHandler.HandleList)

	r.Post("/api/leads", leadHandler.HandleCreate)
	r.Get("/api/leads", leadHandler.HandleList)
	r.Put("/api/leads/{id}", leadHandler.HandleUpdate)
	r.Delete("/api/leads/{id}", leadHandler.HandleDelete)

	r.Post("/api/leads/{id}/comments", commentHandler.HandleCreate)
	r.Get("/api/leads/{id}/comments", commentHandler.HandleList)

	r.Post("/api/tags", tagHandler.HandleCreate)
	r.Get("/api/tags", tagHandler.HandleList)

	r.Get("/report/leads-by-status", reportHandler.HandleLeadsByStatus)
	r.Get("/report/pipeline", reportHandler.HandlePipeline)
	r.Get("/report/closed-by-agent", reportHandler.HandleClosedByAgent)
	r.Get("/report/last-week", reportHandler.HandleLastWeek)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + getenv("PORT", "8080")
	log.Printf("lead tracker API listening on %s", port)
	if err := http.ListenAndServe(port, r); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
