package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mvictorr/datacrazy-cpf/internal/audit"
	"github.com/mvictorr/datacrazy-cpf/internal/config"
	"github.com/mvictorr/datacrazy-cpf/internal/infra/http/handlers"
	appmiddleware "github.com/mvictorr/datacrazy-cpf/internal/infra/http/middleware"
	"github.com/mvictorr/datacrazy-cpf/internal/infra/integration/cpfbrasil"
	"github.com/mvictorr/datacrazy-cpf/internal/infra/integration/datacrazy"
	"github.com/mvictorr/datacrazy-cpf/internal/usecase"
)

func main() {
	godotenv.Load()

	// 1. Config e histórico (tudo em memória, nada vai para disco)
	configStore := config.NewStoreFromEnv()
	activityLog := audit.NewLog()

	// 2. Clients externos
	cpfClient := cpfbrasil.NewClient(os.Getenv("CPF_API_BASE"))
	crmClient := datacrazy.NewClient(os.Getenv("CRM_API_BASE"))

	// 3. UseCases
	webhookUC := usecase.NewProcessWebhookUseCase(configStore, cpfClient, crmClient, activityLog)
	consultaUC := usecase.NewConsultarCPFUseCase(configStore, cpfClient, activityLog)

	// 4. Handlers
	healthHandler := handlers.NewHealthHandler()
	configHandler := handlers.NewConfigHandler(configStore, activityLog)
	webhookHandler := handlers.NewWebhookHandler(webhookUC)
	consultaHandler := handlers.NewConsultaHandler(consultaUC)
	scriptHandler := handlers.NewScriptHandler()
	logsHandler := handlers.NewLogsHandler(activityLog)

	// 5. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/api/config", configHandler.HandleGet)
	r.Post("/api/config", configHandler.HandleSet)
	r.Post("/api/webhook/datacrazy", webhookHandler.Handle)
	r.Post("/api/consultar-cpf", consultaHandler.Handle)
	r.Post("/api/gerar-javascript", scriptHandler.Handle)
	r.Get("/api/logs", logsHandler.HandleList)
	r.Delete("/api/logs", logsHandler.HandleClear)
	r.Get("/api/stats", logsHandler.HandleStats)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🔥 API de consulta de CPF rodando na porta :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
