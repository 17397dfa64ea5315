// cmd/server/main.go
package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/errorpointers/drip-campaign-backend/internal/cohere"
	"github.com/errorpointers/drip-campaign-backend/internal/config"
	"github.com/errorpointers/drip-campaign-backend/internal/controller"
	"github.com/errorpointers/drip-campaign-backend/internal/service"
	"github.com/errorpointers/drip-campaign-backend/internal/tts"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Fail fast: without COHERE_API_KEY the process must not serve requests
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	generator := cohere.NewClient(cfg.CohereBaseURL, cfg.CohereAPIKey, cfg.CohereModel)
	synthesizer := tts.NewClient(cfg.TTSBaseURL)

	campaignService := &service.CampaignService{
		Generator: generator,
		Groups:    service.RandomGroupChooser{},
	}

	audioService := &service.AudioService{
		Synth: synthesizer,
	}

	campaignController := &controller.CampaignController{
		CampaignService: campaignService,
		AudioService:    audioService,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Campaign routes
	r.Get("/health", campaignController.Health)
	r.Post("/generate-campaigns/", campaignController.GenerateCampaigns)
	r.Post("/export-campaigns-csv/", campaignController.ExportCampaignsCSV)
	r.Post("/generate-email-audio/", campaignController.GenerateEmailAudio)

	log.Println("🚀 Server running on " + cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, r))
}
