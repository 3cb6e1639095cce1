package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	config "github.com/hazzsaeedharis/postgres-nl-agent/configs"
	"github.com/hazzsaeedharis/postgres-nl-agent/internal/db"
	"github.com/hazzsaeedharis/postgres-nl-agent/internal/handlers"
	"github.com/hazzsaeedharis/postgres-nl-agent/internal/nlu"
	"github.com/hazzsaeedharis/postgres-nl-agent/internal/respond"
	"github.com/hazzsaeedharis/postgres-nl-agent/internal/speech"
)

func main() {

	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if err := db.Init(settings); err != nil {
		log.Fatalf("Database init error: %v", err)
	}

	ctx := context.Background()
	query := &handlers.QueryHandler{
		NLU: buildNLU(ctx, settings),
	}

	// Speech and Gemini are optional; missing credentials disable them
	// instead of failing startup.
	if settings.GoogleCredentialsPath != "" {
		g, err := speech.NewGoogle(ctx, settings)
		if err != nil {
			log.Printf("Speech services disabled: %v", err)
		} else {
			query.Transcriber = g
			query.Synthesizer = g
		}
	} else {
		log.Println("GOOGLE_APPLICATION_CREDENTIALS not set; speech services disabled")
	}

	if settings.GeminiAPIKey != "" {
		phraser, err := respond.NewPhraser(ctx, settings.GeminiAPIKey)
		if err != nil {
			log.Printf("Gemini phrasing disabled: %v", err)
		} else {
			query.Phraser = phraser
		}
	}

	if !settings.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/", handlers.Console)
	r.GET("/health", handlers.Health)
	r.POST("/query/text", query.Text)
	r.POST("/query/voice", query.Voice)

	log.Printf("Listening on :%s", settings.Port)
	if err := r.Run(":" + settings.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func buildNLU(ctx context.Context, settings config.Settings) nlu.Processor {
	patterns := nlu.NewPatternMatcher()

	if settings.DialogflowProjectID == "" {
		log.Println("DIALOGFLOW_PROJECT_ID not set; using pattern matching")
		return patterns
	}

	df, err := nlu.NewDialogflow(ctx, settings, patterns)
	if err != nil {
		log.Printf("Dialogflow unavailable, using pattern matching: %v", err)
		return patterns
	}
	return df
}
