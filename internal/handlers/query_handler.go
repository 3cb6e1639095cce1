package handlers

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hazzsaeedharis/postgres-nl-agent/internal/agenterr"
	"github.com/hazzsaeedharis/postgres-nl-agent/internal/db"
	"github.com/hazzsaeedharis/postgres-nl-agent/internal/intent"
	"github.com/hazzsaeedharis/postgres-nl-agent/internal/nlu"
	"github.com/hazzsaeedharis/postgres-nl-agent/internal/respond"
	"github.com/hazzsaeedharis/postgres-nl-agent/internal/speech"
)

// QueryHandler composes the request pipeline: NLU -> template mapping ->
// execution -> formatting, with optional speech on either end. Speech and
// phrasing dependencies may be nil when the services are not configured.
type QueryHandler struct {
	NLU         nlu.Processor
	Transcriber speech.Transcriber
	Synthesizer speech.Synthesizer
	Phraser     *respond.Phraser

	// Now anchors date-phrase resolution; tests pin it for determinism.
	Now func() time.Time
}

type QueryRequest struct {
	Query string `json:"query" binding:"required"`
}

type QueryResponse struct {
	Query        string           `json:"query"`
	SQLGenerated string           `json:"sql_generated"`
	Result       []map[string]any `json:"result"`
	Confidence   float64          `json:"confidence"`
	Message      string           `json:"message"`
	SpeechAudio  string           `json:"speech_audio,omitempty"`
}

// POST /query/text
func (h *QueryHandler) Text(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: query is required"})
		return
	}

	h.run(c, req.Query)
}

// POST /query/voice
func (h *QueryHandler) Voice(c *gin.Context) {
	if h.Transcriber == nil {
		respondError(c, &agenterr.ExternalServiceError{
			Service: "speech-to-text",
			Err:     fmt.Errorf("not configured"),
		})
		return
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is required"})
		return
	}
	if ct := fileHeader.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "audio/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file must be an audio file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read audio file"})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read audio file"})
		return
	}

	query, err := h.Transcriber.Transcribe(c.Request.Context(), audio)
	if err != nil {
		respondError(c, err)
		return
	}

	h.run(c, query)
}

func (h *QueryHandler) run(c *gin.Context, query string) {
	ctx := c.Request.Context()

	nluResult, err := h.NLU.Process(ctx, query)
	if err != nil {
		respondError(c, err)
		return
	}

	detected, ok := intent.Parse(nluResult.Intent)
	if !ok {
		respondError(c, &agenterr.UnsupportedIntentError{Label: nluResult.Intent})
		return
	}

	stmt, err := intent.Map(detected, intent.Entities(nluResult.Entities), h.now())
	if err != nil {
		respondError(c, err)
		return
	}

	rows, err := db.Exec(ctx, stmt)
	if err != nil {
		respondError(c, err)
		return
	}

	message := respond.Message(detected, rows)
	if h.Phraser != nil {
		message = h.Phraser.Phrase(ctx, query, message, len(rows))
	}

	resp := QueryResponse{
		Query:        query,
		SQLGenerated: stmt.SQL,
		Result:       rows,
		Confidence:   nluResult.Confidence,
		Message:      message,
	}

	if c.Query("speak") == "true" && h.Synthesizer != nil {
		audio, err := h.Synthesizer.Synthesize(ctx, message)
		if err != nil {
			// The textual answer is already complete; log and return it.
			log.Printf("Speech synthesis failed: %v", err)
		} else {
			resp.SpeechAudio = base64.StdEncoding.EncodeToString(audio)
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *QueryHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func respondError(c *gin.Context, err error) {
	status := agenterr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("Query failed: %v", err)
	}
	c.JSON(status, gin.H{"error": agenterr.PublicMessage(err)})
}
