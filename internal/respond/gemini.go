package respond

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Phraser rewrites the template summary into a more conversational answer
// using Gemini. It is strictly optional: any failure returns the template
// message unchanged, so an outage never fails a query.
type Phraser struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewPhraser(ctx context.Context, apiKey string) (*Phraser, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-flash")
	model.SetMaxOutputTokens(100)

	return &Phraser{client: client, model: model}, nil
}

func (p *Phraser) Phrase(ctx context.Context, question, summary string, rowCount int) string {
	prompt := fmt.Sprintf(
		"A user asked a database question: %q\n"+
			"The query returned %d rows. The plain answer is: %q\n"+
			"Rephrase the plain answer as one short, friendly sentence. "+
			"Do not invent numbers or facts.",
		question, rowCount, summary,
	)

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Gemini phrasing failed, using template message: %v", err)
		return summary
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return summary
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			if phrased := strings.TrimSpace(string(text)); phrased != "" {
				return phrased
			}
		}
	}
	return summary
}

func (p *Phraser) Close() error { return p.client.Close() }
