package nlu

import "context"

// Result is the normalized output of natural-language understanding:
// a candidate intent label, its detection confidence, and the entities
// extracted from the text.
type Result struct {
	Intent     string            `json:"intent"`
	Confidence float64           `json:"confidence"`
	Entities   map[string]string `json:"entities"`
	Text       string            `json:"text"`
}

// Processor turns free text into a Result. Implementations may call external
// services; errors are wrapped as ExternalServiceError by the caller-facing
// implementations themselves.
type Processor interface {
	Process(ctx context.Context, text string) (Result, error)
}
