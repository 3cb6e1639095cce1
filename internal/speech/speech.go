package speech

import "context"

// Transcriber converts recorded audio to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Synthesizer converts text to spoken audio (MP3 bytes).
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
