package speech

import (
	"context"
	"fmt"
	"strings"

	speechapi "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	tts "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"

	config "github.com/hazzsaeedharis/postgres-nl-agent/configs"
	"github.com/hazzsaeedharis/postgres-nl-agent/internal/agenterr"
)

// Google implements Transcriber and Synthesizer over Google Cloud
// Speech-to-Text and Text-to-Speech.
type Google struct {
	stt        *speechapi.Client
	tts        *tts.Client
	encoding   speechpb.RecognitionConfig_AudioEncoding
	sampleRate int32
	language   string
}

func NewGoogle(ctx context.Context, settings config.Settings) (*Google, error) {
	var opts []option.ClientOption
	if settings.GoogleCredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(settings.GoogleCredentialsPath))
	}

	sttClient, err := speechapi.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("speech-to-text client: %w", err)
	}

	ttsClient, err := tts.NewClient(ctx, opts...)
	if err != nil {
		sttClient.Close()
		return nil, fmt.Errorf("text-to-speech client: %w", err)
	}

	return &Google{
		stt:        sttClient,
		tts:        ttsClient,
		encoding:   encodingFromName(settings.SpeechEncoding),
		sampleRate: int32(settings.SpeechSampleRate),
		language:   settings.SpeechLanguageCode,
	}, nil
}

func (g *Google) Transcribe(ctx context.Context, audio []byte) (string, error) {
	resp, err := g.stt.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   g.encoding,
			SampleRateHertz:            g.sampleRate,
			LanguageCode:               g.language,
			EnableAutomaticPunctuation: true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", &agenterr.ExternalServiceError{Service: "speech-to-text", Err: err}
	}

	var parts []string
	for _, result := range resp.GetResults() {
		if alts := result.GetAlternatives(); len(alts) > 0 {
			parts = append(parts, alts[0].GetTranscript())
		}
	}

	transcript := strings.TrimSpace(strings.Join(parts, " "))
	if transcript == "" {
		return "", &agenterr.ExternalServiceError{
			Service: "speech-to-text",
			Err:     fmt.Errorf("no speech detected in audio"),
		}
	}
	return transcript, nil
}

func (g *Google) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := g.tts.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: g.language,
			SsmlGender:   texttospeechpb.SsmlVoiceGender_NEUTRAL,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return nil, &agenterr.ExternalServiceError{Service: "text-to-speech", Err: err}
	}
	return resp.GetAudioContent(), nil
}

func (g *Google) Close() error {
	sttErr := g.stt.Close()
	ttsErr := g.tts.Close()
	if sttErr != nil {
		return sttErr
	}
	return ttsErr
}

func encodingFromName(name string) speechpb.RecognitionConfig_AudioEncoding {
	switch strings.ToUpper(name) {
	case "FLAC":
		return speechpb.RecognitionConfig_FLAC
	case "MULAW":
		return speechpb.RecognitionConfig_MULAW
	case "OGG_OPUS":
		return speechpb.RecognitionConfig_OGG_OPUS
	case "WEBM_OPUS":
		return speechpb.RecognitionConfig_WEBM_OPUS
	default:
		return speechpb.RecognitionConfig_LINEAR16
	}
}
