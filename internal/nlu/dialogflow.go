package nlu

import (
	"context"
	"fmt"
	"log"
	"strconv"

	dialogflow "cloud.google.com/go/dialogflow/apiv2"
	"cloud.google.com/go/dialogflow/apiv2/dialogflowpb"
	"github.com/google/uuid"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/types/known/structpb"

	config "github.com/hazzsaeedharis/postgres-nl-agent/configs"
)

// Dialogflow detects intents through a Dialogflow ES agent. Any detection
// failure falls back to pattern matching rather than failing the request,
// matching the service's best-effort NLU contract.
type Dialogflow struct {
	sessions  *dialogflow.SessionsClient
	projectID string
	language  string
	fallback  *PatternMatcher
}

func NewDialogflow(ctx context.Context, settings config.Settings, fallback *PatternMatcher) (*Dialogflow, error) {
	var opts []option.ClientOption
	if settings.GoogleCredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(settings.GoogleCredentialsPath))
	}

	client, err := dialogflow.NewSessionsClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("dialogflow sessions client: %w", err)
	}

	return &Dialogflow{
		sessions:  client,
		projectID: settings.DialogflowProjectID,
		language:  settings.DialogflowLanguageCode,
		fallback:  fallback,
	}, nil
}

func (d *Dialogflow) Process(ctx context.Context, text string) (Result, error) {
	session := fmt.Sprintf("projects/%s/agent/sessions/%s", d.projectID, uuid.NewString())

	resp, err := d.sessions.DetectIntent(ctx, &dialogflowpb.DetectIntentRequest{
		Session: session,
		QueryInput: &dialogflowpb.QueryInput{
			Input: &dialogflowpb.QueryInput_Text{
				Text: &dialogflowpb.TextInput{
					Text:         text,
					LanguageCode: d.language,
				},
			},
		},
	})
	if err != nil {
		log.Printf("Dialogflow detect-intent failed, falling back to patterns: %v", err)
		return d.fallback.Process(ctx, text)
	}

	qr := resp.GetQueryResult()
	if qr.GetIntent() == nil || qr.GetIntent().GetDisplayName() == "" {
		return d.fallback.Process(ctx, text)
	}

	entities := parameterEntities(qr.GetParameters())
	// Dialogflow agents do not always annotate every entity the templates
	// need; the local extractor fills the gaps.
	for name, value := range extractEntities(text) {
		if _, present := entities[name]; !present {
			entities[name] = value
		}
	}

	return Result{
		Intent:     qr.GetIntent().GetDisplayName(),
		Confidence: float64(qr.GetIntentDetectionConfidence()),
		Entities:   entities,
		Text:       text,
	}, nil
}

func (d *Dialogflow) Close() error { return d.sessions.Close() }

func parameterEntities(params *structpb.Struct) map[string]string {
	entities := map[string]string{}
	for name, value := range params.GetFields() {
		switch v := value.GetKind().(type) {
		case *structpb.Value_StringValue:
			if v.StringValue != "" {
				entities[name] = v.StringValue
			}
		case *structpb.Value_NumberValue:
			entities[name] = strconv.FormatFloat(v.NumberValue, 'f', -1, 64)
		}
	}
	return entities
}
