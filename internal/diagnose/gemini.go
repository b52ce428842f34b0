package diagnose

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"

	"github.com/example/cropdoctor/internal/config"
	"github.com/example/cropdoctor/internal/logger"
	"github.com/example/cropdoctor/internal/models"
)

const analyzePrompt = `You are an expert plant pathologist. Analyze this image of a plant leaf.
Identify the specific disease if present, or confirm if it is healthy.
Provide treatments (chemical and organic) and prevention methods.
IMPORTANT: Respond strictly in %s language.
Return strictly JSON matching the schema.`

// resultSchema forces the provider into structured output so parsing is
// deterministic. Field names must stay in sync with requiredFields.
var resultSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"diseaseName": {Type: genai.TypeString},
		"confidence":  {Type: genai.TypeNumber, Description: "Confidence score between 0 and 100"},
		"isHealthy":   {Type: genai.TypeBoolean},
		"description": {Type: genai.TypeString, Description: "Short diagnosis description"},
		"treatments": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "List of recommended treatments (organic and chemical)",
		},
		"preventions": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"diseaseName", "confidence", "isHealthy", "description", "treatments", "preventions"},
}

// GeminiAnalyzer implements Analyzer on Vertex AI Gemini.
type GeminiAnalyzer struct {
	cfg    config.AIConfig
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiAnalyzer creates an unloaded Gemini analyzer.
func NewGeminiAnalyzer(cfg config.AIConfig) *GeminiAnalyzer {
	return &GeminiAnalyzer{cfg: cfg}
}

// Load creates the Vertex AI client. Missing credentials are not a startup
// error: the analyzer stays unconfigured and Analyze reports ErrNotConfigured.
func (m *GeminiAnalyzer) Load(ctx context.Context) error {
	if m.cfg.ProjectID == "" {
		logger.Warn("diagnosis analyzer not configured, scans will fail until a credential is set")
		return nil
	}

	opts := []option.ClientOption{}
	if m.cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(m.cfg.CredentialsFile))
	}

	client, err := genai.NewClient(ctx, m.cfg.ProjectID, m.cfg.Location, opts...)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	model := client.GenerativeModel(m.cfg.Model)
	model.GenerationConfig.ResponseMIMEType = "application/json"
	model.GenerationConfig.ResponseSchema = resultSchema

	m.client = client
	m.model = model
	return nil
}

// Analyze submits the image with the pathologist prompt and parses the
// structured response. One attempt, no retry: any failure goes straight back
// to the caller.
func (m *GeminiAnalyzer) Analyze(ctx context.Context, imageData []byte, languageName string) (*models.DiagnosisResult, error) {
	if m.model == nil {
		return nil, ErrNotConfigured
	}

	prompt := fmt.Sprintf(analyzePrompt, languageName)
	img := genai.ImageData("image/jpeg", imageData)

	resp, err := m.model.GenerateContent(ctx, img, genai.Text(prompt))
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	return decodeResult([]byte(text))
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", errors.New("no response generated")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("no content in response")
	}
	text, ok := candidate.Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response part %T", candidate.Content.Parts[0])
	}
	return string(text), nil
}
