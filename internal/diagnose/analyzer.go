package diagnose

import (
	"context"
	"fmt"

	"github.com/example/cropdoctor/internal/config"
	"github.com/example/cropdoctor/internal/models"
)

// Analyzer turns a leaf photo into a structured diagnosis.
type Analyzer interface {
	// Load initializes the analyzer with its configuration
	Load(ctx context.Context) error
	// Analyze submits the image and returns the parsed diagnosis. The
	// language name is embedded in the prompt so the provider answers in it.
	Analyze(ctx context.Context, imageData []byte, languageName string) (*models.DiagnosisResult, error)
}

// NewAnalyzer creates an analyzer for the configured provider type.
func NewAnalyzer(cfg config.AIConfig) (Analyzer, error) {
	switch cfg.Type {
	case "gemini":
		return NewGeminiAnalyzer(cfg), nil
	case "stub":
		return &StubAnalyzer{}, nil
	default:
		return nil, fmt.Errorf("unsupported analyzer type: %s", cfg.Type)
	}
}
