package diagnose

import (
	"context"

	"github.com/example/cropdoctor/internal/models"
)

// StubAnalyzer returns a canned healthy diagnosis. It backs credential-less
// development and the session tests.
type StubAnalyzer struct {
	// Result overrides the canned diagnosis when set.
	Result *models.DiagnosisResult
	// Err makes Analyze fail when set.
	Err error
}

// Load initializes the stub; there is nothing to load.
func (s *StubAnalyzer) Load(ctx context.Context) error { return nil }

// Analyze returns the configured result or error without any network call.
func (s *StubAnalyzer) Analyze(ctx context.Context, imageData []byte, languageName string) (*models.DiagnosisResult, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Result != nil {
		return s.Result, nil
	}
	return &models.DiagnosisResult{
		DiseaseName: "Healthy Plant",
		Confidence:  97,
		IsHealthy:   true,
		Description: "No visible disease symptoms on the leaf surface.",
		Treatments:  []string{},
		Preventions: []string{"Maintain regular watering", "Inspect leaves weekly"},
	}, nil
}
