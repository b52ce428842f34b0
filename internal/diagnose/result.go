package diagnose

import (
	"encoding/json"

	"github.com/example/cropdoctor/internal/models"
)

// requiredFields are the result fields the provider is instructed to emit.
// A payload missing any of them is rejected whole; there is no partial result.
var requiredFields = []string{
	"diseaseName", "confidence", "isHealthy", "description", "treatments", "preventions",
}

// decodeResult validates and parses a structured diagnosis payload.
// Confidence is passed through as reported; values outside [0,100] are not
// clamped here.
func decodeResult(data []byte) (*models.DiagnosisResult, error) {
	// First unmarshal into a map to check for missing fields
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Reason: "invalid JSON payload", Err: err}
	}

	for _, field := range requiredFields {
		if _, exists := raw[field]; !exists {
			return nil, &ParseError{Reason: "missing required field '" + field + "'"}
		}
	}

	var result models.DiagnosisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &ParseError{Reason: "payload does not match result schema", Err: err}
	}
	if result.DiseaseName == "" {
		return nil, &ParseError{Reason: "empty diseaseName"}
	}
	return &result, nil
}
