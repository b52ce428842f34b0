package diagnose

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/cropdoctor/internal/models"
)

func validPayload() map[string]any {
	return map[string]any{
		"diseaseName": "Tomato Late Blight",
		"confidence":  92.5,
		"isHealthy":   false,
		"description": "Dark lesions with pale green margins on the leaf surface.",
		"treatments":  []string{"Spray Copper Oxychloride", "Remove infected leaves"},
		"preventions": []string{"Avoid overhead irrigation", "Rotate crops yearly"},
	}
}

func marshal(t *testing.T, payload map[string]any) []byte {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return data
}

func TestDecodeResultRoundTrip(t *testing.T) {
	result, err := decodeResult(marshal(t, validPayload()))
	require.NoError(t, err)

	assert.Equal(t, "Tomato Late Blight", result.DiseaseName)
	assert.Equal(t, 92.5, result.Confidence)
	assert.False(t, result.IsHealthy)
	assert.Equal(t, "Dark lesions with pale green margins on the leaf surface.", result.Description)
	assert.Equal(t, []string{"Spray Copper Oxychloride", "Remove infected leaves"}, result.Treatments)
	assert.Equal(t, []string{"Avoid overhead irrigation", "Rotate crops yearly"}, result.Preventions)
}

func TestDecodeResultMissingFields(t *testing.T) {
	for _, field := range requiredFields {
		t.Run(field, func(t *testing.T) {
			payload := validPayload()
			delete(payload, field)

			result, err := decodeResult(marshal(t, payload))
			assert.Nil(t, result)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Contains(t, parseErr.Reason, field)
		})
	}
}

func TestDecodeResultInvalidJSON(t *testing.T) {
	result, err := decodeResult([]byte("I cannot tell what this leaf is."))
	assert.Nil(t, result)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestDecodeResultWrongFieldType(t *testing.T) {
	payload := validPayload()
	payload["confidence"] = "very sure"

	result, err := decodeResult(marshal(t, payload))
	assert.Nil(t, result)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

// Confidence outside [0,100] is reported as-is; the pipeline trusts the
// provider's number rather than clamping it.
func TestDecodeResultConfidenceNotClamped(t *testing.T) {
	payload := validPayload()
	payload["confidence"] = 180.0

	result, err := decodeResult(marshal(t, payload))
	require.NoError(t, err)
	assert.Equal(t, 180.0, result.Confidence)

	payload["confidence"] = -5.0
	result, err = decodeResult(marshal(t, payload))
	require.NoError(t, err)
	assert.Equal(t, -5.0, result.Confidence)
}

func TestDecodeResultEmptyDiseaseName(t *testing.T) {
	payload := validPayload()
	payload["diseaseName"] = ""

	result, err := decodeResult(marshal(t, payload))
	assert.Nil(t, result)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestNewAnalyzer(t *testing.T) {
	stub, err := NewAnalyzer(testAIConfig("stub"))
	require.NoError(t, err)
	assert.IsType(t, &StubAnalyzer{}, stub)

	gemini, err := NewAnalyzer(testAIConfig("gemini"))
	require.NoError(t, err)
	assert.IsType(t, &GeminiAnalyzer{}, gemini)

	_, err = NewAnalyzer(testAIConfig("llama"))
	assert.Error(t, err)
}

func TestGeminiAnalyzerNotConfigured(t *testing.T) {
	analyzer := NewGeminiAnalyzer(testAIConfig("gemini"))
	require.NoError(t, analyzer.Load(context.Background()))

	result, err := analyzer.Analyze(context.Background(), []byte{0xff, 0xd8}, "English")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestStubAnalyzer(t *testing.T) {
	stub := &StubAnalyzer{}
	require.NoError(t, stub.Load(context.Background()))

	result, err := stub.Analyze(context.Background(), nil, "English")
	require.NoError(t, err)
	assert.True(t, result.IsHealthy)
	assert.NotEmpty(t, result.DiseaseName)

	want := &models.DiagnosisResult{DiseaseName: "Downy Mildew", Confidence: 88}
	stub.Result = want
	result, err = stub.Analyze(context.Background(), nil, "English")
	require.NoError(t, err)
	assert.Equal(t, want, result)
}
