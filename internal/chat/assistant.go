// Package chat is the free-text assistant. Unlike diagnosis it never surfaces
// an error: every failure mode maps to a display-ready fallback string.
package chat

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"

	"github.com/example/cropdoctor/internal/config"
	"github.com/example/cropdoctor/internal/logger"
)

const (
	msgMissingKey  = "Error: API Key missing."
	msgNoResponse  = "I couldn't generate a response."
	msgConnTrouble = "Sorry, I am having trouble connecting to the server."
)

// Generator abstracts the text-generation call for tests.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Assistant answers farmer questions in the requested language.
type Assistant struct {
	gen Generator
}

// New creates an assistant on an explicit generator.
func New(gen Generator) *Assistant {
	return &Assistant{gen: gen}
}

// NewGemini creates an assistant backed by Vertex AI Gemini. With no
// credential configured the assistant loads in an unconfigured state and
// answers every question with the missing-key message.
func NewGemini(cfg config.AIConfig) *Assistant {
	return &Assistant{gen: &geminiGenerator{cfg: cfg}}
}

// Load prepares the underlying generator.
func (a *Assistant) Load(ctx context.Context) error {
	if l, ok := a.gen.(interface{ Load(context.Context) error }); ok {
		return l.Load(ctx)
	}
	return nil
}

// Ask returns the assistant's reply. The language directive and optional
// context ride along in the prompt. Always returns a display-ready string.
func (a *Assistant) Ask(ctx context.Context, message, languageName, priorContext string) string {
	prompt := fmt.Sprintf(`You are a helpful agricultural assistant for farmers.
Keep answers short, practical, and easy to understand.
IMPORTANT: Respond in %s language.
User asks: %s`, languageName, message)
	if priorContext != "" {
		prompt += "\nContext: " + priorContext
	}

	text, err := a.gen.Generate(ctx, prompt)
	if errors.Is(err, errNotConfigured) {
		return msgMissingKey
	}
	if err != nil {
		logger.Error("chat request failed", "err", err)
		return msgConnTrouble
	}
	if text == "" {
		return msgNoResponse
	}
	return text
}

var errNotConfigured = errors.New("chat: no AI credential configured")

type geminiGenerator struct {
	cfg    config.AIConfig
	client *genai.Client
	model  *genai.GenerativeModel
}

func (g *geminiGenerator) Load(ctx context.Context) error {
	if g.cfg.ProjectID == "" {
		logger.Warn("chat assistant not configured, replies will report a missing key")
		return nil
	}

	opts := []option.ClientOption{}
	if g.cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(g.cfg.CredentialsFile))
	}

	client, err := genai.NewClient(ctx, g.cfg.ProjectID, g.cfg.Location, opts...)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	g.client = client
	g.model = client.GenerativeModel(g.cfg.Model)
	return nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.model == nil {
		return "", errNotConfigured
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 {
		return "", nil
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", nil
	}
	if text, ok := candidate.Content.Parts[0].(genai.Text); ok {
		return string(text), nil
	}
	return "", nil
}
