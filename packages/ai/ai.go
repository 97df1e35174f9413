package ai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"larpscan/packages/config"
)

// systemInstruction frames every generation request.
const systemInstruction = "You are a senior blockchain security expert conducting due diligence on cryptocurrency projects. Your task is to analyze GitHub repositories to determine if they contain legitimate code or are 'larping' (pretending to be more substantial than they are). Be brutally honest and concise in your assessment."

// Client wraps the generation service behind a single synchronous call.
type Client struct {
	genai *genai.Client
	cfg   config.AIConfig
	log   *slog.Logger
}

// NewClient builds a generation client from the injected key and model
// settings.
func NewClient(ctx context.Context, apiKey string, cfg config.AIConfig, log *slog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set in environment")
	}
	if log == nil {
		log = slog.Default()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{genai: client, cfg: cfg, log: log}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.genai.Close()
}

// Generate performs one low-temperature, bounded-output generation call
// and returns the produced text verbatim.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	model := c.genai.GenerativeModel(c.cfg.Model)

	// Configure model settings
	model.SetTemperature(c.cfg.Temperature)
	model.SetTopK(c.cfg.TopK)
	model.SetTopP(c.cfg.TopP)
	model.SetMaxOutputTokens(c.cfg.MaxOutputTokens)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	c.log.Info("Sending request to Gemini API", "model", c.cfg.Model, "promptLength", len(prompt))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	// Extract response
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	c.log.Info("Successfully generated analysis", "contentLength", len(text))

	return text, nil
}
