package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-pro"

// LLMClient submits a prompt to the model and parses the JSON it returns
// into target. It performs no retries; failures propagate to the caller.
type LLMClient interface {
	GenerateJSON(ctx context.Context, prompt string, target any) error
}

type geminiClient struct {
	apiKey      string
	temperature float32
}

func NewGeminiClient(apiKey string) LLMClient {
	return &geminiClient{
		apiKey:      apiKey,
		temperature: 0.3,
	}
}

// GenerateJSON implements LLMClient.
func (g *geminiClient) GenerateJSON(ctx context.Context, prompt string, target any) error {
	// The client is rebuilt from the stored key on every call, so a rotated
	// key takes effect without a restart.
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to create gemini client: %v", ErrModel, err)
	}

	temperature := g.temperature
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), config)
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)
		return fmt.Errorf("%w: %v", ErrModel, err)
	}

	if resp == nil || resp.Text() == "" {
		log.Println("❌ No text content in Gemini response")
		return fmt.Errorf("%w: no text content in response", ErrModel)
	}

	return decodeModelJSON(resp.Text(), target)
}

// decodeModelJSON strips an optional markdown code fence from the raw model
// output and parses the remainder as JSON. No partial recovery is attempted.
func decodeModelJSON(raw string, target any) error {
	cleaned := stripCodeFence(raw)
	if err := json.Unmarshal([]byte(cleaned), target); err != nil {
		return fmt.Errorf("%w: %v", ErrResponseFormat, err)
	}
	return nil
}

func stripCodeFence(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
