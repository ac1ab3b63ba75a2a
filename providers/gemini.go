package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/AzielCF/az-medical-mcp/domains/analysis"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// GeminiProvider is the adapter for the Gemini API.
type GeminiProvider struct {
	apiKey  string
	baseURL string
	model   string
}

func NewGeminiProvider(cfg Config) *GeminiProvider {
	return &GeminiProvider{apiKey: cfg.APIKey, baseURL: cfg.BaseURL, model: cfg.Model}
}

func (p *GeminiProvider) Name() string  { return NameGemini }
func (p *GeminiProvider) Model() string { return p.model }

func (p *GeminiProvider) Complete(ctx context.Context, req analysis.CompletionRequest) (analysis.CompletionResponse, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if p.baseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: p.baseURL}
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return analysis.CompletionResponse{}, err
	}

	result, err := client.Models.GenerateContent(ctx, p.model, genai.Text(req.UserPrompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens:   int32(req.MaxTokens),
	})
	if err != nil {
		return analysis.CompletionResponse{}, err
	}
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return analysis.CompletionResponse{}, fmt.Errorf("no response from gemini")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" && !part.Thought {
			text.WriteString(part.Text)
		}
	}

	usage := p.extractUsage(result.UsageMetadata)
	logrus.WithFields(logrus.Fields{
		"model":         p.model,
		"input_tokens":  usage.InputTokens,
		"output_tokens": usage.OutputTokens,
	}).Debug("[GEMINI] Completion finished")

	return analysis.CompletionResponse{Text: text.String(), Model: p.model, Usage: usage}, nil
}

func (p *GeminiProvider) extractUsage(usage *genai.GenerateContentResponseUsageMetadata) analysis.TokenUsage {
	if usage == nil {
		return analysis.TokenUsage{}
	}
	return analysis.TokenUsage{
		InputTokens:  int(usage.PromptTokenCount),
		OutputTokens: int(usage.CandidatesTokenCount),
		TotalTokens:  int(usage.TotalTokenCount),
	}
}
