package providers

import (
	"context"
	"fmt"

	"github.com/AzielCF/az-medical-mcp/domains/analysis"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/sirupsen/logrus"
)

// OpenAIProvider is the adapter for the OpenAI chat completions API.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

func NewOpenAIProvider(cfg Config) *OpenAIProvider {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey), option.WithMaxRetries(0)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIProvider{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}
}

func (p *OpenAIProvider) Name() string  { return NameOpenAI }
func (p *OpenAIProvider) Model() string { return p.model }

func (p *OpenAIProvider) Complete(ctx context.Context, req analysis.CompletionRequest) (analysis.CompletionResponse, error) {
	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserPrompt),
		},
		MaxTokens:   openai.Int(int64(req.MaxTokens)),
		Temperature: openai.Float(req.Temperature),
	})
	if err != nil {
		return analysis.CompletionResponse{}, err
	}
	if len(completion.Choices) == 0 {
		return analysis.CompletionResponse{}, fmt.Errorf("no choices in openai response")
	}

	usage := p.extractUsage(completion.Usage)
	logrus.WithFields(logrus.Fields{
		"model":         p.model,
		"input_tokens":  usage.InputTokens,
		"output_tokens": usage.OutputTokens,
	}).Debug("[OPENAI] Completion finished")

	return analysis.CompletionResponse{
		Text:  completion.Choices[0].Message.Content,
		Model: p.model,
		Usage: usage,
	}, nil
}

func (p *OpenAIProvider) extractUsage(usage openai.CompletionUsage) analysis.TokenUsage {
	return analysis.TokenUsage{
		InputTokens:  int(usage.PromptTokens),
		OutputTokens: int(usage.CompletionTokens),
		TotalTokens:  int(usage.TotalTokens),
	}
}
