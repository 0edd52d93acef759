package nemotron

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"ats-backend/internal/llm"
	"ats-backend/internal/shared/telemetry"
)

// Client implements llm.Client against the NVIDIA build.nvidia.com
// OpenAI-compatible chat completions endpoint.
type Client struct {
	client openai.Client
	model  string
}

// NewClient constructs a client for the given endpoint and model.
func NewClient(baseURL, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if strings.TrimSpace(baseURL) != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Client{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// Analyze performs a single chat completion call and returns the raw
// response text. Sampling is pinned low so the model stays close to the
// requested JSON shape; streaming is off because the whole blob goes to
// the normalizer at once.
func (c *Client) Analyze(ctx context.Context, input llm.AnalyzeInput) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(llm.SystemPrompt),
			openai.UserMessage(llm.BuildUserPrompt(input.ResumeText, input.JobDescription)),
		},
		Temperature:      openai.Float(0.1),
		TopP:             openai.Float(0.8),
		MaxTokens:        openai.Int(4096),
		FrequencyPenalty: openai.Float(0),
		PresencePenalty:  openai.Float(0),
	})
	if err != nil {
		return "", fmt.Errorf("nemotron chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("nemotron response missing choices")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("nemotron response empty content")
	}

	telemetry.Info("llm.response", map[string]any{
		"model":             c.model,
		"prompt_tokens":     resp.Usage.PromptTokens,
		"completion_tokens": resp.Usage.CompletionTokens,
		"total_tokens":      resp.Usage.TotalTokens,
	})
	return content, nil
}

var _ llm.Client = (*Client)(nil)
