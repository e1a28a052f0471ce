package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Config holds configuration for the OpenAI chat completion client
type Config struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// Validate validates the client configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("llm: API key is required")
	}
	if c.Model == "" {
		return fmt.Errorf("llm: model is required")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("llm: max tokens must be positive")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("llm: temperature must be between 0 and 2")
	}
	return nil
}

// CompletionInput contains the messages for a chat completion request
type CompletionInput struct {
	System string
	Prompt string
}

// OpenAIClient generates text through the OpenAI chat completion API
type OpenAIClient struct {
	client *openai.Client
	config Config
	logger *zap.Logger
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(config Config, logger *zap.Logger) (*OpenAIClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Timeout <= 0 {
		config.Timeout = 90 * time.Second
	}

	return &OpenAIClient{
		client: openai.NewClient(config.APIKey),
		config: config,
		logger: logger,
	}, nil
}

// Complete runs a chat completion and returns the generated text
func (c *OpenAIClient) Complete(ctx context.Context, input CompletionInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if input.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: input.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: input.Prompt,
	})

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Messages:    messages,
		MaxTokens:   c.config.MaxTokens,
		Temperature: float32(c.config.Temperature),
	})
	if err != nil {
		c.logger.Error("Chat completion request failed",
			zap.String("model", c.config.Model),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", fmt.Errorf("llm: chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm: chat completion returned no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("llm: chat completion returned empty content")
	}

	c.logger.Info("Chat completion finished",
		zap.String("model", c.config.Model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Duration("elapsed", time.Since(start)))

	return content, nil
}
