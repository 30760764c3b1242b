package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"golang.org/x/time/rate"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-3.5-turbo"

// Request is a single completion call.
type Request struct {
	Prompt      string
	Role        string // system message framing the model's expertise
	Temperature float32
	MaxTokens   int

	// Check, when set, reports whether a completion is usable. Completers
	// that reuse earlier output only reuse text that passes it.
	Check func(text string) error
}

// Completer turns a prompt into raw model text.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Options configures NewClient.
type Options struct {
	APIKey            string
	BaseURL           string
	Model             string
	RequestsPerMinute int
}

// Client calls an OpenAI-compatible chat model. It holds no per-request
// state and is safe for concurrent use.
type Client struct {
	chat      model.BaseChatModel
	modelName string
	limiter   *rate.Limiter
}

// NewClient builds the provider client. It fails with ErrConfiguration when
// no API key is supplied.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY environment variable is required", ErrConfiguration)
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}

	chat, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  opts.APIKey,
		BaseURL: opts.BaseURL,
		Model:   opts.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: chat model: %v", ErrConfiguration, err)
	}

	return NewClientWithModel(chat, opts.Model, NewLimiter(opts.RequestsPerMinute)), nil
}

// NewClientWithModel wraps an existing chat model. limiter may be nil.
func NewClientWithModel(chat model.BaseChatModel, modelName string, limiter *rate.Limiter) *Client {
	return &Client{chat: chat, modelName: modelName, limiter: limiter}
}

// NewLimiter returns a token bucket allowing rpm requests per minute, or nil
// when rpm is not positive.
func NewLimiter(rpm int) *rate.Limiter {
	if rpm <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1)
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.modelName
}

// Complete sends the role as a system message and the prompt as a user
// message. Every failure is wrapped in ErrGeneration.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: rate limiter: %w", ErrGeneration, err)
		}
	}

	messages := []*schema.Message{
		schema.SystemMessage(req.Role),
		schema.UserMessage(req.Prompt),
	}

	resp, err := c.chat.Generate(ctx, messages,
		model.WithTemperature(req.Temperature),
		model.WithMaxTokens(req.MaxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrGeneration, c.modelName, err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", fmt.Errorf("%w: %s returned an empty completion", ErrGeneration, c.modelName)
	}
	return resp.Content, nil
}
