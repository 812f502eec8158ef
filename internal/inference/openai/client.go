// Package openai generates word pairs with the OpenAI chat completions API.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/reclamegraag/examiner/internal/inference"
)

const (
	baseURL = "https://api.openai.com/v1"

	systemPrompt = "You are a vocabulary teacher who writes word lists for language learners. You answer with JSON only."
)

// temperatures keeps beginner lists to the most common words.
var temperatures = map[inference.Difficulty]float32{
	inference.DifficultyBeginner:     0.3,
	inference.DifficultyIntermediate: 0.7,
	inference.DifficultyAdvanced:     0.9,
}

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
	retryDelay       time.Duration
	logger           *slog.Logger
}

func NewClient(apiKey, model string, retryAttempts uint) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")

	return newClient(client, model, retryAttempts)
}

func newClient(httpClient *resty.Client, model string, retryAttempts uint) *Client {
	return &Client{
		httpClient:       httpClient,
		model:            model,
		maxRetryAttempts: retryAttempts,
		retryDelay:       100 * time.Millisecond,
		logger:           slog.Default().With("component", "openai"),
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client *Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Body)
}

// isRetryableError reports whether another attempt may succeed: rate limits,
// server errors, dropped connections and truncated JSON.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusTooManyRequests || statusErr.StatusCode >= http.StatusInternalServerError
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET)
}

// GeneratePairs implements the inference.Generator interface
func (client *Client) GeneratePairs(
	ctx context.Context,
	request inference.GenerateRequest,
) ([]inference.Pair, error) {
	if err := request.Validate(); err != nil {
		return nil, fmt.Errorf("request.Validate() > %w", err)
	}

	body := client.newChatRequest(request)
	var result []inference.Pair
	attempt := 0
	if err := retry.Do(
		func() error {
			attempt++
			pairs, err := client.complete(ctx, body)
			if err != nil {
				client.logger.WarnContext(ctx, "OpenAI API call failed",
					"attempt", attempt,
					"max_attempts", client.maxRetryAttempts+1,
					"error", err)
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = pairs
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.Delay(client.retryDelay),
		retry.LastErrorOnly(true),
		retry.DelayType(retry.BackOffDelay),
	); err != nil {
		return nil, err
	}
	return result, nil
}

func (client *Client) newChatRequest(request inference.GenerateRequest) ChatCompletionRequest {
	return ChatCompletionRequest{
		Model:       client.model,
		Temperature: temperatures[request.Difficulty],
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: inference.GeneratePrompt(request)},
		},
	}
}

func (client *Client) complete(ctx context.Context, body ChatCompletionRequest) ([]inference.Pair, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return nil, &StatusError{StatusCode: response.StatusCode(), Body: response.String()}
	}

	completion, ok := response.Result().(*ChatCompletionResponse)
	if !ok || completion == nil || len(completion.Choices) == 0 {
		return nil, fmt.Errorf("no choices: %w", inference.ErrEmptyResponse)
	}
	content := completion.Choices[0].Message.Content
	if content == "" {
		return nil, fmt.Errorf("empty message, finish reason %q: %w", completion.Choices[0].FinishReason, inference.ErrEmptyResponse)
	}
	client.logger.DebugContext(ctx, "OpenAI completion",
		"model", completion.Model,
		"total_tokens", completion.Usage.TotalTokens)

	pairs, err := inference.ParsePairs(content)
	if err != nil {
		return nil, fmt.Errorf("inference.ParsePairs() > %w", err)
	}
	return pairs, nil
}
