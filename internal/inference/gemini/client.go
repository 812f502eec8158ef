// Package gemini generates and transcribes word pairs with the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"google.golang.org/genai"

	"github.com/reclamegraag/examiner/internal/inference"
)

// ErrContentBlocked is returned when the answer was stopped by a safety filter.
var ErrContentBlocked = errors.New("content blocked by safety filters")

// contentGenerator is the part of genai.Models used by the client.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

type Client struct {
	models           contentGenerator
	model            string
	maxRetryAttempts uint
	retryDelay       time.Duration
	logger           *slog.Logger
}

func NewClient(ctx context.Context, apiKey, model string, retryAttempts uint) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient() > %w", err)
	}

	return &Client{
		models:           client.Models,
		model:            model,
		maxRetryAttempts: retryAttempts,
		retryDelay:       time.Second,
		logger:           slog.Default().With("component", "gemini"),
	}, nil
}

// GetModel returns the model name configured for this client
func (client *Client) GetModel() string {
	return client.model
}

// GeneratePairs implements the inference.Generator interface
func (client *Client) GeneratePairs(
	ctx context.Context,
	request inference.GenerateRequest,
) ([]inference.Pair, error) {
	if err := request.Validate(); err != nil {
		return nil, fmt.Errorf("request.Validate() > %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: inference.GeneratePrompt(request)},
			},
		},
	}
	return client.generate(ctx, contents)
}

// TranscribePairs implements the inference.Transcriber interface
func (client *Client) TranscribePairs(
	ctx context.Context,
	request inference.TranscribeRequest,
) ([]inference.Pair, error) {
	if err := request.Validate(); err != nil {
		return nil, fmt.Errorf("request.Validate() > %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: inference.TranscribePrompt(request.LanguageA, request.LanguageB)},
				{InlineData: &genai.Blob{Data: request.Image, MIMEType: request.MIMEType}},
			},
		},
	}
	return client.generate(ctx, contents)
}

func (client *Client) generate(ctx context.Context, contents []*genai.Content) ([]inference.Pair, error) {
	var result []inference.Pair
	attempt := 0
	err := retry.Do(
		func() error {
			attempt++
			client.logger.InfoContext(ctx, "Making Gemini API call",
				"attempt", attempt,
				"max_attempts", client.maxRetryAttempts+1)

			pairs, err := client.generateOnce(ctx, contents)
			if err != nil {
				client.logger.ErrorContext(ctx, "Gemini API call failed",
					"attempt", attempt,
					"error", err)
				if errors.Is(err, ErrContentBlocked) || errors.Is(err, inference.ErrEmptyResponse) {
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
	)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (client *Client) generateOnce(ctx context.Context, contents []*genai.Content) ([]inference.Pair, error) {
	resp, err := client.models.GenerateContent(ctx, client.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("models.GenerateContent() > %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates: %w", inference.ErrEmptyResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, ErrContentBlocked
	}
	if candidate.Content == nil {
		return nil, fmt.Errorf("empty content in response: %w", inference.ErrEmptyResponse)
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}

	pairs, err := inference.ParsePairs(text.String())
	if err != nil {
		return nil, fmt.Errorf("inference.ParsePairs() > %w", err)
	}
	return pairs, nil
}
