package upstream

import (
	"context"
	"errors"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIResponder sends each turn as a single-message completion call.
// No history is forwarded; every call is stateless.
type OpenAIResponder struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIResponder builds a responder for the given model. Extra
// request options (e.g. a test base URL) are appended after the key.
func NewOpenAIResponder(apiKey, model string, timeout time.Duration, opts ...option.RequestOption) *OpenAIResponder {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &OpenAIResponder{
		client:  openai.NewClient(opts...),
		model:   model,
		timeout: timeout,
	}
}

func (r *OpenAIResponder) Reply(ctx context.Context, turn Turn) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(r.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(turn.Message),
		},
	})
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			return "", &UpstreamError{Message: apierr.Message}
		}
		return "", &TransportError{Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &ShapeError{Message: "completion response has no choices"}
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", &ShapeError{Message: "completion response has empty content"}
	}
	return content, nil
}
