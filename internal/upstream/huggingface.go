package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HuggingFaceResponder passes each turn through a hosted inference
// endpoint as a bare "inputs" payload.
type HuggingFaceResponder struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

func NewHuggingFaceResponder(endpoint, token string, timeout time.Duration) *HuggingFaceResponder {
	return &HuggingFaceResponder{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		token:      token,
	}
}

type inferenceOutput struct {
	GeneratedText string `json:"generated_text"`
}

func (r *HuggingFaceResponder) Reply(ctx context.Context, turn Turn) (string, error) {
	payload, _ := json.Marshal(map[string]string{"inputs": turn.Message})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.token)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UpstreamError{Message: inferenceErrorMessage(resp.StatusCode, body)}
	}

	return extractGeneratedText(body), nil
}

// extractGeneratedText handles both response shapes the inference API
// produces: an array of outputs or a single output object. A missing
// generated_text field yields the fallback reply, never empty output.
func extractGeneratedText(body []byte) string {
	var outputs []inferenceOutput
	if err := json.Unmarshal(body, &outputs); err == nil {
		for _, out := range outputs {
			if out.GeneratedText != "" {
				return out.GeneratedText
			}
		}
		return FallbackReply
	}

	var single inferenceOutput
	if err := json.Unmarshal(body, &single); err == nil && single.GeneratedText != "" {
		return single.GeneratedText
	}
	return FallbackReply
}

// inferenceErrorMessage surfaces the upstream's own error text when the
// body carries one, otherwise a status-code summary.
func inferenceErrorMessage(status int, body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && strings.TrimSpace(payload.Error) != "" {
		return payload.Error
	}
	return fmt.Sprintf("inference endpoint returned status %d", status)
}
