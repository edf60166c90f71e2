package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"portfolio-backend/internal/models"
)

// ConnectivityMessage is the user-facing copy for turns that never
// reached the backend.
const ConnectivityMessage = "Could not reach the assistant. Please try again."

// Client calls the chat proxy endpoint. It is safe for concurrent use;
// serialization per conversation is the Session's job.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient targets a backend base URL such as "http://localhost:8080".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   baseURL + "/api/chat",
	}
}

// Send submits one turn and returns the normalized reply. A non-2xx
// status yields the proxy's error text; transport and parse failures
// yield wrapped errors the caller renders as connectivity problems.
func (cl *Client) Send(ctx context.Context, sessionID, message string) (string, error) {
	payload, _ := json.Marshal(models.ChatRequest{Message: message, Sender: sessionID})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cl.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := cl.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach chat backend: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp models.ErrorResponse
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.Error != "" {
			return "", &ReplyError{Message: errResp.Error}
		}
		return "", &ReplyError{Message: fmt.Sprintf("chat backend returned status %d", resp.StatusCode)}
	}

	var chatResp models.ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	if chatResp.Reply == "" {
		return "", fmt.Errorf("chat response is missing a reply")
	}
	return chatResp.Reply, nil
}

// ReplyError carries the proxy's own error text, which is safe to show
// in the conversation.
type ReplyError struct{ Message string }

func (e *ReplyError) Error() string { return e.Message }
