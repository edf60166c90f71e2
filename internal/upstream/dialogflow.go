package upstream

import (
	"context"
	"errors"
	"fmt"
	"time"

	dialogflow "cloud.google.com/go/dialogflow/apiv2"
	"cloud.google.com/go/dialogflow/apiv2/dialogflowpb"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// DialogflowResponder submits each turn to a Dialogflow agent session.
// Conversation context lives on the Dialogflow side, keyed by the
// caller-supplied session id; a process-lifetime id is used for callers
// that do not send one.
type DialogflowResponder struct {
	sessions       *dialogflow.SessionsClient
	projectID      string
	language       string
	defaultSession string
	timeout        time.Duration
}

func NewDialogflowResponder(ctx context.Context, projectID, credentialsFile, language string, timeout time.Duration) (*DialogflowResponder, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	sessions, err := dialogflow.NewSessionsClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Dialogflow sessions client: %w", err)
	}

	return &DialogflowResponder{
		sessions:       sessions,
		projectID:      projectID,
		language:       language,
		defaultSession: uuid.NewString(),
		timeout:        timeout,
	}, nil
}

func (r *DialogflowResponder) Close() error {
	return r.sessions.Close()
}

func (r *DialogflowResponder) Reply(ctx context.Context, turn Turn) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	sessionID := turn.SessionID
	if sessionID == "" {
		sessionID = r.defaultSession
	}
	language := turn.Locale
	if language == "" {
		language = r.language
	}

	resp, err := r.sessions.DetectIntent(ctx, &dialogflowpb.DetectIntentRequest{
		Session: sessionPath(r.projectID, sessionID),
		QueryInput: &dialogflowpb.QueryInput{
			Input: &dialogflowpb.QueryInput_Text{
				Text: &dialogflowpb.TextInput{
					Text:         turn.Message,
					LanguageCode: language,
				},
			},
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", &TransportError{Err: err}
		}
		return "", &UpstreamError{Message: fmt.Sprintf("agent request failed: %v", err)}
	}

	return fulfillmentText(resp), nil
}

// sessionPath builds the agent session resource name. The same session
// id must always map to the same path so the agent keeps one context
// per conversation.
func sessionPath(projectID, sessionID string) string {
	return fmt.Sprintf("projects/%s/agent/sessions/%s", projectID, sessionID)
}

func fulfillmentText(resp *dialogflowpb.DetectIntentResponse) string {
	if text := resp.GetQueryResult().GetFulfillmentText(); text != "" {
		return text
	}
	return FallbackReply
}
