package agent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// sender is the part of a *genai.Chat an Expert uses.
type sender interface {
	Send(ctx context.Context, parts ...*genai.Part) (*genai.GenerateContentResponse, error)
}

// Expert is a chat with a model that can call a library of functions.
type Expert struct {
	Name      string                       `json:"name"`
	ModelName string                       `json:"model_name"`
	Config    *genai.GenerateContentConfig `json:"config"`
	Library   Library
	// MaxTries bounds the attempts to send one message, 4 if zero.
	MaxTries uint
	Logger   *zap.Logger

	chat sender
}

// newBackOff returns the delays between two attempts to send a message.
var newBackOff = func() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 20 * time.Second
	return b
}

// Start opens the chat session.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return fmt.Errorf("could not start a chat with %s: %w", e.ModelName, err)
	}
	e.chat = chat
	return nil
}

func (e *Expert) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// Ask sends parts to the model and returns its answer. Function calls are
// answered from the Library until the model replies with content.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	if e.chat == nil {
		return nil, fmt.Errorf("expert %s is not started", e.Name)
	}
	resp, err := e.send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}

	calls := resp.FunctionCalls()
	if len(calls) == 0 {
		return resp.Candidates[0].Content, nil
	}
	if e.Library == nil {
		return nil, fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
	}
	answers := make([]*genai.Part, 0, len(calls))
	for _, call := range calls {
		e.logger().Debug("function call", zap.String("expert", e.Name), zap.String("function", call.Name), zap.Any("args", call.Args))
		answers = append(answers, &genai.Part{FunctionResponse: e.Library(ctx, call)})
	}
	return e.Ask(ctx, answers...)
}

// send sends parts, retrying on rate limits and server errors.
func (e *Expert) send(ctx context.Context, parts ...*genai.Part) (*genai.GenerateContentResponse, error) {
	tries := e.MaxTries
	if tries == 0 {
		tries = 4
	}
	op := func() (*genai.GenerateContentResponse, error) {
		resp, err := e.chat.Send(ctx, parts...)
		if err != nil && !retryable(err) {
			return nil, backoff.Permanent(err)
		}
		return resp, err
	}
	notify := func(err error, d time.Duration) {
		e.logger().Info("retrying message", zap.String("expert", e.Name), zap.Error(err), zap.Duration("backoff", d))
	}
	resp, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(newBackOff()),
		backoff.WithMaxTries(tries),
		backoff.WithNotify(notify))
	if err != nil {
		return nil, fmt.Errorf("expert %s: %w", e.Name, err)
	}
	return resp, nil
}

// retryable reports whether a failed send is worth another attempt.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}
	return true
}
