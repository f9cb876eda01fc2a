// Package ollama provides a Completer implementation for the Ollama chat API.
package ollama

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/aislehq/aisle/pkg/chats/chat"
	"github.com/aislehq/aisle/pkg/chats/message"
	"github.com/aislehq/aisle/pkg/chats/role"
	"github.com/aislehq/aisle/pkg/modeladapter"
	"github.com/aislehq/aisle/pkg/modeladapter/usage"
)

const (
	chatPath = "/api/chat"
	tagsPath = "/api/tags"
)

var (
	_ modeladapter.Completer   = (*Adapter)(nil)
	_ modeladapter.ModelLister = (*Adapter)(nil)
)

// Adapter implements modeladapter.Completer and modeladapter.ModelLister for
// the Ollama chat API.
type Adapter struct {
	modeladapter.Adapter
}

// New creates an Adapter configured for an Ollama-style host.
// The baseURL should be "http://localhost:11434" (no trailing slash).
// An empty apiKey disables the Authorization header; hosted deployments
// behind a proxy can pass a bearer token.
func New(baseURL, apiKey string) *Adapter {
	a := &Adapter{}
	a.BaseURL = baseURL
	a.Auth = modeladapter.Auth{Key: apiKey}

	return a
}

// Complete sends a conversation to the chat endpoint and returns the
// assistant's reply. The request is non-streaming; the seed is included only
// when opts.Seed is non-nil.
func (a *Adapter) Complete(ctx context.Context, c *chat.Chat, opts modeladapter.Options) (message.Message, error) {
	req := a.buildRequest(c, opts)

	var resp apiResponse
	if err := a.PostJSON(ctx, chatPath, req, &resp); err != nil {
		return message.Message{}, fmt.Errorf("ollama: %w", err)
	}

	a.Usage.Add(usage.TokenCount{
		InputTokens:  resp.PromptEvalCount,
		OutputTokens: resp.EvalCount,
	})

	if resp.Message == nil {
		return message.Message{}, fmt.Errorf("ollama: missing message field in response")
	}

	r := role.Role(resp.Message.Role)
	if !r.Valid() {
		r = role.Assistant
	}

	return message.NewText(r, resp.Message.Content), nil
}

// ListModels fetches the names of the models the host can serve.
func (a *Adapter) ListModels(ctx context.Context) ([]string, error) {
	var resp tagsResponse
	if err := a.GetJSON(ctx, tagsPath, &resp); err != nil {
		return nil, fmt.Errorf("ollama: %w", err)
	}

	names := make([]string, len(resp.Models))
	for i, m := range resp.Models {
		names[i] = m.Name
	}

	return names, nil
}

// --- request types ---

type apiRequest struct {
	Model    string       `json:"model"`
	Messages []apiMessage `json:"messages"`
	Stream   bool         `json:"stream"`
	Options  apiOptions   `json:"options"`
}

type apiMessage struct {
	Role    string   `json:"role"`
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"`
}

type apiOptions struct {
	Temperature float64 `json:"temperature"`
	Seed        *int    `json:"seed,omitempty"`
}

// --- response types ---

type apiResponse struct {
	Message         *apiRespMessage `json:"message"`
	PromptEvalCount int             `json:"prompt_eval_count"`
	EvalCount       int             `json:"eval_count"`
}

type apiRespMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type tagsResponse struct {
	Models []tagModel `json:"models"`
}

type tagModel struct {
	Name string `json:"name"`
}

// --- conversion helpers ---

func (a *Adapter) buildRequest(c *chat.Chat, opts modeladapter.Options) apiRequest {
	req := apiRequest{
		Model:  opts.Model,
		Stream: false,
		Options: apiOptions{
			Temperature: opts.Temperature,
			Seed:        opts.Seed,
		},
	}

	for _, m := range c.Messages() {
		am := apiMessage{
			Role:    m.Role.String(),
			Content: m.TextContent(),
		}

		for _, img := range m.Images() {
			am.Images = append(am.Images, base64.StdEncoding.EncodeToString(img.Data))
		}

		req.Messages = append(req.Messages, am)
	}

	return req
}
