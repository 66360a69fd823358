package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"regenmon/internal/i18n"
	"regenmon/internal/pet"
)

// historyWindow is how many recent turns travel with each request.
const historyWindow = 10

// TurnRequest carries everything the backend needs to answer in
// character.
type TurnRequest struct {
	Message   string
	History   []pet.ChatMessage
	Vitals    pet.Vitals
	Name      string
	Archetype pet.Archetype
	Memories  []string
	Locale    i18n.Locale
}

// Backend produces the pet's side of the conversation.
type Backend interface {
	Reply(ctx context.Context, req TurnRequest) (string, error)
}

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

type completionRequest struct {
	Model       string              `json:"model"`
	Messages    []completionMessage `json:"messages"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
	Temperature float64             `json:"temperature,omitempty"`
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewClient returns a chat client for the given endpoint. An empty
// baseURL falls back to the OpenAI API.
func NewClient(apiKey, baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1/chat/completions"
	}
	if model == "" {
		model = "gpt-3.5-turbo"
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Available reports whether the client has credentials to call out.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

// Reply sends one turn to the backend and returns the raw reply text,
// tags included. The caller parses tags and handles fallbacks.
func (c *Client) Reply(ctx context.Context, req TurnRequest) (string, error) {
	if !c.Available() {
		return "", fmt.Errorf("chat: api key not configured")
	}

	messages := []completionMessage{{Role: "system", Content: systemPrompt(req)}}
	history := req.History
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	for _, msg := range history {
		messages = append(messages, completionMessage{Role: string(msg.Role), Content: msg.Content})
	}
	messages = append(messages, completionMessage{Role: "user", Content: req.Message})

	body, err := json.Marshal(completionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   150,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("chat: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("chat: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("chat: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("chat: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat: backend error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var parsed completionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("chat: parse response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat: no choices returned")
	}
	return parsed.Choices[0].Message.Content, nil
}

func systemPrompt(req TurnRequest) string {
	language := "SPANISH"
	if req.Locale == i18n.LocaleEN {
		language = "ENGLISH"
	}

	memories := "No memories yet."
	if len(req.Memories) > 0 {
		var b strings.Builder
		b.WriteString("Numbered list:\n")
		for i, m := range req.Memories {
			fmt.Fprintf(&b, "%d: %s\n", i+1, m)
		}
		memories = b.String()
	}

	return fmt.Sprintf(`### RESPONSE FORMAT RULE (CRITICAL):
- If you learn a NEW fact (name, interest, etc.): you MUST append [MEMORY: description] at the end.
- If you use an EXISTING memory: you MUST append [RECALL: index] at the end.
- Example 1: "Nice to meet you, Bob! [MEMORY: User's name is Bob]"
- Example 2: "I remember you love pizza! [RECALL: 2]"

You are a specialized Regenmon (a post-apocalyptic virtual pet) named %q of type %q.

PERSONALITY:
- EXTREMELY SHORT (max 30 words).
- Friendly, playful, loyal, simple.
- Answer exclusively in %s.
- Use emojis occasionally.

CURRENT STATE:
- Happy: %d%%, Energy: %d%%, Hunger: %d%%.

MEMORIES:
%s`,
		req.Name, req.Archetype, language,
		req.Vitals.Happiness, req.Vitals.Energy, req.Vitals.Hunger,
		memories)
}
