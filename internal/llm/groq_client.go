package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/adesai/lexguardian/internal/refdata"
)

type groqClient struct {
	apiKey string
	model  string
	base   string
	client *http.Client
}

func (c *groqClient) Name() string {
	return fmt.Sprintf("Groq (%s)", c.model)
}

func (c *groqClient) FetchRights(ctx context.Context, countryCode, scenario, modelID string) (string, error) {
	scenario = strings.TrimSpace(scenario)
	if scenario == "" {
		return "", queryErrorf(nil, "no scenario selected")
	}
	if modelID == "" {
		modelID = c.model
	}
	countryName := refdata.CountryName(countryCode)
	system, user := BuildRightsPrompt(countryName, scenario)
	return c.chat(ctx, system, user, modelID)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream"`
	Stop        []string      `json:"stop"`
}

func (c *groqClient) chat(ctx context.Context, system, user, modelID string) (string, error) {
	payload := chatRequest{
		Model: modelID,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: queryTemperature,
		TopP:        queryTopP,
		MaxTokens:   queryMaxTokens,
		Stream:      false,
		Stop:        nil,
	}
	buf, err := json.Marshal(payload)
	if err != nil {
		return "", queryErrorf(err, "could not encode the rights query")
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.base)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(buf))
	if err != nil {
		return "", queryErrorf(err, "could not build the rights query")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", queryErrorf(err, "the rights service took too long to answer")
		}
		return "", queryErrorf(err, "could not reach the rights service")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", queryErrorf(err, "could not read the rights service response")
	}
	if resp.StatusCode >= 400 {
		return "", statusError(resp.StatusCode, resp.Status, body)
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", queryErrorf(err, "the rights service returned a malformed response")
	}
	if len(parsed.Choices) == 0 {
		return "", queryErrorf(nil, "the rights service returned no answer")
	}
	text := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if text == "" {
		return "", queryErrorf(nil, "the rights service returned an empty answer")
	}
	return text, nil
}

func statusError(code int, status string, body []byte) *QueryError {
	cause := fmt.Errorf("groq API error: %s (%s)", status, strings.TrimSpace(string(body)))
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return queryErrorf(cause, "the rights service rejected the API key")
	case code == http.StatusTooManyRequests:
		return queryErrorf(cause, "the rights service is rate limiting requests; try again shortly")
	default:
		return queryErrorf(cause, "the rights service reported an error (%s)", status)
	}
}
