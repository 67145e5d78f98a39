package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultEndpoint = "https://api.groq.com/openai/v1"
	defaultModel    = "llama3-70b-8192"

	// Fixed decoding parameters for the rights query. The answer is short
	// advisory text, so a low temperature keeps it grounded.
	queryTemperature = 0.3
	queryTopP        = 1.0
	queryMaxTokens   = 1024
)

// A single-shot informational query gets one attempt; the 30s client timeout
// is the only failure deadline.
const defaultHTTPTimeout = 30 * time.Second

// ErrMissingAPIKey reports an absent or blank API credential. Fatal at
// startup: the application is useless without the backend.
var ErrMissingAPIKey = errors.New("llm: GROQ_API_KEY is not set")

// Config describes how to build a rights-query client.
type Config struct {
	Model      string
	Endpoint   string
	APIKey     string
	HTTPClient *http.Client
}

// Client answers rights queries for a (country, scenario) pair.
type Client interface {
	// FetchRights resolves the country code, builds the prompt pair, and
	// performs one chat-completion request with the given model. Failures
	// come back as a *QueryError.
	FetchRights(ctx context.Context, countryCode, scenario, modelID string) (string, error)
	Name() string
}

// QueryError wraps any backend failure (transport, auth, rate limit,
// malformed response) behind a message fit for direct display.
type QueryError struct {
	Reason string
	Err    error
}

func (e *QueryError) Error() string {
	return e.Reason
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func queryErrorf(cause error, format string, args ...any) *QueryError {
	return &QueryError{Reason: fmt.Sprintf(format, args...), Err: cause}
}

// NewFromEnv builds a Groq client from config, falling back to environment
// variables. The API key is mandatory.
func NewFromEnv(cfg Config) (Client, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		key = strings.TrimSpace(os.Getenv("GROQ_API_KEY"))
	}
	if key == "" {
		return nil, ErrMissingAPIKey
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		if env := os.Getenv("GROQ_ENDPOINT"); env != "" {
			endpoint = env
		} else {
			endpoint = defaultEndpoint
		}
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &groqClient{
		apiKey: key,
		model:  model,
		base:   strings.TrimRight(endpoint, "/"),
		client: pickHTTPClient(cfg.HTTPClient),
	}, nil
}

func pickHTTPClient(custom *http.Client) *http.Client {
	if custom != nil {
		return custom
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}
