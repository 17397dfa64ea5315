// internal/cohere/client.go
package cohere

import (
    "bytes"
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "net/http"
    "strings"
    "time"
)

const (
    apiGenerate = "/v1/generate"

    // DefaultBaseURL is the public Cohere API host.
    DefaultBaseURL = "https://api.cohere.ai"

    // DefaultModel is the generation model used for campaign emails.
    DefaultModel = "command-xlarge-nightly"

    defaultMaxTokens   = 400
    defaultTemperature = 0.7
    defaultTimeout     = 60 * time.Second
)

// Client calls the Cohere text-generation API over HTTP.
type Client struct {
    httpClient *http.Client
    baseURL    string
    apiKey     string
    model      string
}

// NewClient configures a Cohere client. Empty baseURL or model fall back to
// the defaults; the API key is required by the service at startup, not here.
func NewClient(baseURL, apiKey, model string) *Client {
    if baseURL == "" {
        baseURL = DefaultBaseURL
    }
    if model == "" {
        model = DefaultModel
    }
    return &Client{
        httpClient: &http.Client{Timeout: defaultTimeout},
        baseURL:    strings.TrimRight(baseURL, "/"),
        apiKey:     apiKey,
        model:      model,
    }
}

type generateRequest struct {
    Model       string  `json:"model"`
    Prompt      string  `json:"prompt"`
    MaxTokens   int     `json:"max_tokens"`
    Temperature float64 `json:"temperature"`
}

type generateResponse struct {
    Generations []generation `json:"generations"`
}

type generation struct {
    Text string `json:"text"`
}

// errorResponse is the structured error body Cohere returns on failures.
type errorResponse struct {
    Message string `json:"message"`
}

// Generate sends one prompt and returns the trimmed completion text of the
// first generation. Exactly one attempt is made per call; retries are the
// caller's concern and this service has none.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
    payload, err := json.Marshal(generateRequest{
        Model:       c.model,
        Prompt:      prompt,
        MaxTokens:   defaultMaxTokens,
        Temperature: defaultTemperature,
    })
    if err != nil {
        return "", fmt.Errorf("marshal generate request: %w", err)
    }

    req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiGenerate, bytes.NewReader(payload))
    if err != nil {
        return "", fmt.Errorf("build generate request: %w", err)
    }
    req.Header.Set("Content-Type", "application/json")
    req.Header.Set("Accept", "application/json")
    req.Header.Set("Authorization", "Bearer "+c.apiKey)

    resp, err := c.httpClient.Do(req)
    if err != nil {
        return "", fmt.Errorf("call Cohere API: %w", err)
    }
    defer resp.Body.Close()

    body, err := io.ReadAll(resp.Body)
    if err != nil {
        return "", fmt.Errorf("read Cohere response: %w", err)
    }

    if resp.StatusCode != http.StatusOK {
        var apiErr errorResponse
        if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
            return "", fmt.Errorf("Cohere API error (%s): %s", resp.Status, apiErr.Message)
        }
        return "", fmt.Errorf("Cohere API returned non-OK status %s: %s", resp.Status, string(body))
    }

    var out generateResponse
    if err := json.Unmarshal(body, &out); err != nil {
        return "", fmt.Errorf("decode Cohere response: %w", err)
    }
    if len(out.Generations) == 0 {
        return "", errors.New("Cohere response contained no generations")
    }

    return strings.TrimSpace(out.Generations[0].Text), nil
}
