// internal/tts/client.go
package tts

import (
    "context"
    "errors"
    "fmt"
    "io"
    "net/http"
    "net/url"
    "strings"
    "time"
)

const (
    apiTranslateTTS = "/translate_tts"

    // DefaultBaseURL is the Google Translate host serving the unofficial
    // text-to-speech endpoint.
    DefaultBaseURL = "https://translate.google.com"

    defaultLanguage = "en"
    defaultTimeout  = 30 * time.Second
)

// ContentType of the audio returned by the endpoint.
const ContentType = "audio/mpeg"

// Client fetches MP3 speech audio from the Google Translate TTS endpoint.
// One request per call, no chunking and no streaming synthesis.
type Client struct {
    httpClient *http.Client
    baseURL    string
}

func NewClient(baseURL string) *Client {
    if baseURL == "" {
        baseURL = DefaultBaseURL
    }
    return &Client{
        httpClient: &http.Client{Timeout: defaultTimeout},
        baseURL:    strings.TrimRight(baseURL, "/"),
    }
}

var newlineStripper = strings.NewReplacer("\n", "", "\r", "")

// Synthesize converts text to speech in the given language and returns the
// MP3 bytes. Newlines are stripped from the text before submission.
func (c *Client) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
    text = newlineStripper.Replace(text)
    if strings.TrimSpace(text) == "" {
        return nil, errors.New("text cannot be empty")
    }
    if language == "" {
        language = defaultLanguage
    }

    query := url.Values{}
    query.Set("ie", "UTF-8")
    query.Set("client", "tw-ob")
    query.Set("tl", language)
    query.Set("q", text)

    endpoint := c.baseURL + apiTranslateTTS + "?" + query.Encode()
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
    if err != nil {
        return nil, fmt.Errorf("build TTS request: %w", err)
    }

    resp, err := c.httpClient.Do(req)
    if err != nil {
        return nil, fmt.Errorf("call TTS endpoint: %w", err)
    }
    defer resp.Body.Close()

    if resp.StatusCode != http.StatusOK {
        body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
        return nil, fmt.Errorf("TTS endpoint returned non-OK status %s: %s", resp.Status, string(body))
    }

    audio, err := io.ReadAll(resp.Body)
    if err != nil {
        return nil, fmt.Errorf("read TTS response: %w", err)
    }
    if len(audio) == 0 {
        return nil, errors.New("received empty audio data")
    }

    return audio, nil
}
