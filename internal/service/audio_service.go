// internal/service/audio_service.go
package service

import (
    "context"
    "strings"

    appErrors "github.com/errorpointers/drip-campaign-backend/internal/errors"
)

// DefaultAudioLanguage is used when the caller does not name one.
const DefaultAudioLanguage = "en"

// SpeechSynthesizer defines the single call the audio path needs from the
// speech provider: text plus a language tag in, a compressed audio blob out.
type SpeechSynthesizer interface {
    Synthesize(ctx context.Context, text, language string) ([]byte, error)
}

type AudioService struct {
    Synth SpeechSynthesizer
}

// GenerateEmailAudio converts one email body to speech. Newlines are removed
// before submission; a single request produces the whole blob.
func (s *AudioService) GenerateEmailAudio(ctx context.Context, emailBody, language string) ([]byte, error) {
    if strings.TrimSpace(emailBody) == "" {
        errs := &appErrors.ValidationErrors{}
        errs.Add("email_body", "must not be empty")
        return nil, errs
    }
    if language == "" {
        language = DefaultAudioLanguage
    }
    return s.Synth.Synthesize(ctx, stripNewlines(emailBody), language)
}
