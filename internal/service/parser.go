// internal/service/parser.go
package service

import (
    "encoding/json"
    "errors"
    "fmt"
    "strings"

    "github.com/errorpointers/drip-campaign-backend/internal/model"
)

// Recommended send windows keyed off the account's industry.
const (
    morningWindow   = "8 AM - 10 AM"
    afternoonWindow = "1 PM - 3 PM"
    eveningWindow   = "6 PM - 8 PM"
)

// suggestedSendTime maps an industry to one of the three send windows. The
// match is case-insensitive and the default branch catches everything else,
// so every input yields exactly one label.
func suggestedSendTime(industry string) string {
    switch strings.ToLower(industry) {
    case "technology", "software":
        return morningWindow
    case "retail", "e-commerce":
        return afternoonWindow
    default:
        return eveningWindow
    }
}

// Removes \r as well so CRLF model output cannot leak into CSV rows.
var newlineStripper = strings.NewReplacer("\n", "", "\r", "")

func stripNewlines(s string) string {
    return newlineStripper.Replace(s)
}

// generatedEmail is the JSON shape the prompt asks the model to return.
// Body and CallToAction are pointers so a missing key can be told apart from
// an empty string.
type generatedEmail struct {
    Subject      json.RawMessage `json:"subject"`
    Body         *string         `json:"body"`
    CallToAction *string         `json:"call_to_action"`
}

// parseEmailVariant turns the raw completion text into an EmailVariant:
// strict JSON parse, subject candidate extraction, newline cleanup, the fixed
// salutation, and the send-time rule. Any failure here is an upstream format
// problem; there is no partial recovery.
func parseEmailVariant(raw string, account *model.Account) (*model.EmailVariant, error) {
    var payload generatedEmail
    if err := json.Unmarshal([]byte(raw), &payload); err != nil {
        return nil, fmt.Errorf("invalid JSON in generated response: %w", err)
    }

    subjects, err := subjectCandidates(payload.Subject)
    if err != nil {
        return nil, err
    }
    if len(subjects) == 0 {
        return nil, errors.New("generated response contained no subject candidates")
    }
    if payload.Body == nil {
        return nil, errors.New(`generated response is missing "body"`)
    }
    if payload.CallToAction == nil {
        return nil, errors.New(`generated response is missing "call_to_action"`)
    }

    salutation := stripNewlines(fmt.Sprintf("Best regards,The %s Team", account.AccountName))

    return &model.EmailVariant{
        Subject:           subjects[0],
        Body:              stripNewlines(*payload.Body),
        CallToAction:      stripNewlines(*payload.CallToAction) + salutation,
        SubVariants:       subjects,
        SuggestedSendTime: suggestedSendTime(account.Industry),
    }, nil
}

// subjectCandidates accepts either a JSON list of strings or a bare string
// (normalized to a one-entry list). Anything else is unusable.
func subjectCandidates(raw json.RawMessage) ([]string, error) {
    if len(raw) == 0 {
        return nil, nil
    }
    var list []string
    if err := json.Unmarshal(raw, &list); err == nil {
        return list, nil
    }
    var single string
    if err := json.Unmarshal(raw, &single); err == nil {
        return []string{single}, nil
    }
    return nil, errors.New(`"subject" must be a string or a list of strings`)
}
