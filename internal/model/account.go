// internal/model/account.go
package model

import (
    "fmt"
    "net/mail"

    appErrors "github.com/errorpointers/drip-campaign-backend/internal/errors"
)

// A/B test groups
const (
    GroupA = "A"
    GroupB = "B"
)

// Campaign objectives
const (
    ObjectiveAwareness = "awareness"
    ObjectiveNurturing = "nurturing"
    ObjectiveUpselling = "upselling"
)

// Tones
const (
    ToneFormal       = "formal"
    ToneCasual       = "casual"
    ToneEnthusiastic = "enthusiastic"
    ToneNeutral      = "neutral"
)

// ValidTone reports whether t is one of the four supported tones.
func ValidTone(t string) bool {
    switch t {
    case ToneFormal, ToneCasual, ToneEnthusiastic, ToneNeutral:
        return true
    }
    return false
}

type Contact struct {
    Name     string `json:"name"`
    Email    string `json:"email"`
    JobTitle string `json:"job_title"`
    Group    string `json:"group,omitempty"` // "A" or "B", reassigned at generation time
}

type Account struct {
    AccountName       string    `json:"account_name"`
    Industry          string    `json:"industry"`
    PainPoints        []string  `json:"pain_points"`
    Contacts          []Contact `json:"contacts"`
    CampaignObjective string    `json:"campaign_objective"`
    Interest          string    `json:"interest"`
    Tone              string    `json:"tone,omitempty"`
    Language          string    `json:"language"`
}

// validate applies the Contact field constraints, defaulting Group to "A"
// when the caller left it empty.
func (c *Contact) validate(field string, errs *appErrors.ValidationErrors) {
    if l := len(c.Name); l < 1 || l > 100 {
        errs.Add(field+".name", "must be between 1 and 100 characters")
    }
    if _, err := mail.ParseAddress(c.Email); err != nil {
        errs.Add(field+".email", "must be a valid email address")
    }
    if l := len(c.JobTitle); l < 1 || l > 100 {
        errs.Add(field+".job_title", "must be between 1 and 100 characters")
    }
    switch c.Group {
    case "":
        c.Group = GroupA
    case GroupA, GroupB:
    default:
        errs.Add(field+".group", `must be "A" or "B"`)
    }
}

// validate applies the Account field constraints, defaulting Tone to neutral
// when the caller left it empty.
func (a *Account) validate(field string, errs *appErrors.ValidationErrors) {
    if l := len(a.AccountName); l < 1 || l > 200 {
        errs.Add(field+".account_name", "must be between 1 and 200 characters")
    }
    if l := len(a.Industry); l < 1 || l > 100 {
        errs.Add(field+".industry", "must be between 1 and 100 characters")
    }
    if l := len(a.PainPoints); l < 1 || l > 5 {
        errs.Add(field+".pain_points", "must contain between 1 and 5 entries")
    }
    for i, p := range a.PainPoints {
        if p == "" {
            errs.Add(fmt.Sprintf("%s.pain_points[%d]", field, i), "must not be empty")
        }
    }
    if len(a.Contacts) < 1 {
        errs.Add(field+".contacts", "must contain at least one contact")
    }
    for i := range a.Contacts {
        a.Contacts[i].validate(fmt.Sprintf("%s.contacts[%d]", field, i), errs)
    }
    switch a.CampaignObjective {
    case ObjectiveAwareness, ObjectiveNurturing, ObjectiveUpselling:
    default:
        errs.Add(field+".campaign_objective", "must be one of: awareness, nurturing, upselling")
    }
    if l := len(a.Interest); l < 1 || l > 100 {
        errs.Add(field+".interest", "must be between 1 and 100 characters")
    }
    if a.Tone == "" {
        a.Tone = ToneNeutral
    } else if !ValidTone(a.Tone) {
        errs.Add(field+".tone", "must be one of: formal, casual, enthusiastic, neutral")
    }
    if l := len(a.Language); l < 1 || l > 200 {
        errs.Add(field+".language", "must be between 1 and 200 characters")
    }
}
