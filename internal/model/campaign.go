// internal/model/campaign.go
package model

import (
    "fmt"

    appErrors "github.com/errorpointers/drip-campaign-backend/internal/errors"
)

// EmailVariant is one generated email. Subject is always the first entry of
// SubVariants; the rest are alternative subject lines from the same call.
type EmailVariant struct {
    Subject           string   `json:"subject"`
    Body              string   `json:"body"`
    CallToAction      string   `json:"call_to_action"`
    SubVariants       []string `json:"sub_variants"`
    SuggestedSendTime string   `json:"suggested_send_time"`
}

// Email is one stage of a campaign. A single generation call produces one
// variant, but the shape allows more.
type Email struct {
    Variants []EmailVariant `json:"variants"`
}

// Campaign is the full staged email sequence generated for one account.
type Campaign struct {
    AccountName string  `json:"account_name"`
    Emails      []Email `json:"emails"`
}

type CampaignRequest struct {
    Accounts       []Account `json:"accounts"`
    NumberOfEmails int       `json:"number_of_emails"`
}

type CampaignResponse struct {
    Campaigns []Campaign `json:"campaigns"`
}

// Validate checks every constraint on the request and its nested accounts and
// contacts, filling in defaults (tone, contact group) as it goes. It returns
// an *appErrors.ValidationErrors carrying one entry per violated field, or
// nil when the request is well formed. Nothing is sent upstream until this
// passes.
func (r *CampaignRequest) Validate() error {
    errs := &appErrors.ValidationErrors{}

    if l := len(r.Accounts); l < 1 || l > 10 {
        errs.Add("accounts", "must contain between 1 and 10 accounts")
    }
    if r.NumberOfEmails < 1 || r.NumberOfEmails > 10 {
        errs.Add("number_of_emails", "must be between 1 and 10")
    }
    for i := range r.Accounts {
        r.Accounts[i].validate(fmt.Sprintf("accounts[%d]", i), errs)
    }

    return errs.ErrOrNil()
}
