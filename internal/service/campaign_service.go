// internal/service/campaign_service.go
package service

import (
    "context"
    "fmt"
    "math/rand/v2"

    appErrors "github.com/errorpointers/drip-campaign-backend/internal/errors"
    "github.com/errorpointers/drip-campaign-backend/internal/model"
)

// TextGenerator defines the single call the orchestrator needs from the
// text-generation provider: prompt in, completion text out.
type TextGenerator interface {
    Generate(ctx context.Context, prompt string) (string, error)
}

// GroupChooser picks an A/B group for one contact. Injectable so tests can
// pin the assignment.
type GroupChooser interface {
    Choose() string
}

// RandomGroupChooser is the production chooser: an unbiased coin flip per
// contact, no seed control, no balance guarantee.
type RandomGroupChooser struct{}

func (RandomGroupChooser) Choose() string {
    if rand.IntN(2) == 0 {
        return model.GroupA
    }
    return model.GroupB
}

type CampaignService struct {
    Generator TextGenerator
    Groups    GroupChooser
}

// GenerateCampaigns runs the full pipeline for a request: validate, then one
// generation call per (account, stage) pair, strictly in order. A failure on
// any stage fails the whole request; there is no partial-campaign output.
func (s *CampaignService) GenerateCampaigns(ctx context.Context, req *model.CampaignRequest) (*model.CampaignResponse, error) {
    if err := req.Validate(); err != nil {
        return nil, err
    }

    campaigns := make([]model.Campaign, 0, len(req.Accounts))
    for i := range req.Accounts {
        campaign, err := s.generateCampaign(ctx, &req.Accounts[i], req.NumberOfEmails)
        if err != nil {
            return nil, err
        }
        campaigns = append(campaigns, *campaign)
    }

    return &model.CampaignResponse{Campaigns: campaigns}, nil
}

func (s *CampaignService) generateCampaign(ctx context.Context, account *model.Account, numberOfEmails int) (*model.Campaign, error) {
    // Re-rolled per contact on every generation call, never persisted.
    for i := range account.Contacts {
        account.Contacts[i].Group = s.Groups.Choose()
    }

    tone := account.Tone
    if tone == "" {
        tone = model.ToneNeutral
    }

    emails := make([]model.Email, 0, numberOfEmails)
    for i := 1; i <= numberOfEmails; i++ {
        variants, err := s.generateEmailContent(ctx, account, i, numberOfEmails, tone)
        if err != nil {
            return nil, err
        }
        emails = append(emails, model.Email{Variants: variants})
    }

    return &model.Campaign{AccountName: account.AccountName, Emails: emails}, nil
}

func (s *CampaignService) generateEmailContent(ctx context.Context, account *model.Account, emailNumber, totalEmails int, tone string) ([]model.EmailVariant, error) {
    prompt, err := BuildPrompt(account, emailNumber, totalEmails, tone)
    if err != nil {
        return nil, err
    }

    raw, err := s.Generator.Generate(ctx, prompt)
    if err != nil {
        return nil, fmt.Errorf("text generation failed for account %q, email %d: %w", account.AccountName, emailNumber, err)
    }

    variant, err := parseEmailVariant(raw, account)
    if err != nil {
        return nil, appErrors.NewUpstreamFormatError(account.AccountName, emailNumber, err)
    }

    return []model.EmailVariant{*variant}, nil
}
