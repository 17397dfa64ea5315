// internal/service/prompt.go
package service

import (
    "fmt"
    "strings"

    appErrors "github.com/errorpointers/drip-campaign-backend/internal/errors"
    "github.com/errorpointers/drip-campaign-backend/internal/model"
)

const promptTemplate = `Create a personalized email for the following business account:
Company: %s
Industry: %s
Pain Points: %s
Campaign Stage: Email %d of %d
Campaign Objective: %s
Recipient Job Title: %s
Interest: %s
Tone: %s
Language: %s

Generate a catchy and engaging subject line, personalized for the account and campaign objective. Please generate **three distinct subject lines**.

Then, write the email body content with the following structure:
1. An engaging email body personalized to the pain points and interest of the account
2. A clear call-to-action encouraging the recipient to take the next step.
3. Ensure the body is cohesive and flows well with the subject.

Format the response as valid JSON with keys: "subject", "body", "call_to_action"`

// BuildPrompt renders the generation instruction for one email stage. The
// output is a pure function of its inputs. The prompt addresses the job title
// of the first contact only; per-contact personalization is not part of the
// contract with the model.
func BuildPrompt(account *model.Account, emailNumber, totalEmails int, tone string) (string, error) {
    if !model.ValidTone(tone) {
        errs := &appErrors.ValidationErrors{}
        errs.Add("tone", "must be one of: formal, casual, enthusiastic, neutral")
        return "", errs
    }

    return fmt.Sprintf(promptTemplate,
        account.AccountName,
        account.Industry,
        strings.Join(account.PainPoints, ", "),
        emailNumber,
        totalEmails,
        account.CampaignObjective,
        account.Contacts[0].JobTitle,
        account.Interest,
        tone,
        account.Language,
    ), nil
}
