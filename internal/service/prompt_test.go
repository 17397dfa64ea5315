package service_test

import (
	"strings"
	"testing"

	"github.com/errorpointers/drip-campaign-backend/internal/model"
	"github.com/errorpointers/drip-campaign-backend/internal/service"
)

func promptAccount() *model.Account {
	return &model.Account{
		AccountName:       "Acme Corp",
		Industry:          "Technology",
		PainPoints:        []string{"slow onboarding", "high churn"},
		Contacts: []model.Contact{
			{Name: "Jane Doe", Email: "jane@acme.test", JobTitle: "CTO"},
			{Name: "Bob Roe", Email: "bob@acme.test", JobTitle: "VP Sales"},
		},
		CampaignObjective: model.ObjectiveAwareness,
		Interest:          "automation",
		Language:          "English",
	}
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	account := promptAccount()

	first, err := service.BuildPrompt(account, 2, 3, model.ToneFormal)
	if err != nil {
		t.Fatalf("BuildPrompt failed: %v", err)
	}
	second, err := service.BuildPrompt(account, 2, 3, model.ToneFormal)
	if err != nil {
		t.Fatalf("BuildPrompt failed: %v", err)
	}

	if first != second {
		t.Error("identical inputs produced different prompts")
	}
}

func TestBuildPromptContents(t *testing.T) {
	prompt, err := service.BuildPrompt(promptAccount(), 2, 3, model.ToneCasual)
	if err != nil {
		t.Fatalf("BuildPrompt failed: %v", err)
	}

	for _, want := range []string{
		"Company: Acme Corp",
		"Industry: Technology",
		"Pain Points: slow onboarding, high churn",
		"Campaign Stage: Email 2 of 3",
		"Campaign Objective: awareness",
		"Recipient Job Title: CTO", // first contact only
		"Interest: automation",
		"Tone: casual",
		"Language: English",
		"**three distinct subject lines**",
		`Format the response as valid JSON with keys: "subject", "body", "call_to_action"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt is missing %q", want)
		}
	}

	if strings.Contains(prompt, "VP Sales") {
		t.Error("prompt should not mention any contact beyond the first")
	}
}

func TestBuildPromptRejectsUnknownTone(t *testing.T) {
	if _, err := service.BuildPrompt(promptAccount(), 1, 1, "sarcastic"); err == nil {
		t.Fatal("expected error for unknown tone")
	}
}
