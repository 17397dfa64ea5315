// cmd/formtool/main.go
//
// Interactive console form for building a campaign request by hand. It walks
// the operator through the same Account/Contact fields as the API, runs the
// same generation pipeline, and can save the result as CSV and an audio
// preview of the first email body.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/errorpointers/drip-campaign-backend/internal/cohere"
	"github.com/errorpointers/drip-campaign-backend/internal/config"
	"github.com/errorpointers/drip-campaign-backend/internal/export"
	"github.com/errorpointers/drip-campaign-backend/internal/model"
	"github.com/errorpointers/drip-campaign-backend/internal/service"
	"github.com/errorpointers/drip-campaign-backend/internal/tts"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// The form must not proceed without the credential
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Cannot start: %v", err)
	}

	campaignService := &service.CampaignService{
		Generator: cohere.NewClient(cfg.CohereBaseURL, cfg.CohereAPIKey, cfg.CohereModel),
		Groups:    service.RandomGroupChooser{},
	}
	audioService := &service.AudioService{
		Synth: tts.NewClient(cfg.TTSBaseURL),
	}

	in := bufio.NewScanner(os.Stdin)

	fmt.Println("📧 Email Drip Campaign Generator")
	fmt.Println("--------------------------------")

	req := collectRequest(in)
	if err := req.Validate(); err != nil {
		log.Fatalf("❌ Invalid input: %v", err)
	}

	fmt.Println("⏳ Generating campaigns...")
	resp, err := campaignService.GenerateCampaigns(context.Background(), req)
	if err != nil {
		log.Fatalf("❌ Generation failed: %v", err)
	}

	printCampaigns(resp)

	if askYesNo(in, "Save campaigns as CSV?") {
		name := export.Filename(time.Now())
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("❌ Cannot create %s: %v", name, err)
		}
		if err := export.WriteCSV(f, resp); err != nil {
			f.Close()
			log.Fatalf("❌ Failed to write CSV: %v", err)
		}
		f.Close()
		fmt.Println("✅ Saved", name)
	}

	if askYesNo(in, "Generate an audio preview of the first email body?") {
		body := resp.Campaigns[0].Emails[0].Variants[0].Body
		language := promptDefault(in, "Audio language", service.DefaultAudioLanguage)
		audio, err := audioService.GenerateEmailAudio(context.Background(), body, language)
		if err != nil {
			log.Fatalf("❌ Audio generation failed: %v", err)
		}
		if err := os.WriteFile("email_audio.mp3", audio, 0o644); err != nil {
			log.Fatalf("❌ Cannot write email_audio.mp3: %v", err)
		}
		fmt.Println("✅ Saved email_audio.mp3")
	}
}

func collectRequest(in *bufio.Scanner) *model.CampaignRequest {
	req := &model.CampaignRequest{}

	accountCount := promptInt(in, "How many accounts? (1-10)", 1)
	for i := 0; i < accountCount; i++ {
		fmt.Printf("\n--- Account %d ---\n", i+1)
		req.Accounts = append(req.Accounts, collectAccount(in))
	}

	req.NumberOfEmails = promptInt(in, "\nNumber of emails per campaign (1-10)", 1)
	return req
}

func collectAccount(in *bufio.Scanner) model.Account {
	account := model.Account{
		AccountName:       prompt(in, "Account name"),
		Industry:          prompt(in, "Industry"),
		CampaignObjective: promptDefault(in, "Campaign objective (awareness/nurturing/upselling)", model.ObjectiveAwareness),
		Interest:          prompt(in, "Interest"),
		Tone:              promptDefault(in, "Tone (formal/casual/enthusiastic/neutral)", model.ToneNeutral),
		Language:          promptDefault(in, "Language", "English"),
	}

	painPointCount := promptInt(in, "How many pain points? (1-5)", 1)
	for i := 0; i < painPointCount; i++ {
		account.PainPoints = append(account.PainPoints, prompt(in, fmt.Sprintf("Pain point %d", i+1)))
	}

	contactCount := promptInt(in, "How many contacts?", 1)
	for i := 0; i < contactCount; i++ {
		fmt.Printf("Contact %d:\n", i+1)
		account.Contacts = append(account.Contacts, model.Contact{
			Name:     prompt(in, "  Name"),
			Email:    prompt(in, "  Email"),
			JobTitle: prompt(in, "  Job title"),
		})
	}

	return account
}

func printCampaigns(resp *model.CampaignResponse) {
	for _, campaign := range resp.Campaigns {
		fmt.Printf("\n📋 Campaign for %s\n", campaign.AccountName)
		for emailIdx, email := range campaign.Emails {
			for _, variant := range email.Variants {
				fmt.Printf("\nEmail %d\n", emailIdx+1)
				fmt.Println("  Subject:       ", variant.Subject)
				if len(variant.SubVariants) > 1 {
					fmt.Println("  Alternatives:  ", strings.Join(variant.SubVariants[1:], " | "))
				}
				fmt.Println("  Body:          ", variant.Body)
				fmt.Println("  Call to action:", variant.CallToAction)
				fmt.Println("  Send time:     ", variant.SuggestedSendTime)
			}
		}
	}
}

func prompt(in *bufio.Scanner, label string) string {
	for {
		fmt.Print(label + ": ")
		if !in.Scan() {
			os.Exit(1)
		}
		value := strings.TrimSpace(in.Text())
		if value != "" {
			return value
		}
	}
}

func promptDefault(in *bufio.Scanner, label, fallback string) string {
	fmt.Printf("%s [%s]: ", label, fallback)
	if !in.Scan() {
		os.Exit(1)
	}
	value := strings.TrimSpace(in.Text())
	if value == "" {
		return fallback
	}
	return value
}

func promptInt(in *bufio.Scanner, label string, fallback int) int {
	for {
		fmt.Printf("%s [%d]: ", label, fallback)
		if !in.Scan() {
			os.Exit(1)
		}
		value := strings.TrimSpace(in.Text())
		if value == "" {
			return fallback
		}
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Println("Please enter a number.")
	}
}

func askYesNo(in *bufio.Scanner, label string) bool {
	answer := promptDefault(in, label+" (y/n)", "n")
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}
