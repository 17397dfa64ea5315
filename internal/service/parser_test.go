package service

import (
	"strings"
	"testing"

	"github.com/errorpointers/drip-campaign-backend/internal/model"
)

func parserAccount(industry string) *model.Account {
	return &model.Account{AccountName: "Acme Corp", Industry: industry}
}

const sampleCompletion = `{
	"subject": ["First subject", "Second subject", "Third subject"],
	"body": "Line one\nLine two",
	"call_to_action": "Book a demo\ntoday"
}`

func TestParseEmailVariant(t *testing.T) {
	variant, err := parseEmailVariant(sampleCompletion, parserAccount("Technology"))
	if err != nil {
		t.Fatalf("parseEmailVariant failed: %v", err)
	}

	if variant.Subject != "First subject" {
		t.Errorf("subject = %q, want first candidate", variant.Subject)
	}
	if len(variant.SubVariants) != 3 || variant.SubVariants[0] != variant.Subject {
		t.Errorf("sub_variants = %v, want all three candidates with the subject first", variant.SubVariants)
	}
	if variant.Body != "Line oneLine two" {
		t.Errorf("body = %q, newlines should be stripped without replacement", variant.Body)
	}
	if want := "Book a demotodayBest regards,The Acme Corp Team"; variant.CallToAction != want {
		t.Errorf("call_to_action = %q, want %q", variant.CallToAction, want)
	}
	if variant.SuggestedSendTime != morningWindow {
		t.Errorf("suggested_send_time = %q, want %q", variant.SuggestedSendTime, morningWindow)
	}
}

func TestParseEmailVariantAcceptsBareSubjectString(t *testing.T) {
	raw := `{"subject": "Only subject", "body": "b", "call_to_action": "c"}`
	variant, err := parseEmailVariant(raw, parserAccount("Retail"))
	if err != nil {
		t.Fatalf("parseEmailVariant failed: %v", err)
	}
	if variant.Subject != "Only subject" || len(variant.SubVariants) != 1 {
		t.Errorf("bare string should become a one-entry candidate list, got %v", variant.SubVariants)
	}
}

func TestParseEmailVariantErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not JSON", "Sure! Here is your email:"},
		{"empty subject list", `{"subject": [], "body": "b", "call_to_action": "c"}`},
		{"missing subject", `{"body": "b", "call_to_action": "c"}`},
		{"subject wrong type", `{"subject": 7, "body": "b", "call_to_action": "c"}`},
		{"missing body", `{"subject": ["s"], "call_to_action": "c"}`},
		{"missing call_to_action", `{"subject": ["s"], "body": "b"}`},
	}

	for _, tc := range cases {
		if _, err := parseEmailVariant(tc.raw, parserAccount("Technology")); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestSuggestedSendTimeIsTotal(t *testing.T) {
	cases := map[string]string{
		"Technology": morningWindow,
		"software":   morningWindow,
		"SOFTWARE":   morningWindow,
		"Retail":     afternoonWindow,
		"E-Commerce": afternoonWindow,
		"Healthcare": eveningWindow,
		"":           eveningWindow,
		"finance":    eveningWindow,
	}

	for industry, want := range cases {
		if got := suggestedSendTime(industry); got != want {
			t.Errorf("suggestedSendTime(%q) = %q, want %q", industry, got, want)
		}
	}
}

func TestStripNewlinesIsIdempotent(t *testing.T) {
	clean := "already clean text"
	if got := stripNewlines(clean); got != clean {
		t.Errorf("clean text changed: %q", got)
	}

	dirty := "a\nb\r\nc"
	once := stripNewlines(dirty)
	if once != "abc" {
		t.Errorf("stripNewlines(%q) = %q, want %q", dirty, once, "abc")
	}
	if twice := stripNewlines(once); twice != once {
		t.Errorf("second pass changed the result: %q -> %q", once, twice)
	}
	if strings.ContainsAny(once, "\n\r") {
		t.Error("stripped text still contains newline characters")
	}
}
