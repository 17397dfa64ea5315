// internal/export/csv.go
package export

import (
    "encoding/csv"
    "fmt"
    "io"
    "strings"
    "time"

    "github.com/errorpointers/drip-campaign-backend/internal/model"
)

var csvHeader = []string{
    "Account Name",
    "Email Number",
    "Variant",
    "Subject",
    "Sub-Variants",
    "Body",
    "Call to Action",
    "Recommended Send Time",
}

// WriteCSV flattens a campaign response into row-oriented CSV: one header row
// and one data row per (campaign, stage, variant), in nesting order. Email
// Number and Variant are rendered as 1-based labels.
func WriteCSV(w io.Writer, resp *model.CampaignResponse) error {
    writer := csv.NewWriter(w)

    if err := writer.Write(csvHeader); err != nil {
        return err
    }

    for _, campaign := range resp.Campaigns {
        for emailIdx, email := range campaign.Emails {
            for variantIdx, variant := range email.Variants {
                record := []string{
                    campaign.AccountName,
                    fmt.Sprintf("Email %d", emailIdx+1),
                    fmt.Sprintf("Variant %d", variantIdx+1),
                    variant.Subject,
                    strings.Join(variant.SubVariants, "; "),
                    variant.Body,
                    variant.CallToAction,
                    variant.SuggestedSendTime,
                }
                if err := writer.Write(record); err != nil {
                    return err
                }
            }
        }
    }

    writer.Flush()
    return writer.Error()
}

// Filename builds the download name for an export taken at the given time,
// e.g. campaigns_20250131_142500.csv.
func Filename(now time.Time) string {
    return fmt.Sprintf("campaigns_%s.csv", now.Format("20060102_150405"))
}
