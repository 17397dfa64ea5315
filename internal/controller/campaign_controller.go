// internal/controller/campaign_controller.go
package controller

import (
    "bytes"
    "encoding/json"
    "errors"
    "fmt"
    "net/http"
    "time"

    appErrors "github.com/errorpointers/drip-campaign-backend/internal/errors"
    "github.com/errorpointers/drip-campaign-backend/internal/export"
    "github.com/errorpointers/drip-campaign-backend/internal/model"
    "github.com/errorpointers/drip-campaign-backend/internal/service"
)

type CampaignController struct {
    CampaignService *service.CampaignService
    AudioService    *service.AudioService
}

// GenerateCampaigns handles POST /generate-campaigns/
func (c *CampaignController) GenerateCampaigns(w http.ResponseWriter, r *http.Request) {
    var req model.CampaignRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
        return
    }

    resp, err := c.CampaignService.GenerateCampaigns(r.Context(), &req)
    if err != nil {
        writeServiceError(w, err)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(resp)
}

// ExportCampaignsCSV handles POST /export-campaigns-csv/. It runs the same
// generation pipeline, then streams the flattened result as a CSV attachment.
func (c *CampaignController) ExportCampaignsCSV(w http.ResponseWriter, r *http.Request) {
    var req model.CampaignRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
        return
    }

    resp, err := c.CampaignService.GenerateCampaigns(r.Context(), &req)
    if err != nil {
        writeServiceError(w, err)
        return
    }

    var buf bytes.Buffer
    if err := export.WriteCSV(&buf, resp); err != nil {
        http.Error(w, "failed to build CSV: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "text/csv")
    w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename(time.Now())))
    w.Write(buf.Bytes())
}

// GenerateEmailAudio handles POST /generate-email-audio/. Parameters come
// from the query string, with a JSON body fallback.
func (c *CampaignController) GenerateEmailAudio(w http.ResponseWriter, r *http.Request) {
    emailBody := r.URL.Query().Get("email_body")
    language := r.URL.Query().Get("language")

    if emailBody == "" {
        var body struct {
            EmailBody string `json:"email_body"`
            Language  string `json:"language"`
        }
        if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
            emailBody = body.EmailBody
            if language == "" {
                language = body.Language
            }
        }
    }

    audio, err := c.AudioService.GenerateEmailAudio(r.Context(), emailBody, language)
    if err != nil {
        writeServiceError(w, err)
        return
    }

    w.Header().Set("Content-Type", "audio/mpeg")
    w.Header().Set("Content-Disposition", "attachment; filename=email_audio.mp3")
    w.Write(audio)
}

// Health handles GET /health
func (c *CampaignController) Health(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// writeServiceError maps the pipeline's error kinds to HTTP statuses:
// validation failures are the caller's fault, unusable upstream output is a
// bad gateway, everything else is reported generically.
func writeServiceError(w http.ResponseWriter, err error) {
    var verrs *appErrors.ValidationErrors
    if errors.As(err, &verrs) {
        http.Error(w, verrs.Error(), http.StatusBadRequest)
        return
    }

    var uerr *appErrors.UpstreamFormatError
    if errors.As(err, &uerr) {
        http.Error(w, uerr.Error(), http.StatusBadGateway)
        return
    }

    http.Error(w, "unexpected error: "+err.Error(), http.StatusInternalServerError)
}
