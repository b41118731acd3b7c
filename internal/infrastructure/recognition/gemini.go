// Package recognition implements the vision-model adapter that reads
// utility-meter odometers from photos.
package recognition

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"aquameter/internal/shared/logger"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

	// Maximum response body size for the recognition API (256KB). The
	// expected payload is a handful of digits; anything larger is abuse.
	maxResponseSize = 256 << 10

	defaultTimeout = 20 * time.Second
)

// meterPrompt instructs the vision model to read only the rolling odometer
// digits. Wording matters: without the mid-transition rule the model tends
// to round up, inflating the billed consumption.
const meterPrompt = "Read the utility meter in this photo. " +
	"Read only the rolling odometer-style digits in the visual center of the meter face; " +
	"ignore serial numbers or any static digits printed elsewhere on the housing. " +
	"Ignore glare, dirt or partial occlusion and infer the most likely digit. " +
	"If a wheel sits between two digits, use the lower one. " +
	"Answer with the digits only, no other text."

// GeminiService implements the recognition Service using the Gemini
// generateContent REST API.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
	logger     logger.Interface
}

// NewGeminiService creates a recognition service backed by Gemini. A zero
// timeout falls back to the default.
func NewGeminiService(apiKey, model string, timeout time.Duration, logger logger.Interface) *GeminiService {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// RecognizeDigits sends the photo with the fixed instruction prompt and
// returns the model's raw text answer.
func (s *GeminiService) RecognizeDigits(ctx context.Context, photoBase64 string) (string, error) {
	mimeType, data := splitDataURL(photoBase64)

	reqBody := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: meterPrompt},
				{InlineData: &geminiInlineData{MimeType: mimeType, Data: data}},
			},
		}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode recognition request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build recognition request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("recognition request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("failed to read recognition response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Warnw("recognition API returned non-200 status",
			"status", resp.StatusCode,
			"model", s.model,
		)
		return "", fmt.Errorf("recognition API returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode recognition response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}

	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}

// splitDataURL separates an optional data-URL prefix from the base64
// payload. Plain base64 input is assumed to be a JPEG.
func splitDataURL(photo string) (mimeType, data string) {
	mimeType = "image/jpeg"
	data = photo

	if !strings.HasPrefix(photo, "data:") {
		return mimeType, data
	}

	rest := strings.TrimPrefix(photo, "data:")
	idx := strings.Index(rest, ";base64,")
	if idx < 0 {
		return mimeType, data
	}

	if mt := rest[:idx]; mt != "" {
		mimeType = mt
	}
	data = rest[idx+len(";base64,"):]
	return mimeType, data
}
