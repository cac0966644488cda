// Package gemini is the text-suggestion collaborator: one HTTPS call
// per suggestion, empty result on any failure. Nothing here touches
// order or menu state.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Asilbek2706/QR-Menu-Editor/internal/entity"
	"github.com/Asilbek2706/QR-Menu-Editor/internal/usecase"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

var langNames = map[entity.Language]string{
	entity.LangUz: "Uzbek",
	entity.LangRu: "Russian",
	entity.LangEn: "English",
}

type Client struct {
	hc      *http.Client
	baseURL string
	apiKey  string
	model   string
	log     *slog.Logger
}

func New(apiKey, model string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		hc:      &http.Client{Timeout: timeout},
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		model:   model,
		log:     log,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Suggest asks for a two-sentence menu description. It returns ""
// (with the underlying error for logging) whenever the service cannot
// deliver; callers leave existing text untouched in that case.
func (c *Client) Suggest(ctx context.Context, itemName, categoryName string, lang entity.Language) (string, error) {
	if c.apiKey == "" {
		return "", nil
	}

	prompt := fmt.Sprintf(
		"Act as a world-class culinary copywriter. Write a mouth-watering, appetizing, 2-sentence description for a menu item named %q in the category %q. Write it in %s language. Do not use quotes.",
		itemName, categoryName, langNames[lang],
	)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn("suggestion request failed", "error", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("suggestion request rejected", "status", resp.StatusCode)
		return "", fmt.Errorf("gemini: status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text), nil
}

var _ usecase.Suggester = (*Client)(nil)
