// Package genai calls a remote document-understanding service with raw
// document bytes and a natural-language instruction, returning a free-text
// summary. This is a parallel, independent extraction strategy with no
// structured output contract; it is not wired into the typed field
// extractor.
package genai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultInstruction is the stock prompt for invoice summarization.
const DefaultInstruction = "Extract and summarize the invoice details from this document."

type Config struct {
	BaseURL     string
	Model       string
	APIKey      string
	Temperature float32
	Timeout     time.Duration
}

type Client struct {
	cfg Config
	hc  *http.Client
	log *slog.Logger
}

func NewClient(cfg Config, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	return &Client{
		cfg: cfg,
		hc:  &http.Client{Timeout: cfg.Timeout},
		log: log,
	}
}

// SummarizeDocument sends the document bytes inline with the instruction and
// returns the model's free-text answer.
func (c *Client) SummarizeDocument(ctx context.Context, docBytes []byte, instruction string) (string, error) {
	if instruction == "" {
		instruction = DefaultInstruction
	}
	start := time.Now()

	c.log.Info("genai.summarize.start",
		"model", c.cfg.Model,
		"doc_bytes", len(docBytes),
	)

	body := map[string]any{
		"contents": []map[string]any{{
			"parts": []map[string]any{
				{"inline_data": map[string]any{
					"mime_type": "application/pdf",
					"data":      base64.StdEncoding.EncodeToString(docBytes),
				}},
				{"text": instruction},
			},
		}},
		"generationConfig": map[string]any{
			"temperature": c.cfg.Temperature,
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/models/" + c.cfg.Model + ":generateContent"
	headers := map[string]string{"x-goog-api-key": c.cfg.APIKey}

	raw, _, err := sendJSON(ctx, c.hc, endpoint, body, headers, c.log)
	if err != nil {
		c.log.Error("genai.summarize.http_error",
			"error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", err
	}

	var gc struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &gc); err != nil {
		c.log.Error("genai.summarize.decode_error",
			"error", err, "raw_bytes", len(raw), "elapsed_ms", time.Since(start).Milliseconds())
		return "", fmt.Errorf("decode generateContent response: %w", err)
	}
	if len(gc.Candidates) == 0 {
		c.log.Error("genai.summarize.no_candidates",
			"raw", string(raw), "elapsed_ms", time.Since(start).Milliseconds())
		return "", fmt.Errorf("no candidates in generateContent response")
	}

	var b strings.Builder
	for _, part := range gc.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("empty response text")
	}

	c.log.Info("genai.summarize.ok",
		"chars", len(text), "elapsed_ms", time.Since(start).Milliseconds())
	return text, nil
}
