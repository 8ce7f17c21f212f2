package advice

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/hmuraoka/shinkoku-navi/internal/logging"
)

// DefaultModel is the Gemini model used when configuration does not name one.
const DefaultModel = "gemini-2.5-flash"

// promptTemplate frames the request: expert persona, the user's profile, and
// an instruction to ground the answer in current Google Search results.
// Response schemas are not allowed together with the GoogleSearch tool, so
// the answer arrives as freeform text.
const promptTemplate = `あなたは日本の確定申告のエキスパートです。
以下のユーザープロフィールに基づいて、今年の確定申告に関する
「最新の提出期限（開始日と終了日）」と「このユーザーが特に注意すべきポイントや最新トレンド」を教えてください。

ユーザープロフィール:
%s

Google検索を利用して、必ず最新の情報を取得してください。
特に、国税庁の最新の発表に基づいた正確な日付が必要です。
回答は簡潔な日本語でまとめてください。`

// GeminiFetcher fetches advice from the Gemini API with Google Search
// grounding enabled.
type GeminiFetcher struct {
	client *genai.Client
	model  string
}

// NewGeminiFetcher creates a fetcher using the given API key and model.
// An empty model falls back to DefaultModel. Client construction is the one
// place that returns an error; once built, Fetch never does.
func NewGeminiFetcher(ctx context.Context, apiKey, model string) (*GeminiFetcher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiFetcher{client: client, model: model}, nil
}

// Fetch sends the profile to Gemini and returns the advice text plus the
// web sources the grounding step cited. Any failure, including a response
// with no text, returns the fixed fallback payload.
func (f *GeminiFetcher) Fetch(ctx context.Context, profile string) Advice {
	logger := logging.New("advice")

	prompt := fmt.Sprintf(promptTemplate, strings.TrimSpace(profile))

	resp, err := f.client.Models.GenerateContent(ctx, f.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		},
	)
	if err != nil {
		logger.Warn("advice fetch failed", "model", f.model, "error", err)
		return Fallback()
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		logger.Warn("advice response contained no text", "model", f.model)
		return Fallback()
	}

	return Advice{Text: text, Sources: extractSources(resp)}
}

// extractSources pulls the grounded web citations out of the response.
// Chunks without web metadata are skipped.
func extractSources(resp *genai.GenerateContentResponse) []Source {
	sources := []Source{}
	if len(resp.Candidates) == 0 {
		return sources
	}
	gm := resp.Candidates[0].GroundingMetadata
	if gm == nil {
		return sources
	}
	for _, chunk := range gm.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		sources = append(sources, Source{Title: chunk.Web.Title, URL: chunk.Web.URI})
	}
	return sources
}
