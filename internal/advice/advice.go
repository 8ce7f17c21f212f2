package advice

import "context"

// Source is one web citation backing the advice text.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Advice is the result of one fetch: the generated text plus the grounding
// citations, when the model supplied any.
type Advice struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

// FallbackText is shown when the advice fetch fails for any reason.
const FallbackText = "最新情報の取得中にエラーが発生しました。インターネット接続を確認するか、しばらく待ってから再試行してください。"

// OfflineText is shown when advice fetching is disabled or no API key is
// configured, so the plan screen can say why there is no advice.
const OfflineText = "最新情報の取得は無効になっています。GEMINI_API_KEY を設定すると、提出期限などの最新情報を表示できます。"

// Fallback returns the fixed failure payload.
func Fallback() Advice {
	return Advice{Text: FallbackText, Sources: []Source{}}
}

// Fetcher produces advice for a profile string. Implementations must not
// return errors through Advice; failures resolve to a fallback payload.
type Fetcher interface {
	Fetch(ctx context.Context, profile string) Advice
}
