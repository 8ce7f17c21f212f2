package advice

import "context"

// StaticFetcher returns a fixed payload on every call. It backs offline
// mode (advice disabled or no API key) and tests.
type StaticFetcher struct {
	Result Advice
}

// NewOfflineFetcher returns a fetcher that always reports advice as
// unavailable, with the reason in the text.
func NewOfflineFetcher() *StaticFetcher {
	return &StaticFetcher{Result: Advice{Text: OfflineText, Sources: []Source{}}}
}

// Fetch returns the configured payload regardless of profile or context.
func (f *StaticFetcher) Fetch(_ context.Context, _ string) Advice {
	return f.Result
}
