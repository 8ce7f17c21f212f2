// Package advice fetches freeform, search-grounded filing advice from the
// Gemini API based on the user's questionnaire profile.
//
// The fetch boundary absorbs every failure: a network error, a missing API
// key, or a malformed response all resolve to a fixed fallback payload.
// Callers never receive an error and the questionnaire state is never
// affected by the advice call.
package advice
