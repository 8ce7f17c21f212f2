package tui

import "github.com/hmuraoka/shinkoku-navi/internal/advice"

// adviceReadyMsg delivers the completed advice fetch to the Update loop.
// The fetch boundary never fails, so there is no error variant.
type adviceReadyMsg struct {
	Advice advice.Advice
}
