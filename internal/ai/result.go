package ai

import (
	"encoding/json"
	"strings"

	"aisle-finder/internal/model"
)

// Reason says why an analysis is missing. ReasonNone means it succeeded.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonUpstream  Reason = "upstream"
	ReasonEmpty     Reason = "empty"
	ReasonMalformed Reason = "malformed"
)

// Result is the outcome of one analysis. Analysis is set only when Reason is ReasonNone.
type Result struct {
	Analysis model.Analysis
	Reason   Reason
	Err      error
	Cached   bool
}

// OK reports whether the model produced a usable analysis.
func (r Result) OK() bool {
	return r.Reason == ReasonNone
}

// Parse decodes the model's text answer into an analysis.
func Parse(text string) Result {
	body := stripCodeFence(strings.TrimSpace(text))
	if body == "" {
		return Result{Reason: ReasonEmpty}
	}

	// Only objects decode into an Analysis; arrays and scalars count as malformed.
	var analysis model.Analysis
	if err := json.Unmarshal([]byte(body), &analysis); err != nil {
		return Result{Reason: ReasonMalformed, Err: err}
	}
	if analysis == nil {
		// literal null
		return Result{Reason: ReasonMalformed}
	}

	return Result{Analysis: analysis}
}

// stripCodeFence removes a surrounding Markdown ``` block, with or without a language tag.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}

	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
