// Package aijson isolates JSON payloads from generative model output.
package aijson

import "strings"

const fenceMarker = "```json"

// Extract returns the JSON object substring of a model response, or false
// when none is present. When the text carries a fenced code block the fence
// content is considered first, then the substring from the first '{' to the
// last '}' is taken as-is. The scan is deliberately not brace-balancing:
// the deterministic fallback is the safety net for any payload this lets
// through, and keeping the heuristic stable keeps its behavior auditable.
func Extract(text string) (string, bool) {
	clean := text
	if idx := strings.Index(text, fenceMarker); idx >= 0 {
		clean = text[idx+len(fenceMarker):]
		if end := strings.LastIndex(clean, "```"); end >= 0 {
			clean = clean[:end]
		}
	}

	start := strings.IndexByte(clean, '{')
	end := strings.LastIndexByte(clean, '}')
	if start < 0 || end < start {
		return "", false
	}
	return clean[start : end+1], true
}
