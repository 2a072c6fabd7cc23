package ai

import (
	"regexp"
	"strings"
)

var (
	// fenced matches a JSON value inside a markdown code block.
	fenced = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?([\\{\\[].*[\\}\\]])\\s*```")
	// object matches the outermost JSON object.
	object = regexp.MustCompile(`(?s)\{.*\}`)
	// trailingComma matches a comma right before } or ].
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
)

// ExtractJSON returns the JSON object embedded in a model reply. Replies from
// backends that honour structured output pass through unchanged; others may
// wrap the object in a markdown fence or add prose around it.
func ExtractJSON(content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}
	raw := ""
	if m := fenced.FindStringSubmatch(content); len(m) > 1 {
		raw = m[1]
	} else if m := object.FindString(content); m != "" {
		raw = m
	}
	if raw == "" {
		return ""
	}
	return trailingComma.ReplaceAllString(raw, "$1")
}
