package gen

import (
	"strings"
	"unicode/utf8"
)

// maxFeatureNameLen caps the extracted feature name used in artifact titles
const maxFeatureNameLen = 50

// featurePrefixes are stripped from the first line of a requirement.
// Matching is case-sensitive and removes the first occurrence only.
var featurePrefixes = []string{"Feature:", "Requirements:"}

// ExtractFeatureName derives a short display name from free-form
// requirement text: first line, known label prefixes stripped, trimmed,
// hard-truncated to 50 characters.
//
// A blank first line yields an empty string; downstream titling uses it
// verbatim rather than substituting a placeholder.
func ExtractFeatureName(requirement string) string {
	line := strings.TrimSpace(requirement)
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}

	for _, prefix := range featurePrefixes {
		line = strings.Replace(line, prefix, "", 1)
	}

	line = strings.TrimSpace(line)
	if utf8.RuneCountInString(line) > maxFeatureNameLen {
		line = string([]rune(line)[:maxFeatureNameLen])
	}
	return line
}
