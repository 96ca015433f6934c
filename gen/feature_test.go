package gen

import (
	"strings"
	"testing"
)

func TestExtractFeatureName(t *testing.T) {
	tests := []struct {
		name        string
		requirement string
		want        string
	}{
		{
			name:        "feature prefix stripped",
			requirement: "Feature: User Login\nUsers must be able to log in.",
			want:        "User Login",
		},
		{
			name:        "requirements prefix stripped",
			requirement: "Requirements: Checkout Flow\nDetails follow.",
			want:        "Checkout Flow",
		},
		{
			name:        "no prefix",
			requirement: "Password reset via email",
			want:        "Password reset via email",
		},
		{
			name:        "leading whitespace before first line",
			requirement: "\n\n  Feature: Search  \nmore text",
			want:        "Search",
		},
		{
			name:        "truncated to fifty characters",
			requirement: strings.Repeat("a", 80),
			want:        strings.Repeat("a", 50),
		},
		{
			name:        "multibyte name kept whole",
			requirement: strings.Repeat("日", 20) + "\nbody",
			want:        strings.Repeat("日", 20),
		},
		{
			name:        "multibyte truncated by characters",
			requirement: strings.Repeat("é", 60),
			want:        strings.Repeat("é", 50),
		},
		{
			name:        "empty input",
			requirement: "",
			want:        "",
		},
		{
			name:        "lowercase prefix not stripped",
			requirement: "feature: lowercase label",
			want:        "feature: lowercase label",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractFeatureName(tt.requirement)
			if got != tt.want {
				t.Errorf("ExtractFeatureName(%q) = %q, want %q", tt.requirement, got, tt.want)
			}
		})
	}
}
