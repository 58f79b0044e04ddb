package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ahrav/go-metaf/internal/domain"
)

// rmkBoundary locates the standalone RMK marker. An RMK substring
// inside a body token is not a remarks boundary and earns no charset
// exemption.
var rmkBoundary = regexp.MustCompile(`(?:^|\s)RMK(?:\s|$)`)

// allowedBodyChar reports whether c may appear in the coded body.
// The body alphabet is uppercase letters, digits, space, and the
// slash, plus, minus and equals separators; everything else (including
// lowercase) marks a transcription error. Remarks are free text and
// exempt.
func allowedBodyChar(c rune) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == ' ' || c == '/' || c == '+' || c == '-' || c == '=':
		return true
	}
	return false
}

func structureRules() []Rule {
	return []Rule{
		{
			ID: "structure.empty",
			Check: func(t Target, _ domain.ValidateConfig) string {
				if t.Trimmed == "" {
					return "empty report"
				}
				return ""
			},
		},
		{
			ID: "structure.utf8",
			Check: func(t Target, _ domain.ValidateConfig) string {
				if !utf8.ValidString(t.Raw) {
					return "report is not valid UTF-8"
				}
				return ""
			},
		},
		{
			ID: "structure.linebreak",
			Check: func(t Target, _ domain.ValidateConfig) string {
				if strings.ContainsAny(t.Trimmed, "\r\n") {
					return "report contains an embedded line break"
				}
				return ""
			},
		},
		{
			ID: "structure.charset",
			Check: func(t Target, _ domain.ValidateConfig) string {
				body := t.Trimmed
				if loc := rmkBoundary.FindStringIndex(body); loc != nil {
					body = body[:loc[0]]
				}
				for _, c := range body {
					if !allowedBodyChar(c) {
						return fmt.Sprintf("report contains invalid characters: %q", c)
					}
				}
				return ""
			},
		},
		{
			ID: "structure.length",
			Check: func(t Target, cfg domain.ValidateConfig) string {
				if max := cfg.EffectiveMaxLength(); len(t.Trimmed) > max {
					return fmt.Sprintf("report exceeds maximum length of %d bytes", max)
				}
				return ""
			},
		},
		{
			ID: "structure.short",
			Check: func(t Target, _ domain.ValidateConfig) string {
				if len(t.Tokens) < 3 {
					return "report too short: header and time group alone do not form a report"
				}
				return ""
			},
		},
		{
			ID: "structure.embedded",
			Check: func(t Target, _ domain.ValidateConfig) string {
				n := 0
				for _, tok := range t.Tokens {
					if timeShape.MatchString(tok) {
						n++
					}
				}
				if n > 1 {
					return fmt.Sprintf("found %d time groups: reports must be split before validation", n)
				}
				return ""
			},
		},
		{
			ID: "structure.duplicate_header",
			Check: func(t Target, _ domain.ValidateConfig) string {
				if t.KindCount > 1 {
					return "duplicated report-type keyword"
				}
				return ""
			},
		},
	}
}
