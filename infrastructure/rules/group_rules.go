package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ahrav/go-metaf/internal/domain"
)

var (
	// Visibility in meters is exactly four digits; five or more digits
	// glued to letters is a run-on of visibility and the next group.
	runOnVisibilityShape = regexp.MustCompile(`^\d{5,}[A-Z]+$`)

	qnhShape = regexp.MustCompile(`^[QA](\d{4}|////)$`)

	temperatureCandidate = regexp.MustCompile(`^\+?M?\d{1,2}/M?\d{1,2}$`)
	temperatureShape     = regexp.MustCompile(`^M?\d{2}/M?\d{2}$`)

	cloudShape    = regexp.MustCompile(`^(FEW|SCT|BKN|OVC|VV)(\d{3}|///)(CB|TCU|///)?$`)
	cloudPrefixes = []string{"FEW", "SCT", "BKN", "OVC", "VV"}
)

// isQNHCandidate reports whether tok is plausibly meant as a pressure
// group: Q or A followed by a digit or a missing-data slash. The
// digit requirement keeps keywords like AUTO and AT0300 out.
func isQNHCandidate(tok string) bool {
	if len(tok) < 2 || (tok[0] != 'Q' && tok[0] != 'A') {
		return false
	}
	c := tok[1]
	return (c >= '0' && c <= '9') || c == '/'
}

func groupFormatRules() []Rule {
	return []Rule{
		{
			ID: "visibility.format",
			Check: func(t Target, _ domain.ValidateConfig) string {
				for _, tok := range t.Body() {
					if !runOnVisibilityShape.MatchString(tok) {
						continue
					}
					// The time group (six digits plus Z) and a wind group
					// with a three-digit direction (five-plus digits plus
					// a unit) read as digit runs with a letter tail too.
					if timeShape.MatchString(tok) || windShape.MatchString(tok) {
						continue
					}
					return fmt.Sprintf("invalid visibility format: %q", tok)
				}
				return ""
			},
		},
		{
			ID: "qnh.format",
			Check: func(t Target, _ domain.ValidateConfig) string {
				for i := t.BodyStart; i < t.BodyEnd(); i++ {
					tok := t.Tokens[i]
					if isQNHCandidate(tok) && !qnhShape.MatchString(tok) {
						return fmt.Sprintf("invalid QNH group %q: the %c prefix must carry exactly 4 digits", tok, tok[0])
					}
				}
				return ""
			},
		},
		{
			ID: "temperature.format",
			Check: func(t Target, _ domain.ValidateConfig) string {
				for _, tok := range t.Body() {
					if temperatureCandidate.MatchString(tok) && !temperatureShape.MatchString(tok) {
						return fmt.Sprintf("invalid temperature group: %q", tok)
					}
				}
				return ""
			},
		},
		{
			ID: "cloud.format",
			Check: func(t Target, _ domain.ValidateConfig) string {
				for i := t.BodyStart; i < t.BodyEnd(); i++ {
					tok := t.Tokens[i]
					for _, p := range cloudPrefixes {
						if strings.HasPrefix(tok, p) && !cloudShape.MatchString(tok) {
							return fmt.Sprintf("invalid cloud group: %q", tok)
						}
					}
				}
				return ""
			},
		},
	}
}
