package rules

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/ahrav/go-metaf/internal/domain"
)

var (
	// windShape is the strict surface-wind form: a 3-digit direction or
	// VRB, a 2- or 3-digit speed with no superfluous leading zero, an
	// optional gust of the same shape, and a mandatory unit.
	windShape = regexp.MustCompile(`^(\d{3}|VRB)(\d{2}|[1-9]\d{2})(?:G(\d{2}|[1-9]\d{2}))?(KT|MPS|KMH)$`)

	// missingWindShape is an automated station's placeholder for an
	// unavailable wind sensor.
	missingWindShape = regexp.MustCompile(`^/{2,}(KT|MPS|KMH)?$`)

	windRangeShape     = regexp.MustCompile(`^\d{3}V\d{3}$`)
	windRangeCandidate = regexp.MustCompile(`^\d{1,3}V\d{1,3}$`)
)

// firstObservation returns the index of the first body group after the
// time group, skipping the AUTO marker and the TAF validity-period and
// max/min-temperature groups that precede a forecast wind, or -1 when
// the body is empty.
func firstObservation(t Target) int {
	if t.TimeIndex < 0 {
		return -1
	}
	for i := t.TimeIndex + 1; i < t.BodyEnd(); i++ {
		tok := t.Tokens[i]
		if tok == "AUTO" || tafValidityShape.MatchString(tok) || tafTempShape.MatchString(tok) {
			continue
		}
		return i
	}
	return -1
}

func windRules() []Rule {
	return []Rule{
		{
			// The wind group is positionally fixed: it is the first coded
			// group after the time group. Checking by position rather than
			// by shape is what catches mangled groups like 0003MPS or
			// VR001KT that no shape-based scan would attribute to wind.
			ID: "wind.format",
			Check: func(t Target, _ domain.ValidateConfig) string {
				i := firstObservation(t)
				if i < 0 {
					return ""
				}
				tok := t.Tokens[i]
				if tok == "NIL" || tok == "CNL" || windShape.MatchString(tok) || missingWindShape.MatchString(tok) {
					return ""
				}
				return fmt.Sprintf("invalid wind format: %q", tok)
			},
		},
		{
			ID: "wind.gust",
			Check: func(t Target, _ domain.ValidateConfig) string {
				for _, tok := range t.Body() {
					m := windShape.FindStringSubmatch(tok)
					if m == nil || m[3] == "" {
						continue
					}
					speed, _ := strconv.Atoi(m[2])
					gust, _ := strconv.Atoi(m[3])
					if gust <= speed {
						return fmt.Sprintf("gust must exceed the sustained wind speed in %q", tok)
					}
				}
				return ""
			},
		},
		{
			ID: "wind.range",
			Check: func(t Target, _ domain.ValidateConfig) string {
				for _, tok := range t.Body() {
					if windRangeCandidate.MatchString(tok) && !windRangeShape.MatchString(tok) {
						return fmt.Sprintf("invalid variable wind direction range: %q", tok)
					}
				}
				return ""
			},
		},
		{
			// A report whose body carries a lone group after the time
			// group was truncated in transmission; only NIL reports
			// legitimately end there.
			ID: "structure.observation",
			Check: func(t Target, _ domain.ValidateConfig) string {
				n := t.BodyEnd() - (t.TimeIndex + 1)
				if n >= 2 {
					return ""
				}
				if n == 1 && t.Tokens[t.TimeIndex+1] == "NIL" {
					return ""
				}
				return "missing observation data after the time group"
			},
		},
	}
}
