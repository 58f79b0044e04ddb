package rules

import (
	"fmt"
	"regexp"

	"github.com/ahrav/go-metaf/internal/domain"
)

var (
	changeTimeShape = regexp.MustCompile(`^(FM|TL|AT)\d{4}$`)

	// FMDDHHMM is a forecast-period opener and stands on its own in a
	// TAF; only the four-digit FM/TL/AT forms need a trend context.
	tafPeriodShape = regexp.MustCompile(`^FM\d{6}$`)

	trendRVRShape = regexp.MustCompile(`^R\d{2}[LRC]?/[PM]?\d{4}(V[PM]?\d{4})?[UDN]?$`)
	trendQNHShape = regexp.MustCompile(`^[QA]\d{4}$`)
)

func trendRules() []Rule {
	return []Rule{
		{
			ID: "trend.change_time",
			Check: func(t Target, _ domain.ValidateConfig) string {
				for i := t.BodyStart; i < t.BodyEnd(); i++ {
					tok := t.Tokens[i]
					if changeTimeShape.MatchString(tok) && !tafPeriodShape.MatchString(tok) && i < t.TrendStart {
						return fmt.Sprintf("change-time group %q without a preceding BECMG or TEMPO", tok)
					}
				}
				return ""
			},
		},
		{
			// RVR is an observation; inside a trend section it means the
			// trend keyword landed in the wrong place.
			ID: "trend.rvr",
			Check: func(t Target, _ domain.ValidateConfig) string {
				for i := t.TrendStart + 1; i < t.BodyEnd(); i++ {
					if trendRVRShape.MatchString(t.Tokens[i]) {
						return fmt.Sprintf("runway visual range group inside the trend section: %q", t.Tokens[i])
					}
				}
				return ""
			},
		},
		{
			ID: "trend.qnh",
			Check: func(t Target, _ domain.ValidateConfig) string {
				for i := t.TrendStart + 1; i < t.BodyEnd(); i++ {
					if trendQNHShape.MatchString(t.Tokens[i]) {
						return fmt.Sprintf("QNH group inside the trend section: %q", t.Tokens[i])
					}
				}
				return ""
			},
		},
		{
			ID: "trend.in_remarks",
			Check: func(t Target, _ domain.ValidateConfig) string {
				for _, tok := range t.Remarks() {
					if tok == "BECMG" || tok == "TEMPO" {
						return fmt.Sprintf("TREND keyword %q must not appear inside the RMK section", tok)
					}
				}
				return ""
			},
		},
		{
			// NIL means no observation follows; trailing groups after it
			// are two reports fused together.
			ID: "nil.position",
			Check: func(t Target, _ domain.ValidateConfig) string {
				for i := t.BodyStart; i < t.BodyEnd(); i++ {
					if t.Tokens[i] != "NIL" {
						continue
					}
					if i != t.TimeIndex+1 || i != t.BodyEnd()-1 {
						return "NIL must directly follow the time group and end the report"
					}
				}
				return ""
			},
		},
	}
}
