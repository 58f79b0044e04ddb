package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ahrav/go-metaf/internal/domain"
)

// trendConfusables maps observed manual-entry mutations of the trend
// keywords to their canonical spelling. The table is explicit rather
// than distance-based so a mutation is only ever flagged as the
// keyword it was actually seen mangled into on live feeds.
var trendConfusables = map[string]string{
	"EMPO":  "TEMPO",
	"TMPO":  "TEMPO",
	"TRMPO": "TEMPO",

	"ECMG":   "BECMG",
	"BCECMG": "BECMG",
	"BCNG":   "BECMG",
	"BECMFG": "BECMG",
	"BECMGG": "BECMG",
	"BECMGA": "BECMG",
	"BECMGM": "BECMG",
	"BGECMG": "BECMG",
	"BECGG":  "BECMG",
	"BEEMG":  "BECMG",
	"BEMG":   "BECMG",
	"MECMG":  "BECMG",
	"BECMF":  "BECMG",
	"BCEMG":  "BECMG",
	"BECNG":  "BECMG",
	"BECML":  "BECMG",

	"NOSI":    "NOSIG",
	"OSIG":    "NOSIG",
	"NNOSIG":  "NOSIG",
	"NOSSIG":  "NOSIG",
	"NOAISIG": "NOSIG",
	"NOSZ":    "NOSIG",
	"NOSIT":   "NOSIG",
	"NOS":     "NOSIG",
	"NOAI":    "NOSIG",
}

// cloudConfusables maps mangled two-letter cloud amount prefixes to
// the canonical three-letter code.
var cloudConfusables = map[string]string{
	"FE": "FEW",
	"FW": "FEW",
	"SC": "SCT",
	"ST": "SCT",
	"BK": "BKN",
	"KN": "BKN",
	"BN": "BKN",
	"OV": "OVC",
	"OC": "OVC",
}

var (
	mangledCloudShape = regexp.MustCompile(`^([A-Z]{2})(\d{3})(CB|TCU)?$`)
	gluedTrendTail    = regexp.MustCompile(`^((TL|FM|AT)\d{4}|\d{4})$`)
)

func spellingRules() []Rule {
	return []Rule{
		{
			ID: "spelling.trend",
			Check: func(t Target, _ domain.ValidateConfig) string {
				for i := t.BodyStart; i < t.BodyEnd(); i++ {
					if want, ok := trendConfusables[t.Tokens[i]]; ok {
						return fmt.Sprintf("possible misspelling of %s: %q", want, t.Tokens[i])
					}
				}
				return ""
			},
		},
		{
			ID: "spelling.glued",
			Check: func(t Target, _ domain.ValidateConfig) string {
				for i := t.BodyStart; i < t.BodyEnd(); i++ {
					tok := t.Tokens[i]
					for kw := range trendOpeners {
						if rest, ok := strings.CutPrefix(tok, kw); ok && rest != "" && gluedTrendTail.MatchString(rest) {
							return fmt.Sprintf("trend keyword %s glued to the following group: %q", kw, tok)
						}
					}
				}
				return ""
			},
		},
		{
			ID: "spelling.cloud",
			Check: func(t Target, _ domain.ValidateConfig) string {
				for i := t.BodyStart; i < t.BodyEnd(); i++ {
					m := mangledCloudShape.FindStringSubmatch(t.Tokens[i])
					if m == nil {
						continue
					}
					if want, ok := cloudConfusables[m[1]]; ok {
						return fmt.Sprintf("possible misspelling of cloud group %s%s: %q", want, m[2], t.Tokens[i])
					}
				}
				return ""
			},
		},
	}
}
