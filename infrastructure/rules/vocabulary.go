package rules

import (
	"fmt"
	"regexp"

	"github.com/agnivade/levenshtein"

	"github.com/ahrav/go-metaf/internal/domain"
)

// bareKeywords are the standalone tokens the body vocabulary accepts
// verbatim. Station identifiers are deliberately absent: a second
// ICAO-shaped token in the body is debris from a fused report, not
// vocabulary.
var bareKeywords = map[string]bool{
	"METAR": true, "SPECI": true, "TAF": true,
	"COR": true, "AMD": true, "CNL": true, "NIL": true,
	"AUTO": true, "CAVOK": true, "NSW": true,
	"NOSIG": true, "BECMG": true, "TEMPO": true,
	"PROB30": true, "PROB40": true,
	"SKC": true, "NSC": true, "NCD": true,
	"WS": true, "ALL": true, "LDG": true, "TKOF": true, "RWY": true,
	"RMK": true,
}

var (
	tafValidityShape = regexp.MustCompile(`^\d{4}/\d{4}$`)
	tafTempShape     = regexp.MustCompile(`^T[XN]M?\d{1,2}/(M?\d{1,2}|\d{4})Z$`)

	weatherGroupShape = regexp.MustCompile(
		`^(\+|-|VC|RE)?(MI|BC|PR|DR|BL|SH|TS|FZ)?((?:DZ|RA|SN|SG|IC|PL|GR|GS|UP)*)(BR|FG|FU|VA|DU|SA|HZ|PY)?(PO|SQ|FC|SS|DS)?$`)
)

// isWeatherGroup reports whether tok is a present-weather group. A
// bare intensity marker is not weather; a descriptor alone (VCSH) is.
func isWeatherGroup(tok string) bool {
	if tok == "" {
		return false
	}
	m := weatherGroupShape.FindStringSubmatch(tok)
	if m == nil {
		return false
	}
	return m[2] != "" || m[3] != "" || m[4] != "" || m[5] != ""
}

// vocabularyShapes are every coded-group form the body may carry. A
// body token matching none of these (and none of the bare keywords or
// the weather grammar) is a suspicious field.
var vocabularyShapes = []*regexp.Regexp{
	timeShape,
	regexp.MustCompile(`^\d{6}$`), // TAF issue/validity day-hour pair
	tafValidityShape,
	windShape,
	missingWindShape,
	windRangeShape,
	regexp.MustCompile(`^\d{4}[NSEW]{0,2}$`), // visibility in meters, optional direction
	regexp.MustCompile(`^[PM]?\d{1,2}SM$`),   // visibility in statute miles
	fractionShape,
	cloudShape,
	temperatureShape,
	qnhShape,
	trendRVRShape,
	regexp.MustCompile(`^RWY\d{2}[LRC]?$`),
	changeTimeShape,
	tafPeriodShape,
	tafTempShape,
	regexp.MustCompile(`^/+$`), // missing-sensor placeholder run
}

// inVocabulary reports whether a body token is a recognized group.
func inVocabulary(tok string) bool {
	if bareKeywords[tok] || isWeatherGroup(tok) {
		return true
	}
	for _, shape := range vocabularyShapes {
		if shape.MatchString(tok) {
			return true
		}
	}
	return false
}

// canonicalKeywords feed the did-you-mean hint on suspicious fields.
// The hint is advisory text only; edit distance never decides the
// verdict, membership in the vocabulary does.
var canonicalKeywords = []string{"NOSIG", "BECMG", "TEMPO", "CAVOK", "AUTO", "NSW"}

func suggestKeyword(tok string) string {
	if len(tok) < 3 || len(tok) > 8 {
		return ""
	}
	for _, kw := range canonicalKeywords {
		if levenshtein.ComputeDistance(tok, kw) <= 2 {
			return kw
		}
	}
	return ""
}

var (
	isolatedDigitShape = regexp.MustCompile(`^\d{1,3}$`)
	singleDigitShape   = regexp.MustCompile(`^\d$`)
)

func fieldRules() []Rule {
	return []Rule{
		{
			// A bare 1-3 digit token is a fragment of a broken group. The
			// one legitimate form is the whole-number part of a mixed
			// statute-mile visibility, recognized by its fraction neighbor.
			ID: "field.isolated_digit",
			Check: func(t Target, _ domain.ValidateConfig) string {
				for i := t.BodyStart; i < t.BodyEnd(); i++ {
					tok := t.Tokens[i]
					if !isolatedDigitShape.MatchString(tok) {
						continue
					}
					if singleDigitShape.MatchString(tok) && i+1 < t.BodyEnd() && fractionShape.MatchString(t.Tokens[i+1]) {
						i++
						continue
					}
					return fmt.Sprintf("isolated digit group: %q", tok)
				}
				return ""
			},
		},
		{
			ID: "field.suspicious",
			Check: func(t Target, _ domain.ValidateConfig) string {
				for i := t.BodyStart; i < t.BodyEnd(); i++ {
					tok := t.Tokens[i]
					// Digit-only fragments already went through the
					// isolated-digit rule; any left standing are the
					// whole-number part of a mixed fraction.
					if isolatedDigitShape.MatchString(tok) || inVocabulary(tok) {
						continue
					}
					msg := fmt.Sprintf("suspicious field: %q", tok)
					if i > t.TrendStart {
						msg = fmt.Sprintf("suspicious field in the trend section: %q", tok)
					}
					if kw := suggestKeyword(tok); kw != "" {
						msg += fmt.Sprintf(" (did you mean %s?)", kw)
					}
					return msg
				}
				return ""
			},
		},
	}
}
