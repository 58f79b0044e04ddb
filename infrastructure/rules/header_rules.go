package rules

import (
	"fmt"
	"strconv"

	"github.com/ahrav/go-metaf/internal/domain"
)

func headerRules() []Rule {
	return []Rule{
		{
			ID: "header.keyword",
			Check: func(t Target, _ domain.ValidateConfig) string {
				if len(t.Tokens) == 0 {
					return ""
				}
				first := t.Tokens[0]
				if kindKeywords[first] || icaoShape.MatchString(first) {
					return ""
				}
				return fmt.Sprintf("report must open with METAR, SPECI, TAF or a station identifier, got %q", first)
			},
		},
		{
			// COR and AMD belong between the report-type keyword and the
			// station identifier; anywhere later they shadow a real group.
			ID: "header.cor_position",
			Check: func(t Target, _ domain.ValidateConfig) string {
				for i := t.BodyStart; i < t.BodyEnd(); i++ {
					if t.Tokens[i] == "COR" || t.Tokens[i] == "AMD" {
						return fmt.Sprintf("%s marker out of position: it must precede the station identifier", t.Tokens[i])
					}
				}
				return ""
			},
		},
		{
			ID: "header.icao",
			Check: func(t Target, _ domain.ValidateConfig) string {
				if t.ICAOIndex >= 0 {
					return ""
				}
				got := "nothing"
				if t.BodyStart < len(t.Tokens) {
					got = strconv.Quote(t.Tokens[t.BodyStart])
				}
				return fmt.Sprintf("station identifier must be 4 uppercase alphanumerics starting with a letter, got %s", got)
			},
		},
		{
			ID: "time.missing",
			Check: func(t Target, _ domain.ValidateConfig) string {
				if t.TimeIndex < 0 {
					return "no DDHHMMZ time group found"
				}
				return ""
			},
		},
		{
			ID: "time.position",
			Check: func(t Target, _ domain.ValidateConfig) string {
				if t.TimeIndex >= 0 && t.TimeIndex != t.ICAOIndex+1 {
					return fmt.Sprintf("time group %q must directly follow the station identifier", t.Tokens[t.TimeIndex])
				}
				return ""
			},
		},
		{
			ID: "time.range",
			Check: func(t Target, _ domain.ValidateConfig) string {
				if t.TimeIndex < 0 {
					return ""
				}
				m := timeShape.FindStringSubmatch(t.Tokens[t.TimeIndex])
				day, _ := strconv.Atoi(m[1])
				hour, _ := strconv.Atoi(m[2])
				minute, _ := strconv.Atoi(m[3])
				switch {
				case day < 1 || day > 31:
					return fmt.Sprintf("time group day %02d out of range", day)
				case hour > 23:
					return fmt.Sprintf("time group hour %02d out of range", hour)
				case minute > 59:
					return fmt.Sprintf("time group minute %02d out of range", minute)
				}
				return ""
			},
		},
	}
}
