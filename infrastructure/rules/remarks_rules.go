package rules

import "github.com/ahrav/go-metaf/internal/domain"

func remarksRules() []Rule {
	return []Rule{
		{
			ID: "remarks.strict",
			Check: func(t Target, cfg domain.ValidateConfig) string {
				if cfg.StrictMode && t.RMKIndex >= 0 {
					return "remarks section not allowed in strict mode"
				}
				return ""
			},
		},
		{
			ID: "remarks.duplicate",
			Check: func(t Target, _ domain.ValidateConfig) string {
				n := 0
				for _, tok := range t.Tokens {
					if tok == "RMK" {
						n++
					}
				}
				if n > 1 {
					return "duplicated RMK marker"
				}
				return ""
			},
		},
		{
			ID: "remarks.unterminated",
			Check: func(t Target, _ domain.ValidateConfig) string {
				if t.RMKIndex >= 0 && t.RMKIndex == len(t.Tokens)-1 {
					return "RMK marker with no remarks content"
				}
				return ""
			},
		},
	}
}
