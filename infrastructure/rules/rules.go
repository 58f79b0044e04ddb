// Package rules implements the wire-format rule catalog evaluated by
// the validation engine. Every rule is an explicit, named check:
// deterministic, side-effect free, and independent of the others. The
// catalog order is the evaluation order and is chosen so the most
// specific diagnostic for a malformed report surfaces first; keep it
// stable.
package rules

import (
	"regexp"
	"strings"

	"github.com/ahrav/go-metaf/internal/domain"
)

// Rule is one named validation check. Check returns an empty string
// when the rule passes, or the diagnostic message when it fails.
type Rule struct {
	// ID is the stable identifier of this rule, usable in
	// ValidateConfig.DisabledRules.
	ID string

	// Check evaluates the rule against a prepared Target. It must be
	// deterministic and side-effect free.
	Check func(t Target, cfg domain.ValidateConfig) string
}

// Target is the prepared view of one raw report that every rule checks
// against. It is built once per validation so the thirty-odd rules do
// not each retokenize the text. All fields are derived purely from the
// raw input.
type Target struct {
	// Raw is the input exactly as passed to the validator.
	Raw string

	// Trimmed is Raw with surrounding whitespace and the trailing "="
	// end-of-message sentinel removed.
	Trimmed string

	// Tokens is the whitespace-delimited group sequence of Trimmed.
	Tokens []string

	// KindCount is the number of report-type keywords anywhere in the
	// token sequence; a well-formed report has at most one.
	KindCount int

	// ICAOIndex is the position of the station identifier, or -1 when
	// the group after the header keyword is not ICAO-shaped.
	ICAOIndex int

	// BodyStart is the index of the first group after the header.
	BodyStart int

	// TimeIndex is the position of the first DDHHMMZ group, or -1.
	TimeIndex int

	// RMKIndex is the position of the RMK marker, or -1.
	RMKIndex int

	// TrendStart is the position of the first trend keyword
	// (BECMG/TEMPO/NOSIG) in the body, or the body end when absent.
	TrendStart int
}

var (
	kindKeywords = map[string]bool{"METAR": true, "SPECI": true, "TAF": true}

	trendOpeners = map[string]bool{"BECMG": true, "TEMPO": true, "NOSIG": true}

	icaoShape     = regexp.MustCompile(`^[A-Z][A-Z0-9]{3}$`)
	timeShape     = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})Z$`)
	fractionShape = regexp.MustCompile(`^[PM]?\d/\d{1,2}SM$`)
)

// NewTarget prepares the rule-evaluation view of one raw report.
func NewTarget(raw string) Target {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, "="))

	t := Target{
		Raw:       raw,
		Trimmed:   trimmed,
		Tokens:    strings.Fields(trimmed),
		ICAOIndex: -1,
		TimeIndex: -1,
		RMKIndex:  -1,
	}

	for _, tok := range t.Tokens {
		if kindKeywords[tok] {
			t.KindCount++
		}
	}

	i := 0
	if i < len(t.Tokens) && kindKeywords[t.Tokens[i]] {
		i++
	}
	for i < len(t.Tokens) && (t.Tokens[i] == "COR" || t.Tokens[i] == "AMD") {
		i++
	}
	if i < len(t.Tokens) && icaoShape.MatchString(t.Tokens[i]) {
		t.ICAOIndex = i
		i++
	}
	t.BodyStart = i

	for j, tok := range t.Tokens {
		if t.TimeIndex < 0 && timeShape.MatchString(tok) {
			t.TimeIndex = j
		}
		if t.RMKIndex < 0 && tok == "RMK" {
			t.RMKIndex = j
		}
	}

	t.TrendStart = t.BodyEnd()
	for j := t.BodyStart; j < t.BodyEnd(); j++ {
		if trendOpeners[t.Tokens[j]] {
			t.TrendStart = j
			break
		}
	}

	return t
}

// BodyEnd returns the index one past the last coded group: the RMK
// boundary when present, otherwise the full token count.
func (t Target) BodyEnd() int {
	if t.RMKIndex >= 0 {
		return t.RMKIndex
	}
	return len(t.Tokens)
}

// Body returns the coded groups, header included, remarks excluded.
func (t Target) Body() []string { return t.Tokens[:t.BodyEnd()] }

// Remarks returns the tokens after the RMK marker.
func (t Target) Remarks() []string {
	if t.RMKIndex < 0 {
		return nil
	}
	return t.Tokens[t.RMKIndex+1:]
}

// Catalog returns the full rule catalog in evaluation order:
// structural and header rules first, then group-format rules, then the
// spelling/placement heuristics, with the catch-all suspicious-field
// and remarks rules last. Reordering changes which single diagnostic
// surfaces for a multiply-malformed report, never the verdict.
func Catalog() []Rule {
	var catalog []Rule
	catalog = append(catalog, structureRules()...)
	catalog = append(catalog, headerRules()...)
	catalog = append(catalog, windRules()...)
	catalog = append(catalog, groupFormatRules()...)
	catalog = append(catalog, spellingRules()...)
	catalog = append(catalog, trendRules()...)
	catalog = append(catalog, fieldRules()...)
	catalog = append(catalog, remarksRules()...)
	return catalog
}
