package extract

import (
	"regexp"
	"strconv"

	"github.com/ahrav/go-metaf/internal/domain"
	"github.com/ahrav/go-metaf/internal/ports"
)

var (
	_ ports.GroupExtractor = (*CavokExtractor)(nil)
	_ ports.GroupExtractor = (*VisibilityExtractor)(nil)
)

var (
	visMetersPattern   = regexp.MustCompile(`^(\d{4})[NSEW]{0,2}$`)
	visMilesPattern    = regexp.MustCompile(`^[PM]?(\d{1,2})SM$`)
	visFractionPattern = regexp.MustCompile(`^[PM]?(\d)/(\d{1,2})SM$`)
	wholeMilePattern   = regexp.MustCompile(`^\d$`)
)

// CavokExtractor claims the CAVOK group: ceiling and visibility OK.
// CAVOK supersedes any visibility group; per the format the two are
// mutually exclusive, and decoding honors that by leaving (or clearing)
// the visibility field so that cavok==true always implies an absent
// visibility. A report carrying both is a validation concern, not a
// decode error.
type CavokExtractor struct{}

// NewCavokExtractor creates a CavokExtractor.
func NewCavokExtractor() *CavokExtractor { return &CavokExtractor{} }

// Name returns the extractor identifier.
func (ce *CavokExtractor) Name() string { return "cavok" }

// Extract claims a literal CAVOK group.
func (ce *CavokExtractor) Extract(tokens []string, pos int, rep *domain.Report) (int, error) {
	if tokens[pos] != "CAVOK" {
		return 0, nil
	}
	rep.Cavok = true
	rep.Visibility = nil
	return 1, nil
}

// VisibilityExtractor claims the prevailing visibility group: a metric
// four-digit group (optionally with a directional suffix), statute
// miles (10SM), fractional miles (1/2SM), or a two-token mixed number
// (1 1/2SM). Values are stored as reported with an explicit unit.
type VisibilityExtractor struct{}

// NewVisibilityExtractor creates a VisibilityExtractor.
func NewVisibilityExtractor() *VisibilityExtractor { return &VisibilityExtractor{} }

// Name returns the extractor identifier.
func (ve *VisibilityExtractor) Name() string { return "visibility" }

// Extract claims at most one visibility group per report; secondary
// directional visibilities decline and fall through as unclaimed
// groups. A CAVOK report never gets a visibility.
func (ve *VisibilityExtractor) Extract(tokens []string, pos int, rep *domain.Report) (int, error) {
	if rep.Cavok || rep.Visibility != nil {
		return 0, nil
	}

	tok := tokens[pos]

	if m := visMetersPattern.FindStringSubmatch(tok); m != nil {
		v, _ := strconv.Atoi(m[1])
		rep.Visibility = &domain.Visibility{Value: float64(v), Unit: "m"}
		return 1, nil
	}

	// Mixed number: a lone digit followed by a fractional-mile group.
	if wholeMilePattern.MatchString(tok) && pos+1 < len(tokens) {
		if m := visFractionPattern.FindStringSubmatch(tokens[pos+1]); m != nil {
			whole, _ := strconv.Atoi(tok)
			rep.Visibility = &domain.Visibility{
				Value: float64(whole) + fractionValue(m),
				Unit:  "SM",
			}
			return 2, nil
		}
	}

	if m := visFractionPattern.FindStringSubmatch(tok); m != nil {
		rep.Visibility = &domain.Visibility{Value: fractionValue(m), Unit: "SM"}
		return 1, nil
	}

	if m := visMilesPattern.FindStringSubmatch(tok); m != nil {
		v, _ := strconv.Atoi(m[1])
		rep.Visibility = &domain.Visibility{Value: float64(v), Unit: "SM"}
		return 1, nil
	}

	return 0, nil
}

func fractionValue(m []string) float64 {
	num, _ := strconv.Atoi(m[1])
	den, _ := strconv.Atoi(m[2])
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
