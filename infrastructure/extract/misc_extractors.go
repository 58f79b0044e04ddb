package extract

import (
	"regexp"
	"strings"

	"github.com/ahrav/go-metaf/internal/domain"
	"github.com/ahrav/go-metaf/internal/ports"
)

var (
	_ ports.GroupExtractor = (*FlagExtractor)(nil)
	_ ports.GroupExtractor = (*WindShearExtractor)(nil)
	_ ports.GroupExtractor = (*RVRExtractor)(nil)
)

// FlagExtractor claims the single-token markers: AUTO (automated
// station), COR (correction appearing in the body rather than the
// header), and NIL (header-only report with no observation).
type FlagExtractor struct{}

// NewFlagExtractor creates a FlagExtractor.
func NewFlagExtractor() *FlagExtractor { return &FlagExtractor{} }

// Name returns the extractor identifier.
func (fe *FlagExtractor) Name() string { return "flags" }

// Extract claims one marker token.
func (fe *FlagExtractor) Extract(tokens []string, pos int, rep *domain.Report) (int, error) {
	switch tokens[pos] {
	case "AUTO":
		rep.Auto = true
	case "COR":
		rep.Corrected = true
	case "NIL":
		rep.Nil = true
	default:
		return 0, nil
	}
	return 1, nil
}

var (
	wsRunwayPattern = regexp.MustCompile(`^RWY\d{2}[LRC]?$`)
	wsScopeTokens   = map[string]bool{"LDG": true, "TKOF": true, "ALL": true}
)

// WindShearExtractor claims WS [LDG|TKOF|ALL] RWYnn[LRC] sequences.
// The groups are kept raw: wind shear is reported per runway and this
// core does not model runways beyond the structural claim.
type WindShearExtractor struct{}

// NewWindShearExtractor creates a WindShearExtractor.
func NewWindShearExtractor() *WindShearExtractor { return &WindShearExtractor{} }

// Name returns the extractor identifier.
func (we *WindShearExtractor) Name() string { return "windshear" }

// Extract claims a two- or three-token wind shear sequence anchored on
// the WS marker; a dangling WS declines.
func (we *WindShearExtractor) Extract(tokens []string, pos int, rep *domain.Report) (int, error) {
	if tokens[pos] != "WS" || pos+1 >= len(tokens) {
		return 0, nil
	}

	next := tokens[pos+1]
	if wsRunwayPattern.MatchString(next) {
		rep.WindShear = append(rep.WindShear, "WS "+next)
		return 2, nil
	}
	if wsScopeTokens[next] && pos+2 < len(tokens) && wsRunwayPattern.MatchString(tokens[pos+2]) {
		rep.WindShear = append(rep.WindShear, strings.Join(tokens[pos:pos+3], " "))
		return 3, nil
	}
	return 0, nil
}

// rvrPattern covers runway visual range groups: runway designator,
// optional P/M (above/below measurable range) prefixes, an optional
// variation segment, and an optional tendency suffix.
var rvrPattern = regexp.MustCompile(`^R\d{2}[LRC]?/[PM]?\d{4}(V[PM]?\d{4})?[UDN]?$`)

// RVRExtractor claims runway visual range groups raw. Claiming them
// keeps them out of the unrecognized bucket; decoding their parts is
// outside this core.
type RVRExtractor struct{}

// NewRVRExtractor creates an RVRExtractor.
func NewRVRExtractor() *RVRExtractor { return &RVRExtractor{} }

// Name returns the extractor identifier.
func (re *RVRExtractor) Name() string { return "rvr" }

// Extract claims one RVR group.
func (re *RVRExtractor) Extract(tokens []string, pos int, rep *domain.Report) (int, error) {
	if !rvrPattern.MatchString(tokens[pos]) {
		return 0, nil
	}
	rep.RunwayVisualRange = append(rep.RunwayVisualRange, tokens[pos])
	return 1, nil
}
