package extract

import (
	"regexp"
	"strconv"

	"github.com/ahrav/go-metaf/internal/domain"
	"github.com/ahrav/go-metaf/internal/ports"
)

var _ ports.GroupExtractor = (*WindExtractor)(nil)

var (
	windPattern      = regexp.MustCompile(`^(\d{3}|VRB)(\d{2,3})(?:G(\d{2,3}))?(KT|MPS|KMH)$`)
	windRangePattern = regexp.MustCompile(`^(\d{3})V(\d{3})$`)
)

// speedUnits maps wire suffixes to the unit tags stored on the Report.
// Values stay in their as-reported unit; there is no conversion.
var speedUnits = map[string]string{
	"KT":  domain.UnitKnots,
	"MPS": domain.UnitMetersPerSec,
	"KMH": domain.UnitKilometersHour,
}

// WindExtractor claims the DDDSS[GGG]UU wind group and, when it
// immediately follows, the dddVddd variable-direction range group.
type WindExtractor struct{}

// NewWindExtractor creates a WindExtractor.
func NewWindExtractor() *WindExtractor { return &WindExtractor{} }

// Name returns the extractor identifier.
func (we *WindExtractor) Name() string { return "wind" }

// Extract claims one or two groups: the wind group itself, plus the
// direction-range group when it is the very next token. A range group
// anywhere else is never claimed here, which keeps the invariant that
// DirectionRange exists only alongside a decoded wind group.
func (we *WindExtractor) Extract(tokens []string, pos int, rep *domain.Report) (int, error) {
	if rep.Wind != nil {
		return 0, nil
	}

	m := windPattern.FindStringSubmatch(tokens[pos])
	if m == nil {
		return 0, nil
	}

	w := &domain.Wind{Unit: speedUnits[m[4]]}

	if m[1] == "VRB" {
		w.Direction = domain.DirectionVariable
	} else {
		w.Direction, _ = strconv.Atoi(m[1])
	}
	w.Speed, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		gust, _ := strconv.Atoi(m[3])
		w.Gust = &gust
	}

	consumed := 1
	if pos+1 < len(tokens) {
		if r := windRangePattern.FindStringSubmatch(tokens[pos+1]); r != nil {
			from, _ := strconv.Atoi(r[1])
			to, _ := strconv.Atoi(r[2])
			w.DirectionRange = &[2]int{from, to}
			consumed = 2
		}
	}

	rep.Wind = w
	return consumed, nil
}
