package extract

import (
	"regexp"
	"strconv"

	"github.com/ahrav/go-metaf/internal/domain"
	"github.com/ahrav/go-metaf/internal/ports"
)

var _ ports.GroupExtractor = (*PressureExtractor)(nil)

var qnhPattern = regexp.MustCompile(`^([QA])(\d{4})$`)

// PressureExtractor claims the QNH group. Q-groups are whole
// hectopascals; A-groups are inches of mercury times one hundred
// (A2992 decodes to 29.92 inHg). The value keeps its as-reported unit.
type PressureExtractor struct{}

// NewPressureExtractor creates a PressureExtractor.
func NewPressureExtractor() *PressureExtractor { return &PressureExtractor{} }

// Name returns the extractor identifier.
func (pe *PressureExtractor) Name() string { return "qnh" }

// Extract claims one QNH group. A masked Q//// declines and is skipped.
func (pe *PressureExtractor) Extract(tokens []string, pos int, rep *domain.Report) (int, error) {
	if rep.QNH != nil {
		return 0, nil
	}

	m := qnhPattern.FindStringSubmatch(tokens[pos])
	if m == nil {
		return 0, nil
	}

	v, _ := strconv.Atoi(m[2])
	switch m[1] {
	case "Q":
		rep.QNH = &domain.Pressure{Value: float64(v), Unit: domain.UnitHectopascals}
	case "A":
		rep.QNH = &domain.Pressure{Value: float64(v) / 100, Unit: domain.UnitInchesHg}
	}
	return 1, nil
}
