package extract

import (
	"regexp"

	"github.com/ahrav/go-metaf/internal/domain"
	"github.com/ahrav/go-metaf/internal/ports"
)

var _ ports.GroupExtractor = (*WeatherExtractor)(nil)

// weatherPattern is the present-weather grammar: optional intensity or
// proximity marker, optional descriptor, then precipitation codes
// (repeatable, e.g. -TSPLRA), an obscuration code, and an "other"
// code. A match on intensity alone is not a weather group.
var weatherPattern = regexp.MustCompile(
	`^(\+|-|VC|RE)?` +
		`(MI|BC|PR|DR|BL|SH|TS|FZ)?` +
		`((?:DZ|RA|SN|SG|IC|PL|GR|GS|UP)*)` +
		`(BR|FG|FU|VA|DU|SA|HZ|PY)?` +
		`(PO|SQ|FC|SS|DS)?$`,
)

// WeatherExtractor claims present-weather groups. A report may carry
// several; each claim appends one group in report order.
type WeatherExtractor struct{}

// NewWeatherExtractor creates a WeatherExtractor.
func NewWeatherExtractor() *WeatherExtractor { return &WeatherExtractor{} }

// Name returns the extractor identifier.
func (we *WeatherExtractor) Name() string { return "weather" }

// Extract claims one weather group. The group must carry at least a
// descriptor or one phenomenon code; a bare intensity marker declines.
func (we *WeatherExtractor) Extract(tokens []string, pos int, rep *domain.Report) (int, error) {
	tok := tokens[pos]
	if tok == "" {
		return 0, nil
	}

	m := weatherPattern.FindStringSubmatch(tok)
	if m == nil {
		return 0, nil
	}

	g := domain.WeatherGroup{
		Intensity:  m[1],
		Descriptor: m[2],
		Raw:        tok,
	}
	for i := 0; i+2 <= len(m[3]); i += 2 {
		g.Phenomena = append(g.Phenomena, m[3][i:i+2])
	}
	if m[4] != "" {
		g.Phenomena = append(g.Phenomena, m[4])
	}
	if m[5] != "" {
		g.Phenomena = append(g.Phenomena, m[5])
	}

	if g.Descriptor == "" && len(g.Phenomena) == 0 {
		return 0, nil
	}

	rep.Weather = append(rep.Weather, g)
	return 1, nil
}
