package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ahrav/go-metaf/internal/domain"
	"github.com/ahrav/go-metaf/internal/ports"
)

var _ ports.GroupExtractor = (*TemperatureExtractor)(nil)

// tempDewPattern is the TT/DD pair: two digits per half, with an
// optional M sign prefix for sub-zero values.
var tempDewPattern = regexp.MustCompile(`^(M?\d{2})/(M?\d{2})$`)

// TemperatureExtractor claims the temperature/dew-point pair. A group
// missing the slash separator is not a malformed temperature here; it
// simply declines and the position is treated as unrecognized.
type TemperatureExtractor struct{}

// NewTemperatureExtractor creates a TemperatureExtractor.
func NewTemperatureExtractor() *TemperatureExtractor { return &TemperatureExtractor{} }

// Name returns the extractor identifier.
func (te *TemperatureExtractor) Name() string { return "temperature" }

// Extract claims one TT/DD group; later lookalike groups decline.
func (te *TemperatureExtractor) Extract(tokens []string, pos int, rep *domain.Report) (int, error) {
	if rep.Temperature != nil {
		return 0, nil
	}

	m := tempDewPattern.FindStringSubmatch(tokens[pos])
	if m == nil {
		return 0, nil
	}

	temp := signedDegrees(m[1])
	dew := signedDegrees(m[2])
	rep.Temperature = &temp
	rep.DewTemperature = &dew
	return 1, nil
}

// signedDegrees parses a two-digit value with the M prefix meaning
// negative, so M04 is -4.
func signedDegrees(s string) int {
	neg := strings.HasPrefix(s, "M")
	v, _ := strconv.Atoi(strings.TrimPrefix(s, "M"))
	if neg {
		return -v
	}
	return v
}
