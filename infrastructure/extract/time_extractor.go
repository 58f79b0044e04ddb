package extract

import (
	"strconv"
	"time"

	"github.com/ahrav/go-metaf/internal/domain"
	"github.com/ahrav/go-metaf/internal/ports"
)

var _ ports.GroupExtractor = (*TimeExtractor)(nil)

// TimeExtractor claims the DDHHMMZ time group and composes it with the
// externally supplied reference year and month into an absolute UTC
// timestamp. Reports carry no year or month of their own.
type TimeExtractor struct {
	year  int
	month int
}

// NewTimeExtractor creates a TimeExtractor for the given reference
// year/month. Range validation of the reference itself happens at the
// assembler's configuration boundary.
func NewTimeExtractor(year, month int) *TimeExtractor {
	return &TimeExtractor{year: year, month: month}
}

// Name returns the extractor identifier.
func (te *TimeExtractor) Name() string { return "time" }

// Extract claims a DDHHMMZ group. It declines once a time has been set,
// so an embedded second time group never overwrites the first. The only
// error it can return is a *domain.DateCompositionError.
func (te *TimeExtractor) Extract(tokens []string, pos int, rep *domain.Report) (int, error) {
	if rep.HasTime() {
		return 0, nil
	}

	m := timeGroupPattern.FindStringSubmatch(tokens[pos])
	if m == nil {
		return 0, nil
	}

	day, _ := strconv.Atoi(m[1])
	hour, _ := strconv.Atoi(m[2])
	minute, _ := strconv.Atoi(m[3])

	t, err := composeUTC(te.year, te.month, day, hour, minute)
	if err != nil {
		return 0, err
	}

	rep.Time = t
	return 1, nil
}

// composeUTC builds the observation instant. Range checks are explicit
// because time.Date normalizes out-of-range components instead of
// failing; the post-composition day comparison catches days the
// reference month does not have (for example Feb 30).
func composeUTC(year, month, day, hour, minute int) (time.Time, error) {
	switch {
	case day < 1 || day > 31:
		return time.Time{}, domain.NewDateCompositionError(year, month, day, hour, minute, "day out of range")
	case hour > 23:
		return time.Time{}, domain.NewDateCompositionError(year, month, day, hour, minute, "hour out of range")
	case minute > 59:
		return time.Time{}, domain.NewDateCompositionError(year, month, day, hour, minute, "minute out of range")
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	if t.Day() != day {
		return time.Time{}, domain.NewDateCompositionError(year, month, day, hour, minute, "day does not exist in month")
	}
	return t, nil
}
