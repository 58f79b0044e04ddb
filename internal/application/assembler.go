package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/ahrav/go-metaf/infrastructure/extract"
	"github.com/ahrav/go-metaf/internal/domain"
	"github.com/ahrav/go-metaf/internal/ports"
)

var _ ports.Decoder = (*Assembler)(nil)

// trendKeywords open the trend section. Groups from the first trend
// keyword up to the RMK boundary are kept raw; trend decoding is not
// part of this core.
var trendKeywords = map[string]bool{
	"TEMPO": true,
	"BECMG": true,
	"NOSIG": true,
}

// Assembler is the decoding engine. It tokenizes a report, runs the
// field extractors over the group sequence in the canonical priority
// order, and folds the results into one Report.
//
// Decoding is best effort: a group no extractor claims is skipped
// silently, and the assembler advances one position. Only two
// conditions fail a decode: a missing time group, and a composed date
// that does not exist. Flagging malformed groups is the validator's
// job, not the decoder's; the two engines intentionally serve
// different strictness levels.
type Assembler struct {
	cfg        DecodeConfig
	extractors []ports.GroupExtractor
}

// NewAssembler creates an Assembler for the given reference year/month.
func NewAssembler(cfg DecodeConfig) (*Assembler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Priority order mirrors the canonical group ordering of the
	// format. Every extractor is attempted at every position, so the
	// order only matters when two extractors could claim one group.
	return &Assembler{
		cfg: cfg,
		extractors: []ports.GroupExtractor{
			extract.NewTimeExtractor(cfg.Year, cfg.Month),
			extract.NewWindExtractor(),
			extract.NewCavokExtractor(),
			extract.NewVisibilityExtractor(),
			extract.NewRVRExtractor(),
			extract.NewWeatherExtractor(),
			extract.NewCloudExtractor(),
			extract.NewTemperatureExtractor(),
			extract.NewPressureExtractor(),
			extract.NewFlagExtractor(),
			extract.NewWindShearExtractor(),
		},
	}, nil
}

// Decode parses raw report text into a Report. It fails only with
// domain.ErrMissingTimeGroup or a *domain.DateCompositionError.
func (a *Assembler) Decode(_ context.Context, raw string) (domain.Report, error) {
	st := extract.Tokenize(raw)
	header := st.Header()

	rep := domain.Report{
		Kind:      header.Kind,
		Corrected: header.Corrected,
		Amended:   header.Amended,
		ICAO:      header.ICAO,
	}
	if rep.Kind == "" {
		// Feeds commonly drop the keyword on routine reports.
		rep.Kind = domain.KindMETAR
	}

	end := st.BodyEnd()
	trendStart := end
	for i := st.BodyStart(); i < end; i++ {
		if tok, _ := st.At(i); trendKeywords[tok] {
			trendStart = i
			break
		}
	}

	tokens := st.Tokens()
	pos := st.BodyStart()
	for pos < trendStart {
		consumed, err := a.extractAt(tokens[:trendStart], pos, &rep)
		if err != nil {
			return domain.Report{}, err
		}
		if consumed == 0 {
			// Unrecognized group: skip it and keep decoding.
			consumed = 1
		}
		pos += consumed
	}

	if !rep.HasTime() {
		return domain.Report{}, fmt.Errorf("decode %q: %w", header.ICAO, domain.ErrMissingTimeGroup)
	}

	if trendStart < end {
		rep.Trend = strings.Join(tokens[trendStart:end], " ")
	}
	rep.Remarks = st.Remarks()

	// Clear-sky sentinel: nothing reported for weather and nothing for
	// cloud means an explicitly clear sky, distinct from an NSC layer.
	if !rep.Nil && len(rep.Weather) == 0 && len(rep.Cloud) == 0 {
		rep.Weather = []domain.WeatherGroup{domain.ClearSky}
	}

	return rep, nil
}

// extractAt offers the group at pos to each extractor in priority
// order and returns the first claim.
func (a *Assembler) extractAt(tokens []string, pos int, rep *domain.Report) (int, error) {
	for _, ex := range a.extractors {
		consumed, err := ex.Extract(tokens, pos, rep)
		if err != nil {
			return 0, fmt.Errorf("extractor %s: %w", ex.Name(), err)
		}
		if consumed > 0 {
			return consumed, nil
		}
	}
	return 0, nil
}
