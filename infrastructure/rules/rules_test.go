package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTarget(t *testing.T) {
	tgt := NewTarget("METAR ZSSS 220030Z 03008MPS CAVOK 26/22 Q1009 NOSIG RMK TEST=")

	assert.Equal(t, "METAR ZSSS 220030Z 03008MPS CAVOK 26/22 Q1009 NOSIG RMK TEST", tgt.Trimmed)
	assert.Len(t, tgt.Tokens, 10)
	assert.Equal(t, 1, tgt.KindCount)
	assert.Equal(t, 1, tgt.ICAOIndex)
	assert.Equal(t, 2, tgt.BodyStart)
	assert.Equal(t, 2, tgt.TimeIndex)
	assert.Equal(t, 8, tgt.RMKIndex)
	assert.Equal(t, 7, tgt.TrendStart)
	assert.Equal(t, 8, tgt.BodyEnd())
	assert.Equal(t, []string{"TEST"}, tgt.Remarks())
}

func TestNewTarget_KeywordOmitted(t *testing.T) {
	tgt := NewTarget("ZSSS 220030Z 03008MPS CAVOK 26/22 Q1009 NOSIG=")

	assert.Zero(t, tgt.KindCount)
	assert.Equal(t, 0, tgt.ICAOIndex)
	assert.Equal(t, 1, tgt.BodyStart)
	assert.Equal(t, 1, tgt.TimeIndex)
	assert.Equal(t, -1, tgt.RMKIndex)
	assert.Equal(t, tgt.BodyEnd(), len(tgt.Tokens))
	assert.Empty(t, tgt.Remarks())
}

func TestNewTarget_CorrectedHeader(t *testing.T) {
	tgt := NewTarget("METAR COR VHHH 140730Z 24008KT CAVOK 29/24 Q1012 NOSIG=")

	assert.Equal(t, 2, tgt.ICAOIndex)
	assert.Equal(t, 3, tgt.BodyStart)
	assert.Equal(t, 3, tgt.TimeIndex)
}

func TestNewTarget_NoTrend(t *testing.T) {
	tgt := NewTarget("METAR ZSSS 220030Z 03008MPS CAVOK 26/22 Q1009=")
	assert.Equal(t, tgt.BodyEnd(), tgt.TrendStart, "no trend keyword means TrendStart sits at the body end")
}

func TestCatalog_UniqueStableIDs(t *testing.T) {
	catalog := Catalog()
	require.NotEmpty(t, catalog)

	seen := make(map[string]bool, len(catalog))
	for _, r := range catalog {
		assert.NotEmpty(t, r.ID)
		assert.NotNil(t, r.Check)
		assert.False(t, seen[r.ID], "duplicate rule id %s", r.ID)
		seen[r.ID] = true
	}

	// Structural sanity checks run before everything else so a report
	// that is not even text never reaches group-level rules.
	assert.Equal(t, "structure.empty", catalog[0].ID)
}
