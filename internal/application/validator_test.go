package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-metaf/internal/domain"
)

func TestEngine_ValidReport(t *testing.T) {
	eng := NewEngine(domain.ValidateConfig{})

	res := eng.Validate(context.Background(),
		"METAR ZSSS 220030Z 03008MPS 300V360 1600 R34L/1000VP2000D R34R/0400V0800U BR BKN010 OVC025 15/14 Q1013 BECMG TL0100 3000 BR=")
	assert.True(t, res.Valid)
	assert.Empty(t, res.RuleID)
	assert.Nil(t, res.Error)
}

func TestEngine_InvalidReportCarriesRuleAndMessage(t *testing.T) {
	eng := NewEngine(domain.ValidateConfig{})

	res := eng.Validate(context.Background(),
		"METAR ZGOW 140100Z 33006MPS CAVOK 003 Q1023 NOSIG=")
	require.False(t, res.Valid)
	assert.Equal(t, "field.isolated_digit", res.RuleID)
	require.NotNil(t, res.Error)
	assert.Contains(t, *res.Error, "003")
}

func TestEngine_FirstFailureWins(t *testing.T) {
	eng := NewEngine(domain.ValidateConfig{})

	// The QNH group is malformed and the report carries no trend
	// keyword; the more specific QNH rule must surface, not the
	// catch-all suspicious-field rule.
	res := eng.Validate(context.Background(),
		"METAR ZGOW 140100Z 35009MPS CAVOK M04/M27 Q102NOSIG=")
	require.False(t, res.Valid)
	assert.Equal(t, "qnh.format", res.RuleID)
	assert.Contains(t, *res.Error, "QNH")
}

func TestEngine_DisabledRule(t *testing.T) {
	raw := "METAR ZGSZ 030400Z 04004MPS 9999 BKN023 29/26 Q1007 NOSIG DUPE="

	eng := NewEngine(domain.ValidateConfig{})
	res := eng.Validate(context.Background(), raw)
	require.False(t, res.Valid)
	require.Equal(t, "field.suspicious", res.RuleID)

	eng = NewEngine(domain.ValidateConfig{DisabledRules: []string{"field.suspicious"}})
	res = eng.Validate(context.Background(), raw)
	assert.True(t, res.Valid, "disabling the only failing rule must flip the verdict")
}

func TestEngine_StrictMode(t *testing.T) {
	raw := "METAR RCMQ 200600Z 35017KT 9999 FEW006 SCT012 BKN100 31/25 Q0999 NOSIG RMK A2952 QFF1000.5HPA="

	eng := NewEngine(domain.ValidateConfig{})
	assert.True(t, eng.Validate(context.Background(), raw).Valid)

	eng = NewEngine(domain.ValidateConfig{StrictMode: true})
	res := eng.Validate(context.Background(), raw)
	require.False(t, res.Valid)
	assert.Equal(t, "remarks.strict", res.RuleID)
}

func TestEngine_MaxLength(t *testing.T) {
	raw := "METAR ZSSS 220030Z 03008MPS CAVOK 26/22 Q1009 NOSIG="

	eng := NewEngine(domain.ValidateConfig{MaxLength: 16})
	res := eng.Validate(context.Background(), raw)
	require.False(t, res.Valid)
	assert.Equal(t, "structure.length", res.RuleID)

	eng = NewEngine(domain.ValidateConfig{MaxLength: 1024})
	assert.True(t, eng.Validate(context.Background(), raw).Valid)
}

func TestEngine_Deterministic(t *testing.T) {
	eng := NewEngine(domain.ValidateConfig{})
	raw := "METAR ZSNJ 262000Z 04002MPS 3000 BR NSC 20/18 Q1016N NOSIG="

	first := eng.Validate(context.Background(), raw)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, eng.Validate(context.Background(), raw))
	}
}

func TestEngine_NeverErrorsOnGarbage(t *testing.T) {
	eng := NewEngine(domain.ValidateConfig{})

	// Arbitrary garbage yields a verdict, not a panic or error.
	for _, raw := range []string{"", "   ", "=", "\x00\x01\x02", "METAR", "METAR ZYTL 300700Z (8 4.0' :-="} {
		res := eng.Validate(context.Background(), raw)
		assert.False(t, res.Valid, "input %q", raw)
		assert.NotEmpty(t, res.RuleID)
	}
}
