package metaf

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestEngine_DecodeAndValidate(t *testing.T) {
	eng, err := New(2021, 4)
	require.NoError(t, err)

	raw := "METAR ZSSS 220030Z 03008MPS 300V360 1600 R34L/1000VP2000D R34R/0400V0800U BR BKN010 OVC025 15/14 Q1013 BECMG TL0100 3000 BR="

	rep, err := eng.Decode(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, KindMETAR, rep.Kind)
	assert.Equal(t, "ZSSS", rep.ICAO)
	assert.Equal(t, time.Date(2021, 4, 22, 0, 30, 0, 0, time.UTC), rep.Time)

	res := eng.Validate(context.Background(), raw)
	assert.True(t, res.Valid)
}

func TestEngine_DecodeCanonicalReport(t *testing.T) {
	eng, err := New(2021, 5)
	require.NoError(t, err)

	rep, err := eng.Decode(context.Background(),
		"METAR ZYAS 250500Z 21009G14MPS 6000 NSC 18/08 Q1018 NOSIG")
	require.NoError(t, err)

	assert.Equal(t, KindMETAR, rep.Kind)
	assert.Equal(t, "ZYAS", rep.ICAO)
	assert.Equal(t, time.Date(2021, 5, 25, 5, 0, 0, 0, time.UTC), rep.Time)

	require.NotNil(t, rep.Wind)
	assert.Equal(t, 210, rep.Wind.Direction)
	assert.Equal(t, 9, rep.Wind.Speed)
	require.NotNil(t, rep.Wind.Gust)
	assert.Equal(t, 14, *rep.Wind.Gust)
	assert.Equal(t, UnitMetersPerSec, rep.Wind.Unit)

	require.NotNil(t, rep.Visibility)
	assert.Equal(t, 6000.0, rep.Visibility.Value)
	assert.Equal(t, "m", rep.Visibility.Unit)

	require.Len(t, rep.Cloud, 1)
	assert.Equal(t, Cover("NSC"), rep.Cloud[0].Cover)
	assert.Nil(t, rep.Cloud[0].Height)

	assert.Equal(t, 18, *rep.Temperature)
	assert.Equal(t, 8, *rep.DewTemperature)

	require.NotNil(t, rep.QNH)
	assert.Equal(t, 1018.0, rep.QNH.Value)
	assert.Equal(t, UnitHectopascals, rep.QNH.Unit)

	assert.Equal(t, "NOSIG", rep.Trend)
}

func TestEngine_ValidatorPriorityOverMisclassification(t *testing.T) {
	eng, err := New(2021, 2)
	require.NoError(t, err)

	// Q102NOSIG is a QNH group fused with the trend keyword; the QNH
	// shape rule must speak, not the later vocabulary rule.
	res := eng.Validate(context.Background(),
		"METAR ZBTJ 290200Z 35009MPS CAVOK M04/M27 Q102NOSIG=")
	require.False(t, res.Valid)
	assert.Equal(t, "qnh.format", res.RuleID)
	assert.Contains(t, *res.Error, "QNH")
}

func TestEngine_StrictModeFlipsRemarksVerdict(t *testing.T) {
	raw := "METAR RCMQ 230900Z 25008KT 9999 FEW010 Q1009 NOSIG RMK A2982="

	lenient, err := New(2021, 2)
	require.NoError(t, err)
	assert.True(t, lenient.Validate(context.Background(), raw).Valid)

	strict, err := New(2021, 2, WithValidateConfig(ValidateConfig{StrictMode: true}))
	require.NoError(t, err)
	res := strict.Validate(context.Background(), raw)
	require.False(t, res.Valid)
	assert.Equal(t, "remarks.strict", res.RuleID)
}

func TestEngine_EnginesAreIndependent(t *testing.T) {
	eng, err := New(2021, 7)
	require.NoError(t, err)

	// The decoder shrugs off a group the validator rejects: the two
	// engines serve different strictness levels by design.
	raw := "METAR ZGSZ 030400Z 04004MPS 9999 BKN023 29/26 Q1007 NOSIG DUPE="

	rep, err := eng.Decode(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "ZGSZ", rep.ICAO)
	require.NotNil(t, rep.Wind)

	res := eng.Validate(context.Background(), raw)
	require.False(t, res.Valid)
	assert.Equal(t, "field.suspicious", res.RuleID)
}

func TestEngine_DecodeFailsOnlyOnTime(t *testing.T) {
	eng, err := New(2021, 2)
	require.NoError(t, err)

	_, err = eng.Decode(context.Background(), "ZSSS 022000 14003MPS CAVOK 15/10 Q1014=")
	assert.ErrorIs(t, err, ErrMissingTimeGroup)

	_, err = eng.Decode(context.Background(), "METAR ZSSS 300030Z 03008MPS CAVOK 26/22 Q1009 NOSIG=")
	assert.ErrorIs(t, err, ErrDateOutOfRange, "February 30th does not exist")
}

func TestEngine_CavokExcludesVisibility(t *testing.T) {
	eng, err := New(2021, 4)
	require.NoError(t, err)

	rep, err := eng.Decode(context.Background(), "METAR ZSSS 220030Z 03008MPS CAVOK 26/22 Q1009 NOSIG=")
	require.NoError(t, err)
	assert.True(t, rep.Cavok)
	assert.Nil(t, rep.Visibility)

	rep, err = eng.Decode(context.Background(), "METAR ZSSS 220030Z 03008MPS 9999 BKN010 26/22 Q1009 NOSIG=")
	require.NoError(t, err)
	assert.False(t, rep.Cavok)
	require.NotNil(t, rep.Visibility)
	assert.Equal(t, 9999.0, rep.Visibility.Value)
}

func TestEngine_DirectionRangeRequiresWind(t *testing.T) {
	eng, err := New(2021, 4)
	require.NoError(t, err)

	// A range group with no adjacent wind group is left unclaimed; it
	// must never appear as a wind fragment on the report.
	rep, err := eng.Decode(context.Background(), "METAR ZSSS 220030Z 300V360 9999 BKN010 26/22 Q1009 NOSIG=")
	require.NoError(t, err)
	assert.Nil(t, rep.Wind)
}

func TestEngine_WithValidateConfig(t *testing.T) {
	eng, err := New(2021, 4, WithValidateConfig(ValidateConfig{StrictMode: true}))
	require.NoError(t, err)

	res := eng.Validate(context.Background(),
		"SPECI RCTP 190855Z 23008KT 9999 FEW015 SCT035 BKN250 29/25 Q1008 NOSIG RMK A2978=")
	require.False(t, res.Valid)
	assert.Equal(t, "remarks.strict", res.RuleID)
}

func TestEngine_WithValidateConfigYAML(t *testing.T) {
	opt, err := WithValidateConfigYAML([]byte("disabled_rules:\n  - field.suspicious\n"))
	require.NoError(t, err)

	eng, err := New(2021, 7, opt)
	require.NoError(t, err)

	res := eng.Validate(context.Background(),
		"METAR ZGSZ 030400Z 04004MPS 9999 BKN023 29/26 Q1007 NOSIG DUPE=")
	assert.True(t, res.Valid)

	_, err = WithValidateConfigYAML([]byte("no_such_knob: 1\n"))
	assert.Error(t, err)
}

func TestEngine_WithMiddleware(t *testing.T) {
	eng, err := New(2021, 4, WithTracing())
	require.NoError(t, err)

	rep, err := eng.Decode(context.Background(), "METAR ZSSS 220030Z 03008MPS CAVOK 26/22 Q1009 NOSIG=")
	require.NoError(t, err)
	assert.Equal(t, "ZSSS", rep.ICAO)
	assert.True(t, eng.Validate(context.Background(), "METAR ZSSS 220030Z 03008MPS CAVOK 26/22 Q1009 NOSIG=").Valid)
}

func TestEngine_ConcurrentUse(t *testing.T) {
	eng, err := New(2021, 4)
	require.NoError(t, err)

	raws := []string{
		"METAR ZSSS 220030Z 03008MPS CAVOK 26/22 Q1009 NOSIG=",
		"METAR ZBAA 241400Z 14002MPS 090V210 9999 -TSRA SCT005 FEW033CB BKN040 25/24 Q1006 RESHRA BECMG TL1440 NSW=",
		"METAR ZSNJ 262000Z 04002MPS 3000 BR NSC 20/18 Q1016N NOSIG=",
		"SPECI RCTP 190855Z 23008KT 9999 FEW015 SCT035 BKN250 29/25 Q1008 NOSIG RMK A2978=",
	}

	wantReps := make([]Report, len(raws))
	wantRes := make([]ValidationResult, len(raws))
	for i, raw := range raws {
		rep, _ := eng.Decode(context.Background(), raw)
		wantReps[i] = rep
		wantRes[i] = eng.Validate(context.Background(), raw)
	}

	var g errgroup.Group
	for i := 0; i < 64; i++ {
		idx := i % len(raws)
		g.Go(func() error {
			rep, _ := eng.Decode(context.Background(), raws[idx])
			assert.Equal(t, wantReps[idx], rep)
			assert.Equal(t, wantRes[idx], eng.Validate(context.Background(), raws[idx]))
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestPackageLevelConvenience(t *testing.T) {
	rep, err := Decode("METAR ZSSS 220030Z 03008MPS CAVOK 26/22 Q1009 NOSIG=", 2021, 4)
	require.NoError(t, err)
	assert.Equal(t, "ZSSS", rep.ICAO)

	_, err = Decode("METAR ZSSS 220030Z CAVOK=", 2021, 13)
	assert.Error(t, err, "reference month must be in range")

	res := Validate("METAR ZGOW 140100Z 35009MPS CAVOK M04/M27 Q102NOSIG=")
	require.False(t, res.Valid)
	assert.Equal(t, "qnh.format", res.RuleID)
	require.NotNil(t, res.Error)
	assert.Contains(t, *res.Error, "QNH")
}
