package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-metaf/internal/domain"
)

func TestPressureExtractor_Extract(t *testing.T) {
	tests := []struct {
		name string
		tok  string
		want domain.Pressure
	}{
		{"hectopascals", "Q1013", domain.Pressure{Value: 1013, Unit: domain.UnitHectopascals}},
		{"hectopascals below standard", "Q0999", domain.Pressure{Value: 999, Unit: domain.UnitHectopascals}},
		{"inches of mercury", "A2992", domain.Pressure{Value: 29.92, Unit: domain.UnitInchesHg}},
	}

	ex := NewPressureExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rep domain.Report
			consumed, err := ex.Extract([]string{tt.tok}, 0, &rep)
			require.NoError(t, err)
			require.Equal(t, 1, consumed)
			require.NotNil(t, rep.QNH)
			assert.Equal(t, tt.want, *rep.QNH)
		})
	}
}

func TestPressureExtractor_Declines(t *testing.T) {
	ex := NewPressureExtractor()

	// A masked sensor (Q////) is skipped, not decoded to a value.
	for _, tok := range []string{"Q////", "Q102", "Q10134", "AUTO", "1013"} {
		var rep domain.Report
		consumed, err := ex.Extract([]string{tok}, 0, &rep)
		require.NoError(t, err)
		assert.Zero(t, consumed, "token %q", tok)
		assert.Nil(t, rep.QNH)
	}
}
