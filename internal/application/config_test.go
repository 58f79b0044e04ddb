package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     DecodeConfig
		wantErr bool
	}{
		{"valid", DecodeConfig{Year: 2021, Month: 4}, false},
		{"zero year", DecodeConfig{Month: 4}, true},
		{"zero month", DecodeConfig{Year: 2021}, true},
		{"month too large", DecodeConfig{Year: 2021, Month: 13}, true},
		{"year before range", DecodeConfig{Year: 1500, Month: 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadValidateConfig(t *testing.T) {
	cfg, err := LoadValidateConfig([]byte(`
strict_mode: true
max_length: 1024
disabled_rules:
  - remarks.unterminated
`))
	require.NoError(t, err)
	assert.True(t, cfg.StrictMode)
	assert.Equal(t, 1024, cfg.MaxLength)
	assert.True(t, cfg.RuleDisabled("remarks.unterminated"))
	assert.False(t, cfg.RuleDisabled("structure.empty"))
}

func TestLoadValidateConfig_UnknownField(t *testing.T) {
	_, err := LoadValidateConfig([]byte("strict_modes: true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "typos")
}

func TestLoadValidateConfig_OutOfRange(t *testing.T) {
	_, err := LoadValidateConfig([]byte("max_length: 100000\n"))
	assert.Error(t, err)
}

func TestLoadValidateConfig_Defaults(t *testing.T) {
	cfg, err := LoadValidateConfig([]byte("{}\n"))
	require.NoError(t, err)
	assert.False(t, cfg.StrictMode)
	assert.Equal(t, 512, cfg.EffectiveMaxLength())
}
