package main

import (
	"testing"

	"github.com/mribeiro/tributa/internal/config"
	"github.com/mribeiro/tributa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegimes(t *testing.T) {
	regimes, err := parseRegimes([]string{"simples", "presumido", "real"})
	require.NoError(t, err)
	assert.Equal(t, []domain.RegimeType{
		domain.RegimeSimples, domain.RegimePresumido, domain.RegimeReal,
	}, regimes)
}

func TestParseRegimes_FullNamesAndWhitespace(t *testing.T) {
	regimes, err := parseRegimes([]string{" Lucro_Presumido ", "SIMPLES_NACIONAL"})
	require.NoError(t, err)
	assert.Equal(t, []domain.RegimeType{
		domain.RegimePresumido, domain.RegimeSimples,
	}, regimes)
}

func TestParseRegimes_Empty(t *testing.T) {
	regimes, err := parseRegimes(nil)
	require.NoError(t, err)
	assert.Nil(t, regimes, "nothing selected means all regimes downstream")
}

func TestParseRegimes_Unknown(t *testing.T) {
	_, err := parseRegimes([]string{"mei"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unknown regime "mei"`)
}

func TestInitializeLogger_Levels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "warning", "error"} {
		logger, err := initializeLogger(config.LoggingConfig{Level: level}, "")
		require.NoError(t, err, "level %s", level)
		require.NotNil(t, logger)
	}
}

func TestInitializeLogger_OverrideWins(t *testing.T) {
	_, err := initializeLogger(config.LoggingConfig{Level: "info"}, "verbose")
	assert.Error(t, err, "the override is validated, not the settings level")
}

func TestInitializeLogger_InvalidFormat(t *testing.T) {
	_, err := initializeLogger(config.LoggingConfig{Level: "info", Format: "yaml"}, "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
}
