package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mribeiro/tributa/internal/calculation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeSchedules(t *testing.T, s calculation.Schedules) string {
	t.Helper()
	data, err := yaml.Marshal(s)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "rates.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadSchedules_RoundTrip(t *testing.T) {
	path := writeSchedules(t, calculation.DefaultSchedules())

	schedules, err := LoadSchedules(path)
	require.NoError(t, err)

	assert.Equal(t, "Anexo I", schedules.Goods.Name)
	require.Len(t, schedules.Goods.Brackets, calculation.ScheduleSize)
	assert.True(t, schedules.Goods.Brackets[0].Ceiling.Equal(decimal.NewFromInt(180000)))
	assert.True(t, schedules.Intellectual.Brackets[5].Deduction.Equal(decimal.NewFromInt(540000)))
}

func TestLoadSchedules_MissingFile(t *testing.T) {
	_, err := LoadSchedules(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read rates file")
}

func TestLoadSchedules_MalformedYAML(t *testing.T) {
	path := writeTempFile(t, "rates.yaml", "goods: [unclosed")

	_, err := LoadSchedules(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse rates file")
}

func TestValidateSchedules_Defaults(t *testing.T) {
	assert.NoError(t, ValidateSchedules(calculation.DefaultSchedules()))
}

func TestValidateSchedules_WrongBracketCount(t *testing.T) {
	s := calculation.DefaultSchedules()
	s.Services.Brackets = s.Services.Brackets[:5]

	err := ValidateSchedules(s)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Anexo III")
	assert.Contains(t, err.Error(), "exactly 6 brackets")
}

func TestValidateSchedules_NonAscendingCeilings(t *testing.T) {
	s := calculation.DefaultSchedules()
	s.Goods.Brackets[2].Ceiling = s.Goods.Brackets[1].Ceiling

	err := ValidateSchedules(s)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not ascend")
}

func TestValidateSchedules_NegativeValues(t *testing.T) {
	s := calculation.DefaultSchedules()
	s.Intellectual.Brackets[0].Rate = decimal.NewFromInt(-1)

	err := ValidateSchedules(s)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "negative values")
}
