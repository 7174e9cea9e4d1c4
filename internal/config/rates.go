package config

import (
	"fmt"
	"os"

	"github.com/mribeiro/tributa/internal/calculation"
	"gopkg.in/yaml.v3"
)

// The bracket tables are configuration data, not verified legal advice. A
// rates file lets the caller override the built-in schedules, for example
// when the statutory tables change.

// LoadSchedules reads a YAML rates file holding the three Simples Nacional
// schedules and validates their shape.
func LoadSchedules(filename string) (calculation.Schedules, error) {
	var schedules calculation.Schedules

	data, err := os.ReadFile(filename)
	if err != nil {
		return schedules, fmt.Errorf("failed to read rates file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &schedules); err != nil {
		return schedules, fmt.Errorf("failed to parse rates file %s: %w", filename, err)
	}
	if err := ValidateSchedules(schedules); err != nil {
		return schedules, fmt.Errorf("rates file %s: %w", filename, err)
	}
	return schedules, nil
}

// ValidateSchedules checks every schedule holds exactly six brackets with
// strictly ascending ceilings and non-negative rates and deductions.
func ValidateSchedules(s calculation.Schedules) error {
	for _, schedule := range []calculation.Schedule{s.Goods, s.Services, s.Intellectual} {
		if err := validateSchedule(schedule); err != nil {
			return fmt.Errorf("schedule %s: %w", schedule.Name, err)
		}
	}
	return nil
}

func validateSchedule(s calculation.Schedule) error {
	if len(s.Brackets) != calculation.ScheduleSize {
		return fmt.Errorf("expected exactly %d brackets, got %d", calculation.ScheduleSize, len(s.Brackets))
	}
	for i, b := range s.Brackets {
		if b.Ceiling.IsNegative() || b.Rate.IsNegative() || b.Deduction.IsNegative() {
			return fmt.Errorf("bracket %d has negative values", i+1)
		}
		if i > 0 && b.Ceiling.LessThanOrEqual(s.Brackets[i-1].Ceiling) {
			return fmt.Errorf("bracket %d ceiling %s does not ascend", i+1, b.Ceiling)
		}
	}
	return nil
}
