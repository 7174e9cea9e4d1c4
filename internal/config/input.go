package config

import (
	"fmt"
	"os"

	"github.com/mribeiro/tributa/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser loads financial input files. Parsing and validation happen
// before any computation; a file that loads successfully always yields a
// usable input record.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile reads a YAML input file and builds the validated record.
func (ip *InputParser) LoadFromFile(filename string) (*domain.FinancialInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	input, err := ip.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("input file %s: %w", filename, err)
	}
	return input, nil
}

// Parse decodes raw YAML and builds the validated record.
func (ip *InputParser) Parse(data []byte) (*domain.FinancialInput, error) {
	var raw domain.InputData
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	input, err := domain.NewFinancialInput(raw)
	if err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return input, nil
}
