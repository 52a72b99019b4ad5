package solarterm

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed overrides.yaml
var embeddedOverrides []byte

// ErrInvalidOverride is returned for override entries that cannot be a
// solar-term entry day.
var ErrInvalidOverride = errors.New("invalid solar-term override")

// Override pins the solar-term entry day of one (year, month) to an exact
// value, correcting known drift of the linear estimate.
type Override struct {
	Year  int `yaml:"year"`
	Month int `yaml:"month"`
	Day   int `yaml:"day"`
}

// Validate checks that the override names a real month and a plausible day.
func (o Override) Validate() error {
	if o.Month < 1 || o.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidOverride, o.Month)
	}
	// Solar terms enter between the 3rd and the 9th; anything past the 28th
	// would also break the hidden-stem offset arithmetic.
	if o.Day < 1 || o.Day > 28 {
		return fmt.Errorf("%w: day %d in %04d-%02d", ErrInvalidOverride, o.Day, o.Year, o.Month)
	}
	return nil
}

type overrideDocument struct {
	Overrides []Override `yaml:"overrides"`
}

// LoadOverrides parses an override document:
//
//	overrides:
//	  - {year: 1990, month: 8, day: 8}
func LoadOverrides(r io.Reader) ([]Override, error) {
	var doc overrideDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode solar-term overrides: %w", err)
	}
	for _, o := range doc.Overrides {
		if err := o.Validate(); err != nil {
			return nil, err
		}
	}
	return doc.Overrides, nil
}

// LoadOverridesFile reads an override document from disk.
func LoadOverridesFile(path string) ([]Override, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open solar-term overrides: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadOverrides(f)
}

var (
	defaultOverrides []Override
	defaultEstimator *Estimator
)

func init() {
	var doc overrideDocument
	if err := yaml.Unmarshal(embeddedOverrides, &doc); err != nil {
		// ALLOW-PANIC: the embedded table is part of the build
		panic(fmt.Sprintf("solarterm: embedded overrides: %v", err))
	}
	defaultOverrides = doc.Overrides

	est, err := NewEstimator()
	if err != nil {
		// ALLOW-PANIC: the embedded table is part of the build
		panic(fmt.Sprintf("solarterm: default estimator: %v", err))
	}
	defaultEstimator = est
}
