package service

import (
	"fmt"

	"github.com/phrazzld/sanmei-api/internal/domain/fortune"
)

// Accepted ranges of the fortune-cycle horizons.
const (
	MaxDaiunSteps = 12
	MaxNenunYears = 150
)

// Params defines the tunable horizons of a reading.
type Params struct {
	// DaiunSteps is the number of decade steps.
	DaiunSteps int
	// NenunYears is the number of annual steps, starting at the birth year.
	NenunYears int
}

// ParamsConfig allows overriding the default parameters. Zero values keep
// the defaults.
type ParamsConfig struct {
	DaiunSteps int
	NenunYears int
}

// NewDefaultParams creates a new Params instance with default values:
// ten decades and a hundred annual steps.
func NewDefaultParams() *Params {
	return &Params{
		DaiunSteps: fortune.DefaultDaiunSteps,
		NenunYears: fortune.DefaultNenunYears,
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.DaiunSteps > 0 {
		params.DaiunSteps = config.DaiunSteps
	}
	if config.NenunYears > 0 {
		params.NenunYears = config.NenunYears
	}

	return params
}

// Validate checks the horizons against their accepted ranges.
func (p *Params) Validate() error {
	if p.DaiunSteps < 1 || p.DaiunSteps > MaxDaiunSteps {
		return fmt.Errorf("%w: daiun steps %d not in 1..%d", ErrInvalidParams, p.DaiunSteps, MaxDaiunSteps)
	}
	if p.NenunYears < 1 || p.NenunYears > MaxNenunYears {
		return fmt.Errorf("%w: nenun years %d not in 1..%d", ErrInvalidParams, p.NenunYears, MaxNenunYears)
	}
	return nil
}
