package waveguide

import (
	"errors"
	"fmt"
)

var (
	ErrNoAngleRule        = errors.New("model defines neither an angle policy nor a morph target")
	ErrAmbiguousAngleRule = errors.New("model defines both an angle policy and a morph target")
	ErrTerminationClash   = errors.New("superellipse termination cannot be combined with a clothoid termination")
	ErrNegativeRadicand   = errors.New("morph target unreachable: negative radicand in flare angle back-solve")
	ErrResolution         = errors.New("resolution must be 2 or larger")
	ErrStep               = errors.New("step length must be positive and finite")
	ErrLength             = errors.New("length must be positive and finite")
	ErrOutOfRange         = errors.New("axial position outside [0, length]")
	ErrNonFinite          = errors.New("non-finite or negative geometry")
	ErrParameter          = errors.New("invalid shape parameter")
	ErrShortProfile       = errors.New("profile needs at least 2 points")
	ErrProfileMismatch    = errors.New("profiles to stitch differ in point count")
	ErrNoConvergence      = errors.New("curve length fit did not converge")
)

// ConfigError is returned when a model or generation request is not
// geometrically valid. Err is one of the package's sentinel errors.
type ConfigError struct {
	Op  string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("waveguide: %s: %s", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErr(op string, err error) error {
	return &ConfigError{Op: op, Err: err}
}

func configErrf(op string, err error, format string, args ...interface{}) error {
	return &ConfigError{Op: op, Err: fmt.Errorf("%w: "+format, append([]interface{}{err}, args...)...)}
}
