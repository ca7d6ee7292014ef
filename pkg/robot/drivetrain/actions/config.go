package actions

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/benbjohnson/clock"
	"gopkg.in/yaml.v3"

	"github.com/itohio/EasyDrive/pkg/core/math/control/settling"
	"github.com/itohio/EasyDrive/pkg/core/math/filter/pid"
)

// Duration yaml-decodes from Go duration strings ("150ms") as well as raw
// nanosecond integers.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	// Integers must be tried first: any scalar, numbers included, also
	// decodes into a string.
	var n int64
	if err := value.Decode(&n); err == nil {
		*d = Duration(n)
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("actions: parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// ActionConfig bundles the PID gains, limits and settling tolerances shared
// by the closed-loop actions. It is tuned per robot and usually loaded from
// a yaml file checked in next to the autonomous routes.
type ActionConfig struct {
	LinearKP      float32 `yaml:"linear_kp"`
	LinearKPLimit float32 `yaml:"linear_kp_limit"`
	LinearKI      float32 `yaml:"linear_ki"`
	LinearKILimit float32 `yaml:"linear_ki_limit"`
	LinearKD      float32 `yaml:"linear_kd"`
	LinearKDLimit float32 `yaml:"linear_kd_limit"`
	LinearLimit   float32 `yaml:"linear_limit"`

	TurnKP      float32 `yaml:"turn_kp"`
	TurnKPLimit float32 `yaml:"turn_kp_limit"`
	TurnKI      float32 `yaml:"turn_ki"`
	TurnKILimit float32 `yaml:"turn_ki_limit"`
	TurnKD      float32 `yaml:"turn_kd"`
	TurnKDLimit float32 `yaml:"turn_kd_limit"`
	TurnLimit   float32 `yaml:"turn_limit"`

	PursuitTurnKP      float32 `yaml:"pursuit_turn_kp"`
	PursuitTurnKPLimit float32 `yaml:"pursuit_turn_kp_limit"`
	PursuitTurnKI      float32 `yaml:"pursuit_turn_ki"`
	PursuitTurnKILimit float32 `yaml:"pursuit_turn_ki_limit"`
	PursuitTurnKD      float32 `yaml:"pursuit_turn_kd"`
	PursuitTurnKDLimit float32 `yaml:"pursuit_turn_kd_limit"`
	PursuitTurnLimit   float32 `yaml:"pursuit_turn_limit"`
	PursuitLookahead   float32 `yaml:"pursuit_lookahead"`

	BoomerangLead  float32 `yaml:"boomerang_lead"`
	BoomerangClose float32 `yaml:"boomerang_close"`

	LinearErrorTolerance    float32       `yaml:"linear_error_tolerance"`
	LinearVelocityTolerance float32       `yaml:"linear_velocity_tolerance"`
	LinearToleranceDuration Duration      `yaml:"linear_tolerance_duration"`
	LinearTimeout           Duration      `yaml:"linear_timeout"`

	TurnErrorTolerance    float32       `yaml:"turn_error_tolerance"`
	TurnVelocityTolerance float32       `yaml:"turn_velocity_tolerance"`
	TurnToleranceDuration Duration      `yaml:"turn_tolerance_duration"`
	TurnTimeout           Duration      `yaml:"turn_timeout"`

	// Clock substitutes the time source of the settling checks. Tests use
	// a mock clock; nil means wall time.
	Clock clock.Clock `yaml:"-"`
}

// LoadConfig decodes an ActionConfig from yaml.
func LoadConfig(r io.Reader) (ActionConfig, error) {
	var config ActionConfig
	if err := yaml.NewDecoder(r).Decode(&config); err != nil {
		return ActionConfig{}, fmt.Errorf("actions: decode config: %w", err)
	}
	return config, nil
}

// LoadConfigFile decodes an ActionConfig from a yaml file.
func LoadConfigFile(path string) (ActionConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return ActionConfig{}, fmt.Errorf("actions: open config: %w", err)
	}
	defer file.Close()
	return LoadConfig(file)
}

func (c ActionConfig) clock() clock.Clock {
	if c.Clock == nil {
		return clock.New()
	}
	return c.Clock
}

// LinearPID builds the distance controller with the given setpoint.
func (c ActionConfig) LinearPID(setpoint float32) *pid.Controller {
	return pid.New(setpoint, c.LinearLimit).
		P(c.LinearKP, c.LinearKPLimit).
		I(c.LinearKI, c.LinearKILimit).
		D(c.LinearKD, c.LinearKDLimit)
}

// TurnPID builds the heading controller with the given setpoint.
func (c ActionConfig) TurnPID(setpoint float32) *pid.Controller {
	return pid.New(setpoint, c.TurnLimit).
		P(c.TurnKP, c.TurnKPLimit).
		I(c.TurnKI, c.TurnKILimit).
		D(c.TurnKD, c.TurnKDLimit)
}

// PursuitTurnPID builds the pure-pursuit steering controller; path
// following wants softer steering than turning in place.
func (c ActionConfig) PursuitTurnPID(setpoint float32) *pid.Controller {
	return pid.New(setpoint, c.PursuitTurnLimit).
		P(c.PursuitTurnKP, c.PursuitTurnKPLimit).
		I(c.PursuitTurnKI, c.PursuitTurnKILimit).
		D(c.PursuitTurnKD, c.PursuitTurnKDLimit)
}

// LinearTolerances builds the settling predicate for linear motion.
func (c ActionConfig) LinearTolerances() settling.Tolerances {
	return settling.New().
		WithClock(c.clock()).
		ErrorTolerance(c.LinearErrorTolerance).
		VelocityTolerance(c.LinearVelocityTolerance).
		ToleranceDuration(time.Duration(c.LinearToleranceDuration)).
		Timeout(time.Duration(c.LinearTimeout))
}

// TurnTolerances builds the settling predicate for rotation.
func (c ActionConfig) TurnTolerances() settling.Tolerances {
	return settling.New().
		WithClock(c.clock()).
		ErrorTolerance(c.TurnErrorTolerance).
		VelocityTolerance(c.TurnVelocityTolerance).
		ToleranceDuration(time.Duration(c.TurnToleranceDuration)).
		Timeout(time.Duration(c.TurnTimeout))
}

// #region Builder

func (c ActionConfig) WithLinearKP(v float32) ActionConfig      { c.LinearKP = v; return c }
func (c ActionConfig) WithLinearKPLimit(v float32) ActionConfig { c.LinearKPLimit = v; return c }
func (c ActionConfig) WithLinearKI(v float32) ActionConfig      { c.LinearKI = v; return c }
func (c ActionConfig) WithLinearKILimit(v float32) ActionConfig { c.LinearKILimit = v; return c }
func (c ActionConfig) WithLinearKD(v float32) ActionConfig      { c.LinearKD = v; return c }
func (c ActionConfig) WithLinearKDLimit(v float32) ActionConfig { c.LinearKDLimit = v; return c }
func (c ActionConfig) WithLinearLimit(v float32) ActionConfig   { c.LinearLimit = v; return c }

func (c ActionConfig) WithTurnKP(v float32) ActionConfig      { c.TurnKP = v; return c }
func (c ActionConfig) WithTurnKPLimit(v float32) ActionConfig { c.TurnKPLimit = v; return c }
func (c ActionConfig) WithTurnKI(v float32) ActionConfig      { c.TurnKI = v; return c }
func (c ActionConfig) WithTurnKILimit(v float32) ActionConfig { c.TurnKILimit = v; return c }
func (c ActionConfig) WithTurnKD(v float32) ActionConfig      { c.TurnKD = v; return c }
func (c ActionConfig) WithTurnKDLimit(v float32) ActionConfig { c.TurnKDLimit = v; return c }
func (c ActionConfig) WithTurnLimit(v float32) ActionConfig   { c.TurnLimit = v; return c }

func (c ActionConfig) WithPursuitTurnKP(v float32) ActionConfig { c.PursuitTurnKP = v; return c }
func (c ActionConfig) WithPursuitTurnKPLimit(v float32) ActionConfig {
	c.PursuitTurnKPLimit = v
	return c
}
func (c ActionConfig) WithPursuitTurnKI(v float32) ActionConfig { c.PursuitTurnKI = v; return c }
func (c ActionConfig) WithPursuitTurnKILimit(v float32) ActionConfig {
	c.PursuitTurnKILimit = v
	return c
}
func (c ActionConfig) WithPursuitTurnKD(v float32) ActionConfig { c.PursuitTurnKD = v; return c }
func (c ActionConfig) WithPursuitTurnKDLimit(v float32) ActionConfig {
	c.PursuitTurnKDLimit = v
	return c
}
func (c ActionConfig) WithPursuitTurnLimit(v float32) ActionConfig { c.PursuitTurnLimit = v; return c }
func (c ActionConfig) WithPursuitLookahead(v float32) ActionConfig { c.PursuitLookahead = v; return c }

func (c ActionConfig) WithBoomerangLead(v float32) ActionConfig  { c.BoomerangLead = v; return c }
func (c ActionConfig) WithBoomerangClose(v float32) ActionConfig { c.BoomerangClose = v; return c }

func (c ActionConfig) WithLinearErrorTolerance(v float32) ActionConfig {
	c.LinearErrorTolerance = v
	return c
}
func (c ActionConfig) WithLinearVelocityTolerance(v float32) ActionConfig {
	c.LinearVelocityTolerance = v
	return c
}
func (c ActionConfig) WithLinearToleranceDuration(v time.Duration) ActionConfig {
	c.LinearToleranceDuration = Duration(v)
	return c
}
func (c ActionConfig) WithLinearTimeout(v time.Duration) ActionConfig {
	c.LinearTimeout = Duration(v)
	return c
}

func (c ActionConfig) WithTurnErrorTolerance(v float32) ActionConfig {
	c.TurnErrorTolerance = v
	return c
}
func (c ActionConfig) WithTurnVelocityTolerance(v float32) ActionConfig {
	c.TurnVelocityTolerance = v
	return c
}
func (c ActionConfig) WithTurnToleranceDuration(v time.Duration) ActionConfig {
	c.TurnToleranceDuration = Duration(v)
	return c
}
func (c ActionConfig) WithTurnTimeout(v time.Duration) ActionConfig {
	c.TurnTimeout = Duration(v)
	return c
}

func (c ActionConfig) WithClock(clk clock.Clock) ActionConfig { c.Clock = clk; return c }

// #endregion Builder
