package partitioner

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Attempts           int     `validate:"gt=0"`
	InitialTemperature float64 `validate:"gt=0"`
	CoolingRate        float64 `validate:"gt=0,lt=1"`
	MinTemperature     float64 `validate:"gt=0"`
	MaxSweeps          int     `validate:"gt=0"` // per attempt
	ReconcileInterval  int     `validate:"gt=0"` // sweeps between full cost recomputations
	Workers            int     `validate:"gt=0"` // attempts running concurrently
	// TimeBudget bounds the whole search, zero means no limit.
	TimeBudget time.Duration `validate:"gte=0"`
	// Seed makes runs reproducible, nil seeds from the clock.
	Seed *uint64
}

func DefaultConfig() Config {
	return Config{
		Attempts:           DEFAULT_ATTEMPTS,
		InitialTemperature: DEFAULT_INITIAL_TEMPERATURE,
		CoolingRate:        DEFAULT_COOLING_RATE,
		MinTemperature:     DEFAULT_MIN_TEMPERATURE,
		MaxSweeps:          DEFAULT_MAX_SWEEPS,
		ReconcileInterval:  DEFAULT_RECONCILE_INTERVAL,
		Workers:            DEFAULT_WORKERS,
	}
}

func (c Config) WithSeed(seed uint64) Config {
	c.Seed = &seed
	return c
}

func (c Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		msgs = append(msgs, fmt.Sprintf("%s=%v violates %s=%s", fe.Field(), fe.Value(), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, ", "))
}

// ConfigFromViper reads the PARTITIONER_* keys, unset keys keep their defaults.
func ConfigFromViper() Config {
	def := DefaultConfig()
	viper.SetDefault("PARTITIONER_ATTEMPTS", def.Attempts)
	viper.SetDefault("PARTITIONER_INITIAL_TEMPERATURE", def.InitialTemperature)
	viper.SetDefault("PARTITIONER_COOLING_RATE", def.CoolingRate)
	viper.SetDefault("PARTITIONER_MIN_TEMPERATURE", def.MinTemperature)
	viper.SetDefault("PARTITIONER_MAX_SWEEPS", def.MaxSweeps)
	viper.SetDefault("PARTITIONER_RECONCILE_INTERVAL", def.ReconcileInterval)
	viper.SetDefault("PARTITIONER_WORKERS", def.Workers)
	viper.SetDefault("PARTITIONER_TIME_BUDGET", "0s")

	config := Config{
		Attempts:           viper.GetInt("PARTITIONER_ATTEMPTS"),
		InitialTemperature: viper.GetFloat64("PARTITIONER_INITIAL_TEMPERATURE"),
		CoolingRate:        viper.GetFloat64("PARTITIONER_COOLING_RATE"),
		MinTemperature:     viper.GetFloat64("PARTITIONER_MIN_TEMPERATURE"),
		MaxSweeps:          viper.GetInt("PARTITIONER_MAX_SWEEPS"),
		ReconcileInterval:  viper.GetInt("PARTITIONER_RECONCILE_INTERVAL"),
		Workers:            viper.GetInt("PARTITIONER_WORKERS"),
		TimeBudget:         viper.GetDuration("PARTITIONER_TIME_BUDGET"),
	}
	if viper.IsSet("PARTITIONER_SEED") {
		config = config.WithSeed(viper.GetUint64("PARTITIONER_SEED"))
	}
	return config
}

// ConfigOverrides holds optional values that replace those of a base Config.
type ConfigOverrides struct {
	Attempts           *int
	InitialTemperature *float64
	CoolingRate        *float64
	MinTemperature     *float64
	Seed               *uint64
}

func (c Config) Apply(o ConfigOverrides) Config {
	if o.Attempts != nil {
		c.Attempts = *o.Attempts
	}
	if o.InitialTemperature != nil {
		c.InitialTemperature = *o.InitialTemperature
	}
	if o.CoolingRate != nil {
		c.CoolingRate = *o.CoolingRate
	}
	if o.MinTemperature != nil {
		c.MinTemperature = *o.MinTemperature
	}
	if o.Seed != nil {
		c = c.WithSeed(*o.Seed)
	}
	return c
}
