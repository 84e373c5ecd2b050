package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/lox/seatemp/internal/series"
)

const envFileVar = "SEATEMP_ENV_FILE"

// Config holds the settings shared by every command. Each flag can also be
// set through its SEATEMP_* environment variable.
type Config struct {
	EnvFile string `name:"env-file" help:"Dotenv file loaded before flags are parsed." default:".env" env:"SEATEMP_ENV_FILE"`

	Addr            string        `help:"HTTP listen address." default:":8080" env:"SEATEMP_ADDR"`
	LogLevel        string        `help:"Log level." default:"info" enum:"trace,debug,info,warn,error" env:"SEATEMP_LOG_LEVEL"`
	LogFormat       string        `help:"Log format." default:"text" enum:"text,json" env:"SEATEMP_LOG_FORMAT"`
	LogFile         string        `help:"Also write logs to this file, rotated by size." env:"SEATEMP_LOG_FILE"`
	ShutdownTimeout time.Duration `help:"Grace period for in-flight requests on shutdown." default:"5s" env:"SEATEMP_SHUTDOWN_TIMEOUT"`

	Series Series `embed:""`
}

// Series holds the synthetic series parameters.
type Series struct {
	StartYear       int     `help:"First year of the series." default:"${start_year}" env:"SEATEMP_START_YEAR" group:"Series"`
	EndYear         int     `help:"Last year of the series (inclusive)." default:"${end_year}" env:"SEATEMP_END_YEAR" group:"Series"`
	Seed            uint64  `help:"Random seed for the noise." default:"${seed}" env:"SEATEMP_SEED" group:"Series"`
	BaseTemperature float64 `help:"Temperature of the first year before noise (°C)." default:"${base_temperature}" env:"SEATEMP_BASE_TEMPERATURE" group:"Series"`
	WarmingRate     float64 `help:"Linear warming per year (°C)." default:"${warming_rate}" env:"SEATEMP_WARMING_RATE" group:"Series"`
	NoiseStdDev     float64 `name:"noise-stddev" help:"Standard deviation of the yearly noise (°C)." default:"${noise_stddev}" env:"SEATEMP_NOISE_STDDEV" group:"Series"`
}

// Vars supplies the series defaults to kong's ${...} interpolation.
func Vars() kong.Vars {
	return kong.Vars{
		"start_year":       strconv.Itoa(series.DefaultStartYear),
		"end_year":         strconv.Itoa(series.DefaultEndYear),
		"seed":             strconv.FormatUint(series.DefaultSeed, 10),
		"base_temperature": strconv.FormatFloat(series.DefaultBaseTemperature, 'f', -1, 64),
		"warming_rate":     strconv.FormatFloat(series.DefaultWarmingRatePerYear, 'f', -1, 64),
		"noise_stddev":     strconv.FormatFloat(series.DefaultNoiseStdDev, 'f', -1, 64),
	}
}

func (s Series) Config() series.Config {
	return series.Config{
		StartYear:          s.StartYear,
		EndYear:            s.EndYear,
		Seed:               s.Seed,
		BaseTemperature:    s.BaseTemperature,
		WarmingRatePerYear: s.WarmingRate,
		NoiseStdDev:        s.NoiseStdDev,
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout))
	}
	if err := c.Series.Config().Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// EnvFile finds the dotenv path before kong runs, since the file has to be
// loaded ahead of environment resolution.
func EnvFile(args []string) string {
	for i, arg := range args {
		if v, ok := strings.CutPrefix(arg, "--env-file="); ok {
			return v
		}
		if arg == "--env-file" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv(envFileVar); v != "" {
		return v
	}
	return ".env"
}

// LoadDotenv loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotenv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}
