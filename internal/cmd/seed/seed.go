package seed

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	platformcmd "github.com/nicolaics/jim-carrier-seed/internal/platform/cmd"
	apperrors "github.com/nicolaics/jim-carrier-seed/internal/platform/errors"
	"github.com/nicolaics/jim-carrier-seed/internal/seed"
)

// Config holds seed command configuration. Defaults come from
// seed.DefaultConfig.
type Config struct {
	BackendRoot  string        `env:"JIM_CARRIER_BACKEND_ROOT"`
	FixturesPath string        `env:"JIM_CARRIER_SEED_FIXTURES"`
	Timeout      time.Duration `env:"JIM_CARRIER_SEED_TIMEOUT"`
	Strict       bool          `env:"JIM_CARRIER_SEED_STRICT"`

	NoLocalFallback bool
	Verbose         bool
	List            bool
}

// ParseConfig parses .env, environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	defaults := seed.DefaultConfig()
	cfg := Config{BackendRoot: defaults.BackendRoot, Timeout: defaults.Timeout}
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.BackendRoot, "backend", cfg.BackendRoot, "backend host:port or base URL")
	fs.StringVar(&cfg.FixturesPath, "fixtures", cfg.FixturesPath, "fixture file (.yaml or .json); default: built-in demo data")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request timeout")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "abort on any non-2xx response")
	fs.BoolVar(&cfg.NoLocalFallback, "no-local-fallback", false, "do not fall back to 127.0.0.1 when the backend host does not resolve")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	fs.BoolVar(&cfg.List, "list", false, "print the requests a run would send and exit")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SeedConfig converts command configuration into runner configuration.
func (c Config) SeedConfig() seed.Config {
	return seed.Config{
		BackendRoot:   c.BackendRoot,
		FixturesPath:  c.FixturesPath,
		Timeout:       c.Timeout,
		Strict:        c.Strict,
		LocalFallback: !c.NoLocalFallback,
		Verbose:       c.Verbose,
	}
}

// Run executes the seed command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if cfg.Timeout <= 0 {
		return apperrors.New(apperrors.CodeInvalidConfig, fmt.Sprintf("timeout must be positive, got %s", cfg.Timeout))
	}

	if cfg.List {
		baseURL, err := seed.BackendURL(cfg.BackendRoot)
		if err != nil {
			return err
		}
		fixtures, err := seed.ResolveFixtures(cfg.FixturesPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Backend: %s\n", baseURL)
		for _, line := range seed.Plan(fixtures) {
			fmt.Fprintln(out, line)
		}
		return nil
	}

	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceSeed, func(ctx context.Context) error {
		return seed.Run(ctx, cfg.SeedConfig(), out, errOut)
	})
}
