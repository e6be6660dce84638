package numformat

import (
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type envOverrides struct {
	Negative     *bool   `env:"NUMENTRY_NEGATIVE"`
	Decimal      *string `env:"NUMENTRY_DECIMAL"`
	Places       *string `env:"NUMENTRY_DECIMAL_PLACES"`
	StripInvalid *bool   `env:"NUMENTRY_DELEGATE_REMOVAL"`
	Realtime     *bool   `env:"NUMENTRY_DELEGATE_REALTIME"`
}

var dotenvOnce sync.Once

// FromEnv returns the default configuration with process-level
// overrides applied from NUMENTRY_* environment variables; a .env file
// in the working directory is honored when present. Overrides are
// funneled through Resolve, so invalid values degrade to the built-in
// defaults exactly like any other layer. FromEnv never fails.
func FromEnv() Config {
	dotenvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return Default()
	}

	layer := Layer{}
	if ov.Negative != nil {
		layer[KeyNegative] = *ov.Negative
	}
	if ov.Decimal != nil {
		layer[KeyDecimal] = *ov.Decimal
	}
	if ov.Places != nil {
		layer[KeyDecimalPlaces] = *ov.Places
	}
	if ov.StripInvalid != nil {
		layer[KeyDelegateRemoval] = *ov.StripInvalid
	}
	if ov.Realtime != nil {
		layer[KeyDelegateRealtime] = *ov.Realtime
	}
	return Resolve(Default(), layer)
}
