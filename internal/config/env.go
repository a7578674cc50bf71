package config

import (
	"fmt"
	"os"
	"strconv"
)

// EnvPrefix is the prefix of environment variables read by ApplyEnv.
const EnvPrefix = "PIXELSTORM_"

// ApplyEnv overrides cfg with environment variables named prefix+KEY:
// WIDTH, HEIGHT, FILL, MAX_UNDO, LOG_LEVEL, LOG_FILE.
// Note: Empty string values are treated as valid values, not as unset.
func ApplyEnv(cfg *Config, prefix string) error {
	if val, ok := os.LookupEnv(prefix + "WIDTH"); ok {
		n, err := parseInt(prefix+"WIDTH", val)
		if err != nil {
			return err
		}
		cfg.Canvas.Width = n
	}
	if val, ok := os.LookupEnv(prefix + "HEIGHT"); ok {
		n, err := parseInt(prefix+"HEIGHT", val)
		if err != nil {
			return err
		}
		cfg.Canvas.Height = n
	}
	if val, ok := os.LookupEnv(prefix + "MAX_UNDO"); ok {
		n, err := parseInt(prefix+"MAX_UNDO", val)
		if err != nil {
			return err
		}
		cfg.History.MaxEntries = n
	}
	if val, ok := os.LookupEnv(prefix + "FILL"); ok {
		cfg.Canvas.Fill = val
	}
	if val, ok := os.LookupEnv(prefix + "LOG_LEVEL"); ok {
		cfg.Logging.Level = val
	}
	if val, ok := os.LookupEnv(prefix + "LOG_FILE"); ok {
		cfg.Logging.File = val
	}
	return nil
}

func parseInt(name, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, name, val)
	}
	return n, nil
}
