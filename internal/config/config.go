package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:""`
	Display  Display `yaml:"display"`
}

type Display struct {
	FrameRate     int           `yaml:"frame-rate" env:"TICTACTOE_FRAME_RATE" env-default:"30"`
	ResetDelay    time.Duration `yaml:"reset-delay" env:"TICTACTOE_RESET_DELAY" env-default:"500ms"`
	BlinkInterval time.Duration `yaml:"blink-interval" env:"TICTACTOE_BLINK_INTERVAL" env-default:"400ms"`
}

// MustLoad - loads the config file at path, falling back to the environment
// when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("stat config file: %w", err)
	}

	if config.Display.FrameRate <= 0 {
		return nil, fmt.Errorf("%w: frame-rate %d", ErrInvalidValue, config.Display.FrameRate)
	}

	return config, nil
}

var ErrInvalidValue = errors.New("invalid config value")
