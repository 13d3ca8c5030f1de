package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultStartFloor   = 0
	DefaultNumElevators = 1
	MaxEstimateSteps    = 1000
	DefaultScenarioPath = "scenario.yaml"
	DefaultEnvPath      = ".env"
)

const (
	EnvLogLevel = "ELEVBANK_LOG_LEVEL"
	EnvLogFile  = "ELEVBANK_LOG_FILE"
	EnvScenario = "ELEVBANK_SCENARIO"
)

// Settings are the runtime knobs of the command line driver.
type Settings struct {
	LogLevel     slog.Level
	LogFile      string
	ScenarioPath string
}

func Defaults() Settings {
	return Settings{
		LogLevel:     slog.LevelInfo,
		ScenarioPath: DefaultScenarioPath,
	}
}

// Load reads settings from a .env file. A missing file yields the defaults.
func Load(envPath string) (Settings, error) {
	settings := Defaults()
	envFile, err := godotenv.Read(envPath)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("reading %s: %w", envPath, err)
	}

	if level, ok := envFile[EnvLogLevel]; ok {
		if settings.LogLevel, err = ParseLevel(level); err != nil {
			return settings, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	if logFile, ok := envFile[EnvLogFile]; ok {
		settings.LogFile = logFile
	}
	if scenario, ok := envFile[EnvScenario]; ok && scenario != "" {
		settings.ScenarioPath = scenario
	}
	return settings, nil
}

func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
