package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"elevbank/src/config"
	"elevbank/src/elev"
	"elevbank/src/scenario"
	"elevbank/src/utils"

	"github.com/eiannone/keyboard"
)

func main() {
	envPath := flag.String("env", config.DefaultEnvPath, "Path to .env settings file")
	scenarioPath := flag.String("scenario", config.DefaultScenarioPath, "Path to scenario YAML file")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFile := flag.String("log-file", "", "Also write logs to this file")
	interactive := flag.Bool("interactive", false, "Advance one step per key press")
	flag.Parse()

	settings, err := config.Load(*envPath)
	if err != nil {
		slog.Error("Failed to load settings", "err", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scenario":
			settings.ScenarioPath = *scenarioPath
		case "log-file":
			settings.LogFile = *logFile
		case "log-level":
			if settings.LogLevel, err = config.ParseLevel(*logLevel); err != nil {
				slog.Error("Bad log level", "level", *logLevel, "err", err)
				os.Exit(1)
			}
		}
	})

	if err := elev.InitLogger(settings.LogLevel, settings.LogFile); err != nil {
		slog.Error("Failed to initialize logger", "err", err)
		os.Exit(1)
	}

	s, err := scenario.Load(settings.ScenarioPath)
	if err != nil {
		slog.Error("Failed to load scenario", "path", settings.ScenarioPath, "err", err)
		os.Exit(1)
	}
	slog.Info("Scenario loaded", "path", settings.ScenarioPath, "elevators", s.Elevators, "steps", s.Steps, "events", len(s.Events))

	if *interactive {
		if err := runInteractive(s); err != nil {
			slog.Error("Interactive run failed", "err", err)
			os.Exit(1)
		}
		return
	}

	frames, bank := scenario.Run(s)
	for i, frame := range frames {
		fmt.Println(utils.FormatBankState(i+1, frame))
	}
	if pending := bank.Pending(); len(pending) > 0 {
		slog.Info("Calls still pending", "count", len(pending))
	}
}

// runInteractive steps the scenario's bank on every key press until q, Esc or Ctrl-C.
func runInteractive(s *scenario.Scenario) error {
	bank := s.NewBank()
	fmt.Println("Press any key to step, q to quit")
	for step := 0; ; step++ {
		char, key, err := keyboard.GetSingleKey()
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}
		if char == 'q' || key == keyboard.KeyEsc || key == keyboard.KeyCtrlC {
			return nil
		}
		if step <= s.Steps {
			s.Apply(bank, step)
		}
		bank.Step()
		fmt.Println(utils.FormatBankState(step+1, bank.Snapshot()))
	}
}
