// Package scenario drives a bank from a scripted YAML file.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"elevbank/src/config"
	"elevbank/src/dispatcher"
	"elevbank/src/types"

	"gopkg.in/yaml.v3"
)

var ErrInvalidScenario = errors.New("invalid scenario")

type Scenario struct {
	// Start floors, one per elevator. Nil means the default bank.
	Elevators []int   `yaml:"elevators"`
	Steps     int     `yaml:"steps"`
	Events    []Event `yaml:"events"`
}

// Event is applied before step At+1. Exactly one of Car and Hall is set.
type Event struct {
	At   int        `yaml:"at"`
	Car  *CarCall   `yaml:"car,omitempty"`
	Hall *HallEvent `yaml:"hall,omitempty"`
}

type CarCall struct {
	Elevator int `yaml:"elevator"`
	Floor    int `yaml:"floor"`
}

type HallEvent struct {
	Floor int            `yaml:"floor"`
	Dir   types.HallType `yaml:"dir"`
}

func Load(path string) (*Scenario, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

func Parse(r io.Reader) (*Scenario, error) {
	s := &Scenario{}
	if err := yaml.NewDecoder(r).Decode(s); err != nil {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scenario) Validate() error {
	if s.Steps < 0 {
		return fmt.Errorf("%w: negative step count %d", ErrInvalidScenario, s.Steps)
	}
	numElevators := len(s.Elevators)
	if s.Elevators == nil {
		numElevators = config.DefaultNumElevators
	}
	for i, event := range s.Events {
		if event.At < 0 || event.At > s.Steps {
			return fmt.Errorf("%w: event %d at step %d outside 0..%d", ErrInvalidScenario, i, event.At, s.Steps)
		}
		if (event.Car == nil) == (event.Hall == nil) {
			return fmt.Errorf("%w: event %d must be either a car or a hall call", ErrInvalidScenario, i)
		}
		if event.Car != nil && (event.Car.Elevator < 0 || event.Car.Elevator >= numElevators) {
			return fmt.Errorf("%w: event %d names elevator %d of %d", ErrInvalidScenario, i, event.Car.Elevator, numElevators)
		}
	}
	return nil
}

func (s *Scenario) NewBank() *dispatcher.Bank {
	if s.Elevators == nil {
		return dispatcher.DefaultBank()
	}
	return dispatcher.NewBankAt(s.Elevators...)
}

// Apply sends every event scheduled at step to the bank.
func (s *Scenario) Apply(bank *dispatcher.Bank, step int) {
	elevators := bank.Elevators()
	for _, event := range s.Events {
		if event.At != step {
			continue
		}
		switch {
		case event.Car != nil:
			slog.Debug("Car call", "step", step, "elevator", event.Car.Elevator, "floor", event.Car.Floor)
			elevators[event.Car.Elevator].CallToFloor(event.Car.Floor)
		case event.Hall != nil:
			slog.Debug("Hall call", "step", step, "floor", event.Hall.Floor, "dir", event.Hall.Dir)
			bank.CallToFloor(event.Hall.Floor, event.Hall.Dir)
		}
	}
}

// Run plays the scenario on a fresh bank and returns one snapshot per step.
// Events at the final step are applied after the last step and show up in the bank only.
func Run(s *Scenario) ([]types.BankState, *dispatcher.Bank) {
	bank := s.NewBank()
	frames := make([]types.BankState, 0, s.Steps)
	for step := 0; step < s.Steps; step++ {
		s.Apply(bank, step)
		bank.Step()
		frames = append(frames, bank.Snapshot())
	}
	s.Apply(bank, s.Steps)
	return frames, bank
}
