// Package dispatcher routes hall calls across a bank of elevators.
//
// A Bank is not safe for concurrent use. Callers that share one between
// goroutines must hold a lock around every Step and CallToFloor.
package dispatcher

import (
	"log/slog"
	"slices"

	"elevbank/src/config"
	"elevbank/src/elev"
	"elevbank/src/types"

	"github.com/tiendc/go-deepcopy"
)

type Bank struct {
	elevators []*elev.Elevator
	pending   []types.HallCall
}

// NewBank takes ownership of the given elevators. Their order decides ties.
func NewBank(elevators []*elev.Elevator) *Bank {
	return &Bank{elevators: slices.Clone(elevators)}
}

// NewBankAt creates one elevator per start floor.
func NewBankAt(floors ...int) *Bank {
	elevators := make([]*elev.Elevator, 0, len(floors))
	for _, floor := range floors {
		elevators = append(elevators, elev.New(floor))
	}
	return NewBank(elevators)
}

func DefaultBank() *Bank {
	floors := make([]int, config.DefaultNumElevators)
	for i := range floors {
		floors[i] = config.DefaultStartFloor
	}
	return NewBankAt(floors...)
}

// CallToFloor hands the call to the nearest eligible elevator, or defers it until a later Step.
// The hall direction is recorded on the call but plays no part in the choice.
func (b *Bank) CallToFloor(floor int, dir types.HallType) {
	b.handleHallCall(types.NewHallCall(floor, dir))
}

func (b *Bank) handleHallCall(call types.HallCall) {
	assignee := findAssignee(b.elevators, call.Floor)
	if assignee == -1 {
		b.pending = append(b.pending, call)
		slog.Debug("Call deferred", "call", elev.FormatCall(call), "id", call.ID, "pending", len(b.pending))
		return
	}
	b.elevators[assignee].CallToFloor(call.Floor)
	slog.Debug("Call assigned", "call", elev.FormatCall(call), "id", call.ID, "elevator", assignee)
}

// Step advances every elevator once, then retries the calls that were deferred before the step.
func (b *Bank) Step() {
	deferred := b.pending
	b.pending = nil

	for _, elevator := range b.elevators {
		elevator.Step()
	}
	for _, call := range deferred {
		b.handleHallCall(call)
	}
}

func (b *Bank) Floors() []int {
	floors := make([]int, len(b.elevators))
	for i, elevator := range b.elevators {
		floors[i] = elevator.Floor()
	}
	return floors
}

func (b *Bank) Statuses() []types.ElevStatus {
	statuses := make([]types.ElevStatus, len(b.elevators))
	for i, elevator := range b.elevators {
		statuses[i] = elevator.Status()
	}
	return statuses
}

func (b *Bank) DoorsOpen() []bool {
	doors := make([]bool, len(b.elevators))
	for i, elevator := range b.elevators {
		doors[i] = elevator.IsOpen()
	}
	return doors
}

// Elevators returns the bank's elevators in order. The slice is a copy, the elevators are not.
func (b *Bank) Elevators() []*elev.Elevator {
	return slices.Clone(b.elevators)
}

func (b *Bank) Pending() []types.HallCall {
	return slices.Clone(b.pending)
}

// Snapshot returns a deep copy of every elevator and the deferred calls.
func (b *Bank) Snapshot() types.BankState {
	view := types.BankState{
		Elevators: make([]types.ElevState, len(b.elevators)),
		Pending:   b.pending,
	}
	for i, elevator := range b.elevators {
		view.Elevators[i] = elevator.State()
	}

	var state types.BankState
	if err := deepcopy.Copy(&state, &view); err != nil {
		panic(err)
	}
	return state
}

// Estimates returns, per elevator, the steps it would need to open its door at floor.
// -1 means not within config.MaxEstimateSteps. The bank is not modified.
func (b *Bank) Estimates(floor int) []int {
	estimates := make([]int, len(b.elevators))
	for i, elevator := range b.elevators {
		steps, ok := elev.StepsToServe(elevator, floor, config.MaxEstimateSteps)
		if !ok {
			steps = -1
		}
		estimates[i] = steps
	}
	return estimates
}
