package elev

import (
	"log/slog"
	"slices"

	"elevbank/src/types"

	"github.com/tiendc/go-deepcopy"
)

// Elevator is a single car. It moves at most one floor per Step and visits
// requested floors in the order the direction rules allow.
type Elevator struct {
	floor           int
	status          types.ElevStatus
	door            Door
	requestedFloors []int
}

func New(floor int) *Elevator {
	elevator := &Elevator{
		floor:  floor,
		status: types.Waiting,
	}
	slog.Debug("Elevator initialized", "floor", floor)
	return elevator
}

func (e *Elevator) Floor() int               { return e.floor }
func (e *Elevator) Status() types.ElevStatus { return e.status }
func (e *Elevator) IsWaiting() bool          { return e.status == types.Waiting }
func (e *Elevator) IsGoingUp() bool          { return e.status == types.GoingUp }
func (e *Elevator) IsGoingDown() bool        { return e.status == types.GoingDown }
func (e *Elevator) IsOpen() bool             { return e.door.IsOpen() }
func (e *Elevator) IsClosed() bool           { return e.door.IsClosed() }

// RequestedFloors returns a copy of the pending stops, oldest first.
func (e *Elevator) RequestedFloors() []int {
	return slices.Clone(e.requestedFloors)
}

// HoldDoorOpen keeps the door from closing until released.
func (e *Elevator) HoldDoorOpen(hold bool) {
	e.door.SetHeldOpen(hold)
}

// CallToFloor queues a stop. Direction is only picked on the next Step.
func (e *Elevator) CallToFloor(floor int) {
	e.requestedFloors = append(e.requestedFloors, floor)
	slog.Debug("Floor requested", "floor", floor, "requested", e.requestedFloors)
}

// Step advances the elevator by one unit of simulated time.
//   - an open door is closed and nothing else happens
//   - a moving elevator travels one floor and locks its door
//   - a waiting elevator with requests heads towards the oldest one
//   - arriving at a requested floor clears every request for it and opens the door
func (e *Elevator) Step() {
	if e.door.IsOpen() {
		e.door.Unlock()
		e.door.Close()
		return
	}

	switch e.status {
	case types.GoingUp:
		e.floor++
		e.door.Lock()
	case types.GoingDown:
		e.floor--
		e.door.Lock()
	}

	if e.status == types.Waiting && len(e.requestedFloors) > 0 {
		if e.requestedFloors[0] > e.floor {
			e.status = types.GoingUp
		} else {
			e.status = types.GoingDown
		}
		slog.Debug("Elevator departing", "floor", e.floor, "status", e.status)
	}

	if slices.Contains(e.requestedFloors, e.floor) {
		e.requestedFloors = slices.DeleteFunc(e.requestedFloors, func(f int) bool { return f == e.floor })
		e.door.Unlock()
		e.door.Open()
		if !e.requestsAhead() {
			e.status = types.Waiting
		}
		slog.Debug("Elevator arrived", "floor", e.floor, "status", e.status, "remaining", e.requestedFloors)
	}
}

func (e *Elevator) requestsAhead() bool {
	switch e.status {
	case types.GoingUp:
		return slices.ContainsFunc(e.requestedFloors, func(f int) bool { return f > e.floor })
	case types.GoingDown:
		return slices.ContainsFunc(e.requestedFloors, func(f int) bool { return f < e.floor })
	}
	return false
}

// State returns a deep copy of the elevator that shares nothing with it.
func (e *Elevator) State() types.ElevState {
	view := types.ElevState{
		Floor:           e.floor,
		Status:          e.status,
		DoorOpen:        e.door.IsOpen(),
		DoorLocked:      e.door.IsLocked(),
		DoorHeldOpen:    e.door.HeldOpen(),
		RequestedFloors: e.requestedFloors,
	}
	var state types.ElevState
	if err := deepcopy.Copy(&state, &view); err != nil {
		panic(err)
	}
	return state
}

// FromState rebuilds an elevator from a snapshot.
func FromState(state types.ElevState) *Elevator {
	elevator := &Elevator{
		floor:           state.Floor,
		status:          state.Status,
		requestedFloors: slices.Clone(state.RequestedFloors),
	}
	elevator.door.open = state.DoorOpen
	elevator.door.locked = state.DoorLocked
	elevator.door.heldOpen = state.DoorHeldOpen
	return elevator
}
