package types

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type ElevStatus int

const (
	Waiting ElevStatus = iota
	GoingUp
	GoingDown
)

func (s ElevStatus) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case GoingUp:
		return "going_up"
	case GoingDown:
		return "going_down"
	}
	return fmt.Sprintf("ElevStatus(%d)", int(s))
}

// HallType is the arrow pressed on a hall panel. The zero value means no arrow was given.
type HallType int

const (
	HallNone HallType = iota
	HallUp
	HallDown
)

func (h HallType) String() string {
	switch h {
	case HallUp:
		return "up"
	case HallDown:
		return "down"
	}
	return ""
}

func (h HallType) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *HallType) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "none":
		*h = HallNone
	case "up":
		*h = HallUp
	case "down":
		*h = HallDown
	default:
		return fmt.Errorf("unknown hall direction %q", string(text))
	}
	return nil
}

// HallCall is a floor call coming from outside any elevator.
// The ID stays the same while the call waits in the pending queue.
type HallCall struct {
	ID    uuid.UUID
	Floor int
	Dir   HallType
}

func NewHallCall(floor int, dir HallType) HallCall {
	return HallCall{
		ID:    uuid.New(),
		Floor: floor,
		Dir:   dir,
	}
}

// ElevState is a detached copy of one elevator, safe to keep across steps.
type ElevState struct {
	Floor           int
	Status          ElevStatus
	DoorOpen        bool
	DoorLocked      bool
	DoorHeldOpen    bool
	RequestedFloors []int
}

type BankState struct {
	Elevators []ElevState
	Pending   []HallCall
}
