package utils

import (
	"fmt"
	"strings"

	"elevbank/src/types"
)

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// FormatBankState renders one line per step, e.g. "step 3 | [2 up] [-1 wait *] | pending 1".
// A * marks an open door.
func FormatBankState(step int, state types.BankState) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "step %d |", step)
	for _, elevator := range state.Elevators {
		fmt.Fprintf(&sb, " [%d %s", elevator.Floor, shortStatus(elevator.Status))
		if elevator.DoorOpen {
			sb.WriteString(" *")
		}
		sb.WriteString("]")
	}
	fmt.Fprintf(&sb, " | pending %d", len(state.Pending))
	return sb.String()
}

func shortStatus(status types.ElevStatus) string {
	switch status {
	case types.GoingUp:
		return "up"
	case types.GoingDown:
		return "down"
	}
	return "wait"
}
