package dispatcher

import (
	"log/slog"

	"elevbank/src/elev"
	"elevbank/src/utils"
)

// isEligible reports whether the elevator can take a call to floor without reversing.
//   - waiting elevators are always eligible
//   - moving elevators only if the floor is still ahead of them
func isEligible(elevator *elev.Elevator, floor int) bool {
	switch {
	case elevator.IsWaiting():
		return true
	case elevator.IsGoingDown():
		return floor < elevator.Floor()
	case elevator.IsGoingUp():
		return floor > elevator.Floor()
	}
	return false
}

// findAssignee returns the index of the nearest eligible elevator, or -1 if there is none.
// Equal distances go to the elevator that comes first.
func findAssignee(elevators []*elev.Elevator, floor int) int {
	assignee := -1
	lowestDistance := 0

	for i, elevator := range elevators {
		if !isEligible(elevator, floor) {
			continue
		}
		distance := utils.Abs(floor - elevator.Floor())
		if assignee == -1 || distance < lowestDistance {
			assignee = i
			lowestDistance = distance
		}
	}

	slog.Debug("findAssignee", "floor", floor, "assignee", assignee, "distance", lowestDistance)
	return assignee
}
