package elev

import "log/slog"

// StepsToServe estimates how many steps the elevator needs to open its door at floor
// if the call were given to it now.
//   - works on a deep copy, the elevator itself is left untouched
//   - returns false if the door has not opened at floor within limit steps
func StepsToServe(elevator *Elevator, floor int, limit int) (int, bool) {
	simElev := FromState(elevator.State())
	simElev.CallToFloor(floor)

	for steps := 1; steps <= limit; steps++ {
		simElev.Step()
		if simElev.Floor() == floor && simElev.IsOpen() {
			slog.Debug("StepsToServe: reached target floor", "floor", floor, "steps", steps)
			return steps, true
		}
	}
	slog.Debug("StepsToServe: target not reached", "floor", floor, "limit", limit)
	return limit, false
}
