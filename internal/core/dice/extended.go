package dice

import "math/rand"

// ExtendedAction tracks an extended action: successes accumulate across
// rolls toward a target, within a maximum number of rolls.
type ExtendedAction struct {
	// Target is the number of successes required to complete the action.
	Target int

	// MaxRolls caps the number of rolls; zero means unlimited.
	MaxRolls int

	// Accumulated is the running success total.
	Accumulated int

	// RollsMade counts completed rolls.
	RollsMade int

	// Penalty is applied to the next roll's pool. A dramatic failure
	// sets it to 2; it clears after the following roll.
	Penalty int
}

// Done reports whether the action is complete: either the target was
// reached or the roll cap was exhausted.
func (a *ExtendedAction) Done() bool {
	if a.Accumulated >= a.Target {
		return true
	}
	return a.MaxRolls > 0 && a.RollsMade >= a.MaxRolls
}

// Succeeded reports whether the target was reached.
func (a *ExtendedAction) Succeeded() bool {
	return a.Accumulated >= a.Target
}

// Roll performs one roll of the extended action with the given pool,
// applying and then clearing any pending dramatic-failure penalty.
func (a *ExtendedAction) Roll(rng *rand.Rand, request Request) (Result, error) {
	request.Pool -= a.Penalty
	a.Penalty = 0

	result, err := RollWithRng(rng, request)
	if err != nil {
		return Result{}, err
	}

	a.RollsMade++
	a.Accumulated += result.Successes
	if result.Outcome == OutcomeDramaticFailure {
		a.Penalty = 2
	}
	return result, nil
}
