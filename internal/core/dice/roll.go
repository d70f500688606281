// Package dice implements Chronicles of Darkness d10 dice pool rolls.
package dice

import (
	"errors"
	"math/rand"
)

// Errors returned by Roll.
var (
	ErrInvalidAgain = errors.New("dice: invalid again threshold")
)

// Again is the reroll threshold: dice at or above it are rerolled and
// the rerolls added to the pool's results.
type Again int

const (
	// AgainNone disables rerolls entirely (e.g. under some penalties).
	// It is distinct from the zero value, which means "system default".
	AgainNone Again = -1
	// Again10 is the default 10-again quality.
	Again10 Again = 10
	// Again9 rerolls nines and tens.
	Again9 Again = 9
	// Again8 rerolls eights, nines and tens.
	Again8 Again = 8
)

// successThreshold is the face value at or above which a die succeeds.
const successThreshold = 8

// exceptionalSuccesses is the success count for an exceptional success.
const exceptionalSuccesses = 5

// Outcome classifies a completed roll.
type Outcome string

const (
	OutcomeFailure         Outcome = "failure"
	OutcomeSuccess         Outcome = "success"
	OutcomeExceptional     Outcome = "exceptional_success"
	OutcomeDramaticFailure Outcome = "dramatic_failure"
)

// Request describes a single dice pool roll.
type Request struct {
	// Pool is the number of dice. Zero or negative pools roll a chance
	// die instead.
	Pool int

	// Again is the reroll threshold. The zero value is treated as
	// Again10, the system default.
	Again Again

	// Rote rerolls every failed die once (rote quality).
	Rote bool

	// Seed makes the roll deterministic. Two requests with equal Seed,
	// Pool, Again and Rote produce identical results.
	Seed int64
}

// Result is the outcome of a dice pool roll.
type Result struct {
	// Dice holds every die in rolled order; again-rerolls and rote
	// rerolls are appended after the initial pool.
	Dice []int

	// Successes is the count of dice at or above the success threshold.
	Successes int

	// Ones is the count of initial-pool dice showing 1.
	Ones int

	// ChanceDie reports that the pool was zero or negative and a single
	// chance die was rolled.
	ChanceDie bool

	// Outcome classifies the roll. Dramatic failure only occurs on a
	// chance die showing 1.
	Outcome Outcome
}

// Roll performs a dice pool roll, deterministic with respect to
// request.Seed.
func Roll(request Request) (Result, error) {
	rng := rand.New(rand.NewSource(request.Seed))
	return RollWithRng(rng, request)
}

// RollWithRng rolls using a provided random source. This is useful when
// several rolls share one RNG, as in extended actions.
func RollWithRng(rng *rand.Rand, request Request) (Result, error) {
	again := request.Again
	if again == 0 {
		again = Again10
	}
	if again != AgainNone && (again < Again8 || again > Again10) {
		return Result{}, ErrInvalidAgain
	}

	if request.Pool <= 0 {
		return rollChanceDie(rng), nil
	}

	result := Result{}
	var failed, explosions int

	// Initial pool. Ones are only tracked here; rerolled dice cannot
	// contribute to dramatic failures.
	for i := 0; i < request.Pool; i++ {
		value := rollDie(rng)
		result.Dice = append(result.Dice, value)
		if value >= successThreshold {
			result.Successes++
		} else {
			failed++
		}
		if value == 1 {
			result.Ones++
		}
		if explodes(value, again) {
			explosions++
		}
	}

	// Rote quality: each failed initial die is rerolled once. Rote
	// rerolls still explode on the again threshold.
	if request.Rote {
		for i := 0; i < failed; i++ {
			value := rollDie(rng)
			result.Dice = append(result.Dice, value)
			if value >= successThreshold {
				result.Successes++
			}
			if explodes(value, again) {
				explosions++
			}
		}
	}

	// Explosions: rerolls at or above the again threshold keep rolling.
	for explosions > 0 {
		explosions--
		value := rollDie(rng)
		result.Dice = append(result.Dice, value)
		if value >= successThreshold {
			result.Successes++
		}
		if explodes(value, again) {
			explosions++
		}
	}

	result.Outcome = classify(result.Successes, false, 0)
	return result, nil
}

func explodes(value int, again Again) bool {
	return again != AgainNone && Again(value) >= again
}

// rollChanceDie rolls a single chance die: success only on 10, dramatic
// failure on 1.
func rollChanceDie(rng *rand.Rand) Result {
	value := rollDie(rng)
	result := Result{
		Dice:      []int{value},
		ChanceDie: true,
	}
	if value == 10 {
		result.Successes = 1
	}
	if value == 1 {
		result.Ones = 1
	}
	result.Outcome = classify(result.Successes, true, value)
	return result
}

func classify(successes int, chance bool, chanceValue int) Outcome {
	switch {
	case chance && chanceValue == 1:
		return OutcomeDramaticFailure
	case successes >= exceptionalSuccesses:
		return OutcomeExceptional
	case successes > 0:
		return OutcomeSuccess
	default:
		return OutcomeFailure
	}
}

func rollDie(rng *rand.Rand) int {
	return rng.Intn(10) + 1
}
