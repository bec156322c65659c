package scoring

import (
	"math"
	"time"
)

const (
	// BasePoints is awarded for every correct answer before bonuses.
	BasePoints = 100

	// SpeedBonusMax is the bonus for an instant answer. The bonus
	// decays linearly and reaches zero at SpeedWindow.
	SpeedBonusMax = 150.0

	// SpeedWindow is the latency at which the speed bonus bottoms out.
	SpeedWindow = 5 * time.Second

	// StreakStep is the multiplier gained per consecutive correct answer.
	StreakStep = 0.10

	// StreakCap bounds the total streak bonus, reached at a streak of 5.
	StreakCap = 0.50
)

// Points maps one judged answer to the points it earns. Wrong answers
// earn zero regardless of latency or streak; the caller owns the streak
// reset. For correct answers, streak is the run of consecutive correct
// answers including this one. Totals are rounded half away from zero.
func Points(latency time.Duration, correct bool, streak int) int {
	if !correct {
		return 0
	}

	secs := clamp(latency.Seconds(), 0, SpeedWindow.Seconds())
	bonus := SpeedBonusMax * (1 - secs/SpeedWindow.Seconds())
	mult := 1 + min(StreakCap, StreakStep*float64(streak))

	return int(math.Round((BasePoints + bonus) * mult))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
