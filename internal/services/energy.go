package services

import (
	"fmt"
	"math"
)

// DefaultBodyWeightKg stands in for a per-user weight; users have no profile weight yet.
const DefaultBodyWeightKg = 70.0

const millisecondsPerHour = 3_600_000

// EstimateEnergy returns kilocalories burned: MET x body weight x hours, rounded.
func EstimateEnergy(elapsedMilliseconds int64, met float64, bodyWeightKg float64) int {
	if elapsedMilliseconds <= 0 || met <= 0 || bodyWeightKg <= 0 {
		return 0
	}
	hours := float64(elapsedMilliseconds) / millisecondsPerHour
	return int(math.Round(met * bodyWeightKg * hours))
}

// FormatElapsed renders MM:SS.HH; minutes are not capped at 99.
func FormatElapsed(elapsedMilliseconds int64) string {
	if elapsedMilliseconds < 0 {
		elapsedMilliseconds = 0
	}
	minutes := elapsedMilliseconds / 60000
	seconds := (elapsedMilliseconds % 60000) / 1000
	hundredths := (elapsedMilliseconds % 1000) / 10
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, hundredths)
}

// WholeMinutes is the duration persisted for a session.
func WholeMinutes(elapsedMilliseconds int64) int {
	if elapsedMilliseconds <= 0 {
		return 0
	}
	return int(elapsedMilliseconds / 60000)
}
