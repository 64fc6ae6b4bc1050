package features

import "math"

// WinProbability maps a centipawn evaluation to the expected score of the
// side it favours, using a logistic curve in which +400 centipawns is
// worth roughly 0.91.
func WinProbability(centipawns float64) float64 {
	return 1 / (1 + math.Pow(10, -0.25*centipawns/100))
}
