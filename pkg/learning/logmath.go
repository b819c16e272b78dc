package learning

import "math"

// CarefulLog computes the natural log of a non-negative real number,
// returning negative infinity for an exact zero instead of relying on
// math.Log's behavior at the boundary. Smoothing keeps zero inputs out
// of the training path, but the utility is general-purpose and the
// priors hit zero whenever a class has no training documents.
func CarefulLog(x float64) float64 {
	if x == 0 {
		return math.Inf(-1)
	}
	return math.Log(x)
}
