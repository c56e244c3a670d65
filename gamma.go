package cross

import "gonum.org/v1/gonum/mat"

// gammaSums returns the total mass and the diagonal mass of a square posterior
// occupancy matrix. The diagonal holds the state pairs with no change of
// genotype between the two markers. Panics if gamma is not square.
func gammaSums(gamma mat.Matrix) (denom, diagsum float64) {
	return mat.Sum(gamma), mat.Trace(gamma)
}
