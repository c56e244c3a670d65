// Package cross provides the genotype models plugged into a hidden Markov
// model engine for genetic marker data from experimental crosses. Each mating
// design implements Cross; the engine is unaware of the biology behind it.
package cross

import "gonum.org/v1/gonum/mat"

// Cross is the set of functions an HMM forward/backward/Viterbi/EM engine
// needs from a mating design. All probabilities are natural-log values.
//
// isXChr, isFemale and crossInfo are part of the shared signature so that
// every design is interchangeable to the engine. Designs whose genetics do
// not depend on them ignore them.
type Cross interface {
	// CheckGeno returns an error if gen is not a valid genotype code. The
	// missing code 0 is permitted only when isObserved is true.
	CheckGeno(gen int, isObserved, isXChr, isFemale bool, crossInfo []int) error

	// Init is the log prior of the true genotype at the start of a
	// chromosome.
	Init(trueGen int, isXChr, isFemale bool, crossInfo []int) (float64, error)

	// Emit is the log probability of an observed genotype given the true
	// genotype and a genotyping error probability.
	Emit(obsGen, trueGen int, errorProb float64, isXChr, isFemale bool, crossInfo []int) (float64, error)

	// Step is the log transition probability between true genotypes at
	// adjacent markers separated by recombination fraction recFrac.
	Step(genLeft, genRight int, recFrac float64, isXChr, isFemale bool, crossInfo []int) (float64, error)

	// NGen is the number of possible true genotypes.
	NGen(isXChr bool) int

	// NRec is the number of recombination events implied by a change from
	// genLeft to genRight.
	NRec(genLeft, genRight int, isXChr, isFemale bool, crossInfo []int) (float64, error)

	// EstRecFrac re-estimates the recombination fraction from an NGen x NGen
	// matrix of posterior state-pair occupancy.
	EstRecFrac(gamma mat.Matrix, isXChr bool) float64
}
