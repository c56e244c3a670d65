package cross

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// RISelf is the genotype model for recombinant inbred lines formed by
// repeated selfing. Lines are fully inbred, so the two true genotypes are AA
// and BB. RISelf has no state; the zero value is ready to use and may be
// shared between goroutines.
type RISelf struct{}

var _ Cross = RISelf{}

// CheckGeno accepts AA and BB, and Missing only for an observed genotype.
func (RISelf) CheckGeno(gen int, isObserved, isXChr, isFemale bool, crossInfo []int) error {
	if isObserved && gen == Missing {
		return nil
	}

	if gen == AA || gen == BB {
		return nil
	}

	return invalidGenotype(gen, isObserved)
}

// Init returns -log(NGen): every genotype is equally likely a priori.
func (c RISelf) Init(trueGen int, isXChr, isFemale bool, crossInfo []int) (float64, error) {
	if err := c.CheckGeno(trueGen, false, isXChr, isFemale, crossInfo); err != nil {
		return 0, err
	}

	return -math.Log(float64(c.NGen(isXChr))), nil
}

// Emit uses a single symmetric error probability. A missing observation
// returns 0 so that it never penalizes a path.
func (c RISelf) Emit(obsGen, trueGen int, errorProb float64, isXChr, isFemale bool, crossInfo []int) (float64, error) {
	if err := c.CheckGeno(obsGen, true, isXChr, isFemale, crossInfo); err != nil {
		return 0, err
	}
	if err := c.CheckGeno(trueGen, false, isXChr, isFemale, crossInfo); err != nil {
		return 0, err
	}

	if obsGen == Missing {
		return 0, nil
	}

	if obsGen == trueGen {
		return math.Log(1.0 - errorProb), nil
	}

	return math.Log(errorProb), nil
}

// Step uses the map R = 2r/(1+2r) from the single-meiosis recombination
// fraction r to the probability that an RI-self line is recombinant between
// the two markers.
func (c RISelf) Step(genLeft, genRight int, recFrac float64, isXChr, isFemale bool, crossInfo []int) (float64, error) {
	if err := c.CheckGeno(genLeft, false, isXChr, isFemale, crossInfo); err != nil {
		return 0, err
	}
	if err := c.CheckGeno(genRight, false, isXChr, isFemale, crossInfo); err != nil {
		return 0, err
	}

	R := riRecFrac(recFrac)

	if genLeft == genRight {
		return math.Log(1.0 - R), nil
	}

	return math.Log(R), nil
}

// NGen returns 2: an RI line by selfing is either AA or BB.
func (RISelf) NGen(isXChr bool) int {
	return 2
}

// NRec returns 1 when the genotypes differ and 0 otherwise.
func (c RISelf) NRec(genLeft, genRight int, isXChr, isFemale bool, crossInfo []int) (float64, error) {
	if err := c.CheckGeno(genLeft, false, isXChr, isFemale, crossInfo); err != nil {
		return 0, err
	}
	if err := c.CheckGeno(genRight, false, isXChr, isFemale, crossInfo); err != nil {
		return 0, err
	}

	if genLeft == genRight {
		return 0.0, nil
	}

	return 1.0, nil
}

// EstRecFrac takes the share of posterior mass off the diagonal as the
// recombinant fraction R and inverts R = 2r/(1+2r). gamma must hold at least
// one non-zero entry, and as the diagonal mass goes to zero the result goes
// to infinity; callers are expected to bound the result.
func (RISelf) EstRecFrac(gamma mat.Matrix, isXChr bool) float64 {
	denom, diagsum := gammaSums(gamma)

	R := 1.0 - diagsum/denom

	return 0.5 * R / (1 - R)
}

// riRecFrac maps a per-meiosis recombination fraction to the recombination
// probability between two markers in an RI line by selfing.
func riRecFrac(recFrac float64) float64 {
	return 2.0 * recFrac / (1 + 2.0*recFrac)
}
