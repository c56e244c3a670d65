package cross

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// invalidGenotype is the only error produced by the genotype models. It is a
// caller or data-integrity error; the engine should abandon the run.
func invalidGenotype(gen int, isObserved bool) error {
	kind := "true"
	if isObserved {
		kind = "observed"
	}

	return pfx.Err(fmt.Errorf("invalid genotype: %d is not a valid %s genotype code", gen, kind))
}
