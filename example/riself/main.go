package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/carbocation/cross"
	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/mat"
)

func main() {
	crossType := flag.String("cross", "riself", "Cross type to evaluate")
	errorProb := flag.Float64("error", 0.01, "Genotyping error probability")
	recFrac := flag.Float64("recfrac", 0.1, "Recombination fraction between two adjacent markers")
	gammaFlag := flag.String("gamma", "8,2,2,8", "Comma-separated posterior occupancy matrix, row-major")
	flag.Parse()

	c, err := cross.Lookup(*crossType)
	if err != nil {
		log.Fatalln(err)
	}

	ngen := c.NGen(false)
	log.Println("Cross", *crossType, "has", ngen, "genotypes")

	gens := make([]int, 0, ngen)
	for g := 1; g <= ngen; g++ {
		gens = append(gens, g)
	}

	for _, g := range gens {
		prior, err := c.Init(g, false, false, nil)
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("init(%s) = %.5f\n", cross.GenotypeName(g), prior)
	}

	for _, obs := range append([]int{cross.Missing}, gens...) {
		for _, truth := range gens {
			emit, err := c.Emit(obs, truth, *errorProb, false, false, nil)
			if err != nil {
				log.Fatalln(err)
			}
			fmt.Printf("emit(%s | %s) = %.5f\n", cross.GenotypeName(obs), cross.GenotypeName(truth), emit)
		}
	}

	for _, left := range gens {
		for _, right := range gens {
			step, err := c.Step(left, right, *recFrac, false, false, nil)
			if err != nil {
				log.Fatalln(err)
			}
			fmt.Printf("step(%s -> %s) = %.5f (p=%.5f)\n", cross.GenotypeName(left), cross.GenotypeName(right), step, math.Exp(step))
		}
	}

	gamma, err := parseGamma(*gammaFlag, ngen)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("Gamma:\n%v\n", mat.Formatted(gamma))

	fmt.Printf("est_rec_frac = %.5f\n", c.EstRecFrac(gamma, false))
}

// parseGamma reads a row-major ngen x ngen matrix from a comma-separated list
func parseGamma(input string, ngen int) (*mat.Dense, error) {
	fields := strings.Split(input, ",")
	if len(fields) != ngen*ngen {
		return nil, pfx.Err(fmt.Errorf("gamma has %d entries; expected %d", len(fields), ngen*ngen))
	}

	data := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, pfx.Err(err)
		}
		data = append(data, v)
	}

	return mat.NewDense(ngen, ngen, data), nil
}
