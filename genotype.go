package cross

// Genotype codes for two-state designs such as RI-self. Missing is only ever
// valid as an observed value.
const (
	Missing = 0
	AA      = 1
	BB      = 2
)

// GenotypeName takes a raw genotype code and returns its standard string
// translation.
func GenotypeName(gen int) string {
	name := "NA"
	switch gen {
	case Missing:
		name = "-"
	case AA:
		name = "AA"
	case BB:
		name = "BB"
	}

	return name
}
