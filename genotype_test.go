package cross

import "testing"

func TestGenotypeName(t *testing.T) {
	cases := map[int]string{
		Missing: "-",
		AA:      "AA",
		BB:      "BB",
		3:       "NA",
		-1:      "NA",
	}

	for gen, expected := range cases {
		if got := GenotypeName(gen); got != expected {
			t.Errorf("Got %s, expected %s", got, expected)
		}
	}
}
