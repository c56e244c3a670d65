package cross

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"riself", "RISelf", " riself "} {
		c, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := c.(RISelf); !ok {
			t.Errorf("Lookup(%q): got %T, expected RISelf", name, c)
		}
	}

	c, err := Lookup("bc")
	if err == nil {
		t.Errorf("Lookup(\"bc\"): got %T, expected an error", c)
	} else if !strings.Contains(err.Error(), "bc") {
		t.Errorf("Got error %q, expected it to name the cross type", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 1 || names[0] != "riself" {
		t.Errorf("Got %v, expected [riself]", names)
	}
}
