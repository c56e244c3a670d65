package cross

import (
	"fmt"
	"sort"
	"strings"

	"github.com/carbocation/pfx"
)

// crossTypes maps the conventional short name of a mating design to its
// model. Models are stateless, so one value serves the whole run.
var crossTypes = map[string]Cross{
	"riself": RISelf{},
}

// Lookup returns the model for the named cross type. Names are matched
// case-insensitively.
func Lookup(name string) (Cross, error) {
	c, exists := crossTypes[strings.ToLower(strings.TrimSpace(name))]
	if !exists {
		return nil, pfx.Err(fmt.Errorf("cross type %q is not recognized; known types are %v", name, Names()))
	}

	return c, nil
}

// Names lists the registered cross types in sorted order.
func Names() []string {
	out := make([]string, 0, len(crossTypes))
	for name := range crossTypes {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
