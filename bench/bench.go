// Package bench holds the static benchmark definitions fed to each
// tool under test. A definition names a scenario and fixes its mask and
// candidate length range; the set is compiled in and ordered, and order
// determines run sequence.
package bench

import "fmt"

// Definition describes one benchmark scenario. MinLen and MaxLen bound
// the generated candidate length, MinLen <= MaxLen, both positive.
type Definition struct {
	Name   string
	Mask   string
	MinLen int
	MaxLen int
}

// Defaults returns the built-in benchmark definitions in run order.
func Defaults() []Definition {
	return []Definition{
		{
			Name:   "9digits",
			Mask:   "?d?d?d?d?d?d?d?d?d",
			MinLen: 9,
			MaxLen: 9,
		},
		{
			Name:   "upper-5lower-digit",
			Mask:   "?u?l?l?l?l?l?d",
			MinLen: 7,
			MaxLen: 7,
		},
		{
			Name:   "1-8digits",
			Mask:   "?d?d?d?d?d?d?d?d",
			MinLen: 1,
			MaxLen: 8,
		},
	}
}

// Names returns the built-in benchmark names in run order.
func Names() []string {
	defaults := Defaults()

	names := make([]string, len(defaults))
	for i, d := range defaults {
		names[i] = d.Name
	}

	return names
}

// Select resolves definitions by name, preserving built-in order
// regardless of the order names are given in. An empty selection means
// all definitions.
func Select(names []string) ([]Definition, error) {
	if len(names) == 0 {
		return Defaults(), nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	selected := make([]Definition, 0, len(names))

	for _, d := range Defaults() {
		if wanted[d.Name] {
			selected = append(selected, d)
			delete(wanted, d.Name)
		}
	}

	for name := range wanted {
		return nil, fmt.Errorf("unknown benchmark %q", name)
	}

	return selected, nil
}
