// Package tool registers the wordlist generators under benchmark and
// synthesizes each one's native invocation string. The set of tools is
// fixed and ordered; order determines run sequence within a benchmark.
package tool

import (
	"fmt"

	"github.com/avelardi/maskbench/mask"
)

// Tool synthesizes the command line that benchmarks one generator for a
// given mask and length range. Command must be a pure function of its
// arguments; differences in flag syntax between tools are absorbed
// entirely inside each implementation.
type Tool interface {
	Name() string
	Command(mask string, minLen, maxLen int) string
}

// Cracken invokes the cracken generator with separate min/max flags.
type Cracken struct{}

func (Cracken) Name() string { return "cracken" }

func (Cracken) Command(m string, minLen, maxLen int) string {
	return fmt.Sprintf("./cracken -m %d -x %d %s", minLen, maxLen, m)
}

// Maskprocessor invokes mp64 with a combined min:max range token.
type Maskprocessor struct{}

func (Maskprocessor) Name() string { return "maskprocessor" }

func (Maskprocessor) Command(m string, minLen, maxLen int) string {
	return fmt.Sprintf("./mp64.bin -i %d:%d %s", minLen, maxLen, m)
}

// Crunch invokes crunch, which uses its own pattern alphabet, so the
// canonical mask is translated before being placed after -t.
type Crunch struct{}

func (Crunch) Name() string { return "crunch" }

func (Crunch) Command(m string, minLen, maxLen int) string {
	return fmt.Sprintf(
		"./crunch %d %d -t %s", minLen, maxLen, mask.CrunchTable.Translate(m),
	)
}

// All returns the registered tools in run order.
func All() []Tool {
	return []Tool{Cracken{}, Maskprocessor{}, Crunch{}}
}

// Names returns the registered tool names in run order.
func Names() []string {
	all := All()

	names := make([]string, len(all))
	for i, t := range all {
		names[i] = t.Name()
	}

	return names
}

// Select resolves tools by name, preserving registry order regardless
// of the order names are given in. An empty selection means all tools.
func Select(names []string) ([]Tool, error) {
	if len(names) == 0 {
		return All(), nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	selected := make([]Tool, 0, len(names))

	for _, t := range All() {
		if wanted[t.Name()] {
			selected = append(selected, t)
			delete(wanted, t.Name())
		}
	}

	for name := range wanted {
		return nil, fmt.Errorf("unknown tool %q", name)
	}

	return selected, nil
}
