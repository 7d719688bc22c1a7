package generate

import (
	"fmt"
	"sort"

	"github.com/mpeirce/logipair/internal/rules"
)

// presets are the named rule-proportion mixes selectable from the CLI and
// batch manifests.
var presets = map[string]map[string]float64{
	"basic_logic": {
		rules.ModusPonens:          0.25,
		rules.ModusTollens:         0.25,
		rules.DisjunctiveSyllogism: 0.20,
		rules.ConjunctionIntro:     0.15,
		rules.ConjunctionElim:      0.15,
	},
	"conjunctive_disjunctive": {
		rules.ConjunctionIntro:     0.20,
		rules.ConjunctionElim:      0.20,
		rules.DisjunctionIntro:     0.20,
		rules.DisjunctionElim:      0.20,
		rules.DisjunctiveSyllogism: 0.20,
	},
	"conditional_heavy": {
		rules.ModusPonens:           0.30,
		rules.ModusTollens:          0.30,
		rules.HypotheticalSyllogism: 0.20,
		rules.MaterialConditional:   0.20,
	},
	"balanced": balancedPreset(),
}

func balancedPreset() map[string]float64 {
	names := rules.AllRuleNames()
	out := make(map[string]float64, len(names))
	for _, name := range names {
		out[name] = 1.0 / float64(len(names))
	}
	return out
}

// Preset resolves a named proportion mix. The returned map is a copy.
func Preset(name string) (map[string]float64, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (known: %v)", name, PresetNames())
	}
	out := make(map[string]float64, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out, nil
}

// PresetNames lists the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
