package language

import (
	"fmt"

	"github.com/mpeirce/logipair/internal/model"
	"github.com/mpeirce/logipair/internal/rules"
)

// table is the data-driven Bank implementation both languages share. All
// behavior lives in the vocabulary; the lookup logic is identical.
type table struct {
	code string
	name string

	markers     map[MarkerKind]map[model.Complexity][]string
	skeletons   map[rules.Category]map[model.Complexity][]Skeleton
	compWhole   map[model.Complexity][]string
	compPart    map[model.Complexity][]string
	exclusivity map[model.Complexity][]string
}

func (t *table) Code() string { return t.code }
func (t *table) Name() string { return t.name }

func (t *table) Markers(kind MarkerKind, level model.Complexity) ([]string, error) {
	byLevel, ok := t.markers[kind]
	if !ok {
		return nil, fmt.Errorf("%s markers %q at %q: %w", t.code, kind, level, model.ErrUnsupportedCombination)
	}
	set := byLevel[level]
	if len(set) == 0 {
		return nil, fmt.Errorf("%s markers %q at %q: %w", t.code, kind, level, model.ErrUnsupportedCombination)
	}
	return set, nil
}

func (t *table) Skeletons(cat rules.Category, level model.Complexity) ([]Skeleton, error) {
	byLevel, ok := t.skeletons[cat]
	if !ok {
		return nil, fmt.Errorf("%s skeletons for %q at %q: %w", t.code, cat, level, model.ErrUnsupportedCombination)
	}
	set := byLevel[level]
	if len(set) == 0 {
		return nil, fmt.Errorf("%s skeletons for %q at %q: %w", t.code, cat, level, model.ErrUnsupportedCombination)
	}
	return set, nil
}

func (t *table) Composition(level model.Complexity) ([]string, []string, error) {
	whole, part := t.compWhole[level], t.compPart[level]
	if len(whole) == 0 || len(part) == 0 {
		return nil, nil, fmt.Errorf("%s composition phrases at %q: %w", t.code, level, model.ErrUnsupportedCombination)
	}
	return whole, part, nil
}

func (t *table) Exclusivity(level model.Complexity) ([]string, error) {
	set := t.exclusivity[level]
	if len(set) == 0 {
		return nil, fmt.Errorf("%s exclusivity phrases at %q: %w", t.code, level, model.ErrUnsupportedCombination)
	}
	return set, nil
}

// standardSkeletons builds the skeleton table. Forms carry only slots and
// punctuation, so the same shapes serve every language; all wording flows in
// through the marker vocabulary. Basic is premise-first, intermediate
// conclusion-first, advanced and expert mix both.
func standardSkeletons() map[rules.Category]map[model.Complexity][]Skeleton {
	premiseFirst := []Skeleton{
		{Structure: PremiseFirst, Form: "{premises}. {cmark} {conclusion}."},
		{Structure: PremiseFirst, Form: "{premises}. {cmark}, {conclusion}."},
	}
	conclusionFirst := []Skeleton{
		{Structure: ConclusionFirst, Form: "{conclusion}. {pmark} {premises}."},
		{Structure: ConclusionFirst, Form: "{conclusion}, {pmark} {premises}."},
	}
	mixed := append(append([]Skeleton{}, premiseFirst...), conclusionFirst...)

	byLevel := map[model.Complexity][]Skeleton{
		model.ComplexityBasic:        premiseFirst,
		model.ComplexityIntermediate: conclusionFirst,
		model.ComplexityAdvanced:     mixed,
		model.ComplexityExpert:       mixed,
	}

	out := make(map[rules.Category]map[model.Complexity][]Skeleton, 4)
	for _, cat := range []rules.Category{
		rules.CategoryConditional,
		rules.CategoryDisjunctive,
		rules.CategoryConjunctive,
		rules.CategoryComplex,
	} {
		out[cat] = byLevel
	}
	return out
}
