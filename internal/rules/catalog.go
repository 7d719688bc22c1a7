// Package rules holds the static catalog of the 11 valid inference rules and
// their fallacy counterparts. The catalog is defined once and never mutated.
package rules

import (
	"fmt"
	"sort"

	"github.com/mpeirce/logipair/internal/model"
)

// Category groups rules by the logical structure their templates realize.
type Category string

const (
	CategoryConditional Category = "conditional"
	CategoryDisjunctive Category = "disjunctive"
	CategoryConjunctive Category = "conjunctive"
	CategoryComplex     Category = "complex"
)

// Valid rule names.
const (
	ModusPonens            = "Modus Ponens"
	ModusTollens           = "Modus Tollens"
	DisjunctiveSyllogism   = "Disjunctive Syllogism"
	ConjunctionIntro       = "Conjunction Introduction"
	ConjunctionElim        = "Conjunction Elimination"
	DisjunctionIntro       = "Disjunction Introduction"
	DisjunctionElim        = "Disjunction Elimination"
	HypotheticalSyllogism  = "Hypothetical Syllogism"
	MaterialConditional    = "Material Conditional Introduction"
	ConstructiveDilemma    = "Constructive Dilemma"
	DestructiveDilemma     = "Destructive Dilemma"
)

// Fallacy names.
const (
	AffirmingTheConsequent     = "Affirming the Consequent"
	DenyingTheAntecedent       = "Denying the Antecedent"
	AffirmingADisjunct         = "Affirming a Disjunct"
	FalseConjunction           = "False Conjunction"
	CompositionFallacy         = "Composition Fallacy"
	InvalidConjunctionIntro    = "Invalid Conjunction Introduction"
	InvalidDisjunctionElim     = "Invalid Disjunction Elimination"
	NonSequitur                = "Non Sequitur"
	InvalidMaterialConditional = "Invalid Material Conditional Introduction"
	FalseDilemma               = "False Dilemma"
	InvalidDestructiveDilemma  = "Invalid Destructive Dilemma"
)

// Rule describes one valid inference rule and its fallacy counterpart.
type Rule struct {
	Name          string   // Valid rule name
	FallacyName   string   // Bijective fallacy counterpart
	Description   string   // Schematic form, valid vs fallacious
	SentenceCount int      // Distinct sentences the rule binds (2 or 3)
	Category      Category // Template category
}

var catalog = map[string]Rule{
	ModusPonens: {
		Name:          ModusPonens,
		FallacyName:   AffirmingTheConsequent,
		Description:   "If P→Q, P ∴ Q vs If P→Q, Q ∴ P",
		SentenceCount: 2,
		Category:      CategoryConditional,
	},
	ModusTollens: {
		Name:          ModusTollens,
		FallacyName:   DenyingTheAntecedent,
		Description:   "If P→Q, ¬Q ∴ ¬P vs If P→Q, ¬P ∴ ¬Q",
		SentenceCount: 2,
		Category:      CategoryConditional,
	},
	DisjunctiveSyllogism: {
		Name:          DisjunctiveSyllogism,
		FallacyName:   AffirmingADisjunct,
		Description:   "P∨Q, ¬P ∴ Q vs P∨Q, P ∴ ¬Q",
		SentenceCount: 2,
		Category:      CategoryDisjunctive,
	},
	ConjunctionIntro: {
		Name:          ConjunctionIntro,
		FallacyName:   FalseConjunction,
		Description:   "P, Q ∴ P∧Q vs P ∴ P∧Q",
		SentenceCount: 2,
		Category:      CategoryConjunctive,
	},
	ConjunctionElim: {
		Name:          ConjunctionElim,
		FallacyName:   CompositionFallacy,
		Description:   "P∧Q ∴ P vs group has P ∴ all have P",
		SentenceCount: 2,
		Category:      CategoryConjunctive,
	},
	DisjunctionIntro: {
		Name:          DisjunctionIntro,
		FallacyName:   InvalidConjunctionIntro,
		Description:   "P ∴ P∨Q vs P ∴ P∧Q",
		SentenceCount: 2,
		Category:      CategoryDisjunctive,
	},
	DisjunctionElim: {
		Name:          DisjunctionElim,
		FallacyName:   InvalidDisjunctionElim,
		Description:   "complete vs incomplete case analysis",
		SentenceCount: 3,
		Category:      CategoryDisjunctive,
	},
	HypotheticalSyllogism: {
		Name:          HypotheticalSyllogism,
		FallacyName:   NonSequitur,
		Description:   "P→Q, Q→R ∴ P→R vs P ∴ Q",
		SentenceCount: 3,
		Category:      CategoryComplex,
	},
	MaterialConditional: {
		Name:          MaterialConditional,
		FallacyName:   InvalidMaterialConditional,
		Description:   "¬P∨Q ∴ P→Q vs adding unwarranted variables",
		SentenceCount: 3,
		Category:      CategoryComplex,
	},
	ConstructiveDilemma: {
		Name:          ConstructiveDilemma,
		FallacyName:   FalseDilemma,
		Description:   "P→R, Q→R, P∨Q ∴ R vs limited options",
		SentenceCount: 3,
		Category:      CategoryComplex,
	},
	DestructiveDilemma: {
		Name:          DestructiveDilemma,
		FallacyName:   InvalidDestructiveDilemma,
		Description:   "P→R, Q→R, ¬R ∴ ¬P∨¬Q vs invalid conclusion",
		SentenceCount: 3,
		Category:      CategoryComplex,
	},
}

// fallacyIndex is the inverse mapping, built once at init.
var fallacyIndex = func() map[string]string {
	idx := make(map[string]string, len(catalog))
	for name, r := range catalog {
		idx[r.FallacyName] = name
	}
	return idx
}()

// Lookup returns the rule definition for a valid rule name.
func Lookup(name string) (Rule, error) {
	r, ok := catalog[name]
	if !ok {
		return Rule{}, fmt.Errorf("lookup %q: %w", name, model.ErrUnknownRule)
	}
	return r, nil
}

// AllRuleNames returns the 11 valid rule names in stable sorted order.
func AllRuleNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FallacyFor returns the fallacy counterpart of a valid rule.
func FallacyFor(name string) (string, error) {
	r, err := Lookup(name)
	if err != nil {
		return "", err
	}
	return r.FallacyName, nil
}

// ValidFor returns the valid rule whose counterpart is the given fallacy.
func ValidFor(fallacy string) (string, error) {
	name, ok := fallacyIndex[fallacy]
	if !ok {
		return "", fmt.Errorf("valid rule for %q: %w", fallacy, model.ErrUnknownRule)
	}
	return name, nil
}

// BySentenceCount returns the valid rule names requiring exactly n sentences.
func BySentenceCount(n int) []string {
	var names []string
	for _, name := range AllRuleNames() {
		if catalog[name].SentenceCount == n {
			names = append(names, name)
		}
	}
	return names
}

// Pairs returns all (valid, fallacy) name pairs in stable order.
func Pairs() [][2]string {
	pairs := make([][2]string, 0, len(catalog))
	for _, name := range AllRuleNames() {
		pairs = append(pairs, [2]string{name, catalog[name].FallacyName})
	}
	return pairs
}
