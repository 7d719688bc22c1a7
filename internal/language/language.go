// Package language holds the per-language pattern banks: the connective and
// marker vocabulary plus the template skeletons used to realize arguments.
// A language is added by supplying another Bank implementation; the
// generation pipeline never special-cases a language.
package language

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/mpeirce/logipair/internal/model"
	"github.com/mpeirce/logipair/internal/rules"
)

// MarkerKind names one vocabulary slot in a pattern bank.
type MarkerKind string

const (
	MarkerConditional MarkerKind = "conditional" // patterns with {p} and {q}
	MarkerConjunction MarkerKind = "conjunction" // patterns with {p} and {q}
	MarkerDisjunction MarkerKind = "disjunction" // patterns with {p} and {q}
	MarkerNegation    MarkerKind = "negation"    // patterns with {s}
	MarkerPremise     MarkerKind = "premise"     // plain strings introducing restated premises
	MarkerConclusion  MarkerKind = "conclusion"  // plain strings introducing the conclusion
)

// Structure is the surface ordering of premises and conclusion.
type Structure int

const (
	PremiseFirst Structure = iota
	ConclusionFirst
)

// Skeleton is a surface-form blueprint. Form uses the slots {premises},
// {cmark} (conclusion marker), {pmark} (premise marker) and {conclusion};
// all wording comes from the marker vocabulary, so skeleton tables stay
// language-neutral in shape but are owned per bank. Stated premises fill
// {premises} as consecutive sentences.
type Skeleton struct {
	Structure Structure
	Form      string
}

// Bank is the capability contract one language must satisfy. Every method
// must return a non-empty result for every rule category and complexity
// level the language advertises; a gap surfaces as
// model.ErrUnsupportedCombination at generation time.
type Bank interface {
	Code() string
	Name() string

	// Markers returns the vocabulary set for a marker kind at a level.
	Markers(kind MarkerKind, level model.Complexity) ([]string, error)

	// Skeletons returns the template skeletons for a rule category at a
	// level. Basic levels carry premise-first skeletons, intermediate
	// conclusion-first, advanced and expert both.
	Skeletons(cat rules.Category, level model.Complexity) ([]Skeleton, error)

	// Composition returns whole/part phrasings (patterns with {s}) used by
	// the composition fallacy.
	Composition(level model.Complexity) (whole []string, part []string, err error)

	// Exclusivity returns the closed-options phrasings used by the false
	// dilemma fallacy.
	Exclusivity(level model.Complexity) ([]string, error)
}

// ForCode resolves a language code to its pattern bank.
func ForCode(code string) (Bank, error) {
	switch code {
	case "en":
		return English(), nil
	case "es":
		return Spanish(), nil
	default:
		return nil, fmt.Errorf("language %q: %w", code, model.ErrUnsupportedLanguage)
	}
}

// SupportedLanguages lists the registered language codes.
func SupportedLanguages() []string {
	return []string{"en", "es"}
}

// Pick selects one entry uniformly from a non-empty set.
func Pick(rng *rand.Rand, set []string) string {
	return set[rng.Intn(len(set))]
}

// Conditional renders "if p then q" wording for the level.
func Conditional(b Bank, level model.Complexity, rng *rand.Rand, p, q string) (string, error) {
	set, err := b.Markers(MarkerConditional, level)
	if err != nil {
		return "", err
	}
	return fillPQ(Pick(rng, set), p, q), nil
}

// Conjunction renders "p and q" wording for the level.
func Conjunction(b Bank, level model.Complexity, rng *rand.Rand, p, q string) (string, error) {
	set, err := b.Markers(MarkerConjunction, level)
	if err != nil {
		return "", err
	}
	return fillPQ(Pick(rng, set), p, q), nil
}

// Disjunction renders "p or q" wording for the level.
func Disjunction(b Bank, level model.Complexity, rng *rand.Rand, p, q string) (string, error) {
	set, err := b.Markers(MarkerDisjunction, level)
	if err != nil {
		return "", err
	}
	return fillPQ(Pick(rng, set), p, q), nil
}

// Negate renders the negation of a clause for the level.
func Negate(b Bank, level model.Complexity, rng *rand.Rand, s string) (string, error) {
	set, err := b.Markers(MarkerNegation, level)
	if err != nil {
		return "", err
	}
	return FillS(Pick(rng, set), s), nil
}

func fillPQ(pattern, p, q string) string {
	pattern = strings.ReplaceAll(pattern, "{p}", p)
	return strings.ReplaceAll(pattern, "{q}", q)
}

// FillS substitutes a single clause into a {s} pattern.
func FillS(pattern, s string) string {
	return strings.ReplaceAll(pattern, "{s}", s)
}

// LowerClause lowercases a clause's leading letter for mid-sentence use,
// leaving likely proper nouns alone.
func LowerClause(s string) string {
	if s == "" {
		return s
	}
	for _, prefix := range []string{"I ", "I'", "Mr.", "Mrs.", "Dr."} {
		if strings.HasPrefix(s, prefix) {
			return s
		}
	}
	if s == "I" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// levels maps each concrete level to a marker table entry, letting bank
// tables share a set across several levels without repeating literals.
func levels(basic, intermediate, advanced, expert []string) map[model.Complexity][]string {
	return map[model.Complexity][]string{
		model.ComplexityBasic:        basic,
		model.ComplexityIntermediate: intermediate,
		model.ComplexityAdvanced:     advanced,
		model.ComplexityExpert:       expert,
	}
}
