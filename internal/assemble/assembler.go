// Package assemble turns a rule, a validity target, a complexity level and a
// set of bound sentences into one grammatical argument. Each rule+validity
// combination is a statically enumerated variant with a fixed slot-binding
// recipe; validity is never derived by evaluation.
package assemble

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/mpeirce/logipair/internal/language"
	"github.com/mpeirce/logipair/internal/model"
	"github.com/mpeirce/logipair/internal/rules"
)

// Assembler realizes arguments in one language.
type Assembler struct {
	bank language.Bank
}

// New creates an assembler over a language pattern bank.
func New(bank language.Bank) *Assembler {
	return &Assembler{bank: bank}
}

// Assemble produces one argument. The caller supplies the random generator;
// the assembler never touches global random state, so identical generator
// state yields identical output.
func (a *Assembler) Assemble(rule rules.Rule, valid bool, level model.Complexity, sentences []string, rng *rand.Rand) (model.Argument, error) {
	if !level.Concrete() {
		return model.Argument{}, fmt.Errorf("assemble %s at %q: %w", rule.Name, level, model.ErrUnsupportedCombination)
	}
	if len(sentences) != rule.SentenceCount {
		return model.Argument{}, fmt.Errorf("assemble %s: got %d sentences, need %d: %w",
			rule.Name, len(sentences), rule.SentenceCount, model.ErrBindingArity)
	}

	clauses := make([]string, len(sentences))
	for i, s := range sentences {
		clauses[i] = cleanSentence(s)
	}

	stated, conclusion, err := a.bind(rule, valid, level, clauses, rng)
	if err != nil {
		return model.Argument{}, fmt.Errorf("bind %s (valid=%t): %w", rule.Name, valid, err)
	}

	skeletons, err := a.bank.Skeletons(rule.Category, level)
	if err != nil {
		return model.Argument{}, err
	}
	skeleton := skeletons[rng.Intn(len(skeletons))]

	text, err := a.render(skeleton, stated, conclusion, level, rng)
	if err != nil {
		return model.Argument{}, err
	}

	name := rule.Name
	if !valid {
		name = rule.FallacyName
	}

	return model.Argument{
		Text:       text,
		RuleType:   name,
		IsValid:    valid,
		Language:   a.bank.Code(),
		Complexity: string(level),
		Premises:   clauses,
		Conclusion: conclusion,
	}, nil
}

// render fills a skeleton's slots and normalizes the surface form.
func (a *Assembler) render(sk language.Skeleton, stated []string, conclusion string, level model.Complexity, rng *rand.Rand) (string, error) {
	text := sk.Form

	if strings.Contains(text, "{cmark}") {
		set, err := a.bank.Markers(language.MarkerConclusion, level)
		if err != nil {
			return "", err
		}
		text = strings.ReplaceAll(text, "{cmark}", language.Pick(rng, set))
	}
	if strings.Contains(text, "{pmark}") {
		set, err := a.bank.Markers(language.MarkerPremise, level)
		if err != nil {
			return "", err
		}
		text = strings.ReplaceAll(text, "{pmark}", language.Pick(rng, set))
	}

	text = strings.ReplaceAll(text, "{premises}", strings.Join(stated, ". "))
	text = strings.ReplaceAll(text, "{conclusion}", conclusion)

	return normalize(text), nil
}

// bind applies the rule's fixed logical shape to the cleaned clauses,
// returning the premise statements to assert and the conclusion clause.
// Everything is lowercase here; sentence casing is applied in normalize.
func (a *Assembler) bind(rule rules.Rule, valid bool, level model.Complexity, clauses []string, rng *rand.Rand) (stated []string, conclusion string, err error) {
	lc := make([]string, len(clauses))
	for i, c := range clauses {
		lc[i] = language.LowerClause(c)
	}

	b := a.bank
	cond := func(p, q string) (string, error) { return language.Conditional(b, level, rng, p, q) }
	conj := func(p, q string) (string, error) { return language.Conjunction(b, level, rng, p, q) }
	disj := func(p, q string) (string, error) { return language.Disjunction(b, level, rng, p, q) }
	neg := func(s string) (string, error) { return language.Negate(b, level, rng, s) }

	switch rule.Name {
	case rules.ModusPonens:
		c, err := cond(lc[0], lc[1])
		if err != nil {
			return nil, "", err
		}
		if valid {
			return []string{c, lc[0]}, lc[1], nil
		}
		return []string{c, lc[1]}, lc[0], nil

	case rules.ModusTollens:
		c, err := cond(lc[0], lc[1])
		if err != nil {
			return nil, "", err
		}
		negP, err := neg(lc[0])
		if err != nil {
			return nil, "", err
		}
		negQ, err := neg(lc[1])
		if err != nil {
			return nil, "", err
		}
		if valid {
			return []string{c, negQ}, negP, nil
		}
		return []string{c, negP}, negQ, nil

	case rules.DisjunctiveSyllogism:
		d, err := disj(lc[0], lc[1])
		if err != nil {
			return nil, "", err
		}
		if valid {
			negP, err := neg(lc[0])
			if err != nil {
				return nil, "", err
			}
			return []string{d, negP}, lc[1], nil
		}
		negQ, err := neg(lc[1])
		if err != nil {
			return nil, "", err
		}
		return []string{d, lc[0]}, negQ, nil

	case rules.ConjunctionIntro:
		cj, err := conj(lc[0], lc[1])
		if err != nil {
			return nil, "", err
		}
		if valid {
			// Conjunction introduction legitimately restates both
			// premises inside the conclusion clause.
			return []string{lc[0], lc[1]}, cj, nil
		}
		// False conjunction asserts only the first premise.
		return []string{lc[0]}, cj, nil

	case rules.ConjunctionElim:
		if valid {
			cj, err := conj(lc[0], lc[1])
			if err != nil {
				return nil, "", err
			}
			return []string{cj}, lc[0], nil
		}
		whole, part, err := b.Composition(level)
		if err != nil {
			return nil, "", err
		}
		return []string{language.FillS(language.Pick(rng, whole), lc[0])},
			language.FillS(language.Pick(rng, part), lc[0]), nil

	case rules.DisjunctionIntro:
		if valid {
			d, err := disj(lc[0], lc[1])
			if err != nil {
				return nil, "", err
			}
			return []string{lc[0]}, d, nil
		}
		cj, err := conj(lc[0], lc[1])
		if err != nil {
			return nil, "", err
		}
		return []string{lc[0]}, cj, nil

	case rules.DisjunctionElim:
		d, err := disj(lc[0], lc[1])
		if err != nil {
			return nil, "", err
		}
		c1, err := cond(lc[0], lc[2])
		if err != nil {
			return nil, "", err
		}
		if valid {
			c2, err := cond(lc[1], lc[2])
			if err != nil {
				return nil, "", err
			}
			return []string{d, c1, c2}, lc[2], nil
		}
		// Incomplete case analysis: only one branch is covered.
		return []string{d, c1}, lc[2], nil

	case rules.HypotheticalSyllogism:
		if valid {
			c1, err := cond(lc[0], lc[1])
			if err != nil {
				return nil, "", err
			}
			c2, err := cond(lc[1], lc[2])
			if err != nil {
				return nil, "", err
			}
			c3, err := cond(lc[0], lc[2])
			if err != nil {
				return nil, "", err
			}
			return []string{c1, c2}, c3, nil
		}
		// Non sequitur: the conclusion simply does not follow.
		return []string{lc[0]}, lc[1], nil

	case rules.MaterialConditional:
		negP, err := neg(lc[0])
		if err != nil {
			return nil, "", err
		}
		d, err := disj(negP, lc[1])
		if err != nil {
			return nil, "", err
		}
		if valid {
			c, err := cond(lc[0], lc[1])
			if err != nil {
				return nil, "", err
			}
			return []string{d}, c, nil
		}
		// Unwarranted extra variable in the consequent.
		cj, err := conj(lc[1], lc[2])
		if err != nil {
			return nil, "", err
		}
		c, err := cond(lc[0], cj)
		if err != nil {
			return nil, "", err
		}
		return []string{d}, c, nil

	case rules.ConstructiveDilemma:
		d, err := disj(lc[0], lc[1])
		if err != nil {
			return nil, "", err
		}
		if valid {
			c1, err := cond(lc[0], lc[2])
			if err != nil {
				return nil, "", err
			}
			c2, err := cond(lc[1], lc[2])
			if err != nil {
				return nil, "", err
			}
			return []string{c1, c2, d}, lc[2], nil
		}
		set, err := b.Exclusivity(level)
		if err != nil {
			return nil, "", err
		}
		return []string{d}, language.Pick(rng, set), nil

	case rules.DestructiveDilemma:
		if valid {
			c1, err := cond(lc[0], lc[2])
			if err != nil {
				return nil, "", err
			}
			c2, err := cond(lc[1], lc[2])
			if err != nil {
				return nil, "", err
			}
			negR, err := neg(lc[2])
			if err != nil {
				return nil, "", err
			}
			negP, err := neg(lc[0])
			if err != nil {
				return nil, "", err
			}
			negQ, err := neg(lc[1])
			if err != nil {
				return nil, "", err
			}
			d, err := disj(negP, negQ)
			if err != nil {
				return nil, "", err
			}
			return []string{c1, c2, negR}, d, nil
		}
		return []string{lc[0]}, lc[1], nil

	default:
		return nil, "", fmt.Errorf("bind %q: %w", rule.Name, model.ErrUnknownRule)
	}
}

// cleanSentence trims whitespace and trailing terminal punctuation.
func cleanSentence(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".!?")
}

// normalize collapses whitespace, repairs punctuation seams from slot
// substitution, guarantees a single terminal period, and capitalizes the
// first letter of each sentence. A sentence opening with a non-letter (the
// symbolic therefore sign) is left as written.
func normalize(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ReplaceAll(s, "..", ".")
	s = strings.ReplaceAll(s, ",.", ".")
	s = strings.ReplaceAll(s, " .", ".")
	s = strings.ReplaceAll(s, " ,", ",")
	if !strings.HasSuffix(s, ".") {
		s += "."
	}

	runes := []rune(s)
	capNext := true
	for i, r := range runes {
		switch {
		case capNext && unicode.IsLetter(r):
			runes[i] = unicode.ToUpper(r)
			capNext = false
		case capNext && !unicode.IsSpace(r):
			capNext = false
		case r == '.' || r == '!' || r == '?':
			capNext = true
		}
	}
	return string(runes)
}
