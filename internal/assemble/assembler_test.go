package assemble

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/mpeirce/logipair/internal/language"
	"github.com/mpeirce/logipair/internal/model"
	"github.com/mpeirce/logipair/internal/rules"
)

func english(t *testing.T) *Assembler {
	t.Helper()
	bank, err := language.ForCode("en")
	if err != nil {
		t.Fatalf("ForCode: %v", err)
	}
	return New(bank)
}

func TestAssemble_ModusPonensPair(t *testing.T) {
	a := english(t)
	mp, err := rules.Lookup(rules.ModusPonens)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	sentences := []string{"temperature rises", "pressure increases"}

	valid, err := a.Assemble(mp, true, model.ComplexityBasic, sentences, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Assemble valid: %v", err)
	}
	invalid, err := a.Assemble(mp, false, model.ComplexityBasic, sentences, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Assemble invalid: %v", err)
	}

	for _, arg := range []model.Argument{valid, invalid} {
		lower := strings.ToLower(arg.Text)
		if !strings.Contains(lower, "temperature rises") || !strings.Contains(lower, "pressure increases") {
			t.Errorf("text missing a bound sentence: %q", arg.Text)
		}
		if len(arg.Premises) != 2 {
			t.Errorf("premise arity %d, want 2", len(arg.Premises))
		}
	}

	if !valid.IsValid || valid.RuleType != rules.ModusPonens {
		t.Errorf("valid member mislabeled: %+v", valid)
	}
	if invalid.IsValid || invalid.RuleType != rules.AffirmingTheConsequent {
		t.Errorf("invalid member mislabeled: %+v", invalid)
	}

	// Valid form concludes the consequent; the fallacy concludes the antecedent.
	if !strings.Contains(valid.Conclusion, "pressure increases") {
		t.Errorf("valid conclusion should be the consequent, got %q", valid.Conclusion)
	}
	if !strings.Contains(invalid.Conclusion, "temperature rises") {
		t.Errorf("fallacy conclusion should be the antecedent, got %q", invalid.Conclusion)
	}
}

func TestAssemble_ArityMismatch(t *testing.T) {
	a := english(t)
	mp, _ := rules.Lookup(rules.ModusPonens)

	_, err := a.Assemble(mp, true, model.ComplexityBasic, []string{"just one"}, rand.New(rand.NewSource(1)))
	if !errors.Is(err, model.ErrBindingArity) {
		t.Fatalf("expected ErrBindingArity, got %v", err)
	}
}

func TestAssemble_RejectsMixed(t *testing.T) {
	a := english(t)
	mp, _ := rules.Lookup(rules.ModusPonens)

	_, err := a.Assemble(mp, true, model.ComplexityMixed, []string{"a rises", "b falls"}, rand.New(rand.NewSource(1)))
	if !errors.Is(err, model.ErrUnsupportedCombination) {
		t.Fatalf("expected ErrUnsupportedCombination for mixed, got %v", err)
	}
}

func TestAssemble_AllRulesAllLevels(t *testing.T) {
	sentences := []string{"rain falls", "the river rises", "the bridge closes"}
	levelsToTest := []model.Complexity{
		model.ComplexityBasic,
		model.ComplexityIntermediate,
		model.ComplexityAdvanced,
		model.ComplexityExpert,
	}

	for _, code := range language.SupportedLanguages() {
		bank, err := language.ForCode(code)
		if err != nil {
			t.Fatalf("ForCode(%q): %v", code, err)
		}
		a := New(bank)

		for _, name := range rules.AllRuleNames() {
			rule, err := rules.Lookup(name)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", name, err)
			}
			for _, level := range levelsToTest {
				for _, valid := range []bool{true, false} {
					rng := rand.New(rand.NewSource(17))
					arg, err := a.Assemble(rule, valid, level, sentences[:rule.SentenceCount], rng)
					if err != nil {
						t.Fatalf("%s/%s/%s valid=%t: %v", code, name, level, valid, err)
					}
					if arg.Text == "" {
						t.Fatalf("%s/%s/%s: empty text", code, name, level)
					}
					if !strings.HasSuffix(arg.Text, ".") {
						t.Errorf("%s/%s: missing terminal period: %q", code, name, arg.Text)
					}
					if strings.Contains(arg.Text, "{") || strings.Contains(arg.Text, "}") {
						t.Errorf("%s/%s: unfilled slot: %q", code, name, arg.Text)
					}
					if strings.Contains(arg.Text, "  ") {
						t.Errorf("%s/%s: duplicate whitespace: %q", code, name, arg.Text)
					}
					if len(arg.Premises) != rule.SentenceCount {
						t.Errorf("%s/%s: premise arity %d, want %d", code, name, len(arg.Premises), rule.SentenceCount)
					}
					if arg.Complexity != string(level) {
						t.Errorf("%s/%s: recorded complexity %q, want %q", code, name, arg.Complexity, level)
					}
				}
			}
		}
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	a := english(t)
	hs, _ := rules.Lookup(rules.HypotheticalSyllogism)
	sentences := []string{"rain falls", "the river rises", "the bridge closes"}

	first, err := a.Assemble(hs, true, model.ComplexityAdvanced, sentences, rand.New(rand.NewSource(23)))
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	second, err := a.Assemble(hs, true, model.ComplexityAdvanced, sentences, rand.New(rand.NewSource(23)))
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if first.Text != second.Text {
		t.Fatalf("same seed diverged:\n%q\n%q", first.Text, second.Text)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"rain falls.  therefore, the ground is wet", "Rain falls. Therefore, the ground is wet."},
		{"a rises. b falls..", "A rises. B falls."},
		{"∴ the ground is wet.", "∴ the ground is wet."},
	}
	for _, c := range cases {
		if got := normalize(c.in); got != c.want {
			t.Errorf("normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
