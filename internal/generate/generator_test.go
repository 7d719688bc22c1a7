package generate

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mpeirce/logipair/internal/language"
	"github.com/mpeirce/logipair/internal/model"
	"github.com/mpeirce/logipair/internal/pool"
	"github.com/mpeirce/logipair/internal/rules"
)

func testPool(t *testing.T) *pool.Pool {
	t.Helper()
	sentences := make([]string, 0, 40)
	for i := 0; i < 40; i++ {
		sentences = append(sentences, fmt.Sprintf("sensor %d reports a reading", i))
	}
	p, err := pool.New(sentences)
	if err != nil {
		t.Fatalf("pool.New: %v", err)
	}
	return p
}

func testGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	bank, err := language.ForCode("en")
	if err != nil {
		t.Fatalf("ForCode: %v", err)
	}
	return New(testPool(t), bank, seed)
}

func TestGeneratePair_SharedSentences(t *testing.T) {
	g := testGenerator(t, 42)

	pair, err := g.GeneratePair(rules.ModusPonens, model.ComplexityBasic, true)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}
	if !pair.Shared {
		t.Error("pair not marked shared")
	}
	if len(pair.Valid.Premises) != len(pair.Invalid.Premises) {
		t.Fatalf("premise arity differs: %d vs %d", len(pair.Valid.Premises), len(pair.Invalid.Premises))
	}
	for i := range pair.Valid.Premises {
		if pair.Valid.Premises[i] != pair.Invalid.Premises[i] {
			t.Errorf("premise %d differs under shared draw: %q vs %q",
				i, pair.Valid.Premises[i], pair.Invalid.Premises[i])
		}
	}
	if pair.GoodRule != rules.ModusPonens || pair.BadRule != rules.AffirmingTheConsequent {
		t.Errorf("pair labels wrong: %q / %q", pair.GoodRule, pair.BadRule)
	}
	if !pair.Valid.IsValid || pair.Invalid.IsValid {
		t.Error("validity flags wrong")
	}
}

func TestGeneratePair_SeparateSentences(t *testing.T) {
	g := testGenerator(t, 42)

	pair, err := g.GeneratePair(rules.ModusPonens, model.ComplexityBasic, false)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}
	same := true
	for i := range pair.Valid.Premises {
		if pair.Valid.Premises[i] != pair.Invalid.Premises[i] {
			same = false
		}
	}
	if same {
		t.Error("separate draws produced identical bindings")
	}
}

func TestGeneratePair_UnknownRule(t *testing.T) {
	g := testGenerator(t, 1)
	if _, err := g.GeneratePair("Wishful Thinking", model.ComplexityBasic, true); !errors.Is(err, model.ErrUnknownRule) {
		t.Fatalf("expected ErrUnknownRule, got %v", err)
	}
}

func TestGeneratePair_MixedResolvesOnce(t *testing.T) {
	g := testGenerator(t, 7)

	seen := map[string]bool{}
	for i := 0; i < 60; i++ {
		pair, err := g.GeneratePair(rules.ModusPonens, model.ComplexityMixed, true)
		if err != nil {
			t.Fatalf("GeneratePair: %v", err)
		}
		if pair.Valid.Complexity == string(model.ComplexityMixed) {
			t.Fatal("record labeled mixed instead of a concrete level")
		}
		if pair.Valid.Complexity != pair.Invalid.Complexity {
			t.Fatalf("members disagree on level: %q vs %q", pair.Valid.Complexity, pair.Invalid.Complexity)
		}
		seen[pair.Valid.Complexity] = true
	}
	for _, level := range []model.Complexity{model.ComplexityBasic, model.ComplexityIntermediate, model.ComplexityAdvanced} {
		if !seen[string(level)] {
			t.Errorf("level %q never sampled across 60 mixed pairs", level)
		}
	}
	if seen[string(model.ComplexityExpert)] {
		t.Error("mixed sampling produced expert")
	}
}

func TestGenerateDataset_Proportions(t *testing.T) {
	g := testGenerator(t, 99)
	proportions := map[string]float64{
		rules.ModusPonens:  0.5,
		rules.ModusTollens: 0.5,
	}

	pairs, err := g.GenerateDataset(10, proportions, model.ComplexityBasic, true)
	if err != nil {
		t.Fatalf("GenerateDataset: %v", err)
	}
	if len(pairs) != 10 {
		t.Fatalf("got %d pairs, want 10", len(pairs))
	}
	counts := map[string]int{}
	for _, pair := range pairs {
		counts[pair.GoodRule]++
	}
	if counts[rules.ModusPonens] != 5 || counts[rules.ModusTollens] != 5 {
		t.Errorf("allocation off: %v", counts)
	}
}

func TestGenerateDataset_UniformWhenNil(t *testing.T) {
	g := testGenerator(t, 3)

	pairs, err := g.GenerateDataset(40, nil, model.ComplexityBasic, true)
	if err != nil {
		t.Fatalf("GenerateDataset: %v", err)
	}
	distinct := map[string]bool{}
	for _, pair := range pairs {
		distinct[pair.GoodRule] = true
	}
	if len(distinct) < 2 {
		t.Errorf("uniform sampling used %d rule(s) across 40 pairs", len(distinct))
	}
}

func TestGenerateDataset_Deterministic(t *testing.T) {
	first, err := testGenerator(t, 11).GenerateDataset(6, nil, model.ComplexityMixed, true)
	if err != nil {
		t.Fatalf("GenerateDataset: %v", err)
	}
	second, err := testGenerator(t, 11).GenerateDataset(6, nil, model.ComplexityMixed, true)
	if err != nil {
		t.Fatalf("GenerateDataset: %v", err)
	}
	for i := range first {
		if first[i].Valid.Text != second[i].Valid.Text || first[i].Invalid.Text != second[i].Invalid.Text {
			t.Fatalf("pair %d diverged under identical seed", i)
		}
	}
}

func TestAllocate(t *testing.T) {
	counts, err := Allocate(10, map[string]float64{
		rules.ModusPonens:          0.34,
		rules.ModusTollens:         0.33,
		rules.DisjunctiveSyllogism: 0.33,
	})
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != 10 {
		t.Fatalf("allocations sum to %d, want 10", total)
	}
	if counts[rules.ModusPonens] != 4 {
		t.Errorf("largest remainder should favor Modus Ponens, got %v", counts)
	}
}

func TestAllocate_InToleranceDriftStaysExact(t *testing.T) {
	// Sums slightly off 1.0 pass validation; allocations must still total
	// exactly count.
	cases := []map[string]float64{
		{rules.ModusPonens: 0.5005, rules.ModusTollens: 0.5005},
		{rules.ModusPonens: 0.4996, rules.ModusTollens: 0.4996},
	}
	for _, proportions := range cases {
		counts, err := Allocate(10000, proportions)
		if err != nil {
			t.Fatalf("Allocate(%v): %v", proportions, err)
		}
		total := 0
		for _, n := range counts {
			total += n
		}
		if total != 10000 {
			t.Errorf("Allocate(%v) totals %d, want 10000", proportions, total)
		}
	}
}

func TestAllocate_Invalid(t *testing.T) {
	if _, err := Allocate(10, map[string]float64{rules.ModusPonens: 0.9}); !errors.Is(err, model.ErrInvalidProportions) {
		t.Errorf("short sum: expected ErrInvalidProportions, got %v", err)
	}
	if _, err := Allocate(10, map[string]float64{"Gut Feeling": 1.0}); !errors.Is(err, model.ErrUnknownRule) {
		t.Errorf("unknown rule: expected ErrUnknownRule, got %v", err)
	}
}

func TestPresets(t *testing.T) {
	for _, name := range PresetNames() {
		p, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", name, err)
		}
		var sum float64
		for ruleName, v := range p {
			if _, err := rules.Lookup(ruleName); err != nil {
				t.Errorf("preset %q references unknown rule %q", name, ruleName)
			}
			sum += v
		}
		if sum < 0.999 || sum > 1.001 {
			t.Errorf("preset %q sums to %v", name, sum)
		}
	}
	if _, err := Preset("no_such_mix"); err == nil {
		t.Error("unknown preset accepted")
	}
}
