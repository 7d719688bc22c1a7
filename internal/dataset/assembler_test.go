package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/mpeirce/logipair/internal/model"
	"github.com/mpeirce/logipair/internal/rules"
)

func testPairs(n int) []model.ArgumentPair {
	pairs := make([]model.ArgumentPair, n)
	for i := range pairs {
		pairs[i] = model.ArgumentPair{
			Valid: model.Argument{
				Text:       fmt.Sprintf("valid argument %d.", i),
				RuleType:   rules.ModusPonens,
				IsValid:    true,
				Language:   "en",
				Complexity: string(model.ComplexityBasic),
			},
			Invalid: model.Argument{
				Text:       fmt.Sprintf("fallacious argument %d.", i),
				RuleType:   rules.AffirmingTheConsequent,
				Language:   "en",
				Complexity: string(model.ComplexityBasic),
			},
			GoodRule: rules.ModusPonens,
			BadRule:  rules.AffirmingTheConsequent,
			Shared:   true,
		}
	}
	return pairs
}

func TestAssemble_CorrectnessInvariant(t *testing.T) {
	records, err := Assemble(testPairs(50), 42, model.DefaultSplitRatios())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(records) != 50 {
		t.Fatalf("got %d records, want 50", len(records))
	}

	for _, r := range records {
		valid := fmt.Sprintf("valid argument %d.", r.QuestionID-1)

		if got := r.TestOptions.Original[r.CorrectAnswer.OriginalIndex]; got != valid {
			t.Errorf("question %d: original index points at %q", r.QuestionID, got)
		}
		if got := r.TestOptions.Randomized[r.CorrectAnswer.RandomizedIndex]; got != valid {
			t.Errorf("question %d: randomized index points at %q", r.QuestionID, got)
		}

		// Mapping must relocate every original option to its randomized slot.
		for from := 0; from < 2; from++ {
			to, ok := r.TestOptions.Mapping[strconv.Itoa(from)]
			if !ok {
				t.Fatalf("question %d: mapping missing key %d", r.QuestionID, from)
			}
			if r.TestOptions.Original[from] != r.TestOptions.Randomized[to] {
				t.Errorf("question %d: mapping %d->%d does not match texts", r.QuestionID, from, to)
			}
		}

		if r.GoodArgumentType != rules.ModusPonens || r.BadArgumentType != rules.AffirmingTheConsequent {
			t.Errorf("question %d: rule labels %q/%q", r.QuestionID, r.GoodArgumentType, r.BadArgumentType)
		}
	}
}

func TestAssemble_BothOrdersOccur(t *testing.T) {
	records, err := Assemble(testPairs(100), 7, model.DefaultSplitRatios())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	seenOriginal := map[int]bool{}
	seenRandomized := map[int]bool{}
	for _, r := range records {
		seenOriginal[r.CorrectAnswer.OriginalIndex] = true
		seenRandomized[r.CorrectAnswer.RandomizedIndex] = true
	}
	if !seenOriginal[0] || !seenOriginal[1] {
		t.Error("base order never flipped across 100 questions")
	}
	if !seenRandomized[0] || !seenRandomized[1] {
		t.Error("randomized order never varied across 100 questions")
	}
}

func TestAssemble_SplitSizes(t *testing.T) {
	records, err := Assemble(testPairs(10), 1, model.DefaultSplitRatios())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	grouped := BySplit(records)
	if len(grouped[model.SplitTrain]) != 8 || len(grouped[model.SplitValidation]) != 1 || len(grouped[model.SplitTest]) != 1 {
		t.Errorf("split sizes train=%d validation=%d test=%d, want 8/1/1",
			len(grouped[model.SplitTrain]), len(grouped[model.SplitValidation]), len(grouped[model.SplitTest]))
	}
}

func TestAssemble_RemainderGoesToTest(t *testing.T) {
	records, err := Assemble(testPairs(7), 1, model.SplitRatios{Train: 0.5, Validation: 0.25, Test: 0.25})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	grouped := BySplit(records)
	if len(grouped[model.SplitTrain]) != 3 || len(grouped[model.SplitValidation]) != 1 || len(grouped[model.SplitTest]) != 3 {
		t.Errorf("split sizes train=%d validation=%d test=%d, want 3/1/3",
			len(grouped[model.SplitTrain]), len(grouped[model.SplitValidation]), len(grouped[model.SplitTest]))
	}
}

func TestAssemble_InvalidRatios(t *testing.T) {
	_, err := Assemble(testPairs(4), 1, model.SplitRatios{Train: 0.5, Validation: 0.1, Test: 0.1})
	if !errors.Is(err, model.ErrInvalidSplitRatios) {
		t.Fatalf("expected ErrInvalidSplitRatios, got %v", err)
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	first, err := Assemble(testPairs(20), 42, model.DefaultSplitRatios())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	second, err := Assemble(testPairs(20), 42, model.DefaultSplitRatios())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	for i := range first {
		if first[i].TestOptions.Original != second[i].TestOptions.Original ||
			first[i].TestOptions.Randomized != second[i].TestOptions.Randomized {
			t.Fatalf("question %d diverged under identical seed", first[i].QuestionID)
		}
		if first[i].RandomizationSeed != second[i].RandomizationSeed {
			t.Fatalf("question %d: sub-seed diverged", first[i].QuestionID)
		}
	}
}

func TestAssemble_SubSeedsDiffer(t *testing.T) {
	records, err := Assemble(testPairs(5), 100, model.DefaultSplitRatios())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	seen := map[int64]bool{}
	for _, r := range records {
		if seen[r.RandomizationSeed] {
			t.Fatalf("sub-seed %d repeated", r.RandomizationSeed)
		}
		seen[r.RandomizationSeed] = true
	}
}
