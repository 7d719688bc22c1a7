package rules

import (
	"errors"
	"testing"

	"github.com/mpeirce/logipair/internal/model"
)

func TestCatalog_ElevenRules(t *testing.T) {
	names := AllRuleNames()
	if len(names) != 11 {
		t.Fatalf("expected 11 rules, got %d", len(names))
	}
}

func TestCatalog_Bijection(t *testing.T) {
	for _, name := range AllRuleNames() {
		fallacy, err := FallacyFor(name)
		if err != nil {
			t.Fatalf("FallacyFor(%q): %v", name, err)
		}
		back, err := ValidFor(fallacy)
		if err != nil {
			t.Fatalf("ValidFor(%q): %v", fallacy, err)
		}
		if back != name {
			t.Errorf("round trip for %q: got %q via %q", name, back, fallacy)
		}
	}
}

func TestCatalog_FallacyNamesDistinct(t *testing.T) {
	seen := make(map[string]string)
	for _, name := range AllRuleNames() {
		r, _ := Lookup(name)
		if prev, ok := seen[r.FallacyName]; ok {
			t.Errorf("fallacy %q mapped to both %q and %q", r.FallacyName, prev, name)
		}
		seen[r.FallacyName] = name
	}
}

func TestLookup_UnknownRule(t *testing.T) {
	_, err := Lookup("Modus Bogus")
	if !errors.Is(err, model.ErrUnknownRule) {
		t.Fatalf("expected ErrUnknownRule, got %v", err)
	}

	_, err = ValidFor("Fallacy of Nothing")
	if !errors.Is(err, model.ErrUnknownRule) {
		t.Fatalf("expected ErrUnknownRule from ValidFor, got %v", err)
	}
}

func TestCatalog_SentenceCounts(t *testing.T) {
	two := BySentenceCount(2)
	three := BySentenceCount(3)
	if len(two)+len(three) != 11 {
		t.Fatalf("counts partition: %d + %d != 11", len(two), len(three))
	}
	if len(two) != 6 {
		t.Errorf("expected 6 two-sentence rules, got %d: %v", len(two), two)
	}

	r, err := Lookup(ModusPonens)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if r.SentenceCount != 2 || r.Category != CategoryConditional {
		t.Errorf("Modus Ponens definition wrong: %+v", r)
	}
}

func TestCatalog_Pairs(t *testing.T) {
	pairs := Pairs()
	if len(pairs) != 11 {
		t.Fatalf("expected 11 pairs, got %d", len(pairs))
	}
	for _, p := range pairs {
		r, err := Lookup(p[0])
		if err != nil {
			t.Fatalf("pair %v references unknown rule", p)
		}
		if r.FallacyName != p[1] {
			t.Errorf("pair %v disagrees with catalog fallacy %q", p, r.FallacyName)
		}
	}
}
