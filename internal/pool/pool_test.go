package pool

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/mpeirce/logipair/internal/model"
)

func TestLoad_NormalizesAndSkipsEmpty(t *testing.T) {
	input := "rain falls.\n\n  pressure increases!  \nthe alarm sounds\n"
	p, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Size() != 3 {
		t.Fatalf("expected 3 sentences, got %d", p.Size())
	}
	for _, s := range p.Sentences() {
		if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") {
			t.Errorf("sentence %q kept trailing punctuation", s)
		}
	}
}

func TestLoad_EmptySource(t *testing.T) {
	_, err := Load(strings.NewReader("\n\n  \n"))
	if !errors.Is(err, model.ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
}

func TestDraw_Distinct(t *testing.T) {
	p, err := New([]string{"a falls", "b rises", "c stops", "d turns"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rng := rand.New(rand.NewSource(7))
	drawn, err := p.Draw(rng, 3, true)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(drawn) != 3 {
		t.Fatalf("expected 3 drawn, got %d", len(drawn))
	}

	seen := make(map[string]bool)
	for _, s := range drawn {
		if seen[s] {
			t.Errorf("distinct draw repeated %q", s)
		}
		seen[s] = true
	}
}

func TestDraw_InsufficientSentences(t *testing.T) {
	p, err := New([]string{"only one"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	_, err = p.Draw(rng, 2, true)
	if !errors.Is(err, model.ErrInsufficientSentences) {
		t.Fatalf("expected ErrInsufficientSentences, got %v", err)
	}
}

func TestDraw_Reproducible(t *testing.T) {
	p, err := New([]string{"a falls", "b rises", "c stops", "d turns", "e spins"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first, err := p.Draw(rand.New(rand.NewSource(99)), 3, true)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	second, err := p.Draw(rand.New(rand.NewSource(99)), 3, true)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed diverged: %v vs %v", first, second)
		}
	}
}
