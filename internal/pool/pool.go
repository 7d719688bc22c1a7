// Package pool loads and serves the sentence pool: short declarative clauses
// used as interchangeable slot-fillers during argument generation. The pool
// is read-only after load and shared by every generation call.
package pool

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/mpeirce/logipair/internal/model"
)

// Pool holds the loaded sentences. Immutable after construction.
type Pool struct {
	sentences []string
}

// New builds a pool from pre-collected sentences, normalizing each one.
func New(sentences []string) (*Pool, error) {
	cleaned := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if s = Normalize(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("new pool: %w", model.ErrEmptyPool)
	}
	return &Pool{sentences: cleaned}, nil
}

// Load reads one sentence per line from r.
func Load(r io.Reader) (*Pool, error) {
	var sentences []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		sentences = append(sentences, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read sentences: %w", err)
	}
	return New(sentences)
}

// LoadFile reads a line-oriented sentence file from disk.
func LoadFile(path string) (*Pool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sentence file: %w", err)
	}
	defer func() { _ = f.Close() }()

	p, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return p, nil
}

// Normalize trims whitespace and strips trailing terminal punctuation.
// Punctuation is re-applied at assembly time, so pool sentences stay bare.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	return strings.TrimRight(s, ".!?")
}

// Size returns the number of sentences in the pool.
func (p *Pool) Size() int {
	return len(p.sentences)
}

// Sentences returns a copy of the pool contents.
func (p *Pool) Sentences() []string {
	out := make([]string, len(p.sentences))
	copy(out, p.sentences)
	return out
}

// Draw selects n sentences uniformly at random using the supplied generator.
// With distinct=true the draw is without replacement and fails when the pool
// is smaller than n. Draws are reproducible given the same generator state
// and call sequence.
func (p *Pool) Draw(rng *rand.Rand, n int, distinct bool) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}

	if !distinct {
		out := make([]string, n)
		for i := range out {
			out[i] = p.sentences[rng.Intn(len(p.sentences))]
		}
		return out, nil
	}

	if len(p.sentences) < n {
		return nil, fmt.Errorf("draw %d distinct from pool of %d: %w",
			n, len(p.sentences), model.ErrInsufficientSentences)
	}

	perm := rng.Perm(len(p.sentences))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = p.sentences[perm[i]]
	}
	return out, nil
}
