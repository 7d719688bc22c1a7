// Package generate orchestrates the sentence pool, rule catalog and
// argument assembler into valid/fallacy argument pairs and whole datasets.
package generate

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/mpeirce/logipair/internal/assemble"
	"github.com/mpeirce/logipair/internal/language"
	"github.com/mpeirce/logipair/internal/model"
	"github.com/mpeirce/logipair/internal/pool"
	"github.com/mpeirce/logipair/internal/rules"
)

// proportionTolerance is how far proportions may drift from summing to 1.0.
const proportionTolerance = 0.001

// Generator produces argument pairs for one language. All randomness flows
// through the explicit seeded generator; global random state is never used.
type Generator struct {
	pool *pool.Pool
	asm  *assemble.Assembler
	rng  *rand.Rand
}

// New creates a generator. The seed fixes the full generation sequence:
// sentence draws, marker choices, skeleton choices and rule sampling.
func New(p *pool.Pool, bank language.Bank, seed int64) *Generator {
	return &Generator{
		pool: p,
		asm:  assemble.New(bank),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// resolveMixed samples a concrete level for one pair: basic 40%,
// intermediate 40%, advanced 20%. Concrete levels pass through unchanged,
// so no downstream component ever sees "mixed".
func (g *Generator) resolveMixed(level model.Complexity) model.Complexity {
	if level != model.ComplexityMixed {
		return level
	}
	switch r := g.rng.Float64(); {
	case r < 0.4:
		return model.ComplexityBasic
	case r < 0.8:
		return model.ComplexityIntermediate
	default:
		return model.ComplexityAdvanced
	}
}

// GeneratePair builds one valid/fallacy pair for the named rule. With
// shared=true both members are bound to the identical sentence draw, making
// logical structure the only difference between the two texts.
func (g *Generator) GeneratePair(ruleName string, level model.Complexity, shared bool) (model.ArgumentPair, error) {
	rule, err := rules.Lookup(ruleName)
	if err != nil {
		return model.ArgumentPair{}, err
	}

	// Resolved once per pair: both members share the level.
	resolved := g.resolveMixed(level)

	validSentences, err := g.pool.Draw(g.rng, rule.SentenceCount, true)
	if err != nil {
		return model.ArgumentPair{}, fmt.Errorf("pair %s: %w", ruleName, err)
	}
	invalidSentences := validSentences
	if !shared {
		invalidSentences, err = g.pool.Draw(g.rng, rule.SentenceCount, true)
		if err != nil {
			return model.ArgumentPair{}, fmt.Errorf("pair %s: %w", ruleName, err)
		}
	}

	valid, err := g.asm.Assemble(rule, true, resolved, validSentences, g.rng)
	if err != nil {
		return model.ArgumentPair{}, err
	}
	invalid, err := g.asm.Assemble(rule, false, resolved, invalidSentences, g.rng)
	if err != nil {
		return model.ArgumentPair{}, err
	}

	return model.ArgumentPair{
		Valid:    valid,
		Invalid:  invalid,
		GoodRule: rule.Name,
		BadRule:  rule.FallacyName,
		Shared:   shared,
	}, nil
}

// GenerateDataset builds count pairs. With proportions, the count is
// allocated across rules by largest-remainder rounding so the allocations
// sum exactly to count; without, each pair samples a rule uniformly.
// Generation is fail-fast: pool and proportion defects are systematic, so
// the first failing pair aborts the request.
func (g *Generator) GenerateDataset(count int, proportions map[string]float64, level model.Complexity, shared bool) ([]model.ArgumentPair, error) {
	if count <= 0 {
		return nil, nil
	}

	var sequence []string
	if proportions != nil {
		counts, err := Allocate(count, proportions)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(counts))
		for name := range counts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			for i := 0; i < counts[name]; i++ {
				sequence = append(sequence, name)
			}
		}
		g.rng.Shuffle(len(sequence), func(i, j int) {
			sequence[i], sequence[j] = sequence[j], sequence[i]
		})
	} else {
		all := rules.AllRuleNames()
		sequence = make([]string, count)
		for i := range sequence {
			sequence[i] = all[g.rng.Intn(len(all))]
		}
	}

	pairs := make([]model.ArgumentPair, 0, count)
	for i, name := range sequence {
		pair, err := g.GeneratePair(name, level, shared)
		if err != nil {
			return nil, fmt.Errorf("pair %d/%d: %w", i+1, count, err)
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// Allocate distributes count across rules by largest-remainder rounding.
// The returned allocations always sum exactly to count.
func Allocate(count int, proportions map[string]float64) (map[string]int, error) {
	var sum float64
	for name, p := range proportions {
		if _, err := rules.Lookup(name); err != nil {
			return nil, err
		}
		if p < 0 {
			return nil, fmt.Errorf("proportion for %s is negative: %w", name, model.ErrInvalidProportions)
		}
		sum += p
	}
	if math.Abs(sum-1.0) > proportionTolerance {
		return nil, fmt.Errorf("proportions sum to %.4f: %w", sum, model.ErrInvalidProportions)
	}

	names := make([]string, 0, len(proportions))
	for name := range proportions {
		names = append(names, name)
	}
	sort.Strings(names)

	type share struct {
		name      string
		base      int
		remainder float64
	}

	// Normalize by the actual sum so in-tolerance drift above or below 1.0
	// cannot push the floored bases past count.
	allocated := 0
	shares := make([]share, 0, len(names))
	for _, name := range names {
		exact := float64(count) * proportions[name] / sum
		base := int(math.Floor(exact))
		allocated += base
		shares = append(shares, share{name: name, base: base, remainder: exact - float64(base)})
	}

	// Hand the leftover units to the largest remainders; ties break by
	// name so the allocation is deterministic.
	sort.SliceStable(shares, func(i, j int) bool {
		if shares[i].remainder != shares[j].remainder {
			return shares[i].remainder > shares[j].remainder
		}
		return shares[i].name < shares[j].name
	})
	for i := 0; i < count-allocated; i++ {
		shares[i%len(shares)].base++
	}

	out := make(map[string]int, len(shares))
	for _, s := range shares {
		out[s.name] = s.base
	}
	return out, nil
}
