// Package pipeline runs the full dataset build: load the sentence pool,
// generate argument pairs, assemble paired-comparison records and write the
// output directory. Both the CLI and the batch runner go through here.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mpeirce/logipair/internal/dataset"
	"github.com/mpeirce/logipair/internal/generate"
	"github.com/mpeirce/logipair/internal/language"
	"github.com/mpeirce/logipair/internal/model"
	"github.com/mpeirce/logipair/internal/pool"
)

// Summary describes one completed build.
type Summary struct {
	DatasetName string
	OutputDir   string
	Language    string
	Seed        int64
	PoolSize    int
	Pairs       int
	SplitSizes  map[string]int
}

// Run executes one build from a resolved configuration. The seed recorded in
// the summary is the one actually used: a zero configured seed is replaced
// with the current time so re-runs differ unless pinned.
func Run(ctx context.Context, cfg model.Config) (Summary, error) {
	gen := cfg.Generation
	if gen.Seed == 0 {
		gen.Seed = time.Now().UnixNano()
	}

	proportions := gen.Proportions
	if proportions == nil && gen.Preset != "" {
		var err error
		proportions, err = generate.Preset(gen.Preset)
		if err != nil {
			return Summary{}, err
		}
	}

	bank, err := language.ForCode(gen.Language)
	if err != nil {
		return Summary{}, err
	}

	p, err := pool.LoadSource(ctx, cfg.Pool)
	if err != nil {
		return Summary{}, fmt.Errorf("load sentence pool: %w", err)
	}
	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "loaded %d sentences from %s\n", p.Size(), cfg.Pool.Source)
	}

	level, err := model.ParseComplexity(gen.Complexity)
	if err != nil {
		return Summary{}, err
	}

	g := generate.New(p, bank, gen.Seed)
	pairs, err := g.GenerateDataset(gen.Count, proportions, level, gen.SharedSentences)
	if err != nil {
		return Summary{}, fmt.Errorf("generate %d pairs: %w", gen.Count, err)
	}

	records, err := dataset.Assemble(pairs, gen.Seed, cfg.Split)
	if err != nil {
		return Summary{}, err
	}

	info := dataset.BuildInfo(records, gen, cfg.Output.DatasetName)
	if err := dataset.NewWriter(cfg.Output).Write(records, info); err != nil {
		return Summary{}, err
	}

	return Summary{
		DatasetName: cfg.Output.DatasetName,
		OutputDir:   cfg.Output.Dir,
		Language:    gen.Language,
		Seed:        gen.Seed,
		PoolSize:    p.Size(),
		Pairs:       len(pairs),
		SplitSizes:  info.SplitSizes,
	}, nil
}
