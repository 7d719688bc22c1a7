package worker

import (
	"context"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mpeirce/logipair/internal/model"
	"github.com/mpeirce/logipair/internal/pipeline"
)

// Manifest is a batch build description: shared defaults plus one entry per
// dataset. Entry fields left at their zero value inherit from Defaults, and
// Defaults itself inherits from the built-in configuration.
type Manifest struct {
	Defaults model.Config    `yaml:"defaults"`
	Datasets []ManifestEntry `yaml:"datasets"`
}

// ManifestEntry names one dataset and overrides the defaults for it. Every
// entry should pin its own seed; two entries with the same resolved seed and
// settings produce identical datasets.
type ManifestEntry struct {
	Name       string                  `yaml:"name"`
	Generation *model.GenerationConfig `yaml:"generation,omitempty"`
	Pool       *model.PoolConfig       `yaml:"pool,omitempty"`
	Split      *model.SplitRatios      `yaml:"split,omitempty"`
	Output     *model.OutputConfig     `yaml:"output,omitempty"`
}

// LoadManifest parses a batch manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if len(m.Datasets) == 0 {
		return nil, fmt.Errorf("manifest %s lists no datasets", path)
	}
	seen := map[string]bool{}
	for i, e := range m.Datasets {
		if e.Name == "" {
			return nil, fmt.Errorf("manifest %s: dataset %d has no name", path, i+1)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("manifest %s: duplicate dataset name %q", path, e.Name)
		}
		seen[e.Name] = true
	}
	return &m, nil
}

// Resolve merges an entry over the manifest defaults over the built-in
// configuration, producing the full build config for that dataset.
func (m *Manifest) Resolve(e ManifestEntry) model.Config {
	cfg := model.DefaultConfig()
	mergeConfig(&cfg, m.Defaults)
	if e.Generation != nil {
		cfg.Generation = *e.Generation
	}
	if e.Pool != nil {
		cfg.Pool = *e.Pool
	}
	if e.Split != nil {
		cfg.Split = *e.Split
	}
	if e.Output != nil {
		cfg.Output = *e.Output
	}
	if cfg.Output.DatasetName == "" || cfg.Output.DatasetName == model.DefaultConfig().Output.DatasetName {
		cfg.Output.DatasetName = e.Name
	}
	return cfg
}

// mergeConfig overlays the non-zero sections of src onto dst.
func mergeConfig(dst *model.Config, src model.Config) {
	zero := model.Config{}
	if generationSet(src.Generation) {
		dst.Generation = src.Generation
	}
	if src.Pool != zero.Pool {
		dst.Pool = src.Pool
	}
	if src.Split != zero.Split {
		dst.Split = src.Split
	}
	if src.Output != zero.Output {
		dst.Output = src.Output
	}
}

func generationSet(g model.GenerationConfig) bool {
	return g.Language != "" || g.Complexity != "" || g.Count != 0 ||
		g.Seed != 0 || g.Preset != "" || g.Proportions != nil || g.SharedSentences
}

// BuildJob builds one manifest dataset.
type BuildJob struct {
	Name   string
	Config model.Config
}

// Execute runs the pipeline for this job's configuration.
func (j *BuildJob) Execute(ctx context.Context) Result {
	summary, err := pipeline.Run(ctx, j.Config)
	return &BuildResult{Name: j.Name, Summary: summary, BuildErr: err}
}

// BuildResult is the outcome of one dataset build.
type BuildResult struct {
	Name     string
	Summary  pipeline.Summary
	BuildErr error
}

func (r *BuildResult) Err() error { return r.BuildErr }

// RunManifest builds every dataset in the manifest on a worker pool and
// returns the results sorted by dataset name. Individual failures do not
// stop sibling builds.
func RunManifest(ctx context.Context, m *Manifest, concurrency int) []*BuildResult {
	pool := NewPool(ctx, concurrency)
	pool.Start()

	for _, entry := range m.Datasets {
		pool.Submit(&BuildJob{Name: entry.Name, Config: m.Resolve(entry)})
	}

	raw := pool.Wait()
	results := make([]*BuildResult, 0, len(raw))
	for _, r := range raw {
		results = append(results, r.(*BuildResult))
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })
	return results
}
