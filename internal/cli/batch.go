package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpeirce/logipair/internal/worker"
)

var batchConcurrency int

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <manifest.yaml>",
	Short: "Build multiple datasets from a YAML manifest",
	Long: `Batch reads a manifest describing several datasets and builds them
concurrently on a worker pool. Each manifest entry overrides the manifest
defaults, which override the built-in configuration.

Manifest example:
  defaults:
    pool:
      source: sentences.txt
  datasets:
    - name: en_basic
      generation: {language: en, complexity: basic, count: 100, seed: 11, shared_sentences: true}
      output: {dir: out/en_basic}
    - name: es_mixed
      generation: {language: es, complexity: mixed, count: 100, seed: 12, shared_sentences: true}
      output: {dir: out/es_mixed}`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "number of datasets built in parallel")
}

func runBatch(cmd *cobra.Command, args []string) error {
	manifest, err := worker.LoadManifest(args[0])
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Building %d datasets with concurrency %d\n", len(manifest.Datasets), batchConcurrency)
	}

	results := worker.RunManifest(context.Background(), manifest, batchConcurrency)

	failed := 0
	for _, r := range results {
		if r.Err() != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", r.Name, r.Err())
			continue
		}
		fmt.Printf("OK   %s: %d pairs -> %s (seed %d)\n",
			r.Name, r.Summary.Pairs, r.Summary.OutputDir, r.Summary.Seed)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d builds failed", failed, len(results))
	}
	return nil
}
