package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpeirce/logipair/internal/pipeline"
)

var (
	genLanguage   string
	genComplexity string
	genCount      int
	genSeed       int64
	genSeparate   bool
	genPreset     string
	genSource     string
	genOut        string
	genName       string
	genTrain      float64
	genValidation float64
	genTest       float64
	genNoText     bool
	genNoCard     bool
	genUserAgent  string
	genTimeout    time.Duration
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a paired argument dataset",
	Long: `Generate builds a complete paired-comparison dataset:
- Loads the sentence pool (text file, HTML file, or URL)
- Generates valid/fallacious argument pairs per inference rule
- Shuffles option order per question with a derived sub-seed
- Writes train/validation/test JSONL splits plus dataset metadata

Example:
  logipair generate --source sentences.txt --count 200 --seed 42
  logipair generate --source https://example.com/article --language es
  logipair generate --source sentences.txt --preset conditional_heavy`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	// Generation flags
	generateCmd.Flags().StringVar(&genLanguage, "language", "", "language code (en, es)")
	generateCmd.Flags().StringVar(&genComplexity, "complexity", "", "complexity level (basic, intermediate, advanced, expert, mixed)")
	generateCmd.Flags().IntVar(&genCount, "count", 0, "number of argument pairs")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "master seed (0 = derive from time)")
	generateCmd.Flags().BoolVar(&genSeparate, "separate-sentences", false, "draw fresh sentences for the fallacious member")
	generateCmd.Flags().StringVar(&genPreset, "preset", "", "named rule-proportion preset")

	// Pool flags
	generateCmd.Flags().StringVar(&genSource, "source", "", "sentence source: file, .html file, or http(s) URL")
	generateCmd.Flags().StringVar(&genUserAgent, "ua", "", "HTTP User-Agent for remote sources")
	generateCmd.Flags().DurationVar(&genTimeout, "timeout", 0, "fetch timeout for remote sources")

	// Output flags
	generateCmd.Flags().StringVar(&genOut, "out", "", "output directory")
	generateCmd.Flags().StringVar(&genName, "name", "", "dataset name")
	generateCmd.Flags().Float64Var(&genTrain, "train", 0, "train split ratio")
	generateCmd.Flags().Float64Var(&genValidation, "validation", 0, "validation split ratio")
	generateCmd.Flags().Float64Var(&genTest, "test", 0, "test split ratio")
	generateCmd.Flags().BoolVar(&genNoText, "no-text", false, "skip human-readable .txt renditions")
	generateCmd.Flags().BoolVar(&genNoCard, "no-card", false, "skip the README dataset card")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	if genLanguage != "" {
		cfg.Generation.Language = genLanguage
	}
	if genComplexity != "" {
		cfg.Generation.Complexity = genComplexity
	}
	if genCount > 0 {
		cfg.Generation.Count = genCount
	}
	if cmd.Flags().Changed("seed") {
		cfg.Generation.Seed = genSeed
	}
	if genSeparate {
		cfg.Generation.SharedSentences = false
	}
	if genPreset != "" {
		cfg.Generation.Preset = genPreset
	}
	if genSource != "" {
		cfg.Pool.Source = genSource
	}
	if genUserAgent != "" {
		cfg.Pool.UserAgent = genUserAgent
	}
	if genTimeout > 0 {
		cfg.Pool.Timeout = genTimeout
	}
	if genOut != "" {
		cfg.Output.Dir = genOut
	}
	if genName != "" {
		cfg.Output.DatasetName = genName
	}
	if cmd.Flags().Changed("train") {
		cfg.Split.Train = genTrain
	}
	if cmd.Flags().Changed("validation") {
		cfg.Split.Validation = genValidation
	}
	if cmd.Flags().Changed("test") {
		cfg.Split.Test = genTest
	}
	if genNoText {
		cfg.Output.WriteText = false
	}
	if genNoCard {
		cfg.Output.WriteCard = false
	}

	if cfg.Pool.Source == "" {
		return fmt.Errorf("no sentence source: pass --source or set pool.source in the config file")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Language: %s\n", cfg.Generation.Language)
		fmt.Fprintf(os.Stderr, "Complexity: %s\n", cfg.Generation.Complexity)
		fmt.Fprintf(os.Stderr, "Pairs: %d\n", cfg.Generation.Count)
		fmt.Fprintln(os.Stderr)
	}

	summary, err := pipeline.Run(context.Background(), cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Dataset %s written to %s\n", summary.DatasetName, summary.OutputDir)
	fmt.Printf("  language: %s  seed: %d  pool: %d sentences\n", summary.Language, summary.Seed, summary.PoolSize)
	fmt.Printf("  pairs: %d  (train %d / validation %d / test %d)\n",
		summary.Pairs, summary.SplitSizes["train"], summary.SplitSizes["validation"], summary.SplitSizes["test"])
	return nil
}
