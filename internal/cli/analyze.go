package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mpeirce/logipair/internal/model"
	"github.com/mpeirce/logipair/internal/strength"
)

var (
	analyzeProvider string
	analyzeModel    string
	analyzeJSON     string
)

// questionAnalysis is the per-question block of the analysis report.
type questionAnalysis struct {
	QuestionID int                 `json:"question_id"`
	GoodType   string              `json:"good_argument_type"`
	BadType    string              `json:"bad_argument_type"`
	Valid      strength.Report     `json:"valid"`
	Fallacy    strength.Report     `json:"fallacy"`
	Comparison strength.Comparison `json:"comparison"`
}

// analysisReport is the full analysis output.
type analysisReport struct {
	Provider         string             `json:"provider"`
	Questions        int                `json:"questions"`
	MeanValidScore   float64            `json:"mean_valid_score"`
	MeanFallacyScore float64            `json:"mean_fallacy_score"`
	FallacyWins      int                `json:"fallacy_wins"`
	PerQuestion      []questionAnalysis `json:"per_question,omitempty"`
}

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <dataset-dir|split.jsonl>",
	Short: "Score the strength of arguments in a generated dataset",
	Long: `Analyze scores every argument in a dataset with the configured
strength provider and reports how the valid and fallacious members compare.
A "fallacy win" is a question whose fallacious option scores higher overall,
flagging pairs where surface persuasiveness beats logic.

The heuristic provider is offline and deterministic. The openai provider
needs OPENAI_API_KEY and rate limits its requests.

Example:
  logipair analyze out/en_basic
  logipair analyze out/en_basic/test.jsonl --provider openai --json analysis.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeProvider, "provider", "", "strength provider (heuristic, openai)")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "model name for the openai provider")
	analyzeCmd.Flags().StringVar(&analyzeJSON, "json", "", "write the full per-question report to this path")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if analyzeProvider != "" {
		cfg.Strength.Provider = analyzeProvider
	}
	if analyzeModel != "" {
		cfg.Strength.Model = analyzeModel
	}
	if cfg.Strength.Provider == "openai" {
		cfg.Strength.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	analyzer, err := strength.New(cfg.Strength)
	if err != nil {
		return err
	}

	records, err := readRecords(args[0])
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no records found in %s", args[0])
	}

	ctx := context.Background()
	report := analysisReport{Provider: analyzer.Name(), Questions: len(records)}

	for _, rec := range records {
		validIdx := rec.CorrectAnswer.RandomizedIndex
		valid := model.Argument{
			Text:     rec.TestOptions.Randomized[validIdx],
			RuleType: rec.GoodArgumentType,
			IsValid:  true,
			Language: rec.Language,
		}
		fallacy := model.Argument{
			Text:     rec.TestOptions.Randomized[1-validIdx],
			RuleType: rec.BadArgumentType,
			Language: rec.Language,
		}

		validScore, err := analyzer.Analyze(ctx, valid)
		if err != nil {
			return fmt.Errorf("question %d: %w", rec.QuestionID, err)
		}
		fallacyScore, err := analyzer.Analyze(ctx, fallacy)
		if err != nil {
			return fmt.Errorf("question %d: %w", rec.QuestionID, err)
		}

		comparison := strength.Compare(validScore, fallacyScore)
		if comparison.Stronger == 2 {
			report.FallacyWins++
		}
		report.MeanValidScore += validScore.Overall
		report.MeanFallacyScore += fallacyScore.Overall
		report.PerQuestion = append(report.PerQuestion, questionAnalysis{
			QuestionID: rec.QuestionID,
			GoodType:   rec.GoodArgumentType,
			BadType:    rec.BadArgumentType,
			Valid:      validScore,
			Fallacy:    fallacyScore,
			Comparison: comparison,
		})
	}
	report.MeanValidScore /= float64(len(records))
	report.MeanFallacyScore /= float64(len(records))

	fmt.Printf("Analyzed %d questions with provider %s\n", report.Questions, report.Provider)
	fmt.Printf("  mean overall: valid %.3f, fallacy %.3f\n", report.MeanValidScore, report.MeanFallacyScore)
	fmt.Printf("  fallacy wins: %d\n", report.FallacyWins)

	if analyzeJSON != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal analysis: %w", err)
		}
		if err := os.WriteFile(analyzeJSON, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write analysis: %w", err)
		}
		fmt.Printf("Full report written to %s\n", analyzeJSON)
	}
	return nil
}

// readRecords loads dataset records from one JSONL file or from every
// split file in a dataset directory.
func readRecords(path string) ([]model.DatasetRecord, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		files = nil
		for _, name := range []string{"train.jsonl", "validation.jsonl", "test.jsonl"} {
			p := filepath.Join(path, name)
			if _, err := os.Stat(p); err == nil {
				files = append(files, p)
			}
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("%s contains no split files", path)
		}
	}

	var records []model.DatasetRecord
	for _, f := range files {
		part, err := readJSONL(f)
		if err != nil {
			return nil, err
		}
		records = append(records, part...)
	}
	return records, nil
}

func readJSONL(path string) ([]model.DatasetRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var records []model.DatasetRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var rec model.DatasetRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}
