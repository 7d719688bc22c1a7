package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mpeirce/logipair/internal/model"
)

// Info is the dataset-level metadata written to dataset_info.json.
type Info struct {
	Name             string         `json:"dataset_name"`
	Language         string         `json:"language"`
	Complexity       string         `json:"complexity"`
	Seed             int64          `json:"seed"`
	SharedSentences  bool           `json:"shared_sentences"`
	TotalQuestions   int            `json:"total_questions"`
	SplitSizes       map[string]int `json:"split_sizes"`
	RuleDistribution map[string]int `json:"rule_distribution"`
	CreatedAt        string         `json:"created_at"`
}

// BuildInfo derives the metadata block from the assembled records.
func BuildInfo(records []model.DatasetRecord, cfg model.GenerationConfig, name string) Info {
	info := Info{
		Name:             name,
		Language:         cfg.Language,
		Complexity:       cfg.Complexity,
		Seed:             cfg.Seed,
		SharedSentences:  cfg.SharedSentences,
		TotalQuestions:   len(records),
		SplitSizes:       make(map[string]int, 3),
		RuleDistribution: make(map[string]int),
		CreatedAt:        time.Now().UTC().Format(time.RFC3339),
	}
	for _, r := range records {
		info.SplitSizes[string(r.Split)]++
		info.RuleDistribution[r.GoodArgumentType]++
	}
	return info
}

// Writer persists an assembled dataset into one output directory.
type Writer struct {
	dir       string
	writeText bool
	writeCard bool
}

// NewWriter configures a writer from the output settings.
func NewWriter(cfg model.OutputConfig) *Writer {
	return &Writer{
		dir:       cfg.Dir,
		writeText: cfg.WriteText,
		writeCard: cfg.WriteCard,
	}
}

// Write emits per-split JSONL files, optional human-readable text renditions,
// dataset_info.json and an optional README dataset card.
func (w *Writer) Write(records []model.DatasetRecord, info Info) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	grouped := BySplit(records)
	for _, split := range []model.Split{model.SplitTrain, model.SplitValidation, model.SplitTest} {
		part := grouped[split]
		if len(part) == 0 {
			continue
		}
		if err := w.writeJSONL(string(split)+".jsonl", part); err != nil {
			return err
		}
		if w.writeText {
			if err := w.writeReadable(string(split)+".txt", part); err != nil {
				return err
			}
		}
	}

	if err := w.writeJSON("dataset_info.json", info); err != nil {
		return err
	}
	if w.writeCard {
		card, err := RenderCard(info)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(w.dir, "README.md"), []byte(card), 0o644); err != nil {
			return fmt.Errorf("write dataset card: %w", err)
		}
	}
	return nil
}

func (w *Writer) writeJSONL(name string, records []model.DatasetRecord) error {
	f, err := os.Create(filepath.Join(w.dir, name))
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode question %d: %w", r.QuestionID, err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}

func (w *Writer) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(w.dir, name), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// writeReadable renders a split in the plain-text review format: one block
// per question with lettered options and the correct letter.
func (w *Writer) writeReadable(name string, records []model.DatasetRecord) error {
	var b strings.Builder
	for _, r := range records {
		fmt.Fprintf(&b, "Question %d\n", r.QuestionID)
		fmt.Fprintf(&b, "Option A: %s\n", r.TestOptions.Randomized[0])
		fmt.Fprintf(&b, "Option B: %s\n", r.TestOptions.Randomized[1])
		fmt.Fprintf(&b, "Correct Answer: %s\n", optionLetter(r.CorrectAnswer.RandomizedIndex))
		fmt.Fprintf(&b, "Good Argument Type: %s\n", r.GoodArgumentType)
		fmt.Fprintf(&b, "Bad Argument Type: %s\n\n", r.BadArgumentType)
	}
	if err := os.WriteFile(filepath.Join(w.dir, name), []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func optionLetter(index int) string {
	return string(rune('A' + index))
}
