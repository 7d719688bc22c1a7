package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mpeirce/logipair/internal/model"
)

func testConfig(t *testing.T) model.Config {
	t.Helper()
	var b strings.Builder
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&b, "circuit %d carries current\n", i)
	}
	source := filepath.Join(t.TempDir(), "sentences.txt")
	if err := os.WriteFile(source, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write sentences: %v", err)
	}

	cfg := model.DefaultConfig()
	cfg.Generation.Count = 10
	cfg.Generation.Complexity = "basic"
	cfg.Pool.Source = source
	cfg.Output.Dir = t.TempDir()
	cfg.Output.WriteText = false
	cfg.Output.WriteCard = false
	return cfg
}

func TestRun_EndToEnd(t *testing.T) {
	cfg := testConfig(t)

	summary, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Pairs != 10 || summary.Seed != cfg.Generation.Seed {
		t.Errorf("summary %+v", summary)
	}
	if summary.SplitSizes["train"] != 8 {
		t.Errorf("split sizes %v", summary.SplitSizes)
	}
	if _, err := os.Stat(filepath.Join(cfg.Output.Dir, "train.jsonl")); err != nil {
		t.Errorf("missing train.jsonl: %v", err)
	}
}

func TestRun_PresetProportions(t *testing.T) {
	cfg := testConfig(t)
	cfg.Generation.Preset = "conditional_heavy"

	if _, err := Run(context.Background(), cfg); err != nil {
		t.Fatalf("Run with preset: %v", err)
	}

	cfg.Generation.Preset = "no_such_preset"
	if _, err := Run(context.Background(), cfg); err == nil {
		t.Error("unknown preset accepted")
	}
}

func TestRun_ZeroSeedReplaced(t *testing.T) {
	cfg := testConfig(t)
	cfg.Generation.Seed = 0

	summary, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Seed == 0 {
		t.Error("zero seed not replaced")
	}
}

func TestRun_UnsupportedLanguage(t *testing.T) {
	cfg := testConfig(t)
	cfg.Generation.Language = "fr"

	if _, err := Run(context.Background(), cfg); !errors.Is(err, model.ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
}

func TestRun_MissingSource(t *testing.T) {
	cfg := testConfig(t)
	cfg.Pool.Source = filepath.Join(t.TempDir(), "absent.txt")

	if _, err := Run(context.Background(), cfg); err == nil {
		t.Error("missing source accepted")
	}
}
