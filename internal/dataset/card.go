package dataset

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// cardMeta is the YAML front matter of the dataset card, shaped the way
// dataset hubs expect it.
type cardMeta struct {
	Configs        []cardConfig `yaml:"configs"`
	TaskCategories []string     `yaml:"task_categories"`
	Language       []string     `yaml:"language"`
	Tags           []string     `yaml:"tags"`
	SizeCategories []string     `yaml:"size_categories"`
	License        string       `yaml:"license"`
}

type cardConfig struct {
	ConfigName string         `yaml:"config_name"`
	DataFiles  []cardDataFile `yaml:"data_files"`
	Default    bool           `yaml:"default"`
}

type cardDataFile struct {
	Split string `yaml:"split"`
	Path  string `yaml:"path"`
}

// RenderCard builds the README dataset card: YAML front matter followed by a
// markdown description of the task, schema and splits.
func RenderCard(info Info) (string, error) {
	splits := make([]string, 0, len(info.SplitSizes))
	for split := range info.SplitSizes {
		splits = append(splits, split)
	}
	sort.Strings(splits)

	files := make([]cardDataFile, 0, len(splits))
	for _, split := range splits {
		files = append(files, cardDataFile{Split: split, Path: split + ".jsonl"})
	}

	meta := cardMeta{
		Configs: []cardConfig{{
			ConfigName: "default",
			DataFiles:  files,
			Default:    true,
		}},
		TaskCategories: []string{"question-answering", "text-classification"},
		Language:       []string{info.Language},
		Tags: []string{
			"logical-reasoning",
			"argument-evaluation",
			"critical-thinking",
			"logic",
		},
		SizeCategories: []string{sizeCategory(info.TotalQuestions)},
		License:        "mit",
	}

	front, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal card metadata: %w", err)
	}

	ruleNames := make([]string, 0, len(info.RuleDistribution))
	for name := range info.RuleDistribution {
		ruleNames = append(ruleNames, name)
	}
	sort.Strings(ruleNames)

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(front)
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "# %s\n\n", titleize(info.Name))
	b.WriteString("## Dataset Summary\n\n")
	b.WriteString("Pairs of logical arguments for evaluating reasoning. Each question presents two arguments built from the same inference rule, one valid and one committing the rule's characteristic fallacy; the task is to identify the logically stronger argument.\n\n")

	b.WriteString("## Dataset Structure\n\n")
	b.WriteString("Each record carries the two options in both a base and a shuffled presentation order, the index of the valid argument in each order, the per-question randomization seed, and the valid/fallacious rule names.\n\n")

	b.WriteString("### Splits\n\n")
	b.WriteString("| Split | Questions |\n|---|---|\n")
	for _, split := range splits {
		fmt.Fprintf(&b, "| %s | %d |\n", split, info.SplitSizes[split])
	}
	b.WriteString("\n")

	b.WriteString("### Inference Rules\n\n")
	for _, name := range ruleNames {
		fmt.Fprintf(&b, "- %s (%d questions)\n", name, info.RuleDistribution[name])
	}
	b.WriteString("\n")

	b.WriteString("## Generation\n\n")
	fmt.Fprintf(&b, "Generated deterministically with seed %d, language `%s`, complexity `%s`.\n", info.Seed, info.Language, info.Complexity)

	return b.String(), nil
}

func sizeCategory(n int) string {
	switch {
	case n < 1000:
		return "n<1K"
	case n < 10000:
		return "1K<n<10K"
	case n < 100000:
		return "10K<n<100K"
	default:
		return "n>100K"
	}
}

func titleize(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
