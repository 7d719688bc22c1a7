package model

import "time"

// Config is the full configuration tree for dataset generation.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Pool       PoolConfig       `yaml:"pool"`
	Split      SplitRatios      `yaml:"split"`
	Output     OutputConfig     `yaml:"output"`
	Strength   StrengthConfig   `yaml:"strength"`
}

// GenerationConfig controls the pair generator.
type GenerationConfig struct {
	Language        string  `yaml:"language"`         // "en" or "es"
	Complexity      string  `yaml:"complexity"`       // basic, intermediate, advanced, expert, mixed
	SharedSentences bool    `yaml:"shared_sentences"` // both pair members reuse the same sentences
	Count           int     `yaml:"count"`            // number of pairs
	Seed            int64   `yaml:"seed"`             // master seed; 0 means derive from time
	Preset          string  `yaml:"preset,omitempty"` // named rule-proportion preset
	Proportions     map[string]float64 `yaml:"proportions,omitempty"`
}

// PoolConfig controls sentence-pool loading, including remote sources.
type PoolConfig struct {
	Source            string        `yaml:"source"`              // file path, .html file, or http(s) URL
	UserAgent         string        `yaml:"user_agent"`          // UA for remote fetches
	Timeout           time.Duration `yaml:"timeout"`             // fetch timeout
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`      // response read cap
	RequestsPerSecond float64       `yaml:"requests_per_second"` // fetch politeness
	Burst             int           `yaml:"burst"`
	MinSentenceWords  int           `yaml:"min_sentence_words"` // HTML extraction filter
	MaxSentenceWords  int           `yaml:"max_sentence_words"`
}

// OutputConfig controls what gets written and where.
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	DatasetName string `yaml:"dataset_name"`
	WriteText   bool   `yaml:"write_text"` // human-readable .txt alongside JSONL
	WriteCard   bool   `yaml:"write_card"` // README dataset card
	Verbose     bool   `yaml:"verbose"`
}

// StrengthConfig configures the optional strength analyzer. Generation never
// reads this; only the analyze command does.
type StrengthConfig struct {
	Provider          string        `yaml:"provider"` // "heuristic" or "openai"
	Model             string        `yaml:"model"`
	APIKey            string        `yaml:"-"` // from env only, never persisted
	BaseURL           string        `yaml:"base_url,omitempty"`
	MaxTokens         int           `yaml:"max_tokens"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	CacheTTL          time.Duration `yaml:"cache_ttl"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Generation: GenerationConfig{
			Language:        "en",
			Complexity:      "mixed",
			SharedSentences: true,
			Count:           100,
			Seed:            42,
		},
		Pool: PoolConfig{
			UserAgent:         "logipair/0.1 (+https://github.com/mpeirce/logipair)",
			Timeout:           30 * time.Second,
			MaxBodyBytes:      2_000_000,
			RequestsPerSecond: 1,
			Burst:             2,
			MinSentenceWords:  3,
			MaxSentenceWords:  12,
		},
		Split: DefaultSplitRatios(),
		Output: OutputConfig{
			Dir:         "./logipair-dataset",
			DatasetName: "logical_arguments",
			WriteText:   true,
			WriteCard:   true,
		},
		Strength: StrengthConfig{
			Provider:          "heuristic",
			Model:             "gpt-4o-mini",
			MaxTokens:         400,
			Timeout:           30 * time.Second,
			RequestsPerSecond: 2,
			CacheTTL:          time.Hour,
		},
	}
}
