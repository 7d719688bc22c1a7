package model

// Split names a dataset partition.
type Split string

const (
	SplitTrain      Split = "train"
	SplitValidation Split = "validation"
	SplitTest       Split = "test"
)

// TestOptions holds the two answer options in both presentation orders.
// Original is the seeded base order; Randomized is an independent seeded
// permutation of it. Mapping records, for each original index, its position
// in Randomized.
type TestOptions struct {
	Original   [2]string      `json:"original"`
	Randomized [2]string      `json:"randomized"`
	Mapping    map[string]int `json:"mapping"`
}

// CorrectAnswer locates the valid argument's text in both orders.
type CorrectAnswer struct {
	OriginalIndex   int `json:"original_index"`
	RandomizedIndex int `json:"randomized_index"`
}

// DatasetRecord is one paired comparison question. The invariant
// Original[OriginalIndex] == Randomized[RandomizedIndex] == the valid text
// must hold for every record.
type DatasetRecord struct {
	QuestionID       int           `json:"question_id"` // 1-based over output order
	TestOptions      TestOptions   `json:"test_options"`
	CorrectAnswer    CorrectAnswer `json:"correct_answer"`
	RandomizationSeed int64        `json:"randomization_seed"`
	GoodArgumentType string        `json:"good_argument_type"`
	BadArgumentType  string        `json:"bad_argument_type"`
	Language         string        `json:"language"`
	Complexity       string        `json:"complexity"`
	Split            Split         `json:"split"`
}

// SplitRatios configures the train/validation/test cut.
type SplitRatios struct {
	Train      float64 `json:"train" yaml:"train"`
	Validation float64 `json:"validation" yaml:"validation"`
	Test       float64 `json:"test" yaml:"test"`
}

// DefaultSplitRatios returns the standard 80/10/10 cut.
func DefaultSplitRatios() SplitRatios {
	return SplitRatios{Train: 0.8, Validation: 0.1, Test: 0.1}
}

// Sum returns the ratio total; valid ratios sum to 1.0 within tolerance.
func (r SplitRatios) Sum() float64 {
	return r.Train + r.Validation + r.Test
}
