package model

import "errors"

// Generation errors are configuration or input defects. They are detected
// synchronously at the point of use and never retried: a deterministic
// defect cannot succeed on a second attempt.
var (
	// ErrUnknownRule indicates a rule name outside the 11-rule catalog.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrEmptyPool indicates a sentence source that yielded zero usable sentences.
	ErrEmptyPool = errors.New("sentence pool is empty")

	// ErrInsufficientSentences indicates a distinct draw larger than the pool.
	ErrInsufficientSentences = errors.New("not enough sentences in pool")

	// ErrUnsupportedCombination indicates a language has no coverage for a
	// rule category at the requested complexity level.
	ErrUnsupportedCombination = errors.New("unsupported category/complexity combination")

	// ErrBindingArity indicates the bound sentence count does not match the
	// rule's required sentence count.
	ErrBindingArity = errors.New("sentence count does not match rule arity")

	// ErrInvalidProportions indicates rule proportions that do not sum to 1.0.
	ErrInvalidProportions = errors.New("rule proportions must sum to 1.0")

	// ErrInvalidSplitRatios indicates split ratios that do not sum to 1.0.
	ErrInvalidSplitRatios = errors.New("split ratios must sum to 1.0")

	// ErrUnsupportedLanguage indicates a language code with no pattern bank.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)
