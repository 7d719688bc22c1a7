// Package dataset turns generated argument pairs into paired-comparison
// records and writes them out as split files plus dataset metadata.
package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/mpeirce/logipair/internal/model"
)

const ratioTolerance = 0.001

// Assemble converts pairs into records. Each record gets its own sub-seed
// derived from the master seed and the pair's position, so any single
// question can be re-derived without regenerating the whole dataset. The
// base order of the two options is a seeded coin flip and the randomized
// order is an independent seeded permutation; neither ever places the valid
// argument at a fixed index.
func Assemble(pairs []model.ArgumentPair, seed int64, ratios model.SplitRatios) ([]model.DatasetRecord, error) {
	if math.Abs(ratios.Sum()-1.0) > ratioTolerance {
		return nil, fmt.Errorf("split ratios sum to %.4f: %w", ratios.Sum(), model.ErrInvalidSplitRatios)
	}

	splits := splitPlan(len(pairs), ratios)

	records := make([]model.DatasetRecord, 0, len(pairs))
	for i, pair := range pairs {
		subSeed := seed + int64(i)
		rng := rand.New(rand.NewSource(subSeed))

		var original [2]string
		originalIndex := rng.Intn(2)
		original[originalIndex] = pair.Valid.Text
		original[1-originalIndex] = pair.Invalid.Text

		perm := rng.Perm(2)
		var randomized [2]string
		mapping := make(map[string]int, 2)
		for from, to := range perm {
			randomized[to] = original[from]
			mapping[strconv.Itoa(from)] = to
		}

		records = append(records, model.DatasetRecord{
			QuestionID: i + 1,
			TestOptions: model.TestOptions{
				Original:   original,
				Randomized: randomized,
				Mapping:    mapping,
			},
			CorrectAnswer: model.CorrectAnswer{
				OriginalIndex:   originalIndex,
				RandomizedIndex: perm[originalIndex],
			},
			RandomizationSeed: subSeed,
			GoodArgumentType:  pair.GoodRule,
			BadArgumentType:   pair.BadRule,
			Language:          pair.Valid.Language,
			Complexity:        pair.Valid.Complexity,
			Split:             splits[i],
		})
	}
	return records, nil
}

// splitPlan assigns a split to each position: floored train and validation
// counts, remainder to test, contiguous in input order.
func splitPlan(n int, ratios model.SplitRatios) []model.Split {
	train := int(math.Floor(float64(n) * ratios.Train))
	validation := int(math.Floor(float64(n) * ratios.Validation))

	out := make([]model.Split, n)
	for i := range out {
		switch {
		case i < train:
			out[i] = model.SplitTrain
		case i < train+validation:
			out[i] = model.SplitValidation
		default:
			out[i] = model.SplitTest
		}
	}
	return out
}

// BySplit groups records preserving order within each split.
func BySplit(records []model.DatasetRecord) map[model.Split][]model.DatasetRecord {
	out := make(map[model.Split][]model.DatasetRecord, 3)
	for _, r := range records {
		out[r.Split] = append(out[r.Split], r)
	}
	return out
}
