// internal/ranking/ranking.go
// Package ranking orders models for display.
package ranking

import (
	"math"
	"sort"

	"github.com/mwiater/longctx/internal/dataset"
)

// missingScore ranks below every recorded score, including 0.
var missingScore = math.Inf(-1)

// ByPerformance orders models by their score at ref, highest first.
// Models without a score at ref sort after every scored model. Ties keep
// their input order. With no reference point the input order is returned.
func ByPerformance(models []string, ref *dataset.DataPoint) []string {
	out := append([]string(nil), models...)
	if ref == nil {
		return out
	}

	scores := make(map[string]float64, len(out))
	for _, model := range out {
		if score, ok := ref.Score(model); ok {
			scores[model] = score
		} else {
			scores[model] = missingScore
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return scores[out[i]] > scores[out[j]]
	})
	return out
}

// ByLatest ranks models by the dataset's largest window.
func ByLatest(models []string, ds *dataset.Dataset) []string {
	ref, _ := ds.Last()
	return ByPerformance(models, ref)
}

// ByTopModelOrder orders models by their position in the curated top list.
// Models missing from the list keep their relative order after every listed model.
func ByTopModelOrder(models []string, order map[string]int) []string {
	out := append([]string(nil), models...)
	position := func(model string) int {
		if idx, ok := order[model]; ok {
			return idx
		}
		return math.MaxInt
	}
	sort.SliceStable(out, func(i, j int) bool {
		return position(out[i]) < position(out[j])
	})
	return out
}
