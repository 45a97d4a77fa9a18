package stat

import (
	"github.com/revelaction/gazealign/feature"
)

type Handler struct {
	stats Stats

	distanceSum int
	depthSum    int
	numWords    int
}

type Stats struct {
	NumAOI     int
	NumMatched int
	NumPunct   int

	Coverage float64

	DistanceMean float64
	DepthMean    float64
	DistanceDis  map[int]int
	DepthDis     map[int]int
}

func NewHandler() *Handler {
	stats := Stats{DistanceDis: map[int]int{}, DepthDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate accumulates feature rows of one doc. Punctuation and unmatched
// rows count towards coverage but are excluded from the metric
// distributions.
func (h *Handler) Aggregate(rows []feature.Row) {
	for _, row := range rows {
		h.stats.NumAOI++

		if row.Matched {
			h.stats.NumMatched++
		}

		if row.IsPunct {
			h.stats.NumPunct++
			continue
		}

		if !row.Matched {
			continue
		}

		h.stats.DistanceDis[row.Distance]++
		h.stats.DepthDis[row.Depth]++
		h.distanceSum += row.Distance
		h.depthSum += row.Depth
		h.numWords++
	}
}

func (h *Handler) Get() Stats {
	stats := h.stats

	if stats.NumAOI > 0 {
		stats.Coverage = float64(stats.NumMatched) / float64(stats.NumAOI)
	}

	if h.numWords > 0 {
		stats.DistanceMean = float64(h.distanceSum) / float64(h.numWords)
		stats.DepthMean = float64(h.depthSum) / float64(h.numWords)
	}

	return stats
}
