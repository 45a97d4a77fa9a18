package stat

import (
	"testing"

	"github.com/revelaction/gazealign/align"
	"github.com/revelaction/gazealign/feature"
)

func TestAggregate(t *testing.T) {
	rows := []feature.Row{
		{AOI: "Hello", TokenIndex: 0, Matched: true, Distance: 0, Depth: 0},
		{AOI: ",", TokenIndex: 1, Matched: true, IsPunct: true},
		{AOI: "world", TokenIndex: 2, Matched: true, Distance: 2, Depth: 1},
		{AOI: "unseen", TokenIndex: align.NoMatch},
	}

	h := NewHandler()
	h.Aggregate(rows)
	stats := h.Get()

	if stats.NumAOI != 4 {
		t.Errorf("NumAOI = %d, want 4", stats.NumAOI)
	}
	if stats.NumMatched != 3 {
		t.Errorf("NumMatched = %d, want 3", stats.NumMatched)
	}
	if stats.NumPunct != 1 {
		t.Errorf("NumPunct = %d, want 1", stats.NumPunct)
	}
	if stats.Coverage != 0.75 {
		t.Errorf("Coverage = %v, want 0.75", stats.Coverage)
	}
	if stats.DistanceMean != 1.0 {
		t.Errorf("DistanceMean = %v, want 1.0", stats.DistanceMean)
	}
	if stats.DepthMean != 0.5 {
		t.Errorf("DepthMean = %v, want 0.5", stats.DepthMean)
	}
	if stats.DistanceDis[2] != 1 || stats.DepthDis[1] != 1 {
		t.Errorf("distributions = %v / %v", stats.DistanceDis, stats.DepthDis)
	}
}

func TestAggregateAcrossDocs(t *testing.T) {
	h := NewHandler()
	h.Aggregate([]feature.Row{{AOI: "a", Matched: true, Distance: 1, Depth: 1}})
	h.Aggregate([]feature.Row{{AOI: "b", Matched: true, Distance: 3, Depth: 1}})

	stats := h.Get()
	if stats.NumAOI != 2 {
		t.Errorf("NumAOI = %d, want 2", stats.NumAOI)
	}
	if stats.DistanceMean != 2.0 {
		t.Errorf("DistanceMean = %v, want 2.0", stats.DistanceMean)
	}
}

func TestGetEmpty(t *testing.T) {
	stats := NewHandler().Get()
	if stats.Coverage != 0 || stats.DistanceMean != 0 || stats.DepthMean != 0 {
		t.Errorf("empty stats not zero: %+v", stats)
	}
}
