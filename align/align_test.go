package align

import (
	"reflect"
	"testing"
)

func TestAlignContractionsAndHyphens(t *testing.T) {
	aoi := []string{"He", "won't", "re-enter", "the", "well-known", "room", "."}
	doc := []string{"He", "wo", "n't", "re", "-", "enter", "the", "well", "-", "known", "room", "."}

	got := Align(aoi, doc, 4)
	want := []int{0, 1, 3, 6, 7, 10, 11}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Align() = %v, want %v", got, want)
	}

	if c := Coverage(got); c != 1.0 {
		t.Errorf("Coverage() = %v, want 1.0", c)
	}
}

func TestAlignAttachedPunctuation(t *testing.T) {
	// AOI keeps the period attached, the parser splits it off. The loose
	// pass drops the period on both sides, so "room." matches "room" with
	// window 1 and the standalone "." then matches literally.
	aoi := []string{"the", "room.", "."}
	doc := []string{"the", "room", ".", "."}

	got := Align(aoi, doc, 4)
	want := []int{0, 1, 2}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Align() = %v, want %v", got, want)
	}
}

func TestAlignMonotonic(t *testing.T) {
	aoi := []string{"a", "b-c", "d", "zz", "e"}
	doc := []string{"a", "b", "-", "c", "d", "e"}

	got := Align(aoi, doc, 4)

	prev := -1
	for i, idx := range got {
		if idx == NoMatch {
			continue
		}
		if idx <= prev {
			t.Fatalf("matched index %d at position %d not strictly increasing (prev %d), mapping %v", idx, i, prev, got)
		}
		prev = idx
	}
}

func TestAlignSameLengthAsAOI(t *testing.T) {
	cases := []struct {
		aoi []string
		doc []string
	}{
		{nil, nil},
		{[]string{"test"}, nil},
		{nil, []string{"test"}},
		{[]string{"a", "b", "c"}, []string{"x"}},
	}

	for _, c := range cases {
		got := Align(c.aoi, c.doc, 4)
		if len(got) != len(c.aoi) {
			t.Errorf("Align(%v, %v) length %d, want %d", c.aoi, c.doc, len(got), len(c.aoi))
		}
	}
}

func TestAlignEmptyInputs(t *testing.T) {
	if got := Align(nil, nil, 4); len(got) != 0 {
		t.Errorf("empty inputs: got %v, want empty", got)
	}

	got := Align([]string{"test"}, nil, 4)
	if len(got) != 1 || got[0] != NoMatch {
		t.Errorf("empty doc tokens: got %v, want [NoMatch]", got)
	}
}

func TestAlignNoMatchAdvancesCursor(t *testing.T) {
	// "xyz" never matches; the cursor must still advance past "extra" so
	// "world" can align at index 2.
	aoi := []string{"hello", "xyz", "world"}
	doc := []string{"hello", "extra", "world"}

	got := Align(aoi, doc, 4)
	want := []int{0, NoMatch, 2}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Align() = %v, want %v", got, want)
	}
}

func TestAlignSmallestWindowWins(t *testing.T) {
	// "aa" could be rebuilt from "aa" (w=1) or would over-consume with a
	// larger window; the shortest reconstruction must win.
	aoi := []string{"aa", "aa"}
	doc := []string{"aa", "aa"}

	got := Align(aoi, doc, 4)
	want := []int{0, 1}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Align() = %v, want %v", got, want)
	}
}

func TestAlignStrictPassFallback(t *testing.T) {
	// The parser dropped the apostrophe, so the loose forms differ
	// ("won't" vs "wont") and only the strict pass can match.
	aoi := []string{"won't", "stop"}
	doc := []string{"wont", "stop"}

	got := Align(aoi, doc, 4)
	want := []int{0, 1}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Align() = %v, want %v", got, want)
	}
}

func TestAlignCaseInsensitive(t *testing.T) {
	aoi := []string{"HELLO", "World"}
	doc := []string{"hello", "world"}

	got := Align(aoi, doc, 4)
	want := []int{0, 1}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Align() = %v, want %v", got, want)
	}
}

func TestAlignWindowCapped(t *testing.T) {
	// With maxWindow=1 the three-token compound cannot be rebuilt.
	aoi := []string{"well-known"}
	doc := []string{"well", "-", "known"}

	got := Align(aoi, doc, 1)
	if got[0] != NoMatch {
		t.Fatalf("Align() = %v, want [NoMatch]", got)
	}

	got = Align(aoi, doc, 3)
	if got[0] != 0 {
		t.Fatalf("Align() = %v, want [0]", got)
	}
}

func TestCoverage(t *testing.T) {
	cases := []struct {
		mapping []int
		want    float64
	}{
		{nil, 0},
		{[]int{0, 1, 2}, 1.0},
		{[]int{0, NoMatch, 2, NoMatch}, 0.5},
		{[]int{NoMatch}, 0},
	}

	for _, c := range cases {
		if got := Coverage(c.mapping); got != c.want {
			t.Errorf("Coverage(%v) = %v, want %v", c.mapping, got, c.want)
		}
	}
}
