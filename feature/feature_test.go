package feature

import (
	"testing"

	"github.com/revelaction/gazealign/align"
	sent "github.com/revelaction/gazealign/sentence"
)

// helloWorldDoc builds "Hello, world!" with "Hello" as ROOT and the other
// tokens attached to it.
func helloWorldDoc() sent.Doc {
	return sent.Doc{
		Id: 7,
		Sentences: []sent.Sentence{
			{
				Id: 0,
				Tokens: []sent.Token{
					{Id: 0, Head: 0, SentenceId: 0, Pos: "INTJ", Text: "Hello", Index: 0},
					{Id: 1, Head: 0, SentenceId: 0, Pos: "PUNCT", Text: ",", Index: 1},
					{Id: 2, Head: 0, SentenceId: 0, Pos: "NOUN", Text: "world", Index: 2},
					{Id: 3, Head: 0, SentenceId: 0, Pos: "PUNCT", Text: "!", Index: 3},
				},
			},
		},
	}
}

func TestExtract(t *testing.T) {
	doc := helloWorldDoc()
	aoi := []string{"Hello", ",", "world", "!"}

	rows := Extract(doc, aoi, align.DefaultMaxWindow)
	if len(rows) != 4 {
		t.Fatalf("Extract() returned %d rows, want 4", len(rows))
	}

	for i, row := range rows {
		if !row.Matched {
			t.Errorf("row %d (%q) not matched", i, row.AOI)
		}
		if row.DocId != 7 {
			t.Errorf("row %d doc id = %d, want 7", i, row.DocId)
		}
	}

	world := rows[2]
	if world.Distance != 2 || world.Depth != 1 {
		t.Errorf("world metrics = (%d, %d), want (2, 1)", world.Distance, world.Depth)
	}
}

func TestExtractZeroesPunctuation(t *testing.T) {
	doc := helloWorldDoc()
	aoi := []string{"Hello", ",", "world", "!"}

	rows := Extract(doc, aoi, align.DefaultMaxWindow)

	comma := rows[1]
	if !comma.IsPunct {
		t.Fatal("comma not classified as punctuation")
	}
	if comma.Distance != 0 || comma.Depth != 0 {
		t.Errorf("comma metrics = (%d, %d), want (0, 0)", comma.Distance, comma.Depth)
	}
}

func TestExtractUnmatched(t *testing.T) {
	doc := helloWorldDoc()
	aoi := []string{"Hello", "unseen", "world"}

	rows := Extract(doc, aoi, align.DefaultMaxWindow)

	if rows[1].Matched || rows[1].TokenIndex != align.NoMatch {
		t.Errorf("unseen AOI row = %+v, want unmatched", rows[1])
	}
	if rows[1].Distance != 0 || rows[1].Depth != 0 {
		t.Errorf("unmatched metrics = (%d, %d), want (0, 0)", rows[1].Distance, rows[1].Depth)
	}

	if c := Coverage(rows); c < 0.66 || c > 0.67 {
		t.Errorf("Coverage() = %v, want 2/3", c)
	}
}

func TestExtractEmpty(t *testing.T) {
	rows := Extract(sent.Doc{}, nil, align.DefaultMaxWindow)
	if len(rows) != 0 {
		t.Fatalf("Extract() on empty inputs returned %d rows, want 0", len(rows))
	}
	if c := Coverage(rows); c != 0 {
		t.Errorf("Coverage() on empty = %v, want 0", c)
	}
}
