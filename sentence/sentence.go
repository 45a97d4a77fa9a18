package sentence

import (
	"encoding/json"
	"strings"
	"unicode"
)

// Doc is one parsed text: the sentences produced by an external parser
// (spacy, stanza) and exported as JSON.
type Doc struct {
	Id int

	Title string

	Labels    []string
	Sentences []Sentence `json:"sentences"`
}

// Sentence is one parser sentence: a dependency tree whose ROOT token
// owns itself (Head == Id).
type Sentence struct {
	Id     int     `json:"id"`
	DocId  int     `json:"doc"`
	Tokens []Token `json:"tokens"`
}

// Library is a collection of Doc
type Library []Doc

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	Id         int    `json:"id"`
	Head       int    `json:"head"`
	SentenceId int    `json:"sent"`
	Pos        string `json:"pos"`
	Dep        string `json:"dep"`

	// A string containing detailed POS data
	Tag string `json:"tag"`

	// the index of the start character of the token in the original doc (set by spacy, stanza)
	Idx int `json:"idx"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`
}

// IsRoot reports whether the token is the ROOT of its sentence.
// The parser export encodes ROOT as a self-owned token.
func (t Token) IsRoot() bool {
	return t.Head == t.Id
}

// IsPunct reports whether the token counts as punctuation for feature
// exclusion: the parser tagged it PUNCT, or the surface form consists
// entirely of punctuation or symbol runes.
func (t Token) IsPunct() bool {
	if t.Pos == "PUNCT" {
		return true
	}

	surface := strings.TrimSpace(t.Text)
	if surface == "" {
		return false
	}

	for _, r := range surface {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}

	return true
}

// Flatten returns the doc tokens in reading order, across all sentences.
func (d Doc) Flatten() []Token {
	var tokens []Token
	for _, s := range d.Sentences {
		tokens = append(tokens, s.Tokens...)
	}

	return tokens
}

// Surfaces returns the surface forms of the doc tokens in reading order.
func (d Doc) Surfaces() []string {
	var surfaces []string
	for _, s := range d.Sentences {
		for _, t := range s.Tokens {
			surfaces = append(surfaces, t.Text)
		}
	}

	return surfaces
}

// docJSON covers both export formats: the current one with a `sentences`
// array and the legacy one with a bare slice-of-slices `tokens` field.
type docJSON struct {
	Id        int        `json:"id"`
	Title     string     `json:"title"`
	Labels    []string   `json:"labels"`
	Sentences []Sentence `json:"sentences"`
	Tokens    [][]Token  `json:"tokens"`
}

// UnmarshalJSON accepts the current format and converts legacy docs on the
// fly, deriving sentence ids from position.
func (d *Doc) UnmarshalJSON(b []byte) error {
	var raw docJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	d.Id = raw.Id
	d.Title = raw.Title
	d.Labels = raw.Labels
	d.Sentences = raw.Sentences

	if d.Sentences == nil {
		for i, tokens := range raw.Tokens {
			d.Sentences = append(d.Sentences, Sentence{Id: i, Tokens: tokens})
		}
	}

	return nil
}
