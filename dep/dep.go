// Package dep computes sentence-local dependency metrics over the
// ownership forest of a parsed doc.
//
// Each sentence is a tree whose ROOT token owns itself. Both metrics
// follow the same zero convention: ROOT tokens, tokens with a missing
// governor and tokens whose governor sits in another sentence all yield 0.
// The convention is deliberately overloaded; downstream statistics depend
// on it.
package dep

import (
	sent "github.com/revelaction/gazealign/sentence"
)

// Tree indexes the dependency forest of one doc: token id to token, plus
// per-sentence token counts to bound ancestor walks.
type Tree struct {
	byId    map[int]sent.Token
	sentLen map[int]int
}

// NewTree builds the forest index for a doc.
func NewTree(doc sent.Doc) *Tree {
	t := &Tree{
		byId:    map[int]sent.Token{},
		sentLen: map[int]int{},
	}

	for _, s := range doc.Sentences {
		for _, tok := range s.Tokens {
			t.byId[tok.Id] = tok
			t.sentLen[tok.SentenceId]++
		}
	}

	return t
}

// governor resolves the owner of tok. ok is false for ROOT tokens, for a
// head id absent from the doc and for heads in another sentence.
func (t *Tree) governor(tok sent.Token) (sent.Token, bool) {
	if tok.IsRoot() {
		return sent.Token{}, false
	}

	head, ok := t.byId[tok.Head]
	if !ok || head.SentenceId != tok.SentenceId {
		return sent.Token{}, false
	}

	return head, true
}

// Distance returns the linear distance between tok and its governor in the
// doc token ordering, which for a same-sentence governor equals the
// sentence-local distance. ROOT tokens, missing governors and
// cross-sentence governors yield 0.
func (t *Tree) Distance(tok sent.Token) int {
	head, ok := t.governor(tok)
	if !ok {
		return 0
	}

	d := tok.Id - head.Id
	if d < 0 {
		d = -d
	}

	return d
}

// Depth returns the number of same-sentence ownership hops from tok up to
// its sentence ROOT. The walk stops without counting further when it
// reaches ROOT, a missing head or a cross-sentence step, and is bounded by
// the sentence token count so a malformed cycle cannot hang it.
func (t *Tree) Depth(tok sent.Token) int {
	depth := 0
	current := tok

	for hop := 0; hop < t.sentLen[tok.SentenceId]; hop++ {
		head, ok := t.governor(current)
		if !ok {
			break
		}

		depth++
		current = head
	}

	return depth
}
