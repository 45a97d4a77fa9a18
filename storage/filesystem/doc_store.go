package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	sent "github.com/revelaction/gazealign/sentence"
	"github.com/revelaction/gazealign/storage"
)

type DocStore struct {
	docDir string

	// In-memory cache
	docs []sent.Doc
}

var _ storage.DocReader = (*DocStore)(nil)

// NewDocStore creates a filesystem document store over a directory of
// parsed-doc JSON files. Only metadata is read here; content is loaded on
// demand.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	docs := make([]sent.Doc, 0, len(files))

	idx := 0
	for _, file := range files {
		if filepath.Ext(file.Name()) == ".json" {
			docs = append(docs, sent.Doc{
				Id:    idx,
				Title: file.Name(),
			})
			idx++
		}
	}

	return &DocStore{
		docDir: docDir,
		docs:   docs,
	}, nil
}

func (h *DocStore) List() ([]sent.Doc, error) {
	return h.docs, nil
}

// Read returns the doc with its sentences, loading the JSON file on first
// access.
func (h *DocStore) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return sent.Doc{}, fmt.Errorf("doc id out of range: %d", id)
	}

	doc := &h.docs[id]
	if doc.Sentences == nil {
		full, err := ReadDoc(filepath.Join(h.docDir, doc.Title))
		if err != nil {
			return sent.Doc{}, err
		}

		// Copy loaded content into existing metadata struct
		doc.Sentences = full.Sentences
		doc.Labels = full.Labels
	}

	return *doc, nil
}

// LoadAll preloads all docs into memory.
// The callback is called for each file loaded (total, current_name).
func (h *DocStore) LoadAll(cb func(total int, name string)) error {
	total := len(h.docs)
	for i := range h.docs {
		if cb != nil {
			cb(total, h.docs[i].Title)
		}

		if _, err := h.Read(i); err != nil {
			return err
		}
	}

	return nil
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var doc sent.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}

	return doc, nil
}
