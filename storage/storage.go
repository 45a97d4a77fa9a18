package storage

import (
	"github.com/revelaction/gazealign/feature"
	sent "github.com/revelaction/gazealign/sentence"
)

// DocReader defines read operations for parsed-corpus storage
type DocReader interface {
	// List returns the metadata (Id, Title, Labels) of documents.
	// Content (Sentences) is not necessarily loaded.
	List() ([]sent.Doc, error)

	// Read returns a document by ID, with content loaded.
	Read(id int) (sent.Doc, error)
}

// FeatureWriter defines write operations for extracted feature rows
type FeatureWriter interface {
	// Write persists the feature rows of one doc.
	Write(doc sent.Doc, rows []feature.Row) error
}
