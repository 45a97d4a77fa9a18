package zombiezen

import (
	"context"

	"github.com/revelaction/gazealign/feature"
	sent "github.com/revelaction/gazealign/sentence"
	"github.com/revelaction/gazealign/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type FeatureStore struct {
	pool *sqlitex.Pool
}

var _ storage.FeatureWriter = (*FeatureStore)(nil)

func NewFeatureStore(pool *sqlitex.Pool) *FeatureStore {
	return &FeatureStore{pool: pool}
}

// Write persists the feature rows of one doc in a single transaction.
// Earlier rows for the same doc id are replaced.
func (s *FeatureStore) Write(doc sent.Doc, rows []feature.Row) (err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "DELETE FROM features WHERE doc_id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Id},
	})
	if err != nil {
		return err
	}

	const insert = `INSERT INTO features
		(doc_id, doc_title, aoi_index, aoi, token_index, sent_id, text, dep_distance, dep_depth, is_punct, matched)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, row := range rows {
		err = sqlitex.Execute(conn, insert, &sqlitex.ExecOptions{
			Args: []interface{}{
				doc.Id,
				doc.Title,
				row.AOIIndex,
				row.AOI,
				row.TokenIndex,
				row.SentenceId,
				row.Text,
				row.Distance,
				row.Depth,
				boolToInt(row.IsPunct),
				boolToInt(row.Matched),
			},
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// Read returns the stored feature rows of a doc in insertion order.
func (s *FeatureStore) Read(docId int) ([]feature.Row, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var rows []feature.Row
	err = sqlitex.Execute(conn,
		"SELECT doc_id, aoi_index, aoi, token_index, sent_id, text, dep_distance, dep_depth, is_punct, matched FROM features WHERE doc_id = ? ORDER BY aoi_index",
		&sqlitex.ExecOptions{
			Args: []interface{}{docId},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				rows = append(rows, feature.Row{
					DocId:      stmt.ColumnInt(0),
					AOIIndex:   stmt.ColumnInt(1),
					AOI:        stmt.ColumnText(2),
					TokenIndex: stmt.ColumnInt(3),
					SentenceId: stmt.ColumnInt(4),
					Text:       stmt.ColumnText(5),
					Distance:   stmt.ColumnInt(6),
					Depth:      stmt.ColumnInt(7),
					IsPunct:    stmt.ColumnInt(8) != 0,
					Matched:    stmt.ColumnInt(9) != 0,
				})
				return nil
			},
		})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
