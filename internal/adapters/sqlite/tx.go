package sqlite

import (
	"database/sql"
)

// indexTx groups writes to the resources table
type indexTx struct {
	tx        *sql.Tx
	committed bool
}

func (idx *Index) beginTx() (*indexTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	return &indexTx{tx: tx}, nil
}

// insertResource registers a path under an identifier
func (t *indexTx) insertResource(id, path string, mtime int64) error {
	_, err := t.tx.Exec(`
		INSERT INTO resources (id, path, mtime) VALUES (?, ?, ?)
	`, id, path, mtime)
	return err
}

// touch updates the recorded mtime of a path
func (t *indexTx) touch(path string, mtime int64) error {
	_, err := t.tx.Exec(`UPDATE resources SET mtime = ? WHERE path = ?`, mtime, path)
	return err
}

// deleteResource removes a row by path
func (t *indexTx) deleteResource(path string) error {
	_, err := t.tx.Exec(`DELETE FROM resources WHERE path = ?`, path)
	return err
}

// relocate moves a row to a new path, keeping its identifier
func (t *indexTx) relocate(oldPath, newPath string) (int64, error) {
	res, err := t.tx.Exec(`UPDATE resources SET path = ? WHERE path = ?`, newPath, oldPath)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (t *indexTx) commit() error {
	if err := t.tx.Commit(); err != nil {
		return err
	}
	t.committed = true
	return nil
}

// rollback aborts the transaction unless it was committed
func (t *indexTx) rollback() error {
	if t.committed {
		return nil
	}
	return t.tx.Rollback()
}
