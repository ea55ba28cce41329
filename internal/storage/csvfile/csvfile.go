// Package csvfile mirrors the full client collection to a flat CSV file.
//
// The file is write-only from the service's point of view: it is rewritten in
// full after every mutation and never read back to restore state. The write
// goes to a temporary file first and is moved into place with os.Rename, so a
// crash mid-write cannot leave a torn file behind.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/okezie/bankclients/internal/ledger"
)

// header is the fixed column order of the mirror file.
var header = []string{"Id", "Name", "salary", "balance", "creationDate"}

// Writer rewrites the snapshot file at a fixed path.
type Writer struct {
	path string
}

// New returns a writer bound to path. The file is created on first snapshot.
func New(path string) *Writer { return &Writer{path: path} }

// Path returns the snapshot file location.
func (w *Writer) Path() string { return w.path }

// WriteSnapshot overwrites the file with the current collection, one row per
// live client, in insertion order.
func (w *Writer) WriteSnapshot(clients []ledger.Client) error {
	tmp := w.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, c := range clients {
		row := []string{
			c.ID.String(),
			c.Name,
			strconv.FormatFloat(c.Salary, 'f', -1, 64),
			strconv.FormatFloat(c.Balance, 'f', -1, 64),
			c.CreationDate(),
		}
		if err := cw.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	return os.Rename(tmp, w.path)
}
