package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"tagloc/internal/domain"
	"tagloc/internal/domain/entities"
	"tagloc/internal/ports/output"
	"tagloc/pkg/atomicfile"
)

// Ensure Store implements the output.DocumentStore port.
var _ output.DocumentStore = (*Store)(nil)

// Store reads and rewrites the CSV resource file on disk.
// Dialect: comma-delimited, double-quote quoting (encoding/csv defaults).
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

// Load parses the file: first line is the header, the rest are data rows.
// Rows may carry a variable number of fields (2 before enrichment, 3+ after).
func (s *Store) Load(ctx context.Context, path string) (*entities.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %w", domain.ErrRead, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %w", domain.ErrParse, path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w (%s)", domain.ErrEmptyDocument, path)
	}

	doc := &entities.Document{Header: records[0]}
	for _, rec := range records[1:] {
		doc.Rows = append(doc.Rows, rec)
	}
	return doc, nil
}

// Replace serializes the document to a temporary sibling file, then
// atomically renames it onto path.
func (s *Store) Replace(ctx context.Context, path string, doc *entities.Document) error {
	w, err := atomicfile.New(path)
	if err != nil {
		return fmt.Errorf("%w (%s): %w", domain.ErrReplace, path, err)
	}
	defer w.Close()

	cw := csv.NewWriter(w)
	if err := cw.Write(doc.Header); err != nil {
		return fmt.Errorf("%w (%s): %w", domain.ErrReplace, path, err)
	}
	for _, row := range doc.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%w (%s): %w", domain.ErrReplace, path, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w (%s): %w", domain.ErrReplace, path, err)
	}

	if err := w.Commit(); err != nil {
		return fmt.Errorf("%w (%s): %w", domain.ErrReplace, path, err)
	}
	return nil
}
