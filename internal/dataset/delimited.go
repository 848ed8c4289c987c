package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	internalErrors "github.com/gcbaptista/go-faq-matcher/internal/errors"
	"github.com/gcbaptista/go-faq-matcher/model"
)

// loadDelimited reads a CSV or TSV file whose first record is the header.
func loadDelimited(ctx context.Context, src Source, delimiter rune) ([]model.QAEntry, error) {
	f, err := os.Open(src.Path) // #nosec G304 -- path comes from operator configuration
	if err != nil {
		return nil, internalErrors.NewSourceUnreadableError(src.Path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", src.Path, closeErr)
		}
	}()

	reader := csv.NewReader(f)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, internalErrors.NewMissingColumnError(src.QuestionColumn, src.Path)
	}
	if err != nil {
		return nil, internalErrors.NewSourceUnreadableError(src.Path, err)
	}

	tr, err := newTableReader(src, header)
	if err != nil {
		return nil, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, internalErrors.NewSourceUnreadableError(src.Path, err)
		}
		tr.addRow(record)
	}
	return tr.result(), nil
}
