package dataset

import (
	"context"
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"github.com/gcbaptista/go-faq-matcher/internal/errors"
	"github.com/gcbaptista/go-faq-matcher/model"
)

// loadXLSX reads a workbook sheet whose first row is the header.
func loadXLSX(ctx context.Context, src Source) ([]model.QAEntry, error) {
	f, err := excelize.OpenFile(src.Path)
	if err != nil {
		return nil, errors.NewSourceUnreadableError(src.Path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Printf("Warning: Failed to close workbook %s: %v", src.Path, closeErr)
		}
	}()

	sheet := src.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.NewSourceUnreadableError(src.Path, fmt.Errorf("workbook has no sheets"))
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewSourceUnreadableError(src.Path, fmt.Errorf("sheet '%s': %w", sheet, err))
	}
	if len(rows) == 0 {
		return nil, errors.NewMissingColumnError(src.QuestionColumn, src.Path)
	}

	tr, err := newTableReader(src, rows[0])
	if err != nil {
		return nil, err
	}
	for _, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tr.addRow(row)
	}
	return tr.result(), nil
}
