package dataset

import (
	"context"
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gcbaptista/go-faq-matcher/internal/errors"
	"github.com/gcbaptista/go-faq-matcher/model"
)

// loadJSON reads a JSON array of objects keyed by column name.
func loadJSON(ctx context.Context, src Source) ([]model.QAEntry, error) {
	data, err := os.ReadFile(src.Path) // #nosec G304 -- path comes from operator configuration
	if err != nil {
		return nil, errors.NewSourceUnreadableError(src.Path, err)
	}
	var records []map[string]interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.NewSourceUnreadableError(src.Path, err)
	}
	return recordsToEntries(ctx, src, records)
}

// loadYAML reads a YAML sequence of mappings keyed by column name.
func loadYAML(ctx context.Context, src Source) ([]model.QAEntry, error) {
	data, err := os.ReadFile(src.Path) // #nosec G304 -- path comes from operator configuration
	if err != nil {
		return nil, errors.NewSourceUnreadableError(src.Path, err)
	}
	var records []map[string]interface{}
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, errors.NewSourceUnreadableError(src.Path, err)
	}
	return recordsToEntries(ctx, src, records)
}

func recordsToEntries(ctx context.Context, src Source, records []map[string]interface{}) ([]model.QAEntry, error) {
	if len(records) > 0 && !hasColumns(src, records) {
		if !anyHas(records, src.QuestionColumn) {
			return nil, errors.NewMissingColumnError(src.QuestionColumn, src.Path)
		}
		return nil, errors.NewMissingColumnError(src.AnswerColumn, src.Path)
	}

	tr := &tableReader{src: src}
	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		question, ok := stringify(record[src.QuestionColumn])
		if !ok {
			tr.dropped++
			continue
		}
		answer, ok := stringify(record[src.AnswerColumn])
		if !ok {
			tr.dropped++
			continue
		}
		tr.add(question, answer)
	}
	return tr.result(), nil
}

// hasColumns reports whether both columns appear in at least one record,
// mirroring a header check for tabular sources.
func hasColumns(src Source, records []map[string]interface{}) bool {
	return anyHas(records, src.QuestionColumn) && anyHas(records, src.AnswerColumn)
}

func anyHas(records []map[string]interface{}, key string) bool {
	for _, r := range records {
		if _, ok := r[key]; ok {
			return true
		}
	}
	return false
}
