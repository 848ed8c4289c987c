// Package dataset loads the FAQ table from a tabular file and turns it into
// the ordered, null-filtered candidate list the ranker consumes.
package dataset

import (
	"context"
	"log"
	"path/filepath"
	"strings"

	"github.com/gcbaptista/go-faq-matcher/internal/errors"
	"github.com/gcbaptista/go-faq-matcher/internal/similarity"
	"github.com/gcbaptista/go-faq-matcher/model"
)

const (
	// DefaultQuestionColumn is the header of the standard question column.
	DefaultQuestionColumn = "标准问题"
	// DefaultAnswerColumn is the header of the answer column.
	DefaultAnswerColumn = "答案"
)

// Source describes where the FAQ table lives and which columns to read.
type Source struct {
	Path           string `json:"path"`
	Sheet          string `json:"sheet,omitempty"` // xlsx only; first sheet when empty
	QuestionColumn string `json:"question_column"`
	AnswerColumn   string `json:"answer_column"`
}

// withDefaults fills in the default column names.
func (s Source) withDefaults() Source {
	if strings.TrimSpace(s.QuestionColumn) == "" {
		s.QuestionColumn = DefaultQuestionColumn
	}
	if strings.TrimSpace(s.AnswerColumn) == "" {
		s.AnswerColumn = DefaultAnswerColumn
	}
	return s
}

// FileProvider loads entries from a file on every call to Load.
type FileProvider struct {
	source Source
}

// NewFileProvider creates a provider for the given source.
func NewFileProvider(source Source) *FileProvider {
	return &FileProvider{source: source.withDefaults()}
}

// Source returns the provider's resolved source description.
func (p *FileProvider) Source() Source {
	return p.source
}

// Load reads the source file.
func (p *FileProvider) Load(ctx context.Context) ([]model.QAEntry, error) {
	return Load(ctx, p.source)
}

// Load reads the FAQ table described by src. The reader is picked by file
// extension: .xlsx, .csv, .tsv, .json, .yaml and .yml are supported.
// Rows missing either the question or the answer are dropped.
func Load(ctx context.Context, src Source) ([]model.QAEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src = src.withDefaults()
	if strings.TrimSpace(src.Path) == "" {
		return nil, errors.NewValidationError("path", "data source path is required")
	}

	var (
		entries []model.QAEntry
		err     error
	)
	ext := strings.ToLower(filepath.Ext(src.Path))
	switch ext {
	case ".xlsx", ".xlsm":
		entries, err = loadXLSX(ctx, src)
	case ".csv":
		entries, err = loadDelimited(ctx, src, ',')
	case ".tsv":
		entries, err = loadDelimited(ctx, src, '\t')
	case ".json":
		entries, err = loadJSON(ctx, src)
	case ".yaml", ".yml":
		entries, err = loadYAML(ctx, src)
	default:
		return nil, errors.NewUnsupportedFormatError(ext)
	}
	if err != nil {
		return nil, err
	}

	log.Printf("Info: Loaded %d FAQ entries from %s", len(entries), src.Path)
	return entries, nil
}

// tableReader accumulates entries from a header row followed by data rows.
type tableReader struct {
	src         Source
	questionIdx int
	answerIdx   int
	entries     []model.QAEntry
	dropped     int
}

// newTableReader locates the question and answer columns in header.
func newTableReader(src Source, header []string) (*tableReader, error) {
	tr := &tableReader{src: src, questionIdx: -1, answerIdx: -1}
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		switch name {
		case src.QuestionColumn:
			if tr.questionIdx < 0 {
				tr.questionIdx = i
			}
		case src.AnswerColumn:
			if tr.answerIdx < 0 {
				tr.answerIdx = i
			}
		}
	}
	if tr.questionIdx < 0 {
		return nil, errors.NewMissingColumnError(src.QuestionColumn, src.Path)
	}
	if tr.answerIdx < 0 {
		return nil, errors.NewMissingColumnError(src.AnswerColumn, src.Path)
	}
	return tr, nil
}

// addRow appends a row, skipping it when either required cell is empty or absent.
func (tr *tableReader) addRow(row []string) {
	question, ok := cell(row, tr.questionIdx)
	if !ok {
		tr.dropped++
		return
	}
	answer, ok := cell(row, tr.answerIdx)
	if !ok {
		tr.dropped++
		return
	}
	tr.add(question, answer)
}

func (tr *tableReader) add(question, answer string) {
	tr.entries = append(tr.entries, model.QAEntry{
		Question: question,
		Answer:   answer,
	})
}

func (tr *tableReader) result() []model.QAEntry {
	if tr.dropped > 0 {
		log.Printf("Info: Dropped %d row(s) with a missing question or answer from %s", tr.dropped, tr.src.Path)
	}
	if tr.entries == nil {
		return []model.QAEntry{}
	}
	return tr.entries
}

func cell(row []string, idx int) (string, bool) {
	if idx >= len(row) || row[idx] == "" {
		return "", false
	}
	return row[idx], true
}

// stringify coerces a decoded JSON/YAML value to the string form it is scored
// by; nil reports missing.
func stringify(v interface{}) (string, bool) {
	if v == nil {
		return "", false
	}
	s := similarity.Text(v)
	return s, s != ""
}
