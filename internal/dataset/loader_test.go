package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gcbaptista/go-faq-matcher/internal/errors"
	"github.com/gcbaptista/go-faq-matcher/internal/ranking"
	"github.com/gcbaptista/go-faq-matcher/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeFile(t, "faq.csv", "编号,标准问题,答案\n"+
		"1,体育特长生录取政策,答案A\n"+
		"2,录取分数线查询,答案B\n"+
		"3,,没有问题的答案\n"+
		"4,没有答案的问题,\n"+
		"5,学费是多少,\"5000元, 按学年收取\"\n")

	entries, err := Load(context.Background(), Source{Path: path})
	require.NoError(t, err)

	assert.Equal(t, []model.QAEntry{
		{Question: "体育特长生录取政策", Answer: "答案A"},
		{Question: "录取分数线查询", Answer: "答案B"},
		{Question: "学费是多少", Answer: "5000元, 按学年收取"},
	}, entries)
}

func TestLoad_CSVWithBOMAndShortRows(t *testing.T) {
	path := writeFile(t, "faq.csv", "\ufeff标准问题,答案\n住宿条件,四人间\n只有问题\n")

	entries, err := Load(context.Background(), Source{Path: path})
	require.NoError(t, err)
	assert.Equal(t, []model.QAEntry{{Question: "住宿条件", Answer: "四人间"}}, entries)
}

func TestLoad_TSVWithCustomColumns(t *testing.T) {
	path := writeFile(t, "faq.tsv", "question\tanswer\nWhen is the deadline?\tJune 30\n")

	entries, err := Load(context.Background(), Source{Path: path, QuestionColumn: "question", AnswerColumn: "answer"})
	require.NoError(t, err)
	assert.Equal(t, []model.QAEntry{{Question: "When is the deadline?", Answer: "June 30"}}, entries)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "faq.json", `[
		{"标准问题": "学费是多少", "答案": "5000"},
		{"标准问题": 2024, "答案": "年份"},
		{"标准问题": null, "答案": "dropped"},
		{"答案": "dropped too"}
	]`)

	entries, err := Load(context.Background(), Source{Path: path})
	require.NoError(t, err)
	assert.Equal(t, []model.QAEntry{
		{Question: "学费是多少", Answer: "5000"},
		{Question: "2024", Answer: "年份"},
	}, entries)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "faq.yaml", `
- 标准问题: 宿舍有空调吗
  答案: 有
- 标准问题: 可以转专业吗
  答案: 第一学年结束后可以申请
- 标准问题: 缺少答案
`)

	entries, err := Load(context.Background(), Source{Path: path})
	require.NoError(t, err)
	assert.Equal(t, []model.QAEntry{
		{Question: "宿舍有空调吗", Answer: "有"},
		{Question: "可以转专业吗", Answer: "第一学年结束后可以申请"},
	}, entries)
}

func TestLoad_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"标准问题", "答案"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"体育特长生录取政策", "答案A"}))
	require.NoError(t, f.SetCellValue("Sheet1", "A3", "没有答案的问题"))
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &[]interface{}{"录取分数线查询", "答案B"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	entries, err := Load(context.Background(), Source{Path: path})
	require.NoError(t, err)
	assert.Equal(t, []model.QAEntry{
		{Question: "体育特长生录取政策", Answer: "答案A"},
		{Question: "录取分数线查询", Answer: "答案B"},
	}, entries)

	t.Run("named sheet", func(t *testing.T) {
		_, err := Load(context.Background(), Source{Path: path, Sheet: "Missing"})
		assert.ErrorIs(t, err, errors.ErrSourceUnreadable)
	})
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(context.Background(), Source{Path: filepath.Join(t.TempDir(), "absent.csv")})
		assert.ErrorIs(t, err, errors.ErrSourceUnreadable)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("missing question column", func(t *testing.T) {
		path := writeFile(t, "faq.csv", "问题,答案\na,b\n")
		_, err := Load(context.Background(), Source{Path: path})
		require.ErrorIs(t, err, errors.ErrMissingColumn)
		assert.Contains(t, err.Error(), "标准问题")
	})

	t.Run("missing answer column in JSON", func(t *testing.T) {
		path := writeFile(t, "faq.json", `[{"标准问题": "a", "回答": "b"}]`)
		_, err := Load(context.Background(), Source{Path: path})
		require.ErrorIs(t, err, errors.ErrMissingColumn)
		assert.Contains(t, err.Error(), "答案")
	})

	t.Run("empty csv", func(t *testing.T) {
		path := writeFile(t, "faq.csv", "")
		_, err := Load(context.Background(), Source{Path: path})
		assert.ErrorIs(t, err, errors.ErrMissingColumn)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeFile(t, "faq.json", `{"not": "a list"`)
		_, err := Load(context.Background(), Source{Path: path})
		assert.ErrorIs(t, err, errors.ErrSourceUnreadable)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := Load(context.Background(), Source{Path: "faq.doc"})
		assert.ErrorIs(t, err, errors.ErrUnsupportedFormat)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load(context.Background(), Source{})
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})

	t.Run("cancelled context", func(t *testing.T) {
		path := writeFile(t, "faq.csv", "标准问题,答案\na,b\n")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Load(ctx, Source{Path: path})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLoad_EmptyTableIsNotAnError(t *testing.T) {
	path := writeFile(t, "faq.csv", "标准问题,答案\n")
	entries, err := Load(context.Background(), Source{Path: path})
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestLoad_KeepsCellsVerbatim(t *testing.T) {
	// "e" + combining acute accent stays decomposed
	path := writeFile(t, "faq.csv", "标准问题,答案\ncafe\u0301,ok\n")
	entries, err := Load(context.Background(), Source{Path: path})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cafe\u0301", entries[0].Question)

	// a query typed in the same form as the source row is an exact match
	result, err := ranking.Rank("cafe\u0301", entries, 5)
	require.NoError(t, err)
	require.NotNil(t, result.ExactMatch)
	assert.Equal(t, "ok", result.ExactMatch.Answer)
}

func TestFileProvider(t *testing.T) {
	path := writeFile(t, "faq.csv", "标准问题,答案\n学费,5000\n")
	provider := NewFileProvider(Source{Path: path})

	assert.Equal(t, DefaultQuestionColumn, provider.Source().QuestionColumn)
	assert.Equal(t, DefaultAnswerColumn, provider.Source().AnswerColumn)

	entries, err := provider.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.QAEntry{{Question: "学费", Answer: "5000"}}, entries)
}
