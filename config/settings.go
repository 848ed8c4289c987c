// Package config provides configuration structures for the FAQ matcher.
// It defines the data source, result limits and service options.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// DefaultDataFile is the spreadsheet the admissions office publishes.
	DefaultDataFile = "招生问答汇总20210615（加标准问题）.xlsx"
	// DefaultQuestionColumn is the header of the standard question column.
	DefaultQuestionColumn = "标准问题"
	// DefaultAnswerColumn is the header of the answer column.
	DefaultAnswerColumn = "答案"
	// DefaultTopN is the number of recommendations shown when none is requested.
	DefaultTopN = 5
	// DefaultMaxTopN is the upper bound of the recommendation count.
	DefaultMaxTopN = 10
	// DefaultDataDir holds the snapshot cache and feedback database.
	DefaultDataDir = "./faq_data"
	// DefaultPort is the HTTP port of the service.
	DefaultPort = "8080"
	// DefaultMaxRequestBytes limits request bodies.
	DefaultMaxRequestBytes = 1 << 20

	snapshotCacheFile = "snapshot.gob"
	feedbackDBFile    = "feedback.db"
)

// Settings contains all configuration options of the service.
// Values come from a config file, FAQ_* environment variables and flags,
// merged by viper in that order of increasing precedence.
type Settings struct {
	DataFile        string `mapstructure:"data_file" json:"data_file" yaml:"data_file"`                         // Path of the FAQ table (.xlsx, .csv, .tsv, .json, .yaml)
	Sheet           string `mapstructure:"sheet" json:"sheet,omitempty" yaml:"sheet,omitempty"`                 // Workbook sheet; first sheet when empty
	QuestionColumn  string `mapstructure:"question_column" json:"question_column" yaml:"question_column"`       // Header of the standard question column
	AnswerColumn    string `mapstructure:"answer_column" json:"answer_column" yaml:"answer_column"`             // Header of the answer column
	DefaultTopN     int    `mapstructure:"default_top_n" json:"default_top_n" yaml:"default_top_n"`             // Recommendations returned when the request omits top_n
	MaxTopN         int    `mapstructure:"max_top_n" json:"max_top_n" yaml:"max_top_n"`                         // Requests above this are clamped
	DataDir         string `mapstructure:"data_dir" json:"data_dir" yaml:"data_dir"`                            // Directory for the snapshot cache and feedback database
	Port            string `mapstructure:"port" json:"port" yaml:"port"`                                        // HTTP port
	LogFile         string `mapstructure:"log_file" json:"log_file,omitempty" yaml:"log_file,omitempty"`        // Optional log file, in addition to stdout
	SnapshotCache   bool   `mapstructure:"snapshot_cache" json:"snapshot_cache" yaml:"snapshot_cache"`          // Keep the last good table on disk for cold starts
	MaxRequestBytes int64  `mapstructure:"max_request_bytes" json:"max_request_bytes" yaml:"max_request_bytes"` // Request body limit
}

// Default returns settings with every default applied.
func Default() Settings {
	s := Settings{SnapshotCache: true}
	s.ApplyDefaults()
	return s
}

// ApplyDefaults fills zero-valued fields with their defaults.
func (s *Settings) ApplyDefaults() {
	if strings.TrimSpace(s.DataFile) == "" {
		s.DataFile = DefaultDataFile
	}
	if strings.TrimSpace(s.QuestionColumn) == "" {
		s.QuestionColumn = DefaultQuestionColumn
	}
	if strings.TrimSpace(s.AnswerColumn) == "" {
		s.AnswerColumn = DefaultAnswerColumn
	}
	if s.MaxTopN == 0 {
		s.MaxTopN = DefaultMaxTopN
	}
	if s.DefaultTopN == 0 {
		s.DefaultTopN = DefaultTopN
		if s.DefaultTopN > s.MaxTopN && s.MaxTopN > 0 {
			s.DefaultTopN = s.MaxTopN
		}
	}
	if strings.TrimSpace(s.DataDir) == "" {
		s.DataDir = DefaultDataDir
	}
	if strings.TrimSpace(s.Port) == "" {
		s.Port = DefaultPort
	}
	if s.MaxRequestBytes == 0 {
		s.MaxRequestBytes = DefaultMaxRequestBytes
	}
}

// Validate reports every problem with the settings. An empty slice means valid.
func (s *Settings) Validate() []string {
	var problems []string

	if strings.TrimSpace(s.DataFile) == "" {
		problems = append(problems, "data_file cannot be empty")
	}
	if strings.TrimSpace(s.QuestionColumn) == "" {
		problems = append(problems, "question_column cannot be empty")
	}
	if strings.TrimSpace(s.AnswerColumn) == "" {
		problems = append(problems, "answer_column cannot be empty")
	}
	if s.QuestionColumn != "" && s.QuestionColumn == s.AnswerColumn {
		problems = append(problems, fmt.Sprintf("question_column and answer_column must differ (both '%s')", s.QuestionColumn))
	}
	if s.MaxTopN < 1 {
		problems = append(problems, fmt.Sprintf("max_top_n must be at least 1, got %d", s.MaxTopN))
	}
	if s.DefaultTopN < 1 {
		problems = append(problems, fmt.Sprintf("default_top_n must be at least 1, got %d", s.DefaultTopN))
	} else if s.MaxTopN >= 1 && s.DefaultTopN > s.MaxTopN {
		problems = append(problems, fmt.Sprintf("default_top_n (%d) cannot exceed max_top_n (%d)", s.DefaultTopN, s.MaxTopN))
	}
	if s.MaxRequestBytes < 0 {
		problems = append(problems, "max_request_bytes cannot be negative")
	}

	return problems
}

// SnapshotCachePath returns where the last good snapshot is stored, or "" when caching is off.
func (s *Settings) SnapshotCachePath() string {
	if !s.SnapshotCache {
		return ""
	}
	return filepath.Join(s.DataDir, snapshotCacheFile)
}

// FeedbackDBPath returns the location of the feedback database.
func (s *Settings) FeedbackDBPath() string {
	return filepath.Join(s.DataDir, feedbackDBFile)
}
