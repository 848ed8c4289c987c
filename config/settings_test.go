package config

import (
	"path/filepath"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	var s Settings
	s.ApplyDefaults()

	if s.DataFile != DefaultDataFile {
		t.Errorf("Expected data file %q, got %q", DefaultDataFile, s.DataFile)
	}
	if s.QuestionColumn != "标准问题" || s.AnswerColumn != "答案" {
		t.Errorf("Unexpected default columns %q/%q", s.QuestionColumn, s.AnswerColumn)
	}
	if s.DefaultTopN != 5 {
		t.Errorf("Expected default top-N 5, got %d", s.DefaultTopN)
	}
	if s.MaxTopN != 10 {
		t.Errorf("Expected max top-N 10, got %d", s.MaxTopN)
	}
	if s.Port != "8080" {
		t.Errorf("Expected port 8080, got %s", s.Port)
	}
	if len(s.Validate()) != 0 {
		t.Errorf("Expected defaults to validate, got %v", s.Validate())
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	s := Settings{DataFile: "faq.csv", DefaultTopN: 3, MaxTopN: 4, Port: "9000"}
	s.ApplyDefaults()

	if s.DataFile != "faq.csv" || s.DefaultTopN != 3 || s.MaxTopN != 4 || s.Port != "9000" {
		t.Errorf("Explicit values were overwritten: %+v", s)
	}
}

func TestApplyDefaults_DefaultTopNFollowsSmallMax(t *testing.T) {
	s := Settings{MaxTopN: 3}
	s.ApplyDefaults()

	if s.DefaultTopN != 3 {
		t.Errorf("Expected default top-N to be capped at 3, got %d", s.DefaultTopN)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name           string
		settings       Settings
		expectedErrors int
	}{
		{
			name:           "defaults are valid",
			settings:       Default(),
			expectedErrors: 0,
		},
		{
			name: "empty columns",
			settings: Settings{
				DataFile: "faq.xlsx", DefaultTopN: 5, MaxTopN: 10,
			},
			expectedErrors: 2,
		},
		{
			name: "identical columns",
			settings: Settings{
				DataFile: "faq.xlsx", QuestionColumn: "q", AnswerColumn: "q", DefaultTopN: 5, MaxTopN: 10,
			},
			expectedErrors: 1,
		},
		{
			name: "default top-N above max",
			settings: Settings{
				DataFile: "faq.xlsx", QuestionColumn: "q", AnswerColumn: "a", DefaultTopN: 11, MaxTopN: 10,
			},
			expectedErrors: 1,
		},
		{
			name: "non-positive limits",
			settings: Settings{
				DataFile: "faq.xlsx", QuestionColumn: "q", AnswerColumn: "a", DefaultTopN: 0, MaxTopN: -1,
			},
			expectedErrors: 2,
		},
		{
			name: "negative request limit",
			settings: Settings{
				DataFile: "faq.xlsx", QuestionColumn: "q", AnswerColumn: "a", DefaultTopN: 1, MaxTopN: 1, MaxRequestBytes: -1,
			},
			expectedErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := tt.settings.Validate()
			if len(problems) != tt.expectedErrors {
				t.Errorf("Expected %d errors, got %d: %v", tt.expectedErrors, len(problems), problems)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	s := Default()
	s.DataDir = "/var/lib/faq"

	if got := s.SnapshotCachePath(); got != filepath.Join("/var/lib/faq", "snapshot.gob") {
		t.Errorf("Unexpected snapshot cache path %s", got)
	}
	if got := s.FeedbackDBPath(); got != filepath.Join("/var/lib/faq", "feedback.db") {
		t.Errorf("Unexpected feedback db path %s", got)
	}

	s.SnapshotCache = false
	if got := s.SnapshotCachePath(); got != "" {
		t.Errorf("Expected no cache path when caching is disabled, got %s", got)
	}
}
