package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrInvalidArgument is returned when a caller passes an argument outside its domain (e.g. topN <= 0)
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoData is returned when no candidate snapshot has been loaded yet
	ErrNoData = errors.New("no data available")

	// ErrSourceUnreadable is returned when the data source cannot be opened or parsed
	ErrSourceUnreadable = errors.New("data source unreadable")

	// ErrMissingColumn is returned when a required column is absent from the data source
	ErrMissingColumn = errors.New("missing column")

	// ErrUnsupportedFormat is returned when the data source has an unknown file format
	ErrUnsupportedFormat = errors.New("unsupported source format")

	// ErrFeedbackNotFound is returned when no feedback has been recorded for a question
	ErrFeedbackNotFound = errors.New("feedback not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// InvalidArgumentError represents an out-of-domain argument with context
type InvalidArgumentError struct {
	Name  string
	Value interface{}
	Rule  string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument '%s' (%v): %s", e.Name, e.Value, e.Rule)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgumentError creates a new InvalidArgumentError
func NewInvalidArgumentError(name string, value interface{}, rule string) *InvalidArgumentError {
	return &InvalidArgumentError{Name: name, Value: value, Rule: rule}
}

// SourceUnreadableError wraps an I/O or parse failure on a data source
type SourceUnreadableError struct {
	Path string
	Err  error
}

func (e *SourceUnreadableError) Error() string {
	return fmt.Sprintf("cannot read data source '%s': %v", e.Path, e.Err)
}

func (e *SourceUnreadableError) Is(target error) bool {
	return target == ErrSourceUnreadable
}

func (e *SourceUnreadableError) Unwrap() error {
	return e.Err
}

// NewSourceUnreadableError creates a new SourceUnreadableError
func NewSourceUnreadableError(path string, err error) *SourceUnreadableError {
	return &SourceUnreadableError{Path: path, Err: err}
}

// MissingColumnError represents a required column that the source header lacks
type MissingColumnError struct {
	Column string
	Path   string
}

func (e *MissingColumnError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("column '%s' not found in data source '%s'", e.Column, e.Path)
	}
	return fmt.Sprintf("column '%s' not found", e.Column)
}

func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

// NewMissingColumnError creates a new MissingColumnError
func NewMissingColumnError(column string, path ...string) *MissingColumnError {
	err := &MissingColumnError{Column: column}
	if len(path) > 0 {
		err.Path = path[0]
	}
	return err
}

// UnsupportedFormatError represents a data source whose extension has no reader
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported data source format '%s'", e.Extension)
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// NewUnsupportedFormatError creates a new UnsupportedFormatError
func NewUnsupportedFormatError(ext string) *UnsupportedFormatError {
	return &UnsupportedFormatError{Extension: ext}
}

// FeedbackNotFoundError represents a question with no recorded feedback
type FeedbackNotFoundError struct {
	Question string
}

func (e *FeedbackNotFoundError) Error() string {
	return fmt.Sprintf("no feedback recorded for question '%s'", e.Question)
}

func (e *FeedbackNotFoundError) Is(target error) bool {
	return target == ErrFeedbackNotFound
}

// NewFeedbackNotFoundError creates a new FeedbackNotFoundError
func NewFeedbackNotFoundError(question string) *FeedbackNotFoundError {
	return &FeedbackNotFoundError{Question: question}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
