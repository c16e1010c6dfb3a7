package core

// # Error Codes Reference
//
// Every failure the builder or the read API can report carries a code so that
// log lines and API responses can be matched up quickly.
//
// # Source File Errors (FILE001-FILE099)
//
//	FILE001 - Missing file: Source file for a catalog entry does not exist
//	          Action: Export the survey topic into the data directory
//	FILE002 - Empty file: Source file has no data rows
//	          Action: Re-export the file with its header and data rows
//
// # Row Errors (ROW001-ROW099)
//
//	ROW001 - Malformed row: Line has too few fields
//	         Action: Check the export for truncated lines
//	ROW002 - Out of range: A category percentage is outside 0-100
//	         Action: Check the export for shifted columns
//	ROW003 - Duplicate subject: Program or category appears twice in one file
//	         Action: Remove the repeated line from the export
//
// # Output Errors (OUT001-OUT099)
//
//	OUT001 - Write failure: The dataset could not be written
//	         Action: Check permissions and free space for the output path
//
// # Section Errors (SEC001-SEC099)
//
//	SEC001 - Section not found: No section with this id in the dataset
//	         Action: Rebuild the dataset or check the section id
//
// # Default Error (ERR000)
//
//	ERR000 - Unexpected error
//	         Action: Run the build again; report the log line if it persists

import "errors"

var (
	// ErrMissingFile is returned when a catalog entry's source file is absent.
	ErrMissingFile = errors.New("source file not found")

	// ErrEmptyFile is returned when a source file has a header but no data rows.
	ErrEmptyFile = errors.New("source file has no data rows")

	// ErrMalformedRow is returned for a line that cannot be matched to the header.
	ErrMalformedRow = errors.New("malformed row")

	// ErrValueOutOfRange is returned when a category percentage is outside [0, 100].
	ErrValueOutOfRange = errors.New("category value out of range")

	// ErrDuplicateSubject is returned when a subject repeats within one file.
	ErrDuplicateSubject = errors.New("duplicate subject")

	// ErrWriteFailure is returned when the output artifact cannot be persisted.
	// It is the only error that aborts a build.
	ErrWriteFailure = errors.New("write failure")

	// ErrSectionNotFound is returned by read-side lookups for unknown ids.
	ErrSectionNotFound = errors.New("section not found")
)

// UserMessage is a coded, human-readable description of an error.
type UserMessage struct {
	Code    string
	Message string
	Action  string
}

// errorMapping pairs a sentinel with its user message.
type errorMapping struct {
	target error
	msg    UserMessage
}

var errorMappings = []errorMapping{
	{ErrMissingFile, UserMessage{"FILE001", "Source file for a catalog entry does not exist", "Export the survey topic into the data directory"}},
	{ErrEmptyFile, UserMessage{"FILE002", "Source file has no data rows", "Re-export the file with its header and data rows"}},
	{ErrMalformedRow, UserMessage{"ROW001", "Line has too few fields", "Check the export for truncated lines"}},
	{ErrValueOutOfRange, UserMessage{"ROW002", "A category percentage is outside 0-100", "Check the export for shifted columns"}},
	{ErrDuplicateSubject, UserMessage{"ROW003", "Program or category appears twice in one file", "Remove the repeated line from the export"}},
	{ErrWriteFailure, UserMessage{"OUT001", "The dataset could not be written", "Check permissions and free space for the output path"}},
	{ErrSectionNotFound, UserMessage{"SEC001", "No section with this id in the dataset", "Rebuild the dataset or check the section id"}},
}

var defaultMessage = UserMessage{
	Code:    "ERR000",
	Message: "Unexpected error",
	Action:  "Run the build again; report the log line if it persists",
}

// MapError converts an error into a coded user message.
// Returns the zero UserMessage for a nil error.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.msg
		}
	}
	return defaultMessage
}

// ErrorCode returns just the code for err, or "" for nil.
func ErrorCode(err error) string {
	return MapError(err).Code
}
