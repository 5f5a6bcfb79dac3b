package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeVCS           ErrorType = "VCS"
	TypeInput         ErrorType = "INPUT"
	TypeOutput        ErrorType = "OUTPUT"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Configuration errors
var (
	ErrTokenMissing = NewAppError(TypeConfiguration, "GitHub token is required to access the GitHub API", nil).
			WithSuggestion("Export it first: export GITHUB_TOKEN=<your-token>")

	ErrInvalidRepo = NewAppError(TypeConfiguration, "Repository must be in owner/repo format", nil).
			WithSuggestion("Pass it like: mate-notes -r saleor/saleor-dashboard")
)

// VCS errors
var (
	ErrCommitNotFound = NewAppError(TypeVCS, "commit not found in repository", nil).
				WithSuggestion("Check that the hash belongs to the target repository")

	ErrPRLookupFailed = NewAppError(TypeVCS, "failed to look up pull request", nil).
				WithSuggestion("Check your network connection and token permissions")
)

// Input/Output errors
var (
	ErrEmptyChangeset = NewAppError(TypeInput, "no changeset text provided", nil).
				WithSuggestion("Pass a file with -i or pipe the changeset through stdin")

	ErrReadInput = NewAppError(TypeInput, "failed to read input file", nil).
			WithSuggestion("Check the path exists and you have read permissions")

	ErrWriteOutput = NewAppError(TypeOutput, "failed to write output file", nil).
			WithSuggestion("Check the destination directory exists and is writable")
)
