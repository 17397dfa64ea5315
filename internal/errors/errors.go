// internal/errors/errors.go
package appErrors

import (
    "fmt"
    "strings"
)

// ValidationError reports a single field-level constraint violation
type ValidationError struct {
    Field   string `json:"field"`
    Message string `json:"message"`
}

func (e ValidationError) Error() string {
    return e.Field + ": " + e.Message
}

// ValidationErrors collects every violation found in a request so the caller
// sees all of them at once instead of one per round trip
type ValidationErrors struct {
    Errors []ValidationError `json:"errors"`
}

// Add records a violation for the given field
func (e *ValidationErrors) Add(field, message string) {
    e.Errors = append(e.Errors, ValidationError{Field: field, Message: message})
}

func (e *ValidationErrors) Error() string {
    msgs := make([]string, len(e.Errors))
    for i, v := range e.Errors {
        msgs[i] = v.Error()
    }
    return "validation failed: " + strings.Join(msgs, "; ")
}

// ErrOrNil returns the collection as an error, or nil when nothing was added
func (e *ValidationErrors) ErrOrNil() error {
    if len(e.Errors) == 0 {
        return nil
    }
    return e
}

// UpstreamFormatError means the text-generation service answered, but with
// something that could not be turned into an email variant. It pins the
// failure to the account and stage being generated.
type UpstreamFormatError struct {
    AccountName string
    Stage       int
    Err         error
}

func (e *UpstreamFormatError) Error() string {
    return fmt.Sprintf("account %q, email %d: %v", e.AccountName, e.Stage, e.Err)
}

func (e *UpstreamFormatError) Unwrap() error {
    return e.Err
}

// Helper constructor
func NewUpstreamFormatError(accountName string, stage int, err error) error {
    return &UpstreamFormatError{AccountName: accountName, Stage: stage, Err: err}
}
