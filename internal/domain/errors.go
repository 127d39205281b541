package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind identifies the classified failure category of a git operation.
type ErrorKind string

const (
	ErrNotARepository   ErrorKind = "not_a_repository"
	ErrInvalidArgument  ErrorKind = "invalid_argument"
	ErrTimeout          ErrorKind = "timeout"
	ErrConflict         ErrorKind = "conflict"
	ErrAuthFailed       ErrorKind = "auth_failed"
	ErrNetworkFailed    ErrorKind = "network_failed"
	ErrPushRejected     ErrorKind = "push_rejected"
	ErrPermissionDenied ErrorKind = "permission_denied"
	ErrUnknown          ErrorKind = "unknown"
)

// GitError is a classified git operation failure. It carries a human-readable
// message, an optional remedial suggestion, and for conflicts the list of
// files that need resolution.
type GitError struct {
	Kind          ErrorKind
	Op            string
	Message       string
	Suggestion    string
	ConflictFiles []string
	Stderr        string
}

func (e *GitError) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if len(e.ConflictFiles) > 0 {
		b.WriteString("\nConflicted files:\n  ")
		b.WriteString(strings.Join(e.ConflictFiles, "\n  "))
	}
	if e.Suggestion != "" {
		b.WriteString("\nSuggestion: ")
		b.WriteString(e.Suggestion)
	}
	return b.String()
}

// NewGitError creates a classified error for the given operation.
func NewGitError(kind ErrorKind, op, message string) *GitError {
	return &GitError{Kind: kind, Op: op, Message: message}
}

// NewInvalidArgument creates a validation failure for a missing or malformed
// request argument.
func NewInvalidArgument(op, format string, args ...any) *GitError {
	return &GitError{Kind: ErrInvalidArgument, Op: op, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the classified kind of err, or ErrUnknown when err is not a
// GitError.
func KindOf(err error) ErrorKind {
	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return gitErr.Kind
	}
	return ErrUnknown
}

// SuggestionFor returns the remedial suggestion attached to err, if any.
func SuggestionFor(err error) string {
	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return gitErr.Suggestion
	}
	return ""
}
