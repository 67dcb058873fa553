package service

import "errors"

// ErrorKind classifies domain errors so the HTTP layer can pick a status code.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "not_found"
	KindInvalidState ErrorKind = "invalid_state"
	KindInvalidInput ErrorKind = "invalid_input"
	KindConflict     ErrorKind = "conflict"
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

var (
	ErrQuizNotFound     = newError(KindNotFound, "quiz not found")
	ErrStudentNotFound  = newError(KindNotFound, "student not found")
	ErrAttemptNotFound  = newError(KindNotFound, "attempt not found")
	ErrQuestionNotFound = newError(KindNotFound, "question not found")
	ErrNoQuestions      = newError(KindNotFound, "quiz has no questions")

	ErrAlreadyCompleted  = newError(KindInvalidState, "quiz already completed")
	ErrNotCompleted      = newError(KindInvalidState, "quiz not yet completed")
	ErrNoCurrentQuestion = newError(KindInvalidState, "attempt has no current question")

	ErrMissingChoice   = newError(KindInvalidInput, "choice_id is required for multiple choice questions")
	ErrInvalidChoice   = newError(KindInvalidInput, "invalid choice")
	ErrMissingEmail    = newError(KindInvalidInput, "email is required")
	ErrInvalidQuestion = newError(KindInvalidInput, "invalid question reference")

	ErrEmailTaken = newError(KindConflict, "student with this email already exists")
)

// KindOf returns the kind of a domain error, or "" for anything else.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
