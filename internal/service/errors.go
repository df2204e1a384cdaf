package service

import (
	"errors"
	"fmt"
)

// Read-path outcomes. Handlers must keep these visibly distinct: an empty
// page is a normal result, ErrNotFound renders as "not found" content, and
// ErrLoadFailure is the only one that shows an error banner.
var (
	ErrNotFound    = errors.New("no encontrado")
	ErrLoadFailure = errors.New("error al cargar datos")
)

// SubmissionStage tags which step of the registration pipeline failed so the
// form can show an actionable message.
type SubmissionStage string

const (
	StageValidation SubmissionStage = "validation"
	StageUpload     SubmissionStage = "upload"
	StageInsert     SubmissionStage = "insert"
)

// SubmissionError wraps a failure from one stage of the submission pipeline.
// A notification failure is deliberately NOT one of these: the record is
// already inserted, so it surfaces as a soft flag on the success response.
type SubmissionError struct {
	Stage SubmissionStage
	Err   error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission %s: %v", e.Stage, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }
