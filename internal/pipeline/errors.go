package pipeline

import (
	"errors"
	"fmt"
)

// Stage names the pipeline step an Error came from.
type Stage string

const (
	StageCrop      Stage = "crop"
	StageEnhance   Stage = "enhance"
	StageRecognize Stage = "recognize"
)

// Sentinel errors matched by errors.Is against an *Error of the same stage.
var (
	ErrCrop        = errors.New("ocr crop failed")
	ErrEnhancement = errors.New("ocr enhancement failed")
	ErrRecognition = errors.New("ocr recognition failed")
)

// Error is returned by Process when a stage fails. It aborts the whole call;
// no partial text is returned alongside it.
type Error struct {
	Stage     Stage
	Iteration int // zero-based iteration that failed
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("ocr %s failed on iteration %d: %v", e.Stage, e.Iteration, e.Err)
}

// Unwrap returns the underlying stage error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's stage.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrCrop:
		return e.Stage == StageCrop
	case ErrEnhancement:
		return e.Stage == StageEnhance
	case ErrRecognition:
		return e.Stage == StageRecognize
	}
	return false
}

// Warning records a non-fatal problem, such as a debug image that could not
// be written.
type Warning struct {
	Iteration int
	Message   string
	Err       error
}

func (w Warning) String() string {
	if w.Err == nil {
		return w.Message
	}
	return fmt.Sprintf("%s: %v", w.Message, w.Err)
}
