package common

import (
	"errors"
	"fmt"
)

// Kind classifies terminal pipeline failures so the transport layer can map
// them to a response status.
type Kind string

const (
	// KindInvalidInput means the upload is not a PDF; user-correctable.
	KindInvalidInput Kind = "INVALID_INPUT"
	// KindConversionError means the raster engine failed on the source PDF.
	KindConversionError Kind = "CONVERSION_ERROR"
	// KindEmptyOutput means rasterization succeeded but produced no page images.
	KindEmptyOutput Kind = "EMPTY_OUTPUT"
	// KindOCRError means recognition failed on a page; the whole job fails.
	KindOCRError Kind = "OCR_ERROR"
)

// Failure is a terminal job error. There are no retries anywhere in the
// pipeline; every Failure aborts the current job.
type Failure struct {
	Kind    Kind
	Message string
	Cause   error
}

func (f *Failure) Error() string {
	if f.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Message, f.Cause)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func (f *Failure) Unwrap() error {
	return f.Cause
}

func NewFailure(kind Kind, message string, cause error) *Failure {
	return &Failure{Kind: kind, Message: message, Cause: cause}
}

// KindOf reports the failure kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind, true
	}
	return "", false
}
