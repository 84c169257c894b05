// Package pipeline extracts a single text value from a screenshot.
//
// A Pipeline repeats one cycle until the Variant says to stop:
//
//	crop -> enhance -> save debug copy -> recognize -> normalize -> retry?
//
// The Variant decides where to crop, how to clean up the recognized string
// and whether another attempt is worthwhile. Enhancement is always the fixed
// sequence in imaging.Enhance, and recognition is delegated to a Recognizer.
//
// # Iteration Indices
//
// Crop and Normalize see the current iteration as a zero-based index.
// ShouldRetry sees the count of completed iterations, which is one-based.
// The loop always runs at least once.
//
// # Errors
//
// Crop, enhancement and recognition failures abort the call with an *Error
// carrying the stage and iteration; match them with errors.Is against
// ErrCrop, ErrEnhancement and ErrRecognition. Failing to save the debug copy
// only produces a log warning and a Warning in the detailed result.
//
// # Concurrency
//
// Calls run synchronously with no background work. A Pipeline has no
// per-call state and may be shared between goroutines. There is no timeout
// or cancellation; callers bound latency by bounding retries in their
// Variant.
package pipeline
