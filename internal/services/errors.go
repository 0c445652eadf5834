package services

import "errors"

// Pipeline failure taxonomy. Handlers map these to HTTP status codes with
// errors.Is; everything else defaults to 500.
var (
	// ErrInvalidInput marks a request rejected before the pipeline ran.
	ErrInvalidInput = errors.New("invalid input")

	// ErrExtraction marks a PDF that could not be parsed or yielded no text.
	ErrExtraction = errors.New("extraction failed")

	// ErrModel marks a failed call to the Gemini API.
	ErrModel = errors.New("model request failed")

	// ErrResponseFormat marks a model response that was not valid JSON after
	// fence stripping.
	ErrResponseFormat = errors.New("model response is not valid JSON")
)
