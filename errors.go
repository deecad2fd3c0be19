package dong

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMediaType      = errors.New("dong: invalid media type")
	ErrMediaTypeTooLong      = errors.New("dong: media type too long")
	ErrInvalidMagicOrVersion = errors.New("dong: invalid magic or version")
	ErrImageMimeParse        = errors.New("dong: image mime type parse failed")
	ErrAudioMimeParse        = errors.New("dong: audio mime type parse failed")
	ErrTruncated             = errors.New("dong: truncated container")
	ErrSizeMismatch          = errors.New("dong: declared size does not match asset")
	ErrLimitExceeded         = errors.New("dong: limit exceeded")
)

// MediaTypeError reports a rejected media type for one asset slot.
// It matches both ErrInvalidMediaType and its specific cause with errors.Is.
type MediaTypeError struct {
	Slot      Slot
	MediaType string
	Reason    string
	Err       error
}

func (e *MediaTypeError) Error() string {
	return fmt.Sprintf("%v: %s asset %q: %s", e.Err, e.Slot, e.MediaType, e.Reason)
}

func (e *MediaTypeError) Unwrap() []error {
	if e.Err == nil || e.Err == ErrInvalidMediaType {
		return []error{ErrInvalidMediaType}
	}
	return []error{ErrInvalidMediaType, e.Err}
}
