package dong

import (
	"fmt"
	"math"
	"strings"
)

// MediaTypePolicy selects the media type checks applied by Encode.
type MediaTypePolicy uint8

const (
	// PolicyCategory requires a single mime token whose top-level type
	// matches the slot: image/* for the image asset, audio/* for the audio
	// asset. Accepted values always decode back unchanged.
	PolicyCategory MediaTypePolicy = iota
	// PolicyNonEmpty only rejects empty media types.
	PolicyNonEmpty
)

func (p MediaTypePolicy) String() string {
	switch p {
	case PolicyCategory:
		return "category"
	case PolicyNonEmpty:
		return "non-empty"
	default:
		return fmt.Sprintf("MediaTypePolicy(%d)", uint8(p))
	}
}

// ParseMediaTypePolicy is the inverse of MediaTypePolicy.String.
func ParseMediaTypePolicy(s string) (MediaTypePolicy, error) {
	switch s {
	case "category", "":
		return PolicyCategory, nil
	case "non-empty":
		return PolicyNonEmpty, nil
	default:
		return 0, fmt.Errorf("dong: unknown media type policy %q", s)
	}
}

func validateMediaType(slot Slot, mediaType string, policy MediaTypePolicy) error {
	fail := func(err error, reason string) error {
		return &MediaTypeError{Slot: slot, MediaType: mediaType, Reason: reason, Err: err}
	}
	if mediaType == "" {
		return fail(ErrInvalidMediaType, "empty")
	}
	if len(mediaType) > MaxMediaTypeLen {
		return fail(ErrMediaTypeTooLong, fmt.Sprintf("%d bytes, max %d", len(mediaType), MaxMediaTypeLen))
	}
	switch policy {
	case PolicyNonEmpty:
		return nil
	case PolicyCategory:
		if !strings.HasPrefix(mediaType, slot.category()) {
			return fail(ErrInvalidMediaType, "expected "+slot.category()+"*")
		}
		if !IsPlainMediaType(mediaType) {
			return fail(ErrInvalidMediaType, "not a plain type/subtype token")
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown policy %d", ErrInvalidMediaType, policy)
	}
}

func validateAsset(slot Slot, a Asset, cfg writeConfig) error {
	if err := validateMediaType(slot, a.MediaType, cfg.policy); err != nil {
		return err
	}
	if a.Size < 0 {
		return fmt.Errorf("%w: %s asset has negative size %d", ErrSizeMismatch, slot, a.Size)
	}
	if a.Size > math.MaxUint32 {
		return fmt.Errorf("%w: %s asset size %d does not fit the size field", ErrLimitExceeded, slot, a.Size)
	}
	if uint32(a.Size) > cfg.limits.maxSize(slot) {
		return fmt.Errorf("%w: %s asset size %d", ErrLimitExceeded, slot, a.Size)
	}
	if a.Source == nil {
		if a.Size != 0 {
			return fmt.Errorf("%w: %s asset declares %d bytes but has no source", ErrSizeMismatch, slot, a.Size)
		}
		return nil
	}
	if n := a.Source.Len(); n != a.Size {
		return fmt.Errorf("%w: %s asset declares %d bytes, source has %d", ErrSizeMismatch, slot, a.Size, n)
	}
	return nil
}
