package dong

import (
	"bytes"
	"fmt"
	"io"
)

// Encode writes a container holding image and audio to w.
//
// Both assets are validated before anything is written. Validation checks
// that:
//   - each media type is non-empty and at most MaxMediaTypeLen bytes
//   - under PolicyCategory (the default), each media type is a plain
//     type/subtype token in the slot's category (image/* or audio/*)
//   - each declared Size matches the source length and the Limits
//
// The container is assembled in memory and handed to w in a single Write,
// so a failed validation or source read leaves w untouched.
//
// Use WriteOption functions to customize this behavior:
//   - WithMediaTypePolicy(PolicyNonEmpty): only reject empty media types
//   - WithWriteLimits(l): set custom size limits
func Encode(w io.Writer, image, audio Asset, opts ...WriteOption) error {
	b, err := Marshal(image, audio, opts...)
	if err != nil {
		return err
	}
	n, err := w.Write(b)
	if err == nil && n != len(b) {
		err = io.ErrShortWrite
	}
	return err
}

// Marshal returns the encoded container for image and audio.
// See Encode for the checks applied.
func Marshal(image, audio Asset, opts ...WriteOption) ([]byte, error) {
	cfg := writeConfig{limits: defaultLimits(), policy: PolicyCategory}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.WithDefaults()

	if err := validateAsset(SlotImage, image, cfg); err != nil {
		return nil, err
	}
	if err := validateAsset(SlotAudio, audio, cfg); err != nil {
		return nil, err
	}

	h := headerV2{
		Magic:     Magic,
		ImageMIME: mimeField(image.MediaType),
		ImageSize: uint32(image.Size),
		AudioMIME: mimeField(audio.MediaType),
		AudioSize: uint32(audio.Size),
	}

	var buf bytes.Buffer
	buf.Grow(HeaderSize + int(image.Size) + int(audio.Size))
	if err := writeHeader(&buf, h); err != nil {
		return nil, err
	}
	// The image payload is fully read before the audio payload is touched.
	if err := appendPayload(&buf, SlotImage, image); err != nil {
		return nil, err
	}
	if err := appendPayload(&buf, SlotAudio, audio); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func appendPayload(buf *bytes.Buffer, slot Slot, a Asset) error {
	if a.Size == 0 {
		return nil
	}
	data, err := a.Source.Slice(0, a.Size)
	if err != nil {
		return fmt.Errorf("dong: read %s asset: %w", slot, err)
	}
	if int64(len(data)) != a.Size {
		return fmt.Errorf("%w: %s asset declares %d bytes, read %d", ErrSizeMismatch, slot, a.Size, len(data))
	}
	buf.Write(data)
	return nil
}
