package dong

import (
	"bytes"
	"fmt"
	"io"
)

// Decode reads a container from r and decodes it with DecodeSource. At most
// HeaderSize plus both size limits are read; anything after that cannot
// belong to a container within the limits.
func Decode(r io.Reader, opts ...ReadOption) (*Container, error) {
	cfg := newReadConfig(opts)
	data, err := io.ReadAll(io.LimitReader(r, cfg.limits.maxContainerSize()))
	if err != nil {
		return nil, err
	}
	return Unmarshal(data, opts...)
}

// Unmarshal decodes a container held in memory. The returned payloads
// alias data.
func Unmarshal(data []byte, opts ...ReadOption) (*Container, error) {
	return DecodeSource(Bytes(data), opts...)
}

// DecodeSource decodes the container held by src.
//
// The decoding process, failing at the first violated check:
//  1. Checks the 2-byte magic and version prefix
//  2. Requires the full 522-byte header to be present
//  3. Extracts the image media type token and size
//  4. Extracts the audio media type token and size
//  5. Checks both sizes against the Limits
//  6. Slices the image payload, then the audio payload
//
// If the declared sizes run past the end of src, the payloads hold the
// bytes that are available and Container.Truncated is set. With
// WithStrictBounds(true) that case fails with ErrTruncated instead.
//
// Decode returns ErrInvalidMagicOrVersion if src is not a version 2
// container, ErrTruncated if the header is incomplete, ErrImageMimeParse or
// ErrAudioMimeParse if a mime field holds no type/subtype token, and
// ErrLimitExceeded if a declared size exceeds the Limits.
func DecodeSource(src ByteSource, opts ...ReadOption) (*Container, error) {
	cfg := newReadConfig(opts)

	magic, err := src.Slice(0, int64(len(Magic)))
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(magic, Magic[:]) {
		if len(magic) == len(Magic) && magic[0] == Magic[0] {
			return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidMagicOrVersion, magic[1])
		}
		return nil, ErrInvalidMagicOrVersion
	}

	total := src.Len()
	if total < int64(HeaderSize) {
		return nil, fmt.Errorf("%w: header is %d bytes, need %d", ErrTruncated, total, HeaderSize)
	}
	raw, err := src.Slice(0, int64(HeaderSize))
	if err != nil {
		return nil, err
	}
	h, err := readHeader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}

	imageMIME, ok := extractMediaType(h.ImageMIME[:])
	if !ok {
		return nil, ErrImageMimeParse
	}
	audioMIME, ok := extractMediaType(h.AudioMIME[:])
	if !ok {
		return nil, ErrAudioMimeParse
	}
	if h.ImageSize > cfg.limits.MaxImageSize {
		return nil, fmt.Errorf("%w: image size %d", ErrLimitExceeded, h.ImageSize)
	}
	if h.AudioSize > cfg.limits.MaxAudioSize {
		return nil, fmt.Errorf("%w: audio size %d", ErrLimitExceeded, h.AudioSize)
	}

	imageStart := int64(HeaderSize)
	audioStart := imageStart + int64(h.ImageSize)
	end := audioStart + int64(h.AudioSize)
	if end > total && cfg.strictBounds {
		return nil, fmt.Errorf("%w: payloads need %d bytes, have %d", ErrTruncated, end, total)
	}

	image, err := src.Slice(imageStart, audioStart)
	if err != nil {
		return nil, err
	}
	audio, err := src.Slice(audioStart, end)
	if err != nil {
		return nil, err
	}
	// Len may overstate what the source delivers.
	truncated := end > total ||
		int64(len(image)) < int64(h.ImageSize) ||
		int64(len(audio)) < int64(h.AudioSize)
	if truncated && cfg.strictBounds {
		return nil, fmt.Errorf("%w: payloads need %d bytes, got %d", ErrTruncated,
			int64(h.ImageSize)+int64(h.AudioSize), len(image)+len(audio))
	}
	return &Container{
		Image:     Media{MIMEType: imageMIME, Data: image},
		Audio:     Media{MIMEType: audioMIME, Data: audio},
		Truncated: truncated,
	}, nil
}
