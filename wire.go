package dong

import (
	"encoding/binary"
	"io"
	"regexp"
)

// mediaTypeToken matches the first mime-shaped token in a padded field.
var mediaTypeToken = regexp.MustCompile(`[a-zA-Z0-9.]+/[a-zA-Z0-9.]+`)

// IsPlainMediaType reports whether s is a single type/subtype token that a
// decoder reads back unchanged.
func IsPlainMediaType(s string) bool {
	tok, _ := extractMediaType([]byte(s))
	return tok == s
}

type headerV2 struct {
	Magic     [2]byte
	ImageMIME [mimeFieldSize]byte
	ImageSize uint32
	AudioMIME [mimeFieldSize]byte
	AudioSize uint32
}

func readHeader(r io.Reader) (headerV2, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return headerV2{}, err
	}
	var h headerV2
	copy(h.Magic[:], buf[0:offImageMIME])
	copy(h.ImageMIME[:], buf[offImageMIME:offImageSize])
	h.ImageSize = binary.LittleEndian.Uint32(buf[offImageSize:offAudioMIME])
	copy(h.AudioMIME[:], buf[offAudioMIME:offAudioSize])
	h.AudioSize = binary.LittleEndian.Uint32(buf[offAudioSize:HeaderSize])
	return h, nil
}

func writeHeader(w io.Writer, h headerV2) error {
	var buf [HeaderSize]byte
	copy(buf[0:offImageMIME], h.Magic[:])
	copy(buf[offImageMIME:offImageSize], h.ImageMIME[:])
	binary.LittleEndian.PutUint32(buf[offImageSize:offAudioMIME], h.ImageSize)
	copy(buf[offAudioMIME:offAudioSize], h.AudioMIME[:])
	binary.LittleEndian.PutUint32(buf[offAudioSize:HeaderSize], h.AudioSize)
	_, err := w.Write(buf[:])
	return err
}

// mimeField lays out mediaType followed by zero padding. The caller has
// already checked that it fits.
func mimeField(mediaType string) [mimeFieldSize]byte {
	var f [mimeFieldSize]byte
	copy(f[:], mediaType)
	return f
}

// extractMediaType returns the first mime token in field, ignoring padding
// and any stray bytes around it.
func extractMediaType(field []byte) (string, bool) {
	m := mediaTypeToken.Find(field)
	if m == nil {
		return "", false
	}
	return string(m), true
}
