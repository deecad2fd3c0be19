package cmd

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/logicossoftware/go-dong"
)

// detectMediaType guesses the media type of a file from its extension,
// then from its first 512 bytes. Parameters such as charset are dropped.
// An extension type the decoder cannot read back (audio/x-wav, image/svg+xml)
// gives way to a sniffed type of the same category.
func detectMediaType(name string, r io.ReaderAt) (string, error) {
	byExt := baseType(mime.TypeByExtension(filepath.Ext(name)))
	if byExt != "" && dong.IsPlainMediaType(byExt) {
		return byExt, nil
	}

	var head [512]byte
	n, err := r.ReadAt(head[:], 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	sniffed := baseType(http.DetectContentType(head[:n]))
	if sniffed != "" && dong.IsPlainMediaType(sniffed) && (byExt == "" || sameCategory(byExt, sniffed)) {
		return sniffed, nil
	}
	if byExt != "" {
		return byExt, nil
	}
	if sniffed != "" {
		return sniffed, nil
	}
	return "application/octet-stream", nil
}

func baseType(t string) string {
	if t == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(t)
	if err != nil {
		return ""
	}
	return mt
}

func sameCategory(a, b string) bool {
	ca, _, _ := strings.Cut(a, "/")
	cb, _, _ := strings.Cut(b, "/")
	return ca == cb
}

// preferredExt overrides the alphabetical first pick of
// mime.ExtensionsByType for common asset types.
var preferredExt = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
	"image/avif": ".avif",
	"audio/mpeg": ".mp3",
	"audio/wav":  ".wav",
	"audio/wave": ".wav",
	"audio/ogg":  ".ogg",
	"audio/flac": ".flac",
	"audio/aac":  ".aac",
	"audio/mp4":  ".m4a",
	"audio/opus": ".opus",
	"audio/midi": ".mid",
}

// extensionFor returns a file extension for mediaType, or .bin.
func extensionFor(mediaType string) string {
	if ext, ok := preferredExt[strings.ToLower(mediaType)]; ok {
		return ext
	}
	exts, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(exts) == 0 {
		return ".bin"
	}
	return exts[0]
}
