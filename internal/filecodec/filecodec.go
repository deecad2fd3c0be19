// Package filecodec reads and saves whole files for the dong tools,
// optionally wrapping them in a transport compression chosen by file
// extension. The container bytes themselves are never altered.
package filecodec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

type Compression uint8

const (
	CompNone Compression = iota
	CompZSTD
	CompLZ4
	CompBR
)

var ErrTooLarge = errors.New("filecodec: file exceeds size limit")

// Function variables for testing injection.
var (
	newZstdWriter = func() (*zstd.Encoder, error) { return zstd.NewWriter(nil) }
	newZstdReader = func(r io.Reader) (*zstd.Decoder, error) { return zstd.NewReader(r) }
	lz4Close      = func(w *lz4.Writer) error { return w.Close() }
	brotliClose   = func(w *brotli.Writer) error { return w.Close() }
	readAll       = io.ReadAll
)

func (c Compression) String() string {
	switch c {
	case CompNone:
		return "none"
	case CompZSTD:
		return "zstd"
	case CompLZ4:
		return "lz4"
	case CompBR:
		return "br"
	default:
		return "unknown"
	}
}

// Ext returns the filename suffix that selects c.
func (c Compression) Ext() string {
	switch c {
	case CompZSTD:
		return ".zst"
	case CompLZ4:
		return ".lz4"
	case CompBR:
		return ".br"
	default:
		return ""
	}
}

// ParseCompression accepts the names returned by Compression.String.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CompNone, nil
	case "zstd", "zst":
		return CompZSTD, nil
	case "lz4":
		return CompLZ4, nil
	case "br", "brotli":
		return CompBR, nil
	default:
		return CompNone, fmt.Errorf("filecodec: unknown compression %q", s)
	}
}

// FromPath picks the compression implied by the extension of name.
func FromPath(name string) Compression {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst":
		return CompZSTD
	case ".lz4":
		return CompLZ4
	case ".br":
		return CompBR
	default:
		return CompNone
	}
}

// Compress wraps data in c.
func Compress(c Compression, data []byte) ([]byte, error) {
	switch c {
	case CompNone:
		return data, nil
	case CompZSTD:
		enc, err := newZstdWriter()
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(data, nil), nil
	case CompLZ4:
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			_ = lz4Close(zw)
			return nil, err
		}
		if err := lz4Close(zw); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case CompBR:
		var buf bytes.Buffer
		bw := brotli.NewWriter(&buf)
		if _, err := bw.Write(data); err != nil {
			_ = brotliClose(bw)
			return nil, err
		}
		if err := brotliClose(bw); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("filecodec: unknown compression %d", c)
	}
}

// Decompress unwraps data, refusing to expand it beyond limit bytes.
func Decompress(c Compression, data []byte, limit int64) ([]byte, error) {
	var r io.Reader
	switch c {
	case CompNone:
		if int64(len(data)) > limit {
			return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
		}
		return data, nil
	case CompZSTD:
		dec, err := newZstdReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		r = dec
	case CompLZ4:
		r = lz4.NewReader(bytes.NewReader(data))
	case CompBR:
		r = brotli.NewReader(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("filecodec: unknown compression %d", c)
	}
	out, err := readAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(out)) > limit {
		return nil, fmt.Errorf("%w: %s expanded beyond %d bytes", ErrTooLarge, c, limit)
	}
	return out, nil
}

// ReadFile reads name and removes any transport compression implied by its
// extension.
func ReadFile(name string, limit int64) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	raw, err := readAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, err
	}
	c := FromPath(name)
	if c == CompNone && int64(len(raw)) > limit {
		return nil, fmt.Errorf("%w: %s", ErrTooLarge, name)
	}
	return Decompress(c, raw, limit)
}
