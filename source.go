package dong

import (
	"errors"
	"io"
)

// ByteSource is random access to a sequence of bytes of known length.
//
// Slice returns the bytes in [start, end). Bounds outside [0, Len()] are
// clamped, so a range past the end yields only the bytes that exist.
type ByteSource interface {
	Len() int64
	Slice(start, end int64) ([]byte, error)
}

// Bytes is an in-memory ByteSource. Slices alias the underlying array.
type Bytes []byte

func (b Bytes) Len() int64 { return int64(len(b)) }

func (b Bytes) Slice(start, end int64) ([]byte, error) {
	start, end = clampRange(start, end, int64(len(b)))
	return b[start:end:end], nil
}

type readerAtSource struct {
	r    io.ReaderAt
	size int64
}

// NewReaderAtSource returns a ByteSource over the first size bytes of r,
// such as an *os.File.
func NewReaderAtSource(r io.ReaderAt, size int64) ByteSource {
	if size < 0 {
		size = 0
	}
	return &readerAtSource{r: r, size: size}
}

func (s *readerAtSource) Len() int64 { return s.size }

func (s *readerAtSource) Slice(start, end int64) ([]byte, error) {
	start, end = clampRange(start, end, s.size)
	buf := make([]byte, end-start)
	if len(buf) == 0 {
		return buf, nil
	}
	n, err := s.r.ReadAt(buf, start)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:n], nil
}

func clampRange(start, end, n int64) (int64, int64) {
	start = min(max(start, 0), n)
	end = min(max(end, start), n)
	return start, end
}
