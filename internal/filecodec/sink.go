package filecodec

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink saves finished bytes under a filename.
type Sink interface {
	Save(name string, data []byte) (string, error)
}

// DirSink writes files below Dir. When Compression is set and name does not
// already carry a compression extension, the matching one is appended.
type DirSink struct {
	Dir         string
	Compression Compression
	Perm        os.FileMode
}

// Save writes data and returns the path written.
func (s DirSink) Save(name string, data []byte) (string, error) {
	if name == "" {
		return "", fmt.Errorf("filecodec: empty file name")
	}
	c := FromPath(name)
	if c == CompNone && s.Compression != CompNone {
		c = s.Compression
		name += c.Ext()
	}
	out, err := Compress(c, data)
	if err != nil {
		return "", err
	}
	p := name
	if s.Dir != "" && !filepath.IsAbs(name) {
		p = filepath.Join(s.Dir, name)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", err
	}
	perm := s.Perm
	if perm == 0 {
		perm = 0o644
	}
	if err := os.WriteFile(p, out, perm); err != nil {
		return "", err
	}
	return p, nil
}
