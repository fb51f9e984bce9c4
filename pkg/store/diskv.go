package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

const tempDirName = ".tmp"

// Diskv keeps each slot as a file under a base directory.
type Diskv struct {
	d        *diskv.Diskv
	basePath string
	prefix   string
}

// NewDiskv opens (creating if needed) a diskv store at basePath. Slot files are
// named prefix+key.
func NewDiskv(basePath, prefix string) (*Diskv, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if strings.ContainsRune(prefix, os.PathSeparator) {
		return nil, fmt.Errorf("store: invalid key prefix %q", prefix)
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Diskv{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		TempDir:      filepath.Join(basePath, tempDirName),
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath, prefix: prefix}, nil
}

func flatTransform(string) []string {
	return []string{}
}

func (p *Diskv) BasePath() string {
	return p.basePath
}

// Get reads straight from disk so changes made by another process are seen.
func (p *Diskv) Get(_ context.Context, key string) (string, bool, error) {
	k := p.prefix + key
	rc, err := p.d.ReadStream(k, true)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, &IOError{Op: "read", Key: k, Err: err}
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return "", false, &IOError{Op: "read", Key: k, Err: err}
	}
	return string(b), true, nil
}

func (p *Diskv) Set(_ context.Context, key, value string) error {
	k := p.prefix + key
	if err := p.d.Write(k, []byte(value)); err != nil {
		return &IOError{Op: "write", Key: k, Err: err}
	}
	return nil
}

// keyForPath maps a file under the base path back to a slot key.
func (p *Diskv) keyForPath(path string) string {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." {
		return ""
	}
	if strings.ContainsRune(rel, os.PathSeparator) || rel == tempDirName {
		return ""
	}
	if !strings.HasPrefix(rel, p.prefix) {
		return ""
	}
	return strings.TrimPrefix(rel, p.prefix)
}
