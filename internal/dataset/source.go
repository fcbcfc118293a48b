package dataset

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// Source loads a Dataset.
type Source interface {
	Load(ctx context.Context) (*Dataset, error)
}

// FSSource reads "<kind>.json" files from a file system. Missing files load
// as empty collections.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource creates a Source reading from fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// NewDirSource creates a Source reading from a directory on disk.
func NewDirSource(dir string) *FSSource {
	return NewFSSource(os.DirFS(dir))
}

// Embedded returns the Source for the fixtures compiled into the binary.
func Embedded() *FSSource {
	sub, err := fs.Sub(fixtures, "fixtures")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return NewFSSource(sub)
}

// Load implements Source.
func (s *FSSource) Load(ctx context.Context) (*Dataset, error) {
	ds := &Dataset{}
	for _, kind := range Kinds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := fs.ReadFile(s.fsys, kind+".json")
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", kind, err)
		}

		if err := decodeInto(ds, kind, raw); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// Raw returns the stored JSON of kind.
func (s *FSSource) Raw(kind string) ([]byte, error) {
	if _, err := (&Dataset{}).target(kind); err != nil {
		return nil, err
	}
	return fs.ReadFile(s.fsys, kind+".json")
}

func decodeInto(ds *Dataset, kind string, raw []byte) error {
	target, err := ds.target(kind)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode %s: %w", kind, err)
	}
	return nil
}
