package generator

import (
	"os"
	"sort"

	"github.com/dosanma1/modelforge/pkg/xos"
)

// Filesystem is the file access generators need.
type Filesystem interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// DiskFS writes generated files atomically to disk.
type DiskFS struct{}

// Exists implements Filesystem.
func (DiskFS) Exists(path string) bool {
	return xos.Exists(path)
}

// ReadFile implements Filesystem.
func (DiskFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile implements Filesystem.
func (DiskFS) WriteFile(path string, data []byte) error {
	return xos.WriteFile(path, data, xos.FilePerm)
}

// PlannedFile is a write recorded by DryRunFS.
type PlannedFile struct {
	Path    string
	Content []byte

	// Existed is set when the write would replace a file on disk.
	Existed bool
}

// DryRunFS records writes in memory on top of a base filesystem. Planned
// files are visible to later reads, so chained generators behave as they
// would on disk.
type DryRunFS struct {
	base    Filesystem
	planned map[string]PlannedFile
}

// NewDryRunFS creates a dry-run overlay over base.
func NewDryRunFS(base Filesystem) *DryRunFS {
	return &DryRunFS{base: base, planned: make(map[string]PlannedFile)}
}

// Exists implements Filesystem.
func (d *DryRunFS) Exists(path string) bool {
	if _, ok := d.planned[path]; ok {
		return true
	}
	return d.base.Exists(path)
}

// ReadFile implements Filesystem.
func (d *DryRunFS) ReadFile(path string) ([]byte, error) {
	if f, ok := d.planned[path]; ok {
		return f.Content, nil
	}
	return d.base.ReadFile(path)
}

// WriteFile implements Filesystem.
func (d *DryRunFS) WriteFile(path string, data []byte) error {
	existed := d.base.Exists(path)
	if f, ok := d.planned[path]; ok {
		existed = f.Existed
	}
	d.planned[path] = PlannedFile{Path: path, Content: data, Existed: existed}
	return nil
}

// Planned returns the recorded writes sorted by path.
func (d *DryRunFS) Planned() []PlannedFile {
	files := make([]PlannedFile, 0, len(d.planned))
	for _, f := range d.planned {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files
}

// RecordingFS passes writes through to a base filesystem and remembers
// them, so callers can report what changed on disk.
type RecordingFS struct {
	Filesystem
	written []PlannedFile
}

// NewRecordingFS creates a recording wrapper over base.
func NewRecordingFS(base Filesystem) *RecordingFS {
	return &RecordingFS{Filesystem: base}
}

// WriteFile implements Filesystem.
func (r *RecordingFS) WriteFile(path string, data []byte) error {
	existed := r.Filesystem.Exists(path)
	if err := r.Filesystem.WriteFile(path, data); err != nil {
		return err
	}
	r.written = append(r.written, PlannedFile{Path: path, Content: data, Existed: existed})
	return nil
}

// Written returns the completed writes in order.
func (r *RecordingFS) Written() []PlannedFile {
	return r.written
}
