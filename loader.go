package nls

import (
	"io/fs"
	"os"
	"path/filepath"
)

// BundleLoader is the collaborator bundle files are read through. Exists is
// consulted during locale fallback resolution; Load fetches the resolved
// file. Implementations must treat both as cheap synchronous calls.
type BundleLoader interface {
	Exists(name string) bool
	Load(name string) ([]byte, error)
}

type dirLoader struct {
	root string
}

// NewDirLoader returns a loader over the OS filesystem. Relative names are
// resolved against root; absolute names are used as given. An empty root
// resolves against the working directory.
func NewDirLoader(root string) BundleLoader {
	return &dirLoader{root: root}
}

func (d *dirLoader) path(name string) string {
	if d.root == "" || filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(d.root, name)
}

func (d *dirLoader) Exists(name string) bool {
	info, err := os.Stat(d.path(name))
	return err == nil && !info.IsDir()
}

func (d *dirLoader) Load(name string) ([]byte, error) {
	return os.ReadFile(d.path(name))
}

type fsLoader struct {
	fsys fs.FS
}

// NewFSLoader returns a loader over an fs.FS, letting bundles ship inside
// the binary through embed.FS or live in any other virtual tree.
func NewFSLoader(fsys fs.FS) BundleLoader {
	return &fsLoader{fsys: fsys}
}

func (f *fsLoader) Exists(name string) bool {
	info, err := fs.Stat(f.fsys, name)
	return err == nil && !info.IsDir()
}

func (f *fsLoader) Load(name string) ([]byte, error) {
	return fs.ReadFile(f.fsys, name)
}
