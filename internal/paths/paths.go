package paths

import (
	"fmt"
	"os"
)

const (
	IconsDirName = "icons"
	DirPerm      = 0755
	FilePerm     = 0644
)

// IconFileName returns the file name used for an icon of the given pixel size,
// e.g. "icon48.png".
func IconFileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, DirPerm)
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory must already exist.
func AtomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
