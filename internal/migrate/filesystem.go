package migrate

import (
	"errors"
	"io/fs"
	"os"
)

// FileSystem is the file access the migrator needs.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	OverwriteFile(path string, data []byte) error
}

// OSFileSystem implements FileSystem using the operating system primitives.
type OSFileSystem struct{}

// Stat retrieves file metadata.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads file contents.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// OverwriteFile replaces the contents of an existing file. It never creates the file,
// and an open failure (e.g. permission denied) happens before truncation.
func (OSFileSystem) OverwriteFile(path string, data []byte) (overwriteError error) {
	file, openError := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if openError != nil {
		return openError
	}
	defer func() {
		overwriteError = errors.Join(overwriteError, file.Close())
	}()

	_, writeError := file.Write(data)
	return writeError
}
