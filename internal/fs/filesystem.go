package fs

import (
	"io"
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"

	"github.com/yarlson/lnkname/internal/errors"
)

// Stdio is the path that selects standard input or output
const Stdio = "-"

// FileSystem handles reading and writing serialized error documents
type FileSystem struct {
	stdin  io.Reader
	stdout io.Writer
}

// New creates a new FileSystem instance bound to the given standard streams
func New(stdin io.Reader, stdout io.Writer) *FileSystem {
	return &FileSystem{stdin: stdin, stdout: stdout}
}

// ReadDocument reads a document from path, or from stdin when path is "-" or empty
func (fs *FileSystem) ReadDocument(path string) ([]byte, error) {
	if path == "" || path == Stdio {
		data, err := io.ReadAll(fs.stdin)
		if err != nil {
			return nil, &errors.FileCheckError{Path: Stdio, Err: pkgerrors.Wrap(err, "read stdin")}
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errors.FileNotExistsError{Path: path, Err: err}
		}
		return nil, &errors.FileCheckError{Path: path, Err: pkgerrors.Wrapf(err, "read %s", path)}
	}
	return data, nil
}

// WriteDocument writes data to path, or to stdout when path is "-" or empty.
// Parent directories are created as needed.
func (fs *FileSystem) WriteDocument(path string, data []byte) error {
	if path == "" || path == Stdio {
		if _, err := fs.stdout.Write(data); err != nil {
			return &errors.FileCheckError{Path: Stdio, Err: pkgerrors.Wrap(err, "write stdout")}
		}
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &errors.DirectoryCreationError{Path: dir, Err: err}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &errors.FileCheckError{Path: path, Err: pkgerrors.Wrapf(err, "write %s", path)}
	}
	return nil
}
