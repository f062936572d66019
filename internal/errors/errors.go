package errors

// Shared error types for the fs package and the CLI.
// These errors represent infrastructure-level failures around error documents.

// FileNotExistsError represents an error when a document file does not exist
type FileNotExistsError struct {
	Path string
	Err  error
}

func (e *FileNotExistsError) Error() string {
	return "File or directory not found: " + e.Path
}

func (e *FileNotExistsError) Unwrap() error {
	return e.Err
}

// FileCheckError represents an error when failing to read or write a file
type FileCheckError struct {
	Path string
	Err  error
}

func (e *FileCheckError) Error() string {
	return "Unable to access file. Please check file permissions and try again."
}

func (e *FileCheckError) Unwrap() error {
	return e.Err
}

// DirectoryCreationError represents an error when failing to create a directory
type DirectoryCreationError struct {
	Path string
	Err  error
}

func (e *DirectoryCreationError) Error() string {
	return "Failed to create directory. Please check permissions and available disk space."
}

func (e *DirectoryCreationError) Unwrap() error {
	return e.Err
}

// DocumentDecodeError represents an error document that could not be decoded
type DocumentDecodeError struct {
	Source string
	Err    error
}

func (e *DocumentDecodeError) Error() string {
	return "Cannot read link error document from " + e.Source + ". Please check it was produced by 'lnkname build'."
}

func (e *DocumentDecodeError) Unwrap() error {
	return e.Err
}

// InvalidNameError represents a composite name that could not be parsed
type InvalidNameError struct {
	Name string
	Err  error
}

func (e *InvalidNameError) Error() string {
	return "Invalid composite name: " + e.Name
}

func (e *InvalidNameError) Unwrap() error {
	return e.Err
}
