package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemLoader loads assets from a directory, falling back to the
// embedded defaults for anything the directory does not override. A user
// template dir may hold just article.html and inherit everything else.
// Implements AssetLoader.
type FilesystemLoader struct {
	basePath string
	fallback *EmbeddedLoader
}

// NewFilesystemLoader creates a FilesystemLoader rooted at basePath.
// Returns ErrInvalidBasePath if the path is not a readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	info, err := os.Stat(absPath)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidBasePath, absPath)
	}

	return &FilesystemLoader{
		basePath: absPath,
		fallback: NewEmbeddedLoader(),
	}, nil
}

// LoadTemplate loads basePath/templates/NAME.html, falling back to the
// embedded template when the file does not exist.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	content, err := f.read("templates", name+".html")
	if errors.Is(err, os.ErrNotExist) {
		return f.fallback.LoadTemplate(name)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateNotFound, err)
	}
	return content, nil
}

// LoadStyle loads basePath/styles/NAME.css, falling back to the embedded
// style when the file does not exist.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	content, err := f.read("styles", name+".css")
	if errors.Is(err, os.ErrNotExist) {
		return f.fallback.LoadStyle(name)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStyleNotFound, err)
	}
	return content, nil
}

func (f *FilesystemLoader) read(kind, file string) (string, error) {
	if err := ValidateAssetName(file[:len(file)-len(filepath.Ext(file))]); err != nil {
		return "", err
	}
	path := filepath.Join(f.basePath, kind, file)
	data, err := os.ReadFile(path) // #nosec G304 -- path is validated against the base dir
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)
