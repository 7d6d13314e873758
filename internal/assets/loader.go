package assets

import "strings"

// AssetLoader defines the contract for loading page templates and styles.
// Implementations may load from embedded assets, the filesystem, or both.
type AssetLoader interface {
	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)

	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)
}

// ValidateAssetName rejects names that could escape the asset directory.
func ValidateAssetName(name string) error {
	if name == "" {
		return ErrInvalidAssetName
	}
	if strings.ContainsAny(name, "/\\\x00") || strings.Contains(name, "..") {
		return ErrInvalidAssetName
	}
	return nil
}
