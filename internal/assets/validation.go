package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects empty names and names containing a slash,
// backslash or dot. Loaders append the extension themselves.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
