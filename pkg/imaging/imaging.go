// Package imaging loads image attachments for chat messages.
package imaging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aislehq/aisle/pkg/chats/content"
)

// mediaTypes maps the supported file extensions to their media types.
var mediaTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// SupportedExtensions returns the accepted image file extensions in a stable
// order, for error messages and help text.
func SupportedExtensions() []string {
	return []string{".jpg", ".jpeg", ".png"}
}

// Load reads the image at path and returns it as a content part.
// The path must be non-blank, carry a supported extension, and point at an
// existing regular file.
func Load(path string) (content.Image, error) {
	if strings.TrimSpace(path) == "" {
		return content.Image{}, fmt.Errorf("imaging: the specified image path is invalid")
	}

	ext := strings.ToLower(filepath.Ext(path))
	mediaType, ok := mediaTypes[ext]
	if !ok {
		return content.Image{}, fmt.Errorf("imaging: file %q is not a valid image format, supported formats are: %s",
			path, strings.Join(SupportedExtensions(), ", "))
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return content.Image{}, fmt.Errorf("imaging: image file %q not found", path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is user-supplied on purpose: it names the attachment
	if err != nil {
		return content.Image{}, fmt.Errorf("imaging: read image file: %w", err)
	}

	return content.Image{Data: data, MediaType: mediaType}, nil
}
