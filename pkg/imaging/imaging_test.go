package imaging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aislehq/aisle/pkg/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func TestLoad(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	path := writeFile(t, "shot.png", raw)

	img, err := imaging.Load(path)
	require.NoError(t, err)
	assert.Equal(t, raw, img.Data)
	assert.Equal(t, "image/png", img.MediaType)
}

func TestLoad_JpegExtensions(t *testing.T) {
	for _, name := range []string{"photo.jpg", "photo.jpeg", "PHOTO.JPG"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, []byte{0xff, 0xd8})

			img, err := imaging.Load(path)
			require.NoError(t, err)
			assert.Equal(t, "image/jpeg", img.MediaType)
		})
	}
}

func TestLoad_BlankPath(t *testing.T) {
	_, err := imaging.Load("   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path is invalid")
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "clip.gif", []byte{0x47})

	_, err := imaging.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid image format")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := imaging.Load(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoad_DirectoryRejected(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dir.png")
	require.NoError(t, os.Mkdir(dir, 0o750))

	_, err := imaging.Load(dir)
	assert.Error(t, err)
}
