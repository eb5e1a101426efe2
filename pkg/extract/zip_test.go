package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windowsadmins/appsetup/pkg/logging"
)

func TestMain(m *testing.M) {
	logging.InitForTest(logging.LevelError)
	os.Exit(m.Run())
}

// writeZip builds a zip at path with the given name->content entries.
func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func TestExtractZip(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "bundle.zip")
	writeZip(t, archive, map[string]string{
		"setup.exe":          "binary",
		"resources/lang.txt": "en-US",
	})

	dest := filepath.Join(dir, "bundle")
	require.NoError(t, ExtractZip(archive, dest))

	got, err := os.ReadFile(filepath.Join(dest, "setup.exe"))
	require.NoError(t, err)
	assert.Equal(t, "binary", string(got))

	got, err = os.ReadFile(filepath.Join(dest, "resources", "lang.txt"))
	require.NoError(t, err)
	assert.Equal(t, "en-US", string(got))
}

func TestExtractZip_OverwritesPreviousExtraction(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "bundle.zip")
	writeZip(t, archive, map[string]string{"setup.exe": "new"})

	dest := filepath.Join(dir, "bundle")
	require.NoError(t, os.MkdirAll(dest, 0755))
	stale := filepath.Join(dest, "stale.exe")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))

	require.NoError(t, ExtractZip(archive, dest))

	assert.NoFileExists(t, stale)
	assert.FileExists(t, filepath.Join(dest, "setup.exe"))
}

func TestExtractZip_RejectsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "evil.zip")
	writeZip(t, archive, map[string]string{"../escape.txt": "nope"})

	err := ExtractZip(archive, filepath.Join(dir, "evil"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes extraction directory")
	assert.NoFileExists(t, filepath.Join(dir, "escape.txt"))
}

func TestExtractZip_MissingArchive(t *testing.T) {
	dir := t.TempDir()
	err := ExtractZip(filepath.Join(dir, "missing.zip"), filepath.Join(dir, "out"))
	require.Error(t, err)
}
