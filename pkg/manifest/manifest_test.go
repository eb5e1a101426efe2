package manifest

import (
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

func TestApplyDefaults_FillsBlankFields(t *testing.T) {
	merged := ApplyDefaults(InstallRequest{})

	assert.Equal(t, "7-Zip", merged.Name)
	assert.Equal(t, "https://www.7-zip.org/a/7z2409-x64.exe", merged.URL)
	assert.Equal(t, "/S", merged.Arguments)
	assert.Equal(t, `C:\Program Files\7-Zip\7z.exe`, merged.VerificationPath)
	assert.Empty(t, merged.NestedInstaller)
}

func TestApplyDefaults_KeepsProvidedFields(t *testing.T) {
	req := InstallRequest{
		Name:             "Example",
		URL:              "https://example.com/setup.msi",
		NestedInstaller:  "inner/setup.exe",
		Arguments:        "/quiet",
		VerificationPath: `C:\Program Files\Example\example.exe`,
	}

	merged := ApplyDefaults(req)
	assert.Equal(t, req, merged)
}

func TestApplyDefaults_PartialRequest(t *testing.T) {
	merged := ApplyDefaults(InstallRequest{Name: "OnlyNamed"})

	assert.Equal(t, "OnlyNamed", merged.Name)
	assert.Equal(t, "https://www.7-zip.org/a/7z2409-x64.exe", merged.URL)
	assert.Equal(t, "/S", merged.Arguments)
}

func TestLoad_MissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read batch file")
}

func TestLoad_ParsesAndAppliesDefaults(t *testing.T) {
	batch := `
- name: Example
  url: https://example.com/example.exe
  arguments: /VERYSILENT
  verification_path: C:\Program Files\Example\example.exe
- name: Sparse
`
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(batch), 0644))

	requests, err := Load(path)
	require.NoError(t, err)
	require.Len(t, requests, 2)

	assert.Equal(t, "Example", requests[0].Name)
	assert.Equal(t, "/VERYSILENT", requests[0].Arguments)

	// Sparse entry picked up the defaults instead of failing validation.
	assert.Equal(t, "Sparse", requests[1].Name)
	assert.Equal(t, "https://www.7-zip.org/a/7z2409-x64.exe", requests[1].URL)
	assert.Equal(t, "/S", requests[1].Arguments)
}

func TestLoad_MalformedYAMLIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse batch file")
}

func TestDefaultRequests(t *testing.T) {
	requests := DefaultRequests()
	require.Len(t, requests, 2)
	for _, req := range requests {
		assert.NotEmpty(t, req.Name)
		assert.NotEmpty(t, req.URL)
		assert.NotEmpty(t, req.VerificationPath)
	}
}
